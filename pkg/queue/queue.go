package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// TaskQueue is the submit-and-await surface consumed by services that need
// a task's outcome, not just fire-and-forget delivery.
type TaskQueue interface {
	Enqueue(ctx context.Context, msgType string, payload interface{}) (string, error)
	AwaitResult(ctx context.Context, taskID string, timeout time.Duration) (*TaskResult, error)
}

// ErrResultTimeout reports that no result envelope arrived within the wait
// window. The task itself may still complete later; only the wait is
// abandoned.
var ErrResultTimeout = errors.New("task result timeout")

// QueueConfig contains the configuration for the queue
type QueueConfig struct {
	Workers    int           // number of workers
	RetryLimit int           // number of maximum retries
	RetryDelay time.Duration // time delay between retries
	ResultTTL  time.Duration // how long unclaimed result envelopes live
}

// Message represents a message in the queue
type Message struct {
	ID        string
	Type      string
	Payload   interface{}
	Attempts  int
	Timestamp time.Time
}

// TaskResult is the envelope a worker leaves for the submitter once a task
// reaches a terminal state.
type TaskResult struct {
	TaskID string          `json:"task_id"`
	OK     bool            `json:"ok"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// Decode unmarshals the result payload into dest.
func (t *TaskResult) Decode(dest interface{}) error {
	if !t.OK {
		return fmt.Errorf("task failed: %s", t.Error)
	}
	if err := json.Unmarshal(t.Result, dest); err != nil {
		return fmt.Errorf("decode task result: %w", err)
	}
	return nil
}

func ParsePayload[T any](payload interface{}) (*T, error) {
	var result T

	switch p := payload.(type) {
	case *T:
		return p, nil
	case T:
		return &p, nil
	case map[string]interface{}:
		jsonData, err := json.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal map to json: %w", err)
		}
		if err := json.Unmarshal(jsonData, &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal json to struct: %w", err)
		}
		return &result, nil
	case []interface{}:
		jsonData, err := json.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal slice to json: %w", err)
		}
		if err := json.Unmarshal(jsonData, &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal json to struct slice: %w", err)
		}
		return &result, nil
	case json.RawMessage:
		if err := json.Unmarshal(p, &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
		}
		return &result, nil
	default:
		return nil, fmt.Errorf("invalid payload type: %T", payload)
	}
}
