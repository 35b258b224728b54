package ratelimit

import "testing"

func TestAllowConsumesBurst(t *testing.T) {
	l := New()

	for i := 0; i < 3; i++ {
		if !l.Allow("a", 3, 0) {
			t.Fatalf("request %d denied within capacity", i+1)
		}
	}
	if l.Allow("a", 3, 0) {
		t.Fatal("request allowed past capacity with no refill")
	}
}

func TestAllowKeysAreIndependent(t *testing.T) {
	l := New()

	if !l.Allow("a", 1, 0) {
		t.Fatal("first request for a denied")
	}
	if l.Allow("a", 1, 0) {
		t.Fatal("second request for a allowed")
	}
	if !l.Allow("b", 1, 0) {
		t.Fatal("exhausting a must not affect b")
	}
}
