// Pollinate - Family Curriculum Local Opportunity Discovery
// Copyright 2026 hajjbbee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hajjbbee/Pollinate-HE-Curriculum-sub001

package sources

import (
	"errors"
	"testing"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/hajjbbee/Pollinate-HE-Curriculum-sub001/internal/models"
)

func TestBreakerExecuteSuccess(t *testing.T) {
	b := NewBreaker("test-success")

	want := []models.CanonicalEvent{{EventName: "Roman History Exhibit"}}
	got, err := b.Execute(func() ([]models.CanonicalEvent, error) {
		return want, nil
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if len(got) != 1 || got[0].EventName != want[0].EventName {
		t.Errorf("Execute() = %v, want %v", got, want)
	}
	if state := b.State(); state != "closed" {
		t.Errorf("State() = %q, want %q", state, "closed")
	}
}

func TestBreakerExecutePropagatesError(t *testing.T) {
	b := NewBreaker("test-failure")

	upstreamErr := errors.New("upstream unavailable")
	got, err := b.Execute(func() ([]models.CanonicalEvent, error) {
		return nil, upstreamErr
	})
	if !errors.Is(err, upstreamErr) {
		t.Fatalf("Execute() error = %v, want %v", err, upstreamErr)
	}
	if got != nil {
		t.Errorf("Execute() result = %v, want nil on error", got)
	}
	if state := b.State(); state != "closed" {
		t.Errorf("State() after one failure = %q, want %q", state, "closed")
	}
}

func TestBreakerOpensAndRejects(t *testing.T) {
	b := NewBreaker("test-trip")
	upstreamErr := errors.New("upstream unavailable")

	calls := 0
	fail := func() ([]models.CanonicalEvent, error) {
		calls++
		return nil, upstreamErr
	}

	// Below 10 requests the breaker never trips regardless of failure rate.
	for i := 0; i < 9; i++ {
		if _, err := b.Execute(fail); !errors.Is(err, upstreamErr) {
			t.Fatalf("Execute() %d error = %v, want upstream error", i, err)
		}
		if state := b.State(); state != "closed" {
			t.Fatalf("State() after %d failures = %q, want %q", i+1, state, "closed")
		}
	}

	// The 10th failure crosses the minimum request count at 100% failure rate.
	if _, err := b.Execute(fail); !errors.Is(err, upstreamErr) {
		t.Fatalf("Execute() error = %v, want upstream error", err)
	}
	if state := b.State(); state != "open" {
		t.Fatalf("State() after 10 failures = %q, want %q", state, "open")
	}

	// Open breaker rejects without invoking the function.
	before := calls
	_, err := b.Execute(fail)
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("Execute() with open breaker = %v, want ErrOpenState", err)
	}
	if calls != before {
		t.Errorf("open breaker invoked the function: %d calls, want %d", calls, before)
	}
}
