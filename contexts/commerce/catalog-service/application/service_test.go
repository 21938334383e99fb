package application

import (
	"context"
	"errors"
	"testing"
	"time"

	domainerrors "storefront/contexts/commerce/catalog-service/domain/errors"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func newTestService() Service {
	return Service{
		Version:   "v1",
		Pod:       "catalog-test",
		StartedAt: time.Now().UTC().Add(-time.Minute),
	}
}

func TestIdentityReportsFixedFields(t *testing.T) {
	clock := fixedClock{now: time.Date(2026, time.March, 1, 9, 30, 0, 0, time.UTC)}
	service := Service{
		Version:   "v7",
		Pod:       "catalog-abc",
		StartedAt: clock.now.Add(-90 * time.Second),
		Clock:     clock,
	}

	identity := service.Identity(context.Background())
	if identity.Service != "catalog" {
		t.Fatalf("expected service catalog, got %q", identity.Service)
	}
	if identity.Version != "v7" || identity.Pod != "catalog-abc" {
		t.Fatalf("unexpected identity fields: %+v", identity)
	}
	if !identity.Timestamp.Equal(clock.now) {
		t.Fatalf("expected timestamp %v, got %v", clock.now, identity.Timestamp)
	}
	if identity.Uptime != 90*time.Second {
		t.Fatalf("expected 90s uptime, got %v", identity.Uptime)
	}
}

func TestClampDelayMillis(t *testing.T) {
	cases := []struct {
		requested int
		want      int
	}{
		{-5, 0},
		{0, 0},
		{250, 250},
		{30000, 30000},
		{30001, 30000},
		{1 << 30, 30000},
	}
	for _, tc := range cases {
		if got := clampDelayMillis(tc.requested); got != tc.want {
			t.Fatalf("clampDelayMillis(%d) = %d, want %d", tc.requested, got, tc.want)
		}
	}
}

func TestDelayedIdentityWaitsAtLeastClampedDuration(t *testing.T) {
	service := newTestService()

	start := time.Now()
	item, err := service.DelayedIdentity(context.Background(), 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Fatalf("expected at least 30ms elapsed, got %v", elapsed)
	}
	if item.DelayedMillis != 30 {
		t.Fatalf("expected delayed 30, got %d", item.DelayedMillis)
	}
}

func TestDelayedIdentityClampsNegativeToZero(t *testing.T) {
	service := newTestService()

	start := time.Now()
	item, err := service.DelayedIdentity(context.Background(), -5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.DelayedMillis != 0 {
		t.Fatalf("expected delayed 0, got %d", item.DelayedMillis)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("zero delay should not wait, took %v", elapsed)
	}
}

func TestDelayedIdentityAbortsWhenCallerLeaves(t *testing.T) {
	service := newTestService()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := service.DelayedIdentity(ctx, 5000)
	if err == nil {
		t.Fatal("expected context error, got nil")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("abandoned wait should return promptly, took %v", elapsed)
	}
}

func TestFailNeverSucceeds(t *testing.T) {
	service := newTestService()
	for i := 0; i < 3; i++ {
		identity, err := service.Fail(context.Background())
		if !errors.Is(err, domainerrors.ErrSimulatedFailure) {
			t.Fatalf("call %d: expected simulated failure, got %v", i, err)
		}
		if identity.Pod != "catalog-test" {
			t.Fatalf("call %d: failure should still carry identity, got %+v", i, identity)
		}
	}
}
