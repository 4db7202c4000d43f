package driver

import (
	"context"
	"errors"
	"testing"

	"github.com/pixil98/go-testutil"
)

type fakeManager struct {
	ticks int
	err   error
}

func (m *fakeManager) Tick(ctx context.Context) error {
	m.ticks++
	return m.err
}

func TestDriverTick(t *testing.T) {
	a := &fakeManager{}
	b := &fakeManager{}
	d := NewDriver([]Manager{a, b})

	if err := d.Tick(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "a ticked", a.ticks, 1)
	testutil.AssertEqual(t, "b ticked", b.ticks, 1)
}

func TestDriverTickStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	a := &fakeManager{err: boom}
	b := &fakeManager{}
	d := NewDriver([]Manager{a, b})

	if err := d.Tick(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	testutil.AssertEqual(t, "b skipped", b.ticks, 0)
}
