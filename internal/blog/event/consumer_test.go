package event

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shandysiswandi/goblog/internal/blog/entity"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgupload"
)

type handlerFunc func(ctx context.Context, event entity.ImageRemovedEvent) error

func (h handlerFunc) Handle(ctx context.Context, event entity.ImageRemovedEvent) error {
	return h(ctx, event)
}

func TestCleanupConsumerRetriesAndIdempotent(t *testing.T) {
	bus := NewBus(10)

	var attempts int32
	done := make(chan struct{})
	handler := handlerFunc(func(ctx context.Context, event entity.ImageRemovedEvent) error {
		n := atomic.AddInt32(&attempts, 1)
		if n < 3 {
			return errors.New("temporary failure")
		}
		close(done)
		return nil
	})

	consumer := NewCleanupConsumer(bus, handler, ConsumerConfig{
		Workers:     1,
		MaxRetries:  2,
		BaseBackoff: time.Millisecond,
	})
	consumer.Start()

	event := entity.ImageRemovedEvent{EventID: "evt-1", BlogID: "blog-1", Image: "a.png"}
	if err := bus.Publish(context.Background(), event); err != nil {
		t.Fatalf("publish event: %v", err)
	}
	if err := bus.Publish(context.Background(), event); err != nil {
		t.Fatalf("publish duplicate: %v", err)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for handler")
	}

	if err := consumer.Stop(context.Background()); err != nil {
		t.Fatalf("stop consumer: %v", err)
	}

	if got := atomic.LoadInt32(&attempts); got != 3 {
		t.Fatalf("expected 3 attempts, got %d", got)
	}
}

func TestCleanupConsumerDedupWindowIsBounded(t *testing.T) {
	bus := NewBus(10)

	var handled int32
	handler := handlerFunc(func(ctx context.Context, event entity.ImageRemovedEvent) error {
		atomic.AddInt32(&handled, 1)
		return nil
	})

	consumer := NewCleanupConsumer(bus, handler, ConsumerConfig{
		Workers:     1,
		BaseBackoff: time.Millisecond,
		DedupWindow: 1,
	})
	consumer.Start()

	for _, id := range []string{"evt-1", "evt-1", "evt-2", "evt-1"} {
		if err := bus.Publish(context.Background(), entity.ImageRemovedEvent{EventID: id, Image: "a.png"}); err != nil {
			t.Fatalf("publish %s: %v", id, err)
		}
	}

	if err := consumer.Stop(context.Background()); err != nil {
		t.Fatalf("stop consumer: %v", err)
	}

	// evt-2 evicts evt-1, so the last evt-1 is handled again.
	if got := atomic.LoadInt32(&handled); got != 3 {
		t.Fatalf("expected 3 handled events, got %d", got)
	}
	if got := consumer.seen.len(); got != 1 {
		t.Fatalf("expected 1 remembered id, got %d", got)
	}
}

func TestRecentIDsEvictsOldest(t *testing.T) {
	ids := newRecentIDs(2)

	for _, id := range []string{"a", "b"} {
		if !ids.add(id) {
			t.Fatalf("expected %s to be new", id)
		}
	}
	if ids.add("a") {
		t.Fatal("expected a to be a duplicate")
	}

	if !ids.add("c") {
		t.Fatal("expected c to be new")
	}
	if got := ids.len(); got != 2 {
		t.Fatalf("expected 2 ids, got %d", got)
	}
	if !ids.add("a") {
		t.Fatal("expected a to be evicted")
	}
	if ids.add("c") {
		t.Fatal("expected c to still be remembered")
	}
}

func TestCleanupConsumerStopCutsBackoff(t *testing.T) {
	bus := NewBus(1)

	started := make(chan struct{})
	handler := handlerFunc(func(ctx context.Context, event entity.ImageRemovedEvent) error {
		select {
		case <-started:
		default:
			close(started)
		}
		return errors.New("always failing")
	})

	consumer := NewCleanupConsumer(bus, handler, ConsumerConfig{
		Workers:     1,
		MaxRetries:  5,
		BaseBackoff: time.Hour,
	})
	consumer.Start()

	if err := bus.Publish(context.Background(), entity.ImageRemovedEvent{EventID: "evt-1", Image: "a.png"}); err != nil {
		t.Fatalf("publish event: %v", err)
	}
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := consumer.Stop(ctx); err != nil {
		t.Fatalf("stop consumer: %v", err)
	}

	// a second Stop is a no-op
	if err := consumer.Stop(ctx); err != nil {
		t.Fatalf("second stop: %v", err)
	}

	if err := bus.Publish(context.Background(), entity.ImageRemovedEvent{EventID: "evt-2"}); !errors.Is(err, ErrBusClosed) {
		t.Fatalf("publish after stop err = %v, want %v", err, ErrBusClosed)
	}
}

func TestImageCleanerRemovesFile(t *testing.T) {
	dir := t.TempDir()
	storage, err := pkgupload.New(dir, 0, nil)
	if err != nil {
		t.Fatalf("new storage: %v", err)
	}

	path := filepath.Join(dir, "a.png")
	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	cleaner := ImageCleaner{Files: storage}
	event := entity.ImageRemovedEvent{EventID: "evt-1", Image: "a.png"}
	if err := cleaner.Handle(context.Background(), event); err != nil {
		t.Fatalf("Handle() err = %v", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("file still present, stat err = %v", err)
	}

	// already gone is fine
	if err := cleaner.Handle(context.Background(), event); err != nil {
		t.Fatalf("Handle() second err = %v", err)
	}

	if err := cleaner.Handle(context.Background(), entity.ImageRemovedEvent{EventID: "evt-2"}); err == nil {
		t.Fatal("Handle() expected error for empty image name")
	}
}
