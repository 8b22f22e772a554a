package event

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/shandysiswandi/goblog/internal/blog/entity"
)

type Handler interface {
	Handle(ctx context.Context, event entity.ImageRemovedEvent) error
}

type ConsumerConfig struct {
	Workers     int
	MaxRetries  int
	BaseBackoff time.Duration
	// DedupWindow is how many recent event IDs are kept for duplicate
	// detection. Non-positive means 1024.
	DedupWindow int
}

// CleanupConsumer drains the bus with a fixed pool of workers. Each event is
// handled at most once per recent EventID and retried with exponential backoff.
type CleanupConsumer struct {
	bus         *Bus
	handler     Handler
	workers     int
	maxRetries  int
	baseBackoff time.Duration
	seen        *recentIDs
	wg          sync.WaitGroup
	quit        chan struct{}
	stopOnce    sync.Once
}

func NewCleanupConsumer(bus *Bus, handler Handler, cfg ConsumerConfig) *CleanupConsumer {
	workers := cfg.Workers
	if workers < 1 {
		workers = 2
	}

	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	baseBackoff := cfg.BaseBackoff
	if baseBackoff <= 0 {
		baseBackoff = 100 * time.Millisecond
	}

	return &CleanupConsumer{
		bus:         bus,
		handler:     handler,
		workers:     workers,
		maxRetries:  maxRetries,
		baseBackoff: baseBackoff,
		seen:        newRecentIDs(cfg.DedupWindow),
		quit:        make(chan struct{}),
	}
}

func (c *CleanupConsumer) Start() {
	for i := 0; i < c.workers; i++ {
		c.wg.Add(1)
		go c.worker()
	}
}

// Stop closes the bus, lets workers drain what is already queued, and waits
// for them until ctx is done. Pending retry backoffs are cut short.
func (c *CleanupConsumer) Stop(ctx context.Context) error {
	c.stopOnce.Do(func() {
		if c.bus != nil {
			c.bus.Close()
		}
		close(c.quit)
	})

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *CleanupConsumer) worker() {
	defer c.wg.Done()

	for event := range c.bus.Subscribe() {
		c.processEvent(event)
	}
}

func (c *CleanupConsumer) processEvent(event entity.ImageRemovedEvent) {
	if c.handler == nil {
		return
	}

	if event.EventID != "" {
		if !c.seen.add(event.EventID) {
			slog.Info("skip duplicate image removed event", "event_id", event.EventID, "blog_id", event.BlogID)
			return
		}
	}

	backoff := c.baseBackoff
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		err := c.handler.Handle(context.Background(), event)
		if err == nil {
			return
		}

		if attempt == c.maxRetries {
			slog.Error("failed to remove blog image after retries", "event_id", event.EventID, "image", event.Image, "error", err)
			return
		}

		if !c.sleepBackoff(backoff) {
			slog.Warn("image cleanup abandoned on shutdown", "event_id", event.EventID, "image", event.Image)
			return
		}
		backoff *= 2
	}
}

func (c *CleanupConsumer) sleepBackoff(d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-c.quit:
		return false
	}
}

type Remover interface {
	Remove(ctx context.Context, name string) error
}

// ImageCleaner deletes the stored file named by the event.
type ImageCleaner struct {
	Files Remover
}

func (h ImageCleaner) Handle(ctx context.Context, event entity.ImageRemovedEvent) error {
	if event.Image == "" {
		return errors.New("missing image name")
	}

	if err := h.Files.Remove(ctx, event.Image); err != nil {
		return err
	}

	slog.InfoContext(ctx, "removed blog image", "event_id", event.EventID, "blog_id", event.BlogID, "image", event.Image)
	return nil
}
