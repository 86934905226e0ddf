// Package realtime turns database change notifications into explicit recomputation callbacks.
package realtime

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Change channels raised by the database triggers.
const (
	ChannelAttendance    = "attendance_changes"
	ChannelEmployees     = "employee_changes"
	ChannelHolidays      = "holiday_changes"
	ChannelAnnouncements = "announcement_changes"
)

const retryDelay = 2 * time.Second

// Notification is one change event received on a channel.
type Notification struct {
	Channel string
	Payload string
}

// Handler reacts to a notification. Handlers never run concurrently with each other.
type Handler func(ctx context.Context, n Notification)

// Source delivers payloads published on a channel until ctx is cancelled.
type Source interface {
	Listen(ctx context.Context, channel string, notify func(payload string)) error
}

// Session owns one listener per channel and a single dispatch goroutine.
type Session struct {
	cancels   []context.CancelFunc
	listeners sync.WaitGroup
	dispatch  sync.WaitGroup
	events    chan Notification
	closeOnce sync.Once
}

// NewSession starts listening on every channel that has a handler.
func NewSession(ctx context.Context, source Source, handlers map[string]Handler) *Session {
	s := &Session{
		events: make(chan Notification, 64),
	}

	dispatchCtx, cancelDispatch := context.WithCancel(ctx)
	s.cancels = append(s.cancels, cancelDispatch)

	for channel := range handlers {
		listenCtx, cancel := context.WithCancel(ctx)
		s.cancels = append(s.cancels, cancel)
		s.listeners.Add(1)
		go s.listen(listenCtx, source, channel)
	}

	s.dispatch.Add(1)
	go s.run(dispatchCtx, handlers)

	slog.Info("Realtime session started", "channels", len(handlers))
	return s
}

// Close cancels every listener and waits for in-flight handlers to finish.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		for _, cancel := range s.cancels {
			cancel()
		}
		s.listeners.Wait()
		s.dispatch.Wait()
		slog.Info("Realtime session closed")
	})
}

func (s *Session) listen(ctx context.Context, source Source, channel string) {
	defer s.listeners.Done()

	for {
		err := source.Listen(ctx, channel, func(payload string) {
			select {
			case s.events <- Notification{Channel: channel, Payload: payload}:
			case <-ctx.Done():
			}
		})
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			slog.Error("Realtime listener failed, retrying", "channel", channel, "error", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(retryDelay):
		}
	}
}

func (s *Session) run(ctx context.Context, handlers map[string]Handler) {
	defer s.dispatch.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case n := <-s.events:
			if h, ok := handlers[n.Channel]; ok {
				h(ctx, n)
			}
		}
	}
}
