package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"
)

type stubSender struct {
	mu   sync.Mutex
	sent []Outbound
	err  error
	done chan struct{}
}

func (s *stubSender) Send(ctx context.Context, msg Outbound) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, msg)
	if s.done != nil {
		select {
		case s.done <- struct{}{}:
		default:
		}
	}
	return s.err
}

func (s *stubSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNotifierDeliversQueuedMessages(t *testing.T) {
	sender := &stubSender{done: make(chan struct{}, 1)}
	n := NewNotifier(sender, 2, 8, discardLogger())
	n.Start(context.Background())
	defer n.Stop()

	if !n.Enqueue(Outbound{ChatID: 1, Text: "hello"}) {
		t.Fatal("expected enqueue to succeed")
	}

	select {
	case <-sender.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for delivery")
	}

	if sender.count() != 1 {
		t.Fatalf("expected one delivery, got %d", sender.count())
	}
}

func TestNotifierDropsWhenQueueFull(t *testing.T) {
	sender := &stubSender{}
	n := NewNotifier(sender, 1, 1, discardLogger())
	// not started: the single queue slot fills and the next message is dropped

	if !n.Enqueue(Outbound{ChatID: 1, Text: "first"}) {
		t.Fatal("expected first enqueue to succeed")
	}
	if n.Enqueue(Outbound{ChatID: 2, Text: "second"}) {
		t.Fatal("expected second enqueue to be dropped")
	}
}

func TestNotifierSurvivesSendErrors(t *testing.T) {
	sender := &stubSender{err: errors.New("network"), done: make(chan struct{}, 2)}
	n := NewNotifier(sender, 1, 8, discardLogger())
	n.Start(context.Background())
	defer n.Stop()

	n.Enqueue(Outbound{ChatID: 1, Text: "first"})
	n.Enqueue(Outbound{ChatID: 2, Text: "second"})

	for i := 0; i < 2; i++ {
		select {
		case <-sender.done:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for deliveries")
		}
	}
}

func TestNotifierStopWaitsForWorkers(t *testing.T) {
	sender := &stubSender{}
	n := NewNotifier(sender, 3, 8, discardLogger())
	n.Start(context.Background())
	n.Stop()
	// double stop must be safe
	n.Stop()
}
