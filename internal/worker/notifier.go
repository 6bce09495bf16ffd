package worker

import (
	"context"
	"log/slog"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Outbound is one best-effort message to a chat.
type Outbound struct {
	ChatID int64
	Text   string
	Markup *tgbotapi.InlineKeyboardMarkup
}

// Sender posts an outbound message to the chat transport.
type Sender interface {
	Send(ctx context.Context, msg Outbound) error
}

// Notifier fans out cross-party notifications on a bounded worker pool.
// Delivery is best-effort: a failed or dropped notification is logged and
// never affects the ledger mutation that preceded it.
type Notifier struct {
	sender  Sender
	workers int
	logger  *slog.Logger

	jobs   chan Outbound
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewNotifier constructs the notification worker pool.
func NewNotifier(sender Sender, workers, queueSize int, logger *slog.Logger) *Notifier {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}
	return &Notifier{
		sender:  sender,
		workers: workers,
		logger:  logger,
		jobs:    make(chan Outbound, queueSize),
	}
}

// Start launches background delivery workers.
func (n *Notifier) Start(ctx context.Context) {
	n.mu.Lock()
	defer n.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	n.cancel = cancel

	for i := 0; i < n.workers; i++ {
		n.wg.Add(1)
		go n.worker(runCtx)
	}
}

// Stop waits for all workers to finish.
func (n *Notifier) Stop() {
	n.mu.Lock()
	if n.cancel != nil {
		n.cancel()
		n.cancel = nil
	}
	n.mu.Unlock()

	n.wg.Wait()
}

// Enqueue queues a notification without blocking the caller. Returns false
// when the queue is full and the message was dropped.
func (n *Notifier) Enqueue(msg Outbound) bool {
	select {
	case n.jobs <- msg:
		return true
	default:
		n.logger.Warn("notification queue full, message dropped", slog.Int64("chat_id", msg.ChatID))
		return false
	}
}

func (n *Notifier) worker(ctx context.Context) {
	defer n.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-n.jobs:
			if !ok {
				return
			}
			if err := n.sender.Send(ctx, msg); err != nil {
				n.logger.Error("notification delivery failed",
					slog.Int64("chat_id", msg.ChatID),
					slog.String("error", err.Error()),
				)
			}
		}
	}
}
