package telegram

import (
	"context"
	"log/slog"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// UpdateHandler consumes one inbound transport event.
type UpdateHandler interface {
	HandleUpdate(ctx context.Context, update tgbotapi.Update)
}

// Poller drains the long-poll update channel and feeds the handler one
// update at a time.
type Poller struct {
	bot     *Bot
	handler UpdateHandler
	timeout int
	logger  *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewPoller constructs the update poller.
func NewPoller(bot *Bot, handler UpdateHandler, timeout int, logger *slog.Logger) *Poller {
	if timeout <= 0 {
		timeout = 60
	}
	return &Poller{bot: bot, handler: handler, timeout: timeout, logger: logger}
}

// Start begins consuming updates in the background.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = p.timeout
	updates := p.bot.API().GetUpdatesChan(cfg)

	p.wg.Add(1)
	go p.run(runCtx, updates)
}

// Stop terminates long polling and waits for in-flight handling to finish.
func (p *Poller) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.mu.Unlock()

	p.bot.API().StopReceivingUpdates()
	p.wg.Wait()
}

func (p *Poller) run(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	defer p.wg.Done()
	p.logger.Info("telegram poller started")
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			p.handler.HandleUpdate(ctx, update)
		}
	}
}
