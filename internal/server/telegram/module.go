package telegram

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/semagency/orderbot/internal/config"
	"github.com/semagency/orderbot/internal/session"
	"github.com/semagency/orderbot/internal/worker"
)

// Module wires the Telegram transport: API client, conversation handler and
// long-poll consumer.
var Module = fx.Options(
	fx.Provide(newBot),
	fx.Provide(func(b *Bot) Sender { return b }),
	fx.Provide(func(b *Bot) MembershipChecker { return b }),
	fx.Provide(func(b *Bot) worker.Sender { return b }),
	fx.Provide(newHandler),
	fx.Provide(func(h *Handler) UpdateHandler { return h }),
	fx.Provide(newPoller),
)

type botParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newBot(p botParams) (*Bot, error) {
	return NewBot(p.Config.BotToken, p.Config.RequiredChannel, p.Logger)
}

type handlerParams struct {
	fx.In

	Facade   Facade
	Sessions *session.Manager
	Sender   Sender
	Members  MembershipChecker
	Notifier *worker.Notifier
	Config   *config.Config
	Logger   *slog.Logger
}

func newHandler(p handlerParams) *Handler {
	return NewHandler(p.Facade, p.Sessions, p.Sender, p.Members, p.Notifier, p.Config, p.Logger)
}

type pollerParams struct {
	fx.In

	Bot     *Bot
	Handler UpdateHandler
	Config  *config.Config
	Logger  *slog.Logger
}

func newPoller(p pollerParams) *Poller {
	return NewPoller(p.Bot, p.Handler, p.Config.UpdateTimeout, p.Logger)
}
