package di

import (
	"go.uber.org/fx"

	"github.com/semagency/orderbot/internal/app"
	"github.com/semagency/orderbot/internal/config"
	"github.com/semagency/orderbot/internal/logger"
	"github.com/semagency/orderbot/internal/pkg/auth"
	"github.com/semagency/orderbot/internal/pricing"
	"github.com/semagency/orderbot/internal/server/http/handlers"
	"github.com/semagency/orderbot/internal/server/http/router"
	"github.com/semagency/orderbot/internal/server/telegram"
	"github.com/semagency/orderbot/internal/session"
	"github.com/semagency/orderbot/internal/storage/postgres"
	"github.com/semagency/orderbot/internal/usecase"
)

// Module assembles the full application graph.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		pricing.Module,
		session.Module,
		usecase.Module,
		fx.Provide(func(f *app.IntakeFacade) telegram.Facade { return f }),
		fx.Provide(func(f *app.IntakeFacade) handlers.OpsFacade { return f }),
		fx.Provide(func(s *postgres.Storage) handlers.HealthChecker { return s }),
		telegram.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
