package usecase

import (
	"go.uber.org/fx"

	"github.com/semagency/orderbot/internal/config"
	"github.com/semagency/orderbot/internal/domain/repository"
	"github.com/semagency/orderbot/internal/pricing"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(newOrderUseCase)

type orderUseCaseParams struct {
	fx.In

	Orders     repository.OrderRepository
	Calculator *pricing.Calculator
	Config     *config.Config
}

func newOrderUseCase(p orderUseCaseParams) *OrderUseCase {
	return NewOrderUseCase(p.Orders, p.Calculator, p.Config.AdminID)
}
