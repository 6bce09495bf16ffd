package pricing

import (
	"go.uber.org/fx"

	"github.com/semagency/orderbot/internal/config"
)

// Module provides the price calculator built from injected configuration.
var Module = fx.Provide(newCalculator)

type calculatorParams struct {
	fx.In

	Config *config.Config
}

func newCalculator(p calculatorParams) *Calculator {
	tables := Tables{
		ComplexityPrices: p.Config.ComplexityPrices,
		DefaultBasePrice: p.Config.DefaultBasePrice,
		PromoCodes:       p.Config.PromoCodes,
	}
	return NewCalculator(tables, p.Config.DepositPercent)
}
