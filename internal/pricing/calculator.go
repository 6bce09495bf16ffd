package pricing

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	domainErrors "github.com/semagency/orderbot/internal/domain/errors"
	"github.com/semagency/orderbot/internal/domain/model"
)

// Referral discount applies to users with an even numeric identifier.
const referralFraction = 0.05

// Tables holds the fixed pricing configuration injected at startup.
type Tables struct {
	ComplexityPrices map[string]int64
	DefaultBasePrice int64
	PromoCodes       map[string]float64
}

// Calculator resolves base prices and discounts and computes order totals.
type Calculator struct {
	tables         Tables
	depositPercent int
}

// NewCalculator constructs Calculator with injected tables and deposit policy.
func NewCalculator(tables Tables, depositPercent int) *Calculator {
	if depositPercent <= 0 || depositPercent > 100 {
		depositPercent = 100
	}
	return &Calculator{tables: tables, depositPercent: depositPercent}
}

// BasePrice resolves the starting price for a service. Design orders are priced
// by complexity tier; every other service uses the default base price.
func (c *Calculator) BasePrice(service model.Service, complexity model.Complexity) int64 {
	if service == model.ServiceDesign {
		if price, ok := c.tables.ComplexityPrices[string(complexity)]; ok {
			return price
		}
	}
	return c.tables.DefaultBasePrice
}

// PromoDiscount looks up a promo code after case normalisation. Unknown codes
// are an error, never a zero discount.
func (c *Calculator) PromoDiscount(code string) (float64, error) {
	if fraction, ok := c.tables.PromoCodes[NormalizeCode(code)]; ok {
		return fraction, nil
	}
	return 0, domainErrors.ErrUnknownPromoCode
}

// NormalizeCode capitalises a promo code: first rune upper, the rest lower.
func NormalizeCode(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return code
	}
	runes := []rune(strings.ToLower(code))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// ReferralDiscount derives the referral fraction from user id parity.
func ReferralDiscount(userID int64) float64 {
	if userID%2 == 0 {
		return referralFraction
	}
	return 0
}

// Total computes floor(base * (1 - promo - referral)), never below zero.
func Total(basePrice int64, promoDiscount, referralDiscount float64) int64 {
	multiplier := decimal.NewFromInt(1).
		Sub(decimal.NewFromFloat(promoDiscount)).
		Sub(decimal.NewFromFloat(referralDiscount))
	total := decimal.NewFromInt(basePrice).Mul(multiplier).Floor().IntPart()
	if total < 0 {
		return 0
	}
	return total
}

// Deposit computes the upfront share of the total under the deposit policy.
func (c *Calculator) Deposit(total int64) int64 {
	return decimal.NewFromInt(total).
		Mul(decimal.NewFromInt(int64(c.depositPercent))).
		Div(decimal.NewFromInt(100)).
		Floor().
		IntPart()
}

// FullUpfront reports whether the deposit policy charges the whole price at once.
func (c *Calculator) FullUpfront() bool {
	return c.depositPercent >= 100
}

// DepositPercent exposes the configured percentage for receipt rendering.
func (c *Calculator) DepositPercent() int {
	return c.depositPercent
}
