package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	BotToken            string
	AdminID             int64
	RequiredChannel     string
	RequiredChannelLink string
	DatabaseURI         string
	RunAddress          string
	OpsTokenHash        string
	CardNumber          string
	PaymentLinkTemplate string
	DepositPercent      int
	DoubleApproval      bool
	PromoCodes          map[string]float64
	ComplexityPrices    map[string]int64
	DefaultBasePrice    int64
	UpdateTimeout       int
	NotifierPoolSize    int
	NotifierQueueSize   int
	ShutdownTimeout     time.Duration
}

const (
	defaultRunAddress          = ":8080"
	defaultCardNumber          = "9860 3501 4351 9071"
	defaultPaymentLinkTemplate = "https://click.uz/pay?order_id=%d&amount=%d&ref=%s"
	defaultDepositPercent      = 25
	defaultPromoCodes          = "Samandar06:0.10,Semagensy:0.05"
	defaultComplexityPrices    = "minimal:100000,medium:150000,high:200000"
	defaultBasePrice           = 100_000
	defaultUpdateTimeout       = 60
	defaultNotifierPoolSize    = 4
	defaultNotifierQueueSize   = 64
	defaultShutdownTimeout     = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		BotToken:            getString(lookup, "BOT_TOKEN", ""),
		RequiredChannel:     getString(lookup, "REQUIRED_CHANNEL", ""),
		RequiredChannelLink: getString(lookup, "REQUIRED_CHANNEL_LINK", ""),
		DatabaseURI:         getString(lookup, "DATABASE_URI", ""),
		RunAddress:          getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		OpsTokenHash:        getString(lookup, "OPS_TOKEN_HASH", ""),
		CardNumber:          getString(lookup, "CARD_NUMBER", defaultCardNumber),
		PaymentLinkTemplate: getString(lookup, "PAYMENT_LINK_TEMPLATE", defaultPaymentLinkTemplate),
		DepositPercent:      getInt(lookup, "DEPOSIT_PERCENT", defaultDepositPercent),
		DoubleApproval:      getBool(lookup, "DOUBLE_APPROVAL", false),
		DefaultBasePrice:    int64(getInt(lookup, "DEFAULT_BASE_PRICE", defaultBasePrice)),
		UpdateTimeout:       getInt(lookup, "UPDATE_TIMEOUT", defaultUpdateTimeout),
		NotifierPoolSize:    getInt(lookup, "NOTIFIER_POOL_SIZE", defaultNotifierPoolSize),
		NotifierQueueSize:   getInt(lookup, "NOTIFIER_QUEUE_SIZE", defaultNotifierQueueSize),
		ShutdownTimeout:     getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	adminIDStr := getString(lookup, "ADMIN_ID", "")
	promoCodesStr := getString(lookup, "PROMO_CODES", defaultPromoCodes)
	complexityPricesStr := getString(lookup, "COMPLEXITY_PRICES", defaultComplexityPrices)

	fs := flag.NewFlagSet("orderbot", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	shutdownTimeoutStr := cfg.ShutdownTimeout.String()

	fs.StringVar(&cfg.BotToken, "t", cfg.BotToken, "Telegram bot token")
	fs.StringVar(&adminIDStr, "admin", adminIDStr, "Admin numeric user ID")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "Ops HTTP listen address")
	fs.StringVar(&cfg.RequiredChannel, "channel", cfg.RequiredChannel, "Required channel username")
	fs.StringVar(&cfg.RequiredChannelLink, "channel-link", cfg.RequiredChannelLink, "Required channel invite link")
	fs.StringVar(&cfg.CardNumber, "card", cfg.CardNumber, "Payment card number shown to customers")
	fs.IntVar(&cfg.DepositPercent, "deposit", cfg.DepositPercent, "Upfront deposit percentage (100 = full price)")
	fs.BoolVar(&cfg.DoubleApproval, "double-approval", cfg.DoubleApproval, "Require customer confirmation after admin approval")
	fs.StringVar(&promoCodesStr, "promo-codes", promoCodesStr, "Promo code table, CODE:FRACTION pairs")
	fs.StringVar(&complexityPricesStr, "complexity-prices", complexityPricesStr, "Complexity price table, TIER:PRICE pairs")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if adminIDStr == "" {
		return nil, fmt.Errorf("admin ID must be provided")
	}
	if cfg.AdminID, err = strconv.ParseInt(adminIDStr, 10, 64); err != nil {
		return nil, fmt.Errorf("invalid admin ID: %w", err)
	}

	if cfg.PromoCodes, err = parsePromoCodes(promoCodesStr); err != nil {
		return nil, err
	}

	if cfg.ComplexityPrices, err = parseComplexityPrices(complexityPricesStr); err != nil {
		return nil, err
	}

	if cfg.DepositPercent <= 0 || cfg.DepositPercent > 100 {
		cfg.DepositPercent = defaultDepositPercent
	}

	if cfg.UpdateTimeout <= 0 {
		cfg.UpdateTimeout = defaultUpdateTimeout
	}

	if cfg.NotifierPoolSize <= 0 {
		cfg.NotifierPoolSize = defaultNotifierPoolSize
	}

	if cfg.NotifierQueueSize <= 0 {
		cfg.NotifierQueueSize = defaultNotifierQueueSize
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DefaultBasePrice <= 0 {
		cfg.DefaultBasePrice = defaultBasePrice
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("bot token must be provided")
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func parsePromoCodes(raw string) (map[string]float64, error) {
	table := make(map[string]float64)
	for _, pair := range splitPairs(raw) {
		code, value, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("invalid promo code entry %q", pair)
		}
		fraction, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || fraction < 0 || fraction >= 1 {
			return nil, fmt.Errorf("invalid promo discount in %q", pair)
		}
		table[strings.TrimSpace(code)] = fraction
	}
	return table, nil
}

func parseComplexityPrices(raw string) (map[string]int64, error) {
	table := make(map[string]int64)
	for _, pair := range splitPairs(raw) {
		tier, value, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("invalid complexity price entry %q", pair)
		}
		price, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil || price <= 0 {
			return nil, fmt.Errorf("invalid price in %q", pair)
		}
		table[strings.TrimSpace(tier)] = price
	}
	return table, nil
}

func splitPairs(raw string) []string {
	var pairs []string
	for _, pair := range strings.Split(raw, ",") {
		if pair = strings.TrimSpace(pair); pair != "" {
			pairs = append(pairs, pair)
		}
	}
	return pairs
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
