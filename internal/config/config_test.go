package config

import (
	"testing"
	"time"
)

func lookupFrom(env map[string]string) envLookup {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func minimalEnv() map[string]string {
	return map[string]string{
		"BOT_TOKEN":    "test-token",
		"ADMIN_ID":     "555",
		"DATABASE_URI": "postgres://localhost/orderbot",
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := load(nil, lookupFrom(minimalEnv()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BotToken != "test-token" || cfg.AdminID != 555 {
		t.Fatalf("unexpected credentials: %q %d", cfg.BotToken, cfg.AdminID)
	}
	if cfg.RunAddress != defaultRunAddress {
		t.Fatalf("expected default run address, got %q", cfg.RunAddress)
	}
	if cfg.DepositPercent != defaultDepositPercent {
		t.Fatalf("expected default deposit percent, got %d", cfg.DepositPercent)
	}
	if cfg.DoubleApproval {
		t.Fatal("double approval must default to off")
	}
	if cfg.PromoCodes["Samandar06"] != 0.10 || cfg.PromoCodes["Semagensy"] != 0.05 {
		t.Fatalf("unexpected promo table: %v", cfg.PromoCodes)
	}
	if cfg.ComplexityPrices["medium"] != 150000 {
		t.Fatalf("unexpected complexity table: %v", cfg.ComplexityPrices)
	}
	if cfg.ShutdownTimeout != defaultShutdownTimeout {
		t.Fatalf("expected default shutdown timeout, got %v", cfg.ShutdownTimeout)
	}
}

func TestLoadRequiresBotToken(t *testing.T) {
	env := minimalEnv()
	delete(env, "BOT_TOKEN")
	if _, err := load(nil, lookupFrom(env)); err == nil {
		t.Fatal("expected error for missing bot token")
	}
}

func TestLoadRequiresAdminID(t *testing.T) {
	env := minimalEnv()
	delete(env, "ADMIN_ID")
	if _, err := load(nil, lookupFrom(env)); err == nil {
		t.Fatal("expected error for missing admin id")
	}
}

func TestLoadRequiresDatabaseURI(t *testing.T) {
	env := minimalEnv()
	delete(env, "DATABASE_URI")
	if _, err := load(nil, lookupFrom(env)); err == nil {
		t.Fatal("expected error for missing database URI")
	}
}

func TestLoadFlagsOverrideEnvironment(t *testing.T) {
	args := []string{
		"-deposit", "100",
		"-double-approval",
		"-card", "1111 2222 3333 4444",
		"-shutdown-timeout", "3s",
	}
	cfg, err := load(args, lookupFrom(minimalEnv()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DepositPercent != 100 {
		t.Fatalf("expected deposit 100, got %d", cfg.DepositPercent)
	}
	if !cfg.DoubleApproval {
		t.Fatal("expected double approval enabled")
	}
	if cfg.CardNumber != "1111 2222 3333 4444" {
		t.Fatalf("unexpected card number %q", cfg.CardNumber)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Fatalf("expected 3s shutdown timeout, got %v", cfg.ShutdownTimeout)
	}
}

func TestLoadCustomPromoTable(t *testing.T) {
	env := minimalEnv()
	env["PROMO_CODES"] = "Spring:0.15,Friend:0.07"
	cfg, err := load(nil, lookupFrom(env))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PromoCodes["Spring"] != 0.15 || cfg.PromoCodes["Friend"] != 0.07 {
		t.Fatalf("unexpected promo table: %v", cfg.PromoCodes)
	}
}

func TestLoadRejectsMalformedPromoTable(t *testing.T) {
	env := minimalEnv()
	env["PROMO_CODES"] = "Spring:1.50"
	if _, err := load(nil, lookupFrom(env)); err == nil {
		t.Fatal("expected error for out-of-range discount")
	}
}

func TestLoadRejectsMalformedComplexityTable(t *testing.T) {
	env := minimalEnv()
	env["COMPLEXITY_PRICES"] = "medium:free"
	if _, err := load(nil, lookupFrom(env)); err == nil {
		t.Fatal("expected error for non-numeric price")
	}
}

func TestLoadClampsInvalidDeposit(t *testing.T) {
	env := minimalEnv()
	env["DEPOSIT_PERCENT"] = "150"
	cfg, err := load(nil, lookupFrom(env))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DepositPercent != defaultDepositPercent {
		t.Fatalf("expected fallback deposit, got %d", cfg.DepositPercent)
	}
}
