// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"

	"github.com/danielhkuo/hexaco-protocol/models"
)

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3321 {
		t.Errorf("expected default port 3321, got %d", cfg.Port)
	}
	if cfg.PublicOrigin != "http://localhost:5173" {
		t.Errorf("expected default origin, got %q", cfg.PublicOrigin)
	}
	if cfg.SkipPayment || cfg.LenientScoring {
		t.Error("behavior toggles should default to off")
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("PUBLIC_ORIGIN", "https://hexaco.example.com")
	os.Setenv("STRIPE_SECRET_KEY", "sk_env")
	os.Setenv("GEMINI_API_KEY", "gm_env")
	os.Setenv("HEXACO_PREMIUM_PRICE_ID", "price_env")
	os.Setenv("SKIP_PAYMENT", "true")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.PublicOrigin != "https://hexaco.example.com" {
		t.Errorf("unexpected origin %q", cfg.PublicOrigin)
	}
	if cfg.StripeSecretKey != "sk_env" {
		t.Errorf("unexpected stripe key %q", cfg.StripeSecretKey)
	}
	if cfg.GeminiAPIKey != "gm_env" {
		t.Errorf("unexpected gemini key %q", cfg.GeminiAPIKey)
	}
	if cfg.PremiumPriceID != "price_env" {
		t.Errorf("unexpected premium price id %q", cfg.PremiumPriceID)
	}
	if !cfg.SkipPayment {
		t.Error("expected SkipPayment from env")
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("STRIPE_SECRET_KEY", "sk_env")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-stripe-key", "sk_cli"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.StripeSecretKey != "sk_cli" {
		t.Errorf("CLI should override env: got %q", cfg.StripeSecretKey)
	}
}

func TestParseFlags_InvalidPortEnv(t *testing.T) {
	os.Setenv("PORT", "not-a-number")
	defer os.Clearenv()

	if _, err := ParseFlags([]string{}); err == nil {
		t.Fatal("expected error for invalid PORT")
	}
}

func TestParseFlags_CollaboratorKeysOptional(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatalf("missing collaborator keys should not fail startup: %v", err)
	}
	if cfg.StripeSecretKey != "" || cfg.GeminiAPIKey != "" {
		t.Error("expected empty collaborator credentials")
	}
}

func TestPriceIDs(t *testing.T) {
	cfg := Config{
		BasicPriceID:   "price_b",
		PremiumPriceID: "price_p",
		DualPriceID:    "price_d",
	}

	prices := cfg.PriceIDs()
	if prices[models.TierBasic] != "price_b" {
		t.Errorf("basic price = %q", prices[models.TierBasic])
	}
	if prices[models.TierPremium] != "price_p" {
		t.Errorf("premium price = %q", prices[models.TierPremium])
	}
	if prices[models.TierDual] != "price_d" {
		t.Errorf("dual price = %q", prices[models.TierDual])
	}
	if len(prices) != 3 {
		t.Errorf("expected 3 mapped tiers, got %d", len(prices))
	}
}
