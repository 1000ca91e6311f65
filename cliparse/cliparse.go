package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/danielhkuo/hexaco-protocol/models"
)

type Config struct {
	Port         int
	PublicOrigin string

	// Checkout collaborator (Stripe hosted checkout)
	StripeSecretKey string
	BasicPriceID    string
	PremiumPriceID  string
	DualPriceID     string

	// Narrative generation collaborator (Gemini)
	GeminiAPIKey string
	GeminiModel  string

	// SkipPayment lets unlock succeed without a paid marker. Explicit
	// caller-owned config, replacing the hidden client-side bypass the
	// original app kept in localStorage.
	SkipPayment bool

	// LenientScoring substitutes neutral (3) for missing answers instead of
	// failing. Default is strict.
	LenientScoring bool
}

// ParseFlags validates flags and fills unset values from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("hexaco-protocol", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.PublicOrigin, "origin", "", "Public origin for payment redirect URLs")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.StripeSecretKey, "stripe-key", "", "Stripe secret key (prefer env)")
	fs.StringVar(&cfg.GeminiAPIKey, "gemini-key", "", "Gemini API key (prefer env)")
	fs.StringVar(&cfg.GeminiModel, "gemini-model", "", "Gemini model name")

	// Behavior toggles
	fs.BoolVar(&cfg.SkipPayment, "skip-payment", false, "Unlock premium without a payment marker (dev only)")
	fs.BoolVar(&cfg.LenientScoring, "lenient-scoring", false, "Substitute neutral for missing answers instead of failing")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3321 // default
		}
	}

	if cfg.PublicOrigin == "" {
		cfg.PublicOrigin = os.Getenv("PUBLIC_ORIGIN")
	}
	if cfg.PublicOrigin == "" {
		cfg.PublicOrigin = "http://localhost:5173"
	}

	// Collaborator credentials are optional: the narrative generator has a
	// deterministic local fallback, and checkout surfaces a user-visible
	// failure when unconfigured.
	if cfg.StripeSecretKey == "" {
		cfg.StripeSecretKey = os.Getenv("STRIPE_SECRET_KEY")
	}
	if cfg.GeminiAPIKey == "" {
		cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.GeminiModel == "" {
		cfg.GeminiModel = os.Getenv("GEMINI_MODEL")
	}

	cfg.BasicPriceID = os.Getenv("HEXACO_BASIC_PRICE_ID")
	cfg.PremiumPriceID = os.Getenv("HEXACO_PREMIUM_PRICE_ID")
	cfg.DualPriceID = os.Getenv("HEXACO_DUAL_PRICE_ID")

	if !cfg.SkipPayment {
		cfg.SkipPayment = os.Getenv("SKIP_PAYMENT") == "true"
	}
	if !cfg.LenientScoring {
		cfg.LenientScoring = os.Getenv("LENIENT_SCORING") == "true"
	}

	return cfg, nil
}

// PriceIDs returns the tier to Stripe price-ID mapping. Unset tiers map to
// empty strings, which the checkout client rejects before calling out.
func (c Config) PriceIDs() map[string]string {
	return map[string]string{
		models.TierBasic:   c.BasicPriceID,
		models.TierPremium: c.PremiumPriceID,
		models.TierDual:    c.DualPriceID,
	}
}
