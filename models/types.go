package models

import "time"

// Session lifecycle states
const (
	StateLanding         = "landing"
	StateInProgress      = "in_progress"
	StateCompleted       = "completed"
	StatePaywallShown    = "paywall_shown"
	StatePremiumUnlocked = "premium_unlocked"
)

// Purchase tier constants
const (
	TierBasic   = "basic"
	TierPremium = "premium"
	TierDual    = "dual"
)

// Likert scale bounds
const (
	AnswerMin     = 1
	AnswerMax     = 5
	AnswerNeutral = 3
)

// TotalItems is the fixed questionnaire length.
const TotalItems = 60

// Request types

type AnswerRequest struct {
	Value int `json:"value"`
}

type CheckoutRequest struct {
	Tier string `json:"tier"`
}

type UnlockRequest struct {
	Tier string `json:"tier"`
	Paid bool   `json:"paid"`
}

// Response types

type StartSessionResponse struct {
	SessionID      string    `json:"session_id"`
	State          string    `json:"state"`
	Item           Item      `json:"item"`
	TotalQuestions int       `json:"total_questions"`
	StartedAt      time.Time `json:"started_at"`
}

type SessionStateResponse struct {
	SessionID      string   `json:"session_id"`
	State          string   `json:"state"`
	Cursor         int      `json:"cursor"`
	TotalQuestions int      `json:"total_questions"`
	Item           *Item    `json:"item,omitempty"`
	Options        []Likert `json:"options,omitempty"`
	MinutesLeft    int      `json:"minutes_left,omitempty"`
	Tier           string   `json:"tier,omitempty"`
}

type AnswerResponse struct {
	State          string `json:"state"`
	Cursor         int    `json:"cursor"`
	Completed      bool   `json:"completed"`
	Item           *Item  `json:"item,omitempty"`
	ElapsedSeconds int    `json:"elapsed_seconds,omitempty"`
}

type BackResponse struct {
	State  string `json:"state"`
	Cursor int    `json:"cursor"`
	Item   *Item  `json:"item,omitempty"`
}

type RestartResponse struct {
	State string `json:"state"`
}

type ResultsResponse struct {
	Scores         ScoreResult `json:"scores"`
	Insight        Insight     `json:"insight"`
	ElapsedSeconds int         `json:"elapsed_seconds"`
	Elapsed        string      `json:"elapsed"`
}

type PaywallResponse struct {
	State            string        `json:"state"`
	Tiers            []PricingTier `json:"tiers"`
	CountdownSeconds int           `json:"countdown_seconds"`
	SocialProof      string        `json:"social_proof"`
}

type CheckoutResponse struct {
	URL string `json:"url"`
}

type UnlockResponse struct {
	SessionID string `json:"session_id"`
	State     string `json:"state"`
	Tier      string `json:"tier"`
}

type AnalysisResponse struct {
	Analysis    string    `json:"analysis"`
	Sections    []Section `json:"sections"`
	GeneratedBy string    `json:"generated_by"`
}

type ShareResponse struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	URL   string `json:"url"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Domain types

// Item is a single questionnaire statement. ReverseScored items are keyed
// opposite to their trait and reflected (6 - v) before aggregation.
type Item struct {
	ID            int    `json:"id"`
	Text          string `json:"text"`
	Domain        string `json:"domain"`
	ReverseScored bool   `json:"reverse_scored"`
}

// Facet groups up to four items of the same domain.
type Facet struct {
	Name  string `json:"name"`
	Items []int  `json:"items"`
}

// Scale is one of the six HEXACO domains with its four facets.
type Scale struct {
	Domain      string  `json:"domain"`
	DisplayName string  `json:"display_name"`
	Letter      string  `json:"letter"`
	Facets      []Facet `json:"facets"`
}

// Likert is a selectable answer option.
type Likert struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// FacetScore is the mean of a facet's (reverse-adjusted) raw answers.
type FacetScore struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// DomainScore is the mean of a domain's four facet scores. Facets are
// pre-averaged, so facets with fewer items carry equal weight.
type DomainScore struct {
	Domain      string       `json:"domain"`
	DisplayName string       `json:"display_name"`
	Score       float64      `json:"score"`
	Facets      []FacetScore `json:"facets"`
}

// ScoreResult holds per-domain scores in bank declaration order.
type ScoreResult struct {
	Domains []DomainScore `json:"domains"`
}

// Insight is the free teaser derived from a ScoreResult.
type Insight struct {
	PersonalityType string  `json:"personality_type"`
	DominantTrait   string  `json:"dominant_trait"`
	DominantScore   float64 `json:"dominant_score"`
	GrowthArea      string  `json:"growth_area"`
	GrowthScore     float64 `json:"growth_score"`
}

// PricingTier describes one paywall card. Prices are in USD cents.
type PricingTier struct {
	Tier        string   `json:"tier"`
	Name        string   `json:"name"`
	PriceCents  int      `json:"price_cents"`
	AnchorCents int      `json:"anchor_cents,omitempty"`
	Features    []string `json:"features"`
}

// Section is one parsed block of the generated narrative.
type Section struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}
