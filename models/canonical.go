package models

// SemanticBucket is a named section a template fills by keyword match,
// e.g. "coffee" with keywords {"coffee", "espresso", "latte"}.
type SemanticBucket struct {
	Key      string    `json:"key"`
	Title    Localized `json:"title"`
	Keywords []string  `json:"keywords"`
}

// TemplateDefaults is the baseline look of a template before any tenant
// customization is laid over it.
type TemplateDefaults struct {
	PrimaryColor    string    `json:"primary_color"`
	SecondaryColor  string    `json:"secondary_color"`
	BackgroundColor string    `json:"background_color"`
	TextColor       string    `json:"text_color"`
	HeroTitle       Localized `json:"hero_title"`
	HeroSubtitle    Localized `json:"hero_subtitle"`
	Placeholder     string    `json:"placeholder"`
}

// TokenSet is the resolved set of visual values a renderer draws with.
// Persisted and preview token sets share this exact shape.
type TokenSet struct {
	PrimaryColor    string `json:"primary_color"`
	SecondaryColor  string `json:"secondary_color"`
	BackgroundColor string `json:"background_color"`
	TextColor       string `json:"text_color"`
	HeroTitle       string `json:"hero_title"`
	HeroSubtitle    string `json:"hero_subtitle"`
}

// Bucket kinds.
const (
	BucketKindCategory = "category"
	BucketKindLabel    = "label"
	BucketKindSemantic = "semantic"
	BucketKindFallback = "fallback"
	BucketKindOther    = "other"
)

// OtherBucketKey collects items no rule could claim.
const OtherBucketKey = "other"

// CanonicalMenu is the only shape templates may depend on.
type CanonicalMenu struct {
	Menu     MenuView        `json:"menu"`
	Items    []CanonicalItem `json:"items"`
	Buckets  []Bucket        `json:"buckets"`
	Branches []BranchView    `json:"branches"`
	Rating   RatingSummary   `json:"rating"`
	Locale   string          `json:"locale"`
	Fallback bool            `json:"fallback"`
}

// ItemsByBucket returns the bucket key -> items view of the ordered buckets.
func (m *CanonicalMenu) ItemsByBucket() map[string][]CanonicalItem {
	out := make(map[string][]CanonicalItem, len(m.Buckets))
	for _, b := range m.Buckets {
		out[b.Key] = b.Items
	}
	return out
}

// Bucket returns the bucket with key, or false.
func (m *CanonicalMenu) Bucket(key string) (Bucket, bool) {
	for _, b := range m.Buckets {
		if b.Key == key {
			return b, true
		}
	}
	return Bucket{}, false
}

type MenuView struct {
	ID                uint        `json:"id"`
	Slug              string      `json:"slug"`
	Name              string      `json:"name"`
	Description       string      `json:"description"`
	Theme             string      `json:"theme"`
	Active            bool        `json:"active"`
	Currency          string      `json:"currency"`
	LogoURL           string      `json:"logo_url"`
	FooterDescription string      `json:"footer_description"`
	SocialLinks       SocialLinks `json:"social_links"`
}

// CanonicalItem only exposes the resolved price.
type CanonicalItem struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	PriceLabel      string  `json:"price_label"`
	HasDiscount     bool    `json:"has_discount"`
	DiscountPercent float64 `json:"discount_percent,omitempty"`
	ImageURL        string  `json:"image_url"`
	Available       bool    `json:"available"`
	BucketKey       string  `json:"bucket_key"`
}

type Bucket struct {
	Key   string          `json:"key"`
	Kind  string          `json:"kind"`
	Title string          `json:"title"`
	Image string          `json:"image,omitempty"`
	Items []CanonicalItem `json:"items"`
}

type BranchView struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Phone     string  `json:"phone"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
