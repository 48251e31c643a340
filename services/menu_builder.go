package services

import (
	"math"
	"strings"

	"github.com/yeremiapane/menu-studio/models"
	"github.com/yeremiapane/menu-studio/utils"
)

// DefaultPlaceholder is the last link of the image placeholder chain.
const DefaultPlaceholder = "/static/placeholders/item.svg"

var placeholderSentinels = map[string]bool{
	"placeholder":      true,
	"/placeholder.svg": true,
	"/placeholder.png": true,
}

// BuildOptions selects the projection of a snapshot.
type BuildOptions struct {
	Locale         string
	FallbackLocale string
	Scheme         []models.SemanticBucket
	Placeholder    string
}

// BuildCanonicalMenu normalises a raw snapshot into the canonical model.
// Only a missing snapshot or menu is an error; every other gap is filled.
func BuildCanonicalMenu(snapshot *models.Snapshot, opts BuildOptions) (*models.CanonicalMenu, error) {
	if snapshot == nil || snapshot.Menu == nil {
		return nil, ErrMenuNotFound
	}
	menu := snapshot.Menu
	locale, fallback := opts.Locale, opts.FallbackLocale
	if fallback == "" {
		fallback = "en"
	}
	if locale == "" {
		locale = fallback
	}
	placeholder := opts.Placeholder
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}

	categoryByID := make(map[uint]models.Category, len(snapshot.Categories))
	for _, c := range snapshot.Categories {
		categoryByID[c.ID] = c
	}

	items := make([]models.CanonicalItem, 0, len(snapshot.Items))
	for _, raw := range snapshot.Items {
		items = append(items, projectItem(raw, menu, categoryByID, locale, fallback, placeholder))
	}

	classification := Classify(snapshot.Items, snapshot.Categories, opts.Scheme)

	buckets := make([]models.Bucket, 0, len(classification.Buckets))
	for _, b := range classification.Buckets {
		bucket := models.Bucket{
			Key:   b.Key,
			Kind:  b.Kind,
			Title: bucketTitle(b, locale, fallback),
			Items: make([]models.CanonicalItem, 0, len(b.Indexes)),
		}
		if b.Category != nil {
			bucket.Image = usableImage(b.Category.ImageURL)
		}
		for _, i := range b.Indexes {
			items[i].BucketKey = b.Key
			bucket.Items = append(bucket.Items, items[i])
		}
		buckets = append(buckets, bucket)
	}

	branches := make([]models.BranchView, 0, len(snapshot.Branches))
	for _, br := range snapshot.Branches {
		branches = append(branches, models.BranchView{
			ID:        br.ID,
			Name:      strings.TrimSpace(br.Name),
			Address:   strings.TrimSpace(br.Address),
			Phone:     strings.TrimSpace(br.Phone),
			Latitude:  br.Latitude,
			Longitude: br.Longitude,
		})
	}

	rating := snapshot.Rating
	if rating == (models.RatingSummary{}) {
		rating = menu.Rating
	}
	rating = clampRating(rating)

	return &models.CanonicalMenu{
		Menu: models.MenuView{
			ID:                menu.ID,
			Slug:              menu.Slug,
			Name:              menu.Name.Get(locale, fallback),
			Description:       menu.Description.Get(locale, fallback),
			Theme:             menu.Theme,
			Active:            menu.Active,
			Currency:          strings.ToUpper(strings.TrimSpace(menu.Currency)),
			LogoURL:           usableImage(menu.LogoURL),
			FooterDescription: menu.FooterDescription.Get(locale, fallback),
			SocialLinks:       copyLinks(menu.SocialLinks),
		},
		Items:    items,
		Buckets:  buckets,
		Branches: branches,
		Rating:   rating,
		Locale:   locale,
		Fallback: classification.Fallback,
	}, nil
}

func projectItem(raw models.Item, menu *models.Menu, categories map[uint]models.Category, locale, fallback, placeholder string) models.CanonicalItem {
	price := ResolvePrice(raw.OriginalPrice, raw.DiscountPercent, raw.Price)
	discount := EffectiveDiscount(raw.OriginalPrice, raw.DiscountPercent)

	return models.CanonicalItem{
		ID:              raw.ID,
		Name:            raw.Name.Get(locale, fallback),
		Description:     raw.Description.Get(locale, fallback),
		Price:           price,
		PriceLabel:      utils.FormatPrice(price, menu.Currency),
		HasDiscount:     discount > 0,
		DiscountPercent: discount,
		ImageURL:        imageFor(raw, menu, categories, placeholder),
		Available:       raw.Available,
	}
}

// imageFor: gambar item -> gambar kategori -> logo menu -> placeholder.
func imageFor(item models.Item, menu *models.Menu, categories map[uint]models.Category, placeholder string) string {
	if img := usableImage(item.ImageURL); img != "" {
		return img
	}
	if item.CategoryID != nil {
		if cat, ok := categories[*item.CategoryID]; ok {
			if img := usableImage(cat.ImageURL); img != "" {
				return img
			}
		}
	}
	if img := usableImage(menu.LogoURL); img != "" {
		return img
	}
	return placeholder
}

func usableImage(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" || placeholderSentinels[strings.ToLower(ref)] {
		return ""
	}
	return ref
}

func bucketTitle(b ItemBucket, locale, fallback string) string {
	switch {
	case b.Category != nil:
		return b.Category.Name.Get(locale, fallback)
	case b.Semantic != nil:
		return b.Semantic.Title.Get(locale, fallback)
	case b.Label != "":
		return b.Label
	}
	return otherTitle.Get(locale, fallback)
}

var otherTitle = models.Localized{"en": "Other", "ar": "أخرى", "id": "Lainnya"}

func clampRating(r models.RatingSummary) models.RatingSummary {
	switch {
	case math.IsNaN(r.Average) || r.Average < 0:
		r.Average = 0
	case r.Average > 5:
		r.Average = 5
	}
	if r.Total < 0 {
		r.Total = 0
	}
	return r
}

func copyLinks(in models.SocialLinks) models.SocialLinks {
	out := make(models.SocialLinks, len(in))
	for k, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out[k] = v
		}
	}
	return out
}
