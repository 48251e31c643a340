package services

import (
	"regexp"
	"strings"

	"github.com/yeremiapane/menu-studio/models"
)

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// ResolveTokens lays a tenant customization over template defaults field by
// field. Empty or malformed customization values fall through to the
// default. A nil customization yields the defaults unchanged.
func ResolveTokens(defaults models.TemplateDefaults, custom *models.Customization, locale, fallbackLocale string) models.TokenSet {
	tokens := models.TokenSet{
		PrimaryColor:    defaults.PrimaryColor,
		SecondaryColor:  defaults.SecondaryColor,
		BackgroundColor: defaults.BackgroundColor,
		TextColor:       defaults.TextColor,
		HeroTitle:       defaults.HeroTitle.Get(locale, fallbackLocale),
		HeroSubtitle:    defaults.HeroSubtitle.Get(locale, fallbackLocale),
	}
	if custom == nil {
		return tokens
	}

	tokens.PrimaryColor = pickColor(custom.PrimaryColor, tokens.PrimaryColor)
	tokens.SecondaryColor = pickColor(custom.SecondaryColor, tokens.SecondaryColor)
	tokens.BackgroundColor = pickColor(custom.BackgroundColor, tokens.BackgroundColor)
	tokens.TextColor = pickColor(custom.TextColor, tokens.TextColor)

	tokens.HeroTitle = pickCopy(custom.HeroTitle, defaults.HeroTitle, locale, fallbackLocale)
	tokens.HeroSubtitle = pickCopy(custom.HeroSubtitle, defaults.HeroSubtitle, locale, fallbackLocale)
	return tokens
}

// ApplyDraft returns a copy of base with the draft's set fields applied.
// base is never modified; a nil base starts from a blank record.
func ApplyDraft(base *models.Customization, draft models.CustomizationInput) models.Customization {
	var out models.Customization
	if base != nil {
		out = *base
	}
	out.HeroTitle = out.HeroTitle.Clone()
	out.HeroSubtitle = out.HeroSubtitle.Clone()

	if draft.PrimaryColor != nil {
		out.PrimaryColor = strings.TrimSpace(*draft.PrimaryColor)
	}
	if draft.SecondaryColor != nil {
		out.SecondaryColor = strings.TrimSpace(*draft.SecondaryColor)
	}
	if draft.BackgroundColor != nil {
		out.BackgroundColor = strings.TrimSpace(*draft.BackgroundColor)
	}
	if draft.TextColor != nil {
		out.TextColor = strings.TrimSpace(*draft.TextColor)
	}
	out.HeroTitle = mergeLocalized(out.HeroTitle, draft.HeroTitle)
	out.HeroSubtitle = mergeLocalized(out.HeroSubtitle, draft.HeroSubtitle)
	return out
}

// ValidColor reports whether v is empty or a #rgb/#rgba/#rrggbb/#rrggbbaa color.
func ValidColor(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || hexColor.MatchString(v)
}

func pickColor(custom, fallback string) string {
	custom = strings.TrimSpace(custom)
	if custom == "" || !hexColor.MatchString(custom) {
		return fallback
	}
	return custom
}

// pickCopy: teks tenant untuk locale diminta, lalu default template untuk
// locale itu, lalu teks tenant di fallback locale, terakhir default apa saja.
func pickCopy(custom, defaults models.Localized, locale, fallbackLocale string) string {
	if v := strings.TrimSpace(custom[locale]); v != "" {
		return v
	}
	if v := strings.TrimSpace(defaults[locale]); v != "" {
		return v
	}
	if v := strings.TrimSpace(custom[fallbackLocale]); v != "" {
		return v
	}
	return defaults.Get(locale, fallbackLocale)
}

func mergeLocalized(base, over models.Localized) models.Localized {
	if len(over) == 0 {
		return base
	}
	if base == nil {
		base = models.Localized{}
	}
	for k, v := range over {
		base[k] = strings.TrimSpace(v)
	}
	return base
}
