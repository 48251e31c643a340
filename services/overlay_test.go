package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yeremiapane/menu-studio/models"
)

func sptr(s string) *string { return &s }

var testDefaults = models.TemplateDefaults{
	PrimaryColor:    "#111",
	SecondaryColor:  "#333333",
	BackgroundColor: "#ffffff",
	TextColor:       "#000000",
	HeroTitle:       models.Localized{"en": "Our Menu", "ar": "قائمتنا"},
	HeroSubtitle:    models.Localized{"en": "Fresh daily"},
}

func TestResolveTokens_ExplicitWinsBlankFallsThrough(t *testing.T) {
	custom := &models.Customization{PrimaryColor: "#222", SecondaryColor: ""}

	tokens := ResolveTokens(testDefaults, custom, "en", "en")

	assert.Equal(t, "#222", tokens.PrimaryColor)
	assert.Equal(t, "#333333", tokens.SecondaryColor)
	assert.Equal(t, "#ffffff", tokens.BackgroundColor)
	assert.Equal(t, "Our Menu", tokens.HeroTitle)
}

func TestResolveTokens_NilIsTemplateDefault(t *testing.T) {
	tokens := ResolveTokens(testDefaults, nil, "ar", "en")

	assert.Equal(t, models.TokenSet{
		PrimaryColor:    "#111",
		SecondaryColor:  "#333333",
		BackgroundColor: "#ffffff",
		TextColor:       "#000000",
		HeroTitle:       "قائمتنا",
		HeroSubtitle:    "Fresh daily",
	}, tokens)
	assert.Equal(t, tokens, ResolveTokens(testDefaults, &models.Customization{}, "ar", "en"))
}

func TestResolveTokens_InvalidColorIgnored(t *testing.T) {
	custom := &models.Customization{PrimaryColor: "red", TextColor: " #0a0B0c "}

	tokens := ResolveTokens(testDefaults, custom, "en", "en")

	assert.Equal(t, "#111", tokens.PrimaryColor)
	assert.Equal(t, "#0a0B0c", tokens.TextColor)
}

func TestResolveTokens_CopyPrecedence(t *testing.T) {
	custom := &models.Customization{
		HeroTitle:    models.Localized{"en": "Welcome to Bean"},
		HeroSubtitle: models.Localized{"ar": "أهلا"},
	}

	// ar title: no tenant ar text, template has one
	ar := ResolveTokens(testDefaults, custom, "ar", "en")
	assert.Equal(t, "قائمتنا", ar.HeroTitle)
	assert.Equal(t, "أهلا", ar.HeroSubtitle)

	// fr: neither has fr, tenant fallback locale wins over template
	fr := ResolveTokens(testDefaults, custom, "fr", "en")
	assert.Equal(t, "Welcome to Bean", fr.HeroTitle)
	assert.Equal(t, "Fresh daily", fr.HeroSubtitle)
}

func TestApplyDraft_DoesNotMutateBase(t *testing.T) {
	base := &models.Customization{
		ID:             3,
		MenuID:         7,
		PrimaryColor:   "#123456",
		SecondaryColor: "#654321",
		HeroTitle:      models.Localized{"en": "Saved"},
	}

	draft := ApplyDraft(base, models.CustomizationInput{
		PrimaryColor: sptr("#abcdef"),
		HeroTitle:    models.Localized{"ar": "مسودة"},
	})

	assert.Equal(t, "#abcdef", draft.PrimaryColor)
	assert.Equal(t, "#654321", draft.SecondaryColor)
	assert.Equal(t, models.Localized{"en": "Saved", "ar": "مسودة"}, draft.HeroTitle)
	assert.Equal(t, uint(7), draft.MenuID)

	assert.Equal(t, "#123456", base.PrimaryColor)
	assert.Equal(t, models.Localized{"en": "Saved"}, base.HeroTitle)
}

func TestApplyDraft_NilBase(t *testing.T) {
	draft := ApplyDraft(nil, models.CustomizationInput{TextColor: sptr("#fff")})
	assert.Equal(t, "#fff", draft.TextColor)
	assert.Empty(t, draft.PrimaryColor)
}

func TestValidColor(t *testing.T) {
	for _, v := range []string{"", "#fff", "#FFFF", "#a1b2c3", "#a1b2c3d4"} {
		assert.True(t, ValidColor(v), v)
	}
	for _, v := range []string{"fff", "#ff", "#ggg", "rgb(0,0,0)", "#1234567"} {
		assert.False(t, ValidColor(v), v)
	}
}
