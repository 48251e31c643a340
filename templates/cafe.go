package templates

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/yeremiapane/menu-studio/models"
)

const CafeID = "cafe"

// CafeBuckets are the semantic sections of the cafe template, in priority order.
var CafeBuckets = []models.SemanticBucket{
	{
		Key:      "coffee",
		Title:    models.Localized{"en": "Coffee", "ar": "القهوة"},
		Keywords: []string{"coffee", "espresso", "latte", "cappuccino", "americano", "mocha", "macchiato", "flat white", "cortado", "قهوة", "اسبريسو", "لاتيه", "كابتشينو"},
	},
	{
		Key:      "tea",
		Title:    models.Localized{"en": "Tea", "ar": "الشاي"},
		Keywords: []string{"tea", "matcha", "chai", "karak", "infusion", "شاي", "ماتشا", "كرك"},
	},
	{
		Key:      "juice",
		Title:    models.Localized{"en": "Juices", "ar": "العصائر"},
		Keywords: []string{"juice", "smoothie", "lemonade", "mojito", "shake", "عصير", "سموذي", "ليمون", "موهيتو"},
	},
}

func cafeDescriptor() Descriptor {
	return Descriptor{
		ID:          CafeID,
		Name:        models.Localized{"en": "Cafe", "ar": "مقهى"},
		Description: models.Localized{"en": "Coffee, tea and juice sections with promotional banners", "ar": "أقسام القهوة والشاي والعصائر مع لافتات عروض"},
		Preview:     PreviewHint{Thumbnail: "/static/templates/cafe.png", Accent: "#6f4e37", Layout: "sections"},
		Buckets:     CafeBuckets,
		Defaults: models.TemplateDefaults{
			PrimaryColor:    "#6f4e37",
			SecondaryColor:  "#e6b980",
			BackgroundColor: "#fff8f0",
			TextColor:       "#3b2a20",
			HeroTitle:       models.Localized{"en": "Fresh Brews", "ar": "مشروبات طازجة"},
			HeroSubtitle:    models.Localized{"en": "Coffee, tea and cold-pressed juice", "ar": "قهوة وشاي وعصائر طازجة"},
			Placeholder:     "/static/placeholders/cafe.svg",
		},
		Renderer: RendererFunc(renderCafe),
	}
}

// renderCafe menampilkan section per bucket dengan banner promo di antara
// section, dan uap animasi (dekoratif) di hero.
func renderCafe(menu *models.CanonicalMenu, tokens models.TokenSet) Node {
	top := hero(menu, tokens, false)
	top.Children = append(top.Children, ambientSteam())

	children := []Node{top}
	children = appendNodes(children, bucketNav(menu, tokens))

	if len(menu.Buckets) == 0 {
		children = append(children, emptyState(menu))
	}
	promo := bestOffer(menu)
	for i, b := range menu.Buckets {
		cards := make([]Node, 0, len(b.Items))
		for _, item := range b.Items {
			cards = append(cards, itemCard(item, tokens, menu.Locale, true))
		}
		section := el("section", "section-"+b.Key, map[string]string{"bucket": b.Kind, "style": "band"},
			text("heading", b.Title),
			el("carousel", "", nil, cards...))
		if len(cards) == 0 {
			section.Children = append(section.Children, emptyState(menu))
		}
		children = append(children, section)

		if i < len(menu.Buckets)-1 {
			children = append(children, promoBanner(menu, tokens, promo, i))
		}
	}

	children = appendNodes(children, branchesSection(menu, tokens), footer(menu, tokens))
	return el("page", menu.Menu.Slug, pageAttrs(menu, tokens, "sections"), children...)
}

// bestOffer picks the item with the highest discount, first one on ties.
func bestOffer(menu *models.CanonicalMenu) *models.CanonicalItem {
	var best *models.CanonicalItem
	for i := range menu.Items {
		it := &menu.Items[i]
		if !it.HasDiscount || !it.Available {
			continue
		}
		if best == nil || it.DiscountPercent > best.DiscountPercent {
			best = it
		}
	}
	return best
}

func promoBanner(menu *models.CanonicalMenu, tokens models.TokenSet, offer *models.CanonicalItem, position int) Node {
	attrs := map[string]string{
		"background": tokens.SecondaryColor,
		"color":      tokens.TextColor,
		"position":   strconv.Itoa(position),
	}
	if offer == nil {
		msg := tokens.HeroSubtitle
		if msg == "" {
			msg = menu.Menu.Name
		}
		return el("banner", "promo-"+strconv.Itoa(position), attrs, text("text", msg))
	}
	attrs["item"] = strconv.FormatUint(uint64(offer.ID), 10)
	return el("banner", "promo-"+strconv.Itoa(position), attrs,
		text("heading", label("offer", menu.Locale)),
		text("text", fmt.Sprintf("%s · %s (-%s%%)", offer.Name, offer.PriceLabel,
			strconv.FormatFloat(offer.DiscountPercent, 'f', -1, 64))))
}

// ambientSteam is decorative: random drift delays only affect animation.
func ambientSteam() Node {
	puffs := make([]Node, 0, 3)
	for i := 0; i < 3; i++ {
		puffs = append(puffs, Node{
			Kind:       "puff",
			Attrs:      map[string]string{"delay": fmt.Sprintf("%dms", rand.Intn(1200))},
			Decorative: true,
		})
	}
	return Node{Kind: "ambient", Key: "steam", Children: puffs, Decorative: true}
}
