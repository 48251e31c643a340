package templates

import (
	"github.com/yeremiapane/menu-studio/models"
)

const ClassicID = "classic"

func classicDescriptor() Descriptor {
	return Descriptor{
		ID:          ClassicID,
		Name:        models.Localized{"en": "Classic", "ar": "كلاسيكي"},
		Description: models.Localized{"en": "Photo grid grouped by category", "ar": "شبكة صور مرتبة حسب الفئة"},
		Preview:     PreviewHint{Thumbnail: "/static/templates/classic.png", Accent: "#c0392b", Layout: "grid"},
		Defaults: models.TemplateDefaults{
			PrimaryColor:    "#c0392b",
			SecondaryColor:  "#f39c12",
			BackgroundColor: "#ffffff",
			TextColor:       "#222222",
			HeroTitle:       models.Localized{"en": "Our Menu", "ar": "قائمتنا"},
			HeroSubtitle:    models.Localized{"en": "Freshly prepared every day", "ar": "طازج كل يوم"},
			Placeholder:     "/static/placeholders/classic.svg",
		},
		Renderer: RendererFunc(renderClassic),
	}
}

func renderClassic(menu *models.CanonicalMenu, tokens models.TokenSet) Node {
	children := []Node{hero(menu, tokens, false)}
	children = appendNodes(children, bucketNav(menu, tokens))

	if len(menu.Buckets) == 0 {
		children = append(children, emptyState(menu))
	}
	for _, b := range menu.Buckets {
		cards := make([]Node, 0, len(b.Items))
		for _, item := range b.Items {
			cards = append(cards, itemCard(item, tokens, menu.Locale, true))
		}
		sectionChildren := []Node{text("heading", b.Title)}
		if b.Image != "" {
			sectionChildren = append(sectionChildren, el("image", "cover", map[string]string{"src": b.Image, "alt": b.Title}))
		}
		sectionChildren = append(sectionChildren, el("grid", "", map[string]string{"columns": "2"}, cards...))
		children = append(children, el("section", "section-"+b.Key, map[string]string{"bucket": b.Kind}, sectionChildren...))
	}

	children = appendNodes(children, branchesSection(menu, tokens), footer(menu, tokens))
	return el("page", menu.Menu.Slug, pageAttrs(menu, tokens, "grid"), children...)
}
