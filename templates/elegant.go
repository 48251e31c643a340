package templates

import (
	"github.com/yeremiapane/menu-studio/models"
)

const ElegantID = "elegant"

func elegantDescriptor() Descriptor {
	return Descriptor{
		ID:          ElegantID,
		Name:        models.Localized{"en": "Elegant", "ar": "أنيق"},
		Description: models.Localized{"en": "Single column list with dotted price leaders", "ar": "قائمة بعمود واحد"},
		Preview:     PreviewHint{Thumbnail: "/static/templates/elegant.png", Accent: "#b08d57", Layout: "list"},
		Defaults: models.TemplateDefaults{
			PrimaryColor:    "#b08d57",
			SecondaryColor:  "#2c3e50",
			BackgroundColor: "#fbf8f3",
			TextColor:       "#1b1b1b",
			HeroTitle:       models.Localized{"en": "Menu", "ar": "القائمة"},
			HeroSubtitle:    models.Localized{"en": "", "ar": ""},
			Placeholder:     "/static/placeholders/elegant.svg",
		},
		Renderer: RendererFunc(renderElegant),
	}
}

// renderElegant: tanpa foto, satu kolom, harga di kanan.
func renderElegant(menu *models.CanonicalMenu, tokens models.TokenSet) Node {
	children := []Node{hero(menu, tokens, true)}

	if len(menu.Buckets) == 0 {
		children = append(children, emptyState(menu))
	}
	for _, b := range menu.Buckets {
		rows := make([]Node, 0, len(b.Items)+1)
		rows = append(rows, el("heading", "", map[string]string{"color": tokens.PrimaryColor}, text("text", b.Title)))
		for _, item := range b.Items {
			row := itemCard(item, tokens, menu.Locale, false)
			row.Kind = "row"
			row.Attrs["leader"] = "dotted"
			rows = append(rows, row)
		}
		children = append(children, el("list", "section-"+b.Key, map[string]string{"bucket": b.Kind}, rows...))
		children = append(children, el("divider", "", map[string]string{"color": tokens.SecondaryColor}))
	}

	children = appendNodes(children, branchesSection(menu, tokens), footer(menu, tokens))
	return el("page", menu.Menu.Slug, pageAttrs(menu, tokens, "list"), children...)
}
