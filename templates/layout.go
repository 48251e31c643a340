package templates

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/yeremiapane/menu-studio/models"
)

var labels = map[string]models.Localized{
	"sold_out": {"en": "Sold out", "ar": "نفدت الكمية", "id": "Habis"},
	"branches": {"en": "Our branches", "ar": "فروعنا", "id": "Cabang kami"},
	"reviews":  {"en": "reviews", "ar": "تقييم", "id": "ulasan"},
	"offer":    {"en": "Special offer", "ar": "عرض خاص", "id": "Promo spesial"},
	"empty":    {"en": "No items yet", "ar": "لا توجد أصناف بعد", "id": "Belum ada menu"},
}

func label(key, locale string) string {
	return labels[key].Get(locale, "en")
}

func pageAttrs(menu *models.CanonicalMenu, tokens models.TokenSet, layout string) map[string]string {
	dir := "ltr"
	if menu.Locale == "ar" {
		dir = "rtl"
	}
	return map[string]string{
		"layout":     layout,
		"locale":     menu.Locale,
		"dir":        dir,
		"background": tokens.BackgroundColor,
		"color":      tokens.TextColor,
	}
}

// hero: judul dari token, jatuh ke nama menu bila token kosong.
func hero(menu *models.CanonicalMenu, tokens models.TokenSet, compact bool) Node {
	title := tokens.HeroTitle
	if title == "" {
		title = menu.Menu.Name
	}
	subtitle := tokens.HeroSubtitle
	if subtitle == "" {
		subtitle = menu.Menu.Description
	}

	variant := "full"
	if compact {
		variant = "compact"
	}

	var children []Node
	if menu.Menu.LogoURL != "" {
		children = append(children, el("image", "logo", map[string]string{"src": menu.Menu.LogoURL, "alt": menu.Menu.Name}))
	}
	children = append(children, text("title", title))
	if subtitle != "" {
		children = append(children, text("subtitle", subtitle))
	}
	children = appendNodes(children, ratingBadge(menu, tokens))

	return el("hero", "hero", map[string]string{
		"variant":    variant,
		"background": tokens.PrimaryColor,
		"color":      tokens.BackgroundColor,
	}, children...)
}

func ratingBadge(menu *models.CanonicalMenu, tokens models.TokenSet) Node {
	if menu.Rating.Total <= 0 {
		return Node{}
	}
	return el("rating", "rating", map[string]string{
		"average": strconv.FormatFloat(menu.Rating.Average, 'f', 1, 64),
		"total":   strconv.Itoa(menu.Rating.Total),
		"color":   tokens.SecondaryColor,
	}, text("text", fmt.Sprintf("%.1f ★ · %d %s", menu.Rating.Average, menu.Rating.Total, label("reviews", menu.Locale))))
}

func bucketNav(menu *models.CanonicalMenu, tokens models.TokenSet) Node {
	if len(menu.Buckets) < 2 {
		return Node{}
	}
	tabs := make([]Node, 0, len(menu.Buckets))
	for _, b := range menu.Buckets {
		tabs = append(tabs, el("tab", b.Key, map[string]string{"target": "section-" + b.Key}, text("text", b.Title)))
	}
	return el("nav", "buckets", map[string]string{"accent": tokens.SecondaryColor}, tabs...)
}

func itemCard(item models.CanonicalItem, tokens models.TokenSet, locale string, withImage bool) Node {
	attrs := map[string]string{"price": item.PriceLabel}
	if !item.Available {
		attrs["state"] = "unavailable"
	}

	var children []Node
	if withImage {
		children = append(children, el("image", "", map[string]string{"src": item.ImageURL, "alt": item.Name}))
	}
	children = append(children, text("name", item.Name))
	if item.Description != "" {
		children = append(children, text("description", item.Description))
	}
	children = append(children, el("price", "", map[string]string{"color": tokens.PrimaryColor}, text("text", item.PriceLabel)))
	if item.HasDiscount {
		children = append(children, el("badge", "discount", map[string]string{"background": tokens.SecondaryColor},
			text("text", fmt.Sprintf("-%s%%", strconv.FormatFloat(item.DiscountPercent, 'f', -1, 64)))))
	}
	if !item.Available {
		children = append(children, text("note", label("sold_out", locale)))
	}
	return el("item", strconv.FormatUint(uint64(item.ID), 10), attrs, children...)
}

func emptyState(menu *models.CanonicalMenu) Node {
	return el("empty", "empty", nil, text("text", label("empty", menu.Locale)))
}

func branchesSection(menu *models.CanonicalMenu, tokens models.TokenSet) Node {
	if len(menu.Branches) == 0 {
		return Node{}
	}
	rows := make([]Node, 0, len(menu.Branches))
	for _, b := range menu.Branches {
		attrs := map[string]string{}
		if b.Latitude != 0 || b.Longitude != 0 {
			attrs["map"] = fmt.Sprintf("geo:%s,%s",
				strconv.FormatFloat(b.Latitude, 'f', 6, 64),
				strconv.FormatFloat(b.Longitude, 'f', 6, 64))
		}
		if b.Phone != "" {
			attrs["phone"] = "tel:" + b.Phone
		}
		children := []Node{text("name", b.Name)}
		if b.Address != "" {
			children = append(children, text("address", b.Address))
		}
		rows = append(rows, el("branch", strconv.FormatUint(uint64(b.ID), 10), attrs, children...))
	}
	return el("section", "branches", map[string]string{"accent": tokens.SecondaryColor},
		append([]Node{text("heading", label("branches", menu.Locale))}, rows...)...)
}

func footer(menu *models.CanonicalMenu, tokens models.TokenSet) Node {
	var children []Node
	if menu.Menu.FooterDescription != "" {
		children = append(children, text("text", menu.Menu.FooterDescription))
	}

	// urutkan nama jaringan supaya tree selalu sama
	networks := make([]string, 0, len(menu.Menu.SocialLinks))
	for k := range menu.Menu.SocialLinks {
		networks = append(networks, k)
	}
	sort.Strings(networks)
	for _, n := range networks {
		children = append(children, el("link", n, map[string]string{"href": menu.Menu.SocialLinks[n]}, text("text", n)))
	}

	return el("footer", "footer", map[string]string{
		"background": tokens.TextColor,
		"color":      tokens.BackgroundColor,
	}, children...)
}
