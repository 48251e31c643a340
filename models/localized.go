package models

import (
	"sort"
	"strings"
)

// Localized menyimpan teks per locale, mis. {"ar": "قهوة", "en": "Coffee"}.
// Disimpan sebagai kolom JSON lewat serializer gorm.
type Localized map[string]string

// Get returns the text for locale, then for fallback, then the first
// non-empty value in key order so a lookup is stable across calls.
func (l Localized) Get(locale, fallback string) string {
	if len(l) == 0 {
		return ""
	}
	if v := strings.TrimSpace(l[locale]); v != "" {
		return v
	}
	if v := strings.TrimSpace(l[fallback]); v != "" {
		return v
	}

	keys := make([]string, 0, len(l))
	for k := range l {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if v := strings.TrimSpace(l[k]); v != "" {
			return v
		}
	}
	return ""
}

// Values returns all non-empty translations in key order.
func (l Localized) Values() []string {
	keys := make([]string, 0, len(l))
	for k := range l {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if v := strings.TrimSpace(l[k]); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// IsBlank reports whether no locale carries any text.
func (l Localized) IsBlank() bool {
	return len(l.Values()) == 0
}

// Clone copies the map so callers can edit without touching the source.
func (l Localized) Clone() Localized {
	if l == nil {
		return nil
	}
	out := make(Localized, len(l))
	for k, v := range l {
		out[k] = v
	}
	return out
}
