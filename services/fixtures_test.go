package services

import (
	"github.com/yeremiapane/menu-studio/models"
)

func uptr(v uint) *uint { return &v }

func item(id uint, name string) models.Item {
	return models.Item{ID: id, Name: models.Localized{"en": name}, Price: 10, Available: true}
}

func itemsNamed(names ...string) []models.Item {
	out := make([]models.Item, len(names))
	for i, n := range names {
		out[i] = item(uint(i+1), n)
	}
	return out
}

var drinkScheme = []models.SemanticBucket{
	{Key: "coffee", Title: models.Localized{"en": "Coffee", "ar": "القهوة"}, Keywords: []string{"coffee", "latte", "espresso", "قهوة"}},
	{Key: "tea", Title: models.Localized{"en": "Tea"}, Keywords: []string{"tea", "matcha"}},
	{Key: "juice", Title: models.Localized{"en": "Juices"}, Keywords: []string{"juice", "smoothie"}},
}

func bucketKeys(c Classification) []string {
	keys := make([]string, 0, len(c.Buckets))
	for _, b := range c.Buckets {
		keys = append(keys, b.Key)
	}
	return keys
}

func bucketSizes(c Classification) []int {
	sizes := make([]int, 0, len(c.Buckets))
	for _, b := range c.Buckets {
		sizes = append(sizes, len(b.Items))
	}
	return sizes
}
