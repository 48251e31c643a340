package services

import (
	"sort"
	"strconv"
	"strings"

	"github.com/yeremiapane/menu-studio/models"
)

// ItemBucket is one classified group of items. Exactly one of Category,
// Label or Semantic is set, except for the "other" bucket.
type ItemBucket struct {
	Key      string
	Kind     string
	Category *models.Category
	Label    string
	Semantic *models.SemanticBucket
	Items    []models.Item
	// Positions of Items in the input slice.
	Indexes []int
}

// Classification is the ordered partition of a menu's items.
type Classification struct {
	Buckets  []ItemBucket
	Fallback bool
}

// ByKey returns the bucket key -> items map.
func (c Classification) ByKey() map[string][]models.Item {
	out := make(map[string][]models.Item, len(c.Buckets))
	for _, b := range c.Buckets {
		out[b.Key] = b.Items
	}
	return out
}

// Size returns how many items were classified.
func (c Classification) Size() int {
	n := 0
	for _, b := range c.Buckets {
		n += len(b.Items)
	}
	return n
}

// Classify assigns every item to exactly one bucket.
//
// Without a semantic scheme an item goes to its known category, else to its
// free-text label, else to "other". With a scheme, keyword matching on the
// item name and category label comes first; unmatched items then follow the
// category/label/other rules. When no item in the whole menu matches any
// semantic bucket, the item list is split into len(scheme) contiguous groups
// instead.
func Classify(items []models.Item, categories []models.Category, scheme []models.SemanticBucket) Classification {
	if len(items) == 0 {
		return Classification{}
	}

	known := make(map[uint]*models.Category, len(categories))
	for i := range categories {
		if categories[i].Active {
			known[categories[i].ID] = &categories[i]
		}
	}

	if len(scheme) > 0 {
		keys := make([]string, len(items))
		matched := false
		for i, item := range items {
			keys[i] = matchSemantic(item, known, scheme)
			if keys[i] != "" {
				matched = true
			}
		}
		if !matched {
			return Classification{Buckets: FallbackSplit(items, scheme), Fallback: true}
		}
		return assemble(items, keys, known, scheme)
	}

	return assemble(items, make([]string, len(items)), known, nil)
}

// FallbackSplit partitions items into len(scheme) contiguous, order
// preserving groups of ceil(count/N) items; the last group takes the rest.
func FallbackSplit(items []models.Item, scheme []models.SemanticBucket) []ItemBucket {
	n := len(scheme)
	if n == 0 {
		return nil
	}
	size := (len(items) + n - 1) / n

	out := make([]ItemBucket, 0, n)
	for i := range scheme {
		start := i * size
		end := start + size
		if i == n-1 || end > len(items) {
			end = len(items)
		}
		if start > len(items) {
			start = len(items)
		}
		group := make([]models.Item, end-start)
		copy(group, items[start:end])
		indexes := make([]int, 0, end-start)
		for j := start; j < end; j++ {
			indexes = append(indexes, j)
		}
		out = append(out, ItemBucket{
			Key:      scheme[i].Key,
			Kind:     models.BucketKindFallback,
			Semantic: &scheme[i],
			Items:    group,
			Indexes:  indexes,
		})
	}
	return out
}

// assemble groups items by their semantic key (when set) or by the
// category/label/other rules, in the documented bucket order.
func assemble(items []models.Item, semanticKeys []string, known map[uint]*models.Category, scheme []models.SemanticBucket) Classification {
	semantic := make(map[string][]int)
	byCategory := make(map[uint][]int)
	byLabel := make(map[string][]int)
	labelOrder := []string{}
	labelText := map[string]string{}
	var other []int

	for i, item := range items {
		if semanticKeys[i] != "" {
			semantic[semanticKeys[i]] = append(semantic[semanticKeys[i]], i)
			continue
		}
		if item.CategoryID != nil {
			if _, ok := known[*item.CategoryID]; ok {
				byCategory[*item.CategoryID] = append(byCategory[*item.CategoryID], i)
				continue
			}
		}
		if label := NormalizeLabel(item.CategoryLabel); label != "" {
			if _, seen := byLabel[label]; !seen {
				labelOrder = append(labelOrder, label)
				labelText[label] = strings.TrimSpace(item.CategoryLabel)
			}
			byLabel[label] = append(byLabel[label], i)
			continue
		}
		other = append(other, i)
	}

	var out []ItemBucket
	for i := range scheme {
		if idx, ok := semantic[scheme[i].Key]; ok {
			out = addBucket(out, items, ItemBucket{
				Key:      scheme[i].Key,
				Kind:     models.BucketKindSemantic,
				Semantic: &scheme[i],
			}, idx)
		}
	}

	categoryIDs := make([]uint, 0, len(byCategory))
	for id := range byCategory {
		categoryIDs = append(categoryIDs, id)
	}
	sort.Slice(categoryIDs, func(i, j int) bool {
		a, b := known[categoryIDs[i]], known[categoryIDs[j]]
		if a.SortOrder != b.SortOrder {
			return a.SortOrder < b.SortOrder
		}
		return a.ID < b.ID
	})
	for _, id := range categoryIDs {
		out = addBucket(out, items, ItemBucket{
			Key:      CategoryBucketKey(id),
			Kind:     models.BucketKindCategory,
			Category: known[id],
		}, byCategory[id])
	}

	for _, label := range labelOrder {
		out = addBucket(out, items, ItemBucket{
			Key:   label,
			Kind:  models.BucketKindLabel,
			Label: labelText[label],
		}, byLabel[label])
	}

	if len(other) > 0 {
		out = addBucket(out, items, ItemBucket{
			Key:  models.OtherBucketKey,
			Kind: models.BucketKindOther,
		}, other)
	}

	return Classification{Buckets: out}
}

// addBucket fills b with the items at idx, merging into an existing bucket
// with the same key (a label such as "Other" normalizes onto a reserved key)
// so keys stay unique.
func addBucket(out []ItemBucket, items []models.Item, b ItemBucket, idx []int) []ItemBucket {
	pos := len(out)
	for i := range out {
		if out[i].Key == b.Key {
			pos = i
			break
		}
	}
	if pos == len(out) {
		out = append(out, b)
	}
	for _, i := range idx {
		out[pos].Items = append(out[pos].Items, items[i])
		out[pos].Indexes = append(out[pos].Indexes, i)
	}
	return out
}

// matchSemantic returns the first bucket in scheme whose keywords appear in
// any translation of the item name or its category label.
func matchSemantic(item models.Item, known map[uint]*models.Category, scheme []models.SemanticBucket) string {
	haystack := make([]string, 0, 4)
	for _, v := range item.Name.Values() {
		haystack = append(haystack, strings.ToLower(v))
	}
	if label := NormalizeLabel(item.CategoryLabel); label != "" {
		haystack = append(haystack, label)
	}
	if item.CategoryID != nil {
		if cat, ok := known[*item.CategoryID]; ok {
			for _, v := range cat.Name.Values() {
				haystack = append(haystack, strings.ToLower(v))
			}
		}
	}

	for _, bucket := range scheme {
		for _, kw := range bucket.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				continue
			}
			for _, text := range haystack {
				if strings.Contains(text, kw) {
					return bucket.Key
				}
			}
		}
	}
	return ""
}

// NormalizeLabel trims and lower-cases a free-text category label.
func NormalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// CategoryBucketKey is the bucket key for a known category.
func CategoryBucketKey(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
