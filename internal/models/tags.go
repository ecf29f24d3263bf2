// ABOUTME: Tag set helpers for cards.
// ABOUTME: A tag set is a sorted, de-duplicated string slice.

package models

import "sort"

// NormalizeTags returns tags as a set: sorted with duplicates removed. Tag
// text is kept verbatim. The result is never nil.
func NormalizeTags(tags []string) []string {
	set := make([]string, 0, len(tags))
	for _, tag := range tags {
		i := sort.SearchStrings(set, tag)
		if i < len(set) && set[i] == tag {
			continue
		}
		set = append(set, "")
		copy(set[i+1:], set[i:])
		set[i] = tag
	}
	return set
}

// TagCount pairs a tag with the number of cards carrying it.
type TagCount struct {
	Name  string
	Count int
}

// CountTags tallies tags across cards, ordered by name.
func CountTags(cards []Card) []TagCount {
	counts := make(map[string]int)
	for _, c := range cards {
		for _, t := range c.Tags {
			counts[t]++
		}
	}

	result := make([]TagCount, 0, len(counts))
	for name, n := range counts {
		result = append(result, TagCount{Name: name, Count: n})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}
