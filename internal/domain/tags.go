package domain

import "strings"

const TagSeparator = ";"

type Tag struct {
	Text string `json:"text"`
}

// ParseTags splits a ";"-separated list, trimming each entry and dropping
// empty ones. Blank input yields an empty slice.
func ParseTags(raw string) []Tag {
	tags := []Tag{}
	if strings.TrimSpace(raw) == "" {
		return tags
	}

	for _, piece := range strings.Split(raw, TagSeparator) {
		text := strings.TrimSpace(piece)
		if text == "" {
			continue
		}
		tags = append(tags, Tag{Text: text})
	}

	return tags
}

// TagsToString joins tag texts with ";" as-is. Entries are neither trimmed
// nor filtered, so ParseTags(TagsToString(tags)) can differ from tags.
func TagsToString(tags []Tag) string {
	texts := make([]string, 0, len(tags))
	for _, tag := range tags {
		texts = append(texts, tag.Text)
	}

	return strings.Join(texts, TagSeparator)
}
