package project

import "strings"

// Project is a portfolio showcase entry.
type Project struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	ImageURL    string   `json:"imageUrl"`
	Link        string   `json:"link,omitempty"`
}

// ParseTags splits a comma separated tag list, trimming blanks.
func ParseTags(raw string) []string {
	tags := []string{}
	for _, part := range strings.Split(raw, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// JoinTags is the inverse of ParseTags for editing.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}
