package model

import "strings"

// Hobby is a single tracked activity. A Hobby is never mutated after the
// store creates it; callers receive copies.
type Hobby struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}

// Seed is a (name, emoji) pair used to pre-populate a fresh collection.
type Seed struct {
	Name  string `yaml:"name" json:"name"`
	Emoji string `yaml:"emoji" json:"emoji"`
}

// DisplayText returns the row text shown in lists, emoji first.
func (h Hobby) DisplayText() string {
	if h.Emoji == "" {
		return h.Name
	}
	var b strings.Builder
	b.WriteString(h.Emoji)
	b.WriteString(" ")
	b.WriteString(h.Name)
	return b.String()
}

// IsZero reports whether h is the zero Hobby (no record).
func (h Hobby) IsZero() bool {
	return h.ID == "" && h.Name == "" && h.Emoji == ""
}
