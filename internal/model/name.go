package model

import "golang.org/x/text/cases"

// FoldName returns the case-folded form of a hobby name. Two names are
// duplicates when their folded forms are equal.
func FoldName(name string) string {
	return cases.Fold().String(name)
}

// SameName reports whether a and b name the same hobby.
func SameName(a, b string) bool {
	return FoldName(a) == FoldName(b)
}
