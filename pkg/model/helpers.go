package model

import (
	"fmt"
	"slices"
	"strings"
)

// CompareTime orders two "HH:mm" strings. Plain string comparison is correct
// for the fixed-width zero-padded form.
func CompareTime(a, b string) int {
	return strings.Compare(a, b)
}

// UniqueID returns the first "<prefix><n>" (n starting at 1) not already
// present in existing. IDs are client-generated with no uniqueness guarantee
// beyond the single problem instance.
func UniqueID(prefix string, existing []string) string {
	counter := 1
	id := fmt.Sprintf("%v%d", prefix, counter)
	for slices.Contains(existing, id) {
		counter++
		id = fmt.Sprintf("%v%d", prefix, counter)
	}
	return id
}
