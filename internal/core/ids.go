package core

import "fmt"

// The public enums (boundary, neighborhood, vitality mode, spectrum mode,
// brush shape) are closed tagged types internally but serialize as stable
// string ids. The id list order is the index order and is never reordered.

// MustIndex returns the position of id within ids. An unknown id is a
// programmer error, not a runtime condition, so it panics.
func MustIndex(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	panic(fmt.Sprintf("core: unknown id %q", id))
}

// MustID returns the id at index i, panicking when i is out of range.
func MustID(ids []string, i int) string {
	if i < 0 || i >= len(ids) {
		panic(fmt.Sprintf("core: id index %d out of range (%d ids)", i, len(ids)))
	}
	return ids[i]
}

// LookupIndex is the lenient variant of MustIndex for user-supplied ids
// (flag values, preset files). It reports whether the id is known.
func LookupIndex(ids []string, id string) (int, bool) {
	for i, v := range ids {
		if v == id {
			return i, true
		}
	}
	return 0, false
}
