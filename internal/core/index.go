package core

import (
	"github.com/ZanzyTHEbar/errbuilder-go"

	"mmpa/internal/types"
)

// ResourceIndex deduplicates located occurrences into unique resource
// entries with stable 1-based display indices. It is built once per
// invocation and read-only afterwards; a remapped tree needs a fresh
// locate pass and a fresh index.
type ResourceIndex struct {
	entries []*types.ResourceEntry
	byPath  map[string]*types.ResourceEntry
}

// BuildIndex groups occurrences by exact path string. Indices are assigned
// in order of first appearance; iteration order is kept explicitly rather
// than through map order.
func BuildIndex(occurrences []types.Occurrence) *ResourceIndex {
	idx := &ResourceIndex{byPath: map[string]*types.ResourceEntry{}}
	for _, occ := range occurrences {
		entry, ok := idx.byPath[occ.Path]
		if !ok {
			entry = &types.ResourceEntry{
				Index: len(idx.entries) + 1,
				Path:  occ.Path,
			}
			idx.entries = append(idx.entries, entry)
			idx.byPath[occ.Path] = entry
		}
		entry.Occurrences = append(entry.Occurrences, occ)
	}
	return idx
}

func (x *ResourceIndex) Len() int {
	return len(x.entries)
}

// Entry returns the resource with the given 1-based display index.
func (x *ResourceIndex) Entry(index int) (*types.ResourceEntry, error) {
	if index < 1 || index > len(x.entries) {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("resource index out of range")
	}
	return x.entries[index-1], nil
}

// EntryByPath returns the resource holding the exact path string.
func (x *ResourceIndex) EntryByPath(path string) (*types.ResourceEntry, error) {
	entry, ok := x.byPath[path]
	if !ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("resource path not indexed")
	}
	return entry, nil
}

// Entries returns every resource in display-index order.
func (x *ResourceIndex) Entries() []*types.ResourceEntry {
	return x.entries
}

// List derives the listing surface from the index.
func (x *ResourceIndex) List() []types.ListEntry {
	list := make([]types.ListEntry, 0, len(x.entries))
	for _, entry := range x.entries {
		refs := make([]types.ListRef, 0, len(entry.Occurrences))
		for _, occ := range entry.Occurrences {
			refs = append(refs, types.ListRef{Label: occ.Label, Kind: occ.Kind})
		}
		list = append(list, types.ListEntry{
			Index: entry.Index,
			Path:  entry.Path,
			Refs:  refs,
		})
	}
	return list
}
