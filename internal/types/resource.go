package types

import "github.com/beevik/etree"

// Occurrence is one concrete path reference inside the parsed project tree.
// It holds a handle to the owning element so the attribute can be rewritten
// later without re-searching. An Occurrence is only valid against the tree
// it was located in; mutating the tree makes every prior Occurrence stale.
type Occurrence struct {
	Element *etree.Element
	Attr    string
	Kind    ReferenceKind
	// Path is the raw attribute value at locate time. The writer uses it
	// to detect stale occurrences before committing a plan.
	Path string
	// Label is a display name for the reference site, taken from the
	// nearest enclosing element carrying a name attribute.
	Label string
}

// ResourceEntry is one unique resource path and every place that refers
// to it, in discovery order.
type ResourceEntry struct {
	Index       int
	Path        string
	Occurrences []Occurrence
}

// Replacement pairs an occurrence with the path that should replace its
// current attribute value.
type Replacement struct {
	Occurrence Occurrence
	NewPath    string
}

// RemapPlan is the ordered set of replacements one strategy computed.
// Each occurrence appears at most once; the writer consumes a plan exactly
// once and commits it atomically.
type RemapPlan struct {
	Replacements []Replacement
}

func (p RemapPlan) Empty() bool {
	return len(p.Replacements) == 0
}

// AliasRule maps an absolute directory prefix to a symbolic alias token
// such as "usersample:". Rules come from the LMMS configuration file.
type AliasRule struct {
	Prefix string
	Token  string
}

// ListRef is one reference site shown by the listing surface.
type ListRef struct {
	Label string
	Kind  ReferenceKind
}

// ListEntry is one row of the listing surface: a unique resource with the
// sites that reference it.
type ListEntry struct {
	Index int
	Path  string
	Refs  []ListRef
}
