package core

import (
	"github.com/beevik/etree"
	"github.com/rs/zerolog/log"

	"mmpa/internal/types"
)

// referenceShape describes one element schema known to carry a resource
// path: the element tag and the attribute holding the path.
type referenceShape struct {
	kind types.ReferenceKind
	attr string
}

// referenceShapes is the whitelist of path-bearing element shapes. Elements
// not listed here are never touched, even when an attribute value looks
// like a path.
var referenceShapes = map[string]referenceShape{
	"audiofileprocessor": {kind: types.KindAudioFileProcessor, attr: "src"},
	"sampleclip":         {kind: types.KindSampleClip, attr: "src"},
	"sampletco":          {kind: types.KindSampleClip, attr: "src"},
	"slicert":            {kind: types.KindSlicerT, attr: "src"},
	"sf2player":          {kind: types.KindSF2Player, attr: "src"},
	"vestige":            {kind: types.KindVestige, attr: "plugin"},
}

// Locate walks the parsed project tree and returns every recognized
// resource reference in document order. The traversal is pure; the returned
// occurrences stay valid only until the tree is mutated.
func Locate(doc *etree.Document) []types.Occurrence {
	var found []types.Occurrence
	root := doc.Root()
	if root == nil {
		return found
	}
	walk(root, &found)
	return found
}

func walk(el *etree.Element, found *[]types.Occurrence) {
	if shape, ok := referenceShapes[el.Tag]; ok {
		if occ, ok := occurrenceFor(el, shape); ok {
			*found = append(*found, occ)
		}
	}
	for _, child := range el.ChildElements() {
		walk(child, found)
	}
}

func occurrenceFor(el *etree.Element, shape referenceShape) (types.Occurrence, bool) {
	attr := el.SelectAttr(shape.attr)
	if attr == nil {
		log.Debug().
			Str("element", el.Tag).
			Str("attr", shape.attr).
			Msg("recognized element missing path attribute, skipping")
		return types.Occurrence{}, false
	}
	// Empty paths are never indexed: remapping one could hand an
	// instrument a resource of the wrong class.
	if attr.Value == "" {
		return types.Occurrence{}, false
	}
	return types.Occurrence{
		Element: el,
		Attr:    shape.attr,
		Kind:    shape.kind,
		Path:    attr.Value,
		Label:   labelFor(el),
	}, true
}

// labelFor finds a display name for a reference site: the name attribute
// of the nearest enclosing element that has one, falling back to the
// element tag.
func labelFor(el *etree.Element) string {
	for cur := el; cur != nil; cur = cur.Parent() {
		if name := cur.SelectAttrValue("name", ""); name != "" {
			return name
		}
	}
	return el.Tag
}
