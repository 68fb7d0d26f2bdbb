package core

import (
	"context"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/beevik/etree"
	"github.com/rs/zerolog/log"

	"mmpa/internal/types"
)

// ApplyPlan commits a remap plan onto the tree it was computed from.
// Every target is validated before anything is mutated: a plan computed
// against a different tree snapshot fails whole, leaving the tree
// untouched.
func ApplyPlan(ctx context.Context, doc *etree.Document, plan types.RemapPlan) error {
	seen := map[*etree.Element]map[string]struct{}{}
	for _, rep := range plan.Replacements {
		occ := rep.Occurrence
		assert.NotEmpty(ctx, occ.Attr, "occurrence must name an attribute")
		if occ.Element == nil || !attachedTo(doc, occ.Element) {
			return staleReference("occurrence element is no longer part of the tree")
		}
		attr := occ.Element.SelectAttr(occ.Attr)
		if attr == nil || attr.Value != occ.Path {
			return staleReference("occurrence attribute no longer holds the located path")
		}
		attrs, ok := seen[occ.Element]
		if !ok {
			attrs = map[string]struct{}{}
			seen[occ.Element] = attrs
		}
		if _, dup := attrs[occ.Attr]; dup {
			return staleReference("occurrence targeted twice in one plan")
		}
		attrs[occ.Attr] = struct{}{}
	}

	for _, rep := range plan.Replacements {
		rep.Occurrence.Element.CreateAttr(rep.Occurrence.Attr, rep.NewPath)
	}
	log.Ctx(ctx).Debug().Int("applied", len(plan.Replacements)).Msg("remap plan committed")
	return nil
}

func staleReference(msg string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(msg)
}

func attachedTo(doc *etree.Document, el *etree.Element) bool {
	for cur := el; cur != nil; cur = cur.Parent() {
		if cur == &doc.Element {
			return true
		}
	}
	return false
}
