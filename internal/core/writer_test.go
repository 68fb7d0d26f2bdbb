package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mmpa/internal/types"
)

func TestApplyPlanRewritesAllTargets(t *testing.T) {
	doc := parseDoc(t, indexProject)
	index := BuildIndex(Locate(doc))
	plan, err := IndexStrategy(t.Context(), index, 1, "drums/kick_hard01.ogg")
	require.NoError(t, err)

	require.NoError(t, ApplyPlan(t.Context(), doc, plan))

	// both referencing elements now carry the new path, others untouched
	fresh := BuildIndex(Locate(doc))
	entry, err := fresh.EntryByPath("drums/kick_hard01.ogg")
	require.NoError(t, err)
	assert.Len(t, entry.Occurrences, 2)
	_, err = fresh.EntryByPath("drums/snare01.ogg")
	require.Error(t, err)
	_, err = fresh.EntryByPath("vst/Vital.dll")
	require.NoError(t, err)
}

func TestApplyPlanRejectsPlanFromOtherTree(t *testing.T) {
	source := parseDoc(t, indexProject)
	target := parseDoc(t, indexProject)
	plan, err := IndexStrategy(t.Context(), BuildIndex(Locate(source)), 1, "x.ogg")
	require.NoError(t, err)

	err = ApplyPlan(t.Context(), target, plan)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
}

func TestApplyPlanRejectsStaleAttribute(t *testing.T) {
	doc := parseDoc(t, indexProject)
	index := BuildIndex(Locate(doc))
	plan, err := IndexStrategy(t.Context(), index, 1, "x.ogg")
	require.NoError(t, err)

	// mutate the tree behind the plan's back
	plan.Replacements[0].Occurrence.Element.CreateAttr("src", "changed.wav")

	err = ApplyPlan(t.Context(), doc, plan)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))

	// all-or-nothing: the second occurrence kept its original value
	assert.Equal(t, "drums/snare01.ogg",
		plan.Replacements[1].Occurrence.Element.SelectAttrValue("src", ""))
}

func TestApplyPlanRejectsDetachedElement(t *testing.T) {
	doc := parseDoc(t, indexProject)
	index := BuildIndex(Locate(doc))
	plan, err := IndexStrategy(t.Context(), index, 1, "x.ogg")
	require.NoError(t, err)

	el := plan.Replacements[0].Occurrence.Element
	el.Parent().RemoveChild(el)

	err = ApplyPlan(t.Context(), doc, plan)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
}

func TestApplyPlanEmptyIsNoop(t *testing.T) {
	doc := parseDoc(t, indexProject)
	require.NoError(t, ApplyPlan(t.Context(), doc, types.RemapPlan{}))
}
