package core

import (
	"strings"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const strategyProject = `<lmms-project>
 <song>
  <track name="A"><audiofileprocessor src="/home/bob/samples/kick.wav"/></track>
  <track name="B"><audiofileprocessor src="drums/snare01.ogg"/></track>
  <track name="C"><audiofileprocessor src="drums/snare01.ogg"/></track>
  <track name="D"><sf2player src="soundfonts/FluidR3.sf2"/></track>
 </song>
</lmms-project>`

func strategyIndex(t *testing.T) *ResourceIndex {
	t.Helper()
	return BuildIndex(Locate(parseDoc(t, strategyProject)))
}

func TestIndexStrategyCoversAllOccurrences(t *testing.T) {
	index := strategyIndex(t)
	plan, err := IndexStrategy(t.Context(), index, 2, "drums/kick_hard01.ogg")
	require.NoError(t, err)

	// entry 2 is drums/snare01.ogg, referenced twice; nothing else in the
	// plan even though other entries exist.
	require.Len(t, plan.Replacements, 2)
	for _, rep := range plan.Replacements {
		assert.Equal(t, "drums/snare01.ogg", rep.Occurrence.Path)
		assert.Equal(t, "drums/kick_hard01.ogg", rep.NewPath)
	}
}

func TestIndexStrategyOutOfRange(t *testing.T) {
	index := strategyIndex(t)
	_, err := IndexStrategy(t.Context(), index, 9, "drums/kick_hard01.ogg")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestMatchStrategyMirrorsReplaceAll(t *testing.T) {
	index := strategyIndex(t)
	plan, err := MatchStrategy(t.Context(), index, "drums/", "percussion/")
	require.NoError(t, err)

	require.Len(t, plan.Replacements, 2)
	for _, rep := range plan.Replacements {
		want := strings.ReplaceAll(rep.Occurrence.Path, "drums/", "percussion/")
		assert.Equal(t, want, rep.NewPath)
	}
}

func TestMatchStrategyReplacesEveryOccurrenceInPath(t *testing.T) {
	doc := parseDoc(t, `<lmms-project>
 <song><track name="A"><audiofileprocessor src="samples/old/samples/kick.wav"/></track></song>
</lmms-project>`)
	index := BuildIndex(Locate(doc))
	plan, err := MatchStrategy(t.Context(), index, "samples", "loops")
	require.NoError(t, err)
	require.Len(t, plan.Replacements, 1)
	assert.Equal(t, "loops/old/loops/kick.wav", plan.Replacements[0].NewPath)
}

func TestMatchStrategyNoMatchIsEmptyPlan(t *testing.T) {
	index := strategyIndex(t)
	plan, err := MatchStrategy(t.Context(), index, "nonexistent", "x")
	require.NoError(t, err)
	assert.True(t, plan.Empty())
}

func TestMatchStrategyEmptyFindRejected(t *testing.T) {
	index := strategyIndex(t)
	_, err := MatchStrategy(t.Context(), index, "", "x")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestRegexStrategyGroupSubstitution(t *testing.T) {
	index := strategyIndex(t)
	plan, err := RegexStrategy(t.Context(), index, `^(.*)/samples/(.*)$`, "usersample:$2")
	require.NoError(t, err)

	require.Len(t, plan.Replacements, 1)
	assert.Equal(t, "/home/bob/samples/kick.wav", plan.Replacements[0].Occurrence.Path)
	assert.Equal(t, "usersample:kick.wav", plan.Replacements[0].NewPath)
}

func TestRegexStrategyUnanchoredPartialMatch(t *testing.T) {
	index := strategyIndex(t)
	plan, err := RegexStrategy(t.Context(), index, `snare\d+`, "snare99")
	require.NoError(t, err)

	require.Len(t, plan.Replacements, 2)
	for _, rep := range plan.Replacements {
		assert.Equal(t, "drums/snare99.ogg", rep.NewPath)
	}
}

func TestRegexStrategyInvalidPattern(t *testing.T) {
	index := strategyIndex(t)
	_, err := RegexStrategy(t.Context(), index, `([unclosed`, "x")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestRegexStrategyNoMatchIsEmptyPlan(t *testing.T) {
	index := strategyIndex(t)
	plan, err := RegexStrategy(t.Context(), index, `\.xyz$`, "gone")
	require.NoError(t, err)
	assert.True(t, plan.Empty())
}

func TestPlansAreDeterministic(t *testing.T) {
	first, err := MatchStrategy(t.Context(), strategyIndex(t), "drums", "hits")
	require.NoError(t, err)
	second, err := MatchStrategy(t.Context(), strategyIndex(t), "drums", "hits")
	require.NoError(t, err)

	var a, b []string
	for _, rep := range first.Replacements {
		a = append(a, rep.Occurrence.Path+" -> "+rep.NewPath)
	}
	for _, rep := range second.Replacements {
		b = append(b, rep.Occurrence.Path+" -> "+rep.NewPath)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("plans differ between runs (-first +second):\n%s", diff)
	}
}
