package core

import (
	"context"
	"regexp"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"mmpa/internal/types"
)

// Strategies compute a RemapPlan from the index. Exactly one strategy runs
// per invocation; plans are never merged. Entries are visited in
// display-index order and occurrences in discovery order, so a plan is
// deterministic for identical index contents.

// IndexStrategy maps every occurrence of the entry at the given 1-based
// display index to one replacement path.
func IndexStrategy(ctx context.Context, idx *ResourceIndex, index int, replacement string) (types.RemapPlan, error) {
	entry, err := idx.Entry(index)
	if err != nil {
		return types.RemapPlan{}, err
	}
	log.Ctx(ctx).Info().
		Int("index", index).
		Str("from", entry.Path).
		Str("to", replacement).
		Msg("remapping resource")
	plan := types.RemapPlan{}
	for _, occ := range entry.Occurrences {
		plan.Replacements = append(plan.Replacements, types.Replacement{
			Occurrence: occ,
			NewPath:    replacement,
		})
	}
	return plan, nil
}

// MatchStrategy rewrites every entry whose path contains the find
// substring, replacing all its occurrences of that substring. Entries
// without a match contribute nothing; an empty plan is not an error.
func MatchStrategy(ctx context.Context, idx *ResourceIndex, find string, substitute string) (types.RemapPlan, error) {
	if find == "" {
		return types.RemapPlan{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("match string must not be empty")
	}
	plan := types.RemapPlan{}
	for _, entry := range idx.Entries() {
		if !strings.Contains(entry.Path, find) {
			continue
		}
		newPath := strings.ReplaceAll(entry.Path, find, substitute)
		appendEntry(&plan, entry, newPath)
	}
	log.Ctx(ctx).Debug().Int("replacements", len(plan.Replacements)).Msg("match plan computed")
	return plan, nil
}

// RegexStrategy rewrites every entry whose path matches the pattern, using
// standard leftmost unanchored substitution with $1-style group references
// in the template. A malformed pattern fails before any plan is computed.
func RegexStrategy(ctx context.Context, idx *ResourceIndex, pattern string, template string) (types.RemapPlan, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return types.RemapPlan{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid regex pattern").
			WithCause(err)
	}
	plan := types.RemapPlan{}
	for _, entry := range idx.Entries() {
		newPath := re.ReplaceAllString(entry.Path, template)
		if newPath == entry.Path {
			continue
		}
		appendEntry(&plan, entry, newPath)
	}
	log.Ctx(ctx).Debug().Int("replacements", len(plan.Replacements)).Msg("regex plan computed")
	return plan, nil
}

func appendEntry(plan *types.RemapPlan, entry *types.ResourceEntry, newPath string) {
	for _, occ := range entry.Occurrences {
		plan.Replacements = append(plan.Replacements, types.Replacement{
			Occurrence: occ,
			NewPath:    newPath,
		})
	}
}
