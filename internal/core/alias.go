package core

import (
	"runtime"
	"strings"

	"mmpa/internal/shared"
	"mmpa/internal/types"
)

// ResolveAlias shortens an absolute path to an alias-prefixed one when it
// falls under a configured search directory. The longest matching prefix
// wins; without a match the path comes back unchanged. Prefixes compare
// case-insensitively on Windows, exactly elsewhere.
func ResolveAlias(path string, rules []types.AliasRule) string {
	best := -1
	bestLen := -1
	for i, rule := range rules {
		if rule.Prefix == "" {
			continue
		}
		if !hasPathPrefix(path, rule.Prefix) {
			continue
		}
		if len(rule.Prefix) > bestLen {
			best = i
			bestLen = len(rule.Prefix)
		}
	}
	if best < 0 {
		return path
	}
	rest := path[bestLen:]
	rest = strings.TrimLeft(rest, "/\\")
	return rules[best].Token + shared.NormalizeSeparators(rest)
}

// ApplyAliases post-processes a plan's replacement values through the
// alias rules. It never changes which occurrences were selected.
func ApplyAliases(plan types.RemapPlan, rules []types.AliasRule) types.RemapPlan {
	for i := range plan.Replacements {
		plan.Replacements[i].NewPath = ResolveAlias(plan.Replacements[i].NewPath, rules)
	}
	return plan
}

func hasPathPrefix(path string, prefix string) bool {
	if runtime.GOOS == "windows" {
		return strings.HasPrefix(strings.ToLower(path), strings.ToLower(prefix))
	}
	return strings.HasPrefix(path, prefix)
}
