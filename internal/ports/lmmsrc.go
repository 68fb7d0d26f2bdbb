package ports

import "mmpa/internal/types"

type LmmsConfigPort interface {
	// AliasRules reads the LMMS settings file at path and returns the
	// configured search directories as alias rules, most specific last.
	AliasRules(path string) ([]types.AliasRule, error)
	// ExpandAlias rewrites an alias-prefixed path (usersample:kick.wav)
	// to an absolute path using the rules, or returns it unchanged when
	// no alias applies.
	ExpandAlias(path string, rules []types.AliasRule) string
}
