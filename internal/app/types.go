package app

import "mmpa/internal/types"

type ListRequest struct {
	ProjectPath string
}

type ListResult struct {
	Entries []types.ListEntry
}

type RemapRequest struct {
	ProjectPath string
	OutputPath  string
	Strategy    types.StrategyKind

	// Index strategy
	Index       int
	Replacement string

	// Match strategy
	Find       string
	Substitute string

	// Regex strategy
	Pattern  string
	Template string

	// Alias post-processing
	ApplyAliases bool
	LmmsrcPath   string

	Force bool
}

type RemapResult struct {
	OutputPath string
	// Replaced counts the occurrences rewritten; zero means no output
	// file was produced.
	Replaced int
}
