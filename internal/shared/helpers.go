// Package shared provides common utility functions used across multiple
// packages in the mmpa codebase.
package shared

import (
	"path/filepath"
	"strings"
)

// FileExt returns the lowercased file extension of a path without the
// leading dot. Alias-prefixed paths (usersample:kick.wav) are handled the
// same as plain paths.
func FileExt(path string) string {
	ext := filepath.Ext(path)
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// SplitAlias splits an alias-prefixed resource path into its alias token
// and remainder. The second return is false when the path carries no alias.
// Windows drive letters (C:\...) are not aliases.
func SplitAlias(path string) (alias string, rest string, ok bool) {
	idx := strings.Index(path, ":")
	if idx <= 0 {
		return "", path, false
	}
	alias = path[:idx]
	if len(alias) == 1 {
		// single letter before the colon is a drive, not an alias
		return "", path, false
	}
	return alias, path[idx+1:], true
}

// NormalizeSeparators rewrites OS-specific path separators to forward
// slashes, the separator LMMS stores in project files.
func NormalizeSeparators(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}
