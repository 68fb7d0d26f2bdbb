package adapters

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/beevik/etree"
	"github.com/rs/zerolog/log"

	"mmpa/internal/ports"
	"mmpa/internal/shared"
	"mmpa/internal/types"
)

// LmmsrcAdapter reads the LMMS settings file (.lmmsrc.xml) and exposes the
// configured search directories as alias rules.
type LmmsrcAdapter struct{}

func NewLmmsrcAdapter() LmmsrcAdapter {
	return LmmsrcAdapter{}
}

// DefaultLmmsrcPath is where LMMS keeps its settings file.
func DefaultLmmsrcPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".lmmsrc.xml"
	}
	return filepath.Join(home, ".lmmsrc.xml")
}

func (a LmmsrcAdapter) AliasRules(path string) ([]types.AliasRule, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read lmmsrc file").
			WithCause(err)
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(raw); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("lmmsrc is not valid XML").
			WithCause(err)
	}
	root := doc.Root()
	if root == nil {
		return nil, missingPaths()
	}
	paths := root.FindElement("paths")
	if paths == nil {
		return nil, missingPaths()
	}

	workingDir := paths.SelectAttrValue("workingdir", "")
	var rules []types.AliasRule
	if workingDir != "" {
		rules = append(rules,
			types.AliasRule{Prefix: filepath.Join(workingDir, "projects"), Token: "userprojects:"},
			types.AliasRule{Prefix: filepath.Join(workingDir, "samples"), Token: "usersample:"},
		)
	}
	if dir := paths.SelectAttrValue("sf2dir", ""); dir != "" {
		rules = append(rules, types.AliasRule{Prefix: dir, Token: "usersoundfont:"})
	}
	if dir := paths.SelectAttrValue("vstdir", ""); dir != "" {
		rules = append(rules, types.AliasRule{Prefix: dir, Token: "uservst:"})
	}
	return rules, nil
}

func (a LmmsrcAdapter) ExpandAlias(path string, rules []types.AliasRule) string {
	alias, rest, ok := shared.SplitAlias(path)
	if !ok {
		return path
	}
	token := alias + ":"
	for _, rule := range rules {
		if rule.Token == token {
			return filepath.Join(rule.Prefix, filepath.FromSlash(rest))
		}
	}
	log.Warn().Str("alias", alias).Msg("unknown alias")
	return path
}

func missingPaths() error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("lmmsrc has no paths section")
}

var _ ports.LmmsConfigPort = LmmsrcAdapter{}
