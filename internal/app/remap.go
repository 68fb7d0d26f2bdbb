package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"mmpa/internal/core"
	"mmpa/internal/policies"
	"mmpa/internal/types"
)

// Remap runs the full pipeline: decode, locate, index, compute one plan
// from one strategy, optionally alias-shorten the replacements, commit,
// re-encode. An empty plan writes nothing and reports zero replacements.
func (s Service) Remap(ctx context.Context, req RemapRequest) (RemapResult, error) {
	if strings.TrimSpace(req.ProjectPath) == "" {
		return RemapResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("project path is required")
	}
	if strings.TrimSpace(req.OutputPath) == "" {
		return RemapResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output path is required")
	}

	doc, err := s.Codec.Load(req.ProjectPath)
	if err != nil {
		return RemapResult{}, err
	}
	index := core.BuildIndex(core.Locate(doc.Tree))

	plan, err := s.computePlan(ctx, index, req)
	if err != nil {
		return RemapResult{}, err
	}
	if plan.Empty() {
		log.Ctx(ctx).Info().Msg("nothing was changed")
		return RemapResult{Replaced: 0}, nil
	}

	if req.ApplyAliases {
		rules, err := s.LmmsConfig.AliasRules(req.LmmsrcPath)
		if err != nil {
			return RemapResult{}, err
		}
		plan = core.ApplyAliases(plan, rules)
	}

	if err := core.ApplyPlan(ctx, doc.Tree, plan); err != nil {
		return RemapResult{}, err
	}
	if err := s.Codec.Save(doc, req.OutputPath, req.Force); err != nil {
		return RemapResult{}, err
	}
	return RemapResult{
		OutputPath: req.OutputPath,
		Replaced:   len(plan.Replacements),
	}, nil
}

func (s Service) computePlan(ctx context.Context, index *core.ResourceIndex, req RemapRequest) (types.RemapPlan, error) {
	switch req.Strategy {
	case types.StrategyIndex:
		entry, err := index.Entry(req.Index)
		if err != nil {
			return types.RemapPlan{}, err
		}
		if err := policies.CheckReplacement(entry.Path, req.Replacement); err != nil {
			return types.RemapPlan{}, err
		}
		return core.IndexStrategy(ctx, index, req.Index, req.Replacement)
	case types.StrategyMatch:
		return core.MatchStrategy(ctx, index, req.Find, req.Substitute)
	case types.StrategyRegex:
		return core.RegexStrategy(ctx, index, req.Pattern, req.Template)
	default:
		return types.RemapPlan{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unknown remap strategy")
	}
}
