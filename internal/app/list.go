package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"mmpa/internal/core"
)

func (s Service) List(ctx context.Context, req ListRequest) (ListResult, error) {
	if strings.TrimSpace(req.ProjectPath) == "" {
		return ListResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("project path is required")
	}
	doc, err := s.Codec.Load(req.ProjectPath)
	if err != nil {
		return ListResult{}, err
	}
	index := core.BuildIndex(core.Locate(doc.Tree))
	log.Ctx(ctx).Debug().Int("resources", index.Len()).Msg("resources indexed")
	return ListResult{Entries: index.List()}, nil
}
