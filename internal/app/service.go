package app

import (
	"mmpa/internal/adapters"
	"mmpa/internal/ports"
)

type Service struct {
	Codec      ports.ProjectCodecPort
	LmmsConfig ports.LmmsConfigPort
}

func NewService() Service {
	return Service{
		Codec:      adapters.NewProjectFileAdapter(),
		LmmsConfig: adapters.NewLmmsrcAdapter(),
	}
}
