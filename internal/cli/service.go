package cli

import (
	"github.com/spf13/viper"

	"mmpa/internal/adapters"
	"mmpa/internal/app"
)

func newAppService() app.Service {
	return app.NewService()
}

func lmmsrcPath() string {
	if path := viper.GetString("lmmsrc"); path != "" {
		return path
	}
	return adapters.DefaultLmmsrcPath()
}
