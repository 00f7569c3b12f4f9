//go:build wireinject
// +build wireinject

package wire

import (
	"context"

	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/sevigo/reviewpilot/internal/app"
	"github.com/sevigo/reviewpilot/internal/config"
)

// InitializeApp loads settings from v, resolves credentials through lookup and
// builds the App with its orchestrator.
func InitializeApp(ctx context.Context, v *viper.Viper, lookup config.LookupFunc) (*app.App, error) {
	wire.Build(AppSet)
	return nil, nil
}
