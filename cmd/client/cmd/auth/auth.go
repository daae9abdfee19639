package auth

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"resolucity/cmd/client/cmd/types"
	"resolucity/internal/app/client"
)

// AuthCmd groups the account operations.
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Gerenciar sua conta",
	Long:  `Cadastro, login, logout e sessão atual.`,
}

func appFrom(ctx context.Context) (*client.App, error) {
	app, ok := ctx.Value(types.ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("application not initialized")
	}
	return app, nil
}
