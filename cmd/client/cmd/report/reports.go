package report

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"resolucity/cmd/client/cmd/types"
	"resolucity/internal/app/client"
)

// ReportCmd groups the complaint report operations.
var ReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Gerenciar relatos",
	Long:  `Criação, listagem e exclusão de relatos de problemas urbanos.`,
}

func appFrom(ctx context.Context) (*client.App, error) {
	app, ok := ctx.Value(types.ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("application not initialized")
	}
	return app, nil
}
