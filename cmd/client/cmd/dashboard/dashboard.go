// Package dashboard renders the aggregated report series as text tables.
package dashboard

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"resolucity/cmd/client/cmd/types"
	"resolucity/internal/app/client"
)

var DashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Painel de estatísticas dos relatos",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("application not initialized")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		series, err := app.Dashboard.Build(ctx)
		if err != nil {
			return err
		}

		color.Cyan("Reclamações e resoluções por categoria")
		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "CATEGORIA\tRECLAMAÇÕES\tRESOLVIDAS")
		for i, cat := range series.Categories {
			if series.Complaints[i] == 0 && series.Resolved[i] == 0 {
				continue
			}
			fmt.Fprintf(w, "%s\t%d\t%d\n", cat, series.Complaints[i], series.Resolved[i])
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Println()
		color.Cyan("Relatos por mês (%d)", time.Now().Year())
		w = tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "MÊS\tRELATOS")
		for i, month := range series.Months {
			fmt.Fprintf(w, "%s\t%d\n", month, series.Monthly[i])
		}
		return w.Flush()
	},
}
