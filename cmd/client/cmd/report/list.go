package report

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"resolucity/internal/domain/report"
)

var listAll bool

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Listar seus relatos",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		var reports []report.Report
		if listAll {
			reports, err = app.Reports.ListAll(ctx)
		} else {
			sess, ok := app.Accounts.CurrentSession(ctx)
			if !ok {
				return fmt.Errorf("faça login para ver seus relatos (resolucity auth login)")
			}
			reports, err = app.Reports.ListForOwner(ctx, sess.Email)
		}
		if err != nil {
			return err
		}

		if len(reports) == 0 {
			fmt.Println("Você ainda não fez nenhum relato.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCATEGORIA\tENDEREÇO\tDATA\tSTATUS")
		for _, r := range reports {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", r.ID, r.Category, r.Address, r.Date, statusText(r.Status))
		}
		return w.Flush()
	},
}

func statusText(status string) string {
	if status == report.StatusResolved {
		return color.GreenString(status)
	}
	return color.YellowString(status)
}

func init() {
	ListCmd.Flags().BoolVar(&listAll, "all", false, "listar relatos de todos os usuários")
}
