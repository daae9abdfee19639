package cmd

import (
	"resolucity/cmd/client/cmd/auth"
	"resolucity/cmd/client/cmd/dashboard"
	"resolucity/cmd/client/cmd/report"
)

func init() {
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.RegisterCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)
	auth.AuthCmd.AddCommand(auth.WhoamiCmd)

	rootCmd.AddCommand(report.ReportCmd)
	report.ReportCmd.AddCommand(report.CreateCmd)
	report.ReportCmd.AddCommand(report.ListCmd)
	report.ReportCmd.AddCommand(report.DeleteCmd)

	rootCmd.AddCommand(dashboard.DashboardCmd)
}
