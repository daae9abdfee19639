package auth

import (
	"fmt"

	"github.com/spf13/cobra"
)

var WhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Mostrar a sessão atual",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd.Context())
		if err != nil {
			return err
		}

		sess, ok := app.Accounts.CurrentSession(cmd.Context())
		if !ok {
			fmt.Println("Nenhuma sessão ativa.")
			return nil
		}

		fmt.Printf("Nome:   %s\n", sess.Name)
		fmt.Printf("E-mail: %s\n", sess.Email)
		fmt.Printf("Desde:  %s\n", sess.CreatedAt)
		if age, ok := sess.Metadata["estimatedAge"]; ok {
			fmt.Printf("Idade estimada: %v\n", age)
		}
		return nil
	},
}
