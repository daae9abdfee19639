package auth

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var logoutYes bool

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sair da conta",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd.Context())
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		sess, ok := app.Accounts.CurrentSession(ctx)
		if !ok {
			fmt.Println("Nenhuma sessão ativa.")
			return nil
		}

		if !logoutYes {
			fmt.Printf("Deseja sair da conta %s? [s/N] ", sess.Email)
			answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			answer = strings.ToLower(strings.TrimSpace(answer))
			if answer != "s" && answer != "sim" {
				fmt.Println("Cancelado.")
				return nil
			}
		}

		if err := app.Accounts.Logout(ctx); err != nil {
			return err
		}

		color.Yellow("Você foi desconectado.")
		return nil
	},
}

func init() {
	LogoutCmd.Flags().BoolVarP(&logoutYes, "yes", "y", false, "não pedir confirmação")
}
