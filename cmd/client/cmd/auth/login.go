package auth

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Entrar na sua conta",
	Long: `Autentica com e-mail e senha e preenche a sessão ativa.
Um login novo substitui a sessão anterior.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if sess, ok := app.Accounts.CurrentSession(ctx); ok {
			fmt.Printf("Olá, %s! Você já está conectado (%s).\n", firstName(sess.Name), sess.Email)
			fmt.Println("Use `resolucity auth logout` para entrar com outra conta.")
			return nil
		}

		fmt.Println("=== Login ===")
		fmt.Println()

		reader := bufio.NewReader(os.Stdin)

		fmt.Print("E-mail: ")
		email, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("read email: %w", err)
		}
		email = strings.TrimSpace(email)

		fmt.Print("Senha: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		fmt.Println()

		u, err := app.Accounts.Authenticate(ctx, email, string(password))
		if err != nil {
			return fmt.Errorf("e-mail ou senha incorretos")
		}

		sess, err := app.Accounts.Login(ctx, u)
		if err != nil {
			return err
		}

		color.Green("✓ Login realizado com sucesso.")
		fmt.Printf("  Olá, %s!\n", firstName(sess.Name))
		return nil
	},
}

func firstName(name string) string {
	return strings.SplitN(strings.TrimSpace(name), " ", 2)[0]
}
