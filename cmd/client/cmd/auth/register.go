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

	"resolucity/internal/domain/account"
)

var RegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Criar uma nova conta",
	Long: `Cria uma conta local. O e-mail precisa ser único (sem diferenciar
maiúsculas de minúsculas) e a senha ter pelo menos 6 caracteres.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println("=== Cadastro ===")
		fmt.Println()

		reader := bufio.NewReader(os.Stdin)

		fmt.Print("Nome completo: ")
		name, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("read name: %w", err)
		}
		name = strings.TrimSpace(name)

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

		fmt.Print("Repita a senha: ")
		confirm, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		fmt.Println()

		if string(password) != string(confirm) {
			return fmt.Errorf("as senhas não coincidem")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := app.Accounts.Initialize(ctx); err != nil {
			return fmt.Errorf("initialize store: %w", err)
		}

		// Best-effort age estimate, same as the registration form did.
		metadata := app.Ages.EstimateAge(ctx, name)

		stored, err := app.Accounts.Register(ctx, account.RegisterRequest{
			Name:     name,
			Email:    email,
			Password: string(password),
			Metadata: metadata,
		})
		if err != nil {
			return err
		}

		color.Green("✓ Conta criada! Faça login para continuar.")
		fmt.Printf("  id: %d  e-mail: %s\n", stored.ID, stored.Email)
		return nil
	},
}
