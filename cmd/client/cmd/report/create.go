package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"resolucity/internal/clients/openmeteo"
	"resolucity/internal/domain/report"
)

var (
	createName        string
	createCPF         string
	createBirthDate   string
	createPhone       string
	createEmail       string
	createCategory    string
	createCEP         string
	createAddress     string
	createDescription string
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Registrar um novo relato",
	Long: `Registra um relato de problema urbano. Com --cep e sem --address, o
endereço é buscado no ViaCEP. Logado, nome e e-mail vêm da sessão e o
relato fica associado à sua conta; sem sessão, o relato é anônimo.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		// Cosmetic weather line, skipped silently on failure.
		if w, err := app.Weather.Current(ctx, openmeteo.DefaultLatitude, openmeteo.DefaultLongitude); err == nil {
			fmt.Printf("Clima agora: %.1f°C, %s\n\n", w.Temperature, w.Description)
		}

		owner := report.OwnerAnonymous
		name, email := createName, createEmail
		if sess, ok := app.Accounts.CurrentSession(ctx); ok {
			owner = sess.Email
			if name == "" {
				name = sess.Name
			}
			if email == "" {
				email = sess.Email
			}
		}

		address := createAddress
		if address == "" && createCEP != "" {
			addr, err := app.Geo.Lookup(ctx, createCEP)
			if err != nil {
				fmt.Printf("Não foi possível buscar o CEP: %v\n", err)
			} else {
				address = addr.Formatted()
				fmt.Printf("Endereço encontrado: %s\n", address)
			}
		}

		validator := report.NewFormValidator()
		if err := validator.ValidateSubmission(report.Submission{
			Name:        name,
			CPF:         createCPF,
			BirthDate:   createBirthDate,
			Phone:       createPhone,
			Email:       email,
			Category:    createCategory,
			CEP:         createCEP,
			Address:     address,
			Description: createDescription,
		}); err != nil {
			var fields report.FieldErrors
			if errors.As(err, &fields) {
				fmt.Println("Corrija os campos abaixo:")
				for field, msg := range fields {
					fmt.Printf("  - %s: %s\n", field, msg)
				}
				return fmt.Errorf("relato inválido")
			}
			return err
		}

		stored, err := app.Reports.Create(ctx, report.CreateRequest{
			Category:    createCategory,
			Address:     address,
			Description: createDescription,
		}, owner)
		if err != nil {
			return err
		}

		color.Green("✓ Relato enviado! Seu relato foi registrado com sucesso.")
		fmt.Printf("  id: %d  categoria: %s  status: %s\n", stored.ID, stored.Category, stored.Status)
		return nil
	},
}

func init() {
	CreateCmd.Flags().StringVar(&createName, "name", "", "nome do solicitante (padrão: sessão atual)")
	CreateCmd.Flags().StringVar(&createCPF, "cpf", "", "CPF do solicitante")
	CreateCmd.Flags().StringVar(&createBirthDate, "birth-date", "", "data de nascimento")
	CreateCmd.Flags().StringVar(&createPhone, "phone", "", "telefone de contato")
	CreateCmd.Flags().StringVar(&createEmail, "email", "", "e-mail (padrão: sessão atual)")
	CreateCmd.Flags().StringVarP(&createCategory, "category", "c", "", "categoria do problema")
	CreateCmd.Flags().StringVar(&createCEP, "cep", "", "CEP do local do problema")
	CreateCmd.Flags().StringVarP(&createAddress, "address", "a", "", "endereço do problema")
	CreateCmd.Flags().StringVarP(&createDescription, "description", "d", "", "descrição do problema")
}
