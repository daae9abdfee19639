package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"

	"resolucity/cmd/client/cmd/types"
	"resolucity/internal/app/client"
	"resolucity/internal/app/client/config"
	"resolucity/internal/utils/logger"
)

var (
	cfgFile string
	dataDir string
	cfg     *config.Config
	log     *slog.Logger
	app     *client.App
)

var rootCmd = &cobra.Command{
	Use:   "resolucity",
	Short: "ResoluCity - relatos de problemas urbanos",
	Long: `ResoluCity registra relatos de problemas urbanos (buracos, drenagem,
iluminação...) direto no seu computador, sem servidor.

Crie uma conta, entre e registre seus relatos; o painel mostra as
estatísticas por categoria e por mês.`,
	PersistentPreRunE: setupApp,
	PersistentPostRunE: func(*cobra.Command, []string) error {
		if app != nil {
			return app.Close()
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if dataDir != "" {
		cfg.StoragePath = filepath.Join(dataDir, filepath.Base(cfg.StoragePath))
		cfg.DataDir = dataDir
	}

	log = logger.New(cfg.Env)

	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}

	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))
	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		viper.AddConfigPath(home + "/.resolucity")
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return config.MustLoad(), nil
}

func init() {
	cobra.OnInitialize()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "configuration file")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default ~/.resolucity)")
}
