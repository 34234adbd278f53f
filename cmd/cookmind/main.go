package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cookmind/internal/infrastructure/config"
	"cookmind/internal/pkg/common"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// cli 單一命令樹的旗標與設定
type cli struct {
	serverURL  string
	logLevel   string
	jsonOutput bool

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &cli{}

	rootCmd := &cobra.Command{
		Use:   "cookmind",
		Short: "Ingredient match & substitution engine",
		Long: `cookmind scores recipes against a kitchen inventory, lists missing
ingredients and suggests substitutes with a short explanation.

Without --server the engine runs locally against the configured substitution
table (SUBSTITUTION_SOURCE); with --server the CookMind API is called instead.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.initConfig,
	}

	rootCmd.PersistentFlags().StringVar(&a.serverURL, "server", "", "CookMind API base URL (default: $COOKMIND_SERVER, empty = local engine)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "error", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "print results as JSON")

	rootCmd.AddCommand(a.scoreCmd())
	rootCmd.AddCommand(a.missingCmd())
	rootCmd.AddCommand(a.suggestCmd())
	rootCmd.AddCommand(a.explainCmd())
	rootCmd.AddCommand(a.analyzeCmd())
	rootCmd.AddCommand(a.rankCmd())
	rootCmd.AddCommand(a.tableCmd())

	return rootCmd
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	cancel()
	common.Sync()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initConfig 載入 .env 與設定，並初始化日誌
func (a *cli) initConfig(_ *cobra.Command, _ []string) error {
	_ = godotenv.Load()

	loaded, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = loaded

	return common.InitLogger(a.logLevel, a.cfg.LogMode, "")
}

// endpoint --server 優先，其次為設定中的 COOKMIND_SERVER；空字串表示本地執行
func (a *cli) endpoint() string {
	if a.serverURL != "" {
		return a.serverURL
	}
	if a.cfg == nil {
		return ""
	}
	return a.cfg.Client.BaseURL
}
