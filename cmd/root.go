package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/byxorna/storefront/pkg/app"
	"github.com/byxorna/storefront/pkg/config"
	"github.com/byxorna/storefront/pkg/logging"
	"github.com/byxorna/storefront/pkg/model"
	"github.com/byxorna/storefront/pkg/runtime"
	"github.com/byxorna/storefront/pkg/types/v1"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	flags = struct {
		ConfigFile string
		Endpoint   string
		Sort       string
		Categories []string
		LogLevel   string
		DebugAddr  string
	}{}

	root = &cobra.Command{
		Use:   "storefront",
		Short: "Storefront browses a product catalog from the terminal",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if flags.DebugAddr != "" {
				serveDebug(flags.DebugAddr)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			logFile, err := runtime.OpenLog(cfg.Log.File)
			if err != nil {
				return err
			}
			defer logFile.Close()
			logging.Setup(logging.Config{
				Level:  logging.Level(cfg.Log.Level),
				Output: logFile,
			})

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			ctrl, err := app.New(ctx, cfg)
			if err != nil {
				return err
			}

			p := tea.NewProgram(model.New(ctrl, cfg.Categories), tea.WithAltScreen(), tea.WithContext(ctx))
			_, err = p.Run()
			return err
		},
	}
)

func init() {
	root.PersistentFlags().StringVarP(&flags.ConfigFile, "config", "c", config.DefaultPath, "configuration file")
	root.PersistentFlags().StringVar(&flags.Endpoint, "endpoint", "", "catalog endpoint, overrides the config file")
	root.PersistentFlags().StringVar(&flags.Sort, "sort", "", fmt.Sprintf("initial sort key (%s or %s)", v1.SortByPrice, v1.SortByName))
	root.PersistentFlags().StringArrayVar(&flags.Categories, "category", nil, "category selected at startup, may be repeated")
	root.PersistentFlags().StringVar(&flags.LogLevel, "log-level", "", "debug, info, warn or error")
	root.PersistentFlags().StringVar(&flags.DebugAddr, "debug-addr", "", "serve pprof, expvar and /metrics on this address")
	root.AddCommand(listCmd)
}

// loadConfig reads the config file and applies any flags the user set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(flags.ConfigFile)
	if err != nil {
		return nil, err
	}

	fs := cmd.Flags()
	if fs.Changed("endpoint") {
		cfg.Endpoint = flags.Endpoint
	}
	if fs.Changed("sort") {
		key, err := v1.ParseSortKey(flags.Sort)
		if err != nil {
			return nil, err
		}
		cfg.Sort = key
	}
	if fs.Changed("category") {
		cfg.Filters = flags.Categories
	}
	if fs.Changed("log-level") {
		cfg.Log.Level = flags.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

func Execute() {
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
