package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/clarktrimble/sabot"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"admintab"
	nt "admintab/entity"
	"admintab/store"
	"admintab/util"
)

var (
	cfgFile string
	cfg     *Config
	version = "dev"
)

func main() {

	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {

	rootCmd := &cobra.Command{
		Use:     "admintab",
		Short:   "admintab - service account dashboard",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) (err error) {
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				return
			}
			cfg, err = loadConfig(cfgFile, cmd.Root().PersistentFlags())
			return
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTui(cmd.Context(), admintab.Route{Screen: admintab.AccountsScreen})
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "admintab.yaml", "config file, sample written when missing")
	rootCmd.PersistentFlags().String("driver", "", "store driver (sqlite|duckdb)")
	rootCmd.PersistentFlags().String("db", "", "path to database, in memory when empty")
	rootCmd.PersistentFlags().String("operator", "", "identity reported to the dashboard")

	rootCmd.AddCommand(newEditCmd())
	rootCmd.AddCommand(newAccountsCmd())

	return rootCmd
}

func newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit [account]",
		Short: "Open the account editor, for a new account when none given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			route := admintab.Route{Screen: admintab.EditorScreen}
			if len(args) > 0 {
				route.Account = args[0]
			}
			return runTui(cmd.Context(), route)
		},
	}
}

func newAccountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "Print the accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {

			svc, err := openStore(cfg, &sabot.Sabot{Writer: io.Discard})
			if err != nil {
				return
			}
			defer svc.Close()

			infos, err := svc.AccountInfo(cmd.Context(), "")
			if err != nil {
				return
			}

			renderAccounts(cmd.OutOrStdout(), infos)
			return
		},
	}
}

// runTui runs the dashboard until quit, logging to the configured file.
func runTui(ctx context.Context, route admintab.Route) (err error) {

	if ctx == nil {
		ctx = context.Background()
	}

	logFile := util.OpenLog(cfg.LogPath, 0644)
	defer util.CloseLog(logFile)

	lgr := &sabot.Sabot{Writer: logFile}
	lgr.Info(ctx, "admintab starting", "version", version, "driver", cfg.Driver, "path", cfg.Path)

	svc, err := openStore(cfg, lgr)
	if err != nil {
		return
	}
	defer svc.Close()

	err = run(ctx, svc, route, lgr)
	if err != nil {
		lgr.Error(ctx, "admintab failed", err)
		return
	}

	lgr.Info(ctx, "admintab stopping")
	return
}

func run(ctx context.Context, svc *store.Accounts, route admintab.Route, lgr nt.Logger) (err error) {

	model, err := admintab.NewModel(ctx, svc, cfg.Layout, route, lgr)
	if err != nil {
		return
	}

	_, err = tea.NewProgram(model, tea.WithContext(ctx)).Run()
	err = errors.Wrapf(err, "failed to run ui")
	return
}

// renderAccounts prints accounts as a table.
func renderAccounts(w io.Writer, infos []nt.Account) {

	if len(infos) == 0 {
		fmt.Fprintln(w, "(no accounts)")
		return
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)

	tw.AppendHeader(table.Row{"Account", "Name", "Role"})
	for _, info := range infos {
		tw.AppendRow(table.Row{info.Account, info.Name, info.Role.Label()})
	}

	tw.Render()
}
