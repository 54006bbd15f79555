package main

import (
	"fmt"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"io"
	"os"
	"sheetEngine/contracts"
)

func NewRootCommand(out io.Writer, errOut io.Writer) *cobra.Command {
	config := NewConfigReader()

	serve := func(cmd *cobra.Command, args []string) error {
		return RunApp(LoadConfig(config), cmd.ErrOrStderr())
	}

	rootCmd := &cobra.Command{
		Use:           "sheetEngine",
		Short:         "Spreadsheet formula engine with HTTP API",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          serve,
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	flags := rootCmd.PersistentFlags()
	flags.String("db", "", "Path to bbolt database file")
	flags.String("listen", DefaultListenAddr, "HTTP listen address")
	flags.Bool("incremental", false, "Recompute only edited cells and their dependants")
	flags.Int("webhook-workers", DefaultWebhookWorkersCount, "Count of webhook sender workers")
	bindFlag(config, DatabaseFilepathConfigKey, flags.Lookup("db"))
	bindFlag(config, ListenAddrConfigKey, flags.Lookup("listen"))
	bindFlag(config, IncrementalRecomputeConfigKey, flags.Lookup("incremental"))
	bindFlag(config, WebhookWorkersConfigKey, flags.Lookup("webhook-workers"))

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start HTTP API server",
		Args:  cobra.NoArgs,
		RunE:  serve,
	}

	recomputeCmd := &cobra.Command{
		Use:   "recompute <snapshots.json>",
		Short: "Recompute sheets from a snapshots file and print them as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RecomputeSnapshotsFile(args[0], LoadConfig(config), cmd.OutOrStdout())
		},
	}

	rootCmd.AddCommand(serveCmd, recomputeCmd)

	return rootCmd
}

func bindFlag(config *viper.Viper, key string, flag *pflag.Flag) {
	if err := config.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

// RecomputeSnapshotsFile hydrates every snapshot of the file, dependencies and results in the file are ignored
func RecomputeSnapshotsFile(path string, config AppConfig, out io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	serializer := NewSheetJsonSerializer()
	snapshots, err := serializer.UnmarshalSnapshots(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	engine := NewSheetEngine(NewFormulaEvaluator(NewArithmeticEvaluator()), config.IncrementalRecompute)
	sheets := make([]*contracts.Sheet, 0, len(snapshots))
	for _, snapshot := range snapshots {
		sheet, err := engine.FromSnapshot(snapshot)
		if err != nil {
			return fmt.Errorf("%s: sheet %s: %w", path, snapshot.Id, err)
		}
		sheets = append(sheets, sheet)
	}

	output, err := serializer.MarshalSnapshots(sheets)
	if err == nil {
		_, err = fmt.Fprintln(out, string(output))
	}

	return err
}
