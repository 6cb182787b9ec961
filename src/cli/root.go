package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/BielosX/wombat/pokedex/src/app"
	"github.com/BielosX/wombat/pokedex/src/config"
	"github.com/BielosX/wombat/pokedex/src/model"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	verbose    bool
	pageSize   int
	pages      int
	bucket     string

	app *app.App
}

func NewRootCommand() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "pokedex",
		Short:         "Browse Pokemon from PokeAPI",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			level := cfg.LogLevel
			if opts.verbose {
				level = "debug"
			}
			sugar, err := app.NewLogger(level, true)
			if err != nil {
				return err
			}
			opts.app = app.New(cfg, sugar)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.app != nil {
				_ = opts.app.Sugar.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(newListCommand(opts), newShowCommand(opts), newExportCommand(opts))
	return root
}

func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func newListCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List Pokemon page by page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			collection := opts.app.NewCollection()
			defer collection.Close()
			snapshot := opts.app.Collect(cmd.Context(), collection, opts.pageSize, opts.pages)

			out := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(out, "ID\tNAME\tTYPES")
			for _, pokemon := range snapshot.Pokemon {
				fmt.Fprintf(out, "%d\t%s\t%s\n", pokemon.ID, pokemon.Name, strings.Join(pokemon.Types, ", "))
			}
			if err := out.Flush(); err != nil {
				return err
			}
			if snapshot.Failed > 0 || snapshot.Skipped > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "%d failed, %d skipped\n", snapshot.Failed, snapshot.Skipped)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&opts.pageSize, "page-size", 0, "entries per page (default from config)")
	cmd.Flags().IntVar(&opts.pages, "pages", 1, "number of pages to load")
	return cmd
}

func newShowCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one Pokemon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			detail := opts.app.NewDetail()
			if !detail.Load(cmd.Context(), id) {
				return fmt.Errorf("failed to load Pokemon %d", id)
			}
			printPokemon(cmd.OutOrStdout(), *detail.State().Pokemon)
			return nil
		},
	}
}

func newExportCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export Pokemon as parquet and CSV to S3",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			exporter, err := opts.app.NewExporter(cmd.Context(), opts.bucket)
			if err != nil {
				return err
			}
			collection := opts.app.NewCollection()
			defer collection.Close()
			snapshot := opts.app.Collect(cmd.Context(), collection, opts.pageSize, opts.pages)
			result, err := exporter.Export(cmd.Context(), snapshot.Pokemon)
			if err != nil {
				return err
			}
			if result == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "nothing exported")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.ParquetFileName)
			fmt.Fprintln(cmd.OutOrStdout(), result.CsvFileName)
			return nil
		},
	}
	cmd.Flags().IntVar(&opts.pageSize, "page-size", 0, "entries per page (default from config)")
	cmd.Flags().IntVar(&opts.pages, "pages", 1, "number of pages to export")
	cmd.Flags().StringVar(&opts.bucket, "bucket", "", "target bucket (default BUCKET_NAME)")
	return cmd
}

func printPokemon(w io.Writer, pokemon model.Pokemon) {
	fmt.Fprintf(w, "#%d %s\n", pokemon.ID, pokemon.Name)
	fmt.Fprintf(w, "Types:     %s\n", strings.Join(pokemon.Types, ", "))
	fmt.Fprintf(w, "Abilities: %s\n", strings.Join(pokemon.Abilities, ", "))
	fmt.Fprintf(w, "Height:    %.1f m\n", pokemon.HeightMeters())
	fmt.Fprintf(w, "Weight:    %.1f kg\n", pokemon.WeightKilograms())
	fmt.Fprintln(w, "Stats:")
	for _, stat := range pokemon.Stats {
		fmt.Fprintf(w, "  %-16s %3d\n", stat.Name, stat.Value)
	}
	fmt.Fprintln(w, "Moves:")
	for _, move := range pokemon.Moves {
		fmt.Fprintf(w, "  - %s\n", move)
	}
	fmt.Fprintln(w, "Images:")
	for _, image := range pokemon.Sprites.All() {
		fmt.Fprintf(w, "  %s\n", image)
	}
}
