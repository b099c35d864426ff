package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/poemwalk/internal/config"
	"github.com/vovakirdan/poemwalk/internal/export"
	"github.com/vovakirdan/poemwalk/internal/storage"
)

var (
	flagExportOut      string
	flagExportCompress bool
)

var exportCmd = &cobra.Command{
	Use:   "export <run-id>",
	Short: "Export a journaled walk's poem as PDF",
	Long: `Write the poem lines found during one walk to a PDF.

The run id may be shortened to any unique prefix, as shown by
'poemwalk journal'. Lines that were not found are left out.

Examples:
  poemwalk export 3f2a9c1b
  poemwalk export 3f2a -o ~/Desktop/coast.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "output", "o", "", "Output path (default: poemwalk_<variant>_<run>.pdf)")
	exportCmd.Flags().BoolVar(&flagExportCompress, "compress", true, "Compress PDF streams")
}

func runExport(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening journal database: %w", err)
	}
	defer store.Close()

	run, err := store.RunByPrefix(args[0])
	switch {
	case errors.Is(err, storage.ErrAmbiguous):
		return fmt.Errorf("%q matches more than one walk; use a longer id", args[0])
	case err != nil:
		return fmt.Errorf("reading journal: %w", err)
	case run == nil:
		return fmt.Errorf("no walk matches %q", args[0])
	}

	variant := config.MustLoad(run.Variant)

	path := flagExportOut
	if path == "" {
		path = export.DefaultFileName(*run)
	}

	opts := export.Options{VariantTitle: variant.Title, Compress: flagExportCompress}
	if err := export.WriteFile(path, *run, variant.Poem, opts); err != nil {
		return err
	}

	fmt.Printf("Wrote %d of %d lines to %s\n", run.Found, run.Total, path)
	return nil
}
