package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/renga-collective/renga/export"
	"github.com/renga-collective/renga/store"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export NAME",
	Short: "Export a saved poem as a standalone HTML page",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if poemsDir != "" {
		cfg.Store.Dir = poemsDir
	}
	st, err := store.NewStore(&cfg.Store)
	if err != nil {
		return err
	}

	rec, err := st.Load(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	path := exportOut
	if path == "" {
		path = strings.TrimSuffix(args[0], ".json") + ".html"
	}
	if err := export.File(rec, path); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), styleMeta.Render("exported to "+path))
	return nil
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "", "output file (default: the poem's name with .html)")
	exportCmd.Flags().StringVar(&poemsDir, "poems-dir", "", "poems directory (overrides config)")
}
