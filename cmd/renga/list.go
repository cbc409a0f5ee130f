package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/renga-collective/renga/store"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved poems",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
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

	names, err := st.List(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(names) == 0 {
		fmt.Fprintln(out, "No poems yet.")
		return nil
	}

	for _, name := range names {
		rec, err := st.Load(cmd.Context(), name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s  %s\n", name, styleMeta.Render(fmt.Sprintf(
			"%s, %d lines, %s", rec.Generator, len(rec.Lines), rec.CreatedAt)))
	}
	return nil
}

func init() {
	listCmd.Flags().StringVar(&poemsDir, "poems-dir", "", "poems directory (overrides config)")
}
