package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/renga-collective/renga/store"
)

var showCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Print a saved poem",
	Long: `Show prints a saved poem with speaker labels, with names as reported
by "renga list" (the .json extension may be omitted).`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
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

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, styleMeta.Render(fmt.Sprintf(
		"%s, %s, %s", rec.Generator, rec.Model, rec.CreatedAt)))
	for _, line := range rec.Lines {
		fmt.Fprintln(out, renderLine(line))
	}
	return nil
}

func init() {
	showCmd.Flags().StringVar(&poemsDir, "poems-dir", "", "poems directory (overrides config)")
}
