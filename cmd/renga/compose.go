package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/renga-collective/renga/compose"
	"github.com/renga-collective/renga/model"
	"github.com/renga-collective/renga/observability"
	"github.com/renga-collective/renga/poem"
	"github.com/renga-collective/renga/store"
	"github.com/renga-collective/renga/strategy"
)

var (
	modelName   string
	temperature float64
	recipeFile  string
	poemsDir    string
)

var composeCmd = &cobra.Command{
	Use:   "compose MAX_LINES [GENERATOR]",
	Short: "Compose a poem, alternating your lines with generated ones",
	Long: `Compose starts an interactive session: you type a line, the backend
answers with the next, until MAX_LINES lines are written. The finished poem
is saved to the poems directory.

GENERATOR is a strategy spec, "name" or "name:arg" (see "renga compose
--help" output below for names), defaulting to the configured generator.
With --recipe the strategy is compiled from a YAML recipe file instead and
no GENERATOR argument is accepted.

Interrupting with Ctrl-C abandons the poem without saving.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runCompose,
}

func init() {
	composeCmd.Flags().StringVar(&modelName, "model", "", "backend model name (overrides config)")
	composeCmd.Flags().Float64Var(&temperature, "temperature", 0, "sampling temperature (overrides config)")
	composeCmd.Flags().StringVar(&recipeFile, "recipe", "", "compile the generator from a YAML recipe file")
	composeCmd.Flags().StringVar(&poemsDir, "poems-dir", "", "poems directory (overrides config)")
}

func runCompose(cmd *cobra.Command, args []string) error {
	maxLines, err := strconv.Atoi(args[0])
	if err != nil || maxLines < 2 {
		return fmt.Errorf("MAX_LINES must be an integer of at least 2, got %q", args[0])
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if modelName != "" {
		cfg.Model.Name = modelName
	}
	if cmd.Flags().Changed("temperature") {
		cfg.Model.Temperature = temperature
	}
	if poemsDir != "" {
		cfg.Store.Dir = poemsDir
	}

	generatorName, generator, err := resolveGenerator(cfg, args)
	if err != nil {
		return err
	}

	client, err := model.NewOpenAI(&cfg.Model)
	if err != nil {
		return err
	}
	st, err := store.NewStore(&cfg.Store)
	if err != nil {
		return err
	}
	p, err := poem.New(maxLines, generatorName, cfg.Model.Name)
	if err != nil {
		return err
	}
	observer, err := observability.GetObserver("cli")
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, styleMeta.Render(fmt.Sprintf(
		"%d lines with %s on %s; you start.", maxLines, generatorName, cfg.Model.Name)))

	composer := compose.New(p, client, generator,
		compose.WithReader(&promptReader{
			inner:  compose.NewScanReader(cmd.InOrStdin()),
			out:    out,
			prompt: stylePrompt.Render(authorLabel(poem.AuthorHuman)+" |") + " ",
		}),
		compose.WithOutput(out),
		compose.WithRenderer(renderLine),
		compose.WithObserver(observer),
	)

	if err := composer.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(out, styleMeta.Render("interrupted; poem not saved"))
			return nil
		}
		return err
	}

	// The run context may already be cancelled by a Ctrl-C that arrived
	// after the final line; save regardless.
	name, err := st.Save(context.Background(), p.Record())
	if err != nil {
		return err
	}
	fmt.Fprintln(out, styleMeta.Render("saved to "+filepath.Join(cfg.Store.Dir, name)))
	return nil
}

// resolveGenerator picks the strategy from the recipe flag, the positional
// argument, or the configured default, in that order of precedence.
func resolveGenerator(cfg *compose.Config, args []string) (string, strategy.Generator, error) {
	if recipeFile != "" {
		if len(args) > 1 {
			return "", nil, errors.New("--recipe and a GENERATOR argument are mutually exclusive")
		}
		g, err := strategy.LoadRecipe(recipeFile)
		if err != nil {
			return "", nil, err
		}
		return "recipe:" + filepath.Base(recipeFile), g, nil
	}

	spec := cfg.Generator
	if len(args) > 1 {
		spec = args[1]
	}

	g, err := strategy.Resolve(spec)
	if err != nil {
		return "", nil, fmt.Errorf("%w (known: %v)", err, strategy.Names())
	}
	return spec, g, nil
}

// promptReader writes the speaker prompt before each read so the human
// knows it is their turn.
type promptReader struct {
	inner  compose.LineReader
	out    io.Writer
	prompt string
}

func (r *promptReader) ReadLine(ctx context.Context) (string, error) {
	fmt.Fprint(r.out, r.prompt)
	return r.inner.ReadLine(ctx)
}
