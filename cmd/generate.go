package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/xmazu/envdoc/internal/config"
	"github.com/xmazu/envdoc/internal/docgen"
	"github.com/xmazu/envdoc/internal/envdoc"
	"github.com/xmazu/envdoc/internal/envfile"
	"github.com/xmazu/envdoc/internal/render"
	"github.com/xmazu/envdoc/internal/scanner"
	"github.com/xmazu/envdoc/internal/storage"
	"github.com/xmazu/envdoc/internal/tui"
	"github.com/xmazu/envdoc/internal/watch"
	"github.com/xmazu/envdoc/internal/workspace"
)

var generateCmd = &cobra.Command{
	Use:     "generate [file]",
	Aliases: []string{"gen", "generate-env-docs"},
	Short:   "Generate the variables table for an annotated .env file",
	Long: `Read an annotated .env file and write a markdown table with one row per variable.

Without a file argument the configured input is used (.env, or the first
template such as .env.example when .env does not exist).
Use --all to document every .env file in the workspace, one section per file.
Use --watch to regenerate whenever an input file changes.

Output defaults to environment-variables.md; override with -o, ENVDOC_OUTPUT or
the output key in .envdoc.yaml.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

var (
	genOutput string
	genStdout bool
	genFormat string
	genAll    bool
	genWatch  bool

	genDebounce time.Duration
)

func init() {
	addGenerateFlags(generateCmd)
	rootCmd.AddCommand(generateCmd)
}

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&genOutput, "output", "o", config.DefaultOutput, "File to write the documentation to")
	cmd.Flags().BoolVar(&genStdout, "stdout", false, "Write the documentation to stdout instead of a file")
	cmd.Flags().StringVarP(&genFormat, "format", "F", string(render.FormatMarkdown), "Output format: markdown or html")
	cmd.Flags().BoolVarP(&genAll, "all", "a", false, "Document every .env file in the workspace")
	cmd.Flags().BoolVarP(&genWatch, "watch", "w", false, "Regenerate when an input file changes")
	cmd.Flags().DurationVar(&genDebounce, "debounce", watch.DefaultDebounce, "With --watch, wait this long after the last change before regenerating")
}

type generateOptions struct {
	sources []docgen.Source
	output  string // empty means stdout
	format  render.Format
	title   string
}

func runGenerate(cmd *cobra.Command, args []string) error {
	opts, err := resolveGenerateOptions(cmd, args)
	if err != nil {
		return err
	}

	stdout, stderr := commandOutputs(cmd)
	if _, err := generateOnce(stdout, stderr, opts); err != nil {
		return err
	}
	if !genWatch {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchAndGenerate(ctx, stdout, stderr, opts)
}

func resolveGenerateOptions(cmd *cobra.Command, args []string) (*generateOptions, error) {
	if genAll && len(args) > 0 {
		return nil, errors.New("--all does not take a file argument")
	}

	ws, err := workspace.Detect(".")
	if err != nil {
		return nil, fmt.Errorf("detect workspace: %w", err)
	}
	cfg, err := config.Load(ws.Root)
	if err != nil {
		return nil, err
	}

	opts := &generateOptions{title: "Environment variables"}

	formatName := cfg.Format
	if flagChanged(cmd, "format") {
		formatName = genFormat
	}
	if opts.format, err = render.ParseFormat(formatName); err != nil {
		return nil, err
	}

	switch {
	case genStdout:
		opts.output = ""
	case flagChanged(cmd, "output"):
		opts.output = genOutput
	case config.Exists(ws.Root) && !filepath.IsAbs(cfg.Output):
		opts.output = filepath.Join(ws.Root, cfg.Output)
	default:
		opts.output = cfg.Output
	}

	switch {
	case genAll:
		opts.sources, err = workspaceSources(ws, cfg)
	case len(args) == 1:
		opts.sources = []docgen.Source{{Path: args[0], Title: args[0]}}
	default:
		opts.sources, err = defaultSources(ws, cfg)
	}
	if err != nil {
		return nil, err
	}

	if err := checkSources(opts.sources, opts.output); err != nil {
		return nil, err
	}
	return opts, nil
}

func workspaceSources(ws *workspace.Workspace, cfg *config.Config) ([]docgen.Source, error) {
	filter, err := scanner.NewFilter(ws.Root, cfg.Include, cfg.Exclude)
	if err != nil {
		return nil, err
	}
	files, err := workspace.ListEnvFiles(ws.Root, filter)
	if err != nil {
		return nil, fmt.Errorf("list .env files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .env files found under %s", ws.Root)
	}

	sources := make([]docgen.Source, 0, len(files))
	for _, f := range files {
		sources = append(sources, docgen.Source{Path: f, Title: ws.Rel(f)})
	}
	return sources, nil
}

// defaultSources resolves the configured input. Inputs from .envdoc.yaml are
// relative to the workspace root; the built-in default is relative to the
// current directory and falls back to a template when .env is missing.
func defaultSources(ws *workspace.Workspace, cfg *config.Config) ([]docgen.Source, error) {
	input := cfg.Input
	if config.Exists(ws.Root) && !filepath.IsAbs(input) {
		input = filepath.Join(ws.Root, input)
	}

	if _, err := os.Stat(input); os.IsNotExist(err) && cfg.Input == config.DefaultInput {
		if tmpl := findTemplate(filepath.Dir(input)); tmpl != "" {
			logger.Debug("no .env, using template", "path", tmpl)
			input = tmpl
		}
	}
	return []docgen.Source{{Path: input, Title: ws.Rel(input)}}, nil
}

func findTemplate(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	for _, e := range entries {
		if !e.IsDir() && workspace.IsEnvFilename(e.Name()) && workspace.IsTemplate(e.Name()) {
			return filepath.Join(dir, e.Name())
		}
	}
	return ""
}

// checkSources runs before the output file is truncated: every input must be
// a readable regular file and none may be the output itself.
func checkSources(sources []docgen.Source, output string) error {
	var outInfo os.FileInfo
	if output != "" {
		outInfo, _ = os.Stat(output)
	}

	for _, src := range sources {
		info, err := os.Stat(src.Path)
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("%w: %s", envfile.ErrNotFound, src.Path)
			}
			return fmt.Errorf("input %s: %w", src.Path, err)
		}
		if info.IsDir() {
			return fmt.Errorf("input %s is a directory", src.Path)
		}
		if outInfo != nil && os.SameFile(info, outInfo) {
			return fmt.Errorf("output %s is the input %s; choose another --output", output, src.Path)
		}
	}
	return nil
}

func generateOnce(stdout, stderr io.Writer, opts *generateOptions) (*docgen.Result, error) {
	w := stdout
	var file *storage.TextFile
	if opts.output != "" {
		f, err := storage.CreateTextFile(opts.output)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", opts.output, err)
		}
		file, w = f, f
	}

	res, err := docgen.Write(w, opts.format, opts.title, opts.sources, envdoc.WithLogger(logger))
	if file != nil {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		return res, err
	}

	reportResult(stderr, res, opts.output)
	return res, nil
}

func reportResult(w io.Writer, res *docgen.Result, output string) {
	dest := output
	if dest == "" {
		dest = "stdout"
	}
	fmt.Fprintf(w, "%s Documented %d variable(s) from %d file(s) to %s\n",
		tui.Success("✓"), res.Total.Rows, len(res.Files), dest)
	fmt.Fprintf(w, "  %s\n", tui.Muted(fmt.Sprintf("%d line(s) read, %d blank or bare comment line(s) skipped",
		res.Total.Lines, res.Total.Skipped)))

	for _, f := range res.Files {
		if f.Stats.SplitFailures > 0 {
			fmt.Fprintf(w, "  %s %s: %d variable line(s) without '=' (row emitted without key)\n",
				tui.Warning("⚠"), f.Source.Heading(), f.Stats.SplitFailures)
		}
		if f.Stats.Discarded > 0 {
			fmt.Fprintf(w, "  %s %s: %d annotation(s) after the last variable were ignored\n",
				tui.Muted("•"), f.Source.Heading(), f.Stats.Discarded)
		}
	}
}

func watchAndGenerate(ctx context.Context, stdout, stderr io.Writer, opts *generateOptions) error {
	fw, err := watch.NewFileWatcher(watch.WithDebounce(genDebounce), watch.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer fw.Close()

	for _, src := range opts.sources {
		if err := fw.Add(src.Path); err != nil {
			fmt.Fprintf(stderr, "%s could not watch %s: %v\n", tui.Warning("⚠"), src.Path, err)
		}
	}
	fmt.Fprintf(stderr, "%s Watching %d file(s), press Ctrl+C to stop\n", tui.Muted("•"), len(fw.Files()))

	return fw.Run(ctx, func() error {
		fmt.Fprintf(stderr, "%s .env changed, regenerating...\n", tui.Muted("⚡"))
		if _, err := generateOnce(stdout, stderr, opts); err != nil {
			fmt.Fprintf(stderr, "%s %v\n", tui.Error("✗"), err)
		}
		return nil
	})
}

func commandOutputs(cmd *cobra.Command) (io.Writer, io.Writer) {
	if cmd == nil {
		return os.Stdout, os.Stderr
	}
	return cmd.OutOrStdout(), cmd.ErrOrStderr()
}

func flagChanged(cmd *cobra.Command, name string) bool {
	return cmd != nil && cmd.Flags().Changed(name)
}
