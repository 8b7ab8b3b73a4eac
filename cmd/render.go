package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Gabolonhez/Portfolio/internal/config"
	"github.com/Gabolonhez/Portfolio/internal/i18n"
	"github.com/Gabolonhez/Portfolio/internal/prefs"
	"github.com/Gabolonhez/Portfolio/internal/progress"
	"github.com/Gabolonhez/Portfolio/internal/render"
	"github.com/Gabolonhez/Portfolio/internal/site"
	"github.com/Gabolonhez/Portfolio/internal/storage"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Fetch the profile document and render the host page",
	Long: `Fetches the profile document for the preferred language, renders every
section into the host page and writes the populated page.

With --lang the language preference is switched first, as the language
buttons on the page do. With --all every language is rendered into its
own file concurrently and the stored preference is left unchanged.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().String("lang", "", "switch to this language before rendering (pt, en)")
	renderCmd.Flags().Bool("all", false, "render every language into its own file")
	renderCmd.Flags().StringP("output", "o", "", "output file (overrides config)")
	renderCmd.Flags().Bool("no-progress", false, "disable the progress display")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.Output = out
	}

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logger.Sync()

	store, closer, err := openPreferences(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	fetcher, err := newFetcher(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if all, _ := cmd.Flags().GetBool("all"); all {
		return renderAll(ctx, cfg, store, fetcher, logger)
	}

	langFlag, _ := cmd.Flags().GetString("lang")
	lang := store.Language()
	if langFlag != "" {
		if lang, err = i18n.Parse(langFlag); err != nil {
			return err
		}
	}

	page, err := loadPage(cfg, lang)
	if err != nil {
		return err
	}

	orch := render.NewOrchestrator(fetcher, page, render.NewFormatter(cfg.Render.MarkdownDescriptions), logger)
	reporter := progress.Reporter(progress.Discard{})
	if noProgress, _ := cmd.Flags().GetBool("no-progress"); !noProgress {
		reporter = progress.NewReporter(os.Stderr, string(lang))
	}
	orch.OnSection = progress.SectionHook(reporter)

	s := site.New(store, orch, page, logger)
	var rep render.Report
	if lang != store.Language() {
		rep, _, err = s.SetLanguage(ctx, lang)
	} else {
		rep, err = s.Start(ctx)
	}
	reporter.Finish()
	if err != nil {
		return err
	}

	path := cfg.OutputFor(lang, false)
	if err := writePage(page, path); err != nil {
		return err
	}
	printReport(rep, path)
	return nil
}

// renderAll renders each supported language into its own page. Every page
// gets its own target set, orchestrator and a preference view pinned to
// its language that shares the stored theme.
func renderAll(ctx context.Context, cfg *config.Config, store *prefs.Store, src render.Source, logger *zap.Logger) error {
	g, ctx := errgroup.WithContext(ctx)
	reports := make([]render.Report, len(i18n.Supported))
	paths := make([]string, len(i18n.Supported))

	for i, lang := range i18n.Supported {
		i, lang := i, lang
		g.Go(func() error {
			view, err := pinnedPreferences(store, lang)
			if err != nil {
				return err
			}
			page, err := loadPage(cfg, lang)
			if err != nil {
				return err
			}
			orch := render.NewOrchestrator(src, page, render.NewFormatter(cfg.Render.MarkdownDescriptions), logger)
			rep, err := site.New(view, orch, page, logger).Start(ctx)
			if err != nil {
				return fmt.Errorf("rendering %s: %w", lang, err)
			}
			path := cfg.OutputFor(lang, true)
			if err := writePage(page, path); err != nil {
				return err
			}
			reports[i], paths[i] = rep, path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for i := range reports {
		printReport(reports[i], paths[i])
	}
	return nil
}

// pinnedPreferences returns a non-persistent copy of store with the
// language set to lang.
func pinnedPreferences(store *prefs.Store, lang i18n.Lang) (*prefs.Store, error) {
	mem := storage.NewMemory()
	mem.Set(prefs.Key(prefs.Theme), store.Get(prefs.Theme))
	mem.Set(prefs.Key(prefs.Language), string(lang))
	return prefs.Open(mem)
}
