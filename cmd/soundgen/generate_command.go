package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shadow-worker/soundgen/internal/batch"
	"github.com/shadow-worker/soundgen/internal/config"
	"github.com/shadow-worker/soundgen/internal/ui"
	"github.com/shadow-worker/soundgen/pkg/sounds"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	outputRoot   string
	sampleRate   int
	workers      int
	tui          bool
	skipExternal bool
}

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [names...]",
		Short: "Render sound recipes and run external generators",
		Long: "Render every recipe (or only the named ones) into the output root and run the configured external generators.\n" +
			"All steps are attempted; the command exits non-zero when any of them failed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			applyGenerateFlags(cmd, cfg, opts)
			if err := cfg.Validate(); err != nil {
				return err
			}

			steps, err := buildSteps(cfg, args, opts.skipExternal)
			if err != nil {
				return err
			}

			useTUI := opts.tui && isTerminal(cmd.OutOrStdout())
			closeLog, err := setupLogging(ctx.logFile(), !useTUI)
			if err != nil {
				return err
			}
			defer closeLog()

			if ctx.loaded {
				log.Printf("Using config %s", ctx.cfgPath)
			}

			runnerCfg := batch.Config{
				OutputRoot: cfg.OutputRoot,
				Workers:    cfg.Workers,
				Debug:      ctx.debug,
			}

			var report *batch.Report
			if useTUI {
				report, err = runWithTUI(cmd.Context(), runnerCfg, steps)
			} else {
				report, err = batch.NewRunner(runnerCfg).Run(cmd.Context(), steps)
				if report != nil {
					fmt.Fprintln(cmd.OutOrStdout(), renderReport(report))
				}
			}
			if err != nil {
				return err
			}

			if failed := report.Failed(); len(failed) > 0 {
				return fmt.Errorf("%d of %d steps failed:\n%w", len(failed), len(report.Results), report.Err())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.outputRoot, "out", "", "Output root directory (overrides output_root)")
	cmd.Flags().IntVar(&opts.sampleRate, "sample-rate", 0, "Sample rate in Hz (overrides sample_rate)")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "Concurrent steps (overrides workers)")
	cmd.Flags().BoolVar(&opts.tui, "tui", false, "Show a live progress view when stdout is a terminal")
	cmd.Flags().BoolVar(&opts.skipExternal, "skip-external", false, "Do not run external generators")

	return cmd
}

func applyGenerateFlags(cmd *cobra.Command, cfg *config.Config, opts *generateOptions) {
	flags := cmd.Flags()
	if flags.Changed("out") {
		cfg.OutputRoot = opts.outputRoot
	}
	if flags.Changed("sample-rate") {
		cfg.SampleRate = opts.sampleRate
	}
	if flags.Changed("workers") {
		cfg.Workers = opts.workers
	}
}

// buildSteps selects the named recipes, or all of them when no names are
// given. External generators only run for a full batch.
func buildSteps(cfg *config.Config, names []string, skipExternal bool) ([]batch.Step, error) {
	library := cfg.Library()

	recipes := library
	if len(names) > 0 {
		recipes = make([]sounds.Recipe, 0, len(names))
		var missing []error
		for _, name := range names {
			r, ok := sounds.Find(library, name)
			if !ok {
				missing = append(missing, fmt.Errorf("unknown recipe %q", name))
				continue
			}
			recipes = append(recipes, r)
		}
		if err := errors.Join(missing...); err != nil {
			return nil, err
		}
	}

	steps := batch.SoundSteps(cfg.OutputRoot, cfg.SampleRate, recipes)
	if skipExternal || len(names) > 0 {
		return steps, nil
	}
	for _, ext := range cfg.External {
		steps = append(steps, &batch.CommandStep{
			StepName: ext.Name,
			Command:  ext.Command,
			Args:     ext.Args,
			Dir:      ext.Dir,
		})
	}
	return steps, nil
}

// runWithTUI drives the batch while bubbletea owns the terminal. Quitting
// the view cancels steps that have not finished.
func runWithTUI(parent context.Context, runnerCfg batch.Config, steps []batch.Step) (*batch.Report, error) {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = s.Name()
	}

	p := ui.Run(names)
	runnerCfg.Observer = ui.NewObserver(p)

	done := make(chan error, 1)
	go func() {
		final, err := p.Run()
		if m, ok := final.(ui.Model); ok && m.Aborted() {
			cancel()
		}
		done <- err
	}()

	report, err := batch.NewRunner(runnerCfg).Run(ctx, steps)
	if err != nil {
		p.Quit()
		<-done
		return nil, err
	}

	p.Send(ui.DoneMsg{Report: report})
	if err := <-done; err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Printf("TUI error: %v", err)
	}
	return report, nil
}

func renderReport(report *batch.Report) string {
	rows := make([][]string, 0, len(report.Results))
	for _, res := range report.Results {
		status := "ok"
		detail := res.Output
		if !res.OK() {
			status = "FAILED"
			detail = res.Err.Error()
		}
		rows = append(rows, []string{res.Name, status, detail, res.Elapsed.Round(time.Millisecond).String()})
	}
	table := renderTable(
		[]column{{title: "Step"}, {title: "Status"}, {title: "Output"}, {title: "Time", right: true}},
		rows,
	)
	return fmt.Sprintf("Run %s\n%s", report.RunID, table)
}

