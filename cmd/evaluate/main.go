package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/zatekoja/costnavigator/internal/adapters/cache"
	"github.com/zatekoja/costnavigator/internal/bootstrap"
	"github.com/zatekoja/costnavigator/internal/evaluation"
	"github.com/zatekoja/costnavigator/internal/infrastructure/observability"
	"github.com/zatekoja/costnavigator/pkg/config"
)

func main() {
	var (
		goldenPath     string
		outputFile     string
		noProgress     bool
		minIntent      float64
		minField       float64
		maxFallback    float64
		includeResults bool
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score the configured intent parser against a golden question set",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			// keep stderr for the progress bar; only warnings get through
			observability.InitLoggerTo(os.Stderr, "evaluate", cfg.Env)
			logger := observability.GetLogger().Level(zerolog.WarnLevel)

			questions, err := evaluation.LoadGoldenQuestions(goldenPath)
			if err != nil {
				return err
			}
			if err := evaluation.ValidateGoldenQuestions(questions); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			// no cache across runs: every question must reach the parser
			parser, err := bootstrap.NewIntentParser(ctx, cfg, cache.NewMemoryAdapter(len(questions)+1, time.Minute), logger)
			if err != nil {
				return fmt.Errorf("building intent parser: %w", err)
			}

			var results []evaluation.EvalResult
			onResult := func(r evaluation.EvalResult) { results = append(results, r) }

			var progress *mpb.Progress
			if !noProgress {
				progress = mpb.New(mpb.WithWidth(60), mpb.WithOutput(os.Stderr))
				bar := progress.AddBar(int64(len(questions)),
					mpb.PrependDecorators(
						decor.Name("questions ", decor.WCSyncSpaceR),
						decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
					),
					mpb.AppendDecorators(
						decor.Percentage(decor.WC{W: 5}),
						decor.Elapsed(decor.ET_STYLE_GO, decor.WC{W: 6}),
					),
				)
				onResult = func(r evaluation.EvalResult) {
					results = append(results, r)
					bar.Increment()
				}
			}

			summary, err := evaluation.NewRunner(parser, onResult).Run(ctx, questions)
			if progress != nil {
				progress.Wait()
			}
			if err != nil {
				return fmt.Errorf("evaluation interrupted: %w", err)
			}

			report := struct {
				*evaluation.EvalSummary
				Results []evaluation.EvalResult `json:"results,omitempty"`
			}{EvalSummary: summary}
			if includeResults {
				report.Results = results
			}

			out, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return err
			}
			if outputFile == "-" {
				fmt.Println(string(out))
			} else if err := os.WriteFile(outputFile, append(out, '\n'), 0o644); err != nil {
				return fmt.Errorf("writing report: %w", err)
			}

			fmt.Fprintf(os.Stderr, "\n%d questions: intent %.1f%%, drg %.1f%%, zip %.1f%%, radius %.1f%%, fallback %.1f%%, avg latency %s\n",
				summary.TotalQuestions,
				summary.IntentAccuracy*100,
				summary.CodeAccuracy*100,
				summary.ZipAccuracy*100,
				summary.RadiusAccuracy*100,
				summary.FallbackRate*100,
				summary.AvgLatency.Round(time.Millisecond),
			)

			violations := evaluation.NewGuardrails(evaluation.GuardrailConfig{
				MinIntentAccuracy: minIntent,
				MinFieldAccuracy:  minField,
				MaxFallbackRate:   maxFallback,
			}).Check(summary)
			for _, v := range violations {
				fmt.Fprintf(os.Stderr, "FAIL: %s\n", v)
			}
			if len(violations) > 0 {
				return fmt.Errorf("%d guardrail(s) violated", len(violations))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&goldenPath, "golden", "config/golden_questions.json", "Golden question set (JSON)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "-", "Report path (use '-' for stdout)")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "Disable the progress bar")
	cmd.Flags().BoolVar(&includeResults, "results", false, "Include per-question results in the report")
	cmd.Flags().Float64Var(&minIntent, "min-intent-accuracy", 0.9, "Fail below this intent accuracy")
	cmd.Flags().Float64Var(&minField, "min-field-accuracy", 0.9, "Fail below this accuracy for drg_code, zip or radius_km")
	cmd.Flags().Float64Var(&maxFallback, "max-fallback-rate", 0, "Fail above this share of rules-parsed answers (0 disables)")

	cmd.SilenceUsage = true
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
