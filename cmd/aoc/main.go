package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"crosswarped.com/aoc/internal/answers"
	_ "crosswarped.com/aoc/internal/days"
	"crosswarped.com/aoc/internal/puzzle"
)

type config struct {
	year     int
	day      int
	part     int
	input    string
	inputDir string
}

// run solves the configured parts, printing one answer per line to out.
func run(ctx context.Context, cfg config, rec answers.Recorder, log logrus.FieldLogger, out io.Writer) error {
	day := cfg.day
	if day == 0 {
		day = puzzle.Latest()
	}

	path := cfg.input
	if path == "" {
		path = puzzle.InputPath(cfg.inputDir, day)
	}
	lines, err := puzzle.LinesFile(path)
	if err != nil {
		return err
	}

	parts := []int{cfg.part}
	if cfg.part == 0 {
		parts = nil
		for p := 1; p <= puzzle.Parts(day); p++ {
			parts = append(parts, p)
		}
		if len(parts) == 0 {
			return fmt.Errorf("day %d: %w", day, puzzle.ErrUnknownDay)
		}
	}

	runID := answers.NewRunID()
	var ledger []answers.Answer
	for _, part := range parts {
		solve, err := puzzle.Lookup(day, part)
		if err != nil {
			return err
		}
		start := time.Now()
		v, err := solve(lines)
		if err != nil {
			return fmt.Errorf("day %d part %d: %w", day, part, err)
		}
		log.WithFields(logrus.Fields{
			"day":     day,
			"part":    part,
			"elapsed": time.Since(start),
		}).Debug("Solved")
		fmt.Fprintf(out, "day %d part %d: %d\n", day, part, v)
		ledger = append(ledger, answers.Answer{
			RunID: runID, Year: cfg.year, Day: day, Part: part, Value: int64(v), Solved: time.Now(),
		})
	}

	if rec != nil {
		if err := rec.Record(ctx, ledger...); err != nil {
			return fmt.Errorf("recording answers: %w", err)
		}
		log.WithField("run_id", runID).Info("Recorded answers")
	}
	return nil
}

// ledger names the BigQuery table answers are recorded in. An empty project
// disables recording.
type ledger struct {
	project, dataset, table string
}

// printHistory writes the answers recorded for the configured day to out.
func printHistory(ctx context.Context, cfg config, store *answers.Store, out io.Writer) error {
	day := cfg.day
	if day == 0 {
		day = puzzle.Latest()
	}
	recorded, err := store.History(ctx, cfg.year, day)
	if err != nil {
		return err
	}
	for _, a := range recorded {
		fmt.Fprintf(out, "%s part %d: %d (run %s)\n", a.Solved.Format(time.RFC3339), a.Part, a.Value, a.RunID)
	}
	return nil
}

// execute opens the ledger if one is configured, then either prints its
// history or solves the configured day.
func execute(ctx context.Context, cfg config, bq ledger, history bool, log logrus.FieldLogger, out io.Writer) error {
	if bq.project == "" {
		if history {
			return errors.New("-history needs -bq-project")
		}
		return run(ctx, cfg, nil, log, out)
	}

	store, err := answers.NewStore(ctx, bq.project, bq.dataset, bq.table)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.EnsureTable(ctx); err != nil {
		return err
	}
	if history {
		return printHistory(ctx, cfg, store, out)
	}
	return run(ctx, cfg, store, log, out)
}

func main() {
	var cfg config
	var bq ledger
	flag.IntVar(&cfg.year, "year", 2025, "The event year")
	flag.IntVar(&cfg.day, "day", 0, "The day to solve; 0 means the latest registered day")
	flag.IntVar(&cfg.part, "part", 0, "The part to solve; 0 means all parts")
	flag.StringVar(&cfg.input, "input", "", "The input file; defaults to <input-dir>/day<N>.txt")
	flag.StringVar(&cfg.inputDir, "input-dir", "input", "The directory holding downloaded inputs")
	flag.StringVar(&bq.project, "bq-project", "", "BigQuery project of the answer ledger; empty disables recording")
	flag.StringVar(&bq.dataset, "bq-dataset", "aoc", "BigQuery dataset of the answer ledger")
	flag.StringVar(&bq.table, "bq-table", "answers", "BigQuery table of the answer ledger")
	history := flag.Bool("history", false, "Print the recorded answers for the day instead of solving it")
	verbose := flag.Bool("v", false, "Verbose logging")
	timeout := flag.Duration("timeout", 1*time.Minute, "The timeout for recording answers")

	flag.Parse()

	log := logrus.New()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	err := execute(ctx, cfg, bq, *history, log, os.Stdout)
	cancel()
	if err != nil {
		log.Fatal(err)
	}
}
