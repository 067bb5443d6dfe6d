package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"crosswarped.com/aoc/internal/fetch"
	"crosswarped.com/aoc/internal/puzzle"
	"crosswarped.com/aoc/internal/scaffold"
)

const module = "crosswarped.com/aoc"

type options struct {
	year         int
	day          int
	cookieFile   string
	srcDir       string
	inputDir     string
	skipDownload bool
	baseURL      string
}

// run scaffolds the requested day, downloading its input first unless
// skipDownload is set.
func run(ctx context.Context, opts options, log logrus.FieldLogger) error {
	s := &scaffold.Scaffolder{Dir: opts.srcDir, Package: "days", Module: module, Log: log}

	next := opts.day
	if next == 0 {
		var err error
		if next, err = s.NextDay(); err != nil {
			return err
		}
	}
	log.WithField("day", next).Info("Next day to create")

	if !opts.skipDownload {
		session := os.Getenv("AOC_SESSION")
		if session == "" {
			log.WithField("file", opts.cookieFile).Info("Reading session cookie")
			var err error
			if session, err = fetch.ReadSession(opts.cookieFile); err != nil {
				return err
			}
		}

		client := fetch.NewClient(session, log)
		if opts.baseURL != "" {
			client.BaseURL = opts.baseURL
		}
		if err := client.Download(ctx, opts.year, next, puzzle.InputPath(opts.inputDir, next)); err != nil {
			return err
		}
	}

	if err := s.CreateDay(next); err != nil {
		return err
	}
	log.WithField("day", next).Info("Day created successfully")
	return nil
}

func main() {
	var opts options
	flag.IntVar(&opts.year, "year", 2025, "The event year")
	flag.IntVar(&opts.day, "day", 0, "The day to create; 0 means the day after the latest existing one")
	flag.StringVar(&opts.cookieFile, "cookie", ".cookie", "The file holding the session cookie")
	flag.StringVar(&opts.srcDir, "src", "internal/days", "The directory of the daily solutions")
	flag.StringVar(&opts.inputDir, "input", "input", "The directory to download inputs into")
	flag.BoolVar(&opts.skipDownload, "no-download", false, "Only create the source files")
	flag.StringVar(&opts.baseURL, "base-url", fetch.DefaultBaseURL, "The puzzle site to download from")
	timeout := flag.Duration("timeout", 30*time.Second, "The timeout for the download")
	verbose := flag.Bool("v", false, "Verbose logging")

	flag.Parse()

	log := logrus.New()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.WithError(err).Warn("Ignoring unreadable .env")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	err := run(ctx, opts, log)
	cancel()
	if err != nil {
		log.Fatal(err)
	}
}
