package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docscrape"
	"github.com/fwojciec/docscrape/firecrawl"
	"github.com/fwojciec/docscrape/fs"
	"github.com/fwojciec/docscrape/goquery"
	"github.com/fwojciec/docscrape/htmltomarkdown"
	dshttp "github.com/fwojciec/docscrape/http"
	"github.com/fwojciec/docscrape/readability"
	"github.com/fwojciec/docscrape/rod"
	dsslog "github.com/fwojciec/docscrape/slog"
	"github.com/fwojciec/docscrape/sqlite"
	"github.com/fwojciec/docscrape/trafilatura"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	// A missing .env file is fine; the environment may already be set.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docscrape"),
		kong.Description("Scrape a documentation site into local markdown files"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{
			"default_api_url":       firecrawl.DefaultBaseURL,
			"default_timeout":       firecrawl.DefaultTimeout.String(),
			"default_recycle_after": strconv.Itoa(rod.DefaultRecycleAfter),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return docscrape.Errorf(docscrape.ECONFIG, "no arguments provided")
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return docscrape.WrapError(docscrape.ECONFIG, err, "invalid arguments")
	}

	cfg := cli.Config()
	if err := cfg.Validate(); err != nil {
		return err
	}

	deps, cleanup, err := m.wire(ctx, cfg, stdout, stderr)
	if err != nil {
		return err
	}
	defer cleanup()

	cmd := &CrawlCmd{
		URL:     cfg.URL,
		Preview: cfg.Preview,
	}
	return cmd.Run(deps)
}

// wire builds the dependencies for cfg. The returned cleanup releases
// the browser and the journal database.
func (m *Main) wire(ctx context.Context, cfg *Config, stdout, stderr io.Writer) (*Dependencies, func(), error) {
	var logger *slog.Logger
	if cfg.Debug {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	deps := &Dependencies{
		Ctx:         ctx,
		Stdout:      stdout,
		Stderr:      stderr,
		Dirs:        fs.NewDirResolver(cfg.OutputDir),
		Writer:      fs.NewWriter(),
		Options:     cfg.ScrapeOptions(),
		Concurrency: cfg.Concurrency,
	}

	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	switch cfg.Engine {
	case EngineLocal:
		var fetcher docscrape.Fetcher
		if cfg.Render {
			rodOpts := []rod.Option{
				rod.WithFetchTimeout(cfg.Timeout),
				rod.WithWaitFor(time.Duration(cfg.WaitFor) * time.Millisecond),
				rod.WithMobile(cfg.Mobile),
				rod.WithRecycleAfter(cfg.RecycleAfter),
			}
			if logger != nil {
				rodOpts = append(rodOpts, rod.WithOnRecycle(dsslog.NewRecycleLogger(logger)))
			}
			browser, err := rod.NewFetcher(rodOpts...)
			if err != nil {
				return nil, nil, docscrape.WrapError(docscrape.ECONFIG, err, "Chrome or Chromium must be installed to use --render")
			}
			closers = append(closers, func() { _ = browser.Close() })
			fetcher = browser
		} else {
			fetcher = dshttp.NewFetcher(dshttp.WithTimeout(cfg.Timeout))
		}
		if logger != nil {
			fetcher = dsslog.NewLoggingFetcher(fetcher, logger)
		}

		var extractor docscrape.Extractor = trafilatura.NewExtractor()
		if cfg.Extractor == ExtractorReadability {
			extractor = readability.NewExtractor()
		}

		deps.Scraper = dshttp.NewScraper(
			fetcher,
			extractor,
			htmltomarkdown.NewConverter(),
			goquery.NewLinkExtractor(),
			dshttp.WithRateLimit(cfg.Rate),
		)
	default:
		deps.Scraper = firecrawl.NewClient(cfg.APIURL, cfg.APIKey,
			firecrawl.WithTimeout(cfg.Timeout),
			firecrawl.WithRateLimit(cfg.Rate),
		)
	}

	if cfg.JournalPath != "" && !cfg.Preview {
		db := sqlite.NewDB(cfg.JournalPath)
		if err := db.Open(); err != nil {
			fmt.Fprintf(stderr, "Warning: journal disabled: %v\n", err)
		} else {
			deps.Journal = sqlite.NewJournalService(db)
			closers = append(closers, func() { _ = db.Close() })
		}
	}

	if logger != nil {
		deps.Scraper = dsslog.NewLoggingScraper(deps.Scraper, logger)
		deps.Writer = dsslog.NewLoggingPageWriter(deps.Writer, logger)
		if deps.Journal != nil {
			deps.Journal = dsslog.NewLoggingJournal(deps.Journal, logger)
		}
	}

	return deps, cleanup, nil
}
