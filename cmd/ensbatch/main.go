package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"ensbatch/internal/cache"
	"ensbatch/internal/config"
	"ensbatch/internal/ensembl"
	"ensbatch/internal/getter"
	"ensbatch/internal/sequence"
	"ensbatch/internal/transcript"
	"ensbatch/internal/vep"
)

const usage = "usage: ensbatch [-config file] <vep|lookup|cds|cdna|genomic|analyze> id [id...]"

func main() {
	// Parse flags
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	// Load config
	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
	} else {
		cfg = config.Default()
	}
	if err != nil {
		// Basic logger for startup errors
		log := zerolog.New(os.Stderr).With().Timestamp().Logger()
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logger := setupLogger(cfg.LogLevel)
	command, ids := args[0], args[1:]
	logger.Info().
		Str("command", command).
		Int("identifiers", len(ids)).
		Str("baseUrl", cfg.BaseURL).
		Msg("starting ensbatch")

	ctx := context.Background()
	switch command {
	case "vep":
		err = runFetch[vep.Analysis](ctx, cfg, logger, vep.Endpoint{}, ids)
	case "lookup":
		err = runFetch[transcript.Transcript](ctx, cfg, logger, transcript.Endpoint{}, ids)
	case "cds":
		err = runFetch[sequence.CodingSequence](ctx, cfg, logger, sequence.CodingEndpoint{}, ids)
	case "cdna":
		err = runFetch[sequence.CdnaSequence](ctx, cfg, logger, sequence.CdnaEndpoint{}, ids)
	case "genomic":
		err = runFetch[sequence.GenomicSequence](ctx, cfg, logger, sequence.GenomicEndpoint{}, ids)
	case "analyze":
		err = runAnalyze(ctx, cfg, logger, ids)
	default:
		fmt.Fprintln(os.Stderr, usage)
		logger.Fatal().Str("command", command).Msg("unknown command")
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("command failed")
	}
}

// runFetch fans the identifiers out over the shared getter and prints
// each fetched record as JSON.
func runFetch[T any](ctx context.Context, cfg *config.Config, logger zerolog.Logger, ep getter.Endpoint[T], ids []string) error {
	g, err := getter.NewFromConfig(ep, cfg, logger)
	if err != nil {
		return err
	}
	defer g.Close()
	client := g.Client()

	var (
		mu       sync.Mutex
		failures atomic.Int64
	)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Concurrency)
	for _, id := range ids {
		id := id
		eg.Go(func() error {
			item, err := client.Get(ctx, id)
			if err != nil {
				failures.Add(1)
				logger.Error().Err(err).Str("id", id).Msg("fetch failed")
				return nil
			}
			printJSON(&mu, item)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	if n := failures.Load(); n > 0 {
		return fmt.Errorf("%d of %d identifiers failed", n, len(ids))
	}
	return nil
}

// variantReport is the analyze output for one variant notation.
type variantReport struct {
	Input                 string              `json:"input"`
	MostSevereConsequence ensembl.Consequence `json:"most_severe_consequence"`
	ReferenceAllele       string              `json:"reference_allele"`
	VariantAllele         string              `json:"variant_allele"`
	Transcripts           []transcriptReport  `json:"transcripts"`
}

type transcriptReport struct {
	TranscriptID string                   `json:"transcript_id"`
	GeneSymbol   string                   `json:"gene_symbol"`
	Biotype      ensembl.Biotype          `json:"biotype"`
	Canonical    bool                     `json:"canonical"`
	Consequences *transcript.Consequences `json:"consequences,omitempty"`
	Error        string                   `json:"error,omitempty"`
}

// runAnalyze chains the getters: VEP for the variant, transcript lookup
// for every affected transcript, then the (cached) genomic sequence to
// compute edited and unedited protein products.
func runAnalyze(ctx context.Context, cfg *config.Config, logger zerolog.Logger, ids []string) error {
	vepGetter, err := getter.NewFromConfig[vep.Analysis](vep.Endpoint{}, cfg, logger)
	if err != nil {
		return err
	}
	defer vepGetter.Close()

	lookupGetter, err := getter.NewFromConfig[transcript.Transcript](transcript.Endpoint{}, cfg, logger)
	if err != nil {
		return err
	}
	defer lookupGetter.Close()

	genomicGetter, err := getter.NewFromConfig[sequence.GenomicSequence](sequence.GenomicEndpoint{}, cfg, logger)
	if err != nil {
		return err
	}
	defer genomicGetter.Close()

	// several variants often hit the same transcript; memoize sequences
	var seqCache *cache.MemoryCache[sequence.GenomicSequence]
	if cfg.Cache == nil || cfg.Cache.Enabled {
		size, ttl := config.DefaultCacheSize, time.Duration(config.DefaultCacheTTL)*time.Second
		if cfg.Cache != nil {
			size, ttl = cfg.Cache.Size, cfg.Cache.GetTTLDuration()
		}
		seqCache, err = cache.New[sequence.GenomicSequence](size, ttl)
		if err != nil {
			return err
		}
	}

	vepClient := vepGetter.Client()
	lookupClient := lookupGetter.Client()
	genomicClient := genomicGetter.Client()

	var (
		mu       sync.Mutex
		failures atomic.Int64
	)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Concurrency)
	for _, id := range ids {
		id := id
		eg.Go(func() error {
			report, err := analyzeVariant(ctx, vepClient, lookupClient, genomicClient, seqCache, id)
			if err != nil {
				failures.Add(1)
				logger.Error().Err(err).Str("id", id).Msg("analysis failed")
				return nil
			}
			printJSON(&mu, report)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	if n := failures.Load(); n > 0 {
		return fmt.Errorf("%d of %d variants failed", n, len(ids))
	}
	return nil
}

func analyzeVariant(
	ctx context.Context,
	vepClient getter.Client[vep.Analysis],
	lookupClient getter.Client[transcript.Transcript],
	genomicClient getter.Client[sequence.GenomicSequence],
	seqCache *cache.MemoryCache[sequence.GenomicSequence],
	id string,
) (*variantReport, error) {
	analysis, err := vepClient.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	ref, alt := splitAlleles(analysis.AlleleString)
	report := &variantReport{
		Input:                 analysis.Input,
		MostSevereConsequence: analysis.MostSevereConsequence,
		ReferenceAllele:       ref,
		VariantAllele:         alt,
	}

	for _, tc := range analysis.TranscriptConsequences {
		tr := transcriptReport{
			TranscriptID: tc.TranscriptID,
			GeneSymbol:   tc.GeneSymbol,
			Biotype:      tc.Biotype,
			Canonical:    bool(tc.Canonical),
		}

		t, err := lookupClient.Get(ctx, tc.TranscriptID)
		if err != nil {
			tr.Error = err.Error()
			report.Transcripts = append(report.Transcripts, tr)
			continue
		}

		seq, err := cachedGenomic(ctx, seqCache, genomicClient, t.ID)
		if err != nil {
			tr.Error = err.Error()
			report.Transcripts = append(report.Transcripts, tr)
			continue
		}

		cons, err := transcript.MakeConsequences(&seq, &t, analysis.Start, analysis.End, alt)
		if err != nil {
			tr.Error = err.Error()
		} else {
			tr.Consequences = &cons
		}
		report.Transcripts = append(report.Transcripts, tr)
	}

	return report, nil
}

// cachedGenomic consults the memoization cache before going through the
// batching layer.
func cachedGenomic(
	ctx context.Context,
	c *cache.MemoryCache[sequence.GenomicSequence],
	client getter.Client[sequence.GenomicSequence],
	id string,
) (sequence.GenomicSequence, error) {
	if c != nil {
		if v, ok := c.Get(id); ok {
			return v, nil
		}
	}
	v, err := client.Get(ctx, id)
	if err == nil && c != nil {
		c.Set(id, v)
	}
	return v, err
}

// splitAlleles splits a VEP allele string like "G/A" into reference and
// variant alleles.
func splitAlleles(s string) (ref, alt string) {
	if i := strings.IndexByte(s, '/'); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, s
}

func printJSON(mu *sync.Mutex, v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	fmt.Println(string(out))
}

// setupLogger configures the zerolog logger
func setupLogger(level string) zerolog.Logger {
	// Set log level
	var logLevel zerolog.Level
	switch level {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	// Configure output
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
