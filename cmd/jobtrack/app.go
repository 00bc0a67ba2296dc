package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kwalters/jobtrack/internal/config"
	"github.com/kwalters/jobtrack/internal/confirm"
	"github.com/kwalters/jobtrack/internal/extract"
	"github.com/kwalters/jobtrack/internal/fetch"
	"github.com/kwalters/jobtrack/internal/llm"
	"github.com/kwalters/jobtrack/internal/persist"
	"github.com/kwalters/jobtrack/internal/retry"
	"github.com/kwalters/jobtrack/internal/store"
)

// app bundles the wired store and its persistence handle so commands can
// defer a single Close.
type app struct {
	cfg   config.Config
	store *store.Store
	kv    persist.KV
}

func (a *app) Close() {
	a.store.Close()
	if a.kv != nil {
		_ = a.kv.Close()
	}
}

// loadAppConfig resolves the effective configuration: config file, then
// environment, then built-in defaults, with CLI flags winning last.
func loadAppConfig() (config.Config, error) {
	cfg := config.Config{}
	if flagConfig != "" {
		loaded, err := config.LoadConfig(flagConfig)
		if err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}
	cfg.FromEnv()
	cfg = cfg.MergeWithDefaults(config.Config{
		DBPath:      config.DefaultDBPath(),
		MaxRetries:  retry.DefaultMaxRetries,
		BaseDelayMs: int(retry.DefaultBaseDelay / time.Millisecond),
		DebounceMs:  500,
	})
	if flagDB != "" {
		cfg.DBPath = flagDB
	}
	if flagVerbose {
		cfg.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func confirmFunc() confirm.Func {
	if flagYes {
		return confirm.Always
	}
	return confirm.Prompt(os.Stdin, os.Stderr)
}

// openApp opens the SQLite-backed store. Enricher may be nil for commands
// that never add records.
func openApp(enricher store.Enricher) (*app, error) {
	cfg, err := loadAppConfig()
	if err != nil {
		return nil, err
	}

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}
	kv, err := persist.OpenSQLite(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	st := store.New(store.Options{
		KV:       kv,
		Enricher: enricher,
		Confirm:  confirmFunc(),
		Debounce: time.Duration(cfg.DebounceMs) * time.Millisecond,
		Verbose:  cfg.Verbose,
	})
	if err := st.Load(); err != nil {
		_ = kv.Close()
		return nil, fmt.Errorf("failed to load store: %w", err)
	}
	return &app{cfg: cfg, store: st, kv: kv}, nil
}

// newExtractService builds the extraction service for commands that call
// the model. Caller must Close the returned client.
func newExtractService(ctx context.Context, cfg config.Config) (*extract.Service, llm.Client, error) {
	if cfg.APIKey == "" {
		return nil, nil, fmt.Errorf("API key is required (set GEMINI_API_KEY or JOBTRACK_API_KEY, or use the config file)")
	}
	client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create model client: %w", err)
	}

	svc := extract.New(client, &extract.Options{
		Retry: &retry.Options{
			MaxRetries: cfg.MaxRetries,
			BaseDelay:  time.Duration(cfg.BaseDelayMs) * time.Millisecond,
			OnRetry: func(attempt int, kind retry.Kind, wait time.Duration) {
				if cfg.Verbose {
					fmt.Fprintf(os.Stderr, "[RETRY] attempt %d (%s), waiting %s\n", attempt, kind, wait.Round(time.Millisecond))
				}
			},
		},
		Fetch: &fetch.Options{
			Timeout:    fetch.DefaultTimeout,
			UserAgent:  fetch.DefaultUserAgent,
			UseBrowser: cfg.UseBrowser,
			Verbose:    cfg.Verbose,
		},
		Verbose: cfg.Verbose,
	})
	return svc, client, nil
}

// resolveJobID matches a full record id or a unique prefix of one.
func resolveJobID(a *app, arg string) (string, error) {
	if arg == "" {
		return "", fmt.Errorf("application id is required")
	}
	var matches []string
	for _, job := range a.store.Jobs() {
		if job.ID == arg {
			return job.ID, nil
		}
		if len(arg) >= 4 && len(job.ID) > len(arg) && job.ID[:len(arg)] == arg {
			matches = append(matches, job.ID)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("no application matches %q", arg)
	default:
		return "", fmt.Errorf("%q is ambiguous (%d matches); use a longer prefix", arg, len(matches))
	}
}

// enricherAdapter bridges the extraction service to the store's enrichment
// hook. Extraction already degrades to sentinels, so no error mapping is
// needed.
type enricherAdapter struct {
	svc *extract.Service
}

func (e *enricherAdapter) Enrich(ctx context.Context, description string) (store.Enrichment, error) {
	data := e.svc.FromDescription(ctx, description)
	return store.Enrichment{Company: data.Company, SalaryRange: data.SalaryRange}, nil
}
