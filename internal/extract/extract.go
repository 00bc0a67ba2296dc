// Package extract turns unstructured job posting text or URLs into
// structured fields, isolating the rest of the system from the extraction
// backend. Best-effort operations degrade to sentinel values instead of
// failing; the caller always gets something usable plus a trust level.
package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/kwalters/jobtrack/internal/fetch"
	"github.com/kwalters/jobtrack/internal/llm"
	"github.com/kwalters/jobtrack/internal/retry"
)

// Sentinel values substituted when extraction cannot produce a real value.
// They distinguish "failed" from "legitimately empty".
const (
	SentinelCompany  = "Unknown"
	SentinelSalary   = "Not extracted"
	SentinelNotFound = "Not found"
)

// Extracted holds structured fields pulled from a job posting.
type Extracted struct {
	Title       string `json:"title,omitempty"`
	Company     string `json:"company"`
	SalaryRange string `json:"salaryRange"`
	Description string `json:"description,omitempty"`
}

// Service is the extraction adapter. All remote calls go through the retry
// wrapper; loose backend JSON is coerced into strict structs here and never
// escapes untyped.
type Service struct {
	client  llm.Client
	retry   *retry.Options
	fetch   *fetch.Options
	verbose bool
}

// Options configures the extraction service.
type Options struct {
	Retry   *retry.Options
	Fetch   *fetch.Options
	Verbose bool
}

// New creates an extraction service around an LLM client.
func New(client llm.Client, opts *Options) *Service {
	if opts == nil {
		opts = &Options{}
	}
	r := opts.Retry
	if r == nil {
		r = retry.DefaultOptions()
	}
	f := opts.Fetch
	if f == nil {
		f = fetch.DefaultOptions()
	}
	return &Service{client: client, retry: r, fetch: f, verbose: opts.Verbose}
}

// FromDescription extracts the company name and salary range from pasted
// job description text. It never returns an error: any failure, including a
// malformed response, yields the sentinel values.
func (s *Service) FromDescription(ctx context.Context, description string) Extracted {
	prompt := fmt.Sprintf(`Extract the company name and salary range from this job description.

Return ONLY valid JSON matching this exact structure:
{
  "company": "string",
  "salaryRange": "string"
}

If a field is not present, use %q for company and %q for salaryRange.

JOB DESCRIPTION:
%s`, SentinelCompany, SentinelSalary, description)

	raw, err := retry.Do(ctx, func(ctx context.Context) (string, error) {
		return s.client.GenerateJSON(ctx, prompt, llm.TierLite)
	}, s.retry)
	if err != nil {
		if s.verbose {
			log.Printf("[EXTRACT] description extraction failed: %v", err)
		}
		return Extracted{Company: SentinelCompany, SalaryRange: SentinelSalary}
	}

	data, err := parseExtracted(raw)
	if err != nil {
		if s.verbose {
			log.Printf("[EXTRACT] description extraction returned malformed JSON: %v", err)
		}
		return Extracted{Company: SentinelCompany, SalaryRange: SentinelSalary}
	}
	if data.Company == "" {
		data.Company = SentinelCompany
	}
	if data.SalaryRange == "" {
		data.SalaryRange = SentinelSalary
	}
	return data
}

// parseExtracted coerces a loose backend response into an Extracted struct.
func parseExtracted(raw string) (Extracted, error) {
	var data Extracted
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &data); err != nil {
		return Extracted{}, fmt.Errorf("malformed extraction response: %w", err)
	}
	return data, nil
}
