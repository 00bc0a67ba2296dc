package extract

import (
	"context"
	"fmt"
	"log"

	"github.com/kwalters/jobtrack/internal/fetch"
	"github.com/kwalters/jobtrack/internal/llm"
	"github.com/kwalters/jobtrack/internal/retry"
)

// ImportMethod records which pipeline stage produced the import result.
type ImportMethod string

// Import methods, in order of preference.
const (
	MethodDirect ImportMethod = "direct"
	MethodSearch ImportMethod = "search"
	MethodNone   ImportMethod = "none"
)

// Confidence is the trust level of an import result, so the UI can prompt
// for manual correction when it is low.
type Confidence string

// Confidence levels.
const (
	ConfidenceHigh Confidence = "high"
	ConfidenceLow  Confidence = "low"
)

// ImportResult is the outcome of a URL import: best-effort data plus how it
// was obtained and how much to trust it.
type ImportResult struct {
	Data       Extracted
	Method     ImportMethod
	Confidence Confidence
	Warning    string
}

// MagicImport extracts job details from a posting URL via a two-stage
// pipeline: fetch the page text directly and extract from it; if the host
// is login-walled or the page yields no usable text, fall back to a
// search-grounded extraction. Both stages failing still returns a result,
// with sentinel data and a warning instructing manual entry.
func (s *Service) MagicImport(ctx context.Context, url string) ImportResult {
	walled := fetch.IsLoginWalled(url)

	// Stage 1: direct page fetch. Skipped for login-walled hosts, which
	// would only serve their sign-in page.
	if !walled {
		pageText, err := fetch.PageText(ctx, url, s.fetch)
		if err == nil {
			data, exErr := s.extractFromPage(ctx, pageText, url)
			if exErr == nil {
				return ImportResult{Data: data, Method: MethodDirect, Confidence: ConfidenceHigh}
			}
			if s.verbose {
				log.Printf("[IMPORT] page fetched but extraction failed, falling back to search: %v", exErr)
			}
		} else if s.verbose {
			log.Printf("[IMPORT] direct fetch failed, falling back to search: %v", err)
		}
	}

	// Stage 2: search-grounded extraction.
	data, err := s.searchImport(ctx, url)
	if err == nil {
		return ImportResult{
			Data:       data,
			Method:     MethodSearch,
			Confidence: ConfidenceLow,
			Warning:    searchWarning(url, walled, data),
		}
	}

	// Both stages failed.
	return ImportResult{
		Data:       Extracted{Company: SentinelCompany, SalaryRange: SentinelNotFound},
		Method:     MethodNone,
		Confidence: ConfidenceLow,
		Warning:    failureWarning(url, walled),
	}
}

func (s *Service) extractFromPage(ctx context.Context, pageText, url string) (Extracted, error) {
	prompt := fmt.Sprintf(`You are extracting job posting details from a webpage's text content.
The URL was: %s

Return ONLY valid JSON matching this exact structure:
{
  "title": "string",       // the job title
  "company": "string",     // the company name
  "salaryRange": "string", // salary or compensation range, if mentioned
  "description": "string"  // summary of responsibilities, requirements and qualifications (max 500 words)
}

If a field is not found, use %q.

PAGE CONTENT:
%s`, url, SentinelNotFound, pageText)

	raw, err := retry.Do(ctx, func(ctx context.Context) (string, error) {
		return s.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	}, s.retry)
	if err != nil {
		return Extracted{}, err
	}
	return parseExtracted(raw)
}

func (s *Service) searchImport(ctx context.Context, url string) (Extracted, error) {
	prompt := fmt.Sprintf(`Search the web for information about this job posting URL: %s

Find and extract:
- The exact job title
- The company name
- The salary/compensation range (if available)
- A detailed summary of the job responsibilities and requirements

If you cannot find specific information, respond with %q for that field. Do not make up information.

Return ONLY valid JSON matching this exact structure:
{
  "title": "string",
  "company": "string",
  "salaryRange": "string",
  "description": "string"
}`, url, SentinelNotFound)

	raw, err := retry.Do(ctx, func(ctx context.Context) (string, error) {
		return s.client.GenerateJSONWithSearch(ctx, prompt)
	}, s.retry)
	if err != nil {
		return Extracted{}, err
	}
	return parseExtracted(raw)
}

func searchWarning(url string, walled bool, data Extracted) string {
	if walled {
		return fmt.Sprintf("%s jobs require authentication. The posting was looked up via web search instead, so results may be incomplete. Consider pasting the description directly.", fetch.WalledHostName(url))
	}
	if data.Company != SentinelCompany && len(data.Description) > 20 {
		return "Could not access the page directly. Details were found via web search and may be incomplete."
	}
	return "Could not access this page or find it via web search. Please paste the job description manually."
}

func failureWarning(url string, walled bool) string {
	if walled {
		return fmt.Sprintf("%s jobs are behind a login wall and cannot be imported automatically. Please copy and paste the job description.", fetch.WalledHostName(url))
	}
	return "Could not fetch details from this URL. Please paste the job description manually."
}
