package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/kwalters/jobtrack/internal/llm"
	"github.com/kwalters/jobtrack/internal/retry"
	"github.com/kwalters/jobtrack/internal/types"
)

// ParseFailedGap marks a MatchAnalysis whose backend response could not be
// parsed, so a score of 0 stays distinguishable from a genuine zero.
const ParseFailedGap = "Analysis failed to parse."

// AnalyzeMatch scores a resume against a job description. Remote failures
// (after retry) propagate as errors; a response that arrives but cannot be
// parsed yields a zero score flagged with ParseFailedGap instead.
func (s *Service) AnalyzeMatch(ctx context.Context, resumeText, jobDescription string) (types.MatchAnalysis, error) {
	prompt := fmt.Sprintf(`Perform a detailed compatibility analysis between this professional Resume and Job Description.

RESUME:
%s

JOB DESCRIPTION:
%s

Instructions: Be objective and critical. If skills are missing, list them as gaps.

Return ONLY valid JSON matching this exact structure:
{
  "score": 0,            // integer 0-100
  "strengths": ["string"],
  "gaps": ["string"]
}`, resumeText, jobDescription)

	raw, err := retry.Do(ctx, func(ctx context.Context) (string, error) {
		return s.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	}, s.retry)
	if err != nil {
		return types.MatchAnalysis{}, err
	}

	var loose struct {
		Score     float64  `json:"score"`
		Strengths []string `json:"strengths"`
		Gaps      []string `json:"gaps"`
	}
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &loose); err != nil {
		return types.MatchAnalysis{Score: 0, Strengths: []string{}, Gaps: []string{ParseFailedGap}}, nil
	}

	return types.MatchAnalysis{
		Score:     clampScore(loose.Score),
		Strengths: emptyIfNil(loose.Strengths),
		Gaps:      emptyIfNil(loose.Gaps),
	}, nil
}

// Offer is one offer-stage application submitted for comparison.
type Offer struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
}

// OfferRanking is one entry of a ranked offer comparison.
type OfferRanking struct {
	Rank    int      `json:"rank"`
	Company string   `json:"company"`
	Title   string   `json:"title"`
	Why     string   `json:"why"`
	Pros    []string `json:"pros"`
	Cons    []string `json:"cons"`
}

// CompareOffers ranks competing offers against each other.
func (s *Service) CompareOffers(ctx context.Context, offers []Offer) ([]OfferRanking, error) {
	payload, err := json.Marshal(offers)
	if err != nil {
		return nil, fmt.Errorf("failed to encode offers: %w", err)
	}

	prompt := fmt.Sprintf(`Rank these job offers from best to worst for the candidate.

OFFERS:
%s

Return ONLY a valid JSON array matching this exact structure:
[
  {
    "rank": 1,
    "company": "string",
    "title": "string",
    "why": "string",
    "pros": ["string"],
    "cons": ["string"]
  }
]`, string(payload))

	raw, err := retry.Do(ctx, func(ctx context.Context) (string, error) {
		return s.client.GenerateJSON(ctx, prompt, llm.TierAdvanced)
	}, s.retry)
	if err != nil {
		return nil, err
	}

	var rankings []OfferRanking
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &rankings); err != nil {
		return nil, fmt.Errorf("malformed comparison response: %w", err)
	}
	return rankings, nil
}

func clampScore(score float64) int {
	rounded := int(math.Round(score))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}

func emptyIfNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
