package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwalters/jobtrack/internal/llm"
)

func TestAnalyzeMatch_Success(t *testing.T) {
	client := &fakeClient{jsonFn: func(prompt string, _ llm.ModelTier) (string, error) {
		assert.Contains(t, prompt, "RESUME:")
		assert.Contains(t, prompt, "JOB DESCRIPTION:")
		return `{"score": 82.4, "strengths": ["Go", "Kubernetes"], "gaps": ["Rust"]}`, nil
	}}

	analysis, err := newTestService(client).AnalyzeMatch(context.Background(), "my resume", "the job")
	require.NoError(t, err)
	assert.Equal(t, 82, analysis.Score)
	assert.Equal(t, []string{"Go", "Kubernetes"}, analysis.Strengths)
	assert.Equal(t, []string{"Rust"}, analysis.Gaps)
}

func TestAnalyzeMatch_ParseFailureFlaggedNotSilent(t *testing.T) {
	client := &fakeClient{jsonFn: func(_ string, _ llm.ModelTier) (string, error) {
		return "sorry, I cannot do that", nil
	}}

	analysis, err := newTestService(client).AnalyzeMatch(context.Background(), "resume", "job")
	require.NoError(t, err)
	// Zero score from a parse failure carries the marker gap, so it is
	// distinguishable from a genuine zero.
	assert.Equal(t, 0, analysis.Score)
	assert.Contains(t, analysis.Gaps, ParseFailedGap)
}

func TestAnalyzeMatch_RemoteErrorPropagates(t *testing.T) {
	client := &fakeClient{jsonFn: func(_ string, _ llm.ModelTier) (string, error) {
		return "", errors.New("400 content blocked")
	}}

	_, err := newTestService(client).AnalyzeMatch(context.Background(), "resume", "job")
	require.Error(t, err)
}

func TestAnalyzeMatch_ScoreClamped(t *testing.T) {
	client := &fakeClient{jsonFn: func(_ string, _ llm.ModelTier) (string, error) {
		return `{"score": 140, "strengths": [], "gaps": []}`, nil
	}}

	analysis, err := newTestService(client).AnalyzeMatch(context.Background(), "resume", "job")
	require.NoError(t, err)
	assert.Equal(t, 100, analysis.Score)
}

func TestCompareOffers_Success(t *testing.T) {
	client := &fakeClient{jsonFn: func(prompt string, tier llm.ModelTier) (string, error) {
		assert.Equal(t, llm.TierAdvanced, tier)
		assert.Contains(t, prompt, "Acme")
		return `[{"rank": 1, "company": "Acme", "title": "Backend Engineer", "why": "Better growth", "pros": ["pay"], "cons": ["oncall"]}]`, nil
	}}

	rankings, err := newTestService(client).CompareOffers(context.Background(), []Offer{
		{Title: "Backend Engineer", Company: "Acme", Description: "Go services"},
	})
	require.NoError(t, err)
	require.Len(t, rankings, 1)
	assert.Equal(t, 1, rankings[0].Rank)
	assert.Equal(t, "Acme", rankings[0].Company)
}

func TestCompareOffers_MalformedResponse(t *testing.T) {
	client := &fakeClient{jsonFn: func(_ string, _ llm.ModelTier) (string, error) {
		return "not an array", nil
	}}

	_, err := newTestService(client).CompareOffers(context.Background(), []Offer{{Company: "Acme"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed comparison response")
}
