package store

import (
	"math"

	"github.com/kwalters/jobtrack/internal/types"
)

// Stats derives career statistics from the live records. Archived records
// still count; archival hides a record from views without removing it from
// history, while deletion removes it from both. Nothing is cached, so the
// numbers can never drift from the records they summarize.
func (s *Store) Stats() types.CareerStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := types.CareerStats{TotalApplied: len(s.jobs)}
	for i := range s.jobs {
		switch s.jobs[i].Status {
		case types.StatusRejected:
			stats.TotalRejections++
		case types.StatusOffer:
			stats.TotalOffers++
		}
	}
	if stats.TotalApplied > 0 {
		stats.SuccessRate = int(math.Round(100 * float64(stats.TotalOffers) / float64(stats.TotalApplied)))
	}
	return stats
}
