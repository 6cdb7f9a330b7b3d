package ingest_feed_usecase

import (
	"flock/domain"
	"flock/port/article_store_port"
)

// FilterNew drops candidates whose link or guid is already known, keeping
// survivors untouched and in the original order so recency ordering is
// preserved for the inserts.
//
// This pre-check only reduces write volume. The correctness guarantee is the
// storage-level uniqueness on link/guid/content hash: a candidate that slips
// past here under a race is rejected by the insert instead.
func FilterNew(candidates []domain.CandidateItem, known *article_store_port.KnownIdentifiers) []domain.CandidateItem {
	if known == nil {
		return candidates
	}

	fresh := make([]domain.CandidateItem, 0, len(candidates))
	for _, candidate := range candidates {
		if _, ok := known.Links[candidate.Link]; ok {
			continue
		}
		if candidate.GUID != "" {
			if _, ok := known.GUIDs[candidate.GUID]; ok {
				continue
			}
		}
		fresh = append(fresh, candidate)
	}
	return fresh
}
