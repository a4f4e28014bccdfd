package logic

import (
	"sort"
	"time"
)

// Sample picks up to count candidates under the diversity rules. It is a pure
// function: the input slice and candidate scores are never mutated, and all
// "used author" tracking lives in local loop state.
//
// The incoming pool must be sorted first_seen_at descending. When the pool
// holds at least one old-band candidate and count > 1, the first such
// candidate in incoming order (the most recent member of the band) is forced
// into the selection before the score walk. The walk then goes in descending
// score order, ties resolving to the pre-sort order, applying a -1 penalty to
// a local copy of the score when the author was already used. A candidate is
// accepted while its penalized score is positive or the selection is short of
// count; the latter clause keeps digests full even when the pool scores
// poorly.
func Sample(candidates []*Candidate, count int, now time.Time) []*Candidate {

	selected := make([]*Candidate, 0, count)
	if count <= 0 || len(candidates) == 0 {
		return selected
	}
	usedAuthors := make(map[string]struct{})

	// Resurface one old item per digest when there is one and room for it
	if count > 1 {
		for _, cand := range candidates {
			if inOldBand(cand.FirstSeenAt, now) {
				selected = append(selected, cand)
				if cand.AuthorId != "" {
					usedAuthors[cand.AuthorId] = struct{}{}
				}
				break
			}
		}
	}

	// Walk by descending score; stable sort keeps the recency pre-sort as
	// the tie-breaker
	byScore := make([]*Candidate, len(candidates))
	copy(byScore, candidates)
	sort.SliceStable(byScore, func(i, j int) bool {
		return byScore[i].Score > byScore[j].Score
	})

	for _, cand := range byScore {
		if len(selected) >= count {
			break
		}
		if isSelected(selected, cand.ItemId) {
			continue
		}
		penalized := cand.Score
		if cand.AuthorId != "" {
			if _, used := usedAuthors[cand.AuthorId]; used {
				penalized -= 1
			}
		}
		if penalized > 0 || len(selected) < count {
			selected = append(selected, cand)
			if cand.AuthorId != "" {
				usedAuthors[cand.AuthorId] = struct{}{}
			}
		}
	}

	if len(selected) > count {
		selected = selected[:count]
	}
	return selected
}

func isSelected(selected []*Candidate, itemId string) bool {
	for _, s := range selected {
		if s.ItemId == itemId {
			return true
		}
	}
	return false
}
