package logic

import (
	"skimbox/dal"
	"time"
)

const (
	neverSentBonusDays = 30 // items older than this get the age bonus
	oldBandMinDays     = 60
	oldBandMaxDays     = 90
)

// Candidate is an item scored for selection. Derived fresh on every run from
// the item row and its send history; never persisted.
type Candidate struct {
	ItemId      string
	AuthorId    string // empty means no author on record
	FirstSeenAt time.Time
	Score       int
}

// ScoreItem assigns the selection priority:
//
//	+2 if the item has never had a 'sent' event
//	+1 if it was first seen more than 30 days ago
func ScoreItem(everSent bool, firstSeenAt, now time.Time) int {
	score := 0
	if !everSent {
		score += 2
	}
	if firstSeenAt.Before(now.AddDate(0, 0, -neverSentBonusDays)) {
		score += 1
	}
	return score
}

// BuildCandidates scores a pool, preserving its order. The repo returns pool
// rows sorted first_seen_at descending, which the sampler relies on.
func BuildCandidates(pool []*dal.PoolItem, now time.Time) []*Candidate {
	res := make([]*Candidate, 0, len(pool))
	for _, pi := range pool {
		res = append(res, &Candidate{
			ItemId:      pi.ItemId,
			AuthorId:    pi.AuthorId,
			FirstSeenAt: pi.FirstSeenAt,
			Score:       ScoreItem(pi.EverSent, pi.FirstSeenAt, now),
		})
	}
	return res
}

// inOldBand reports whether the candidate sits in the resurfacing band:
// first seen between 90 and 60 days ago (inclusive at 90, exclusive at 60).
func inOldBand(firstSeenAt, now time.Time) bool {
	return !firstSeenAt.Before(now.AddDate(0, 0, -oldBandMaxDays)) &&
		firstSeenAt.Before(now.AddDate(0, 0, -oldBandMinDays))
}
