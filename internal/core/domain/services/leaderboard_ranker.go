package services

import (
	"cmp"
	"slices"

	"fulfillment/internal/core/domain/model/leaderboard"
)

// RankLeaderboard turns grouped counts into a board.
//
// Counts are sorted by count descending with a stable sort, so actors with equal
// counts keep the order in which the source grouped them. The board shows the
// first leaderboard.TopN entries; the caller's standing is computed over the full
// ordering. Only an exact id match gives the caller a rank. Without one the
// count falls back to the first row naming the same numeric id, and the rank
// stays nil. An absent caller has count 0 and no rank.
//
// Parameters:
//   - counts: one row per actor, in source grouping order
//   - callerID: the id of the user looking at the board
//
// Returns:
//   - leaderboard.Board: ranked entries without display names
func RankLeaderboard(counts []leaderboard.ActorCount, callerID string) leaderboard.Board {
	ordered := slices.Clone(counts)
	slices.SortStableFunc(ordered, func(a, b leaderboard.ActorCount) int {
		return cmp.Compare(b.Count, a.Count)
	})

	standing := leaderboard.CallerStanding{ActorID: callerID}
	if pos := exactPosition(ordered, callerID); pos >= 0 {
		rank := pos + 1
		standing.Rank = &rank
		standing.Count = ordered[pos].Count
		standing.InTop10 = rank <= leaderboard.TopN
	} else if pos := sameActorPosition(ordered, callerID); pos >= 0 {
		standing.Count = ordered[pos].Count
	}

	top := ordered[:min(len(ordered), leaderboard.TopN)]
	entries := make([]leaderboard.Entry, len(top))
	for i, c := range top {
		entries[i] = leaderboard.Entry{
			Rank:     i + 1,
			ActorID:  c.ActorID,
			Count:    c.Count,
			IsCaller: standing.Rank != nil && *standing.Rank == i+1,
		}
	}

	return leaderboard.Board{Entries: entries, Caller: standing}
}

func exactPosition(ordered []leaderboard.ActorCount, callerID string) int {
	if callerID == "" {
		return -1
	}
	return slices.IndexFunc(ordered, func(c leaderboard.ActorCount) bool { return c.ActorID == callerID })
}

func sameActorPosition(ordered []leaderboard.ActorCount, callerID string) int {
	if callerID == "" {
		return -1
	}
	return slices.IndexFunc(ordered, func(c leaderboard.ActorCount) bool {
		return leaderboard.SameActor(c.ActorID, callerID)
	})
}
