package services_test

import (
	"fmt"
	"testing"

	"fulfillment/internal/core/domain/model/leaderboard"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankLeaderboard(t *testing.T) {
	t.Run("sorts by count and keeps source order for ties", func(t *testing.T) {
		counts := []leaderboard.ActorCount{
			{ActorID: "3", Count: 2},
			{ActorID: "1", Count: 5},
			{ActorID: "2", Count: 2},
		}

		board := services.RankLeaderboard(counts, "2")

		require.Len(t, board.Entries, 3)
		assert.Equal(t, "1", board.Entries[0].ActorID)
		assert.Equal(t, "3", board.Entries[1].ActorID)
		assert.Equal(t, "2", board.Entries[2].ActorID)
		assert.Equal(t, []int{1, 2, 3}, []int{board.Entries[0].Rank, board.Entries[1].Rank, board.Entries[2].Rank})
		assert.True(t, board.Entries[2].IsCaller)
		assert.False(t, board.Entries[0].IsCaller)

		require.NotNil(t, board.Caller.Rank)
		assert.Equal(t, 3, *board.Caller.Rank)
		assert.Equal(t, 2, board.Caller.Count)
		assert.True(t, board.Caller.InTop10)
	})

	t.Run("shows ten entries and ranks the caller beyond them", func(t *testing.T) {
		var counts []leaderboard.ActorCount
		for i := 1; i <= 12; i++ {
			counts = append(counts, leaderboard.ActorCount{ActorID: fmt.Sprint(i), Count: 100 - i})
		}

		board := services.RankLeaderboard(counts, "12")

		assert.Len(t, board.Entries, leaderboard.TopN)
		require.NotNil(t, board.Caller.Rank)
		assert.Equal(t, 12, *board.Caller.Rank)
		assert.Equal(t, 88, board.Caller.Count)
		assert.False(t, board.Caller.InTop10)
		for _, e := range board.Entries {
			assert.False(t, e.IsCaller)
		}
	})

	t.Run("numeric match gives a count but no rank", func(t *testing.T) {
		board := services.RankLeaderboard([]leaderboard.ActorCount{{ActorID: "07", Count: 4}}, "7")

		assert.Nil(t, board.Caller.Rank)
		assert.Equal(t, 4, board.Caller.Count)
		assert.False(t, board.Caller.InTop10)
		assert.False(t, board.Entries[0].IsCaller)
	})

	t.Run("prefers an exact match over a numeric one", func(t *testing.T) {
		counts := []leaderboard.ActorCount{{ActorID: "07", Count: 9}, {ActorID: "7", Count: 1}}

		board := services.RankLeaderboard(counts, "7")

		assert.Equal(t, 1, board.Caller.Count)
		require.NotNil(t, board.Caller.Rank)
		assert.Equal(t, 2, *board.Caller.Rank)
		assert.False(t, board.Entries[0].IsCaller)
		assert.True(t, board.Entries[1].IsCaller)
	})

	t.Run("absent caller has zero and no rank", func(t *testing.T) {
		board := services.RankLeaderboard([]leaderboard.ActorCount{{ActorID: "1", Count: 1}}, "99")

		assert.Nil(t, board.Caller.Rank)
		assert.Equal(t, 0, board.Caller.Count)
		assert.False(t, board.Caller.InTop10)
		assert.Equal(t, "99", board.Caller.ActorID)
	})

	t.Run("empty source", func(t *testing.T) {
		board := services.RankLeaderboard(nil, "1")

		assert.Empty(t, board.Entries)
		assert.Nil(t, board.Caller.Rank)
	})

	t.Run("does not reorder the input", func(t *testing.T) {
		counts := []leaderboard.ActorCount{{ActorID: "a", Count: 1}, {ActorID: "b", Count: 2}}

		services.RankLeaderboard(counts, "")

		assert.Equal(t, "a", counts[0].ActorID)
	})
}
