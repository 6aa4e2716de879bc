package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/leaderboard"
	"fulfillment/internal/core/domain/model/staff"
	"fulfillment/internal/pkg/guard"
)

var ErrGetLeaderboardsQueryIsNotConstructed = errors.New(
	"GetLeaderboardsQuery must be created via NewGetLeaderboardsQuery constructor",
)

type GetLeaderboardsQuery struct {
	caller staff.Caller
	guard  guard.ConstructorGuard
}

func NewGetLeaderboardsQuery(caller staff.Caller) (GetLeaderboardsQuery, error) {
	if err := caller.Validate(); err != nil {
		return GetLeaderboardsQuery{}, err
	}
	return GetLeaderboardsQuery{caller: caller, guard: guard.NewConstructorGuard()}, nil
}

func (q GetLeaderboardsQuery) Validate() error {
	return q.guard.Validate(ErrGetLeaderboardsQueryIsNotConstructed)
}

func (q GetLeaderboardsQuery) Caller() staff.Caller { return q.caller }

// Leaderboards holds both boards as seen by one caller.
type Leaderboards struct {
	Fulfilled leaderboard.Board
	Approved  leaderboard.Board
}
