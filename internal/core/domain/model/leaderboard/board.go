package leaderboard

import (
	"strconv"
	"strings"
)

// TopN is how many entries a board shows.
const TopN = 10

// ActorCount is one grouped row from a count source.
type ActorCount struct {
	ActorID string
	Count   int
}

type Entry struct {
	Rank        int
	ActorID     string
	DisplayName string
	Count       int
	IsCaller    bool
}

// CallerStanding describes the caller's place over the full ordering, not only
// the visible top entries. Rank is nil when the caller has no count.
type CallerStanding struct {
	ActorID     string
	DisplayName string
	Rank        *int
	Count       int
	InTop10     bool
}

type Board struct {
	Entries []Entry
	Caller  CallerStanding
}

// ActorIDsToLabel returns the visible actors plus the caller when the caller is
// ranked outside them.
func (b Board) ActorIDsToLabel() []string {
	ids := make([]string, 0, len(b.Entries)+1)
	for _, e := range b.Entries {
		ids = append(ids, e.ActorID)
	}
	if !b.Caller.InTop10 && b.Caller.Rank != nil && b.Caller.ActorID != "" {
		ids = append(ids, b.Caller.ActorID)
	}
	return ids
}

// WithLabels fills display names from labels, keyed by actor id. Misses render
// as FallbackLabel.
func (b Board) WithLabels(labels map[string]string) Board {
	entries := make([]Entry, len(b.Entries))
	for i, e := range b.Entries {
		e.DisplayName = label(labels, e.ActorID)
		entries[i] = e
	}

	caller := b.Caller
	if caller.ActorID != "" {
		caller.DisplayName = label(labels, caller.ActorID)
	}
	return Board{Entries: entries, Caller: caller}
}

// FallbackLabel is shown for actors the user directory does not know.
func FallbackLabel(actorID string) string {
	return "User #" + actorID
}

// SameActor compares actor ids exactly first, then as integers so that "7" and
// "007" name the same user.
func SameActor(a, b string) bool {
	if a == b {
		return true
	}
	x, errX := strconv.ParseInt(strings.TrimSpace(a), 10, 64)
	y, errY := strconv.ParseInt(strings.TrimSpace(b), 10, 64)
	return errX == nil && errY == nil && x == y
}

func label(labels map[string]string, actorID string) string {
	if name, ok := labels[actorID]; ok && name != "" {
		return name
	}
	return FallbackLabel(actorID)
}
