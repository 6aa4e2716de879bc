// Package leaderboard holds the ranked boards shown to staff: who approved the
// most orders and who fulfilled the most.
package leaderboard
