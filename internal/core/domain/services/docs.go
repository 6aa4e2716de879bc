// Package services provides domain services for the order fulfillment workflow:
// logic that spans several orders or several model packages and therefore does
// not belong to a single aggregate.
//
// The package includes:
//   - AccessPolicy: the profile by operation table that decides who may do what
//   - RegionPartitioner: in-process region filtering of already loaded orders
//   - RankLeaderboard: stable ranking of per-actor counts with the caller's standing
//   - GroupByUser: per-user aggregation of an order listing
package services
