// Package scoreboard implements the live scoreboard registry: the set of
// fixtures currently in play, keyed by their (home, away) pair, and the ranked
// summary derived from it on demand.
//
// A fixture exists between a successful Start and a successful Finish. Its
// score is changed only through UpdateScore. Every operation validates its
// input before touching the registry, in a fixed order:
//
//  1. team names (home first, then away)
//  2. fixture existence
//  3. scores (home first, then away)
//
// so a rejected call never leaves a partial mutation behind.
//
// The summary ranks fixtures by total score, highest first. Fixtures with the
// same total are ranked by recency: the one started or updated most recently
// comes first.
//
// A Board is safe for concurrent use.
package scoreboard
