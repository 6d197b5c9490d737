// Package rate models per-lane price tables: for each company package and
// origin country, an ascending list of weight/volume breakpoint tiers.
// Tier selection is smallest-covering-tier, resolved by a forward scan over
// the pre-sorted list.
package rate
