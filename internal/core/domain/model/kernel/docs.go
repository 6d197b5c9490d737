// Package kernel contains shared value objects used across the domain model:
// UUID identifiers, ISO country codes (Alpha2/Alpha3), parcel dimensions, and
// currency codes. All types are immutable value objects whose zero values are
// invalid; construct them through their New* functions.
package kernel
