// Package services provides domain services that orchestrate business
// operations across multiple domain entities of the shipping catalog. It
// implements workflows that don't naturally belong to a single aggregate
// root.
//
// The package includes:
//   - AvailabilityResolver: decides which company packages can carry a
//     shipment, with the legacy first-match (v1) and deterministic
//     unique-match (v2) strategies side by side
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
