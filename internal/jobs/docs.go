// Package jobs contains the scheduled background work of the service.
// Currently a single cron-driven sweep that audits persisted rate tables
// for breakpoint and price regressions.
package jobs
