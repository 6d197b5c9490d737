package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// CountryRepository returns a CountryRepository bound to the current transaction.
	CountryRepository() CountryRepository

	// CompanyRepository returns a CompanyRepository bound to the current transaction.
	CompanyRepository() CompanyRepository

	// PackageRepository returns a PackageRepository bound to the current transaction.
	PackageRepository() PackageRepository

	// CompanyPackageRepository returns a CompanyPackageRepository bound to the current transaction.
	CompanyPackageRepository() CompanyPackageRepository

	// RateRepository returns a RateRepository bound to the current transaction.
	RateRepository() RateRepository

	// BindingRepository returns a BindingRepository bound to the current transaction.
	BindingRepository() BindingRepository

	// RoleRepository returns a RoleRepository bound to the current transaction.
	RoleRepository() RoleRepository
}
