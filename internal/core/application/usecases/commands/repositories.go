// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization,
// transaction management, and persistence.
package commands

import (
	"context"

	"shipping/internal/core/domain/model/access"
	"shipping/internal/core/ports"
)

// Authorizer approves or denies the acting user's operation before any
// state change happens. Satisfied by access.Engine.
type Authorizer interface {
	Authorize(
		ctx context.Context,
		userID *int64,
		resource access.Resource,
		action access.Action,
		target access.Ownable,
	) error
}

// storeOwned adapts a bare store id to the ownership check, for commands
// that know the owning store before any entity exists.
type storeOwned int64

// OwnedBy reports whether the ownership key matches the store id.
func (s storeOwned) OwnedBy(ownerKey int64) bool {
	return int64(s) == ownerKey
}

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CountryRepoFactory provides access to the country repository within a transaction.
	CountryRepoFactory interface {
		CountryRepository() ports.CountryRepository
	}

	// CompanyRepoFactory provides access to the company repository within a transaction.
	CompanyRepoFactory interface {
		CompanyRepository() ports.CompanyRepository
	}

	// PackageRepoFactory provides access to the package repository within a transaction.
	PackageRepoFactory interface {
		PackageRepository() ports.PackageRepository
	}

	// CompanyPackageRepoFactory provides access to the offering repository within a transaction.
	CompanyPackageRepoFactory interface {
		CompanyPackageRepository() ports.CompanyPackageRepository
	}

	// RateRepoFactory provides access to the rate repository within a transaction.
	RateRepoFactory interface {
		RateRepository() ports.RateRepository
	}

	// BindingRepoFactory provides access to the binding repository within a transaction.
	BindingRepoFactory interface {
		BindingRepository() ports.BindingRepository
	}

	// RoleRepoFactory provides access to the role repository within a transaction.
	RoleRepoFactory interface {
		RoleRepository() ports.RoleRepository
	}

	// CountryUoW manages transactions for country-only operations.
	CountryUoW interface {
		TxManager
		CountryRepoFactory
	}

	// CountryUoWFactory creates new country unit of work instances.
	CountryUoWFactory interface {
		Create() CountryUoW
	}

	// CompanyUoW manages transactions for company-only operations.
	CompanyUoW interface {
		TxManager
		CompanyRepoFactory
	}

	// CompanyUoWFactory creates new company unit of work instances.
	CompanyUoWFactory interface {
		Create() CompanyUoW
	}

	// PackageUoW manages transactions for package-only operations.
	PackageUoW interface {
		TxManager
		PackageRepoFactory
	}

	// PackageUoWFactory creates new package unit of work instances.
	PackageUoWFactory interface {
		Create() PackageUoW
	}

	// CatalogUoW manages transactions spanning the whole offering cluster:
	// companies, packages, offerings with their restrictions, plus the rate
	// lanes and bindings that hang off an offering when it is removed.
	CatalogUoW interface {
		TxManager
		CompanyRepoFactory
		PackageRepoFactory
		CompanyPackageRepoFactory
		RateRepoFactory
		BindingRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// RateUoW manages transactions for rate-table operations. Offerings are
	// read to validate the lane's target exists.
	RateUoW interface {
		TxManager
		RateRepoFactory
		CompanyPackageRepoFactory
	}

	// RateUoWFactory creates new rate unit of work instances.
	RateUoWFactory interface {
		Create() RateUoW
	}

	// BindingUoW manages transactions for shipment-binding operations.
	BindingUoW interface {
		TxManager
		BindingRepoFactory
		CompanyPackageRepoFactory
	}

	// BindingUoWFactory creates new binding unit of work instances.
	BindingUoWFactory interface {
		Create() BindingUoW
	}

	// RoleUoW manages transactions for role-grant operations.
	RoleUoW interface {
		TxManager
		RoleRepoFactory
	}

	// RoleUoWFactory creates new role unit of work instances.
	RoleUoWFactory interface {
		Create() RoleUoW
	}
)
