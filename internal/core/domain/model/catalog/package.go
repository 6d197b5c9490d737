package catalog

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// Domain errors for package operations.
var (
	// ErrPackageNameIsRequired is returned when creating a package without a name.
	ErrPackageNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrMaxSizeIsRequired is returned for a non-positive size ceiling.
	ErrMaxSizeIsRequired = errs.NewValueIsRequiredError("max size")
	// ErrMaxWeightIsRequired is returned for a non-positive weight ceiling.
	ErrMaxWeightIsRequired = errs.NewValueIsRequiredError("max weight")
	// ErrPackageIsNotConstructed is returned when using an improperly initialized Package.
	ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage constructor")
)

// Package is a company-agnostic shippable service tier: a capacity ceiling
// (max size and max weight) plus the default destination-country set offered
// for it. Companies register concrete offerings of a package via
// CompanyPackage.
type Package struct {
	id           kernel.UUID
	name         string
	maxSize      float64
	maxWeight    float64
	deliveriesTo []kernel.Alpha3

	guard guard.ConstructorGuard
}

// NewPackage creates a package with a fresh identifier.
func NewPackage(
	name string,
	maxSize float64,
	maxWeight float64,
	deliveriesTo []kernel.Alpha3,
) (*Package, error) {
	return RestorePackage(kernel.NewUUID(), name, maxSize, maxWeight, deliveriesTo)
}

// RestorePackage reconstructs a package from persistent storage.
func RestorePackage(
	id kernel.UUID,
	name string,
	maxSize float64,
	maxWeight float64,
	deliveriesTo []kernel.Alpha3,
) (*Package, error) {
	p := &Package{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setCeilings(maxSize, maxWeight),
	); err != nil {
		return nil, err
	}

	p.setDeliveriesTo(deliveriesTo)
	return p, nil
}

// Validate checks that the Package was built via its constructor.
func (p *Package) Validate() error {
	if p == nil {
		return ErrPackageIsNotConstructed
	}
	return p.guard.Validate(ErrPackageIsNotConstructed)
}

// ID returns the package identifier.
func (p *Package) ID() kernel.UUID {
	return p.id
}

// Name returns the service tier name.
func (p *Package) Name() string {
	return p.name
}

// MaxSize returns the declared size ceiling.
func (p *Package) MaxSize() float64 {
	return p.maxSize
}

// MaxWeight returns the declared weight ceiling.
func (p *Package) MaxWeight() float64 {
	return p.maxWeight
}

// DeliveriesTo returns the default destination-country set.
func (p *Package) DeliveriesTo() []kernel.Alpha3 {
	out := make([]kernel.Alpha3, len(p.deliveriesTo))
	copy(out, p.deliveriesTo)
	return out
}

// Update replaces the mutable package attributes.
func (p *Package) Update(name string, maxSize, maxWeight float64, deliveriesTo []kernel.Alpha3) error {
	if err := errors.Join(
		p.setName(name),
		p.setCeilings(maxSize, maxWeight),
	); err != nil {
		return err
	}

	p.setDeliveriesTo(deliveriesTo)
	return nil
}

func (p *Package) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.id = id
	return nil
}

func (p *Package) setName(name string) error {
	if name == "" {
		return ErrPackageNameIsRequired
	}

	p.name = name
	return nil
}

func (p *Package) setCeilings(maxSize, maxWeight float64) error {
	if maxSize <= 0 {
		return ErrMaxSizeIsRequired
	}
	if maxWeight <= 0 {
		return ErrMaxWeightIsRequired
	}

	p.maxSize = maxSize
	p.maxWeight = maxWeight
	return nil
}

func (p *Package) setDeliveriesTo(deliveriesTo []kernel.Alpha3) {
	p.deliveriesTo = make([]kernel.Alpha3, len(deliveriesTo))
	copy(p.deliveriesTo, deliveriesTo)
}
