package catalog

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// Restriction errors.
var (
	// ErrRestrictionNameIsRequired is returned when creating a restriction without a name.
	ErrRestrictionNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrRestrictionIsNotConstructed is returned when using an improperly initialized Restriction.
	ErrRestrictionIsNotConstructed = errors.New("Restriction must be created via NewRestriction constructor")
)

// Restriction narrows an offering relative to its package defaults: a
// per-offering destination allow-list and replaced capacity ceilings. Keyed
// by the offering's composite name, one restriction per offering. A
// destination outside a non-empty allow-list is never eligible, whatever the
// rate table says.
type Restriction struct {
	name         string
	maxSize      float64
	maxWeight    float64
	deliveriesTo []kernel.Alpha3

	guard guard.ConstructorGuard
}

// NewRestriction creates a restriction for the named offering. An empty
// allow-list leaves destinations unrestricted.
func NewRestriction(name string, maxSize, maxWeight float64, deliveriesTo []kernel.Alpha3) (*Restriction, error) {
	r := &Restriction{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setName(name),
		r.setCeilings(maxSize, maxWeight),
	); err != nil {
		return nil, err
	}

	r.setDeliveriesTo(deliveriesTo)
	return r, nil
}

// Validate checks that the Restriction was built via NewRestriction.
func (r *Restriction) Validate() error {
	if r == nil {
		return ErrRestrictionIsNotConstructed
	}
	return r.guard.Validate(ErrRestrictionIsNotConstructed)
}

// Name returns the composite offering name the restriction applies to.
func (r *Restriction) Name() string {
	return r.name
}

// MaxSize returns the effective size ceiling for the offering.
func (r *Restriction) MaxSize() float64 {
	return r.maxSize
}

// MaxWeight returns the effective weight ceiling for the offering.
func (r *Restriction) MaxWeight() float64 {
	return r.maxWeight
}

// DeliveriesTo returns the destination allow-list; empty means unrestricted.
func (r *Restriction) DeliveriesTo() []kernel.Alpha3 {
	out := make([]kernel.Alpha3, len(r.deliveriesTo))
	copy(out, r.deliveriesTo)
	return out
}

// AdmitsDestination reports whether the allow-list permits the destination.
func (r *Restriction) AdmitsDestination(destination kernel.Alpha3) bool {
	if len(r.deliveriesTo) == 0 {
		return true
	}
	return kernel.ContainsAlpha3(r.deliveriesTo, destination)
}

// Update replaces the restriction ceilings and allow-list.
func (r *Restriction) Update(maxSize, maxWeight float64, deliveriesTo []kernel.Alpha3) error {
	if err := r.setCeilings(maxSize, maxWeight); err != nil {
		return err
	}

	r.setDeliveriesTo(deliveriesTo)
	return nil
}

func (r *Restriction) setName(name string) error {
	if name == "" {
		return ErrRestrictionNameIsRequired
	}

	r.name = name
	return nil
}

func (r *Restriction) setCeilings(maxSize, maxWeight float64) error {
	if maxSize <= 0 {
		return ErrMaxSizeIsRequired
	}
	if maxWeight <= 0 {
		return ErrMaxWeightIsRequired
	}

	r.maxSize = maxSize
	r.maxWeight = maxWeight
	return nil
}

func (r *Restriction) setDeliveriesTo(deliveriesTo []kernel.Alpha3) {
	r.deliveriesTo = make([]kernel.Alpha3, len(deliveriesTo))
	copy(r.deliveriesTo, deliveriesTo)
}
