package rate

import (
	"errors"
	"sort"

	"github.com/shopspring/decimal"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// Rate errors.
var (
	// ErrTierPriceIsInvalid is returned for a negative tier price.
	ErrTierPriceIsInvalid = errs.NewValueIsInvalidError("price")
	// ErrTierBreakpointIsRequired is returned for a non-positive tier breakpoint.
	ErrTierBreakpointIsRequired = errs.NewValueIsRequiredError("tier breakpoint")
	// ErrEntryIsNotConstructed is returned when using an improperly initialized Entry.
	ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")
)

// Tier is one price step of a lane's rate table: the price applies to any
// parcel whose weight and volume both fall within the breakpoints.
type Tier struct {
	weight float64
	volume float64
	price  decimal.Decimal
}

// NewTier creates a rate tier. Breakpoints must be positive, price
// non-negative.
func NewTier(weight, volume float64, price decimal.Decimal) (Tier, error) {
	if weight <= 0 || volume <= 0 {
		return Tier{}, ErrTierBreakpointIsRequired
	}
	if price.IsNegative() {
		return Tier{}, ErrTierPriceIsInvalid
	}

	return Tier{weight: weight, volume: volume, price: price}, nil
}

// Weight returns the tier's weight breakpoint.
func (t Tier) Weight() float64 { return t.weight }

// Volume returns the tier's volume breakpoint.
func (t Tier) Volume() float64 { return t.volume }

// Price returns the tier price.
func (t Tier) Price() decimal.Decimal { return t.price }

// Covers reports whether the tier admits the given parcel.
func (t Tier) Covers(weight, volume float64) bool {
	return t.weight >= weight && t.volume >= volume
}

// Entry is the rate table for one lane: a company package shipping from one
// origin country. Tiers are sorted ascending by breakpoints at construction,
// never at query time, so resolution is a single forward scan.
type Entry struct {
	id               kernel.UUID
	companyPackageID kernel.UUID
	deliveryFrom     kernel.Alpha3
	tiers            []Tier

	guard guard.ConstructorGuard
}

// NewEntry creates a lane rate table with a fresh identifier.
func NewEntry(companyPackageID kernel.UUID, deliveryFrom kernel.Alpha3, tiers []Tier) (*Entry, error) {
	return RestoreEntry(kernel.NewUUID(), companyPackageID, deliveryFrom, tiers)
}

// RestoreEntry reconstructs a lane rate table from persistent storage.
func RestoreEntry(id, companyPackageID kernel.UUID, deliveryFrom kernel.Alpha3, tiers []Tier) (*Entry, error) {
	e := &Entry{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setID(id),
		e.setCompanyPackageID(companyPackageID),
		e.setDeliveryFrom(deliveryFrom),
	); err != nil {
		return nil, err
	}

	e.setTiers(tiers)
	return e, nil
}

// Validate checks that the Entry was built via its constructor.
func (e *Entry) Validate() error {
	if e == nil {
		return ErrEntryIsNotConstructed
	}
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

// ID returns the lane identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// CompanyPackageID returns the offering the lane belongs to.
func (e *Entry) CompanyPackageID() kernel.UUID {
	return e.companyPackageID
}

// DeliveryFrom returns the lane's origin country.
func (e *Entry) DeliveryFrom() kernel.Alpha3 {
	return e.deliveryFrom
}

// Tiers returns the tier list in ascending breakpoint order.
func (e *Entry) Tiers() []Tier {
	out := make([]Tier, len(e.tiers))
	copy(out, e.tiers)
	return out
}

// ResolvePrice selects the smallest tier covering the parcel: the first
// tier, scanning in ascending order, whose weight and volume breakpoints
// both meet or exceed the input. A parcel no tier covers exceeds every
// published tier for the lane.
func (e *Entry) ResolvePrice(weight, volume float64) (decimal.Decimal, error) {
	for _, tier := range e.tiers {
		if tier.Covers(weight, volume) {
			return tier.price, nil
		}
	}

	return decimal.Decimal{}, errs.NewNoApplicableRateError(weight, volume)
}

func (e *Entry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	e.id = id
	return nil
}

func (e *Entry) setCompanyPackageID(companyPackageID kernel.UUID) error {
	if err := companyPackageID.Validate(); err != nil {
		return err
	}

	e.companyPackageID = companyPackageID
	return nil
}

func (e *Entry) setDeliveryFrom(deliveryFrom kernel.Alpha3) error {
	if deliveryFrom == "" {
		return kernel.ErrAlpha3IsInvalid
	}

	e.deliveryFrom = deliveryFrom
	return nil
}

func (e *Entry) setTiers(tiers []Tier) {
	sorted := make([]Tier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].weight != sorted[j].weight {
			return sorted[i].weight < sorted[j].weight
		}
		return sorted[i].volume < sorted[j].volume
	})

	e.tiers = sorted
}
