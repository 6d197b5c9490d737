package kernel

import (
	"shipping/internal/pkg/errs"
)

// Domain errors for parcel dimensions.
var (
	// ErrVolumeIsRequired is returned for a non-positive parcel volume.
	ErrVolumeIsRequired = errs.NewValueIsRequiredError("volume")
	// ErrWeightIsRequired is returned for a non-positive parcel weight.
	ErrWeightIsRequired = errs.NewValueIsRequiredError("weight")
)

// Dimensions is a value object carrying a parcel's volume and weight.
// Volume is compared against a package's declared max size, weight against
// its max weight. The zero value is invalid; use NewDimensions.
type Dimensions struct {
	volume float64
	weight float64
}

// NewDimensions creates parcel dimensions. Both values must be positive.
func NewDimensions(volume, weight float64) (Dimensions, error) {
	if volume <= 0 {
		return Dimensions{}, ErrVolumeIsRequired
	}
	if weight <= 0 {
		return Dimensions{}, ErrWeightIsRequired
	}

	return Dimensions{volume: volume, weight: weight}, nil
}

// Volume returns the parcel volume.
func (d Dimensions) Volume() float64 {
	return d.volume
}

// Weight returns the parcel weight.
func (d Dimensions) Weight() float64 {
	return d.weight
}

// Validate reports whether the dimensions were built via NewDimensions.
func (d Dimensions) Validate() error {
	if d.volume <= 0 {
		return ErrVolumeIsRequired
	}
	if d.weight <= 0 {
		return ErrWeightIsRequired
	}
	return nil
}

// FitsWithin reports whether the parcel fits under the given ceilings.
func (d Dimensions) FitsWithin(maxSize, maxWeight float64) bool {
	return d.volume <= maxSize && d.weight <= maxWeight
}
