package country

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// Domain errors for country operations.
var (
	// ErrLabelIsRequired is returned when creating a country without a label.
	ErrLabelIsRequired = errs.NewValueIsRequiredError("label")
	// ErrLevelIsInvalid is returned for a negative tree depth.
	ErrLevelIsInvalid = errs.NewValueIsInvalidError("level")
	// ErrParentLabelIsRequired is returned when a non-root country has no parent.
	ErrParentLabelIsRequired = errs.NewValueIsRequiredError("parent label")
	// ErrCountryIsNotConstructed is returned when using an improperly initialized Country.
	ErrCountryIsNotConstructed = errors.New("Country must be created via NewCountry constructor")
)

// Country is a node in the geography tree (continent → region → country).
// The label is the stable identifier referenced everywhere else in the
// system; alpha and numeric codes exist for external lookups only.
//
// Invariants:
//   - the parent chain is acyclic and terminates at a root in exactly
//     `level` hops
//   - alpha2, alpha3 and numeric codes are unique across all countries
//   - only a root (level 0) may have no parent label
type Country struct {
	label       string
	alpha2      kernel.Alpha2
	alpha3      kernel.Alpha3
	numeric     int
	level       int
	parentLabel *string
	children    []*Country

	guard guard.ConstructorGuard
}

// NewCountry creates a country tree node. A nil parentLabel is only valid
// for a root node (level 0); existence of the parent itself is checked by
// the create use case inside its storage transaction.
func NewCountry(
	label string,
	alpha2 kernel.Alpha2,
	alpha3 kernel.Alpha3,
	numeric int,
	level int,
	parentLabel *string,
) (*Country, error) {
	c := &Country{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setLabel(label),
		c.setCodes(alpha2, alpha3, numeric),
		c.setLevel(level),
		c.setParentLabel(parentLabel, level),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks that the Country was built via NewCountry.
func (c *Country) Validate() error {
	if c == nil {
		return ErrCountryIsNotConstructed
	}
	return c.guard.Validate(ErrCountryIsNotConstructed)
}

// Label returns the stable country identifier.
func (c *Country) Label() string {
	return c.label
}

// Alpha2 returns the two-letter ISO code.
func (c *Country) Alpha2() kernel.Alpha2 {
	return c.alpha2
}

// Alpha3 returns the three-letter ISO code.
func (c *Country) Alpha3() kernel.Alpha3 {
	return c.alpha3
}

// Numeric returns the numeric ISO code.
func (c *Country) Numeric() int {
	return c.numeric
}

// Level returns the node depth in the tree; roots are level 0.
func (c *Country) Level() int {
	return c.level
}

// ParentLabel returns the parent node's label, nil for a root.
func (c *Country) ParentLabel() *string {
	return c.parentLabel
}

// Children returns the attached child nodes. Empty unless the country was
// produced by BuildTree.
func (c *Country) Children() []*Country {
	out := make([]*Country, len(c.children))
	copy(out, c.children)
	return out
}

// IsRoot reports whether this node is the tree root.
func (c *Country) IsRoot() bool {
	return c.parentLabel == nil
}

func (c *Country) setLabel(label string) error {
	if label == "" {
		return ErrLabelIsRequired
	}

	c.label = label
	return nil
}

func (c *Country) setCodes(alpha2 kernel.Alpha2, alpha3 kernel.Alpha3, numeric int) error {
	if alpha2 == "" {
		return kernel.ErrAlpha2IsInvalid
	}
	if alpha3 == "" {
		return kernel.ErrAlpha3IsInvalid
	}
	if numeric < 0 {
		return errs.NewValueIsInvalidError("numeric")
	}

	c.alpha2 = alpha2
	c.alpha3 = alpha3
	c.numeric = numeric
	return nil
}

func (c *Country) setLevel(level int) error {
	if level < 0 {
		return ErrLevelIsInvalid
	}

	c.level = level
	return nil
}

func (c *Country) setParentLabel(parentLabel *string, level int) error {
	if parentLabel == nil {
		if level != 0 {
			return ErrParentLabelIsRequired
		}
		return nil
	}
	if *parentLabel == "" {
		return ErrParentLabelIsRequired
	}

	label := *parentLabel
	c.parentLabel = &label
	return nil
}
