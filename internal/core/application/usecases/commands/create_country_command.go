package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var (
	ErrCreateCountryCommandIsNotConstructed = errors.New(
		"CreateCountryCommand must be created via NewCreateCountryCommand constructor",
	)
	ErrLabelIsRequired   = errors.New("label is required")
	ErrLevelIsOutOfRange = errors.New("level must not be negative")
)

// CreateCountryCommand represents a request to add a node to the geography
// tree. Non-root nodes name their parent by label; parent existence is
// verified inside the handler's transaction.
type CreateCountryCommand struct { //nolint:recvcheck //using for validation
	actor       *int64
	label       string
	alpha2      kernel.Alpha2
	alpha3      kernel.Alpha3
	numeric     int
	level       int
	parentLabel *string

	guard guard.ConstructorGuard
}

// NewCreateCountryCommand creates a command to add a country node.
// Alpha codes are normalized to upper case.
func NewCreateCountryCommand(
	actor *int64,
	label string,
	alpha2 string,
	alpha3 string,
	numeric int,
	level int,
	parentLabel *string,
) (CreateCountryCommand, error) {
	command := CreateCountryCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setLabel(label),
		command.setAlpha2(alpha2),
		command.setAlpha3(alpha3),
		command.setNumeric(numeric),
		command.setLevel(level),
	); err != nil {
		return CreateCountryCommand{}, err
	}

	command.parentLabel = parentLabel
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCountryCommand) Validate() error {
	return c.guard.Validate(ErrCreateCountryCommandIsNotConstructed)
}

// Actor returns the acting user's id, nil for anonymous callers.
func (c CreateCountryCommand) Actor() *int64 {
	return c.actor
}

// Label returns the country label from the command.
func (c CreateCountryCommand) Label() string {
	return c.label
}

// Alpha2 returns the two-letter code from the command.
func (c CreateCountryCommand) Alpha2() kernel.Alpha2 {
	return c.alpha2
}

// Alpha3 returns the three-letter code from the command.
func (c CreateCountryCommand) Alpha3() kernel.Alpha3 {
	return c.alpha3
}

// Numeric returns the numeric code from the command.
func (c CreateCountryCommand) Numeric() int {
	return c.numeric
}

// Level returns the tree depth from the command.
func (c CreateCountryCommand) Level() int {
	return c.level
}

// ParentLabel returns the parent label, nil for the root.
func (c CreateCountryCommand) ParentLabel() *string {
	return c.parentLabel
}

func (c *CreateCountryCommand) setLabel(label string) error {
	if label == "" {
		return ErrLabelIsRequired
	}

	c.label = label
	return nil
}

func (c *CreateCountryCommand) setAlpha2(alpha2 string) error {
	code, err := kernel.NewAlpha2(alpha2)
	if err != nil {
		return err
	}

	c.alpha2 = code
	return nil
}

func (c *CreateCountryCommand) setAlpha3(alpha3 string) error {
	code, err := kernel.NewAlpha3(alpha3)
	if err != nil {
		return err
	}

	c.alpha3 = code
	return nil
}

func (c *CreateCountryCommand) setNumeric(numeric int) error {
	if numeric < 0 {
		return errs.NewValueIsInvalidError("numeric")
	}

	c.numeric = numeric
	return nil
}

func (c *CreateCountryCommand) setLevel(level int) error {
	if level < 0 {
		return ErrLevelIsOutOfRange
	}

	c.level = level
	return nil
}
