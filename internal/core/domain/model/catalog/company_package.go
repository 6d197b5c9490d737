package catalog

import (
	"errors"
	"fmt"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

// ErrCompanyPackageIsNotConstructed is returned when using an improperly
// initialized CompanyPackage.
var ErrCompanyPackageIsNotConstructed = errors.New("CompanyPackage must be created via NewCompanyPackage constructor")

// CompanyPackage is a concrete shippable offering: a company selling a
// package tier. Rates and shipment bindings reference this pair, never the
// company or package directly.
type CompanyPackage struct {
	id        kernel.UUID
	companyID kernel.UUID
	packageID kernel.UUID
	currency  kernel.Currency

	guard guard.ConstructorGuard
}

// NewCompanyPackage creates an offering with a fresh identifier. The
// currency defaults to the selling company's billing currency.
func NewCompanyPackage(companyID, packageID kernel.UUID, currency kernel.Currency) (*CompanyPackage, error) {
	return RestoreCompanyPackage(kernel.NewUUID(), companyID, packageID, currency)
}

// RestoreCompanyPackage reconstructs an offering from persistent storage.
func RestoreCompanyPackage(id, companyID, packageID kernel.UUID, currency kernel.Currency) (*CompanyPackage, error) {
	cp := &CompanyPackage{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cp.setID(id),
		cp.setCompanyID(companyID),
		cp.setPackageID(packageID),
		cp.setCurrency(currency),
	); err != nil {
		return nil, err
	}

	return cp, nil
}

// CompositeName is the display name of an offering, derived from the owning
// company and package names.
func CompositeName(companyName, packageName string) string {
	return fmt.Sprintf("%s-%s", companyName, packageName)
}

// Validate checks that the CompanyPackage was built via its constructor.
func (cp *CompanyPackage) Validate() error {
	if cp == nil {
		return ErrCompanyPackageIsNotConstructed
	}
	return cp.guard.Validate(ErrCompanyPackageIsNotConstructed)
}

// ID returns the offering identifier.
func (cp *CompanyPackage) ID() kernel.UUID {
	return cp.id
}

// CompanyID returns the selling company's identifier.
func (cp *CompanyPackage) CompanyID() kernel.UUID {
	return cp.companyID
}

// PackageID returns the offered package's identifier.
func (cp *CompanyPackage) PackageID() kernel.UUID {
	return cp.packageID
}

// Currency returns the currency prices for this offering are quoted in.
func (cp *CompanyPackage) Currency() kernel.Currency {
	return cp.currency
}

func (cp *CompanyPackage) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	cp.id = id
	return nil
}

func (cp *CompanyPackage) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}

	cp.companyID = companyID
	return nil
}

func (cp *CompanyPackage) setPackageID(packageID kernel.UUID) error {
	if err := packageID.Validate(); err != nil {
		return err
	}

	cp.packageID = packageID
	return nil
}

func (cp *CompanyPackage) setCurrency(currency kernel.Currency) error {
	if currency == "" {
		return kernel.ErrCurrencyIsInvalid
	}

	cp.currency = currency
	return nil
}
