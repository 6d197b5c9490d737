package queries_test

import (
	"context"
	"testing"

	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/access"
	"shipping/internal/core/domain/model/binding"
	"shipping/internal/core/domain/model/catalog"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/rate"
	"shipping/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock implementations for testing.
type MockAuthorizer struct {
	mock.Mock
}

func (m *MockAuthorizer) Authorize(
	ctx context.Context,
	userID *int64,
	resource access.Resource,
	action access.Action,
	target access.Ownable,
) error {
	args := m.Called(ctx, userID, resource, action, target)
	return args.Error(0)
}

func allowAll() *MockAuthorizer {
	auth := new(MockAuthorizer)
	auth.On("Authorize", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	return auth
}

type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) Add(ctx context.Context, aggregate *catalog.Company) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCompanyRepository) Update(ctx context.Context, aggregate *catalog.Company) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCompanyRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCompanyRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Company), args.Error(1)
}

func (m *MockCompanyRepository) GetAll(ctx context.Context) ([]*catalog.Company, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*catalog.Company), args.Error(1)
}

type MockPackageRepository struct {
	mock.Mock
}

func (m *MockPackageRepository) Add(ctx context.Context, aggregate *catalog.Package) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPackageRepository) Update(ctx context.Context, aggregate *catalog.Package) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPackageRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPackageRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Package, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Package), args.Error(1)
}

func (m *MockPackageRepository) GetAll(ctx context.Context) ([]*catalog.Package, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*catalog.Package), args.Error(1)
}

type MockCompanyPackageRepository struct {
	mock.Mock
}

func (m *MockCompanyPackageRepository) Add(ctx context.Context, aggregate *catalog.CompanyPackage) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCompanyPackageRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCompanyPackageRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.CompanyPackage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.CompanyPackage), args.Error(1)
}

func (m *MockCompanyPackageRepository) GetAll(ctx context.Context) ([]*catalog.CompanyPackage, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*catalog.CompanyPackage), args.Error(1)
}

func (m *MockCompanyPackageRepository) GetByCompany(ctx context.Context, companyID kernel.UUID) ([]*catalog.CompanyPackage, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).([]*catalog.CompanyPackage), args.Error(1)
}

func (m *MockCompanyPackageRepository) GetByPackage(ctx context.Context, packageID kernel.UUID) ([]*catalog.CompanyPackage, error) {
	args := m.Called(ctx, packageID)
	return args.Get(0).([]*catalog.CompanyPackage), args.Error(1)
}

func (m *MockCompanyPackageRepository) AddRestriction(ctx context.Context, restriction *catalog.Restriction) error {
	args := m.Called(ctx, restriction)
	return args.Error(0)
}

func (m *MockCompanyPackageRepository) GetRestriction(ctx context.Context, name string) (*catalog.Restriction, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Restriction), args.Error(1)
}

func (m *MockCompanyPackageRepository) DeleteRestriction(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

type MockRateRepository struct {
	mock.Mock
}

func (m *MockRateRepository) Replace(ctx context.Context, aggregate *rate.Entry) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockRateRepository) GetByLane(ctx context.Context, companyPackageID kernel.UUID, deliveryFrom kernel.Alpha3) (*rate.Entry, error) {
	args := m.Called(ctx, companyPackageID, deliveryFrom)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rate.Entry), args.Error(1)
}

func (m *MockRateRepository) GetByCompanyPackage(ctx context.Context, companyPackageID kernel.UUID) ([]*rate.Entry, error) {
	args := m.Called(ctx, companyPackageID)
	return args.Get(0).([]*rate.Entry), args.Error(1)
}

func (m *MockRateRepository) GetAll(ctx context.Context) ([]*rate.Entry, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*rate.Entry), args.Error(1)
}

func (m *MockRateRepository) DeleteByCompanyPackage(ctx context.Context, companyPackageID kernel.UUID) error {
	args := m.Called(ctx, companyPackageID)
	return args.Error(0)
}

type MockBindingRepository struct {
	mock.Mock
}

func (m *MockBindingRepository) Add(ctx context.Context, aggregate *binding.Binding) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockBindingRepository) Get(ctx context.Context, id kernel.UUID) (*binding.Binding, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*binding.Binding), args.Error(1)
}

func (m *MockBindingRepository) GetByBaseProduct(ctx context.Context, baseProductID int64) ([]*binding.Binding, error) {
	args := m.Called(ctx, baseProductID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*binding.Binding), args.Error(1)
}

func (m *MockBindingRepository) DeleteByBaseProduct(ctx context.Context, baseProductID int64) error {
	args := m.Called(ctx, baseProductID)
	return args.Error(0)
}

func (m *MockBindingRepository) DeleteByCompanyPackage(ctx context.Context, companyPackageID kernel.UUID) error {
	args := m.Called(ctx, companyPackageID)
	return args.Error(0)
}

// catalogFixture bundles a consistent offering cluster for read-side tests.
type catalogFixture struct {
	company  *catalog.Company
	pkg      *catalog.Package
	offering *catalog.CompanyPackage

	companies *MockCompanyRepository
	packages  *MockPackageRepository
	offerings *MockCompanyPackageRepository
}

// newCatalogFixture builds "acme" selling the "standard" tier (100 volume,
// 30 weight) from USA, with no restriction unless one is stubbed afterwards.
func newCatalogFixture(t *testing.T) *catalogFixture {
	t.Helper()
	currency, err := kernel.NewCurrency("USD")
	require.NoError(t, err)

	company, err := catalog.NewCompany("acme", "acme-label", "", currency, []kernel.Alpha3{"USA"})
	require.NoError(t, err)

	pkg, err := catalog.NewPackage("standard", 100, 30, []kernel.Alpha3{"CAN", "MEX"})
	require.NoError(t, err)

	offering, err := catalog.RestoreCompanyPackage(kernel.NewUUID(), company.ID(), pkg.ID(), currency)
	require.NoError(t, err)

	f := &catalogFixture{
		company:   company,
		pkg:       pkg,
		offering:  offering,
		companies: new(MockCompanyRepository),
		packages:  new(MockPackageRepository),
		offerings: new(MockCompanyPackageRepository),
	}

	f.companies.On("Get", mock.Anything, company.ID()).Return(company, nil)
	f.packages.On("Get", mock.Anything, pkg.ID()).Return(pkg, nil)
	f.offerings.On("Get", mock.Anything, offering.ID()).Return(offering, nil)
	return f
}

func (f *catalogFixture) withoutRestriction() *catalogFixture {
	f.offerings.On("GetRestriction", mock.Anything, "acme-standard").
		Return(nil, errs.NewObjectNotFoundError("restriction", "acme-standard"))
	return f
}

func (f *catalogFixture) withRestriction(t *testing.T, maxSize, maxWeight float64, deliveriesTo ...kernel.Alpha3) *catalogFixture {
	t.Helper()
	restriction, err := catalog.NewRestriction("acme-standard", maxSize, maxWeight, deliveriesTo)
	require.NoError(t, err)

	f.offerings.On("GetRestriction", mock.Anything, "acme-standard").Return(restriction, nil)
	return f
}

func (f *catalogFixture) assembler() queries.OfferAssembler {
	return queries.NewOfferAssembler(f.companies, f.packages, f.offerings)
}

func createRateEntry(t *testing.T, companyPackageID kernel.UUID, tiers ...rate.Tier) *rate.Entry {
	t.Helper()
	entry, err := rate.NewEntry(companyPackageID, "USA", tiers)
	require.NoError(t, err)
	return entry
}

func createRateTier(t *testing.T, weight, volume float64, price string) rate.Tier {
	t.Helper()
	tier, err := rate.NewTier(weight, volume, decimal.RequireFromString(price))
	require.NoError(t, err)
	return tier
}

func TestGetDeliveryPriceQueryHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	fixture := newCatalogFixture(t).withoutRestriction()

	query, err := queries.NewGetDeliveryPriceQuery(nil, fixture.offering.ID(), "USA", "CAN", 40, 10)
	require.NoError(t, err)

	mockRates := new(MockRateRepository)
	entry := createRateEntry(t, fixture.offering.ID(),
		createRateTier(t, 10, 40, "5.50"),
		createRateTier(t, 30, 100, "12"),
	)
	mockRates.On("GetByLane", ctx, fixture.offering.ID(), kernel.Alpha3("USA")).Return(entry, nil).Once()

	handler := queries.NewGetDeliveryPriceQueryHandler(
		allowAll(), fixture.assembler(), fixture.offerings, mockRates)

	// Act
	resp, err := handler.Handle(ctx, query)

	// Assert
	require.NoError(t, err)
	assert.True(t, resp.Price.Equal(decimal.RequireFromString("5.50")))
	assert.Equal(t, "USD", resp.Currency)
	mockRates.AssertExpectations(t)
}

func TestGetDeliveryPriceQueryHandler_Handle_DestinationOutsideAllowList(t *testing.T) {
	// Arrange
	ctx := t.Context()
	fixture := newCatalogFixture(t).withRestriction(t, 100, 30, "CAN")

	query, err := queries.NewGetDeliveryPriceQuery(nil, fixture.offering.ID(), "USA", "MEX", 40, 10)
	require.NoError(t, err)

	mockRates := new(MockRateRepository)
	handler := queries.NewGetDeliveryPriceQueryHandler(
		allowAll(), fixture.assembler(), fixture.offerings, mockRates)

	// Act
	_, err = handler.Handle(ctx, query)

	// Assert
	var notFound *errs.ObjectNotFoundError
	require.ErrorAs(t, err, &notFound)
	mockRates.AssertNotCalled(t, "GetByLane", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetDeliveryPriceQueryHandler_Handle_NoApplicableRate(t *testing.T) {
	// Arrange
	ctx := t.Context()
	fixture := newCatalogFixture(t).withoutRestriction()

	// The parcel exceeds every published tier of the lane.
	query, err := queries.NewGetDeliveryPriceQuery(nil, fixture.offering.ID(), "USA", "CAN", 90, 25)
	require.NoError(t, err)

	mockRates := new(MockRateRepository)
	entry := createRateEntry(t, fixture.offering.ID(), createRateTier(t, 10, 40, "5.50"))
	mockRates.On("GetByLane", ctx, fixture.offering.ID(), kernel.Alpha3("USA")).Return(entry, nil).Once()

	handler := queries.NewGetDeliveryPriceQueryHandler(
		allowAll(), fixture.assembler(), fixture.offerings, mockRates)

	// Act
	_, err = handler.Handle(ctx, query)

	// Assert
	var noRate *errs.NoApplicableRateError
	require.ErrorAs(t, err, &noRate)
}

func TestGetDeliveryPriceQueryHandler_Handle_InvalidQuery(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidQuery queries.GetDeliveryPriceQuery

	handler := queries.NewGetDeliveryPriceQueryHandler(
		allowAll(), queries.OfferAssembler{}, new(MockCompanyPackageRepository), new(MockRateRepository))

	// Act
	_, err := handler.Handle(ctx, invalidQuery)

	// Assert
	require.ErrorIs(t, err, queries.ErrGetDeliveryPriceQueryIsNotConstructed)
}

func TestNewGetDeliveryPriceQuery_InvalidInput(t *testing.T) {
	t.Run("should fail with unconstructed offering id", func(t *testing.T) {
		_, err := queries.NewGetDeliveryPriceQuery(nil, kernel.UUID{}, "USA", "CAN", 40, 10)

		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("should fail with non-positive dimensions", func(t *testing.T) {
		_, err := queries.NewGetDeliveryPriceQuery(nil, kernel.NewUUID(), "USA", "CAN", 0, 10)

		assert.Error(t, err)
	})
}
