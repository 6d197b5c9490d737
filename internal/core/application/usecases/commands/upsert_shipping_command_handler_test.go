package commands_test

import (
	"context"
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/access"
	"shipping/internal/core/domain/model/binding"
	"shipping/internal/core/domain/model/catalog"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock implementations for testing.
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

type MockBindingUoW struct {
	mock.Mock
}

func (m *MockBindingUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBindingUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBindingUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBindingUoW) BindingRepository() ports.BindingRepository {
	args := m.Called()
	return args.Get(0).(ports.BindingRepository)
}

func (m *MockBindingUoW) CompanyPackageRepository() ports.CompanyPackageRepository {
	args := m.Called()
	return args.Get(0).(ports.CompanyPackageRepository)
}

type MockBindingUoWFactory struct {
	mock.Mock
}

func (m *MockBindingUoWFactory) Create() commands.BindingUoW {
	args := m.Called()
	return args.Get(0).(commands.BindingUoW)
}

func createOffering(t *testing.T) *catalog.CompanyPackage {
	t.Helper()
	currency, err := kernel.NewCurrency("USD")
	require.NoError(t, err)

	offering, err := catalog.NewCompanyPackage(kernel.NewUUID(), kernel.NewUUID(), currency)
	require.NoError(t, err)
	return offering
}

func TestUpsertShippingCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	offering := createOffering(t)
	cmd, err := commands.NewUpsertShippingCommand(int64Ptr(42), 100, 7, []commands.BindingSpec{
		{CompanyPackageID: offering.ID(), Volume: 40, Weight: 10},
	})
	require.NoError(t, err)

	mockBindings := new(MockBindingRepository)
	mockOfferings := new(MockCompanyPackageRepository)
	mockUoW := new(MockBindingUoW)
	mockFactory := new(MockBindingUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("BindingRepository").Return(mockBindings).Once(),
		mockBindings.On("GetByBaseProduct", ctx, int64(100)).Return(nil, nil).Once(),
		mockBindings.On("DeleteByBaseProduct", ctx, int64(100)).Return(nil).Once(),
		mockUoW.On("CompanyPackageRepository").Return(mockOfferings).Once(),
		mockOfferings.On("Get", ctx, offering.ID()).Return(offering, nil).Once(),
		mockBindings.On("Add", ctx, mock.AnythingOfType("*binding.Binding")).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewUpsertShippingCommandHandler(allowAll(), mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockBindings.AssertExpectations(t)
	mockOfferings.AssertExpectations(t)
}

func TestUpsertShippingCommandHandler_Handle_EmptyBindingsClearsProduct(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewUpsertShippingCommand(int64Ptr(42), 100, 7, nil)
	require.NoError(t, err)

	mockBindings := new(MockBindingRepository)
	mockOfferings := new(MockCompanyPackageRepository)
	mockUoW := new(MockBindingUoW)
	mockFactory := new(MockBindingUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("BindingRepository").Return(mockBindings).Once(),
		mockBindings.On("GetByBaseProduct", ctx, int64(100)).Return(nil, nil).Once(),
		mockBindings.On("DeleteByBaseProduct", ctx, int64(100)).Return(nil).Once(),
		mockUoW.On("CompanyPackageRepository").Return(mockOfferings).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewUpsertShippingCommandHandler(allowAll(), mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockBindings.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	mockUoW.AssertExpectations(t)
}

func createStoreBinding(t *testing.T, baseProductID, storeID int64) *binding.Binding {
	t.Helper()
	measurements, err := kernel.NewDimensions(40, 10)
	require.NoError(t, err)

	b, err := binding.NewBinding(baseProductID, storeID, kernel.NewUUID(), measurements, nil)
	require.NoError(t, err)
	return b
}

func TestUpsertShippingCommandHandler_Handle_OwnershipTarget(t *testing.T) {
	// Arrange: the product has no bindings yet, so ownership is checked
	// against the store the caller claims.
	ctx := t.Context()
	cmd, err := commands.NewUpsertShippingCommand(int64Ptr(42), 100, 7, nil)
	require.NoError(t, err)

	auth := new(MockAuthorizer)
	mockBindings := new(MockBindingRepository)
	mockUoW := new(MockBindingUoW)
	mockFactory := new(MockBindingUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("BindingRepository").Return(mockBindings).Once(),
		mockBindings.On("GetByBaseProduct", ctx, int64(100)).Return(nil, nil).Once(),
		auth.On("Authorize", ctx, int64Ptr(42), access.ResourceShipping, access.ActionUpdate,
			mock.MatchedBy(func(target access.Ownable) bool {
				return target.OwnedBy(7) && !target.OwnedBy(8)
			})).Return(errs.NewForbiddenError("shipping", "update")).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewUpsertShippingCommandHandler(auth, mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	var forbidden *errs.ForbiddenError
	require.ErrorAs(t, err, &forbidden)
	auth.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockBindings.AssertNotCalled(t, "DeleteByBaseProduct", mock.Anything, mock.Anything)
}

func TestUpsertShippingCommandHandler_Handle_ClaimedStoreCannotOverrideExistingOwner(t *testing.T) {
	// Arrange: the product already belongs to store 9. The caller claims
	// store 7 in the command, but ownership is checked against the bindings
	// on record, so the claim buys nothing.
	ctx := t.Context()
	cmd, err := commands.NewUpsertShippingCommand(int64Ptr(42), 100, 7, nil)
	require.NoError(t, err)

	existing := createStoreBinding(t, 100, 9)
	auth := new(MockAuthorizer)
	mockBindings := new(MockBindingRepository)
	mockUoW := new(MockBindingUoW)
	mockFactory := new(MockBindingUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("BindingRepository").Return(mockBindings).Once(),
		mockBindings.On("GetByBaseProduct", ctx, int64(100)).
			Return([]*binding.Binding{existing}, nil).Once(),
		auth.On("Authorize", ctx, int64Ptr(42), access.ResourceShipping, access.ActionUpdate,
			mock.MatchedBy(func(target access.Ownable) bool {
				return target.OwnedBy(9) && !target.OwnedBy(7)
			})).Return(errs.NewForbiddenError("shipping", "update")).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewUpsertShippingCommandHandler(auth, mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	var forbidden *errs.ForbiddenError
	require.ErrorAs(t, err, &forbidden)
	auth.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockBindings.AssertNotCalled(t, "DeleteByBaseProduct", mock.Anything, mock.Anything)
}

func TestUpsertShippingCommandHandler_Handle_UnknownOffering(t *testing.T) {
	// Arrange
	ctx := t.Context()
	missingID := kernel.NewUUID()
	cmd, err := commands.NewUpsertShippingCommand(int64Ptr(42), 100, 7, []commands.BindingSpec{
		{CompanyPackageID: missingID, Volume: 40, Weight: 10},
	})
	require.NoError(t, err)

	notFound := errs.NewObjectNotFoundError("companyPackage", missingID.String())
	mockBindings := new(MockBindingRepository)
	mockOfferings := new(MockCompanyPackageRepository)
	mockUoW := new(MockBindingUoW)
	mockFactory := new(MockBindingUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("BindingRepository").Return(mockBindings).Once(),
		mockBindings.On("GetByBaseProduct", ctx, int64(100)).Return(nil, nil).Once(),
		mockBindings.On("DeleteByBaseProduct", ctx, int64(100)).Return(nil).Once(),
		mockUoW.On("CompanyPackageRepository").Return(mockOfferings).Once(),
		mockOfferings.On("Get", ctx, missingID).Return(nil, notFound).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewUpsertShippingCommandHandler(allowAll(), mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	var nf *errs.ObjectNotFoundError
	require.ErrorAs(t, err, &nf)
	mockUoW.AssertExpectations(t)
	mockBindings.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestNewUpsertShippingCommand_InvalidInput(t *testing.T) {
	t.Run("should fail with non-positive base product id", func(t *testing.T) {
		_, err := commands.NewUpsertShippingCommand(nil, 0, 7, nil)

		assert.ErrorIs(t, err, commands.ErrBaseProductIDIsInvalid)
	})

	t.Run("should fail with non-positive store id", func(t *testing.T) {
		_, err := commands.NewUpsertShippingCommand(nil, 100, -1, nil)

		assert.ErrorIs(t, err, commands.ErrStoreIDIsInvalid)
	})

	t.Run("should fail for zero value command", func(t *testing.T) {
		var cmd commands.UpsertShippingCommand

		assert.ErrorIs(t, cmd.Validate(), commands.ErrUpsertShippingCommandIsNotConstructed)
	})
}
