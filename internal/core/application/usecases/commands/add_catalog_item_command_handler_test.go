package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/vendor"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddCatalogItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	vendorID := kernel.NewUUID()
	ownerID := kernel.NewUUID()

	v, err := vendor.NewVendor(
		vendorID, ownerID, "Ravi Vegetables", "vegetables",
		vendor.TypeMovingStall, "+919800000001", nil,
	)
	require.NoError(t, err)

	cmd, err := commands.NewAddCatalogItemCommand(
		kernel.NewUUID(), vendorID, ownerID, "Tomato", "kg", 4000,
	)
	require.NoError(t, err)

	vendorRepo := new(MockVendorRepository)
	catalogRepo := new(MockCatalogRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VendorRepository").Return(vendorRepo).Once(),
		vendorRepo.On("Get", mock.Anything, vendorID).Return(v, nil).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		catalogRepo.On("CountForVendor", mock.Anything, vendorID).Return(int64(3), nil).Once(),
		catalogRepo.On("Add", mock.Anything, mock.AnythingOfType("*catalog.Item")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddCatalogItemCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	vendorRepo.AssertExpectations(t)
	catalogRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddCatalogItemCommandHandler_Handle_BasicPlanLimit(t *testing.T) {
	ctx := t.Context()
	vendorID := kernel.NewUUID()
	ownerID := kernel.NewUUID()

	v, err := vendor.NewVendor(
		vendorID, ownerID, "Ravi Vegetables", "vegetables",
		vendor.TypeMovingStall, "+919800000001", nil,
	)
	require.NoError(t, err)
	require.Equal(t, vendor.PlanBasic, v.Plan())

	cmd, err := commands.NewAddCatalogItemCommand(
		kernel.NewUUID(), vendorID, ownerID, "Tomato", "kg", 4000,
	)
	require.NoError(t, err)

	vendorRepo := new(MockVendorRepository)
	catalogRepo := new(MockCatalogRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VendorRepository").Return(vendorRepo).Once(),
		vendorRepo.On("Get", mock.Anything, vendorID).Return(v, nil).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		catalogRepo.On("CountForVendor", mock.Anything, vendorID).Return(int64(10), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddCatalogItemCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrCatalogLimitReached)
	catalogRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestAddCatalogItemCommandHandler_Handle_PremiumPlanHasRoom(t *testing.T) {
	ctx := t.Context()
	vendorID := kernel.NewUUID()
	ownerID := kernel.NewUUID()

	v, err := vendor.NewVendor(
		vendorID, ownerID, "Ravi Vegetables", "vegetables",
		vendor.TypeMovingStall, "+919800000001", nil,
	)
	require.NoError(t, err)
	require.NoError(t, v.ChangePlan(vendor.PlanPremium))

	cmd, err := commands.NewAddCatalogItemCommand(
		kernel.NewUUID(), vendorID, ownerID, "Tomato", "kg", 4000,
	)
	require.NoError(t, err)

	vendorRepo := new(MockVendorRepository)
	catalogRepo := new(MockCatalogRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VendorRepository").Return(vendorRepo).Once(),
		vendorRepo.On("Get", mock.Anything, vendorID).Return(v, nil).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		catalogRepo.On("CountForVendor", mock.Anything, vendorID).Return(int64(10), nil).Once(),
		catalogRepo.On("Add", mock.Anything, mock.AnythingOfType("*catalog.Item")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddCatalogItemCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	uow.AssertExpectations(t)
}

func TestAddCatalogItemCommandHandler_Handle_ForeignOwner(t *testing.T) {
	ctx := t.Context()
	vendorID := kernel.NewUUID()

	v, err := vendor.NewVendor(
		vendorID, kernel.NewUUID(), "Ravi Vegetables", "vegetables",
		vendor.TypeMovingStall, "+919800000001", nil,
	)
	require.NoError(t, err)

	cmd, err := commands.NewAddCatalogItemCommand(
		kernel.NewUUID(), vendorID, kernel.NewUUID(), "Tomato", "kg", 4000,
	)
	require.NoError(t, err)

	vendorRepo := new(MockVendorRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VendorRepository").Return(vendorRepo).Once(),
		vendorRepo.On("Get", mock.Anything, vendorID).Return(v, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddCatalogItemCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrVendorBelongsToAnotherOwner)
	uow.AssertExpectations(t)
}
