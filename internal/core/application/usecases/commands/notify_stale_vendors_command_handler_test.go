package commands_test

import (
	"errors"
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/vendor"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func staleVendor(t *testing.T, vendorType vendor.Type, phone string) *vendor.Vendor {
	t.Helper()

	v, err := vendor.NewVendor(
		kernel.NewUUID(), kernel.NewUUID(), "Ravi Vegetables", "vegetables",
		vendorType, phone, nil,
	)
	require.NoError(t, err)
	v.SetOnline(true)
	return v
}

func TestNotifyStaleVendorsCommandHandler_Handle_RemindsMovingStalls(t *testing.T) {
	ctx := t.Context()
	first := staleVendor(t, vendor.TypeMovingStall, "+919800000001")
	second := staleVendor(t, vendor.TypeMovingStall, "+919800000002")

	vendorRepo := new(MockVendorRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VendorRepository").Return(vendorRepo).Once(),
		vendorRepo.On("GetStaleOnline", mock.Anything, mock.Anything).
			Return([]*vendor.Vendor{first, second}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := new(MockNotifier)
	notifier.On("Send", mock.Anything, "+919800000001", mock.Anything).Return(nil).Once()
	notifier.On("Send", mock.Anything, "+919800000002", mock.Anything).Return(nil).Once()

	factory := new(MockVendorUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewNotifyStaleVendorsCommandHandler(factory, notifier)
	err := h.Handle(ctx, commands.NewNotifyStaleVendorsCommand())
	require.NoError(t, err)
	vendorRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNotifyStaleVendorsCommandHandler_Handle_SkipsFixedShops(t *testing.T) {
	ctx := t.Context()
	stall := staleVendor(t, vendor.TypeMovingStall, "+919800000001")
	shop := staleVendor(t, vendor.TypeFixedShop, "+919800000002")

	vendorRepo := new(MockVendorRepository)
	vendorRepo.On("GetStaleOnline", mock.Anything, mock.Anything).
		Return([]*vendor.Vendor{stall, shop}, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("VendorRepository").Return(vendorRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	notifier := new(MockNotifier)
	notifier.On("Send", mock.Anything, "+919800000001", mock.Anything).Return(nil).Once()

	factory := new(MockVendorUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewNotifyStaleVendorsCommandHandler(factory, notifier)
	err := h.Handle(ctx, commands.NewNotifyStaleVendorsCommand())
	require.NoError(t, err)
	notifier.AssertExpectations(t)
	notifier.AssertNotCalled(t, "Send", mock.Anything, "+919800000002", mock.Anything)
}

func TestNotifyStaleVendorsCommandHandler_Handle_FailedSendSkipsToNext(t *testing.T) {
	ctx := t.Context()
	first := staleVendor(t, vendor.TypeMovingStall, "+919800000001")
	second := staleVendor(t, vendor.TypeMovingStall, "+919800000002")

	vendorRepo := new(MockVendorRepository)
	vendorRepo.On("GetStaleOnline", mock.Anything, mock.Anything).
		Return([]*vendor.Vendor{first, second}, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("VendorRepository").Return(vendorRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	notifier := new(MockNotifier)
	notifier.On("Send", mock.Anything, "+919800000001", mock.Anything).
		Return(errors.New("send failed")).Once()
	notifier.On("Send", mock.Anything, "+919800000002", mock.Anything).Return(nil).Once()

	factory := new(MockVendorUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewNotifyStaleVendorsCommandHandler(factory, notifier)
	err := h.Handle(ctx, commands.NewNotifyStaleVendorsCommand())
	require.NoError(t, err)
	notifier.AssertExpectations(t)
}
