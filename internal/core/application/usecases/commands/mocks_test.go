package commands_test

import (
	"context"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/vendor"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockVendorRepository struct{ mock.Mock }

func (m *MockVendorRepository) Add(ctx context.Context, aggregate *vendor.Vendor) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockVendorRepository) Update(ctx context.Context, aggregate *vendor.Vendor) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockVendorRepository) Get(ctx context.Context, id kernel.UUID) (*vendor.Vendor, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*vendor.Vendor), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVendorRepository) GetByPhone(ctx context.Context, phone string) (*vendor.Vendor, error) {
	args := m.Called(ctx, phone)
	if v := args.Get(0); v != nil {
		return v.(*vendor.Vendor), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVendorRepository) GetAllDiscoverable(ctx context.Context) ([]*vendor.Vendor, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*vendor.Vendor), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVendorRepository) GetStaleOnline(ctx context.Context, cutoff time.Time) ([]*vendor.Vendor, error) {
	args := m.Called(ctx, cutoff)
	if v := args.Get(0); v != nil {
		return v.([]*vendor.Vendor), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) Add(ctx context.Context, item *catalog.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCatalogRepository) Update(ctx context.Context, item *catalog.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCatalogRepository) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Item, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*catalog.Item), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogRepository) GetAllForVendor(ctx context.Context, vendorID kernel.UUID) ([]*catalog.Item, error) {
	args := m.Called(ctx, vendorID)
	if v := args.Get(0); v != nil {
		return v.([]*catalog.Item), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogRepository) CountForVendor(ctx context.Context, vendorID kernel.UUID) (int64, error) {
	args := m.Called(ctx, vendorID)
	return args.Get(0).(int64), args.Error(1)
}

// MockUoW satisfies every UoW flavor in this package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) VendorRepository() ports.VendorRepository {
	args := m.Called()
	return args.Get(0).(ports.VendorRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CatalogRepository() ports.CatalogRepository {
	args := m.Called()
	return args.Get(0).(ports.CatalogRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockVendorUoWFactory struct{ mock.Mock }

func (m *MockVendorUoWFactory) Create() commands.VendorUoW {
	args := m.Called()
	return args.Get(0).(commands.VendorUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOTPStore struct{ mock.Mock }

func (m *MockOTPStore) Put(ctx context.Context, phone string, code string, ttl time.Duration) error {
	args := m.Called(ctx, phone, code, ttl)
	return args.Error(0)
}

func (m *MockOTPStore) Verify(ctx context.Context, phone string, code string) (bool, error) {
	args := m.Called(ctx, phone, code)
	return args.Bool(0), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Send(ctx context.Context, phone string, text string) error {
	args := m.Called(ctx, phone, text)
	return args.Error(0)
}
