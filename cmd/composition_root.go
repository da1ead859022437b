package cmd

import (
	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	otpStore   ports.OTPStore
	notifier   ports.Notifier
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	otpStore ports.OTPStore,
	notifier ports.Notifier,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		otpStore:   otpStore,
		notifier:   notifier,
	}
}

func (c *CompositionRoot) CreateRequestOTPCommandHandler() commands.RequestOTPCommandHandler {
	return commands.NewRequestOTPCommandHandler(c.otpStore, c.notifier)
}

func (c *CompositionRoot) CreateRegisterVendorCommandHandler() commands.RegisterVendorCommandHandler {
	var f commands.VendorUoWFactory = FuncVendorUoWFactory(func() commands.VendorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterVendorCommandHandler(f, c.otpStore)
}

func (c *CompositionRoot) CreateUpdateVendorLocationCommandHandler() commands.UpdateVendorLocationCommandHandler {
	var f commands.VendorUoWFactory = FuncVendorUoWFactory(func() commands.VendorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateVendorLocationCommandHandler(f)
}

func (c *CompositionRoot) CreateSetVendorPresenceCommandHandler() commands.SetVendorPresenceCommandHandler {
	var f commands.VendorUoWFactory = FuncVendorUoWFactory(func() commands.VendorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetVendorPresenceCommandHandler(f)
}

func (c *CompositionRoot) CreateAddCatalogItemCommandHandler() commands.AddCatalogItemCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddCatalogItemCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateCatalogItemCommandHandler() commands.UpdateCatalogItemCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCatalogItemCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveCatalogItemCommandHandler() commands.RemoveCatalogItemCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveCatalogItemCommandHandler(f)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateVerifyVendorCommandHandler() commands.VerifyVendorCommandHandler {
	var f commands.VendorUoWFactory = FuncVendorUoWFactory(func() commands.VendorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewVerifyVendorCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateChangeVendorPlanCommandHandler() commands.ChangeVendorPlanCommandHandler {
	var f commands.VendorUoWFactory = FuncVendorUoWFactory(func() commands.VendorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeVendorPlanCommandHandler(f)
}

func (c *CompositionRoot) CreateNotifyStaleVendorsCommandHandler() commands.NotifyStaleVendorsCommandHandler {
	var f commands.VendorUoWFactory = FuncVendorUoWFactory(func() commands.VendorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewNotifyStaleVendorsCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateDiscoverVendorsQueryHandler() queries.DiscoverVendorsQueryHandler {
	return queries.NewDiscoverVendorsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetVendorCatalogQueryHandler() queries.GetVendorCatalogQueryHandler {
	return queries.NewGetVendorCatalogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetVendorOrdersQueryHandler() queries.GetVendorOrdersQueryHandler {
	return queries.NewGetVendorOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOwnedVendorQueryHandler() queries.GetOwnedVendorQueryHandler {
	return queries.NewGetOwnedVendorQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingVerificationsQueryHandler() queries.GetPendingVerificationsQueryHandler {
	return queries.NewGetPendingVerificationsQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every command and query handler into the REST server.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateRequestOTPCommandHandler(),
		c.CreateRegisterVendorCommandHandler(),
		c.CreateUpdateVendorLocationCommandHandler(),
		c.CreateSetVendorPresenceCommandHandler(),
		c.CreateAddCatalogItemCommandHandler(),
		c.CreateUpdateCatalogItemCommandHandler(),
		c.CreateRemoveCatalogItemCommandHandler(),
		c.CreatePlaceOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateVerifyVendorCommandHandler(),
		c.CreateChangeVendorPlanCommandHandler(),
		c.CreateDiscoverVendorsQueryHandler(),
		c.CreateGetVendorCatalogQueryHandler(),
		c.CreateGetCustomerOrdersQueryHandler(),
		c.CreateGetVendorOrdersQueryHandler(),
		c.CreateGetOwnedVendorQueryHandler(),
		c.CreateGetPendingVerificationsQueryHandler(),
	)
}

type FuncVendorUoWFactory func() commands.VendorUoW

func (f FuncVendorUoWFactory) Create() commands.VendorUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
