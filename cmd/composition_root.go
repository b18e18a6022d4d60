package cmd

import (
	"zapshift/internal/adapters/out/postgres"
	"zapshift/internal/core/application/usecases/commands"
	"zapshift/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) parcelUoWFactory() commands.ParcelUoWFactory {
	return FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	return commands.NewCreateParcelCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateAssignRiderCommandHandler() commands.AssignRiderCommandHandler {
	return commands.NewAssignRiderCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreatePickupParcelCommandHandler() commands.PickupParcelCommandHandler {
	return commands.NewPickupParcelCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateDeliverParcelCommandHandler() commands.DeliverParcelCommandHandler {
	return commands.NewDeliverParcelCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateCashoutParcelCommandHandler() commands.CashoutParcelCommandHandler {
	return commands.NewCashoutParcelCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateDeleteParcelCommandHandler() commands.DeleteParcelCommandHandler {
	return commands.NewDeleteParcelCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() commands.RecordPaymentCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordPaymentCommandHandler(f)
}

func (c *CompositionRoot) CreateApplyRiderCommandHandler() commands.ApplyRiderCommandHandler {
	var f commands.RiderUoWFactory = FuncRiderUoWFactory(func() commands.RiderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApplyRiderCommandHandler(f)
}

func (c *CompositionRoot) CreateSetRiderStatusCommandHandler() commands.SetRiderStatusCommandHandler {
	var f commands.RiderUserUoWFactory = FuncRiderUserUoWFactory(func() commands.RiderUserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetRiderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f)
}

func (c *CompositionRoot) CreateSetUserRoleCommandHandler() commands.SetUserRoleCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetUserRoleCommandHandler(f)
}

func (c *CompositionRoot) CreateAppendTrackingCommandHandler() commands.AppendTrackingCommandHandler {
	var f commands.TrackingUoWFactory = FuncTrackingUoWFactory(func() commands.TrackingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAppendTrackingCommandHandler(f)
}

func (c *CompositionRoot) CreateReconcileRiderAvailabilityCommandHandler() commands.ReconcileRiderAvailabilityCommandHandler {
	return commands.NewReconcileRiderAvailabilityCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateGetParcelsQueryHandler() queries.GetParcelsQueryHandler {
	return queries.NewGetParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetParcelQueryHandler() queries.GetParcelQueryHandler {
	return queries.NewGetParcelQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryStatusCountsQueryHandler() queries.GetDeliveryStatusCountsQueryHandler {
	return queries.NewGetDeliveryStatusCountsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPaymentStatusCountsQueryHandler() queries.GetPaymentStatusCountsQueryHandler {
	return queries.NewGetPaymentStatusCountsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRidersByStatusQueryHandler() queries.GetRidersByStatusQueryHandler {
	return queries.NewGetRidersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableRidersQueryHandler() queries.GetAvailableRidersQueryHandler {
	return queries.NewGetAvailableRidersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRiderParcelsQueryHandler() queries.GetRiderParcelsQueryHandler {
	return queries.NewGetRiderParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRiderCompletedParcelsQueryHandler() queries.GetRiderCompletedParcelsQueryHandler {
	return queries.NewGetRiderCompletedParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPaymentsQueryHandler() queries.GetPaymentsQueryHandler {
	return queries.NewGetPaymentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTrackingHistoryQueryHandler() queries.GetTrackingHistoryQueryHandler {
	return queries.NewGetTrackingHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserRoleQueryHandler() queries.GetUserRoleQueryHandler {
	return queries.NewGetUserRoleQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSearchUsersQueryHandler() queries.SearchUsersQueryHandler {
	return queries.NewSearchUsersQueryHandler(c.gormDB)
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncRiderUoWFactory func() commands.RiderUoW

func (f FuncRiderUoWFactory) Create() commands.RiderUoW {
	return f()
}

type FuncRiderUserUoWFactory func() commands.RiderUserUoW

func (f FuncRiderUserUoWFactory) Create() commands.RiderUserUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncTrackingUoWFactory func() commands.TrackingUoW

func (f FuncTrackingUoWFactory) Create() commands.TrackingUoW {
	return f()
}
