package cmd

import (
	"freight/internal/adapters/out/postgres"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"

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

func (c *CompositionRoot) CreateCreateAnnouncementCommandHandler() commands.CreateAnnouncementCommandHandler {
	var f commands.AnnouncementUoWFactory = FuncAnnouncementUoWFactory(func() commands.AnnouncementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateAnnouncementCommandHandler(f)
}

func (c *CompositionRoot) CreateStartAnnouncementCommandHandler() commands.StartAnnouncementCommandHandler {
	var f commands.AnnouncementUoWFactory = FuncAnnouncementUoWFactory(func() commands.AnnouncementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartAnnouncementCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteAnnouncementCommandHandler() commands.CompleteAnnouncementCommandHandler {
	var f commands.AnnouncementUoWFactory = FuncAnnouncementUoWFactory(func() commands.AnnouncementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteAnnouncementCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteAnnouncementCommandHandler() commands.DeleteAnnouncementCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteAnnouncementCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDemandCommandHandler() commands.CreateDemandCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDemandCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateDemandPackagesCommandHandler() commands.UpdateDemandPackagesCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDemandPackagesCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeDemandStatusCommandHandler() commands.ChangeDemandStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeDemandStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelDemandCommandHandler() commands.CancelDemandCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelDemandCommandHandler(f)
}

func (c *CompositionRoot) CreateActivateDueAnnouncementsCommandHandler() commands.ActivateDueAnnouncementsCommandHandler {
	var f commands.AnnouncementUoWFactory = FuncAnnouncementUoWFactory(func() commands.AnnouncementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewActivateDueAnnouncementsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAllAnnouncementsQueryHandler() queries.GetAllAnnouncementsQueryHandler {
	return queries.NewGetAllAnnouncementsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverAnnouncementsQueryHandler() queries.GetDriverAnnouncementsQueryHandler {
	return queries.NewGetDriverAnnouncementsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipperDemandsQueryHandler() queries.GetShipperDemandsQueryHandler {
	return queries.NewGetShipperDemandsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDemandsByAnnouncementQueryHandler() queries.GetDemandsByAnnouncementQueryHandler {
	return queries.NewGetDemandsByAnnouncementQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetHistoryQueryHandler() queries.GetHistoryQueryHandler {
	return queries.NewGetHistoryQueryHandler(c.gormDB)
}

type FuncAnnouncementUoWFactory func() commands.AnnouncementUoW

func (f FuncAnnouncementUoWFactory) Create() commands.AnnouncementUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
