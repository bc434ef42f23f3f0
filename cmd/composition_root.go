package cmd

import (
	"time"

	"dragonpath/internal/adapters/out/postgres"
	"dragonpath/internal/core/application/usecases/commands"
	"dragonpath/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	return commands.NewConfirmPaymentCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateReleaseEscrowCommandHandler() commands.ReleaseEscrowCommandHandler {
	return commands.NewReleaseEscrowCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRecordMilestoneCommandHandler() commands.RecordMilestoneCommandHandler {
	return commands.NewRecordMilestoneCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAttachConditionEvidenceCommandHandler() commands.AttachConditionEvidenceCommandHandler {
	return commands.NewAttachConditionEvidenceCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateConfirmLogisticsReceiptCommandHandler() commands.ConfirmLogisticsReceiptCommandHandler {
	return commands.NewConfirmLogisticsReceiptCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateReleaseDueEscrowsCommandHandler() commands.ReleaseDueEscrowsCommandHandler {
	autoReleaseAfter := time.Duration(c.config.EscrowAutoReleaseDays) * 24 * time.Hour
	return commands.NewReleaseDueEscrowsCommandHandler(c.orderUoWFactory(), autoReleaseAfter)
}

func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
