package repository

import (
	"context"

	"gorm.io/gorm"
)

type Repos struct {
	Ticket  TicketRepo
	Project ProjectRepo
	User    UserRepo
	Label   LabelRepo
	Cycle   CycleRepo
	Module  ModuleRepo
	Audit   AuditRepo

	// Ping reports store health; nil when the store has no cheap check.
	Ping func(ctx context.Context) error
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Ticket:  NewTicketRepo(db),
		Project: NewProjectRepo(db),
		User:    NewUserRepo(db),
		Label:   NewLabelRepo(db),
		Cycle:   NewCycleRepo(db),
		Module:  NewModuleRepo(db),
		Audit:   NewAuditRepo(db),
		Ping: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
}
