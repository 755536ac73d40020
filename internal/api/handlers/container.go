package handlers

import (
	"github.com/linskybing/catalyst/internal/application"
	"github.com/linskybing/catalyst/internal/repository"
)

type Handlers struct {
	Audit    *AuditHandler
	Ticket   *TicketHandler
	Project  *ProjectHandler
	User     *UserHandler
	Label    *LabelHandler
	Cycle    *CycleHandler
	Module   *ModuleHandler
	Voice    *VoiceHandler
	Catalyst *CatalystHandler
	Calendar *CalendarHandler
	Health   *HealthHandler
}

func New(svc *application.Services, repos *repository.Repos, backend string) *Handlers {
	return &Handlers{
		Audit:    NewAuditHandler(svc.Audit),
		Ticket:   NewTicketHandler(svc.Ticket),
		Project:  NewProjectHandler(svc.Project),
		User:     NewUserHandler(svc.User),
		Label:    NewLabelHandler(svc.Label),
		Cycle:    NewCycleHandler(svc.Cycle),
		Module:   NewModuleHandler(svc.Module),
		Voice:    NewVoiceHandler(svc.Voice, svc.Meeting),
		Catalyst: NewCatalystHandler(svc.Catalyst),
		Calendar: NewCalendarHandler(svc.Calendar),
		Health:   NewHealthHandler(backend, repos.Ping),
	}
}
