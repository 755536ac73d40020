package application

import (
	"github.com/linskybing/catalyst/internal/integrations"
	"github.com/linskybing/catalyst/internal/realtime"
	"github.com/linskybing/catalyst/internal/repository"
)

type Services struct {
	Audit    *AuditService
	Ticket   *TicketService
	Project  *ProjectService
	User     *UserService
	Label    *LabelService
	Cycle    *CycleService
	Module   *ModuleService
	Meeting  *MeetingService
	Voice    *VoiceService
	Catalyst *CatalystService
	Calendar *CalendarService
}

// Clients groups the external integrations. Archive may be nil.
type Clients struct {
	LLM         integrations.LLM
	Transcriber integrations.Transcriber
	Exporter    integrations.PageExporter
	Renderer    integrations.DocumentRenderer
	Archive     integrations.ObjectStore
}

func New(repos *repository.Repos, clients Clients, board realtime.Publisher) *Services {
	tickets := NewTicketService(repos, board)
	return &Services{
		Audit:    NewAuditService(repos),
		Ticket:   tickets,
		Project:  NewProjectService(repos),
		User:     NewUserService(repos),
		Label:    NewLabelService(repos),
		Cycle:    NewCycleService(repos),
		Module:   NewModuleService(repos),
		Meeting:  NewMeetingService(repos, clients.LLM, tickets),
		Voice:    NewVoiceService(clients.Transcriber, clients.Archive),
		Catalyst: NewCatalystService(clients.LLM, clients.Exporter, clients.Renderer),
		Calendar: NewCalendarService(repos),
	}
}
