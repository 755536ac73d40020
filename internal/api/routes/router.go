package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/catalyst/internal/api/handlers"
	"github.com/linskybing/catalyst/internal/api/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/linskybing/catalyst/docs"
)

type Options struct {
	// AuthEnabled puts /api and /ws behind JWTAuthMiddleware.
	AuthEnabled bool
	// Board serves the ticket event websocket; nil disables /ws/board.
	Board http.Handler
}

func RegisterRoutes(r *gin.Engine, h *handlers.Handlers, opts Options) {
	r.GET("/healthz", h.Health.Healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if opts.Board != nil {
		ws := r.Group("/ws")
		if opts.AuthEnabled {
			ws.Use(middleware.JWTAuthMiddleware())
		}
		ws.GET("/board", gin.WrapH(opts.Board))
	}

	api := r.Group("/api")
	if opts.AuthEnabled {
		api.Use(middleware.JWTAuthMiddleware())
	}
	{
		tickets := api.Group("/tickets")
		{
			tickets.GET("", h.Ticket.ListTickets)
			tickets.GET("/:id", h.Ticket.GetTicket)
			tickets.POST("", h.Ticket.CreateTicket)
			tickets.PUT("/:id", h.Ticket.UpdateTicket)
			tickets.DELETE("/:id", h.Ticket.DeleteTicket)
		}

		projects := api.Group("/projects")
		{
			projects.GET("", h.Project.GetProjects)
			projects.GET("/:id", h.Project.GetProjectByID)
			projects.POST("", h.Project.CreateProject)
			projects.PUT("/:id", h.Project.UpdateProject)
			projects.DELETE("/:id", h.Project.DeleteProject)
		}

		users := api.Group("/users")
		{
			users.GET("", h.User.GetUsers)
			users.GET("/:id", h.User.GetUserByID)
			users.POST("", h.User.CreateUser)
			users.PUT("/:id", h.User.UpdateUser)
			users.DELETE("/:id", h.User.DeleteUser)
		}

		labels := api.Group("/labels")
		{
			labels.GET("", h.Label.ListLabels)
			labels.GET("/:id", h.Label.GetLabel)
			labels.POST("", h.Label.CreateLabel)
			labels.PUT("/:id", h.Label.UpdateLabel)
			labels.DELETE("/:id", h.Label.DeleteLabel)
		}

		cycles := api.Group("/cycles")
		{
			cycles.GET("", h.Cycle.ListCycles)
			cycles.GET("/:id", h.Cycle.GetCycle)
			cycles.POST("", h.Cycle.CreateCycle)
			cycles.PUT("/:id", h.Cycle.UpdateCycle)
			cycles.DELETE("/:id", h.Cycle.DeleteCycle)
		}

		modules := api.Group("/modules")
		{
			modules.GET("", h.Module.ListModules)
			modules.GET("/:id", h.Module.GetModule)
			modules.POST("", h.Module.CreateModule)
			modules.PUT("/:id", h.Module.UpdateModule)
			modules.DELETE("/:id", h.Module.DeleteModule)
		}

		voice := api.Group("/voice")
		{
			voice.POST("/transcribe-file", h.Voice.TranscribeFile)
			voice.POST("/process-meeting", h.Voice.ProcessMeeting)
			voice.GET("/api-key-status", h.Voice.APIKeyStatus)
		}

		catalyst := api.Group("/catalyst")
		{
			catalyst.POST("/process", h.Catalyst.Process)
			catalyst.POST("/export-notion", h.Catalyst.ExportNotion)
			catalyst.POST("/export-pdf", h.Catalyst.ExportPDF)
		}
		api.POST("/mermaid/generate", h.Catalyst.GenerateMermaid)

		calendar := api.Group("/calendar")
		{
			calendar.GET("/events", h.Calendar.Events)
			calendar.GET("/month", h.Calendar.Month)
		}

		api.GET("/audit/logs", h.Audit.GetAuditLogs)
	}
}
