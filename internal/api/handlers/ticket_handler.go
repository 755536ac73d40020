package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/catalyst/internal/application"
	"github.com/linskybing/catalyst/internal/domain/ticket"
	"github.com/linskybing/catalyst/pkg/response"
	"github.com/linskybing/catalyst/pkg/utils"
)

type TicketHandler struct {
	svc *application.TicketService
}

func NewTicketHandler(svc *application.TicketService) *TicketHandler {
	return &TicketHandler{svc: svc}
}

// ListTickets godoc
// @Summary List tickets
// @Description Filters combine; search matches title, summary and assignee case-insensitively.
// @Tags tickets
// @Produce json
// @Param project_id query string false "Project ID"
// @Param status query string false "Status" Enums(open, in_progress, resolved, closed)
// @Param priority query string false "Priority" Enums(urgent, high, medium, low, none)
// @Param assignee_id query string false "Assignee user ID"
// @Param cycle_id query string false "Cycle ID"
// @Param module_id query string false "Module ID"
// @Param label_id query string false "Label ID"
// @Param parent_ticket_id query string false "Parent ticket ID"
// @Param search query string false "Free-text search"
// @Success 200 {object} ticket.ListResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /tickets [get]
func (h *TicketHandler) ListTickets(c *gin.Context) {
	var filter ticket.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	result, err := h.svc.ListTickets(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetTicket godoc
// @Summary Get ticket by ID
// @Tags tickets
// @Produce json
// @Param id path string true "Ticket ID"
// @Success 200 {object} ticket.Ticket
// @Failure 400 {object} response.ErrorResponse "Invalid ticket id"
// @Failure 404 {object} response.ErrorResponse "Ticket not found"
// @Failure 500 {object} response.ErrorResponse
// @Router /tickets/{id} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid ticket id"})
		return
	}
	t, err := h.svc.GetTicket(c.Request.Context(), id)
	if err != nil {
		writeTicketError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// CreateTicket godoc
// @Summary Create a ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Param ticket body ticket.CreateTicketDTO true "Ticket"
// @Success 201 {object} ticket.Ticket
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var input ticket.CreateTicketDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	t, err := h.svc.CreateTicket(c.Request.Context(), input)
	if err != nil {
		writeTicketError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// UpdateTicket godoc
// @Summary Update ticket by ID
// @Description Only the fields present in the body change.
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID"
// @Param ticket body ticket.UpdateTicketDTO true "Fields to change"
// @Success 200 {object} ticket.Ticket
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Ticket not found"
// @Failure 500 {object} response.ErrorResponse
// @Router /tickets/{id} [put]
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid ticket id"})
		return
	}
	var input ticket.UpdateTicketDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	t, err := h.svc.UpdateTicket(c.Request.Context(), id, input)
	if err != nil {
		writeTicketError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// DeleteTicket godoc
// @Summary Delete ticket by ID
// @Description Sub-tickets are deleted with their parent.
// @Tags tickets
// @Param id path string true "Ticket ID"
// @Success 204 "No Content"
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Ticket not found"
// @Failure 500 {object} response.ErrorResponse
// @Router /tickets/{id} [delete]
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid ticket id"})
		return
	}
	if err := h.svc.DeleteTicket(c.Request.Context(), id); err != nil {
		writeTicketError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func writeTicketError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrTicketNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "ticket not found"})
	case errors.Is(err, application.ErrSelfParent):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}
