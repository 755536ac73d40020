package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/catalyst/internal/application"
	"github.com/linskybing/catalyst/internal/domain/cycle"
	"github.com/linskybing/catalyst/internal/domain/label"
	"github.com/linskybing/catalyst/internal/domain/module"
	"github.com/linskybing/catalyst/pkg/response"
	"github.com/linskybing/catalyst/pkg/utils"
)

type LabelHandler struct {
	svc *application.LabelService
}

func NewLabelHandler(svc *application.LabelService) *LabelHandler {
	return &LabelHandler{svc: svc}
}

// ListLabels godoc
// @Summary List labels
// @Tags labels
// @Produce json
// @Param project_id query string false "Project ID"
// @Success 200 {array} label.Label
// @Failure 500 {object} response.ErrorResponse
// @Router /labels [get]
func (h *LabelHandler) ListLabels(c *gin.Context) {
	labels, err := h.svc.ListLabels(c.Request.Context(), c.Query("project_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	if labels == nil {
		labels = []label.Label{}
	}
	c.JSON(http.StatusOK, labels)
}

// GetLabel godoc
// @Summary Get label by ID
// @Tags labels
// @Produce json
// @Param id path string true "Label ID"
// @Success 200 {object} label.Label
// @Failure 404 {object} response.ErrorResponse
// @Router /labels/{id} [get]
func (h *LabelHandler) GetLabel(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid label id"})
		return
	}
	l, err := h.svc.GetLabel(c.Request.Context(), id)
	if err != nil {
		writeGroupingError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

// CreateLabel godoc
// @Summary Create a label
// @Tags labels
// @Accept json
// @Produce json
// @Param label body label.CreateLabelDTO true "Label"
// @Success 201 {object} label.Label
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /labels [post]
func (h *LabelHandler) CreateLabel(c *gin.Context) {
	var input label.CreateLabelDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	l, err := h.svc.CreateLabel(c.Request.Context(), input)
	if err != nil {
		writeGroupingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, l)
}

// UpdateLabel godoc
// @Summary Update label by ID
// @Tags labels
// @Accept json
// @Produce json
// @Param id path string true "Label ID"
// @Param label body label.UpdateLabelDTO true "Fields to change"
// @Success 200 {object} label.Label
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /labels/{id} [put]
func (h *LabelHandler) UpdateLabel(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid label id"})
		return
	}
	var input label.UpdateLabelDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	l, err := h.svc.UpdateLabel(c.Request.Context(), id, input)
	if err != nil {
		writeGroupingError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

// DeleteLabel godoc
// @Summary Delete label by ID
// @Description The label is removed from every ticket carrying it.
// @Tags labels
// @Param id path string true "Label ID"
// @Success 204 "No Content"
// @Failure 404 {object} response.ErrorResponse
// @Router /labels/{id} [delete]
func (h *LabelHandler) DeleteLabel(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid label id"})
		return
	}
	if err := h.svc.DeleteLabel(c.Request.Context(), id); err != nil {
		writeGroupingError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type CycleHandler struct {
	svc *application.CycleService
}

func NewCycleHandler(svc *application.CycleService) *CycleHandler {
	return &CycleHandler{svc: svc}
}

// ListCycles godoc
// @Summary List cycles
// @Tags cycles
// @Produce json
// @Param project_id query string false "Project ID"
// @Success 200 {array} cycle.Cycle
// @Failure 500 {object} response.ErrorResponse
// @Router /cycles [get]
func (h *CycleHandler) ListCycles(c *gin.Context) {
	cycles, err := h.svc.ListCycles(c.Request.Context(), c.Query("project_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	if cycles == nil {
		cycles = []cycle.Cycle{}
	}
	c.JSON(http.StatusOK, cycles)
}

// GetCycle godoc
// @Summary Get cycle by ID
// @Tags cycles
// @Produce json
// @Param id path string true "Cycle ID"
// @Success 200 {object} cycle.Cycle
// @Failure 404 {object} response.ErrorResponse
// @Router /cycles/{id} [get]
func (h *CycleHandler) GetCycle(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid cycle id"})
		return
	}
	cy, err := h.svc.GetCycle(c.Request.Context(), id)
	if err != nil {
		writeGroupingError(c, err)
		return
	}
	c.JSON(http.StatusOK, cy)
}

// CreateCycle godoc
// @Summary Create a cycle
// @Tags cycles
// @Accept json
// @Produce json
// @Param cycle body cycle.CreateCycleDTO true "Cycle"
// @Success 201 {object} cycle.Cycle
// @Failure 400 {object} response.ErrorResponse "Invalid body or end date before start date"
// @Failure 500 {object} response.ErrorResponse
// @Router /cycles [post]
func (h *CycleHandler) CreateCycle(c *gin.Context) {
	var input cycle.CreateCycleDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	cy, err := h.svc.CreateCycle(c.Request.Context(), input)
	if err != nil {
		writeGroupingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cy)
}

// UpdateCycle godoc
// @Summary Update cycle by ID
// @Tags cycles
// @Accept json
// @Produce json
// @Param id path string true "Cycle ID"
// @Param cycle body cycle.UpdateCycleDTO true "Fields to change"
// @Success 200 {object} cycle.Cycle
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /cycles/{id} [put]
func (h *CycleHandler) UpdateCycle(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid cycle id"})
		return
	}
	var input cycle.UpdateCycleDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	cy, err := h.svc.UpdateCycle(c.Request.Context(), id, input)
	if err != nil {
		writeGroupingError(c, err)
		return
	}
	c.JSON(http.StatusOK, cy)
}

// DeleteCycle godoc
// @Summary Delete cycle by ID
// @Description Tickets in the cycle are kept and detached.
// @Tags cycles
// @Param id path string true "Cycle ID"
// @Success 204 "No Content"
// @Failure 404 {object} response.ErrorResponse
// @Router /cycles/{id} [delete]
func (h *CycleHandler) DeleteCycle(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid cycle id"})
		return
	}
	if err := h.svc.DeleteCycle(c.Request.Context(), id); err != nil {
		writeGroupingError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type ModuleHandler struct {
	svc *application.ModuleService
}

func NewModuleHandler(svc *application.ModuleService) *ModuleHandler {
	return &ModuleHandler{svc: svc}
}

// ListModules godoc
// @Summary List modules
// @Tags modules
// @Produce json
// @Param project_id query string false "Project ID"
// @Success 200 {array} module.Module
// @Failure 500 {object} response.ErrorResponse
// @Router /modules [get]
func (h *ModuleHandler) ListModules(c *gin.Context) {
	modules, err := h.svc.ListModules(c.Request.Context(), c.Query("project_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	if modules == nil {
		modules = []module.Module{}
	}
	c.JSON(http.StatusOK, modules)
}

// GetModule godoc
// @Summary Get module by ID
// @Tags modules
// @Produce json
// @Param id path string true "Module ID"
// @Success 200 {object} module.Module
// @Failure 404 {object} response.ErrorResponse
// @Router /modules/{id} [get]
func (h *ModuleHandler) GetModule(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid module id"})
		return
	}
	m, err := h.svc.GetModule(c.Request.Context(), id)
	if err != nil {
		writeGroupingError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// CreateModule godoc
// @Summary Create a module
// @Tags modules
// @Accept json
// @Produce json
// @Param module body module.CreateModuleDTO true "Module"
// @Success 201 {object} module.Module
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /modules [post]
func (h *ModuleHandler) CreateModule(c *gin.Context) {
	var input module.CreateModuleDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	m, err := h.svc.CreateModule(c.Request.Context(), input)
	if err != nil {
		writeGroupingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// UpdateModule godoc
// @Summary Update module by ID
// @Tags modules
// @Accept json
// @Produce json
// @Param id path string true "Module ID"
// @Param module body module.UpdateModuleDTO true "Fields to change"
// @Success 200 {object} module.Module
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /modules/{id} [put]
func (h *ModuleHandler) UpdateModule(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid module id"})
		return
	}
	var input module.UpdateModuleDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	m, err := h.svc.UpdateModule(c.Request.Context(), id, input)
	if err != nil {
		writeGroupingError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// DeleteModule godoc
// @Summary Delete module by ID
// @Description Tickets in the module are kept and detached.
// @Tags modules
// @Param id path string true "Module ID"
// @Success 204 "No Content"
// @Failure 404 {object} response.ErrorResponse
// @Router /modules/{id} [delete]
func (h *ModuleHandler) DeleteModule(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid module id"})
		return
	}
	if err := h.svc.DeleteModule(c.Request.Context(), id); err != nil {
		writeGroupingError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func writeGroupingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrLabelNotFound),
		errors.Is(err, application.ErrCycleNotFound),
		errors.Is(err, application.ErrModuleNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrCycleDateOrder):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}
