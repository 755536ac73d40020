package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/catalyst/internal/application"
	"github.com/linskybing/catalyst/pkg/calendar"
	"github.com/linskybing/catalyst/pkg/response"
	"github.com/linskybing/catalyst/pkg/utils"
)

type CalendarHandler struct {
	svc *application.CalendarService
	now func() time.Time
}

func NewCalendarHandler(svc *application.CalendarService) *CalendarHandler {
	return &CalendarHandler{svc: svc, now: time.Now}
}

// Events godoc
// @Summary Ticket events grouped by day
// @Description A ticket with both dates on different days yields a start and an end event; on the same day a single event. A missing bound is filled from the month of the given one; with neither, the current month.
// @Tags calendar
// @Produce json
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day (YYYY-MM-DD)"
// @Param project_id query string false "Project ID"
// @Success 200 {array} calendar.Day
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /calendar/events [get]
func (h *CalendarHandler) Events(c *gin.Context) {
	from, hasFrom, err := utils.ParseQueryDate(c, "from")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid from, expected YYYY-MM-DD"})
		return
	}
	to, hasTo, err := utils.ParseQueryDate(c, "to")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid to, expected YYYY-MM-DD"})
		return
	}
	from, to = defaultRange(from, hasFrom, to, hasTo, h.now().UTC())

	days, err := h.svc.Events(c.Request.Context(), from, to, c.Query("project_id"))
	if err != nil {
		if errors.Is(err, application.ErrInvalidRange) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	if days == nil {
		days = []calendar.Day{}
	}
	c.JSON(http.StatusOK, days)
}

// Month godoc
// @Summary Month grid of ticket events
// @Tags calendar
// @Produce json
// @Param year query int false "Year, default current"
// @Param month query int false "Month 1-12, default current"
// @Param week_start query string false "First weekday of each row" Enums(sunday, monday)
// @Param project_id query string false "Project ID"
// @Success 200 {object} calendar.Month
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /calendar/month [get]
func (h *CalendarHandler) Month(c *gin.Context) {
	today := h.now().UTC()

	year, err := utils.ParseQueryIntParam(c, "year", today.Year())
	if err != nil || year < 1 || year > 9999 {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid year"})
		return
	}
	month, err := utils.ParseQueryIntParam(c, "month", int(today.Month()))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid month"})
		return
	}
	weekStart, err := parseWeekStart(c.Query("week_start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	grid, err := h.svc.Month(c.Request.Context(), year, time.Month(month), weekStart, c.Query("project_id"), today)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, grid)
}

// defaultRange fills a missing bound with the edge of the other bound's month.
func defaultRange(from time.Time, hasFrom bool, to time.Time, hasTo bool, today time.Time) (time.Time, time.Time) {
	switch {
	case hasFrom && hasTo:
	case hasFrom:
		to = monthStart(from).AddDate(0, 1, -1)
	case hasTo:
		from = monthStart(to)
	default:
		from = monthStart(today)
		to = from.AddDate(0, 1, -1)
	}
	return from, to
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func parseWeekStart(raw string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "sunday", "sun", "0":
		return time.Sunday, nil
	case "monday", "mon", "1":
		return time.Monday, nil
	}
	return 0, errors.New("week_start must be sunday or monday, got " + strconv.Quote(raw))
}
