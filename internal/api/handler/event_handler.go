package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/venha/invitations-api/internal/core/ports"
)

// EventHandler serves the host's event management endpoints and the public
// invitation page.
type EventHandler struct {
	service ports.EventService
}

func NewEventHandler(service ports.EventService) *EventHandler {
	return &EventHandler{service: service}
}

// Create handles POST /api/events.
//
// @Summary      Create an event
// @Description  Persists the event under a fresh slug, then geocodes its address. A geocoding miss leaves latitude and longitude null.
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEventRequest  true  "Event details"
// @Success      201   {object}  eventResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/events [post]
func (h *EventHandler) Create(c echo.Context) error {
	hostID, err := ctxHostID(c)
	if err != nil {
		return err
	}

	var req createEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in, err := toCreateEventInput(req, hostID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "event_date must match the format 2006-01-02")
	}

	event, err := h.service.CreateEvent(c.Request().Context(), in)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toEventResponse(event))
}

// Get handles GET /api/events/:slug.
//
// @Summary      Get an event by slug
// @Tags         events
// @Produce      json
// @Param        slug  path      string  true  "Event slug"
// @Success      200   {object}  eventResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/events/{slug} [get]
func (h *EventHandler) Get(c echo.Context) error {
	event, err := h.service.GetEvent(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEventResponse(event))
}

// List handles GET /api/events.
//
// @Summary      List the host's events
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   eventResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/events [get]
func (h *EventHandler) List(c echo.Context) error {
	hostID, err := ctxHostID(c)
	if err != nil {
		return err
	}

	events, err := h.service.ListHostEvents(c.Request().Context(), hostID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEventResponses(events))
}

// Update handles PUT /api/events/:slug.
//
// @Summary      Update an event
// @Description  Partial update. Changing address_full geocodes the new address.
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        slug  path      string              true  "Event slug"
// @Param        body  body      updateEventRequest  true  "Fields to change"
// @Success      200   {object}  eventResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/events/{slug} [put]
func (h *EventHandler) Update(c echo.Context) error {
	hostID, err := ctxHostID(c)
	if err != nil {
		return err
	}

	var req updateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in, err := toUpdateEventInput(req, hostID, c.Param("slug"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "event_date must match the format 2006-01-02")
	}

	event, err := h.service.UpdateEvent(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEventResponse(event))
}

// Attendees handles GET /api/events/:slug/attendees.
//
// @Summary      Guest list with confirmed totals
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        slug  path      string  true  "Event slug"
// @Success      200   {object}  guestListResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/events/{slug}/attendees [get]
func (h *EventHandler) Attendees(c echo.Context) error {
	hostID, err := ctxHostID(c)
	if err != nil {
		return err
	}

	list, err := h.service.GuestList(c.Request().Context(), hostID, c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toGuestListResponse(list))
}
