package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/venha/invitations-api/internal/core/ports"
)

// RSVPHandler serves the guest-facing RSVP endpoints. Guests are identified
// by event slug plus WhatsApp number; no login is involved.
type RSVPHandler struct {
	service ports.RSVPService
}

func NewRSVPHandler(service ports.RSVPService) *RSVPHandler {
	return &RSVPHandler{service: service}
}

// Create handles POST /api/attendees/rsvp.
//
// @Summary      Confirm attendance
// @Tags         attendees
// @Accept       json
// @Produce      json
// @Param        body  body      createRSVPRequest  true  "RSVP"
// @Success      201   {object}  createRSVPResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /api/attendees/rsvp [post]
func (h *RSVPHandler) Create(c echo.Context) error {
	var req createRSVPRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	attendee, err := h.service.CreateRSVP(c.Request().Context(), toCreateRSVPInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createRSVPResponse{
		Message:    "RSVP successful",
		AttendeeID: attendee.ID,
	})
}

// Find handles POST /api/attendees/find.
//
// @Summary      Look up an RSVP by WhatsApp number
// @Tags         attendees
// @Accept       json
// @Produce      json
// @Param        body  body      rsvpKeyRequest  true  "Event slug and WhatsApp number"
// @Success      200   {object}  findRSVPResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/attendees/find [post]
func (h *RSVPHandler) Find(c echo.Context) error {
	var req rsvpKeyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	detail, err := h.service.FindRSVP(c.Request().Context(), req.key())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toFindRSVPResponse(detail))
}

// Modify handles PUT /api/attendees/modify.
//
// @Summary      Change an RSVP
// @Description  Reactivates a cancelled RSVP. Requires the event to allow modifications.
// @Tags         attendees
// @Accept       json
// @Produce      json
// @Param        body  body      modifyRSVPRequest  true  "Fields to change"
// @Success      200   {object}  modifyRSVPResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/attendees/modify [put]
func (h *RSVPHandler) Modify(c echo.Context) error {
	var req modifyRSVPRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	attendee, err := h.service.ModifyRSVP(c.Request().Context(), ports.ModifyRSVPInput{
		RSVPKey:     req.key(),
		Name:        req.Name,
		NumAdults:   req.NumAdults,
		NumChildren: req.NumChildren,
		Comments:    req.Comments,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, modifyRSVPResponse{
		Message:  "RSVP updated successfully",
		Attendee: toAttendeeResponse(attendee),
	})
}

// Cancel handles POST /api/attendees/cancel.
//
// @Summary      Cancel an RSVP
// @Tags         attendees
// @Accept       json
// @Produce      json
// @Param        body  body      cancelRSVPRequest  true  "RSVP to cancel and optional reason"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/attendees/cancel [post]
func (h *RSVPHandler) Cancel(c echo.Context) error {
	var req cancelRSVPRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.service.CancelRSVP(c.Request().Context(), ports.CancelRSVPInput{
		RSVPKey: req.key(),
		Reason:  req.Reason,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "RSVP cancelled successfully"})
}
