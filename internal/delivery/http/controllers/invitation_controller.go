package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sakeenah/internal/delivery/http/helpers"
	"sakeenah/internal/domain"
)

// InvitationSuccessResponse is the success envelope for GET /api/invitation/{uid}.
type InvitationSuccessResponse struct {
	Success bool               `json:"success"`
	Data    *domain.Invitation `json:"data"`
}

type InvitationController struct {
	Logger  *slog.Logger
	Service domain.InvitationService
}

func NewInvitationController(logger *slog.Logger, svc domain.InvitationService) *InvitationController {
	return &InvitationController{
		Logger:  logger,
		Service: svc,
	}
}

// GetInvitation godoc
// @Summary Get an invitation
// @Description Returns the wedding details, agenda, audio and gift accounts of one invitation.
// @Tags invitations
// @Produce json
// @Param uid path string true "Invitation UID"
// @Success 200 {object} controllers.InvitationSuccessResponse
// @Failure 404 {object} helpers.APIResponse "Invitation not found"
// @Failure 500 {object} helpers.APIResponse "Internal server error"
// @Router /invitation/{uid} [get]
func (c *InvitationController) GetInvitation(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")
	inv, err := c.Service.GetInvitation(r.Context(), uid)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.MsgInvitationMissing)
			return
		}
		c.internalError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, inv)
}

func (c *InvitationController) internalError(w http.ResponseWriter, r *http.Request, err error) {
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.MsgInternalError)
}
