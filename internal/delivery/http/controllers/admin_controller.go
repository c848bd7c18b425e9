package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"sakeenah/internal/delivery/http/helpers"
	"sakeenah/internal/domain"
)

// AdminTokenRequest is the request body for POST /api/admin/token.
type AdminTokenRequest struct {
	Password string `json:"password" validate:"required,max=256"`
}

// AdminTokenSuccessResponse is the success envelope for POST /api/admin/token.
type AdminTokenSuccessResponse struct {
	Success bool               `json:"success"`
	Data    *domain.AdminToken `json:"data"`
}

type AdminController struct {
	Logger  *slog.Logger
	Service domain.AdminService
}

func NewAdminController(logger *slog.Logger, svc domain.AdminService) *AdminController {
	return &AdminController{
		Logger:  logger,
		Service: svc,
	}
}

// IssueToken godoc
// @Summary Get an admin token
// @Description Exchanges the admin password for a bearer token used to moderate wishes.
// @Tags admin
// @Accept json
// @Produce json
// @Param credentials body AdminTokenRequest true "Admin password"
// @Success 200 {object} controllers.AdminTokenSuccessResponse
// @Failure 400 {object} helpers.APIResponse "Invalid request body"
// @Failure 401 {object} helpers.APIResponse "Unauthorized"
// @Failure 500 {object} helpers.APIResponse "Internal server error"
// @Router /admin/token [post]
func (c *AdminController) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req AdminTokenRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	tok, err := c.Service.Login(r.Context(), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrInvalidInput):
			helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.MsgUnauthorized)
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.MsgInternalError)
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, tok)
}
