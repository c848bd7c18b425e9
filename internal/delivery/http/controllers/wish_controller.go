package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"sakeenah/internal/delivery/http/helpers"
	"sakeenah/internal/domain"
)

// CreateWishRequest is the request body for POST /api/{uid}/wishes.
type CreateWishRequest struct {
	Name       string `json:"name" validate:"max=100"`
	Message    string `json:"message" validate:"max=1000"`
	Attendance string `json:"attendance" validate:"max=32"`
}

// Validate implements Validator. Name and message must be non-blank.
func (c CreateWishRequest) Validate() []string {
	if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Message) == "" {
		return []string{helpers.MsgWishRequired}
	}
	return nil
}

// ListWishesSuccessResponse is the success envelope for GET /api/{uid}/wishes.
type ListWishesSuccessResponse struct {
	Success    bool                   `json:"success"`
	Data       []*domain.Wish         `json:"data"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// WishSuccessResponse is the success envelope for POST /api/{uid}/wishes (201).
type WishSuccessResponse struct {
	Success bool         `json:"success"`
	Data    *domain.Wish `json:"data"`
}

// StatsSuccessResponse is the success envelope for GET /api/{uid}/stats.
type StatsSuccessResponse struct {
	Success bool              `json:"success"`
	Data    *domain.WishStats `json:"data"`
}

type WishController struct {
	Logger  *slog.Logger
	Service domain.WishService
}

func NewWishController(logger *slog.Logger, svc domain.WishService) *WishController {
	return &WishController{
		Logger:  logger,
		Service: svc,
	}
}

// ListWishes godoc
// @Summary List wishes
// @Description Returns wishes for an invitation, newest first.
// @Tags wishes
// @Produce json
// @Param uid path string true "Invitation UID"
// @Param limit query int false "Page size (default 50, max 200)"
// @Param offset query int false "Items to skip (default 0)"
// @Success 200 {object} controllers.ListWishesSuccessResponse
// @Failure 404 {object} helpers.APIResponse "Invitation not found"
// @Failure 500 {object} helpers.APIResponse "Internal server error"
// @Router /{uid}/wishes [get]
func (c *WishController) ListWishes(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")
	params := helpers.ParsePagination(r)
	wishes, total, err := c.Service.ListWishes(r.Context(), uid, params)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.MsgInvitationMissing)
			return
		}
		c.internalError(w, r, err)
		return
	}
	helpers.WriteJSONPage(w, http.StatusOK, wishes, helpers.NewPaginationMeta(params, total))
}

// CreateWish godoc
// @Summary Submit a wish
// @Description Stores a guest wish with an RSVP answer. Unknown attendance values become MAYBE.
// @Tags wishes
// @Accept json
// @Produce json
// @Param uid path string true "Invitation UID"
// @Param wish body CreateWishRequest true "Wish"
// @Success 201 {object} controllers.WishSuccessResponse
// @Failure 400 {object} helpers.APIResponse "Name and message are required"
// @Failure 404 {object} helpers.APIResponse "Invitation not found"
// @Failure 429 {object} helpers.APIResponse "Too many requests"
// @Failure 500 {object} helpers.APIResponse "Internal server error"
// @Router /{uid}/wishes [post]
func (c *WishController) CreateWish(w http.ResponseWriter, r *http.Request) {
	var req CreateWishRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	uid := chi.URLParam(r, "uid")
	wish, err := c.Service.CreateWish(r.Context(), uid, domain.NewWishInput{
		Name:       req.Name,
		Message:    req.Message,
		Attendance: req.Attendance,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.MsgWishRequired)
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.MsgInvitationMissing)
		default:
			c.internalError(w, r, err)
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, wish)
}

// DeleteWish godoc
// @Summary Delete a wish
// @Description Removes one wish. Requires an admin token from POST /api/admin/token.
// @Tags wishes
// @Produce json
// @Security BearerAuth
// @Param uid path string true "Invitation UID"
// @Param id path string true "Wish ID"
// @Success 200 {object} helpers.APIResponse "Wish deleted"
// @Failure 401 {object} helpers.APIResponse "Unauthorized"
// @Failure 404 {object} helpers.APIResponse "Wish not found"
// @Failure 500 {object} helpers.APIResponse "Internal server error"
// @Router /{uid}/wishes/{id} [delete]
func (c *WishController) DeleteWish(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")
	id := chi.URLParam(r, "id")
	if err := c.Service.DeleteWish(r.Context(), uid, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.MsgWishMissing)
			return
		}
		c.internalError(w, r, err)
		return
	}
	helpers.WriteJSONMessage(w, http.StatusOK, "Wish deleted")
}

// GetStats godoc
// @Summary Attendance statistics
// @Description Counts RSVP answers for an invitation.
// @Tags wishes
// @Produce json
// @Param uid path string true "Invitation UID"
// @Success 200 {object} controllers.StatsSuccessResponse
// @Failure 500 {object} helpers.APIResponse "Internal server error"
// @Router /{uid}/stats [get]
func (c *WishController) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.Service.Stats(r.Context(), chi.URLParam(r, "uid"))
	if err != nil {
		c.internalError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, stats)
}

func (c *WishController) internalError(w http.ResponseWriter, r *http.Request, err error) {
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.MsgInternalError)
}
