package controllers

import (
	"net/http"

	"sakeenah/internal/delivery/http/helpers"
)

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} helpers.APIResponse "Sakeenah API is running"
// @Router /health [get]
func Health(w http.ResponseWriter, _ *http.Request) {
	helpers.WriteJSONMessage(w, http.StatusOK, "Sakeenah API is running")
}
