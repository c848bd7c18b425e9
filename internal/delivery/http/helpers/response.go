package helpers

import (
	"encoding/json"
	"net/http"
)

// Error messages returned to API clients.
const (
	MsgInvalidBody       = "Invalid request body"
	MsgUnauthorized      = "Unauthorized"
	MsgTooManyRequests   = "Too many requests"
	MsgInternalError     = "Internal server error"
	MsgInvitationMissing = "Invitation not found"
	MsgWishMissing       = "Wish not found"
	MsgWishRequired      = "Name and message are required"
)

// APIResponse is the envelope for all API responses.
// On success: Success is true and Data or Message is set. On error: Success is
// false and Error carries a human-readable message.
// swagger:model APIResponse
type APIResponse struct {
	Success    bool            `json:"success"`
	Data       any             `json:"data,omitempty"`
	Error      string          `json:"error,omitempty"`
	Message    string          `json:"message,omitempty"`
	Pagination *PaginationMeta `json:"pagination,omitempty"`
}

// WriteJSONSuccess writes statusCode and an envelope carrying data.
func WriteJSONSuccess(w http.ResponseWriter, statusCode int, data any) {
	writeJSON(w, statusCode, APIResponse{Success: true, Data: data})
}

// WriteJSONPage writes statusCode and an envelope carrying one page of data.
func WriteJSONPage(w http.ResponseWriter, statusCode int, data any, meta PaginationMeta) {
	writeJSON(w, statusCode, APIResponse{Success: true, Data: data, Pagination: &meta})
}

// WriteJSONMessage writes statusCode and a successful envelope with only a message.
func WriteJSONMessage(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, APIResponse{Success: true, Message: message})
}

// WriteJSONError writes statusCode and a failed envelope with message as the error.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, APIResponse{Success: false, Error: message})
}

func writeJSON(w http.ResponseWriter, statusCode int, body APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
