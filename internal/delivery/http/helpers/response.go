package helpers

import (
	"encoding/json"
	"net/http"
)

// MessageResponse is the success body for signup and unregister requests.
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

// DetailResponse is the error body for all failed requests.
// swagger:model DetailResponse
type DetailResponse struct {
	Detail string `json:"detail"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes v into the response body.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteMessage writes a 200 response with a {"message": ...} body.
func WriteMessage(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusOK, MessageResponse{Message: message})
}

// WriteDetail writes an error response with a {"detail": ...} body.
func WriteDetail(w http.ResponseWriter, statusCode int, detail string) {
	WriteJSON(w, statusCode, DetailResponse{Detail: detail})
}
