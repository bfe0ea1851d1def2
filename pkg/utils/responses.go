package utils

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body for every non-2xx reply
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ResponseJSON writes JSON response with custom status code
func ResponseJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

// ------------- Success responses -------------

// returns 200 OK with the payload as-is
func ResponseSuccess(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusOK, data)
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, detail string) {
	ResponseJSON(w, http.StatusBadRequest, ErrorResponse{Detail: detail})
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, detail string) {
	ResponseJSON(w, http.StatusNotFound, ErrorResponse{Detail: detail})
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, detail string) {
	ResponseJSON(w, http.StatusInternalServerError, ErrorResponse{Detail: detail})
}
