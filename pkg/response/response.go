package response

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"inventory-rest-api/pkg/apierror"
)

// Response represents a standard API response.
type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination describes one page of a listing.
type Pagination struct {
	TotalOperations int64 `json:"totalOperations"`
	CurrentPage     int   `json:"currentPage"`
	TotalPages      int   `json:"totalPages"`
}

// JSON sends a JSON response with the given status code.
func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	write(w, statusCode, Response{Success: true, Data: data})
}

// Message sends a JSON response with a human-readable message alongside the data.
func Message(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	write(w, statusCode, Response{Success: true, Message: message, Data: data})
}

// Paginated sends a 200 response with pagination metadata.
func Paginated(w http.ResponseWriter, data interface{}, p Pagination) {
	write(w, http.StatusOK, Response{Success: true, Data: data, Pagination: &p})
}

func write(w http.ResponseWriter, statusCode int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}

// Error sends an error response. Errors that are not API errors are logged
// and answered with a generic 500 body.
func Error(w http.ResponseWriter, err error) {
	apiErr, ok := apierror.As(err)
	if !ok {
		slog.Error("unhandled error", slog.String("error", err.Error()))
		apiErr = apierror.InternalError("an unexpected error occurred")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.StatusCode)
	_, _ = w.Write(apiErr.ToJSON())
}

// Created sends a 201 Created response with the created resource.
func Created(w http.ResponseWriter, message string, data interface{}) {
	Message(w, http.StatusCreated, message, data)
}

// OK sends a 200 OK response.
func OK(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, data)
}
