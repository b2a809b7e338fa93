package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Base is the envelope for single-entity mutations.
type Base struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	ID      *uuid.UUID `json:"id"`
}

// Paginated is the envelope for every list endpoint. TotalCount is the
// size of the filtered set before paging, so callers can render pagers.
type Paginated[T any] struct {
	Success    bool   `json:"success"`
	Items      []T    `json:"items"`
	TotalCount int64  `json:"totalCount"`
	PageNumber int    `json:"pageNumber"`
	PageSize   int    `json:"pageSize"`
	TotalPages int    `json:"totalPages"`
	Message    string `json:"message,omitempty"`
}

// NewPaginated assembles the list envelope. totalPages rounds up.
func NewPaginated[T any](items []T, totalCount int64, pageNumber, pageSize int, message string) Paginated[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((totalCount + int64(pageSize) - 1) / int64(pageSize))
	}
	if items == nil {
		items = []T{}
	}
	return Paginated[T]{
		Success:    true,
		Items:      items,
		TotalCount: totalCount,
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalPages: totalPages,
		Message:    message,
	}
}

type errorBody struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// OK writes a mutation envelope.
func OK(c *gin.Context, status int, message string, id *uuid.UUID) {
	c.JSON(status, Base{
		Success: true,
		Message: message,
		ID:      id,
	})
}

// JSON writes a raw payload (single-entity reads return the DTO itself).
func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

// Error writes a failure envelope without field detail.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, errorBody{Success: false, Message: message})
}

// ValidationError writes a failure envelope carrying per-field messages.
func ValidationError(c *gin.Context, message string, fields map[string]string) {
	c.JSON(http.StatusBadRequest, errorBody{Success: false, Message: message, Errors: fields})
}
