package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorCode defines error codes for programmatic handling
type ErrorCode string

const (
	ErrCodeBadRequest ErrorCode = "BAD_REQUEST"
	ErrCodeNotFound   ErrorCode = "NOT_FOUND"
)

// ErrorResponse is the error body of every failed request
type ErrorResponse struct {
	Error struct {
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
	} `json:"error"`
}

// DataResponse wraps a single object response
type DataResponse[T any] struct {
	Data T `json:"data"`
}

// ListResponse wraps a collection with optional pagination
type ListResponse[T any, P any] struct {
	Data       []T `json:"data"`
	Pagination *P  `json:"pagination,omitempty"`
}

func respondData[T any](c *gin.Context, data T) {
	c.JSON(http.StatusOK, DataResponse[T]{Data: data})
}

func respondList[T any, P any](c *gin.Context, data []T, pagination *P) {
	// empty array instead of null
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, ListResponse[T, P]{Data: data, Pagination: pagination})
}

func respondError(c *gin.Context, status int, code ErrorCode, message string) {
	resp := ErrorResponse{}
	resp.Error.Code = code
	resp.Error.Message = message
	c.JSON(status, resp)
}

func respondBadRequest(c *gin.Context, message string) {
	respondError(c, http.StatusBadRequest, ErrCodeBadRequest, message)
}

func respondNotFound(c *gin.Context, message string) {
	respondError(c, http.StatusNotFound, ErrCodeNotFound, message)
}
