package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/brewfinder/backend/internal/filter"
	"github.com/pageza/brewfinder/backend/internal/service"
	"github.com/pageza/brewfinder/backend/internal/types"
)

// APIError is an error with a known HTTP rendering
type APIError struct {
	Status  int
	Code    string
	Message string
	Details []types.ErrorDetail
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func invalidParameter(field, message string) *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Code:    types.CodeInvalidParameter,
		Message: message,
		Details: []types.ErrorDetail{{Field: field, Message: message}},
	}
}

// toAPIError maps domain errors onto their HTTP form. Unknown errors
// return nil.
func toAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var verr *filter.ValidationError
	if errors.As(err, &verr) {
		details := make([]types.ErrorDetail, len(verr.Fields))
		for i, f := range verr.Fields {
			details[i] = types.ErrorDetail{Field: f.Field, Message: f.Message}
		}
		return &APIError{
			Status:  http.StatusBadRequest,
			Code:    types.CodeInvalidParameters,
			Message: "Invalid search parameters",
			Details: details,
		}
	}

	switch {
	case errors.Is(err, service.ErrRecipeNotFound):
		return &APIError{Status: http.StatusNotFound, Code: types.CodeNotFound, Message: "Recipe not found"}
	case errors.Is(err, service.ErrRecipeNotPublished):
		return &APIError{Status: http.StatusForbidden, Code: types.CodeNotPublished, Message: "Recipe is not published"}
	}
	return nil
}

// respondError writes the JSON error body for err. Errors without a known
// mapping are logged and collapsed into a generic 500.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	reqID := requestid.Get(c)

	apiErr := toAPIError(err)
	if apiErr == nil {
		log.Error("request failed",
			zap.String("request_id", reqID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		apiErr = &APIError{
			Status:  http.StatusInternalServerError,
			Code:    types.CodeInternal,
			Message: "An unexpected error occurred",
		}
	}

	c.AbortWithStatusJSON(apiErr.Status, types.NewErrorResponse(apiErr.Code, apiErr.Message, reqID, apiErr.Details...))
}
