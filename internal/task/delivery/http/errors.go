package http

import (
	"errors"

	"lunchbox-ai/internal/task"
	pkgErrors "lunchbox-ai/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrEmptyInput):
		return pkgErrors.NewHTTPError(400, "task description is required")
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(404, "task not found")
	case errors.Is(err, task.ErrGenerationFailed):
		return pkgErrors.NewHTTPError(502, "AI providers are unavailable, try again shortly")
	default:
		return pkgErrors.NewHTTPError(500, "something went wrong")
	}
}
