package aggregators

import (
	"fmt"

	"event-insights/internal/models"
	"event-insights/internal/shared/svcerrors"
)

const (
	codeInternalCursorFailed = "AGG_9000"
)

// errInternalCursorFailed returns an error when the event cursor fails to
// produce the next event.
func errInternalCursorFailed(category models.EventCategory, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalCursorFailed, fmt.Errorf("%sCursorFailed: %w", category, cause))
}
