package pipelines

import (
	"fmt"

	"event-insights/internal/shared/svcerrors"
)

const (
	codeNoInputFiles           = "PIP_1000"
	codeInternalTimescanFailed = "PIP_9000"
)

// errNoInputFiles returns an error when neither event directory yields a
// single input file.
func errNoInputFiles() *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeNoInputFiles, "no input event files", nil)
}

// errInternalTimescanFailed returns an error when the raw timestamp scan of
// an input file fails.
func errInternalTimescanFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalTimescanFailed, fmt.Errorf("timescanFailed: %w", cause))
}
