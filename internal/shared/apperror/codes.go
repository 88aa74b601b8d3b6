package apperror

const (
	// Client errors (4xx)
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeForbidden        = "FORBIDDEN"
	CodeNotFound         = "NOT_FOUND"
	CodeConflict         = "CONFLICT"

	// Server errors (5xx)
	CodeFetchFailed   = "FETCH_FAILED"
	CodeInternalError = "INTERNAL_ERROR"
)
