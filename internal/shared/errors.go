package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Session state errors
	ErrStateNotFound   = fmt.Errorf("state key not found")
	ErrCorruptState    = fmt.Errorf("corrupt state payload")
	ErrResultNotFound  = fmt.Errorf("quiz result not found")
	ErrUnknownExercise = fmt.Errorf("unknown exercise")
	ErrUnknownLesson   = fmt.Errorf("unknown lesson")
	ErrQuizIncomplete  = fmt.Errorf("quiz not yet complete")

	// API and service errors
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")
	ErrArtistNotFound     = fmt.Errorf("artist not found")
	ErrTimeout            = fmt.Errorf("operation timed out")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
