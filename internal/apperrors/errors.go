package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrRateFetch indicates that live exchange rates could not be retrieved.
// Callers above the exchange rate service never see it; the service absorbs it
// into a fallback snapshot.
var ErrRateFetch = errors.New("exchange rate fetch failed")
