package services

import "errors"

var (
	ErrUnauthorized      = errors.New("actor is not permitted to perform this operation")
	ErrInvalidState      = errors.New("operation not allowed in the gig's current state")
	ErrAlreadyApplied    = errors.New("student has already applied to this gig")
	ErrAlreadyDecided    = errors.New("applicant decision already made")
	ErrAlreadyReviewed   = errors.New("review already submitted for this gig")
	ErrInvalidRating     = errors.New("rating must be an integer between 1 and 5")
	ErrGigNotFound       = errors.New("gig not found")
	ErrApplicantNotFound = errors.New("applicant not found")
	ErrReviewNotFound    = errors.New("review not found")
	ErrConflict          = errors.New("record was modified concurrently, retry")
	ErrInvalidCurrency   = errors.New("currency is not supported")

	ErrUserNotFound        = errors.New("user not found")
	ErrIncorrectPassword   = errors.New("old password is incorrect")
	ErrMissingOldPassword  = errors.New("old password is required to change password")
	ErrPasswordHashFailure = errors.New("failed to hash new password")
	ErrUsernameTaken       = errors.New("username already taken")
)

// GatewayError carries the provider's failure code and reason for
// display; the gig is left untouched when one is returned.
type GatewayError struct {
	Code   string
	Reason string
}

func (e *GatewayError) Error() string {
	if e.Reason == "" {
		return "payment gateway error " + e.Code
	}
	return "payment gateway error " + e.Code + ": " + e.Reason
}
