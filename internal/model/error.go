package model

import "errors"

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// ErrorKind classifies a domain error; handlers map kinds to HTTP statuses.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindAuth
	KindForbidden
	KindNotFound
	KindConflict
	KindWindowExpired
	KindPersistence
)

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON       = "INVALID_JSON"
	ErrCodeMissingField      = "MISSING_FIELD"
	ErrCodeInvalidCoupon     = "INVALID_COUPON"
	ErrCodeProductNotFound   = "PRODUCT_NOT_FOUND"
	ErrCodeProductExists     = "PRODUCT_EXISTS"
	ErrCodeProductInUse      = "PRODUCT_IN_USE"
	ErrCodeInvalidQuantity   = "INVALID_QUANTITY"
	ErrCodeEmptyCart         = "EMPTY_CART"
	ErrCodeNotInCart         = "NOT_IN_CART"
	ErrCodeOrderNotFound     = "ORDER_NOT_FOUND"
	ErrCodeAppointmentAbsent = "APPOINTMENT_NOT_FOUND"
	ErrCodeEditWindowClosed  = "EDIT_WINDOW_CLOSED"
	ErrCodeInvalidStep       = "INVALID_STEP"
	ErrCodeNotConfirmation   = "NOT_AT_CONFIRMATION"
	ErrCodeAlreadySubmitted  = "ALREADY_SUBMITTED"
	ErrCodeInvalidRating     = "INVALID_RATING"
	ErrCodeReviewExists      = "REVIEW_EXISTS"
	ErrCodeWishlistExists    = "ALREADY_IN_WISHLIST"
	ErrCodeNotInWishlist     = "NOT_IN_WISHLIST"
	ErrCodeUserExists        = "USER_EXISTS"
	ErrCodeInvalidLogin      = "INVALID_CREDENTIALS"
	ErrCodeUnauthorised      = "UNAUTHORIZED"
	ErrCodeForbidden         = "FORBIDDEN"
	ErrCodePersistence       = "PERSISTENCE_FAILED"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

// DomainError is a business-rule failure that callers can inspect with
// errors.Is (by code) and errors.As (by kind).
type DomainError struct {
	Kind    ErrorKind
	Code    string
	Message string
	// Field names the offending input for validation errors.
	Field string
	Err   error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a DomainError with the same code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error
func NewDomainError(kind ErrorKind, code, message string) *DomainError {
	return &DomainError{
		Kind:    kind,
		Code:    code,
		Message: message,
	}
}

// NewValidationError reports a missing or invalid input field.
func NewValidationError(field, message string) *DomainError {
	return &DomainError{
		Kind:    KindValidation,
		Code:    ErrCodeMissingField,
		Message: message,
		Field:   field,
	}
}

// NewPersistenceError wraps a failed write so callers can fall back.
func NewPersistenceError(message string, err error) *DomainError {
	return &DomainError{
		Kind:    KindPersistence,
		Code:    ErrCodePersistence,
		Message: message,
		Err:     err,
	}
}

// KindOf returns the kind of the first DomainError in err's chain.
func KindOf(err error) ErrorKind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// Common domain errors
var (
	ErrInvalidCoupon       = NewDomainError(KindValidation, ErrCodeInvalidCoupon, "Invalid coupon code. Try again.")
	ErrProductNotFound     = NewDomainError(KindNotFound, ErrCodeProductNotFound, "Product not found")
	ErrProductExists       = NewDomainError(KindConflict, ErrCodeProductExists, "Product already exists")
	ErrProductInUse        = NewDomainError(KindConflict, ErrCodeProductInUse, "Product is referenced by existing orders")
	ErrInvalidQuantity     = NewDomainError(KindValidation, ErrCodeInvalidQuantity, "Quantity must be between 1 and 10")
	ErrEmptyCart           = NewDomainError(KindValidation, ErrCodeEmptyCart, "Cart is empty")
	ErrNotInCart           = NewDomainError(KindNotFound, ErrCodeNotInCart, "Product is not in the cart")
	ErrOrderNotFound       = NewDomainError(KindNotFound, ErrCodeOrderNotFound, "Order not found")
	ErrAppointmentNotFound = NewDomainError(KindNotFound, ErrCodeAppointmentAbsent, "Appointment not found")
	ErrEditWindowClosed    = NewDomainError(KindWindowExpired, ErrCodeEditWindowClosed, "Appointment can only be edited within 30 minutes of booking")
	ErrInvalidStep         = NewDomainError(KindValidation, ErrCodeInvalidStep, "Booking step must be between 1 and 4")
	ErrNotAtConfirmation   = NewDomainError(KindValidation, ErrCodeNotConfirmation, "Appointment can only be submitted from the confirmation step")
	ErrAlreadySubmitted    = NewDomainError(KindValidation, ErrCodeAlreadySubmitted, "Appointment already submitted. Start a new booking to make changes")
	ErrInvalidRating       = NewDomainError(KindValidation, ErrCodeInvalidRating, "Rating must be between 1 and 5")
	ErrReviewExists        = NewDomainError(KindConflict, ErrCodeReviewExists, "You have already reviewed this product")
	ErrWishlistExists      = NewDomainError(KindConflict, ErrCodeWishlistExists, "Product already in wishlist")
	ErrNotInWishlist       = NewDomainError(KindNotFound, ErrCodeNotInWishlist, "Item not found in wishlist")
	ErrUserExists          = NewDomainError(KindConflict, ErrCodeUserExists, "User already exists")
	ErrInvalidCredentials  = NewDomainError(KindAuth, ErrCodeInvalidLogin, "Invalid email or password")
	ErrUnauthorised        = NewDomainError(KindAuth, ErrCodeUnauthorised, "Unauthorized")
	ErrForbidden           = NewDomainError(KindForbidden, ErrCodeForbidden, "Forbidden")
)
