package errors

import "fmt"

var (
	ErrInvalidArgument      = fmt.Errorf("invalid argument")
	ErrUnsupportedOperation = fmt.Errorf("unsupported operation")
	ErrInvalidOperation     = fmt.Errorf("invalid operation")
	ErrObserverPanic        = fmt.Errorf("observer panic")
	ErrInvalidPayload       = fmt.Errorf("invalid payload")
	ErrGuestNotFound        = fmt.Errorf("guest not found")
	ErrTableNotFound        = fmt.Errorf("table not found")
	ErrComponentNotFound    = fmt.Errorf("component not found at table")
	ErrNoFamilyGuests       = fmt.Errorf("no available guests for family")
	ErrDuplicateGuest       = fmt.Errorf("guest already registered")
	ErrAmbiguousGuest       = fmt.Errorf("several available guests share this name")
	ErrConstraintViolated   = fmt.Errorf("seating constraints violated")
	ErrUnknownCommand       = fmt.Errorf("unknown command")
)
