package service

import "errors"

var (
	// ErrInvalidClientID is returned when client ID is empty or unknown on create.
	ErrInvalidClientID = errors.New("invalid client id")

	// ErrInvalidFacilityID is returned when facility ID is empty.
	ErrInvalidFacilityID = errors.New("invalid facility id")

	// ErrInvalidBookingID is returned when booking ID is empty.
	ErrInvalidBookingID = errors.New("invalid booking id")

	// ErrInvalidPaymentID is returned when payment ID is empty.
	ErrInvalidPaymentID = errors.New("invalid payment id")

	// ErrInvalidStartTime is returned when a booking start time is missing.
	ErrInvalidStartTime = errors.New("invalid start time")

	// ErrInvalidPaymentAmount is returned when payment amount is not positive.
	ErrInvalidPaymentAmount = errors.New("invalid payment amount")

	// ErrInvalidPaymentType is returned when payment type is not deposit, final or full.
	ErrInvalidPaymentType = errors.New("invalid payment type")

	// ErrInvalidPaymentMethod is returned when payment method is unknown.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrSlotUnavailable is returned when the requested facility slot is already held.
	ErrSlotUnavailable = errors.New("facility slot is already held")

	// ErrPaymentAlreadyConfirmed is returned when confirming a payment twice.
	ErrPaymentAlreadyConfirmed = errors.New("payment already confirmed")

	// ErrBookingBusy is returned when the per-booking confirmation lock is held elsewhere.
	ErrBookingBusy = errors.New("booking is being updated, retry")

	// ErrInactiveFacility is returned when booking an inactive facility.
	ErrInactiveFacility = errors.New("facility is not active")
)
