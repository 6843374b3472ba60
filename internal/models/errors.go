package models

import (
	"errors"
)

// Not-found errors map to 404.
var (
	ErrItemNotFound        = errors.New("models: item not found")
	ErrUserNotFound        = errors.New("models: user not found")
	ErrParticipantNotFound = errors.New("models: participant not found")
)

// Conflict errors map to 409: the request is well-formed but the auction
// is in the wrong phase or the business rule forbids it.
var (
	ErrNotRecruiting     = errors.New("models: auction is not currently recruiting")
	ErrRecruitmentClosed = errors.New("models: recruitment period ended")
	ErrAlreadyJoined     = errors.New("models: already joined this auction")
	ErrSellerJoin        = errors.New("models: seller cannot join own auction")
	ErrAuctionNotActive  = errors.New("models: auction is not active")
	ErrAuctionEnded      = errors.New("models: auction ended")
	ErrNotParticipant    = errors.New("models: not a participant of this auction")
	ErrItemNotEditable   = errors.New("models: item can no longer be edited")
	ErrNotOwner          = errors.New("models: not the owner of this item")
)

// Invalid-argument errors map to 400.
var (
	ErrBidTooLow           = errors.New("models: bid must exceed current price")
	ErrInvalidTimeWindow   = errors.New("models: end time precedes recruitment end")
	ErrInsufficientBalance = errors.New("models: insufficient balance")
	ErrInvalidCredentials  = errors.New("models: invalid credentials")
	ErrDuplicateUsername   = errors.New("models: duplicate username")
	ErrDuplicateEmail      = errors.New("models: duplicate email")
)
