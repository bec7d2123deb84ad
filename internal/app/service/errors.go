package service

import "errors"

var (
	ErrInvalidToken        = errors.New("invalid token")
	ErrReceiverNotFound    = errors.New("receiver not found")
	ErrRequestNotFound     = errors.New("request not found")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrInvalidAmountStatus = errors.New("invalid amount status")
)
