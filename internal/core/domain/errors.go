package domain

import "errors"

var (
	ErrIdentityNotFound    = errors.New("identity not found")
	ErrUnauthenticated     = errors.New("authentication required")
	ErrForbidden           = errors.New("access forbidden")
	ErrLabTestNotFound     = errors.New("lab test not found")
	ErrInvalidLabTestState = errors.New("invalid lab test state")
	ErrEmptyResult         = errors.New("please enter test results")
)
