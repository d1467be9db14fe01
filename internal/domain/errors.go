package domain

import "errors"

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrInvalidProductID = errors.New("invalid product id")
	ErrEmailRequired    = errors.New("valid customer email required")
	ErrNameRequired     = errors.New("customer name required")
	ErrMessageRequired  = errors.New("message required")
	ErrInvalidSignature = errors.New("invalid payment signature")
	ErrGateway          = errors.New("payment gateway error")
	ErrShareLink        = errors.New("could not generate share link")
)
