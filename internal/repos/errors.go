package repos

import "errors"

var (
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrBadOrderStatus    = errors.New("unknown order status")
)
