package request

import "payu_bridge/internal/domain/entities"

// PayUOrderRequest is the body Ecwid posts to /payu.
//
// Order stays nil when the field is absent or null so the use case can tell
// "no order" apart from an empty one.
type PayUOrderRequest struct {
	Order *entities.Order `json:"order"`
}
