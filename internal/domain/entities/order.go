package entities

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

const DefaultCurrency = "PLN"

var ErrInvalidOrderID = errors.New("order id must be a string or a number")

// OrderID is the storefront order identifier.
//
// Ecwid sends it either as a JSON string or a JSON number. Both decode to the
// same textual form so the id round-trips byte-identical through PayU's
// extOrderId and back into the storefront update URL.
type OrderID string

func (id *OrderID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = OrderID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return ErrInvalidOrderID
	}
	*id = OrderID(n.String())
	return nil
}

func (id OrderID) String() string {
	return string(id)
}

func (id OrderID) IsZero() bool {
	return strings.TrimSpace(string(id)) == ""
}

// Order is the storefront order received on POST /payu. It lives for a
// single request and is never stored. Amounts stay invalid when the field is
// absent or null.
type Order struct {
	ID       OrderID             `json:"id" swaggertype:"string"`
	Items    []LineItem          `json:"items"`
	Total    decimal.NullDecimal `json:"total" swaggertype:"number"`
	Currency string              `json:"currency,omitempty"`
}

type LineItem struct {
	Name     string              `json:"name"`
	Price    decimal.NullDecimal `json:"price" swaggertype:"number"`
	Quantity int                 `json:"quantity"`
}

// CurrencyOr returns the order currency, or def when the storefront sent none.
func (o Order) CurrencyOr(def string) string {
	if c := strings.TrimSpace(o.Currency); c != "" {
		return c
	}
	if def == "" {
		return DefaultCurrency
	}
	return def
}
