package pos

import (
	"fmt"
	"strings"
	"time"

	"github.com/noah-isme/backend-duka/internal/pricing"
)

// Product is a sellable inventory item. Quantity is units on hand, Rate the
// unit price in minor units, Per the unit-of-measure label (PCS, KGS, ...).
type Product struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Quantity int           `json:"quantity"`
	Rate     pricing.Money `json:"rate"`
	Per      string        `json:"per"`
}

// CartLine is a product staged for sale plus the quantity in the cart and
// the derived line subtotal.
type CartLine struct {
	Product
	InCart   int           `json:"inCart"`
	Subtotal pricing.Money `json:"subtotal"`
}

// Sale is an immutable record of a completed transaction. Items is a frozen
// copy of the cart at checkout time.
type Sale struct {
	ID            string        `json:"id"`
	Items         []CartLine    `json:"items"`
	Total         pricing.Money `json:"total"`
	Date          time.Time     `json:"date"`
	CashierName   string        `json:"cashierName"`
	CustomerName  *string       `json:"customerName"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	ReceiptNumber string        `json:"receiptNumber"`
}

// PaymentMethod enumerates the accepted tender types.
type PaymentMethod string

const (
	PaymentCash  PaymentMethod = "cash"
	PaymentMpesa PaymentMethod = "mpesa"
	PaymentCard  PaymentMethod = "card"
	PaymentBank  PaymentMethod = "bank"
)

// ParsePaymentMethod validates and normalises a payment method string.
func ParsePaymentMethod(value string) (PaymentMethod, error) {
	switch m := PaymentMethod(strings.ToLower(strings.TrimSpace(value))); m {
	case PaymentCash, PaymentMpesa, PaymentCard, PaymentBank:
		return m, nil
	default:
		return "", fmt.Errorf("unknown payment method %q: %w", value, ErrInvalidInput)
	}
}
