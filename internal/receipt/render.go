package receipt

import (
	"fmt"
	"strings"

	"github.com/noah-isme/backend-duka/internal/pos"
	"github.com/noah-isme/backend-duka/internal/pricing"
)

const lineWidth = 42

// Renderer produces plain-text receipts for settled sales, formatted for a
// thermal printer style fixed-width layout.
type Renderer struct {
	StoreName    string
	StoreAddress string
	StorePhone   string
	StoreEmail   string
	Currency     string
	Footer       string
}

// Render formats a sale as a printable receipt.
func (r Renderer) Render(sale pos.Sale) string {
	var b strings.Builder

	writeCentered(&b, strings.ToUpper(r.StoreName))
	writeCentered(&b, r.StoreAddress)
	if r.StorePhone != "" {
		writeCentered(&b, "Tel: "+r.StorePhone)
	}
	if r.StoreEmail != "" {
		writeCentered(&b, "Email: "+r.StoreEmail)
	}
	b.WriteString(dashedRule() + "\n")

	writePair(&b, "Receipt #:", sale.ReceiptNumber)
	writePair(&b, "Date:", sale.Date.Format("Jan 2, 2006 15:04:05"))
	writePair(&b, "Cashier:", sale.CashierName)
	if sale.CustomerName != nil && *sale.CustomerName != "" {
		writePair(&b, "Customer:", *sale.CustomerName)
	}
	writePair(&b, "Payment Method:", strings.ToUpper(string(sale.PaymentMethod)))
	b.WriteString(dashedRule() + "\n")

	fmt.Fprintf(&b, "%-18s %4s %9s %8s\n", "Item", "Qty", "Rate", "Amount")
	b.WriteString(dashedRule() + "\n")
	for _, item := range sale.Items {
		fmt.Fprintf(&b, "%-18s %4d %9s %8s\n",
			truncate(item.Name, 18),
			item.InCart,
			pricing.Format(item.Rate),
			pricing.Format(item.Subtotal),
		)
	}
	b.WriteString(dashedRule() + "\n")

	writePair(&b, "TOTAL:", fmt.Sprintf("%s %s", r.Currency, pricing.Format(sale.Total)))
	b.WriteString(dashedRule() + "\n")

	if r.Footer != "" {
		writeCentered(&b, r.Footer)
	}
	writeCentered(&b, "All goods sold are not returnable")
	return b.String()
}

func writeCentered(b *strings.Builder, text string) {
	if text == "" {
		return
	}
	if pad := (lineWidth - len(text)) / 2; pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(text)
	b.WriteByte('\n')
}

func writePair(b *strings.Builder, label, value string) {
	gap := lineWidth - len(label) - len(value)
	if gap < 1 {
		gap = 1
	}
	b.WriteString(label)
	b.WriteString(strings.Repeat(" ", gap))
	b.WriteString(value)
	b.WriteByte('\n')
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func dashedRule() string {
	return strings.Repeat("-", lineWidth)
}
