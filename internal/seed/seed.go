// Package seed provides the built-in starter inventory used when the blob
// store holds no saved state.
package seed

import (
	"github.com/google/uuid"

	"github.com/noah-isme/backend-duka/internal/pos"
	"github.com/noah-isme/backend-duka/internal/pricing"
)

type seedItem struct {
	name     string
	quantity int
	rateKES  int64
	per      string
}

var items = []seedItem{
	{"BLACK PIPE 11/2'' C/A", 30, 2930, "PCS"},
	{"NYUMBA ALMASI SHEET 32G X 3MTR", 200, 1095, "PCS"},
	{"NYUMBA ALMASI SHEET 32G X 2.5MTR", 48, 913, "PCS"},
	{"NYUMBA 11/3 CHARC/GREY 30GX2MTR", 23, 1100, "PCS"},
	{"GALVANIZED PLAIN WIRE 8G", 75, 228, "KGS"},
	{"WIRE NAILS 2'' TO 6''", 100, 162, "KGS"},
	{"FLAT BAR 2''", 10, 900, "PCS"},
	{"NYUMBA 11/3 CHARC/GREY 30GX3MTR", 32, 1650, "PCS"},
	{"NYUMBA MAX780 CHARC/GREY 30GX3MTR", 10, 1650, "PCS"},
	{"GOLDEN BRIDGE W/RODE 2.5MM", 40, 525, "PKTS"},
	{"GOLDEN BRIDGE W/RODE 3.2MM", 20, 1050, "PKTS"},
	{"FONTARC WELDING RODE 3.2MM", 20, 1250, "PKTS"},
	{"R/COT C/SHEET 30GX3MTR SKY BLUE", 48, 1875, "PCS"},
	{"R/COT CX780 30GX3MTR SKY BLUE", 48, 1875, "PCS"},
	{"CX780 CHARC/GREY 30Gx3MTR", 48, 1875, "PCS"},
	{"R/COT CX780 30GX3MTR MAROON", 48, 1875, "PCS"},
	{"NYUMBA ALMASI SHEET 30G X 3MTR", 48, 1320, "PCS"},
	{"R.H.S 4'' X 2'' X 2.5MM", 6, 5300, "PCS"},
	{"R.H.S 6'' X 2'' X 3.0MM", 6, 9000, "PCS"},
	{"CHAINLINK 8FT", 10, 5520, "ROLL"},
}

// Inventory returns a fresh copy of the starter inventory with newly minted
// ids. Rates are whole KES converted to minor units.
func Inventory() []pos.Product {
	products := make([]pos.Product, 0, len(items))
	for _, item := range items {
		products = append(products, pos.Product{
			ID:       uuid.NewString(),
			Name:     item.name,
			Quantity: item.quantity,
			Rate:     pricing.Money(item.rateKES * 100),
			Per:      item.per,
		})
	}
	return products
}
