package inventory

import (
	"fmt"
	"strings"

	"github.com/noah-isme/backend-duka/internal/pos"
	"github.com/noah-isme/backend-duka/internal/pricing"
)

// Service answers catalog queries against the live trading session.
type Service struct {
	Session *pos.Session
}

// ListParams filters the product listing.
type ListParams struct {
	Query string
	Per   string
}

// List returns products matching the filter along with the total match count.
func (s *Service) List(params ListParams) []pos.Product {
	products := s.Session.Inventory()
	query := strings.ToLower(strings.TrimSpace(params.Query))
	per := strings.TrimSpace(params.Per)
	if query == "" && per == "" {
		return products
	}
	filtered := make([]pos.Product, 0, len(products))
	for _, p := range products {
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		if per != "" && !strings.EqualFold(p.Per, per) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// Units lists the distinct units of measure currently in the inventory.
func (s *Service) Units() []string {
	return s.Session.Units()
}

// Add registers a new product. The rate arrives as a decimal amount and is
// stored in minor units.
func (s *Service) Add(name string, quantity int, rate float64, per string) (pos.Product, error) {
	money, err := pricing.FromDecimal(rate)
	if err != nil {
		return pos.Product{}, fmt.Errorf("rate: %v: %w", err, pos.ErrInvalidInput)
	}
	return s.Session.AddProduct(name, quantity, money, per)
}
