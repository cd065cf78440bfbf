package pos

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/noah-isme/backend-duka/internal/pricing"
)

// Saver mirrors committed state to a durable key-value blob store. Saves are
// fire-and-forget side effects; the session never blocks on them.
type Saver interface {
	SaveInventory(ctx context.Context, products []Product) error
	SaveSales(ctx context.Context, sales []Sale) error
}

// Session owns the three POS collections: the inventory store, the single
// active cart, and the append-only sale ledger. All mutation methods live
// here so call order alone defines consistency; the mutex serialises the
// concurrent HTTP handlers into that single logical thread.
type Session struct {
	mu        sync.Mutex
	inventory []Product
	cart      []CartLine
	sales     []Sale
	lastSale  *Sale

	saver       Saver
	logger      zerolog.Logger
	now         func() time.Time
	saveTimeout time.Duration
}

// SessionConfig configures a Session.
type SessionConfig struct {
	Inventory   []Product
	Sales       []Sale
	Saver       Saver
	Logger      zerolog.Logger
	Now         func() time.Time
	SaveTimeout time.Duration
}

// NewSession constructs a session seeded with previously loaded state.
func NewSession(cfg SessionConfig) *Session {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	timeout := cfg.SaveTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	s := &Session{
		inventory:   append([]Product(nil), cfg.Inventory...),
		sales:       append([]Sale(nil), cfg.Sales...),
		saver:       cfg.Saver,
		logger:      cfg.Logger,
		now:         now,
		saveTimeout: timeout,
	}
	if len(s.sales) > 0 {
		last := s.sales[len(s.sales)-1]
		s.lastSale = &last
	}
	return s
}

// Inventory returns a copy of the current product list.
func (s *Session) Inventory() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Product(nil), s.inventory...)
}

// Product looks up a product by id.
func (s *Session) Product(id string) (Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.inventory {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Units returns the distinct unit-of-measure labels in inventory order.
func (s *Session) Units() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[string]struct{}, 4)
	units := make([]string, 0, 4)
	for _, p := range s.inventory {
		if _, ok := seen[p.Per]; ok {
			continue
		}
		seen[p.Per] = struct{}{}
		units = append(units, p.Per)
	}
	return units
}

// AddProduct appends a new product with a freshly minted id. Duplicate names
// are permitted; only the id is a uniqueness key.
func (s *Session) AddProduct(name string, quantity int, rate pricing.Money, per string) (Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Product{}, fmt.Errorf("product name is required: %w", ErrInvalidInput)
	}
	if quantity < 0 {
		return Product{}, fmt.Errorf("quantity must not be negative: %w", ErrInvalidInput)
	}
	if rate < 0 {
		return Product{}, fmt.Errorf("rate must not be negative: %w", ErrInvalidInput)
	}
	if strings.TrimSpace(per) == "" {
		per = "PCS"
	}
	product := Product{
		ID:       uuid.NewString(),
		Name:     name,
		Quantity: quantity,
		Rate:     rate,
		Per:      per,
	}

	s.mu.Lock()
	s.inventory = append(s.inventory, product)
	inv := append([]Product(nil), s.inventory...)
	s.mu.Unlock()

	s.persistInventory(inv)
	return product, nil
}

// ApplyDeduction decrements a product's quantity without re-validating the
// amount. The caller must have already checked amount against stock;
// out-of-band calls can drive quantity negative. No-op for unknown ids.
func (s *Session) ApplyDeduction(productID string, amount int) {
	s.mu.Lock()
	changed := s.deduct(productID, amount)
	inv := append([]Product(nil), s.inventory...)
	s.mu.Unlock()

	if changed {
		s.persistInventory(inv)
	}
}

// deduct decrements stock for one product. Caller holds the mutex.
func (s *Session) deduct(productID string, amount int) bool {
	for i := range s.inventory {
		if s.inventory[i].ID == productID {
			s.inventory[i].Quantity -= amount
			return true
		}
	}
	return false
}

// CartLines returns a copy of the active cart in insertion order.
func (s *Session) CartLines() []CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]CartLine(nil), s.cart...)
}

// CartTotal recomputes the live sum of line subtotals.
func (s *Session) CartTotal() pricing.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cartTotal(s.cart)
}

func cartTotal(lines []CartLine) pricing.Money {
	var total pricing.Money
	for _, line := range lines {
		total += line.Subtotal
	}
	return total
}

// AddToCart stages quantity units of a product. Quantities at or below zero
// are ignored. The requested quantity, combined with any units already in
// the cart, must not exceed the stock on hand at the time of the call.
func (s *Session) AddToCart(productID string, quantity int) error {
	if quantity <= 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var product *Product
	for i := range s.inventory {
		if s.inventory[i].ID == productID {
			product = &s.inventory[i]
			break
		}
	}
	if product == nil {
		return fmt.Errorf("product %s: %w", productID, ErrNotFound)
	}
	if quantity > product.Quantity {
		return fmt.Errorf("only %d units available in stock: %w", product.Quantity, ErrInsufficientStock)
	}

	for i := range s.cart {
		if s.cart[i].ID != productID {
			continue
		}
		if s.cart[i].InCart+quantity > product.Quantity {
			remaining := product.Quantity - s.cart[i].InCart
			return fmt.Errorf("only %d more units available: %w", remaining, ErrInsufficientStock)
		}
		s.cart[i].InCart += quantity
		s.cart[i].Subtotal = pricing.Subtotal(s.cart[i].InCart, s.cart[i].Rate)
		return nil
	}

	s.cart = append(s.cart, CartLine{
		Product:  *product,
		InCart:   quantity,
		Subtotal: pricing.Subtotal(quantity, product.Rate),
	})
	return nil
}

// RemoveFromCart deletes the line with the matching product id. Removing an
// absent line is a no-op.
func (s *Session) RemoveFromCart(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLine(productID)
}

func (s *Session) removeLine(productID string) {
	kept := s.cart[:0]
	for _, line := range s.cart {
		if line.ID != productID {
			kept = append(kept, line)
		}
	}
	s.cart = kept
}

// UpdateQuantity rewrites a line's quantity. Zero or negative quantities
// remove the line. The new quantity is re-validated against current stock.
func (s *Session) UpdateQuantity(productID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLine(productID)
		return nil
	}

	available := 0
	found := false
	for _, p := range s.inventory {
		if p.ID == productID {
			available = p.Quantity
			found = true
			break
		}
	}
	if !found || quantity > available {
		return fmt.Errorf("only %d units available in stock: %w", available, ErrInsufficientStock)
	}

	for i := range s.cart {
		if s.cart[i].ID == productID {
			s.cart[i].InCart = quantity
			s.cart[i].Subtotal = pricing.Subtotal(quantity, s.cart[i].Rate)
			break
		}
	}
	return nil
}

// ClearCart empties the cart unconditionally.
func (s *Session) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
}

// ProcessSale settles the active cart: it snapshots the lines into a Sale,
// decrements stock per line, appends to the ledger, clears the cart, and
// returns the Sale for receipt rendering. Stock was validated when each
// line entered the cart and is not re-checked here; lines whose product id
// has vanished from inventory are skipped rather than failing the sale.
func (s *Session) ProcessSale(cashierName string, customerName *string, method PaymentMethod) (Sale, error) {
	cashierName = strings.TrimSpace(cashierName)
	if cashierName == "" {
		return Sale{}, fmt.Errorf("cashier name is required: %w", ErrInvalidInput)
	}
	if _, err := ParsePaymentMethod(string(method)); err != nil {
		return Sale{}, err
	}

	s.mu.Lock()
	if len(s.cart) == 0 {
		s.mu.Unlock()
		return Sale{}, ErrEmptyCart
	}

	now := s.now()
	items := append([]CartLine(nil), s.cart...)
	sale := Sale{
		ID:            uuid.NewString(),
		Items:         items,
		Total:         cartTotal(items),
		Date:          now,
		CashierName:   cashierName,
		CustomerName:  normalizeCustomer(customerName),
		PaymentMethod: method,
		ReceiptNumber: receiptNumber(now),
	}

	for _, line := range items {
		s.deduct(line.ID, line.InCart)
	}
	s.sales = append(s.sales, sale)
	s.lastSale = &sale
	s.cart = nil

	inv := append([]Product(nil), s.inventory...)
	sales := append([]Sale(nil), s.sales...)
	s.mu.Unlock()

	s.persistInventory(inv)
	s.persistSales(sales)
	return sale, nil
}

// Sales returns a copy of the ledger in append (chronological) order.
func (s *Session) Sales() []Sale {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Sale(nil), s.sales...)
}

// Sale looks up a sale by id with a linear scan; ledger sizes are
// human-transaction-scale.
func (s *Session) Sale(id string) (Sale, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sale := range s.sales {
		if sale.ID == id {
			return sale, true
		}
	}
	return Sale{}, false
}

// LastSale returns the most recently processed sale, if any.
func (s *Session) LastSale() (Sale, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastSale == nil {
		return Sale{}, false
	}
	return *s.lastSale, true
}

func (s *Session) persistInventory(inventory []Product) {
	if s.saver == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.saveTimeout)
		defer cancel()
		if err := s.saver.SaveInventory(ctx, inventory); err != nil {
			s.logger.Error().Err(err).Msg("persist inventory")
		}
	}()
}

func (s *Session) persistSales(sales []Sale) {
	if s.saver == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.saveTimeout)
		defer cancel()
		if err := s.saver.SaveSales(ctx, sales); err != nil {
			s.logger.Error().Err(err).Msg("persist sales")
		}
	}()
}

func normalizeCustomer(name *string) *string {
	if name == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*name)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// receiptNumber derives a human-readable code from the time of sale. Unique
// in the "extremely unlikely to collide within a session" sense only.
func receiptNumber(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}
	return "RCP-" + ms
}
