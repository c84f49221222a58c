package service

import (
	"sync"
	"time"

	"github.com/dmoros/lavanderia-pos/internal/domain/entity"
	"github.com/dmoros/lavanderia-pos/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartService owns the in-memory register sessions. Each cart belongs to one
// active session; the mutex only guards the registry map itself against
// concurrent sessions, not concurrent writers of one cart.
type CartService struct {
	mu      sync.RWMutex
	carts   map[uuid.UUID]*entity.Cart
	pricing *PricingService
	taxRate decimal.Decimal
}

// NewCartService creates a new cart service with the configured tax rate
func NewCartService(pricing *PricingService, taxRate decimal.Decimal) *CartService {
	return &CartService{
		carts:   make(map[uuid.UUID]*entity.Cart),
		pricing: pricing,
		taxRate: taxRate,
	}
}

// AddLineInput is one product-addition event from the register UI
type AddLineInput struct {
	ProductID  string
	Name       string
	BasePrice  decimal.Decimal
	Selections map[string]entity.SelectedGroup
	Pieces     *entity.PiecesBreakdown
}

// CreateCart opens a new register session
func (s *CartService) CreateCart() *entity.Cart {
	cart := &entity.Cart{
		ID:        uuid.New(),
		Lines:     []entity.CartLine{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	s.mu.Lock()
	s.carts[cart.ID] = cart
	s.mu.Unlock()

	return cart
}

// GetCart returns the cart for a session
func (s *CartService) GetCart(cartID uuid.UUID) (*entity.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, ok := s.carts[cartID]
	if !ok {
		return nil, ErrCartNotFound
	}
	return cart, nil
}

// AddLine prices the input and appends it as a fresh line. Repeated
// additions of the same product stay separate lines, each with its own id;
// the register never merges by SKU.
func (s *CartService) AddLine(cartID uuid.UUID, input AddLineInput) (*entity.CartLine, error) {
	priced, err := s.pricing.PriceLine(input.BasePrice, input.Selections)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[cartID]
	if !ok {
		return nil, ErrCartNotFound
	}

	line := entity.CartLine{
		ID:            uuid.New(),
		ProductID:     input.ProductID,
		Name:          input.Name,
		BasePrice:     input.BasePrice,
		Selections:    input.Selections,
		Pieces:        input.Pieces,
		UnitPrice:     priced.UnitPrice,
		Quantity:      priced.Quantity,
		ExtendedPrice: priced.ExtendedPrice,
	}
	cart.Lines = append(cart.Lines, line)
	cart.UpdatedAt = time.Now()

	return &line, nil
}

// RemoveLine removes one line by id
func (s *CartService) RemoveLine(cartID, lineID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[cartID]
	if !ok {
		return ErrCartNotFound
	}

	for i, line := range cart.Lines {
		if line.ID == lineID {
			cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
			cart.UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrLineNotFound
}

// Totals aggregates the cart's lines with the configured tax rate
func (s *CartService) Totals(cartID uuid.UUID) (entity.Totals, error) {
	cart, err := s.GetCart(cartID)
	if err != nil {
		return entity.Totals{}, err
	}
	return ComputeTotals(cart.Lines, s.taxRate), nil
}

// SettlePayment validates payment against the cart total. Cash below the
// total fails with ErrInsufficientPayment; a negative change is never
// produced. Card and transfer ignore the tendered input and settle exact.
func (s *CartService) SettlePayment(cartID uuid.UUID, method enum.PaymentMethod, tendered decimal.Decimal) (entity.PaymentInfo, error) {
	totals, err := s.Totals(cartID)
	if err != nil {
		return entity.PaymentInfo{}, err
	}
	return Settle(totals, method, tendered)
}

// ComputeTotals sums extended prices into a subtotal, applies the tax rate
// with half-up rounding to 2 decimals, and returns subtotal + tax as total.
func ComputeTotals(lines []entity.CartLine, taxRate decimal.Decimal) entity.Totals {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.ExtendedPrice)
	}
	tax := subtotal.Mul(taxRate).Round(2)
	return entity.Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

// Settle resolves payment info for already-computed totals
func Settle(totals entity.Totals, method enum.PaymentMethod, tendered decimal.Decimal) (entity.PaymentInfo, error) {
	if method == enum.PaymentCash {
		if tendered.LessThan(totals.Total) {
			return entity.PaymentInfo{}, ErrInsufficientPayment
		}
		return entity.PaymentInfo{
			Method:         method,
			AmountTendered: tendered,
			Change:         tendered.Sub(totals.Total),
		}, nil
	}

	// Card and transfer always settle for the exact total
	return entity.PaymentInfo{
		Method:         method,
		AmountTendered: totals.Total,
		Change:         decimal.Zero,
	}, nil
}
