package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"kubra-market/internal/data/entity"
	"kubra-market/pkg/apperrors"

	"github.com/shopspring/decimal"
)

// memoryStore is an in-memory implementation of every repository interface.
// It exists strictly for tests; production code always runs on Postgres.
type memoryStore struct {
	mu sync.Mutex

	users          map[int64]*entity.User
	products       map[int64]*entity.Product
	orders         map[int64]*entity.Order
	orderItems     map[int64][]*entity.OrderItem
	shops          map[int64]*entity.Shop // keyed by merchant id
	rentals        map[int64]*entity.Rental
	rentalPayments map[int64][]*entity.RentalPayment
	sales          map[int64][]*entity.Sale // keyed by merchant id

	nextID map[string]int64
}

// NewMemoryRepository builds a Repository backed by shared in-memory maps.
func NewMemoryRepository() *Repository {
	s := &memoryStore{
		users:          make(map[int64]*entity.User),
		products:       make(map[int64]*entity.Product),
		orders:         make(map[int64]*entity.Order),
		orderItems:     make(map[int64][]*entity.OrderItem),
		shops:          make(map[int64]*entity.Shop),
		rentals:        make(map[int64]*entity.Rental),
		rentalPayments: make(map[int64][]*entity.RentalPayment),
		sales:          make(map[int64][]*entity.Sale),
		nextID:         make(map[string]int64),
	}

	return &Repository{
		User:    (*memoryUserRepo)(s),
		Product: (*memoryProductRepo)(s),
		Order:   (*memoryOrderRepo)(s),
		Shop:    (*memoryShopRepo)(s),
		Rental:  (*memoryRentalRepo)(s),
		Sale:    (*memorySaleRepo)(s),
	}
}

func (s *memoryStore) allocID(table string) int64 {
	s.nextID[table]++
	return s.nextID[table]
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func withinRange(d, start, end time.Time) bool {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	lo := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	hi := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(lo) && !day.After(hi)
}

// ---------- users ----------

type memoryUserRepo memoryStore

func (s *memoryUserRepo) Create(_ context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return fmt.Errorf("user %s: %w", user.Email, apperrors.ErrConflict)
		}
	}

	user.ID = (*memoryStore)(s).allocID("users")
	clone := *user
	s.users[user.ID] = &clone
	return nil
}

func (s *memoryUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (s *memoryUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (s *memoryUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == username {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (s *memoryUserRepo) Update(_ context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return fmt.Errorf("user %d: %w", user.ID, apperrors.ErrNotFound)
	}

	for id, existing := range s.users {
		if id == user.ID {
			continue
		}
		if existing.Email == user.Email || existing.Username == user.Username {
			return fmt.Errorf("user %d: %w", user.ID, apperrors.ErrConflict)
		}
	}

	clone := *user
	s.users[user.ID] = &clone
	return nil
}

// ---------- products ----------

type memoryProductRepo memoryStore

func (s *memoryProductRepo) Create(_ context.Context, product *entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	product.ID = (*memoryStore)(s).allocID("products")
	clone := *product
	s.products[product.ID] = &clone
	return nil
}

func (s *memoryProductRepo) FindByID(_ context.Context, id int64) (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	clone := *product
	return &clone, nil
}

func (s *memoryProductRepo) FindByMerchant(_ context.Context, merchantID int64) ([]*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var products []*entity.Product
	for _, product := range s.products {
		if product.MerchantID == merchantID {
			clone := *product
			products = append(products, &clone)
		}
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (s *memoryProductRepo) FindLowStock(_ context.Context, merchantID int64, threshold int) ([]*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var products []*entity.Product
	for _, product := range s.products {
		if product.MerchantID == merchantID && product.Stock <= threshold {
			clone := *product
			products = append(products, &clone)
		}
	}
	sort.Slice(products, func(i, j int) bool {
		if products[i].Stock != products[j].Stock {
			return products[i].Stock < products[j].Stock
		}
		return products[i].ID < products[j].ID
	})
	return products, nil
}

func (s *memoryProductRepo) Update(_ context.Context, product *entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[product.ID]; !ok {
		return fmt.Errorf("product %d: %w", product.ID, apperrors.ErrNotFound)
	}
	clone := *product
	s.products[product.ID] = &clone
	return nil
}

func (s *memoryProductRepo) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return fmt.Errorf("product %d: %w", id, apperrors.ErrNotFound)
	}
	delete(s.products, id)
	return nil
}

// ---------- orders ----------

type memoryOrderRepo memoryStore

func (s *memoryOrderRepo) Create(_ context.Context, order *entity.Order, items []*entity.OrderItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.orders {
		if existing.OrderNumber == order.OrderNumber {
			return fmt.Errorf("order %s: %w", order.OrderNumber, apperrors.ErrConflict)
		}
	}

	order.ID = (*memoryStore)(s).allocID("orders")
	orderClone := *order

	// Stage item copies first so the order and its items land together.
	itemClones := make([]*entity.OrderItem, 0, len(items))
	for _, item := range items {
		item.OrderID = order.ID
		item.ID = (*memoryStore)(s).allocID("order_items")
		clone := *item
		itemClones = append(itemClones, &clone)
	}

	s.orders[order.ID] = &orderClone
	s.orderItems[order.ID] = itemClones
	return nil
}

func (s *memoryOrderRepo) inScope(order *entity.Order, merchantID int64) bool {
	for _, item := range s.orderItems[order.ID] {
		if product, ok := s.products[item.ProductID]; ok && product.MerchantID == merchantID {
			return true
		}
	}
	return false
}

func (s *memoryOrderRepo) FindByID(_ context.Context, merchantID, id int64) (*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok || !s.inScope(order, merchantID) {
		return nil, nil
	}
	clone := *order
	return &clone, nil
}

func (s *memoryOrderRepo) FindByMerchant(_ context.Context, merchantID int64) ([]*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var orders []*entity.Order
	for _, order := range s.orders {
		if s.inScope(order, merchantID) {
			clone := *order
			orders = append(orders, &clone)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].CreatedAt.After(orders[j].CreatedAt) })
	return orders, nil
}

func (s *memoryOrderRepo) FindItems(_ context.Context, orderID int64) ([]*entity.OrderItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []*entity.OrderItem
	for _, item := range s.orderItems[orderID] {
		clone := *item
		items = append(items, &clone)
	}
	return items, nil
}

func (s *memoryOrderRepo) UpdateStatus(_ context.Context, merchantID, id int64, status entity.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok || !s.inScope(order, merchantID) {
		return fmt.Errorf("order %d: %w", id, apperrors.ErrNotFound)
	}
	order.Status = status
	return nil
}

// ---------- shops ----------

type memoryShopRepo memoryStore

func (s *memoryShopRepo) Create(_ context.Context, shop *entity.Shop) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.shops[shop.MerchantID]; ok {
		return fmt.Errorf("shop for merchant %d: %w", shop.MerchantID, apperrors.ErrConflict)
	}

	shop.ID = (*memoryStore)(s).allocID("shops")
	clone := *shop
	s.shops[shop.MerchantID] = &clone
	return nil
}

func (s *memoryShopRepo) FindByMerchant(_ context.Context, merchantID int64) (*entity.Shop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	shop, ok := s.shops[merchantID]
	if !ok {
		return nil, nil
	}
	clone := *shop
	return &clone, nil
}

func (s *memoryShopRepo) Update(_ context.Context, shop *entity.Shop) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.shops[shop.MerchantID]
	if !ok {
		return fmt.Errorf("shop for merchant %d: %w", shop.MerchantID, apperrors.ErrNotFound)
	}
	shop.ID = existing.ID
	clone := *shop
	s.shops[shop.MerchantID] = &clone
	return nil
}

// ---------- rentals ----------

type memoryRentalRepo memoryStore

func (s *memoryRentalRepo) Create(_ context.Context, rental *entity.Rental) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rental.ID = (*memoryStore)(s).allocID("rentals")
	clone := *rental
	s.rentals[rental.ID] = &clone
	return nil
}

func (s *memoryRentalRepo) FindByMerchant(_ context.Context, merchantID int64) (*entity.Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var latest *entity.Rental
	for _, rental := range s.rentals {
		if rental.MerchantID != merchantID {
			continue
		}
		if latest == nil || rental.DueDate.After(latest.DueDate) {
			latest = rental
		}
	}
	if latest == nil {
		return nil, nil
	}
	clone := *latest
	return &clone, nil
}

func (s *memoryRentalRepo) FindPayments(_ context.Context, rentalID int64) ([]*entity.RentalPayment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var payments []*entity.RentalPayment
	for _, payment := range s.rentalPayments[rentalID] {
		clone := *payment
		payments = append(payments, &clone)
	}
	sort.Slice(payments, func(i, j int) bool { return payments[i].Date.After(payments[j].Date) })
	return payments, nil
}

func (s *memoryRentalRepo) SubmitPayment(_ context.Context, payment *entity.RentalPayment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Validate everything before mutating so a failure leaves no partial state.
	rental, ok := s.rentals[payment.RentalID]
	if !ok {
		return fmt.Errorf("rental %d: %w", payment.RentalID, apperrors.ErrNotFound)
	}
	for _, existing := range s.rentalPayments {
		for _, p := range existing {
			if p.PaymentID == payment.PaymentID {
				return fmt.Errorf("payment %s: %w", payment.PaymentID, apperrors.ErrConflict)
			}
		}
	}

	payment.ID = (*memoryStore)(s).allocID("rental_payments")
	clone := *payment
	s.rentalPayments[payment.RentalID] = append(s.rentalPayments[payment.RentalID], &clone)
	rental.Status = entity.RentalStatusPaid
	return nil
}

// ---------- sales ----------

type memorySaleRepo memoryStore

func (s *memorySaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sale.ID = (*memoryStore)(s).allocID("sales")
	clone := *sale
	s.sales[sale.MerchantID] = append(s.sales[sale.MerchantID], &clone)
	return nil
}

func (s *memorySaleRepo) SumByDate(_ context.Context, merchantID int64, date time.Time) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, sale := range s.sales[merchantID] {
		if sameDay(sale.Date, date) {
			total = total.Add(sale.Amount)
		}
	}
	return total, nil
}

func (s *memorySaleRepo) SumByDateRange(_ context.Context, merchantID int64, startDate, endDate time.Time) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, sale := range s.sales[merchantID] {
		if withinRange(sale.Date, startDate, endDate) {
			total = total.Add(sale.Amount)
		}
	}
	return total, nil
}

func (s *memorySaleRepo) FindByDateRange(_ context.Context, merchantID int64, startDate, endDate time.Time) ([]*entity.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sales []*entity.Sale
	for _, sale := range s.sales[merchantID] {
		if withinRange(sale.Date, startDate, endDate) {
			clone := *sale
			sales = append(sales, &clone)
		}
	}
	sort.Slice(sales, func(i, j int) bool { return sales[i].Date.Before(sales[j].Date) })
	return sales, nil
}
