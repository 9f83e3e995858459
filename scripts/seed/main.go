// Seeds a demo merchant with a shop, products, orders, a rental and a month
// of sales so the dashboard has data to show out of the box. Idempotent: it
// bails out if the demo account already exists.
package main

import (
	"context"
	"log"
	"time"

	"kubra-market/internal/data/entity"
	"kubra-market/internal/data/repository"
	"kubra-market/pkg/database"
	"kubra-market/pkg/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	demoEmail    = "merchant@kubra.com"
	demoPassword = "password123"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Load config: %v", err)
	}

	db, err := database.InitDB(config.Database)
	if err != nil {
		log.Fatalf("Connect to database: %v", err)
	}
	defer db.Close()

	logger := zap.NewNop()
	repo := repository.NewRepository(db, logger)
	ctx := context.Background()

	existing, err := repo.User.FindByEmail(ctx, demoEmail)
	if err != nil {
		log.Fatalf("Check demo merchant: %v", err)
	}
	if existing != nil {
		log.Printf("Demo merchant %s already exists (id=%d), nothing to do", demoEmail, existing.ID)
		return
	}

	hash, err := utils.HashPassword(demoPassword)
	if err != nil {
		log.Fatalf("Hash password: %v", err)
	}

	phone := "081234567890"
	merchant := &entity.User{
		Username:     "demomerchant",
		Email:        demoEmail,
		PasswordHash: hash,
		Name:         "Demo Merchant",
		Phone:        &phone,
		CreatedAt:    time.Now(),
	}
	if err := repo.User.Create(ctx, merchant); err != nil {
		log.Fatalf("Create demo merchant: %v", err)
	}

	address := "Blok C-12, Pasar Kubra"
	description := "Everyday groceries and household goods"
	shop := &entity.Shop{
		MerchantID:  merchant.ID,
		Name:        "Toko Demo",
		Phone:       &phone,
		Email:       &merchant.Email,
		Address:     &address,
		Description: &description,
		BusinessHours: map[string]string{
			"monday":    "08:00-17:00",
			"tuesday":   "08:00-17:00",
			"wednesday": "08:00-17:00",
			"thursday":  "08:00-17:00",
			"friday":    "08:00-17:00",
			"saturday":  "08:00-14:00",
			"sunday":    "closed",
		},
	}
	if err := repo.Shop.Create(ctx, shop); err != nil {
		log.Fatalf("Create demo shop: %v", err)
	}

	products := []*entity.Product{
		{Name: "Rice 5kg", Price: decimal.RequireFromString("68000"), Stock: 40, Status: entity.ProductStatusActive, MerchantID: merchant.ID},
		{Name: "Cooking Oil 1L", Price: decimal.RequireFromString("19500"), Stock: 25, Status: entity.ProductStatusActive, MerchantID: merchant.ID},
		{Name: "Sugar 1kg", Price: decimal.RequireFromString("14500"), Stock: 8, Status: entity.ProductStatusActive, MerchantID: merchant.ID},
		{Name: "Instant Noodles (box)", Price: decimal.RequireFromString("105000"), Stock: 3, Status: entity.ProductStatusActive, MerchantID: merchant.ID},
		{Name: "Mineral Water (carton)", Price: decimal.RequireFromString("42000"), Stock: 0, Status: entity.ProductStatusDraft, MerchantID: merchant.ID},
	}
	for _, p := range products {
		if err := repo.Product.Create(ctx, p); err != nil {
			log.Fatalf("Create product %q: %v", p.Name, err)
		}
	}

	// A couple of orders against the seeded products.
	orders := []struct {
		customerName string
		status       entity.OrderStatus
		items        []*entity.OrderItem
	}{
		{
			customerName: "Budi Santoso",
			status:       entity.OrderStatusCompleted,
			items: []*entity.OrderItem{
				{ProductID: products[0].ID, Name: products[0].Name, Price: products[0].Price, Quantity: 1, Subtotal: products[0].Price},
				{ProductID: products[1].ID, Name: products[1].Name, Price: products[1].Price, Quantity: 2, Subtotal: products[1].Price.Mul(decimal.NewFromInt(2))},
			},
		},
		{
			customerName: "Siti Rahma",
			status:       entity.OrderStatusPending,
			items: []*entity.OrderItem{
				{ProductID: products[2].ID, Name: products[2].Name, Price: products[2].Price, Quantity: 3, Subtotal: products[2].Price.Mul(decimal.NewFromInt(3))},
			},
		},
	}
	for i, o := range orders {
		total := decimal.Zero
		for _, it := range o.items {
			total = total.Add(it.Subtotal)
		}
		order := &entity.Order{
			OrderNumber:  utils.GenerateOrderNumber(),
			CustomerID:   int64(100 + i),
			CustomerName: o.customerName,
			Total:        total,
			Status:       o.status,
			CreatedAt:    time.Now().AddDate(0, 0, -i),
		}
		if err := repo.Order.Create(ctx, order, o.items); err != nil {
			log.Fatalf("Create order for %s: %v", o.customerName, err)
		}
	}

	// Stall rental due at the start of next month.
	now := time.Now()
	leaseStart := utils.StartOfMonth(now).AddDate(-1, 0, 0)
	leaseEnd := leaseStart.AddDate(2, 0, 0)
	deposit := decimal.RequireFromString("1000000")
	rental := &entity.Rental{
		MerchantID:      merchant.ID,
		Amount:          decimal.RequireFromString("500000"),
		DueDate:         utils.StartOfMonth(now).AddDate(0, 1, 0),
		Status:          entity.RentalStatusPending,
		LeaseStartDate:  &leaseStart,
		LeaseEndDate:    &leaseEnd,
		SecurityDeposit: &deposit,
	}
	if err := repo.Rental.Create(ctx, rental); err != nil {
		log.Fatalf("Create rental: %v", err)
	}

	// Thirty days of sales history.
	for day := 0; day < 30; day++ {
		amount := decimal.NewFromInt(int64(150000 + (day%7)*35000))
		sale := &entity.Sale{
			MerchantID: merchant.ID,
			Date:       utils.DateOnly(now.AddDate(0, 0, -day)),
			Amount:     amount,
		}
		if err := repo.Sale.Create(ctx, sale); err != nil {
			log.Fatalf("Create sale: %v", err)
		}
	}

	log.Printf("Seeded demo merchant %s (id=%d), password %q", demoEmail, merchant.ID, demoPassword)
}
