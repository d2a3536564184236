package configs

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/sauravtand/restaurant-management-system/entity"
)

// Demo dataset: สองร้าน REST001/REST002 ร้านละสอง user
// ทุก demo account ใช้รหัสผ่าน "password"

func SeedUsers() []entity.User {
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("seed users: %v", err)
	}
	pw := string(hash)

	return []entity.User{
		{ID: "user1", Name: "John Doe", Email: "john@example.com", Password: pw, Role: entity.RoleOwner, RestaurantCode: "REST001"},
		{ID: "user2", Name: "Maria Garcia", Email: "maria@example.com", Password: pw, Role: entity.RoleManager, RestaurantCode: "REST001"},
		{ID: "user3", Name: "Akira Tanaka", Email: "akira@example.com", Password: pw, Role: entity.RoleOwner, RestaurantCode: "REST002"},
		{ID: "user4", Name: "Lisa Chen", Email: "lisa@example.com", Password: pw, Role: entity.RoleManager, RestaurantCode: "REST002"},
	}
}

func SeedRestaurants() []entity.Restaurant {
	now := time.Now()

	rest001Menu := []entity.MenuItem{
		{ID: "item001-1", Name: "Margherita Pizza", Description: "Classic pizza with tomato sauce, mozzarella, and basil", Price: 12.99, Category: "Pizza", Available: true},
		{ID: "item001-2", Name: "Pepperoni Pizza", Description: "Pizza with tomato sauce, mozzarella, and pepperoni", Price: 14.99, Category: "Pizza", Available: true},
		{ID: "item001-3", Name: "Caesar Salad", Description: "Romaine lettuce with Caesar dressing, croutons, and parmesan", Price: 8.99, Category: "Salad", Available: true},
		{ID: "item001-4", Name: "Spaghetti Carbonara", Description: "Spaghetti with egg, cheese, pancetta, and black pepper", Price: 16.99, Category: "Pasta", Available: true},
		{ID: "item001-5", Name: "Tiramisu", Description: "Coffee-flavored Italian dessert", Price: 7.99, Category: "Dessert", Available: true},
		{ID: "item001-6", Name: "Garlic Bread", Description: "Toasted bread with garlic butter", Price: 4.99, Category: "Appetizer", Available: false},
	}

	rest002Menu := []entity.MenuItem{
		{ID: "item002-1", Name: "California Roll", Description: "Crab, avocado, and cucumber roll", Price: 8.99, Category: "Maki", Available: true},
		{ID: "item002-2", Name: "Salmon Nigiri", Description: "Fresh salmon over pressed vinegared rice", Price: 6.99, Category: "Nigiri", Available: true},
		{ID: "item002-3", Name: "Spicy Tuna Roll", Description: "Spicy tuna and cucumber roll", Price: 9.99, Category: "Maki", Available: true},
		{ID: "item002-4", Name: "Miso Soup", Description: "Traditional Japanese soup with tofu and seaweed", Price: 3.99, Category: "Soup", Available: true},
		{ID: "item002-5", Name: "Edamame", Description: "Steamed soybean pods with sea salt", Price: 4.99, Category: "Appetizer", Available: true},
		{ID: "item002-6", Name: "Green Tea Ice Cream", Description: "Creamy matcha flavored ice cream", Price: 5.99, Category: "Dessert", Available: true},
	}

	rest001Tables := []entity.Table{
		{ID: "table001-1", Number: 1, Capacity: 2, Status: entity.TableOccupied},
		{ID: "table001-2", Number: 2, Capacity: 4, Status: entity.TableFree},
		{ID: "table001-3", Number: 3, Capacity: 4, Status: entity.TableOccupied},
		{ID: "table001-4", Number: 4, Capacity: 6, Status: entity.TableFree},
		{ID: "table001-5", Number: 5, Capacity: 2, Status: entity.TableReserved},
		{ID: "table001-6", Number: 6, Capacity: 8, Status: entity.TableFree},
	}

	rest002Tables := []entity.Table{
		{ID: "table002-1", Number: 1, Capacity: 2, Status: entity.TableFree},
		{ID: "table002-2", Number: 2, Capacity: 4, Status: entity.TableOccupied},
		{ID: "table002-3", Number: 3, Capacity: 6, Status: entity.TableOccupied},
		{ID: "table002-4", Number: 4, Capacity: 8, Status: entity.TableReserved},
		{ID: "table002-5", Number: 5, Capacity: 2, Status: entity.TableFree},
	}

	rest001Orders := []entity.Order{
		{
			ID: "order001-1", TableID: "table001-1", TableNumber: 1,
			Items: []entity.OrderItem{
				{MenuItemID: "item001-1", Name: "Margherita Pizza", Price: 12.99, Quantity: 1},
				{MenuItemID: "item001-3", Name: "Caesar Salad", Price: 8.99, Quantity: 1},
			},
			Status: entity.OrderServed, Total: 21.98, CreatedAt: now.Add(-60 * time.Minute),
		},
		{
			ID: "order001-2", TableID: "table001-3", TableNumber: 3,
			Items: []entity.OrderItem{
				{MenuItemID: "item001-2", Name: "Pepperoni Pizza", Price: 14.99, Quantity: 2},
				{MenuItemID: "item001-6", Name: "Garlic Bread", Price: 4.99, Quantity: 1},
			},
			Status: entity.OrderPreparing, Total: 34.97, CreatedAt: now.Add(-30 * time.Minute),
		},
		{
			ID: "order001-3", TableID: "table001-5", TableNumber: 5,
			Items: []entity.OrderItem{
				{MenuItemID: "item001-4", Name: "Spaghetti Carbonara", Price: 16.99, Quantity: 1},
				{MenuItemID: "item001-5", Name: "Tiramisu", Price: 7.99, Quantity: 1},
			},
			Status: entity.OrderPending, Total: 24.98, CreatedAt: now,
		},
	}

	rest002Orders := []entity.Order{
		{
			ID: "order002-1", TableID: "table002-2", TableNumber: 2,
			Items: []entity.OrderItem{
				{MenuItemID: "item002-1", Name: "California Roll", Price: 8.99, Quantity: 2},
				{MenuItemID: "item002-4", Name: "Miso Soup", Price: 3.99, Quantity: 2},
			},
			Status: entity.OrderServed, Total: 25.96, CreatedAt: now.Add(-45 * time.Minute),
		},
		{
			ID: "order002-2", TableID: "table002-3", TableNumber: 3,
			Items: []entity.OrderItem{
				{MenuItemID: "item002-2", Name: "Salmon Nigiri", Price: 6.99, Quantity: 4},
				{MenuItemID: "item002-3", Name: "Spicy Tuna Roll", Price: 9.99, Quantity: 1},
				{MenuItemID: "item002-5", Name: "Edamame", Price: 4.99, Quantity: 1},
			},
			Status: entity.OrderPreparing, Total: 42.95, CreatedAt: now.Add(-15 * time.Minute),
		},
	}

	return []entity.Restaurant{
		{
			ID: "rest001", Name: "Italiano Delizioso", Code: "REST001",
			Address: "123 Main St, Anytown, USA", Phone: "(555) 123-4567",
			Menu: rest001Menu, Tables: rest001Tables, Orders: rest001Orders,
		},
		{
			ID: "rest002", Name: "Sushi Paradise", Code: "REST002",
			Address: "456 Ocean Ave, Seaside, USA", Phone: "(555) 987-6543",
			Menu: rest002Menu, Tables: rest002Tables, Orders: rest002Orders,
		},
	}
}
