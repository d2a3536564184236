package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sauravtand/restaurant-management-system/configs"
	"github.com/sauravtand/restaurant-management-system/entity"
)

func newTestStore() *Store {
	return NewStore(configs.SeedUsers(), configs.SeedRestaurants())
}

func TestReadsUnknownCode(t *testing.T) {
	s := newTestStore()

	assert.Empty(t, s.MenuItems("NOPE"))
	assert.Empty(t, s.Tables("NOPE"))
	assert.Empty(t, s.Orders("NOPE"))
	assert.Nil(t, s.RestaurantByCode("NOPE"))
}

func TestAddMenuItemRoundTrip(t *testing.T) {
	s := newTestStore()

	created := s.AddMenuItem("REST001", entity.MenuItem{
		Name:        "Bruschetta",
		Description: "Grilled bread with tomatoes",
		Price:       6.49,
		Category:    "Appetizer",
		Available:   true,
	})
	if created == nil {
		t.Fatal("AddMenuItem returned nil for seeded restaurant")
	}
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Bruschetta", created.Name)

	items := s.MenuItems("REST001")
	assert.Len(t, items, 7)

	var found *entity.MenuItem
	for i := range items {
		if items[i].ID == created.ID {
			found = &items[i]
		}
	}
	if found == nil {
		t.Fatal("created item missing from listing")
	}
	assert.Equal(t, *created, *found)
}

func TestAddMenuItemUnknownRestaurant(t *testing.T) {
	s := newTestStore()
	assert.Nil(t, s.AddMenuItem("NOPE", entity.MenuItem{Name: "x"}))
}

func TestUpdateMenuItemPartial(t *testing.T) {
	s := newTestStore()

	available := false
	updated := s.UpdateMenuItem("REST001", "item001-1", entity.MenuItemPatch{Available: &available})
	if updated == nil {
		t.Fatal("UpdateMenuItem returned nil")
	}

	// เปลี่ยนเฉพาะ available field อื่นต้องอยู่ครบ
	assert.False(t, updated.Available)
	assert.Equal(t, "Margherita Pizza", updated.Name)
	assert.Equal(t, 12.99, updated.Price)
	assert.Equal(t, "Pizza", updated.Category)
	assert.Equal(t, "Classic pizza with tomato sauce, mozzarella, and basil", updated.Description)
}

func TestUpdateMissing(t *testing.T) {
	s := newTestStore()

	name := "x"
	assert.Nil(t, s.UpdateMenuItem("REST001", "item-missing", entity.MenuItemPatch{Name: &name}))
	assert.Nil(t, s.UpdateMenuItem("NOPE", "item001-1", entity.MenuItemPatch{Name: &name}))
	assert.Nil(t, s.UpdateTable("REST001", "table-missing", entity.TablePatch{}))
	assert.Nil(t, s.UpdateOrder("REST001", "order-missing", entity.OrderPatch{}))
}

func TestDeleteSemantics(t *testing.T) {
	s := newTestStore()

	before := len(s.MenuItems("REST001"))

	assert.False(t, s.DeleteMenuItem("REST001", "item-missing"))
	assert.Len(t, s.MenuItems("REST001"), before)

	assert.True(t, s.DeleteMenuItem("REST001", "item001-6"))
	assert.Len(t, s.MenuItems("REST001"), before-1)

	// ลบซ้ำต้อง false
	assert.False(t, s.DeleteMenuItem("REST001", "item001-6"))
}

func TestAddTableScenario(t *testing.T) {
	s := newTestStore()

	created := s.AddTable("REST001", entity.Table{Number: 7, Capacity: 4, Status: entity.TableFree})
	if created == nil {
		t.Fatal("AddTable returned nil")
	}
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 7, created.Number)
	assert.Equal(t, 4, created.Capacity)
	assert.Equal(t, entity.TableFree, created.Status)

	found := false
	for _, tb := range s.Tables("REST001") {
		if tb.ID == created.ID {
			found = true
		}
	}
	assert.True(t, found)
}

func TestOrderTotalNotRecomputed(t *testing.T) {
	s := newTestStore()

	// update total โดยไม่แตะ items: store เก็บตามที่สั่ง
	total := 999.99
	updated := s.UpdateOrder("REST001", "order001-1", entity.OrderPatch{Total: &total})
	if updated == nil {
		t.Fatal("UpdateOrder returned nil")
	}
	assert.Equal(t, 999.99, updated.Total)
	assert.Len(t, updated.Items, 2)
}

func TestReset(t *testing.T) {
	s := newTestStore()

	s.AddMenuItem("REST001", entity.MenuItem{Name: "Temp"})
	assert.True(t, s.DeleteTable("REST001", "table001-1"))

	s.Reset()

	assert.Len(t, s.MenuItems("REST001"), 6)
	assert.Len(t, s.Tables("REST001"), 6)
	assert.Len(t, s.Orders("REST001"), 3)
}

func TestTenantIsolation(t *testing.T) {
	s := newTestStore()

	s.AddMenuItem("REST001", entity.MenuItem{Name: "Only REST001"})

	for _, item := range s.MenuItems("REST002") {
		assert.NotEqual(t, "Only REST001", item.Name)
	}
}

func TestReturnedValuesAreCopies(t *testing.T) {
	s := newTestStore()

	items := s.MenuItems("REST001")
	items[0].Name = "mutated"
	assert.Equal(t, "Margherita Pizza", s.MenuItems("REST001")[0].Name)

	orders := s.Orders("REST001")
	orders[0].Items[0].Name = "mutated"
	assert.Equal(t, "Margherita Pizza", s.Orders("REST001")[0].Items[0].Name)

	r := s.RestaurantByCode("REST001")
	r.Menu[0].Price = 0
	assert.Equal(t, 12.99, s.RestaurantByCode("REST001").Menu[0].Price)
}
