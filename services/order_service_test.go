package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sauravtand/restaurant-management-system/configs"
	"github.com/sauravtand/restaurant-management-system/entity"
	"github.com/sauravtand/restaurant-management-system/repository"
)

func newOrderService() *OrderService {
	return NewOrderService(repository.NewStore(configs.SeedUsers(), configs.SeedRestaurants()), nil)
}

func TestOrderAddDefaults(t *testing.T) {
	svc := newOrderService()

	created := svc.Add("REST001", entity.Order{
		TableID:     "table001-2",
		TableNumber: 2,
		Items: []entity.OrderItem{
			{MenuItemID: "item001-1", Name: "Margherita Pizza", Price: 12.99, Quantity: 2},
		},
		Total: 25.98,
	})
	if created == nil {
		t.Fatal("Add returned nil")
	}
	assert.Equal(t, entity.OrderPending, created.Status)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, 25.98, created.Total)
}

func TestOrderUpdateStatusOnly(t *testing.T) {
	svc := newOrderService()

	status := entity.OrderCompleted
	updated := svc.Update("REST001", "order001-2", entity.OrderPatch{Status: &status})
	if updated == nil {
		t.Fatal("Update returned nil")
	}
	assert.Equal(t, entity.OrderCompleted, updated.Status)
	// field อื่นคงเดิม
	assert.Equal(t, 34.97, updated.Total)
	assert.Len(t, updated.Items, 2)
	assert.Equal(t, "table001-3", updated.TableID)
}

func TestOrderItemsReplaceNotMerge(t *testing.T) {
	svc := newOrderService()

	items := []entity.OrderItem{
		{MenuItemID: "item001-5", Name: "Tiramisu", Price: 7.99, Quantity: 1},
	}
	updated := svc.Update("REST001", "order001-1", entity.OrderPatch{Items: &items})
	if updated == nil {
		t.Fatal("Update returned nil")
	}
	assert.Len(t, updated.Items, 1)
	// total ไม่ recompute ตาม items ใหม่
	assert.Equal(t, 21.98, updated.Total)
}

func TestOrderDelete(t *testing.T) {
	svc := newOrderService()

	assert.True(t, svc.Delete("REST001", "order001-3"))
	assert.Len(t, svc.List("REST001"), 2)
	assert.False(t, svc.Delete("REST001", "order001-3"))
	assert.False(t, svc.Delete("NOPE", "order001-1"))
}
