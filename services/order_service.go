// services/order_service.go
package services

import (
	"time"

	"github.com/sauravtand/restaurant-management-system/entity"
	"github.com/sauravtand/restaurant-management-system/repository"
	"github.com/sauravtand/restaurant-management-system/ws"
)

type OrderService struct {
	Store  *repository.Store
	Events *ws.EventHub
}

func NewOrderService(store *repository.Store, events *ws.EventHub) *OrderService {
	return &OrderService{Store: store, Events: events}
}

func (s *OrderService) List(restaurantCode string) []entity.Order {
	return s.Store.Orders(restaurantCode)
}

func (s *OrderService) Add(restaurantCode string, order entity.Order) *entity.Order {
	if order.Status == "" {
		order.Status = entity.OrderPending
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	created := s.Store.AddOrder(restaurantCode, order)
	if created != nil {
		s.publish(restaurantCode, "order.created", created)
	}
	return created
}

// Update merge field ที่ส่งมาเท่านั้น Total ไม่ถูก recompute จาก Items
func (s *OrderService) Update(restaurantCode, id string, patch entity.OrderPatch) *entity.Order {
	updated := s.Store.UpdateOrder(restaurantCode, id, patch)
	if updated != nil {
		s.publish(restaurantCode, "order.updated", updated)
	}
	return updated
}

func (s *OrderService) Delete(restaurantCode, id string) bool {
	ok := s.Store.DeleteOrder(restaurantCode, id)
	if ok {
		s.publish(restaurantCode, "order.deleted", id)
	}
	return ok
}

func (s *OrderService) publish(restaurantCode, eventType string, data any) {
	if s.Events != nil {
		s.Events.Publish(restaurantCode, ws.Event{Type: eventType, Data: data})
	}
}
