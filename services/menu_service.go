// services/menu_service.go
package services

import (
	"github.com/sauravtand/restaurant-management-system/entity"
	"github.com/sauravtand/restaurant-management-system/repository"
	"github.com/sauravtand/restaurant-management-system/ws"
)

type MenuService struct {
	Store  *repository.Store
	Events *ws.EventHub
}

func NewMenuService(store *repository.Store, events *ws.EventHub) *MenuService {
	return &MenuService{Store: store, Events: events}
}

func (s *MenuService) List(restaurantCode string) []entity.MenuItem {
	return s.Store.MenuItems(restaurantCode)
}

func (s *MenuService) Add(restaurantCode string, item entity.MenuItem) *entity.MenuItem {
	created := s.Store.AddMenuItem(restaurantCode, item)
	if created != nil {
		s.publish(restaurantCode, "menu.created", created)
	}
	return created
}

func (s *MenuService) Update(restaurantCode, id string, patch entity.MenuItemPatch) *entity.MenuItem {
	updated := s.Store.UpdateMenuItem(restaurantCode, id, patch)
	if updated != nil {
		s.publish(restaurantCode, "menu.updated", updated)
	}
	return updated
}

func (s *MenuService) Delete(restaurantCode, id string) bool {
	ok := s.Store.DeleteMenuItem(restaurantCode, id)
	if ok {
		s.publish(restaurantCode, "menu.deleted", id)
	}
	return ok
}

func (s *MenuService) publish(restaurantCode, eventType string, data any) {
	if s.Events != nil {
		s.Events.Publish(restaurantCode, ws.Event{Type: eventType, Data: data})
	}
}
