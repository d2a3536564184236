// services/table_service.go
package services

import (
	"github.com/sauravtand/restaurant-management-system/entity"
	"github.com/sauravtand/restaurant-management-system/repository"
	"github.com/sauravtand/restaurant-management-system/ws"
)

type TableService struct {
	Store  *repository.Store
	Events *ws.EventHub
}

func NewTableService(store *repository.Store, events *ws.EventHub) *TableService {
	return &TableService{Store: store, Events: events}
}

func (s *TableService) List(restaurantCode string) []entity.Table {
	return s.Store.Tables(restaurantCode)
}

func (s *TableService) Add(restaurantCode string, table entity.Table) *entity.Table {
	created := s.Store.AddTable(restaurantCode, table)
	if created != nil {
		s.publish(restaurantCode, "table.created", created)
	}
	return created
}

func (s *TableService) Update(restaurantCode, id string, patch entity.TablePatch) *entity.Table {
	updated := s.Store.UpdateTable(restaurantCode, id, patch)
	if updated != nil {
		s.publish(restaurantCode, "table.updated", updated)
	}
	return updated
}

func (s *TableService) Delete(restaurantCode, id string) bool {
	ok := s.Store.DeleteTable(restaurantCode, id)
	if ok {
		s.publish(restaurantCode, "table.deleted", id)
	}
	return ok
}

func (s *TableService) publish(restaurantCode, eventType string, data any) {
	if s.Events != nil {
		s.Events.Publish(restaurantCode, ws.Event{Type: eventType, Data: data})
	}
}
