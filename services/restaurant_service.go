// services/restaurant_service.go
package services

import (
	"github.com/sauravtand/restaurant-management-system/entity"
	"github.com/sauravtand/restaurant-management-system/repository"
)

type RestaurantService struct {
	Store *repository.Store
}

func NewRestaurantService(store *repository.Store) *RestaurantService {
	return &RestaurantService{Store: store}
}

func (s *RestaurantService) Get(restaurantCode string) *entity.Restaurant {
	return s.Store.RestaurantByCode(restaurantCode)
}

// DashboardStats สรุปตัวเลขหน้า dashboard
type DashboardStats struct {
	Tables struct {
		Total    int `json:"total"`
		Free     int `json:"free"`
		Occupied int `json:"occupied"`
		Reserved int `json:"reserved"`
	} `json:"tables"`
	Orders struct {
		Total     int `json:"total"`
		Pending   int `json:"pending"`
		Preparing int `json:"preparing"`
		Served    int `json:"served"`
		Completed int `json:"completed"`
		Cancelled int `json:"cancelled"`
	} `json:"orders"`
	// Revenue รวม total ของทุกออเดอร์ที่ไม่ cancelled
	Revenue float64 `json:"revenue"`
}

func (s *RestaurantService) Dashboard(restaurantCode string) DashboardStats {
	var stats DashboardStats

	for _, t := range s.Store.Tables(restaurantCode) {
		stats.Tables.Total++
		switch t.Status {
		case entity.TableFree:
			stats.Tables.Free++
		case entity.TableOccupied:
			stats.Tables.Occupied++
		case entity.TableReserved:
			stats.Tables.Reserved++
		}
	}

	for _, o := range s.Store.Orders(restaurantCode) {
		stats.Orders.Total++
		switch o.Status {
		case entity.OrderPending:
			stats.Orders.Pending++
		case entity.OrderPreparing:
			stats.Orders.Preparing++
		case entity.OrderServed:
			stats.Orders.Served++
		case entity.OrderCompleted:
			stats.Orders.Completed++
		case entity.OrderCancelled:
			stats.Orders.Cancelled++
		}
		if o.Status != entity.OrderCancelled {
			stats.Revenue += o.Total
		}
	}

	return stats
}
