// repository/store.go
package repository

import (
	"sync"

	"github.com/google/uuid"

	"github.com/sauravtand/restaurant-management-system/entity"
)

// Store เก็บข้อมูลร้านทั้งหมดใน memory แยก tenant ด้วย restaurant code
// ทุกค่าที่ออกจาก store เป็น clone เสมอ ห้าม caller แก้ state ข้างในผ่าน alias
type Store struct {
	mu          sync.RWMutex
	users       []entity.User
	restaurants []entity.Restaurant

	seedUsers       []entity.User
	seedRestaurants []entity.Restaurant
}

func NewStore(users []entity.User, restaurants []entity.Restaurant) *Store {
	s := &Store{
		seedUsers:       append([]entity.User(nil), users...),
		seedRestaurants: cloneRestaurants(restaurants),
	}
	s.reset()
	return s
}

// Reset ทิ้ง mutation ทั้งหมด กลับไปที่ seed dataset
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

func (s *Store) reset() {
	s.users = append([]entity.User(nil), s.seedUsers...)
	s.restaurants = cloneRestaurants(s.seedRestaurants)
}

func cloneRestaurants(src []entity.Restaurant) []entity.Restaurant {
	out := make([]entity.Restaurant, 0, len(src))
	for _, r := range src {
		out = append(out, r.Clone())
	}
	return out
}

func newID(kind string) string {
	return kind + "-" + uuid.NewString()
}

// findRestaurant คืน record จริงสำหรับแก้ in place; caller ต้องถือ lock อยู่
func (s *Store) findRestaurant(code string) *entity.Restaurant {
	for i := range s.restaurants {
		if s.restaurants[i].Code == code {
			return &s.restaurants[i]
		}
	}
	return nil
}

// FindUser หา user ที่ email และ restaurant code ตรงเป๊ะ (case-sensitive)
func (s *Store) FindUser(email, restaurantCode string) (entity.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email && u.RestaurantCode == restaurantCode {
			return u, true
		}
	}
	return entity.User{}, false
}

// RestaurantByCode คืน clone ของร้านทั้งก้อน หรือ nil ถ้าไม่เจอ
func (s *Store) RestaurantByCode(code string) *entity.Restaurant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r := s.findRestaurant(code)
	if r == nil {
		return nil
	}
	c := r.Clone()
	return &c
}

// ===== Menu items =====

func (s *Store) MenuItems(code string) []entity.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r := s.findRestaurant(code)
	if r == nil {
		return []entity.MenuItem{}
	}
	return append([]entity.MenuItem{}, r.Menu...)
}

func (s *Store) AddMenuItem(code string, item entity.MenuItem) *entity.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.findRestaurant(code)
	if r == nil {
		return nil
	}
	item.ID = newID("item")
	r.Menu = append(r.Menu, item)
	return &item
}

func (s *Store) UpdateMenuItem(code, id string, patch entity.MenuItemPatch) *entity.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.findRestaurant(code)
	if r == nil {
		return nil
	}
	for i := range r.Menu {
		if r.Menu[i].ID == id {
			patch.Apply(&r.Menu[i])
			c := r.Menu[i]
			return &c
		}
	}
	return nil
}

func (s *Store) DeleteMenuItem(code, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.findRestaurant(code)
	if r == nil {
		return false
	}
	before := len(r.Menu)
	kept := r.Menu[:0]
	for _, m := range r.Menu {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	r.Menu = kept
	return len(r.Menu) < before
}

// ===== Tables =====

func (s *Store) Tables(code string) []entity.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r := s.findRestaurant(code)
	if r == nil {
		return []entity.Table{}
	}
	return append([]entity.Table{}, r.Tables...)
}

func (s *Store) AddTable(code string, table entity.Table) *entity.Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.findRestaurant(code)
	if r == nil {
		return nil
	}
	table.ID = newID("table")
	r.Tables = append(r.Tables, table)
	return &table
}

func (s *Store) UpdateTable(code, id string, patch entity.TablePatch) *entity.Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.findRestaurant(code)
	if r == nil {
		return nil
	}
	for i := range r.Tables {
		if r.Tables[i].ID == id {
			patch.Apply(&r.Tables[i])
			c := r.Tables[i]
			return &c
		}
	}
	return nil
}

func (s *Store) DeleteTable(code, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.findRestaurant(code)
	if r == nil {
		return false
	}
	before := len(r.Tables)
	kept := r.Tables[:0]
	for _, t := range r.Tables {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	r.Tables = kept
	return len(r.Tables) < before
}

// ===== Orders =====

func (s *Store) Orders(code string) []entity.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r := s.findRestaurant(code)
	if r == nil {
		return []entity.Order{}
	}
	out := make([]entity.Order, 0, len(r.Orders))
	for _, o := range r.Orders {
		out = append(out, o.Clone())
	}
	return out
}

func (s *Store) AddOrder(code string, order entity.Order) *entity.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.findRestaurant(code)
	if r == nil {
		return nil
	}
	order.ID = newID("order")
	order.Items = append([]entity.OrderItem(nil), order.Items...)
	r.Orders = append(r.Orders, order)
	c := order.Clone()
	return &c
}

func (s *Store) UpdateOrder(code, id string, patch entity.OrderPatch) *entity.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.findRestaurant(code)
	if r == nil {
		return nil
	}
	for i := range r.Orders {
		if r.Orders[i].ID == id {
			patch.Apply(&r.Orders[i])
			c := r.Orders[i].Clone()
			return &c
		}
	}
	return nil
}

func (s *Store) DeleteOrder(code, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.findRestaurant(code)
	if r == nil {
		return false
	}
	before := len(r.Orders)
	kept := r.Orders[:0]
	for _, o := range r.Orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	r.Orders = kept
	return len(r.Orders) < before
}
