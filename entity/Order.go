package entity

import "time"

// Order status values
const (
	OrderPending   = "pending"
	OrderPreparing = "preparing"
	OrderServed    = "served"
	OrderCompleted = "completed"
	OrderCancelled = "cancelled"
)

type Order struct {
	ID          string      `json:"id"`
	TableID     string      `json:"tableId"`
	TableNumber int         `json:"tableNumber"` // snapshot ตอนเปิดออเดอร์
	Items       []OrderItem `json:"items"`
	Status      string      `json:"status"`
	// Total มาจาก caller; ไม่ recompute จาก Items ฝั่ง server
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
}

func (o Order) Clone() Order {
	c := o
	c.Items = append([]OrderItem(nil), o.Items...)
	return c
}

type OrderPatch struct {
	TableID     *string      `json:"tableId"`
	TableNumber *int         `json:"tableNumber"`
	Items       *[]OrderItem `json:"items"` // replace ทั้ง list ไม่ merge รายตัว
	Status      *string      `json:"status"`
	Total       *float64     `json:"total"`
}

func (p OrderPatch) Apply(o *Order) {
	if p.TableID != nil {
		o.TableID = *p.TableID
	}
	if p.TableNumber != nil {
		o.TableNumber = *p.TableNumber
	}
	if p.Items != nil {
		o.Items = append([]OrderItem(nil), *p.Items...)
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.Total != nil {
		o.Total = *p.Total
	}
}
