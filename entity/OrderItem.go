package entity

type OrderItem struct {
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`  // snapshot ณ เวลาสั่ง
	Price      float64 `json:"price"` // snapshot ณ เวลาสั่ง
	Quantity   int     `json:"quantity"`
}
