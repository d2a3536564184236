package entity

type Restaurant struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Code    string `json:"code"` // business key, ใช้เป็น tenant key ของทุก operation
	Address string `json:"address"`
	Phone   string `json:"phone"`

	Menu   []MenuItem `json:"menu"`
	Tables []Table    `json:"tables"`
	Orders []Order    `json:"orders"`
}

// Clone คืน value copy ทั้งก้อน รวม nested collections
// ห้ามให้ slice ภายใน store หลุดออกไปตรงๆ
func (r Restaurant) Clone() Restaurant {
	c := r
	c.Menu = append([]MenuItem(nil), r.Menu...)
	c.Tables = append([]Table(nil), r.Tables...)
	c.Orders = make([]Order, 0, len(r.Orders))
	for _, o := range r.Orders {
		c.Orders = append(c.Orders, o.Clone())
	}
	return c
}
