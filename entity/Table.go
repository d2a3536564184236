package entity

// Table status values
const (
	TableFree     = "free"
	TableOccupied = "occupied"
	TableReserved = "reserved"
)

type Table struct {
	ID       string `json:"id"`
	Number   int    `json:"number"` // display number, ไม่บังคับ unique
	Capacity int    `json:"capacity"`
	Status   string `json:"status"`
}

type TablePatch struct {
	Number   *int    `json:"number"`
	Capacity *int    `json:"capacity"`
	Status   *string `json:"status"`
}

func (p TablePatch) Apply(t *Table) {
	if p.Number != nil {
		t.Number = *p.Number
	}
	if p.Capacity != nil {
		t.Capacity = *p.Capacity
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
}
