package entity

import "time"

// Session คือ row ใน sqlite เก็บ identity ของ client ที่ login ค้างไว้
// UserJSON เป็น snapshot ของ user ตอน login (ไม่รวม password)
type Session struct {
	Token          string    `gorm:"primaryKey" json:"-"`
	UserID         string    `json:"userId"`
	RestaurantCode string    `json:"restaurantCode"`
	UserJSON       string    `json:"-"`
	ExpiresAt      time.Time `json:"expiresAt"`
	CreatedAt      time.Time `json:"createdAt"`
}
