package configs

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sauravtand/restaurant-management-system/entity"
)

// OpenSessionDB เปิด sqlite สำหรับเก็บ session (ข้อมูลร้านอยู่ใน memory ไม่ลง DB)
func OpenSessionDB(source string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&entity.Session{}); err != nil {
		return nil, err
	}
	return db, nil
}
