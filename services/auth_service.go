package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/sauravtand/restaurant-management-system/entity"
	"github.com/sauravtand/restaurant-management-system/repository"
)

// ErrInvalidCredentials ใช้กับทุกกรณีที่ login ไม่ผ่าน
// ไม่แยกว่า email ผิด รหัสผิด หรือ code ผิด
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService ตรวจ credentials กับ dataset ใน store
type AuthService struct {
	store *repository.Store
}

func NewAuthService(store *repository.Store) *AuthService {
	return &AuthService{store: store}
}

// Authenticate ตรวจ email+password+restaurantCode ทั้งสามตัวพร้อมกัน
// สำเร็จคืน user (ไม่มี password) กับร้านทั้งก้อน รวม menu/tables/orders
func (s *AuthService) Authenticate(email, password, restaurantCode string) (*entity.User, *entity.Restaurant, error) {
	user, ok := s.store.FindUser(email, restaurantCode)
	if !ok {
		return nil, nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	// ไม่มีร้านของ code นี้ = ถือว่า credentials ผิดเหมือนกัน
	restaurant := s.store.RestaurantByCode(user.RestaurantCode)
	if restaurant == nil {
		return nil, nil, ErrInvalidCredentials
	}

	safe := user.Sanitized()
	return &safe, restaurant, nil
}

// VerifyAccess ตรวจว่า user มีสิทธิ์ในร้าน code นี้ไหม
func (s *AuthService) VerifyAccess(user *entity.User, restaurantCode string) bool {
	if user == nil {
		return false
	}
	return user.RestaurantCode == restaurantCode
}

// HasRole ตรวจว่า role ของ user อยู่ในชุดที่กำหนด
func (s *AuthService) HasRole(user *entity.User, roles ...string) bool {
	if user == nil {
		return false
	}
	for _, r := range roles {
		if user.Role == r {
			return true
		}
	}
	return false
}
