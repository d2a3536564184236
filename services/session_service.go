package services

import (
	"encoding/json"
	"log"
	"time"

	"github.com/sauravtand/restaurant-management-system/entity"
	"github.com/sauravtand/restaurant-management-system/repository"
	"github.com/sauravtand/restaurant-management-system/utils"
)

// SessionService จัดการ login/logout และ restore session จาก sqlite
// session row คือ "durable storage" ฝั่ง server: เขียนตอน login ลบตอน logout
type SessionService struct {
	auth      *AuthService
	sessions  *repository.SessionRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewSessionService(auth *AuthService, sessions *repository.SessionRepository, secret string, ttl time.Duration) *SessionService {
	return &SessionService{
		auth:      auth,
		sessions:  sessions,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

type LoginResult struct {
	Token      string            `json:"token"`
	User       entity.User       `json:"user"`
	Restaurant entity.Restaurant `json:"restaurant"`
}

// Login ตรวจ credentials ออก token แล้ว persist session
// Restaurant ใน result มี menu/tables/orders ครบ ให้ client โหลด state ได้ในรอบเดียว
func (s *SessionService) Login(email, password, restaurantCode string) (*LoginResult, error) {
	user, restaurant, err := s.auth.Authenticate(email, password, restaurantCode)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(*user, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, err
	}

	snapshot, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}

	session := &entity.Session{
		Token:          token,
		UserID:         user.ID,
		RestaurantCode: user.RestaurantCode,
		UserJSON:       string(snapshot),
		ExpiresAt:      time.Now().Add(s.jwtTTL),
	}
	if err := s.sessions.Create(session); err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, User: *user, Restaurant: *restaurant}, nil
}

// Restore โหลด user กลับมาจาก session ที่ persist ไว้
// snapshot พังหรือหมดอายุ = ลบ row แล้วถือว่าไม่ได้ login
func (s *SessionService) Restore(token string) (*entity.User, bool) {
	session, err := s.sessions.FindByToken(token)
	if err != nil {
		return nil, false
	}

	if time.Now().After(session.ExpiresAt) {
		s.Logout(token)
		return nil, false
	}

	var user entity.User
	if err := json.Unmarshal([]byte(session.UserJSON), &user); err != nil {
		log.Printf("session restore: corrupted snapshot, clearing: %v", err)
		s.Logout(token)
		return nil, false
	}
	return &user, true
}

// Logout ลบ session ทิ้ง ฝั่ง caller ถือว่าสำเร็จเสมอ
func (s *SessionService) Logout(token string) {
	if err := s.sessions.DeleteByToken(token); err != nil {
		log.Printf("session delete: %v", err)
	}
}
