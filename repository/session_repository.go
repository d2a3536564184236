// repository/session_repository.go
package repository

import (
	"gorm.io/gorm"

	"github.com/sauravtand/restaurant-management-system/entity"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) Create(s *entity.Session) error {
	return r.DB.Create(s).Error
}

func (r *SessionRepository) FindByToken(token string) (*entity.Session, error) {
	var s entity.Session
	if err := r.DB.First(&s, "token = ?", token).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SessionRepository) DeleteByToken(token string) error {
	return r.DB.Delete(&entity.Session{}, "token = ?", token).Error
}
