package auth

import (
	"time"

	"github.com/Sharjeel-22/request-management-system/internal/domain"
)

// UserRepo defines the interface for user persistence, matching
// repository.UserRepository.
type UserRepo interface {
	Save(u *domain.User) (int64, error)
	FindByEmail(email string) (*domain.User, error)
	FindAll() (*[]domain.User, error)
}

// SessionRepo defines the interface for session persistence.
type SessionRepo interface {
	Save(s *domain.Session) error
	FindLive(id string, now time.Time) (*domain.Session, error)
	Delete(id string) error
	DeleteExpired(now time.Time) (int64, error)
}
