package services

import (
	"errors"

	"github.com/joaodoardo/Cardapio-Online-Backend/internal/models"
	"gorm.io/gorm"
)

// AdminService manages the back-office account
type AdminService interface {
	GetAdminByEmail(email string) (*models.Admin, error)
	// EnsureDefaultAdmin creates the bootstrap account when the admin
	// table is empty
	EnsureDefaultAdmin(email, senha string) error
}

type adminService struct {
	db *gorm.DB
}

// NewAdminService creates a new instance of AdminService
func NewAdminService(db *gorm.DB) AdminService {
	return &adminService{db: db}
}

func (s *adminService) GetAdminByEmail(email string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.db.Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (s *adminService) EnsureDefaultAdmin(email, senha string) error {
	var existing models.Admin
	err := s.db.First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	admin := models.Admin{Email: email, Senha: senha}
	if err := admin.HashSenha(); err != nil {
		return err
	}
	return s.db.Create(&admin).Error
}
