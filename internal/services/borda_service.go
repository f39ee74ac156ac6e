package services

import (
	"github.com/joaodoardo/Cardapio-Online-Backend/internal/models"
	"gorm.io/gorm"
)

// BordaService provides methods to manage stuffed-crust options
type BordaService interface {
	// GetBordasDisponiveis retrieves crusts visible to customers
	GetBordasDisponiveis() ([]models.Borda, error)
	// GetAllBordas retrieves every crust for the admin panel
	GetAllBordas() ([]models.Borda, error)
	// CreateBorda creates a new crust option
	CreateBorda(borda models.Borda) (models.Borda, error)
	// UpdateBorda applies only the provided fields to an existing crust
	UpdateBorda(id uint, campos map[string]interface{}) (models.Borda, error)
	// DeleteBorda removes a crust option
	DeleteBorda(id uint) error
}

type bordaService struct {
	db *gorm.DB
}

// NewBordaService creates a new instance of BordaService
func NewBordaService(db *gorm.DB) BordaService {
	return &bordaService{db: db}
}

func (s *bordaService) GetBordasDisponiveis() ([]models.Borda, error) {
	var bordas []models.Borda
	if err := s.db.Where("disponivel = ?", true).Order("id").Find(&bordas).Error; err != nil {
		return nil, err
	}
	return bordas, nil
}

func (s *bordaService) GetAllBordas() ([]models.Borda, error) {
	var bordas []models.Borda
	if err := s.db.Order("id").Find(&bordas).Error; err != nil {
		return nil, err
	}
	return bordas, nil
}

func (s *bordaService) CreateBorda(borda models.Borda) (models.Borda, error) {
	if err := s.db.Create(&borda).Error; err != nil {
		return models.Borda{}, err
	}
	return borda, nil
}

func (s *bordaService) UpdateBorda(id uint, campos map[string]interface{}) (models.Borda, error) {
	var borda models.Borda
	if err := s.db.First(&borda, id).Error; err != nil {
		return models.Borda{}, err
	}
	if len(campos) > 0 {
		if err := s.db.Model(&borda).Updates(campos).Error; err != nil {
			return models.Borda{}, err
		}
	}
	if err := s.db.First(&borda, id).Error; err != nil {
		return models.Borda{}, err
	}
	return borda, nil
}

func (s *bordaService) DeleteBorda(id uint) error {
	var borda models.Borda
	if err := s.db.First(&borda, id).Error; err != nil {
		return err
	}
	return s.db.Delete(&models.Borda{}, id).Error
}
