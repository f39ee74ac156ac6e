package services

import (
	"github.com/joaodoardo/Cardapio-Online-Backend/internal/models"
	"gorm.io/gorm"
)

// TipoMassaService provides methods to manage dough-type options
type TipoMassaService interface {
	GetTiposMassaDisponiveis() ([]models.TipoMassa, error)
	GetAllTiposMassa() ([]models.TipoMassa, error)
	CreateTipoMassa(massa models.TipoMassa) (models.TipoMassa, error)
	UpdateTipoMassa(id uint, campos map[string]interface{}) (models.TipoMassa, error)
	DeleteTipoMassa(id uint) error
}

type tipoMassaService struct {
	db *gorm.DB
}

// NewTipoMassaService creates a new instance of TipoMassaService
func NewTipoMassaService(db *gorm.DB) TipoMassaService {
	return &tipoMassaService{db: db}
}

func (s *tipoMassaService) GetTiposMassaDisponiveis() ([]models.TipoMassa, error) {
	var massas []models.TipoMassa
	if err := s.db.Where("disponivel = ?", true).Order("id").Find(&massas).Error; err != nil {
		return nil, err
	}
	return massas, nil
}

func (s *tipoMassaService) GetAllTiposMassa() ([]models.TipoMassa, error) {
	var massas []models.TipoMassa
	if err := s.db.Order("id").Find(&massas).Error; err != nil {
		return nil, err
	}
	return massas, nil
}

func (s *tipoMassaService) CreateTipoMassa(massa models.TipoMassa) (models.TipoMassa, error) {
	if err := s.db.Create(&massa).Error; err != nil {
		return models.TipoMassa{}, err
	}
	return massa, nil
}

func (s *tipoMassaService) UpdateTipoMassa(id uint, campos map[string]interface{}) (models.TipoMassa, error) {
	var massa models.TipoMassa
	if err := s.db.First(&massa, id).Error; err != nil {
		return models.TipoMassa{}, err
	}
	if len(campos) > 0 {
		if err := s.db.Model(&massa).Updates(campos).Error; err != nil {
			return models.TipoMassa{}, err
		}
	}
	if err := s.db.First(&massa, id).Error; err != nil {
		return models.TipoMassa{}, err
	}
	return massa, nil
}

func (s *tipoMassaService) DeleteTipoMassa(id uint) error {
	var massa models.TipoMassa
	if err := s.db.First(&massa, id).Error; err != nil {
		return err
	}
	return s.db.Delete(&models.TipoMassa{}, id).Error
}
