package services

import (
	"fmt"

	"github.com/joaodoardo/Cardapio-Online-Backend/internal/models"
	"gorm.io/gorm"
)

// CategoriaEmUsoError is returned when a category still has items attached
type CategoriaEmUsoError struct {
	Itens int64
}

func (e *CategoriaEmUsoError) Error() string {
	return fmt.Sprintf("categoria possui %d itens vinculados", e.Itens)
}

// CategoriaService provides methods to manage menu categories
type CategoriaService interface {
	// GetAllCategorias retrieves all categories (id + name only)
	GetAllCategorias() ([]models.Categoria, error)
	// CreateCategoria creates a new category
	CreateCategoria(categoria models.Categoria) (models.Categoria, error)
	// UpdateCategoria renames an existing category
	UpdateCategoria(id uint, nome string) (models.Categoria, error)
	// DeleteCategoria deletes a category; fails with CategoriaEmUsoError
	// while any item still references it
	DeleteCategoria(id uint) error
}

type categoriaService struct {
	db *gorm.DB
}

// NewCategoriaService creates a new instance of CategoriaService
func NewCategoriaService(db *gorm.DB) CategoriaService {
	return &categoriaService{db: db}
}

func (s *categoriaService) GetAllCategorias() ([]models.Categoria, error) {
	var categorias []models.Categoria
	if err := s.db.Select("id", "nome").Order("id").Find(&categorias).Error; err != nil {
		return nil, err
	}
	return categorias, nil
}

func (s *categoriaService) CreateCategoria(categoria models.Categoria) (models.Categoria, error) {
	if err := s.db.Create(&categoria).Error; err != nil {
		return models.Categoria{}, err
	}
	return categoria, nil
}

func (s *categoriaService) UpdateCategoria(id uint, nome string) (models.Categoria, error) {
	var categoria models.Categoria
	if err := s.db.First(&categoria, id).Error; err != nil {
		return models.Categoria{}, err
	}
	categoria.Nome = nome
	if err := s.db.Save(&categoria).Error; err != nil {
		return models.Categoria{}, err
	}
	return categoria, nil
}

func (s *categoriaService) DeleteCategoria(id uint) error {
	var categoria models.Categoria
	if err := s.db.First(&categoria, id).Error; err != nil {
		return err
	}

	var count int64
	if err := s.db.Model(&models.Item{}).Where("categoria_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return &CategoriaEmUsoError{Itens: count}
	}

	return s.db.Delete(&models.Categoria{}, id).Error
}
