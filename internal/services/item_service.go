package services

import (
	"errors"

	"github.com/joaodoardo/Cardapio-Online-Backend/internal/models"
	"gorm.io/gorm"
)

// Move directions accepted by MoveItem
const (
	DirecaoSobe  = "sobe"
	DirecaoDesce = "desce"
)

// ErrDirecaoInvalida is returned when the move direction is not sobe/desce
var ErrDirecaoInvalida = errors.New("direção inválida: use 'sobe' ou 'desce'")

// Gap between consecutive order keys. New keys are written as index*10 so
// up to 9 items can be slotted between two neighbours before the category
// needs renumbering.
const ordemGap = 10

// ItemService provides methods to manage menu items
type ItemService interface {
	// GetItensByCategoria retrieves the available items of a category,
	// sorted by order key; fails with gorm.ErrRecordNotFound when the
	// category does not exist
	GetItensByCategoria(categoriaID uint) ([]models.Item, error)
	// GetAllItens retrieves every item regardless of availability, with
	// its category, for the admin panel
	GetAllItens() ([]models.Item, error)
	// GetItemByID retrieves a single item
	GetItemByID(id uint) (models.Item, error)
	// CreateItem creates a new item at the end of its category
	CreateItem(item models.Item) (models.Item, error)
	// UpdateItem applies only the provided fields to an existing item
	UpdateItem(id uint, campos map[string]interface{}) (models.Item, error)
	// DeleteItem removes an item
	DeleteItem(id uint) error
	// MoveItem swaps an item with its neighbour in the given direction
	MoveItem(id uint, direcao string) (models.Item, error)
}

type itemService struct {
	db *gorm.DB
}

// NewItemService creates a new instance of ItemService
func NewItemService(db *gorm.DB) ItemService {
	return &itemService{db: db}
}

func (s *itemService) GetItensByCategoria(categoriaID uint) ([]models.Item, error) {
	var categoria models.Categoria
	if err := s.db.First(&categoria, categoriaID).Error; err != nil {
		return nil, err
	}

	var itens []models.Item
	err := s.db.
		Where("categoria_id = ? AND disponivel = ?", categoriaID, true).
		Order("ordem, id").
		Find(&itens).Error
	if err != nil {
		return nil, err
	}
	return itens, nil
}

func (s *itemService) GetAllItens() ([]models.Item, error) {
	var itens []models.Item
	err := s.db.
		Preload("Categoria").
		Order("categoria_id, ordem, id").
		Find(&itens).Error
	if err != nil {
		return nil, err
	}
	return itens, nil
}

func (s *itemService) GetItemByID(id uint) (models.Item, error) {
	var item models.Item
	if err := s.db.First(&item, id).Error; err != nil {
		return models.Item{}, err
	}
	return item, nil
}

func (s *itemService) CreateItem(item models.Item) (models.Item, error) {
	var categoria models.Categoria
	if err := s.db.First(&categoria, item.CategoriaID).Error; err != nil {
		return models.Item{}, err
	}

	// Place the new item after the current tail of the category
	var count int64
	if err := s.db.Model(&models.Item{}).Where("categoria_id = ?", item.CategoriaID).Count(&count).Error; err != nil {
		return models.Item{}, err
	}
	item.Ordem = int(count) * ordemGap

	if err := s.db.Create(&item).Error; err != nil {
		return models.Item{}, err
	}
	return item, nil
}

func (s *itemService) UpdateItem(id uint, campos map[string]interface{}) (models.Item, error) {
	var item models.Item
	if err := s.db.First(&item, id).Error; err != nil {
		return models.Item{}, err
	}

	if len(campos) > 0 {
		if err := s.db.Model(&item).Updates(campos).Error; err != nil {
			return models.Item{}, err
		}
	}

	if err := s.db.First(&item, id).Error; err != nil {
		return models.Item{}, err
	}
	return item, nil
}

func (s *itemService) DeleteItem(id uint) error {
	var item models.Item
	if err := s.db.First(&item, id).Error; err != nil {
		return err
	}
	return s.db.Delete(&models.Item{}, id).Error
}

// MoveItem is a single-step bubble swap: the item trades order keys with
// its adjacent neighbour inside one transaction. Moving past either end
// of the category is a no-op that returns the item unchanged.
func (s *itemService) MoveItem(id uint, direcao string) (models.Item, error) {
	var item models.Item
	if err := s.db.First(&item, id).Error; err != nil {
		return models.Item{}, err
	}

	var vizinhos []models.Item
	err := s.db.
		Where("categoria_id = ?", item.CategoriaID).
		Order("ordem, id").
		Find(&vizinhos).Error
	if err != nil {
		return models.Item{}, err
	}

	atual := -1
	for i := range vizinhos {
		if vizinhos[i].ID == item.ID {
			atual = i
			break
		}
	}

	var alvo int
	switch direcao {
	case DirecaoSobe:
		alvo = atual - 1
	case DirecaoDesce:
		alvo = atual + 1
	default:
		return models.Item{}, ErrDirecaoInvalida
	}

	if alvo < 0 || alvo >= len(vizinhos) {
		return item, nil
	}

	vizinho := vizinhos[alvo]
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Item{}).Where("id = ?", item.ID).Update("ordem", alvo*ordemGap).Error; err != nil {
			return err
		}
		return tx.Model(&models.Item{}).Where("id = ?", vizinho.ID).Update("ordem", atual*ordemGap).Error
	})
	if err != nil {
		return models.Item{}, err
	}

	item.Ordem = alvo * ordemGap
	return item, nil
}
