package services

import (
	"errors"
	"testing"

	"github.com/joaodoardo/Cardapio-Online-Backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestDeleteCategoriaSemItens(t *testing.T) {
	db := setupTestDB(t)
	service := NewCategoriaService(db)

	categoria := criaCategoria(t, db, "Bebidas")

	err := service.DeleteCategoria(categoria.ID)
	assert.NoError(t, err)

	var count int64
	db.Model(&models.Categoria{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestDeleteCategoriaComItensBloqueado(t *testing.T) {
	db := setupTestDB(t)
	service := NewCategoriaService(db)

	categoria := criaCategoria(t, db, "Pizzas")
	criaItem(t, db, categoria.ID, "Calabresa", 0)
	criaItem(t, db, categoria.ID, "Mussarela", 10)
	criaItem(t, db, categoria.ID, "Portuguesa", 20)

	err := service.DeleteCategoria(categoria.ID)
	require.Error(t, err)

	var emUso *CategoriaEmUsoError
	require.True(t, errors.As(err, &emUso))
	assert.Equal(t, int64(3), emUso.Itens)
	assert.Contains(t, err.Error(), "3")

	// Category must still exist
	var count int64
	db.Model(&models.Categoria{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestDeleteCategoriaInexistente(t *testing.T) {
	db := setupTestDB(t)
	service := NewCategoriaService(db)

	err := service.DeleteCategoria(999)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestUpdateCategoria(t *testing.T) {
	db := setupTestDB(t)
	service := NewCategoriaService(db)

	categoria := criaCategoria(t, db, "Sobremesas")

	atualizada, err := service.UpdateCategoria(categoria.ID, "Doces")
	require.NoError(t, err)
	assert.Equal(t, "Doces", atualizada.Nome)
}

func TestGetAllCategoriasOrdenadasPorID(t *testing.T) {
	db := setupTestDB(t)
	service := NewCategoriaService(db)

	criaCategoria(t, db, "Pizzas")
	criaCategoria(t, db, "Bebidas")

	categorias, err := service.GetAllCategorias()
	require.NoError(t, err)
	require.Len(t, categorias, 2)
	assert.Equal(t, "Pizzas", categorias[0].Nome)
	assert.Equal(t, "Bebidas", categorias[1].Nome)
}
