package services

import (
	"errors"
	"testing"

	"github.com/joaodoardo/Cardapio-Online-Backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func ordensDaCategoria(t *testing.T, db *gorm.DB, categoriaID uint) []uint {
	var itens []models.Item
	require.NoError(t, db.Where("categoria_id = ?", categoriaID).Order("ordem, id").Find(&itens).Error)
	ids := make([]uint, 0, len(itens))
	for _, it := range itens {
		ids = append(ids, it.ID)
	}
	return ids
}

func TestGetItensByCategoriaFiltraIndisponiveis(t *testing.T) {
	db := setupTestDB(t)
	service := NewItemService(db)

	categoria := criaCategoria(t, db, "Pizzas")
	criaItem(t, db, categoria.ID, "Calabresa", 0)
	indisponivel := criaItem(t, db, categoria.ID, "Quatro Queijos", 10)
	require.NoError(t, db.Model(&indisponivel).Update("disponivel", false).Error)

	itens, err := service.GetItensByCategoria(categoria.ID)
	require.NoError(t, err)
	require.Len(t, itens, 1)
	assert.Equal(t, "Calabresa", itens[0].Nome)
}

func TestGetItensByCategoriaInexistente(t *testing.T) {
	db := setupTestDB(t)
	service := NewItemService(db)

	_, err := service.GetItensByCategoria(42)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestCreateItemEntraNoFimDaCategoria(t *testing.T) {
	db := setupTestDB(t)
	service := NewItemService(db)

	categoria := criaCategoria(t, db, "Pizzas")
	criaItem(t, db, categoria.ID, "Calabresa", 0)
	criaItem(t, db, categoria.ID, "Mussarela", 10)

	criado, err := service.CreateItem(models.Item{
		Nome:        "Portuguesa",
		Preco:       42,
		Disponivel:  true,
		CategoriaID: categoria.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, 20, criado.Ordem)
}

func TestMoveItemTrocaComVizinho(t *testing.T) {
	db := setupTestDB(t)
	service := NewItemService(db)

	categoria := criaCategoria(t, db, "Pizzas")
	a := criaItem(t, db, categoria.ID, "A", 0)
	b := criaItem(t, db, categoria.ID, "B", 10)
	c := criaItem(t, db, categoria.ID, "C", 20)

	movido, err := service.MoveItem(b.ID, DirecaoSobe)
	require.NoError(t, err)
	assert.Equal(t, 0, movido.Ordem)

	assert.Equal(t, []uint{b.ID, a.ID, c.ID}, ordensDaCategoria(t, db, categoria.ID))
}

func TestMoveItemNoTopoEhNoOp(t *testing.T) {
	db := setupTestDB(t)
	service := NewItemService(db)

	categoria := criaCategoria(t, db, "Pizzas")
	a := criaItem(t, db, categoria.ID, "A", 0)
	b := criaItem(t, db, categoria.ID, "B", 10)

	movido, err := service.MoveItem(a.ID, DirecaoSobe)
	require.NoError(t, err)
	assert.Equal(t, a.Ordem, movido.Ordem)
	assert.Equal(t, []uint{a.ID, b.ID}, ordensDaCategoria(t, db, categoria.ID))

	// symmetric: last item cannot move down
	movido, err = service.MoveItem(b.ID, DirecaoDesce)
	require.NoError(t, err)
	assert.Equal(t, b.Ordem, movido.Ordem)
	assert.Equal(t, []uint{a.ID, b.ID}, ordensDaCategoria(t, db, categoria.ID))
}

func TestMoveItemSobeDepoisDesceMantemOrdemTotal(t *testing.T) {
	db := setupTestDB(t)
	service := NewItemService(db)

	categoria := criaCategoria(t, db, "Pizzas")
	a := criaItem(t, db, categoria.ID, "A", 0)
	b := criaItem(t, db, categoria.ID, "B", 10)
	c := criaItem(t, db, categoria.ID, "C", 20)

	_, err := service.MoveItem(b.ID, DirecaoSobe)
	require.NoError(t, err)
	_, err = service.MoveItem(b.ID, DirecaoDesce)
	require.NoError(t, err)

	assert.Equal(t, []uint{a.ID, b.ID, c.ID}, ordensDaCategoria(t, db, categoria.ID))

	// order keys must remain pairwise distinct
	var itens []models.Item
	require.NoError(t, db.Where("categoria_id = ?", categoria.ID).Find(&itens).Error)
	vistos := make(map[int]bool)
	for _, it := range itens {
		assert.False(t, vistos[it.Ordem], "ordem %d duplicada", it.Ordem)
		vistos[it.Ordem] = true
	}
}

func TestMoveItemDirecaoInvalida(t *testing.T) {
	db := setupTestDB(t)
	service := NewItemService(db)

	categoria := criaCategoria(t, db, "Pizzas")
	a := criaItem(t, db, categoria.ID, "A", 0)

	_, err := service.MoveItem(a.ID, "lateral")
	assert.True(t, errors.Is(err, ErrDirecaoInvalida))
}

func TestUpdateItemAplicaApenasCamposPresentes(t *testing.T) {
	db := setupTestDB(t)
	service := NewItemService(db)

	categoria := criaCategoria(t, db, "Pizzas")
	item := criaItem(t, db, categoria.ID, "Calabresa", 0)

	atualizado, err := service.UpdateItem(item.ID, map[string]interface{}{
		"descricao": "Com cebola",
	})
	require.NoError(t, err)
	assert.Equal(t, "Com cebola", atualizado.Descricao)
	// Untouched fields keep their values
	assert.Equal(t, "Calabresa", atualizado.Nome)
	assert.Equal(t, float64(30), atualizado.Preco)
	assert.True(t, atualizado.Disponivel)
}

func TestDeleteItemInexistente(t *testing.T) {
	db := setupTestDB(t)
	service := NewItemService(db)

	err := service.DeleteItem(999)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
