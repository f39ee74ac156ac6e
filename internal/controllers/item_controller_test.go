package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/joaodoardo/Cardapio-Online-Backend/internal/models"
	"github.com/joaodoardo/Cardapio-Online-Backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupItemRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	itemController := NewItemController(services.NewItemService(db))

	// admin routes registered without the auth middleware: these tests
	// exercise the handlers, the guard is covered by the auth tests
	router := gin.New()
	router.GET("/categorias/:id/itens", itemController.GetItensByCategoria)
	router.POST("/admin/item", itemController.CreateItem)
	router.PUT("/admin/item/:id", itemController.UpdateItem)
	router.PATCH("/admin/item/:id/move", itemController.MoveItem)
	return router
}

func TestCreateItemSemPreco(t *testing.T) {
	db := setupTestDB(t)
	categoria := models.Categoria{Nome: "Pizzas"}
	require.NoError(t, db.Create(&categoria).Error)
	router := setupItemRouter(db)

	w := doJSON(router, "POST", "/admin/item", "", gin.H{
		"nome":        "Calabresa",
		"categoriaId": categoria.ID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateItemNaoClobberaCamposOmitidos(t *testing.T) {
	db := setupTestDB(t)
	item := criaItemDeCardapio(t, db)
	require.NoError(t, db.Model(&item).Update("descricao", "Com cebola").Error)
	router := setupItemRouter(db)

	// PUT only sends the price; name and description must survive
	w := doJSON(router, "PUT", "/admin/item/1", "", gin.H{"preco": 35.0})
	require.Equal(t, http.StatusOK, w.Code)

	var atualizado models.Item
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &atualizado))
	assert.InDelta(t, 35.0, atualizado.Preco, 0.001)
	assert.Equal(t, "Calabresa", atualizado.Nome)
	assert.Equal(t, "Com cebola", atualizado.Descricao)
}

func TestMoveItemViaHTTP(t *testing.T) {
	db := setupTestDB(t)
	categoria := models.Categoria{Nome: "Pizzas"}
	require.NoError(t, db.Create(&categoria).Error)
	primeiro := models.Item{Nome: "A", Preco: 30, Disponivel: true, Ordem: 0, CategoriaID: categoria.ID}
	segundo := models.Item{Nome: "B", Preco: 30, Disponivel: true, Ordem: 10, CategoriaID: categoria.ID}
	require.NoError(t, db.Create(&primeiro).Error)
	require.NoError(t, db.Create(&segundo).Error)
	router := setupItemRouter(db)

	w := doJSON(router, "PATCH", "/admin/item/2/move", "", gin.H{"direcao": "sobe"})
	require.Equal(t, http.StatusOK, w.Code)

	var movido models.Item
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &movido))
	assert.Equal(t, 0, movido.Ordem)

	// bad direction is a 400
	w = doJSON(router, "PATCH", "/admin/item/2/move", "", gin.H{"direcao": "diagonal"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// unknown item is a 404
	w = doJSON(router, "PATCH", "/admin/item/99/move", "", gin.H{"direcao": "sobe"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetItensCategoriaInexistente(t *testing.T) {
	db := setupTestDB(t)
	router := setupItemRouter(db)

	w := doJSON(router, "GET", "/categorias/99/itens", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
