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

func setupPedidoRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	pedidoController := NewPedidoController(services.NewPedidoService(db))

	router := gin.New()
	router.POST("/pedido", pedidoController.CreatePedido)
	router.GET("/pedidos/cliente/:telefone", pedidoController.GetPedidosByTelefone)
	return router
}

func criaItemDeCardapio(t *testing.T, db *gorm.DB) models.Item {
	categoria := models.Categoria{Nome: "Pizzas"}
	require.NoError(t, db.Create(&categoria).Error)
	item := models.Item{Nome: "Calabresa", Preco: 30, Disponivel: true, CategoriaID: categoria.ID}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func TestCreatePedidoValido(t *testing.T) {
	db := setupTestDB(t)
	item := criaItemDeCardapio(t, db)
	router := setupPedidoRouter(db)

	w := doJSON(router, "POST", "/pedido", "", gin.H{
		"nomeCliente":     "Ana",
		"telefone":        "11999999999",
		"endereco":        "Rua X, 10",
		"metodoPagamento": "pix",
		"itens": []gin.H{
			{"itemId": item.ID, "quantidade": 2, "tamanho": "M", "precoFinal": 39.90},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotZero(t, resp["pedidoId"])

	// the order shows up in the customer's history with its line
	w = doJSON(router, "GET", "/pedidos/cliente/11999999999", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var pedidos []models.Pedido
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pedidos))
	require.Len(t, pedidos, 1)
	require.Len(t, pedidos[0].Itens, 1)
	assert.Equal(t, 2, pedidos[0].Itens[0].Quantidade)
}

func TestCreatePedidoSemItens(t *testing.T) {
	db := setupTestDB(t)
	router := setupPedidoRouter(db)

	w := doJSON(router, "POST", "/pedido", "", gin.H{
		"nomeCliente":     "Ana",
		"telefone":        "11999999999",
		"endereco":        "Rua X, 10",
		"metodoPagamento": "pix",
		"itens":           []gin.H{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.Pedido{}).Count(&count)
	assert.Equal(t, int64(0), count, "no row may be created on rejection")
}

func TestCreatePedidoSemMetodoPagamento(t *testing.T) {
	db := setupTestDB(t)
	item := criaItemDeCardapio(t, db)
	router := setupPedidoRouter(db)

	w := doJSON(router, "POST", "/pedido", "", gin.H{
		"nomeCliente": "Ana",
		"telefone":    "11999999999",
		"endereco":    "Rua X, 10",
		"itens": []gin.H{
			{"itemId": item.ID, "quantidade": 1, "tamanho": "G", "precoFinal": 49.90},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.Pedido{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestGetPedidosTelefoneDesconhecido(t *testing.T) {
	db := setupTestDB(t)
	router := setupPedidoRouter(db)

	w := doJSON(router, "GET", "/pedidos/cliente/11000000000", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
