package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joaodoardo/Cardapio-Online-Backend/internal/services"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// PedidoController handles HTTP requests related to customer orders
type PedidoController interface {
	// CreatePedido places a new order (public)
	CreatePedido(c *gin.Context)
	// GetPedidosByTelefone lists a customer's recent orders (public)
	GetPedidosByTelefone(c *gin.Context)
	// GetPedidosAtivos lists the kitchen queue (admin)
	GetPedidosAtivos(c *gin.Context)
	// GetHistorico lists completed orders (admin)
	GetHistorico(c *gin.Context)
	// UpdateStatus moves an order to another status (admin)
	UpdateStatus(c *gin.Context)
}

type pedidoController struct {
	service services.PedidoService
}

// NewPedidoController creates a new instance of PedidoController
func NewPedidoController(service services.PedidoService) PedidoController {
	return &pedidoController{service: service}
}

// CreatePedido godoc
// @Summary Place order
// @Description Place a customer order with one or more lines
// @Tags pedidos
// @Accept json
// @Produce json
// @Param pedido body services.NovoPedido true "Order"
// @Success 201 {object} map[string]interface{} "message and pedidoId"
// @Failure 400 {object} map[string]string
// @Router /pedido [post]
func (ct *pedidoController) CreatePedido(ctx *gin.Context) {
	var req services.NovoPedido
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Dados do pedido inválidos"})
		return
	}

	pedido, err := ct.service.CreatePedido(req)
	if err != nil {
		log.WithError(err).Error("Failed to create order")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao registrar pedido"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message":  "Pedido realizado com sucesso!",
		"pedidoId": pedido.ID,
	})
}

// GetPedidosByTelefone godoc
// @Summary Customer order history
// @Description List the 10 most recent orders for a phone number, newest first
// @Tags pedidos
// @Produce json
// @Param telefone path string true "Customer phone"
// @Success 200 {array} models.Pedido
// @Failure 404 {object} map[string]string
// @Router /pedidos/cliente/{telefone} [get]
func (ct *pedidoController) GetPedidosByTelefone(ctx *gin.Context) {
	telefone := ctx.Param("telefone")

	pedidos, err := ct.service.GetPedidosByTelefone(telefone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Nenhum pedido encontrado para este telefone"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar pedidos"})
		return
	}
	ctx.JSON(http.StatusOK, pedidos)
}

// GetPedidosAtivos godoc
// @Summary Kitchen queue
// @Description List orders with status 1-3, oldest first
// @Tags pedidos
// @Produce json
// @Success 200 {array} models.Pedido
// @Security BearerAuth
// @Router /admin/pedidos [get]
func (ct *pedidoController) GetPedidosAtivos(ctx *gin.Context) {
	pedidos, err := ct.service.GetPedidosAtivos()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar pedidos"})
		return
	}
	ctx.JSON(http.StatusOK, pedidos)
}

// GetHistorico godoc
// @Summary Completed orders
// @Description List orders with status 4, newest first
// @Tags pedidos
// @Produce json
// @Success 200 {array} models.Pedido
// @Security BearerAuth
// @Router /admin/pedidos/historico [get]
func (ct *pedidoController) GetHistorico(ctx *gin.Context) {
	pedidos, err := ct.service.GetHistorico()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar histórico"})
		return
	}
	ctx.JSON(http.StatusOK, pedidos)
}

// UpdateStatus godoc
// @Summary Update order status
// @Description Move an order to any status in {1..5}
// @Tags pedidos
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param status body object{status=int} true "New status"
// @Success 200 {object} models.Pedido
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /admin/pedidos/{id}/status [put]
func (ct *pedidoController) UpdateStatus(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID de pedido inválido"})
		return
	}

	var req struct {
		Status *int `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Status é obrigatório"})
		return
	}

	pedido, err := ct.service.UpdateStatus(uint(id), *req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrStatusPedidoInvalido):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Pedido não encontrado"})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar status do pedido"})
		}
		return
	}
	ctx.JSON(http.StatusOK, pedido)
}
