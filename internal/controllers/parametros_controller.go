package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joaodoardo/Cardapio-Online-Backend/internal/services"
	"gorm.io/gorm"
)

// ParametrosController handles the delivery fee and opening-hours routes
type ParametrosController interface {
	GetTaxaEntrega(c *gin.Context)
	UpdateTaxaEntrega(c *gin.Context)
	GetHorarios(c *gin.Context)
	UpdateHorarios(c *gin.Context)
}

type parametrosController struct {
	service services.ParametrosService
}

// NewParametrosController creates a new instance of ParametrosController
func NewParametrosController(service services.ParametrosService) ParametrosController {
	return &parametrosController{service: service}
}

// GetTaxaEntrega godoc
// @Summary Delivery fee
// @Tags parametros
// @Produce json
// @Success 200 {object} models.TaxaEntrega
// @Router /entrega [get]
func (ct *parametrosController) GetTaxaEntrega(ctx *gin.Context) {
	taxa, err := ct.service.GetTaxaEntrega()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar taxa de entrega"})
		return
	}
	ctx.JSON(http.StatusOK, taxa)
}

// UpdateTaxaEntrega godoc
// @Summary Update delivery fee
// @Description Set the delivery fee; NaN and negative values are rejected
// @Tags parametros
// @Accept json
// @Produce json
// @Param id path int true "Fee row ID"
// @Param taxa body object{valor=number} true "New fee"
// @Success 200 {object} models.TaxaEntrega
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /admin/entrega/{id} [put]
func (ct *parametrosController) UpdateTaxaEntrega(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	var req struct {
		Valor *float64 `json:"valor" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Valor da taxa é obrigatório"})
		return
	}

	taxa, err := ct.service.UpdateTaxaEntrega(uint(id), *req.Valor)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTaxaInvalida):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Taxa de entrega não encontrada"})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar taxa de entrega"})
		}
		return
	}
	ctx.JSON(http.StatusOK, taxa)
}

// GetHorarios godoc
// @Summary Weekly opening hours
// @Tags parametros
// @Produce json
// @Success 200 {array} models.HorarioFuncionamento
// @Router /horarios [get]
func (ct *parametrosController) GetHorarios(ctx *gin.Context) {
	horarios, err := ct.service.GetHorarios()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar horários"})
		return
	}
	ctx.JSON(http.StatusOK, horarios)
}

// UpdateHorarios godoc
// @Summary Update weekly opening hours
// @Description Upsert the full 7-day schedule atomically; partial schedules are rejected
// @Tags parametros
// @Accept json
// @Produce json
// @Param horarios body []services.HorarioEntrada true "Exactly 7 weekday entries"
// @Success 200 {array} models.HorarioFuncionamento
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /admin/horarios [post]
func (ct *parametrosController) UpdateHorarios(ctx *gin.Context) {
	var entradas []services.HorarioEntrada
	if err := ctx.ShouldBindJSON(&entradas); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Corpo da requisição inválido"})
		return
	}

	horarios, err := ct.service.UpdateHorarios(entradas)
	if err != nil {
		if errors.Is(err, services.ErrHorariosIncompletos) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar horários"})
		return
	}
	ctx.JSON(http.StatusOK, horarios)
}
