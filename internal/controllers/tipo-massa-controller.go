package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joaodoardo/Cardapio-Online-Backend/internal/models"
	"github.com/joaodoardo/Cardapio-Online-Backend/internal/services"
	"gorm.io/gorm"
)

// TipoMassaController handles HTTP requests related to dough types
type TipoMassaController interface {
	GetTiposMassa(c *gin.Context)
	GetAllTiposMassa(c *gin.Context)
	CreateTipoMassa(c *gin.Context)
	UpdateTipoMassa(c *gin.Context)
	DeleteTipoMassa(c *gin.Context)
}

type tipoMassaController struct {
	service services.TipoMassaService
}

// NewTipoMassaController creates a new instance of TipoMassaController
func NewTipoMassaController(service services.TipoMassaService) TipoMassaController {
	return &tipoMassaController{service: service}
}

// GetTiposMassa godoc
// @Summary List available dough types
// @Tags tipos-massa
// @Produce json
// @Success 200 {array} models.TipoMassa
// @Router /tipos-massa [get]
func (ct *tipoMassaController) GetTiposMassa(ctx *gin.Context) {
	massas, err := ct.service.GetTiposMassaDisponiveis()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar tipos de massa"})
		return
	}
	ctx.JSON(http.StatusOK, massas)
}

// GetAllTiposMassa lists every dough type regardless of availability (admin)
func (ct *tipoMassaController) GetAllTiposMassa(ctx *gin.Context) {
	massas, err := ct.service.GetAllTiposMassa()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar tipos de massa"})
		return
	}
	ctx.JSON(http.StatusOK, massas)
}

// CreateTipoMassa creates a new dough type (admin)
func (ct *tipoMassaController) CreateTipoMassa(ctx *gin.Context) {
	var req struct {
		Nome       string `json:"nome" binding:"required"`
		Disponivel *bool  `json:"disponivel"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Nome do tipo de massa é obrigatório"})
		return
	}

	massa := models.TipoMassa{Nome: req.Nome, Disponivel: true}
	if req.Disponivel != nil {
		massa.Disponivel = *req.Disponivel
	}

	created, err := ct.service.CreateTipoMassa(massa)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao criar tipo de massa"})
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateTipoMassa applies a merge-patch to a dough type (admin)
func (ct *tipoMassaController) UpdateTipoMassa(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID de tipo de massa inválido"})
		return
	}

	var patch struct {
		Nome       *string `json:"nome"`
		Disponivel *bool   `json:"disponivel"`
	}
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Corpo da requisição inválido"})
		return
	}

	campos := make(map[string]interface{})
	if patch.Nome != nil {
		campos["nome"] = *patch.Nome
	}
	if patch.Disponivel != nil {
		campos["disponivel"] = *patch.Disponivel
	}

	massa, err := ct.service.UpdateTipoMassa(uint(id), campos)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Tipo de massa não encontrado"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar tipo de massa"})
		return
	}
	ctx.JSON(http.StatusOK, massa)
}

// DeleteTipoMassa removes a dough type (admin)
func (ct *tipoMassaController) DeleteTipoMassa(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID de tipo de massa inválido"})
		return
	}

	if err := ct.service.DeleteTipoMassa(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Tipo de massa não encontrado"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao excluir tipo de massa"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Tipo de massa excluído com sucesso"})
}
