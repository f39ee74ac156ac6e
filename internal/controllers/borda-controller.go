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

// bordaPatch carries the optional fields of a crust update
type bordaPatch struct {
	Nome       *string  `json:"nome"`
	PrecoP     *float64 `json:"precoP"`
	PrecoM     *float64 `json:"precoM"`
	PrecoG     *float64 `json:"precoG"`
	PrecoGG    *float64 `json:"precoGG"`
	Disponivel *bool    `json:"disponivel"`
}

func (p *bordaPatch) campos() map[string]interface{} {
	campos := make(map[string]interface{})
	if p.Nome != nil {
		campos["nome"] = *p.Nome
	}
	if p.PrecoP != nil {
		campos["preco_p"] = *p.PrecoP
	}
	if p.PrecoM != nil {
		campos["preco_m"] = *p.PrecoM
	}
	if p.PrecoG != nil {
		campos["preco_g"] = *p.PrecoG
	}
	if p.PrecoGG != nil {
		campos["preco_gg"] = *p.PrecoGG
	}
	if p.Disponivel != nil {
		campos["disponivel"] = *p.Disponivel
	}
	return campos
}

// BordaController handles HTTP requests related to stuffed-crust options
type BordaController interface {
	GetBordas(c *gin.Context)
	GetAllBordas(c *gin.Context)
	CreateBorda(c *gin.Context)
	UpdateBorda(c *gin.Context)
	DeleteBorda(c *gin.Context)
}

type bordaController struct {
	service services.BordaService
}

// NewBordaController creates a new instance of BordaController
func NewBordaController(service services.BordaService) BordaController {
	return &bordaController{service: service}
}

// GetBordas godoc
// @Summary List available crusts
// @Tags bordas
// @Produce json
// @Success 200 {array} models.Borda
// @Router /bordas [get]
func (ct *bordaController) GetBordas(ctx *gin.Context) {
	bordas, err := ct.service.GetBordasDisponiveis()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar bordas"})
		return
	}
	ctx.JSON(http.StatusOK, bordas)
}

// GetAllBordas lists every crust regardless of availability (admin)
func (ct *bordaController) GetAllBordas(ctx *gin.Context) {
	bordas, err := ct.service.GetAllBordas()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar bordas"})
		return
	}
	ctx.JSON(http.StatusOK, bordas)
}

// CreateBorda godoc
// @Summary Create crust
// @Description Create a crust option; all four size prices are required
// @Tags bordas
// @Accept json
// @Produce json
// @Param borda body models.Borda true "Crust"
// @Success 201 {object} models.Borda
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /admin/borda [post]
func (ct *bordaController) CreateBorda(ctx *gin.Context) {
	var req struct {
		Nome       string  `json:"nome" binding:"required"`
		PrecoP     float64 `json:"precoP" binding:"required"`
		PrecoM     float64 `json:"precoM" binding:"required"`
		PrecoG     float64 `json:"precoG" binding:"required"`
		PrecoGG    float64 `json:"precoGG" binding:"required"`
		Disponivel *bool   `json:"disponivel"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Nome e os quatro preços por tamanho são obrigatórios"})
		return
	}

	borda := models.Borda{
		Nome:       req.Nome,
		PrecoP:     req.PrecoP,
		PrecoM:     req.PrecoM,
		PrecoG:     req.PrecoG,
		PrecoGG:    req.PrecoGG,
		Disponivel: true,
	}
	if req.Disponivel != nil {
		borda.Disponivel = *req.Disponivel
	}

	created, err := ct.service.CreateBorda(borda)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao criar borda"})
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateBorda applies a merge-patch to a crust (admin)
func (ct *bordaController) UpdateBorda(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID de borda inválido"})
		return
	}

	var patch bordaPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Corpo da requisição inválido"})
		return
	}

	borda, err := ct.service.UpdateBorda(uint(id), patch.campos())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Borda não encontrada"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar borda"})
		return
	}
	ctx.JSON(http.StatusOK, borda)
}

// DeleteBorda removes a crust option (admin)
func (ct *bordaController) DeleteBorda(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID de borda inválido"})
		return
	}

	if err := ct.service.DeleteBorda(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Borda não encontrada"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao excluir borda"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Borda excluída com sucesso"})
}
