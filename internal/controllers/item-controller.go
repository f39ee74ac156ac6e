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

// itemPatch carries the optional fields of an item update. Pointer fields
// distinguish "omitted" from "set to zero", so a PUT only touches what the
// caller actually sent.
type itemPatch struct {
	Nome            *string  `json:"nome"`
	Descricao       *string  `json:"descricao"`
	Preco           *float64 `json:"preco"`
	PrecoP          *float64 `json:"precoP"`
	PrecoM          *float64 `json:"precoM"`
	PrecoG          *float64 `json:"precoG"`
	PrecoGG         *float64 `json:"precoGG"`
	PrecoComBordaP  *float64 `json:"precoComBordaP"`
	PrecoComBordaM  *float64 `json:"precoComBordaM"`
	PrecoComBordaG  *float64 `json:"precoComBordaG"`
	PrecoComBordaGG *float64 `json:"precoComBordaGG"`
	ImagemURL       *string  `json:"imagemUrl"`
	Disponivel      *bool    `json:"disponivel"`
	CategoriaID     *uint    `json:"categoriaId"`
}

// campos flattens the patch into a column→value map with only the
// provided fields
func (p *itemPatch) campos() map[string]interface{} {
	campos := make(map[string]interface{})
	if p.Nome != nil {
		campos["nome"] = *p.Nome
	}
	if p.Descricao != nil {
		campos["descricao"] = *p.Descricao
	}
	if p.Preco != nil {
		campos["preco"] = *p.Preco
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
	if p.PrecoComBordaP != nil {
		campos["preco_com_borda_p"] = *p.PrecoComBordaP
	}
	if p.PrecoComBordaM != nil {
		campos["preco_com_borda_m"] = *p.PrecoComBordaM
	}
	if p.PrecoComBordaG != nil {
		campos["preco_com_borda_g"] = *p.PrecoComBordaG
	}
	if p.PrecoComBordaGG != nil {
		campos["preco_com_borda_gg"] = *p.PrecoComBordaGG
	}
	if p.ImagemURL != nil {
		campos["imagem_url"] = *p.ImagemURL
	}
	if p.Disponivel != nil {
		campos["disponivel"] = *p.Disponivel
	}
	if p.CategoriaID != nil {
		campos["categoria_id"] = *p.CategoriaID
	}
	return campos
}

// ItemController handles HTTP requests related to menu items
type ItemController interface {
	// GetItensByCategoria lists the available items of a category (public)
	GetItensByCategoria(c *gin.Context)
	// GetAllItens lists every item with its category (admin)
	GetAllItens(c *gin.Context)
	// CreateItem creates a new item (admin)
	CreateItem(c *gin.Context)
	// UpdateItem applies a merge-patch to an item (admin)
	UpdateItem(c *gin.Context)
	// DeleteItem removes an item (admin)
	DeleteItem(c *gin.Context)
	// MoveItem moves an item one position up or down (admin)
	MoveItem(c *gin.Context)
}

type itemController struct {
	service services.ItemService
}

// NewItemController creates a new instance of ItemController
func NewItemController(service services.ItemService) ItemController {
	return &itemController{service: service}
}

// GetItensByCategoria godoc
// @Summary List items of a category
// @Description List the available items of a category, sorted by display order
// @Tags itens
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {array} models.Item
// @Failure 404 {object} map[string]string
// @Router /categorias/{id}/itens [get]
func (ct *itemController) GetItensByCategoria(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID de categoria inválido"})
		return
	}

	itens, err := ct.service.GetItensByCategoria(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Categoria não encontrada"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar itens da categoria"})
		return
	}
	ctx.JSON(http.StatusOK, itens)
}

// GetAllItens godoc
// @Summary List all items
// @Description List every item regardless of availability, with its category
// @Tags itens
// @Produce json
// @Success 200 {array} models.Item
// @Security BearerAuth
// @Router /admin/items [get]
func (ct *itemController) GetAllItens(ctx *gin.Context) {
	itens, err := ct.service.GetAllItens()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar itens"})
		return
	}
	ctx.JSON(http.StatusOK, itens)
}

// CreateItem godoc
// @Summary Create item
// @Tags itens
// @Accept json
// @Produce json
// @Param item body models.Item true "Item"
// @Success 201 {object} models.Item
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /admin/item [post]
func (ct *itemController) CreateItem(ctx *gin.Context) {
	var req struct {
		Nome            string  `json:"nome" binding:"required"`
		Descricao       string  `json:"descricao"`
		Preco           float64 `json:"preco" binding:"required"`
		PrecoP          float64 `json:"precoP"`
		PrecoM          float64 `json:"precoM"`
		PrecoG          float64 `json:"precoG"`
		PrecoGG         float64 `json:"precoGG"`
		PrecoComBordaP  float64 `json:"precoComBordaP"`
		PrecoComBordaM  float64 `json:"precoComBordaM"`
		PrecoComBordaG  float64 `json:"precoComBordaG"`
		PrecoComBordaGG float64 `json:"precoComBordaGG"`
		ImagemURL       string  `json:"imagemUrl"`
		Disponivel      *bool   `json:"disponivel"`
		CategoriaID     uint    `json:"categoriaId" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Nome, preço e categoria são obrigatórios"})
		return
	}

	item := models.Item{
		Nome:            req.Nome,
		Descricao:       req.Descricao,
		Preco:           req.Preco,
		PrecoP:          req.PrecoP,
		PrecoM:          req.PrecoM,
		PrecoG:          req.PrecoG,
		PrecoGG:         req.PrecoGG,
		PrecoComBordaP:  req.PrecoComBordaP,
		PrecoComBordaM:  req.PrecoComBordaM,
		PrecoComBordaG:  req.PrecoComBordaG,
		PrecoComBordaGG: req.PrecoComBordaGG,
		ImagemURL:       req.ImagemURL,
		Disponivel:      true,
		CategoriaID:     req.CategoriaID,
	}
	if req.Disponivel != nil {
		item.Disponivel = *req.Disponivel
	}

	created, err := ct.service.CreateItem(item)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Categoria informada não existe"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao criar item"})
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateItem godoc
// @Summary Update item
// @Description Apply only the fields present in the body to an existing item
// @Tags itens
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param item body models.Item true "Fields to update"
// @Success 200 {object} models.Item
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /admin/item/{id} [put]
func (ct *itemController) UpdateItem(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID de item inválido"})
		return
	}

	var patch itemPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Corpo da requisição inválido"})
		return
	}

	item, err := ct.service.UpdateItem(uint(id), patch.campos())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Item não encontrado"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar item"})
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// DeleteItem godoc
// @Summary Delete item
// @Tags itens
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /admin/item/{id} [delete]
func (ct *itemController) DeleteItem(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID de item inválido"})
		return
	}

	if err := ct.service.DeleteItem(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Item não encontrado ou já excluído"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao excluir item"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Item excluído com sucesso"})
}

// MoveItem godoc
// @Summary Move item
// @Description Swap an item with its neighbour within the category. Moving
// past either end is a no-op that returns the item unchanged.
// @Tags itens
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param direcao body object{direcao=string} true "Direction: sobe or desce"
// @Success 200 {object} models.Item
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /admin/item/{id}/move [patch]
func (ct *itemController) MoveItem(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID de item inválido"})
		return
	}

	var req struct {
		Direcao string `json:"direcao" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Direção é obrigatória"})
		return
	}

	item, err := ct.service.MoveItem(uint(id), req.Direcao)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDirecaoInvalida):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Item não encontrado"})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao mover item"})
		}
		return
	}
	ctx.JSON(http.StatusOK, item)
}
