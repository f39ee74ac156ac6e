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

// CategoriaController handles HTTP requests related to menu categories
type CategoriaController interface {
	// GetCategorias lists all categories (public)
	GetCategorias(c *gin.Context)
	// CreateCategoria creates a new category (admin)
	CreateCategoria(c *gin.Context)
	// UpdateCategoria renames a category (admin)
	UpdateCategoria(c *gin.Context)
	// DeleteCategoria deletes a category without items (admin)
	DeleteCategoria(c *gin.Context)
}

type categoriaController struct {
	service services.CategoriaService
}

// NewCategoriaController creates a new instance of CategoriaController
func NewCategoriaController(service services.CategoriaService) CategoriaController {
	return &categoriaController{service: service}
}

// GetCategorias godoc
// @Summary List categories
// @Description List all menu categories with id and name
// @Tags categorias
// @Produce json
// @Success 200 {array} models.Categoria
// @Failure 500 {object} map[string]string
// @Router /categorias [get]
func (ct *categoriaController) GetCategorias(ctx *gin.Context) {
	categorias, err := ct.service.GetAllCategorias()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar categorias"})
		return
	}
	ctx.JSON(http.StatusOK, categorias)
}

// CreateCategoria godoc
// @Summary Create category
// @Tags categorias
// @Accept json
// @Produce json
// @Param categoria body object{nome=string} true "Category name"
// @Success 201 {object} models.Categoria
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /admin/categoria [post]
func (ct *categoriaController) CreateCategoria(ctx *gin.Context) {
	var req struct {
		Nome string `json:"nome" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Nome da categoria é obrigatório"})
		return
	}

	categoria, err := ct.service.CreateCategoria(models.Categoria{Nome: req.Nome})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao criar categoria"})
		return
	}
	ctx.JSON(http.StatusCreated, categoria)
}

// UpdateCategoria godoc
// @Summary Rename category
// @Tags categorias
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param categoria body object{nome=string} true "New name"
// @Success 200 {object} models.Categoria
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /admin/categoria/{id} [put]
func (ct *categoriaController) UpdateCategoria(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID de categoria inválido"})
		return
	}

	var req struct {
		Nome string `json:"nome" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Nome da categoria é obrigatório"})
		return
	}

	categoria, err := ct.service.UpdateCategoria(uint(id), req.Nome)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Categoria não encontrada"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar categoria"})
		return
	}
	ctx.JSON(http.StatusOK, categoria)
}

// DeleteCategoria godoc
// @Summary Delete category
// @Description Delete a category; blocked while items still reference it
// @Tags categorias
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /admin/categoria/{id} [delete]
func (ct *categoriaController) DeleteCategoria(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID de categoria inválido"})
		return
	}

	if err := ct.service.DeleteCategoria(uint(id)); err != nil {
		var emUso *services.CategoriaEmUsoError
		switch {
		case errors.As(err, &emUso):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": emUso.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Categoria não encontrada"})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao excluir categoria"})
		}
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Categoria excluída com sucesso"})
}
