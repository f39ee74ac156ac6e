package services

import (
	"testing"

	"github.com/joaodoardo/Cardapio-Online-Backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Categoria{},
		&models.Item{},
		&models.Borda{},
		&models.TipoMassa{},
		&models.Pedido{},
		&models.PedidoItem{},
		&models.Admin{},
		&models.TaxaEntrega{},
		&models.HorarioFuncionamento{},
	)
	require.NoError(t, err)

	return db
}

func criaCategoria(t *testing.T, db *gorm.DB, nome string) models.Categoria {
	categoria := models.Categoria{Nome: nome}
	require.NoError(t, db.Create(&categoria).Error)
	return categoria
}

func criaItem(t *testing.T, db *gorm.DB, categoriaID uint, nome string, ordem int) models.Item {
	item := models.Item{
		Nome:        nome,
		Preco:       30,
		Ordem:       ordem,
		Disponivel:  true,
		CategoriaID: categoriaID,
	}
	require.NoError(t, db.Create(&item).Error)
	return item
}
