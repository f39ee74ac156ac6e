package services

import (
	"testing"

	"github.com/joaodoardo/Cardapio-Online-Backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDefaultAdminCriaUmaVez(t *testing.T) {
	db := setupTestDB(t)
	service := NewAdminService(db)

	require.NoError(t, service.EnsureDefaultAdmin("admin@pizzaria.com", "admin123"))

	admin, err := service.GetAdminByEmail("admin@pizzaria.com")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", admin.Senha, "password must be stored hashed")
	assert.True(t, admin.CheckSenha("admin123"))
	assert.False(t, admin.CheckSenha("errada"))

	// second boot is a no-op even with different credentials
	require.NoError(t, service.EnsureDefaultAdmin("outro@pizzaria.com", "outra"))

	var count int64
	db.Model(&models.Admin{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
