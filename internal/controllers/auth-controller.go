package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/joaodoardo/Cardapio-Online-Backend/internal/services"
	log "github.com/sirupsen/logrus"
)

// Admin sessions are pure JWT expiry: no refresh, no revocation list.
const tokenValidade = 8 * time.Hour

// AuthController handles the admin login flow
type AuthController struct {
	adminService services.AdminService
	jwtSecret    []byte
}

// NewAuthController creates a new instance of AuthController
func NewAuthController(adminService services.AdminService, jwtSecret string) *AuthController {
	return &AuthController{
		adminService: adminService,
		jwtSecret:    []byte(jwtSecret),
	}
}

// Login godoc
// @Summary Admin login
// @Description Authenticate the admin account and issue a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body object{email=string,senha=string} true "Admin credentials"
// @Success 200 {object} map[string]string "token"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
		Senha string `json:"senha" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email e senha são obrigatórios"})
		return
	}

	admin, err := ac.adminService.GetAdminByEmail(req.Email)
	if err != nil || !admin.CheckSenha(req.Senha) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciais inválidas"})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":  admin.ID,
		"role": "admin",
		"exp":  time.Now().Add(tokenValidade).Unix(),
		"iat":  time.Now().Unix(),
	})

	tokenString, err := token.SignedString(ac.jwtSecret)
	if err != nil {
		log.WithError(err).Error("Failed to sign admin token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao gerar token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": tokenString})
}
