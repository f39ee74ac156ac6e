package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joaodoardo/Cardapio-Online-Backend/internal/config"
	"github.com/joaodoardo/Cardapio-Online-Backend/internal/controllers"
	"github.com/joaodoardo/Cardapio-Online-Backend/internal/database"
	"github.com/joaodoardo/Cardapio-Online-Backend/internal/middleware"
	"github.com/joaodoardo/Cardapio-Online-Backend/internal/models"
	"github.com/joaodoardo/Cardapio-Online-Backend/internal/services"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

var (
	db            *gorm.DB
	configuration *config.Config

	categoriaController  controllers.CategoriaController
	itemController       controllers.ItemController
	bordaController      controllers.BordaController
	tipoMassaController  controllers.TipoMassaController
	pedidoController     controllers.PedidoController
	parametrosController controllers.ParametrosController
	authController       *controllers.AuthController
)

// @title Cardápio Online API
// @version 1.0
// @description REST backend for a pizzeria's online ordering system
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Set JWT secret from configuration
	middleware.SetJWTSecret(configuration.JWTSecret)

	// Initialize database connection
	setupDatabase(configuration)

	// Initialize services and controllers
	setupControllers()

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase initializes the database connection, migrates the schema
// and seeds the defaults the system expects on first start
func setupDatabase(conf *config.Config) *gorm.DB {
	var err error
	db, err = database.InitDatabase(database.DatabaseConfig{
		Driver:   conf.DBDriver,
		Host:     conf.DBHost,
		Port:     conf.DBPort,
		User:     conf.DBUser,
		Password: conf.DBPassword,
		Name:     conf.DBName,
		SSLMode:  conf.DBSSLMode,
		Path:     conf.DBPath,
	})
	checkPanicErr(err)

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
	checkPanicErr(err)

	seedDatabase(conf)
	return db
}

// seedDatabase creates the default admin account and operating parameters
// when the corresponding tables are empty
func seedDatabase(conf *config.Config) {
	adminService := services.NewAdminService(db)
	if err := adminService.EnsureDefaultAdmin(conf.AdminEmail, conf.AdminSenha); err != nil {
		checkPanicErr(err)
	}

	var taxas int64
	db.Model(&models.TaxaEntrega{}).Count(&taxas)
	if taxas == 0 {
		log.Info("Seeding default delivery fee")
		checkPanicErr(db.Create(&models.TaxaEntrega{Valor: 0}).Error)
	}

	var horarios int64
	db.Model(&models.HorarioFuncionamento{}).Count(&horarios)
	if horarios == 0 {
		log.Info("Seeding default business hours")
		rotulos := []string{"Domingo", "Segunda-feira", "Terça-feira", "Quarta-feira", "Quinta-feira", "Sexta-feira", "Sábado"}
		for dia, rotulo := range rotulos {
			horario := models.HorarioFuncionamento{
				DiaSemana:      dia,
				Rotulo:         rotulo,
				Aberto:         false,
				HoraAbertura:   "18:00",
				HoraFechamento: "23:00",
			}
			checkPanicErr(db.Create(&horario).Error)
		}
	}
}

// setupControllers wires the service layer into the HTTP controllers
func setupControllers() {
	categoriaController = controllers.NewCategoriaController(services.NewCategoriaService(db))
	itemController = controllers.NewItemController(services.NewItemService(db))
	bordaController = controllers.NewBordaController(services.NewBordaService(db))
	tipoMassaController = controllers.NewTipoMassaController(services.NewTipoMassaService(db))
	pedidoController = controllers.NewPedidoController(services.NewPedidoService(db))
	parametrosController = controllers.NewParametrosController(services.NewParametrosService(db))
	authController = controllers.NewAuthController(services.NewAdminService(db), configuration.JWTSecret)
}

// setupRouter initializes the Gin router and sets up the routes
func setupRouter() *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	// Public routes (customers)
	router.GET("/categorias", categoriaController.GetCategorias)
	router.GET("/categorias/:id/itens", itemController.GetItensByCategoria)
	router.GET("/bordas", bordaController.GetBordas)
	router.GET("/tipos-massa", tipoMassaController.GetTiposMassa)
	router.GET("/entrega", parametrosController.GetTaxaEntrega)
	router.GET("/horarios", parametrosController.GetHorarios)
	router.POST("/pedido", pedidoController.CreatePedido)
	router.GET("/pedidos/cliente/:telefone", pedidoController.GetPedidosByTelefone)

	// Admin login (public but for auth purposes)
	router.POST("/admin/login", authController.Login)

	// Protected routes (requires JWT authentication)
	admin := router.Group("/admin")
	admin.Use(middleware.JWTAuth())
	admin.Use(middleware.RequireRole("admin"))
	{
		admin.POST("/categoria", categoriaController.CreateCategoria)
		admin.PUT("/categoria/:id", categoriaController.UpdateCategoria)
		admin.DELETE("/categoria/:id", categoriaController.DeleteCategoria)

		admin.GET("/items", itemController.GetAllItens)
		admin.POST("/item", itemController.CreateItem)
		admin.PUT("/item/:id", itemController.UpdateItem)
		admin.DELETE("/item/:id", itemController.DeleteItem)
		admin.PATCH("/item/:id/move", itemController.MoveItem)

		admin.GET("/bordas", bordaController.GetAllBordas)
		admin.POST("/borda", bordaController.CreateBorda)
		admin.PUT("/borda/:id", bordaController.UpdateBorda)
		admin.DELETE("/borda/:id", bordaController.DeleteBorda)

		admin.GET("/tipos-massa", tipoMassaController.GetAllTiposMassa)
		admin.POST("/tipo-massa", tipoMassaController.CreateTipoMassa)
		admin.PUT("/tipo-massa/:id", tipoMassaController.UpdateTipoMassa)
		admin.DELETE("/tipo-massa/:id", tipoMassaController.DeleteTipoMassa)

		admin.PUT("/entrega/:id", parametrosController.UpdateTaxaEntrega)
		admin.POST("/horarios", parametrosController.UpdateHorarios)

		admin.GET("/pedidos", pedidoController.GetPedidosAtivos)
		admin.GET("/pedidos/historico", pedidoController.GetHistorico)
		admin.PUT("/pedidos/:id/status", pedidoController.UpdateStatus)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "cardapio-online-backend",
	})
}
