package app

import (
	"database/sql"
	"fmt"
	"log"

	"autorevenda/internal/config"
	"autorevenda/internal/handlers"
	"autorevenda/internal/pdf"
	"autorevenda/internal/repositories"
	"autorevenda/internal/routes"
	"autorevenda/internal/services"
	"autorevenda/internal/utils"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "autorevenda/docs"
)

func Run() {
	cfg := config.LoadConfig()

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("Failed to open database: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	// === Repos ===
	userRepo := repositories.NewUserRepository(db)
	clientRepo := repositories.NewClientRepository(db)
	vehicleRepo := repositories.NewVehicleRepository(db)
	bankRepo := repositories.NewBankRepository(db)
	proposalRepo := repositories.NewProposalRepository(db)
	contractRepo := repositories.NewContractRepository(db)
	reservationRepo := repositories.NewReservationRepository(db)
	receiptRepo := repositories.NewReceiptRepository(db)
	warrantyRepo := repositories.NewWarrantyRepository(db)
	transferRepo := repositories.NewTransferRepository(db)
	withdrawalRepo := repositories.NewWithdrawalRepository(db)
	saleRepo := repositories.NewSaleRepository(db)
	sequenceRepo := repositories.NewSequenceRepository(db)
	activityRepo := repositories.NewActivityLogRepository(db)
	smsRepo := repositories.NewSMSConfirmationRepository(db)
	reportRepo := repositories.NewReportRepository(db)

	// === PDF generator (TTF with full Latin glyphs, e.g. assets/fonts/DejaVuSans.ttf) ===
	pdfGen := pdf.NewDocumentGenerator(cfg.Files.RootDir, "assets/fonts/DejaVuSans.ttf", pdf.CompanyData{
		Name:    cfg.Company.Name,
		CNPJ:    cfg.Company.CNPJ,
		Address: cfg.Company.Address,
		City:    cfg.Company.City,
		Phone:   cfg.Company.Phone,
		Email:   cfg.Company.Email,
	})

	// === Services ===
	authService := services.NewAuthService()
	emailService := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
		cfg.Company.Name,
	)
	notifier := services.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)

	numbering := services.NewNumberingService(sequenceRepo)
	accountService := services.NewAccountService(userRepo, authService, emailService)
	clientService := services.NewClientService(clientRepo, userRepo)
	vehicleService := services.NewVehicleService(vehicleRepo, reservationRepo)
	bankService := services.NewBankService(bankRepo)
	proposalService := services.NewProposalService(proposalRepo, activityRepo, numbering, notifier)
	contractService := services.NewContractService(contractRepo, proposalRepo, clientRepo, vehicleRepo, numbering, pdfGen)
	reservationService := services.NewReservationService(reservationRepo, vehicleRepo, clientRepo, numbering, pdfGen)
	reservationService.Emails = emailService
	documentsService := services.NewDocumentsService(
		warrantyRepo, transferRepo, withdrawalRepo, receiptRepo,
		clientRepo, vehicleRepo, numbering, pdfGen,
	)
	saleService := services.NewSaleService(saleRepo, proposalRepo, clientRepo, vehicleRepo, bankRepo, reservationRepo, notifier)
	portalService := services.NewPortalService(
		clientRepo, proposalRepo, contractRepo, reservationRepo,
		receiptRepo, warrantyRepo, transferRepo, withdrawalRepo,
	)
	reportService := services.NewReportService(reportRepo)

	smsGateway := utils.NewSMSGateway(cfg.SMS.APIKey, cfg.SMS.SenderID, cfg.SMS.DryRun)
	smsService := services.NewSMSService(smsRepo, contractService, smsGateway)

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(accountService, authService)
	userHandler := handlers.NewUserHandler(accountService, clientService)
	clientHandler := handlers.NewClientHandler(clientService)
	vehicleHandler := handlers.NewVehicleHandler(vehicleService)
	bankHandler := handlers.NewBankHandler(bankService)
	proposalHandler := handlers.NewProposalHandler(proposalService)
	contractHandler := handlers.NewContractHandler(contractService, cfg.Files.RootDir)
	documentsHandler := handlers.NewDocumentsHandler(documentsService, cfg.Files.RootDir)
	reservationHandler := handlers.NewReservationHandler(reservationService, cfg.Files.RootDir)
	saleHandler := handlers.NewSaleHandler(saleService)
	smsHandler := handlers.NewSMSHandler(smsService)
	portalHandler := handlers.NewPortalHandler(portalService, accountService, contractService, cfg.Files.RootDir)
	reportHandler := handlers.NewReportHandler(reportService)

	// === Gin ===
	router := gin.Default()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(
		router,
		authHandler,
		userHandler,
		clientHandler,
		vehicleHandler,
		bankHandler,
		proposalHandler,
		contractHandler,
		documentsHandler,
		reservationHandler,
		saleHandler,
		smsHandler,
		portalHandler,
		reportHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
