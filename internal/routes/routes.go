package routes

import (
	"github.com/gin-gonic/gin"

	"autorevenda/internal/authz"
	"autorevenda/internal/handlers"
	"autorevenda/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	clientHandler *handlers.ClientHandler,
	vehicleHandler *handlers.VehicleHandler,
	bankHandler *handlers.BankHandler,
	proposalHandler *handlers.ProposalHandler,
	contractHandler *handlers.ContractHandler,
	documentsHandler *handlers.DocumentsHandler,
	reservationHandler *handlers.ReservationHandler,
	saleHandler *handlers.SaleHandler,
	smsHandler *handlers.SMSHandler,
	portalHandler *handlers.PortalHandler,
	reportHandler *handlers.ReportHandler,
) *gin.Engine {

	// ---- public
	r.POST("/login", authHandler.Login)
	r.POST("/refresh", authHandler.RefreshToken)

	// ---- protected
	r.Use(middleware.AuthMiddleware())
	r.Use(middleware.PortalReadOnly())

	r.POST("/logout", authHandler.Logout)

	staff := middleware.RequireRoles(authz.RoleVendedor, authz.RoleAdmin)
	adminOnly := middleware.RequireRoles(authz.RoleAdmin)

	// USERS (admin)
	users := r.Group("/users", adminOnly)
	{
		users.POST("/", userHandler.Create)
		users.GET("/", userHandler.List)
		users.GET("/:id", userHandler.GetByID)
		users.PUT("/:id", userHandler.Update)
		users.DELETE("/:id", userHandler.Deactivate)
	}

	// CLIENTS (staff)
	clients := r.Group("/clients", staff)
	{
		clients.POST("/", clientHandler.Create)
		clients.GET("/", clientHandler.List)
		clients.GET("/funnel", clientHandler.Funnel)
		clients.GET("/:id", clientHandler.GetByID)
		clients.PUT("/:id", clientHandler.Update)
		clients.DELETE("/:id", clientHandler.Delete)
		clients.POST("/:id/stage", clientHandler.MoveStage)
		clients.POST("/:id/portal-access", userHandler.ProvisionPortal)
	}

	// VEHICLES (staff)
	vehicles := r.Group("/vehicles", staff)
	{
		vehicles.POST("/", vehicleHandler.Create)
		vehicles.GET("/", vehicleHandler.List)
		vehicles.GET("/:id", vehicleHandler.GetByID)
		vehicles.PUT("/:id", vehicleHandler.Update)
		vehicles.DELETE("/:id", vehicleHandler.Delete)
	}

	// BANKS (admin manages, staff reads)
	banks := r.Group("/banks", staff)
	{
		banks.GET("/", bankHandler.List)
		banks.GET("/:id", bankHandler.GetByID)
		banks.POST("/", adminOnly, bankHandler.Create)
		banks.PUT("/:id", adminOnly, bankHandler.Update)
		banks.DELETE("/:id", adminOnly, bankHandler.Delete)
	}

	// PROPOSALS (staff)
	proposals := r.Group("/proposals", staff)
	{
		proposals.POST("/", proposalHandler.Create)
		proposals.GET("/", proposalHandler.List)
		proposals.GET("/:id", proposalHandler.GetByID)
		proposals.DELETE("/:id", proposalHandler.Delete)
		proposals.POST("/:id/status", proposalHandler.UpdateStatus)
		proposals.GET("/:id/history", proposalHandler.History)
	}

	// CONTRACTS (staff)
	contracts := r.Group("/contracts", staff)
	{
		contracts.POST("/", contractHandler.Create)
		contracts.GET("/", contractHandler.List)
		contracts.GET("/:id", contractHandler.GetByID)
		contracts.DELETE("/:id", contractHandler.Delete)
		contracts.GET("/:id/pdf", contractHandler.PDF)
	}

	// DOCUMENTS (staff)
	warranties := r.Group("/warranties", staff)
	{
		warranties.POST("/", documentsHandler.CreateWarranty)
		warranties.GET("/", documentsHandler.ListWarranties)
		warranties.GET("/:id/pdf", documentsHandler.WarrantyPDF)
	}
	transfers := r.Group("/transfers", staff)
	{
		transfers.POST("/", documentsHandler.CreateTransfer)
		transfers.GET("/", documentsHandler.ListTransfers)
		transfers.GET("/:id/pdf", documentsHandler.TransferPDF)
	}
	withdrawals := r.Group("/withdrawals", staff)
	{
		withdrawals.POST("/", documentsHandler.CreateWithdrawal)
		withdrawals.GET("/", documentsHandler.ListWithdrawals)
		withdrawals.GET("/:id/pdf", documentsHandler.WithdrawalPDF)
	}
	receipts := r.Group("/receipts", staff)
	{
		receipts.POST("/", documentsHandler.CreateReceipt)
		receipts.GET("/", documentsHandler.ListReceipts)
		receipts.GET("/:id/pdf", documentsHandler.ReceiptPDF)
	}

	// RESERVATIONS (staff)
	reservations := r.Group("/reservations", staff)
	{
		reservations.POST("/", reservationHandler.Create)
		reservations.GET("/", reservationHandler.List)
		reservations.GET("/:id", reservationHandler.GetByID)
		reservations.POST("/:id/cancel", reservationHandler.Cancel)
		reservations.POST("/:id/convert", reservationHandler.Convert)
		reservations.GET("/:id/pdf", reservationHandler.PDF)
	}

	// SALES (staff)
	sales := r.Group("/sales", staff)
	{
		sales.POST("/", saleHandler.Close)
		sales.GET("/", saleHandler.List)
		sales.GET("/:id", saleHandler.GetByID)
	}

	// SMS signing (staff)
	sms := r.Group("/sms", staff)
	{
		sms.POST("/send", smsHandler.Send)
		sms.POST("/resend", smsHandler.Resend)
		sms.POST("/confirm", smsHandler.Confirm)
		sms.DELETE("/:contract_id", smsHandler.Delete)
	}

	// PORTAL (cliente)
	portal := r.Group("/portal", middleware.RequireRoles(authz.RoleCliente))
	{
		portal.GET("/overview", portalHandler.Overview)
		portal.GET("/proposals", portalHandler.Proposals)
		portal.GET("/contracts", portalHandler.Contracts)
		portal.GET("/reservations", portalHandler.Reservations)
		portal.GET("/contracts/:id/pdf", portalHandler.ContractPDF)
	}

	// REPORTS (admin)
	reports := r.Group("/reports", adminOnly)
	{
		reports.GET("/summary", reportHandler.GetSummary)
	}

	return r
}
