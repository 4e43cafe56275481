package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-retail-api/internal/handler"
	"go-retail-api/internal/middleware"
	"go-retail-api/internal/model"
	"go-retail-api/internal/repository"
	"go-retail-api/internal/sequence"
	"go-retail-api/internal/service"
	"go-retail-api/internal/ws"
	"go-retail-api/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	// Auto Migrate (use a dedicated migration tool in production)
	db.AutoMigrate(
		&model.Role{}, &model.User{},
		&model.Supplier{}, &model.Product{}, &model.Staff{},
		&model.Sale{}, &model.SaleItem{},
		&model.PurchaseOrder{}, &model.PurchaseOrderItem{},
		&model.Expense{},
		&sequence.Counter{},
	)

	// 3. Seed default roles and admin user
	seedRolesAndAdmin(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	poRepo := repository.NewPurchaseOrderRepo(db)
	expenseRepo := repository.NewExpenseRepo(db)
	staffRepo := repository.NewStaffRepo(db)
	supplierRepo := repository.NewSupplierRepo(db)
	dashboardRepo := repository.NewDashboardRepo(db)
	userRepo := repository.NewUserRepo(db)
	roleRepo := repository.NewRoleRepo(db)

	invService := service.NewInventoryService(productRepo, db, wsHub)
	saleService := service.NewSaleService(saleRepo, productRepo, db, wsHub)
	poService := service.NewPurchaseOrderService(poRepo, productRepo, db, wsHub)
	expenseService := service.NewExpenseService(expenseRepo, db)
	staffService := service.NewStaffService(staffRepo)
	supplierService := service.NewSupplierService(supplierRepo)
	dashService := service.NewDashboardService(dashboardRepo)
	authService := service.NewAuthService(userRepo, roleRepo)

	productHandler := handler.NewProductHandler(invService)
	saleHandler := handler.NewSaleHandler(saleService)
	poHandler := handler.NewPurchaseOrderHandler(poService)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	staffHandler := handler.NewStaffHandler(staffService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	dashHandler := handler.NewDashboardHandler(dashService)
	authHandler := handler.NewAuthHandler(authService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Retail Backend v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true, "message": "Server is running"})
	})

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/register", authHandler.Register)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))

	staffUp := middleware.RequireRole(model.RoleStaff, model.RoleManager, model.RoleAdmin)
	managerUp := middleware.RequireRole(model.RoleManager, model.RoleAdmin)
	adminOnly := middleware.RequireRole(model.RoleAdmin)

	// Profile
	protected.Get("/auth/profile", authHandler.Profile)
	protected.Put("/auth/profile", authHandler.UpdateProfile)
	protected.Put("/auth/change-password", authHandler.ChangePassword)

	// Products
	protected.Get("/products", productHandler.List)
	protected.Get("/products/categories", productHandler.Categories)
	protected.Get("/products/low-stock", productHandler.LowStock)
	protected.Get("/products/:id", productHandler.Get)
	protected.Post("/products", staffUp, productHandler.Create)
	protected.Put("/products/:id", staffUp, productHandler.Update)
	protected.Delete("/products/:id", staffUp, productHandler.Delete)
	protected.Patch("/products/:id/stock", staffUp, productHandler.UpdateStock)

	// Sales
	protected.Get("/sales", staffUp, saleHandler.List)
	protected.Get("/sales/stats", staffUp, saleHandler.Stats)
	protected.Get("/sales/:id", staffUp, saleHandler.Get)
	protected.Post("/sales", staffUp, saleHandler.Create)
	protected.Put("/sales/:id", staffUp, saleHandler.Update)
	protected.Delete("/sales/:id", staffUp, saleHandler.Delete)

	// Purchase Orders
	protected.Get("/purchase-orders", staffUp, poHandler.List)
	protected.Get("/purchase-orders/:id", staffUp, poHandler.Get)
	protected.Post("/purchase-orders", staffUp, poHandler.Create)
	protected.Put("/purchase-orders/:id", staffUp, poHandler.Update)
	protected.Delete("/purchase-orders/:id", managerUp, poHandler.Delete)
	protected.Patch("/purchase-orders/:id/approve", managerUp, poHandler.Approve)
	protected.Patch("/purchase-orders/:id/receive", staffUp, poHandler.Receive)

	// Expenses
	protected.Get("/expenses", staffUp, expenseHandler.List)
	protected.Get("/expenses/stats", staffUp, expenseHandler.Stats)
	protected.Get("/expenses/:id", staffUp, expenseHandler.Get)
	protected.Post("/expenses", staffUp, expenseHandler.Create)
	protected.Put("/expenses/:id", staffUp, expenseHandler.Update)
	protected.Delete("/expenses/:id", managerUp, expenseHandler.Delete)
	protected.Patch("/expenses/:id/approve", managerUp, expenseHandler.Approve)

	// Staff
	protected.Get("/staff", staffUp, staffHandler.List)
	protected.Get("/staff/stats", managerUp, staffHandler.Stats)
	protected.Get("/staff/departments", staffUp, staffHandler.Departments)
	protected.Get("/staff/:id", staffUp, staffHandler.Get)
	protected.Post("/staff", managerUp, staffHandler.Create)
	protected.Put("/staff/:id", managerUp, staffHandler.Update)
	protected.Delete("/staff/:id", adminOnly, staffHandler.Delete)

	// Suppliers
	protected.Get("/suppliers", staffUp, supplierHandler.List)
	protected.Get("/suppliers/stats", staffUp, supplierHandler.Stats)
	protected.Get("/suppliers/:id", staffUp, supplierHandler.Get)
	protected.Post("/suppliers", staffUp, supplierHandler.Create)
	protected.Put("/suppliers/:id", staffUp, supplierHandler.Update)
	protected.Delete("/suppliers/:id", managerUp, supplierHandler.Delete)

	// Dashboard
	protected.Get("/dashboard/stats", dashHandler.Stats)
	protected.Get("/dashboard/chart-data", dashHandler.ChartData)
	protected.Get("/dashboard/inventory-status", dashHandler.InventoryStatus)
	protected.Get("/dashboard/low-stock-alerts", dashHandler.LowStockAlerts)
	protected.Get("/dashboard/recent-activities", dashHandler.RecentActivities)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "5000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedRolesAndAdmin creates default roles and an admin user if they don't exist
func seedRolesAndAdmin(db *gorm.DB) {
	roleRepo := repository.NewRoleRepo(db)
	userRepo := repository.NewUserRepo(db)

	if err := roleRepo.SeedDefaults(); err != nil {
		log.Printf("Warning: Failed to seed roles: %v", err)
	}

	if _, err := userRepo.FindByEmail("admin@example.com"); err == nil {
		return
	}

	adminRole, err := roleRepo.FindByCode(model.RoleAdmin)
	if err != nil {
		log.Printf("Warning: admin role missing: %v", err)
		return
	}

	admin := &model.User{
		Email:     "admin@example.com",
		FirstName: "System",
		LastName:  "Administrator",
		RoleID:    &adminRole.ID,
		IsActive:  true,
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	if err := admin.SetPassword(password); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}

	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	} else {
		log.Println("Admin user created: admin@example.com")
	}
}
