package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"

	"hospitality-backend/internal/auth"
	"hospitality-backend/internal/cache"
	"hospitality-backend/internal/config"
	"hospitality-backend/internal/database"
	"hospitality-backend/internal/db"
	"hospitality-backend/internal/handlers"
	"hospitality-backend/internal/health"
	h "hospitality-backend/internal/http"
	"hospitality-backend/internal/middleware"
	"hospitality-backend/internal/monitoring"
	"hospitality-backend/internal/repositories"
	"hospitality-backend/internal/services"
)

func main() {
	port := flag.Int("port", 0, "override HTTP port from config")
	flag.Parse()

	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	pool := db.Connect(cfg)
	defer pool.Close()

	if err := cache.Init(); err != nil {
		log.Printf("[Cache] Redis unavailable, board caching disabled: %v", err)
	}

	migrator := database.NewMigrator(pool)
	if err := migrator.RunMigrations(context.Background()); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	healthChecker := health.NewHealthChecker(pool)

	// Ops stats on a side port so probes survive API saturation
	monitoringServer := monitoring.NewMonitoringServer(pool, cfg.Server.MonitoringPort)
	go monitoringServer.Start()

	jwtManager := auth.NewJWTManager(cfg)

	// Repositories
	userRepo := repositories.NewUserRepository(pool)
	propertyRepo := repositories.NewPropertyRepository(pool)
	roomRepo := repositories.NewRoomRepository(pool)
	staffRepo := repositories.NewStaffRepository(pool)
	assignmentRepo := repositories.NewAssignmentRepository(pool)
	inventoryRepo := repositories.NewInventoryRepository(pool)
	ticketRepo := repositories.NewGeneralTicketRepository(pool)
	maintenanceRepo := repositories.NewMaintenanceTicketRepository(pool)

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo)

	// Services
	userService := services.NewUserService(userRepo, jwtManager)
	propertyService := services.NewPropertyService(propertyRepo)
	roomService := services.NewRoomService(roomRepo, propertyRepo, services.SeedPercentages{
		Standard: cfg.Seed.StandardPct,
		Double:   cfg.Seed.DoublePct,
		Suite:    cfg.Seed.SuitePct,
	})
	staffService := services.NewStaffService(staffRepo, propertyRepo, userRepo)
	assignmentService := services.NewAssignmentService(assignmentRepo, propertyRepo)
	inventoryService := services.NewInventoryService(inventoryRepo, propertyRepo)
	boardService := services.NewBoardService(propertyRepo, roomRepo, staffRepo, inventoryRepo, ticketRepo, maintenanceRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	propertyHandler := handlers.NewPropertyHandler(propertyService)
	roomHandler := handlers.NewRoomHandler(roomService)
	boardHandler := handlers.NewBoardHandler(boardService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)
	staffHandler := handlers.NewStaffHandler(staffService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	ticketHandler := handlers.NewTicketHandler(ticketRepo)
	maintenanceTicketHandler := handlers.NewTicketHandler(maintenanceRepo)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	router := h.NewRouter(
		authHandler,
		propertyHandler,
		roomHandler,
		boardHandler,
		assignmentHandler,
		staffHandler,
		inventoryHandler,
		ticketHandler,
		maintenanceTicketHandler,
		healthHandler,
		authMiddleware,
	)

	corsMiddleware := middleware.NewCORS(cfg)
	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("[Server] listening on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
