package main

import (
	"context"

	"jobcard-backend/config"
	"jobcard-backend/middleware"
	"jobcard-backend/tasks"
	"jobcard-backend/token"
	"jobcard-backend/utils"
	"jobcard-backend/websocket"

	customer_controllers "jobcard-backend/customers/controllers"
	customer_repositories "jobcard-backend/customers/repositories"
	customer_routes "jobcard-backend/customers/routes"
	jobcard_controllers "jobcard-backend/jobcards/controllers"
	jobcard_repositories "jobcard-backend/jobcards/repositories"
	jobcard_routes "jobcard-backend/jobcards/routes"
	session_controllers "jobcard-backend/sessions/controllers"
	session_routes "jobcard-backend/sessions/routes"

	bleveControllers "jobcard-backend/bleve/controllers"
	bleveRepositories "jobcard-backend/bleve/repositories"
	bleveRoutes "jobcard-backend/bleve/routes"
	bleveServices "jobcard-backend/bleve/services"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	config.InitLogger()

	if err := godotenv.Load(".env"); err != nil {
		config.Logger.Warn("No .env file loaded, relying on process environment", zap.Error(err))
	}

	app := fiber.New()
	middleware.InitCors(app)

	db := config.ConfigureDatabase()
	port := config.GetEnvOrDefault("PORT", "8080")
	ctx := context.Background()

	redisAddr := config.GetEnvOrDefault("REDIS_ADDRESS", "localhost:6379")
	redisClient := config.InitRedisServer(ctx)

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr})
	defer asynqClient.Close()
	tasks.StartWorker(redisAddr)

	tokenMaker, err := token.NewPasetoMaker(config.GetEnv("TOKEN_SYMMETRIC_KEY"))
	if err != nil {
		config.Logger.Fatal("Cannot create token maker", zap.Error(err))
	}

	utils.InitializeMailer()

	// Serve generated Excel exports
	app.Static("/public", "./public")

	// Search index
	indexPath := config.GetEnvOrDefault("BLEVE_INDEX_PATH", "./bleve_data")
	bleveIndexingService := bleveServices.NewIndexingService(config.Logger, indexPath)
	bleveServiceRepo, bleveInterfaceRepo := bleveRepositories.NewBleveRepository(bleveIndexingService)

	// Repositories
	jobCardRepo := jobcard_repositories.NewJobCardRepository(db)
	customerRepo := customer_repositories.NewCustomerRepository(db)

	// Live event feed
	wsHub := websocket.NewHub()
	go wsHub.Run()
	wsHandler := websocket.NewWsHandler(wsHub, tokenMaker)
	app.Get("/ws", wsHandler.HandleWebSocket)

	// Controllers
	jobCardController := &jobcard_controllers.JobCardController{
		JobCardRepo: jobCardRepo,
		DB:          db,
		Ctx:         ctx,
		Redis:       redisClient,
		Hub:         wsHub,
		BleveRepo:   bleveInterfaceRepo,
		AsynqClient: asynqClient,
	}
	customerController := &customer_controllers.CustomerController{
		CustomerRepo: customerRepo,
		Ctx:          ctx,
		Redis:        redisClient,
		Hub:          wsHub,
		BleveRepo:    bleveInterfaceRepo,
	}
	sessionController := &session_controllers.SessionController{TokenMaker: tokenMaker}
	searchController := bleveControllers.NewSearchController(bleveServiceRepo)

	// Routes
	session_routes.InitSessionRoutes(app, sessionController)
	jobcard_routes.InitJobCardRoutes(app, jobCardController, tokenMaker)
	customer_routes.InitCustomerRoutes(app, customerController, tokenMaker)
	bleveRoutes.InitSearchRoutes(app, searchController, tokenMaker)

	// Rebuild the search indexes from the database so they survive restarts.
	go func() {
		if jobCards, err := jobCardRepo.GetAllJobCards(nil); err == nil {
			bleveInterfaceRepo.IndexExistingJobCards(jobCards)
		} else {
			config.Logger.Warn("Job card re-index skipped", zap.Error(err))
		}
		if customers, err := customerRepo.GetAllCustomers(); err == nil {
			bleveInterfaceRepo.IndexExistingCustomers(customers)
		} else {
			config.Logger.Warn("Customer re-index skipped", zap.Error(err))
		}
	}()

	go utils.RunScheduledCleanup(redisClient)

	config.Logger.Info("Server starting", zap.String("port", port))
	config.Logger.Fatal("Server failed", zap.String("port", port), zap.Error(app.Listen(":"+port)))
}
