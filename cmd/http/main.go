package main

import (
	"citabot-service/internal/app/config"
	"citabot-service/internal/app/delivery/http/middlewares"
	"citabot-service/internal/app/delivery/http/routers"
	"citabot-service/internal/app/drivers/database"
	"citabot-service/internal/app/drivers/logger"
	"citabot-service/internal/app/drivers/messaging"
	"citabot-service/internal/app/drivers/storage"
	"citabot-service/internal/app/services/core/auth"
	"citabot-service/internal/app/services/core/citas"
	"citabot-service/internal/app/services/core/consultorios"
	"citabot-service/internal/app/services/core/horarios"
	"citabot-service/internal/app/services/core/menus"
	"citabot-service/internal/app/services/core/pagos"
	"citabot-service/internal/app/services/core/usuarios"
	"citabot-service/internal/app/services/core/vinculacion"
	"citabot-service/internal/app/services/shared/redis"
	sharedStorage "citabot-service/internal/app/services/shared/storage"
	"citabot-service/internal/app/services/shared/whatsapp"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("failed to load timezone", zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()
	log.Info("server started", zap.String("addr", internalConfig.App.Port))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Info("waiting for in-flight requests to finish")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}
	log.Info("server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	log := bootstrap.Logger
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	storageService := sharedStorage.NewMinioStorageService(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName)
	whatsAppService, err := whatsapp.NewWhatsAppService(bootstrap.RabbitMQ, log, bootstrap.InternalConfig.RabbitMQ.WhatsAppQueue)
	if err != nil {
		log.Fatal("failed to initialize whatsapp service", zap.Error(err))
	}

	// Middlewares
	appMiddlewares := middlewares.NewMiddlewares(log, redisRepository, bootstrap.InternalConfig)

	// Repositories
	usuarioMongoRepository := usuarios.NewUsuarioMongoRepository(bootstrap.MongoDB, dbName)
	rolMongoRepository := usuarios.NewRolMongoRepository(bootstrap.MongoDB, dbName)
	consultorioMongoRepository := consultorios.NewConsultorioMongoRepository(bootstrap.MongoDB, dbName)
	citaMongoRepository := citas.NewCitaMongoRepository(bootstrap.MongoDB, dbName)
	pagoMongoRepository := pagos.NewPagoMongoRepository(bootstrap.MongoDB, dbName)
	horarioMongoRepository := horarios.NewHorarioMongoRepository(bootstrap.MongoDB, dbName)
	menuMongoRepository := menus.NewMenuMongoRepository(bootstrap.MongoDB, dbName)

	// Auth
	authUsecase := auth.NewAuthUsecase(usuarioMongoRepository, rolMongoRepository, consultorioMongoRepository, menuMongoRepository, redisRepository, bootstrap.InternalConfig, log)
	authController := auth.NewAuthController(log, authUsecase, bootstrap.InternalConfig)

	// Usuarios and roles
	usuarioUsecase := usuarios.NewUsuarioUsecase(usuarioMongoRepository, rolMongoRepository, log)
	usuarioController := usuarios.NewUsuarioController(log, usuarioUsecase)

	// Consultorios
	consultorioUsecase := consultorios.NewConsultorioUsecase(consultorioMongoRepository, storageService, bootstrap.InternalConfig, log)
	consultorioController := consultorios.NewConsultorioController(log, consultorioUsecase, bootstrap.InternalConfig.Minio.LogoMaxUploadSizeInMB)

	// Citas
	citaUsecase := citas.NewCitaUsecase(citaMongoRepository, log)
	citaController := citas.NewCitaController(log, citaUsecase)

	// Pagos
	pagoUsecase := pagos.NewPagoUsecase(pagoMongoRepository, log)
	pagoController := pagos.NewPagoController(log, pagoUsecase)

	// Horarios
	horarioUsecase := horarios.NewHorarioUsecase(horarioMongoRepository, log)
	horarioController := horarios.NewHorarioController(log, horarioUsecase)

	// Vinculacion
	metaOAuthClient := vinculacion.NewMetaOAuthClient(bootstrap.InternalConfig.Meta)
	vinculacionUsecase := vinculacion.NewVinculacionUsecase(redisRepository, consultorioMongoRepository, metaOAuthClient, whatsAppService, bootstrap.InternalConfig, log)
	vinculacionController := vinculacion.NewVinculacionController(log, vinculacionUsecase)

	// Menu
	menuController := menus.NewMenuController(log)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		appMiddlewares,
		authController,
		usuarioController,
		consultorioController,
		citaController,
		pagoController,
		horarioController,
		vinculacionController,
		menuController,
	)
}
