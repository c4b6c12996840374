package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/mikiasgoitom/Postboard/internal/domain/contract"
	handlerHttp "github.com/mikiasgoitom/Postboard/internal/handler/http"
	redisclient "github.com/mikiasgoitom/Postboard/internal/infrastructure/cache"
	"github.com/mikiasgoitom/Postboard/internal/infrastructure/config"
	database "github.com/mikiasgoitom/Postboard/internal/infrastructure/database"
	"github.com/mikiasgoitom/Postboard/internal/infrastructure/jwt"
	"github.com/mikiasgoitom/Postboard/internal/infrastructure/logger"
	passwordservice "github.com/mikiasgoitom/Postboard/internal/infrastructure/password_service"
	"github.com/mikiasgoitom/Postboard/internal/infrastructure/repository/mongodb"
	"github.com/mikiasgoitom/Postboard/internal/infrastructure/session"
	"github.com/mikiasgoitom/Postboard/internal/infrastructure/store"
	"github.com/mikiasgoitom/Postboard/internal/infrastructure/uuidgen"
	"github.com/mikiasgoitom/Postboard/internal/infrastructure/validator"
	"github.com/mikiasgoitom/Postboard/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	envErr := godotenv.Load()

	appConfig := config.NewConfig()
	appLogger := logger.NewLogger(appConfig.LogLevel)
	if envErr != nil {
		appLogger.Infof("No .env file found, using environment variables")
	}
	if err := appConfig.Validate(); err != nil {
		appLogger.Fatalf("invalid configuration: %v", err)
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(appConfig.MongoURI)
	if err != nil {
		appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	db := mongoClient.Client.Database(appConfig.MongoDBName)
	indexCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureIndexes(indexCtx, db); err != nil {
		cancel()
		appLogger.Fatalf("Failed to create indexes: %v", err)
	}
	cancel()

	// Register custom validators
	validator.RegisterCustomValidators()

	// Dependency Injection: Repositories
	userRepo := mongodb.NewMongoUserRepository(db.Collection("users"))
	postRepo := mongodb.NewPostRepository(db)
	voteRepo := mongodb.NewVoteRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)
	mediaRepo := mongodb.NewMediaRepository(db)
	fileStorage := mongodb.NewGridFSStorage(db, "images")

	var tx contract.ITransactor = mongodb.SequentialTransactor{}
	if appConfig.GetUseTransactions() {
		tx = mongodb.NewMongoTransactor(mongoClient.Client)
	} else {
		appLogger.Warnf("MongoDB transactions disabled; vote counters are repaired by compensation")
	}

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	jwtService := jwt.NewJWTService(jwt.NewJWTManager(appConfig.JWTSecret, 24*time.Hour))
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()
	sessions := session.NewResolver()

	// Dependency Injection: Usecases
	userUsecase := usecase.NewUserUsecase(userRepo, hasher, appLogger, appValidator, uuidGenerator)
	postUsecase := usecase.NewPostUseCase(postRepo, commentRepo, voteRepo, tx, sessions, uuidGenerator, appLogger, appConfig.GetPostsPerPage())
	voteUsecase := usecase.NewVoteUsecase(voteRepo, postRepo, tx, sessions, uuidGenerator, appLogger)
	commentUsecase := usecase.NewCommentUseCase(commentRepo, postRepo, sessions, uuidGenerator, appLogger, appConfig.GetCommentsPerPage())
	uploadUsecase := usecase.NewUploadUsecase(mediaRepo, fileStorage, sessions, uuidGenerator, appLogger, appConfig)

	// Optional Dependency Injection: Redis cache
	if appConfig.RedisURL != "" {
		rdb, err := redisclient.NewRedisFromURL(context.Background(), appConfig.RedisURL)
		if err != nil {
			appLogger.Warningf("Redis unavailable, post lists will not be cached: %v", err)
		} else {
			defer redisclient.Close(rdb)
			postCache := store.NewPostCacheStore(rdb, appConfig.GetPostListCacheTTL())
			postUsecase.SetPostCache(postCache)
			voteUsecase.SetPostCache(postCache)
		}
	}

	// Setup API routes
	router := gin.New()
	router.Use(gin.Recovery())
	handlerHttp.NewRouter(handlerHttp.RouterDeps{
		UserUsecase:    userUsecase,
		PostUsecase:    postUsecase,
		CommentUsecase: commentUsecase,
		VoteUsecase:    voteUsecase,
		UploadUsecase:  uploadUsecase,
		JWTService:     jwtService,
		DB:             mongoClient,
		MaxUploadBytes: appConfig.GetMaxUploadBytes(),
		RateLimit:      appConfig.RateLimit,
	}).SetupRoutes(router)

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Infof("Server running on port %s", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorf("Server shutdown failed: %v", err)
	}
	appLogger.Infof("Server stopped")
}
