package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/codeprimate/webmaze-api/api"
	api_i "github.com/codeprimate/webmaze-api/api/i"
	"github.com/codeprimate/webmaze-api/api/identity"
	mazeapi "github.com/codeprimate/webmaze-api/api/maze"
	"github.com/codeprimate/webmaze-api/config"
	"github.com/codeprimate/webmaze-api/infrastruture/applog"
	"github.com/codeprimate/webmaze-api/infrastruture/repo"
	"github.com/codeprimate/webmaze-api/infrastruture/sortedstorage"
	"github.com/codeprimate/webmaze-api/infrastruture/token"
	"github.com/codeprimate/webmaze-api/service"
	"github.com/codeprimate/webmaze-api/service/i"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TTL on the hardest-maze board key, set when the board is first
// populated so an abandoned deployment does not keep stale rankings.
const boardTTLSeconds = 7 * 24 * 60 * 60

// Global variables for dependencies
var (
	mongoClient    *mongo.Client
	redisClient    *redis.Client
	userRepo       i.UserRepo
	mazeRepo       i.MazeRepo
	board          i.SortedBoard
	generator      i.MazeGenerator
	mazeService    i.MazeManager
	mazeController api_i.Controller
	jwtTokenizer   i.Tokenizer
	authService    i.Authenticator
	authController api_i.Controller
	router         *api.Router
	appLogger      applog.Logger
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	addr := fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort)
	redisClient = redis.NewClient(&redis.Options{Addr: addr})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initUserRepo(client *mongo.Client) {
	userRepo = repo.NewUserRepo(client, config.Envs.DBName, "users")
	appLogger.Info("User repository initialized")
}

func initMazeRepo(client *mongo.Client) {
	mazeRepo = repo.NewMazeRepo(client, config.Envs.DBName, "mazes")
	appLogger.Info("Maze repository initialized")
}

func initBoard() {
	var err error
	board, err = sortedstorage.NewRedisSortedBoard(redisClient, boardTTLSeconds)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating hardest-maze board: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Hardest-maze board initialized")
}

func initGenerator() {
	genLogger, err := applog.New("MAZE-GEN", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating generator logger: %v", err))
		os.Exit(1)
	}

	generator, err = service.NewGenerator(genLogger)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze generator: %v", err))
		os.Exit(1)
	}

	appLogger.Info("Maze generator initialized")
}

func initMazeService() {
	mazeLogger, err := applog.New("MAZE", config.ColorMagenta, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service logger: %v", err))
		os.Exit(1)
	}

	mazeService, err = service.NewMazeManager(generator, mazeRepo, board, mazeLogger, &service.MazeOptions{
		MaxDimension: config.Envs.MazeMaxDimension,
		MaxAttempts:  config.Envs.MazeMaxAttempts,
		BatchLimit:   config.Envs.MazeBatchLimit,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service: %v", err))
		os.Exit(1)
	}

	appLogger.Info("Maze service initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeService)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(userRepo, jwtTokenizer)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating auth service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Auth service initialized")
}

func initAuthController() {
	authController = identity.NewIdentityServer(authService)
	appLogger.Info("Auth controller initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		GinMode:                 config.Envs.GinMode,
		Controllers:             []api_i.Controller{authController, mazeController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	// Initialize dependencies
	appLogger, _ = applog.New("APP", config.ColorGreen, os.Stdout)

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(ctx)
	}()

	initRedis(ctx)
	defer func() {
		_ = redisClient.Close()
	}()

	initUserRepo(mongoClient)
	initMazeRepo(mongoClient)
	initBoard()
	initGenerator()
	initMazeService()
	initMazeController()
	initJWTTokenizer()
	initAuthService()
	initAuthController()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
