package cli

import (
	"context"
	"fmt"

	"github.com/felixgeelhaar/bolt/v3"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/beka-birhanu/vinom-robot/api"
	episodeapi "github.com/beka-birhanu/vinom-robot/api/episode"
	api_i "github.com/beka-birhanu/vinom-robot/api/i"
	"github.com/beka-birhanu/vinom-robot/api/identity"
	"github.com/beka-birhanu/vinom-robot/config"
	"github.com/beka-birhanu/vinom-robot/infrastruture/logging"
	"github.com/beka-birhanu/vinom-robot/infrastruture/repo"
	"github.com/beka-birhanu/vinom-robot/infrastruture/sortedstorage"
	"github.com/beka-birhanu/vinom-robot/infrastruture/token"
	"github.com/beka-birhanu/vinom-robot/service"
)

const (
	operatorsCollection = "operators"
	episodesCollection  = "episodes"
)

// newServeCmd creates the serve command.
func (a *App) newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API",
		Long: `Start the REST API backed by MongoDB and Redis.

Configuration comes from the environment (or a .env file):
  DB_URI, JWT_SECRET            required
  DB_NAME                       default vinom_robot
  HOST_IP, REST_PORT            default 0.0.0.0:8080
  REDIS_ADDR, REDIS_PASSWORD    default localhost:6379
  LEADERBOARD_TTL_SECONDS       default 86400
  JWT_ISSUER, GIN_MODE, LOG_LEVEL, LOG_FORMAT
  GOAL_MAX_STEPS, REFLEX_MAX_STEPS`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *App) serve(ctx context.Context) error {
	cfg, logger, err := a.loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.ValidateServer(); err != nil {
		return err
	}
	gin.SetMode(cfg.GinMode)

	mongoClient, err := connectMongo(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	redisClient, err := connectRedis(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	operatorRepo := repo.NewOperatorRepo(mongoClient, cfg.DBName, operatorsCollection)
	if err := operatorRepo.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("creating operator indexes: %w", err)
	}
	episodeRepo := repo.NewEpisodeRepo(mongoClient, cfg.DBName, episodesCollection)
	leaderboard := sortedstorage.NewRedisLeaderboard(redisClient, cfg.LeaderboardTTL, 0)
	tokenizer := token.NewJwtService(cfg.JWTSecret, cfg.JWTIssuer)

	authService, err := service.NewAuthService(operatorRepo, tokenizer)
	if err != nil {
		return err
	}
	episodeService, err := service.NewEpisodeService(service.EpisodeServiceConfig{
		Repo:           episodeRepo,
		Leaderboard:    leaderboard,
		Logger:         logger,
		GoalMaxSteps:   cfg.GoalMaxSteps,
		ReflexMaxSteps: cfg.ReflexMaxSteps,
	})
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", cfg.HostIP, cfg.RESTPort)
	router := api.NewRouter(api.Config{
		Addr:    addr,
		BaseURL: "/api",
		Controllers: []api_i.Controller{
			identity.NewIdentityServer(authService),
			episodeapi.NewEpisodeController(episodeService),
		},
		AuthorizationMiddleware: identity.Authoriz(tokenizer),
	})

	logging.NewEvent(logger.Info()).Add(logging.Component("api"), logging.Str("addr", addr)).Msg("serving REST API")
	if err := router.Serve(ctx); err != nil {
		logging.NewEvent(logger.Error()).Add(logging.Component("api"), logging.ErrorField(err)).Msg("server stopped")
		return err
	}
	logging.NewEvent(logger.Info()).Add(logging.Component("api")).Msg("server stopped")
	return nil
}

func connectMongo(ctx context.Context, cfg config.Config, logger *bolt.Logger) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DBURI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("MongoDB ping failed: %w", err)
	}
	logging.NewEvent(logger.Info()).Add(logging.Component("mongo")).Msg("connected to MongoDB")
	return client, nil
}

func connectRedis(ctx context.Context, cfg config.Config, logger *bolt.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	logging.NewEvent(logger.Info()).Add(logging.Component("redis")).Msg("connected to Redis")
	return client, nil
}
