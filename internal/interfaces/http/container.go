package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/edulane/edulane/internal/infrastructure/auth"
	"github.com/edulane/edulane/internal/infrastructure/cache"
	"github.com/edulane/edulane/internal/infrastructure/config"
	"github.com/edulane/edulane/internal/infrastructure/email"
	"github.com/edulane/edulane/internal/infrastructure/notifier"
	"github.com/edulane/edulane/internal/interfaces/http/middleware"
	"github.com/edulane/edulane/internal/shared/clock"
	"github.com/edulane/edulane/internal/shared/db"
	"github.com/edulane/edulane/internal/shared/logger"
	"github.com/edulane/edulane/internal/shared/services/markdown"
)

// Container wires infrastructure, repositories, use cases and handlers
// together and owns the pieces that need explicit shutdown.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	authMiddleware *middleware.AuthMiddleware

	jwtService     *auth.JWTService
	passwordHasher *auth.BcryptPasswordHasher
	emailService   *email.SMTPEmailService
	accessNotifier *notifier.Notifier
	txManager      *db.TransactionManager
	markdownSvc    markdown.Service
	clock          clock.Clock
}

// NewContainer builds the full dependency graph. Optional pieces (redis
// cache, email channel) degrade to nil when disabled in config.
func NewContainer(ctx context.Context, gormDB *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     gormDB,
		cfg:    cfg,
		log:    log,
		clock:  clock.System,
	}

	if err := c.initInfrastructure(ctx); err != nil {
		return nil, err
	}
	c.initRepositories()
	c.initUseCases()
	c.initHandlers()

	return c, nil
}

func (c *Container) initInfrastructure(ctx context.Context) error {
	c.jwtService = auth.NewJWTService(c.cfg.Auth.JWTSecret, c.cfg.Auth.AccessTokenExpiry, c.clock)
	c.passwordHasher = auth.NewBcryptPasswordHasher(0)
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtService, c.log)
	c.txManager = db.NewTransactionManager(c.db)
	c.markdownSvc = markdown.NewService()

	if c.cfg.Redis.Enabled {
		client, err := cache.NewRedisClient(ctx, &c.cfg.Redis)
		if err != nil {
			return err
		}
		c.redis = client
	}

	if c.cfg.Email.Enabled {
		c.emailService = email.NewSMTPEmailService(email.SMTPConfig{
			Host:        c.cfg.Email.Host,
			Port:        c.cfg.Email.Port,
			Username:    c.cfg.Email.Username,
			Password:    c.cfg.Email.Password,
			FromAddress: c.cfg.Email.FromAddress,
			FromName:    c.cfg.Email.FromName,
		})
	}

	return nil
}

// Engine returns the configured gin engine.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Shutdown releases resources owned by the container.
func (c *Container) Shutdown() error {
	if c.redis != nil {
		return c.redis.Close()
	}
	return nil
}
