package app

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/you/marketauth/domain"
	"github.com/you/marketauth/internal/config"
	"github.com/you/marketauth/internal/infrastructure/auth"
	"github.com/you/marketauth/internal/infrastructure/database"
	"github.com/you/marketauth/internal/infrastructure/notifications"
	"github.com/you/marketauth/internal/infrastructure/repositories"
	"github.com/you/marketauth/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config

	DB          *gorm.DB
	RedisClient *redis.Client

	UserRepo    domain.UserRepository
	RegionRepo  domain.RegionRepository
	SessionRepo domain.SessionRepository

	PasswordSvc     domain.PasswordService
	TokenSvc        domain.TokenService
	NotificationSvc domain.NotificationService
	OTPSvc          domain.OTPService
	AuthSvc         domain.AuthService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	container := &Container{Config: cfg}

	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	container.initRedis()
	container.initRepositories()
	container.initServices()

	return container, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}
	c.DB = db
	return nil
}

func (c *Container) initRedis() {
	c.RedisClient = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB).Client
}

func (c *Container) initRepositories() {
	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.RegionRepo = repositories.NewRegionRepository(c.DB)
	c.SessionRepo = repositories.NewSessionRepository(c.DB)
}

func (c *Container) initServices() {
	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(
		c.Config.AccessKey,
		c.Config.RefreshKey,
		c.Config.JWTIssuer,
		c.Config.AccessTTL,
		c.Config.RefreshTTL,
	)
	c.NotificationSvc = notifications.NewTwilioService(
		c.Config.TwilioSID,
		c.Config.TwilioToken,
		c.Config.TwilioFrom,
	)

	c.OTPSvc = services.NewOTPService(c.NotificationSvc, c.RedisClient, services.OTPConfig{
		Secret:       c.Config.OTPKey,
		Step:         c.Config.OTPStep,
		Digits:       c.Config.OTPDigits,
		Skew:         c.Config.OTPSkew,
		ResendWindow: c.Config.OTPResendWindow,
	})

	c.AuthSvc = services.NewAuthService(
		c.UserRepo,
		c.RegionRepo,
		c.SessionRepo,
		c.PasswordSvc,
		c.TokenSvc,
		c.OTPSvc,
		c.Config.SessionTTL,
	)
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
