package initialize

import (
	"fmt"
	"net/http"

	"lost-and-found/backend/app/controllers"
	"lost-and-found/backend/app/db"
	jwtutil "lost-and-found/backend/app/jwt"
	"lost-and-found/backend/app/middleware"
	"lost-and-found/backend/app/models"
	"lost-and-found/backend/app/repo"
	"lost-and-found/backend/app/services"
	"lost-and-found/backend/config"
	"lost-and-found/backend/global"
	"lost-and-found/backend/router"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	Cfg    *config.Config
	DB     *gorm.DB
	Router http.Handler
	Users  *services.UserService
	Items  *services.ItemService
	Admin  *services.AdminService
}

func Build(configPath string) (*App, error) {
	// Load config
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = *cfg

	// Connect DB
	gdb, err := db.Connect(db.Config{
		Driver: cfg.DB.Driver, Path: cfg.DB.Path,
		Host: cfg.DB.Host, Port: cfg.DB.Port,
		User: cfg.DB.User, Password: cfg.DB.Pass, DBName: cfg.DB.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	// Migrate
	if err := gdb.AutoMigrate(&models.User{}, &models.LostItem{}, &models.FoundItem{}, &models.AdminLog{}, &models.LoginAttempt{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// Redis is optional; without it the login rate limiter is a no-op.
	if cfg.Redis.Addr != "" {
		global.Rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Pass})
	}

	return BuildWithDB(cfg, gdb, global.Rdb)
}

// BuildWithDB wires the application around an injected store so tests can
// substitute an in-memory database.
func BuildWithDB(cfg *config.Config, gdb *gorm.DB, rdb *redis.Client) (*App, error) {
	userRepo := repo.NewUserRepository(gdb)
	lostRepo := repo.NewLostItemRepository(gdb)
	foundRepo := repo.NewFoundItemRepository(gdb)
	logRepo := repo.NewAdminLogRepository(gdb)
	attemptRepo := repo.NewLoginAttemptRepository(gdb)

	auditSvc := services.NewAuditService(logRepo)
	userSvc := services.NewUserService(userRepo, attemptRepo)
	itemSvc := services.NewItemService(lostRepo, foundRepo, auditSvc)
	adminSvc := services.NewAdminService(userRepo, lostRepo, foundRepo, attemptRepo, auditSvc)

	signer := &jwtutil.Signer{Secret: []byte(cfg.JWT.Secret), Issuer: cfg.JWT.Issuer, ExpMin: cfg.JWT.ExpMin}
	mw := &middleware.Auth{Signer: signer}
	limiter := &middleware.RateLimiter{Rdb: rdb, PerMinute: cfg.LoginRatePerMin}

	h := router.New(router.Deps{
		HTTP:   controllers.NewHTTPController(),
		Auth:   controllers.NewAuthController(userSvc, signer),
		Items:  controllers.NewItemController(itemSvc),
		Admin:  controllers.NewAdminController(adminSvc),
		Upload: controllers.NewUploadController(cfg.Upload.Dir, cfg.Upload.MaxSizeMB),
		MW:     mw,
		Limit:  limiter,
	})
	h = middleware.Logging(h)

	return &App{Cfg: cfg, DB: gdb, Router: h, Users: userSvc, Items: itemSvc, Admin: adminSvc}, nil
}
