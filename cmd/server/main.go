package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/precinct-io/case-tracker/internal/api"
	"github.com/precinct-io/case-tracker/internal/core/domain"
	"github.com/precinct-io/case-tracker/internal/core/ports"
	"github.com/precinct-io/case-tracker/internal/core/service"
	"github.com/precinct-io/case-tracker/internal/infrastructure/config"
	mongodb "github.com/precinct-io/case-tracker/internal/infrastructure/db/mongo"
	redisdb "github.com/precinct-io/case-tracker/internal/infrastructure/db/redis"
	"github.com/precinct-io/case-tracker/internal/infrastructure/mail"
	"github.com/precinct-io/case-tracker/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger options live in the config we failed to load.
		fallback := zerolog.New(os.Stderr)
		fallback.Fatal().Err(err).Msg("configuration failed")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Storage ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb unavailable")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis unavailable")
	}
	defer rdb.Close()

	// --- Wiring ---
	userRepo := mongodb.NewUserRepository(db)
	caseRepo := mongodb.NewCaseRepository(db)
	sessionStore := redisdb.NewSessionStore(rdb)

	mailer := mail.NewMailer(mail.Config{
		Host:         cfg.SMTP.Host,
		Port:         cfg.SMTP.Port,
		Account:      cfg.SMTP.Account,
		Password:     cfg.SMTP.Password,
		PublicDomain: cfg.PublicDomain,
	})

	authService := service.NewAuthService(userRepo, log)
	userService := service.NewUserService(userRepo, mailer, log)
	caseService := service.NewCaseService(caseRepo, userRepo, log)
	sessionService := service.NewSessionService(sessionStore, userRepo, cfg.SessionSecret, cfg.SessionTTL, log)

	if err := seedBoss(ctx, userRepo, cfg.Boss, log); err != nil {
		log.Fatal().Err(err).Msg("boss seed failed")
	}

	e, err := api.NewRouter(api.RouterConfig{
		Auth:          authService,
		Users:         userService,
		Cases:         caseService,
		Sessions:      sessionService,
		SessionTTL:    sessionService.TTL(),
		SecureCookies: cfg.Env != "development",
		Mongo:         db,
		Redis:         rdb,
		Logger:        log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("router setup failed")
	}

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("case tracker listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown incomplete")
	}
}

// seedBoss creates the boss account when BOSS_EMAIL/BOSS_PASSWORD are set
// and no account with that email exists yet. The web surface has no
// registration path for bosses; this is the storage-level seed.
func seedBoss(ctx context.Context, users ports.UserRepository, seed config.BossSeedConfig, log zerolog.Logger) error {
	if seed.Email == "" || seed.Password == "" {
		return nil
	}

	if _, err := users.FindByEmail(ctx, seed.Email); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	boss, err := users.Create(ctx, &domain.User{
		Name:         "Boss",
		Email:        seed.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleBoss,
		Approved:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return err
	}

	log.Info().Int64("user_id", boss.ID).Str("email", boss.Email).Msg("boss account seeded")
	return nil
}
