package main

import (
	"context"
	"expvar"
	"log"
	"os"
	"runtime"
	"time"

	"coursefeedback/internal/config"
	"coursefeedback/internal/db"
	"coursefeedback/internal/domain/storage"
	"coursefeedback/internal/ratelimiter"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a colored console logger for development and a JSON
// logger for production.
func NewLogger(env, level string) (*zap.SugaredLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	if env == "production" {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(lvl)
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		logger, err := cfg.Build()
		if err != nil {
			return nil, err
		}
		return logger.Sugar(), nil
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)
	core := zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stdout), lvl)

	return zap.New(core).Sugar(), nil
}

var version = "1.0.0"

//	@title			Course Feedback API
//	@description	Collects per-course student feedback and serves rating statistics.

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@BasePath	/api

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger, err := NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer logger.Sync()

	// Database
	pool, err := db.New(cfg.DB.DSN(), cfg.DB.MaxConns, cfg.DB.MaxIdleTime)
	if err != nil {
		logger.Fatal(err)
	}
	defer pool.Close()
	logger.Infow("database connection pool established", "host", cfg.DB.Host, "db", cfg.DB.Name, "max_conns", cfg.DB.MaxConns)

	if cfg.DB.EnsureSchema {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := db.EnsureSchema(ctx, pool)
		cancel()
		if err != nil {
			logger.Fatal(err)
		}
		logger.Info("feedback table ready")
	}

	store := storage.NewContainer(pool)

	// Rate limiter
	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.RateLimiter.RequestsPerTimeFrame,
		cfg.RateLimiter.TimeFrame,
	)

	app := &application{
		config:      *cfg,
		logger:      logger,
		store:       store,
		rateLimiter: rateLimiter,
	}

	//Metrics collected http://localhost:5000/api/debug/vars
	expvar.NewString("version").Set(version)
	expvar.Publish("database", expvar.Func(func() any {
		s := pool.Stat()
		return map[string]any{
			"max_conns":           s.MaxConns(),
			"total_conns":         s.TotalConns(),
			"acquired_conns":      s.AcquiredConns(),
			"idle_conns":          s.IdleConns(),
			"acquire_count":       s.AcquireCount(),
			"empty_acquire_count": s.EmptyAcquireCount(),
			"acquire_duration":    s.AcquireDuration().String(),
		}
	}))
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	mux := app.mount()

	if err := app.run(mux); err != nil {
		logger.Fatal(err)
	}
}
