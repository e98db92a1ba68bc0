package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/ayush/bemestar-report/internal/analysis"
	"github.com/ayush/bemestar-report/internal/config"
	"github.com/ayush/bemestar-report/internal/logging"
	"github.com/ayush/bemestar-report/internal/middleware"
	"github.com/ayush/bemestar-report/internal/pdf"
	"github.com/ayush/bemestar-report/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	// ── Report store ─────────────────────────────────────────
	var reports store.ReportStore
	switch cfg.ReportStore {
	case config.StorePostgres:
		pgPool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			logger.Fatal("postgres connect", zap.Error(err))
		}
		defer pgPool.Close()
		if err := pgPool.Ping(ctx); err != nil {
			logger.Fatal("postgres ping", zap.Error(err))
		}
		pgStore := store.NewPostgresStore(pgPool)
		if err := pgStore.Migrate(ctx); err != nil {
			logger.Fatal("postgres migrate", zap.Error(err))
		}
		reports = pgStore
		logger.Info("postgres connected")

	case config.StoreMongo:
		mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			logger.Fatal("mongo connect", zap.Error(err))
		}
		defer mongoClient.Disconnect(ctx)
		if err := mongoClient.Ping(ctx, nil); err != nil {
			logger.Fatal("mongo ping", zap.Error(err))
		}
		reports = store.NewMongoStore(mongoClient.Database(cfg.MongoDB))
		logger.Info("mongo connected", zap.String("db", cfg.MongoDB))

	default:
		reports = store.NewMemoryStore()
		logger.Warn("using in-memory report store; reports are lost on restart")
	}

	// ── Redis ────────────────────────────────────────────────
	var events analysis.EventPublisher
	if cfg.RedisAddr != "" {
		rdb, err := store.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			logger.Fatal("redis connect", zap.Error(err))
		}
		defer rdb.Close()
		events = store.NewEventPublisher(rdb, cfg.RedisChannel)
		logger.Info("publishing report events", zap.String("channel", cfg.RedisChannel))
	}

	// ── Logo ─────────────────────────────────────────────────
	logo := pdf.FirstLogo{}
	if cfg.MinioEndpoint != "" {
		minioStore, err := store.NewMinioStore(
			ctx, cfg.MinioEndpoint, cfg.MinioAccessKey,
			cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL,
		)
		if err != nil {
			logger.Fatal("minio connect", zap.Error(err))
		}
		logo = append(logo, pdf.ObjectLogo{Objects: minioStore, Key: cfg.LogoObject})
	}
	if cfg.LogoPath != "" {
		logo = append(logo, pdf.FileLogo{Path: cfg.LogoPath})
	}

	// ── AI client ────────────────────────────────────────────
	generator, err := analysis.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiBaseURL, logger)
	if err != nil {
		logger.Fatal("gemini client", zap.Error(err))
	}

	// ── Handlers ─────────────────────────────────────────────
	svc := analysis.NewService(generator, reports, events, logger)
	analysisHandler := analysis.NewHandler(svc, pdf.NewRenderer(logo, logger), logger)

	// ── Router ───────────────────────────────────────────────
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/analisar", analysisHandler.Analyze)
		r.Get("/download-pdf/{id}", analysisHandler.DownloadPDF)
	})

	r.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))

	// ── Server ───────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("server listening",
			zap.String("addr", "http://localhost:"+cfg.Port),
			zap.String("frontend", "http://localhost:"+cfg.Port+"/index.html"),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}
