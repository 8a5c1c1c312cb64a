package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/jeltev/printbaarn/internal/auth"
	"github.com/jeltev/printbaarn/internal/config"
	"github.com/jeltev/printbaarn/internal/email"
	"github.com/jeltev/printbaarn/internal/httpserver"
	"github.com/jeltev/printbaarn/internal/logging"
	mw "github.com/jeltev/printbaarn/internal/middleware"
	"github.com/jeltev/printbaarn/internal/service"
	"github.com/jeltev/printbaarn/internal/storage"
	"github.com/jeltev/printbaarn/internal/store"
	"github.com/jeltev/printbaarn/internal/store/gormstore"
	"github.com/jeltev/printbaarn/internal/store/jsonstore"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := config.Load()

	// No secrets, no server. The admin area never runs on placeholder values.
	config.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")

	creds, err := auth.AdminCredentials(cfg)
	if err != nil {
		log.Fatalf("admin credentials: %v", err)
	}

	logger := logging.New(os.Getenv("LOG_LEVEL")).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	var productStore store.ProductStore
	var galleryStore store.GalleryStore
	var closeStore func() error

	switch cfg.StoreBackend {
	case "postgres":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		gs, err := gormstore.Open(ctx, cfg.DatabaseURL)
		cancel()
		if err != nil {
			log.Fatalf("db open: %v", err)
		}
		productStore, galleryStore = gs, gs
		closeStore = gs.Close
	default:
		js, err := jsonstore.New(cfg.DataDir)
		if err != nil {
			log.Fatalf("json store: %v", err)
		}
		productStore, galleryStore = js, js
		closeStore = func() error { return nil }
	}

	var assets storage.Storage
	var uploadsDir string
	if cfg.StorageBackend == "supabase" {
		config.MustNonEmpty(cfg.SupabaseURL, "SUPABASE_URL")
		config.MustNonEmpty(cfg.SupabaseKey, "SUPABASE_ANON_KEY")
		assets = storage.NewSupabase(cfg.SupabaseURL, cfg.SupabaseKey, cfg.SupabaseBucket)
	} else {
		assets = storage.NewLocal(cfg.UploadDir)
		uploadsDir = cfg.UploadDir
	}

	tokens := auth.NewTokenService(cfg.JWTSecret)
	gate := mw.NewAdminGate(tokens)

	deps := &httpserver.Deps{
		Auth: &httpserver.AuthHTTP{
			Svc:           &service.AuthService{Creds: creds, Tokens: tokens},
			SecureCookies: cfg.Production,
		},
		Products:   &httpserver.ProductHTTP{Svc: &service.CatalogService{Store: productStore}},
		Gallery:    &httpserver.GalleryHTTP{Svc: &service.GalleryService{Store: galleryStore, Assets: assets}},
		Orders:     &httpserver.OrderHTTP{Mail: email.NewSender(cfg)},
		Settings:   &httpserver.SettingsHTTP{Svc: &service.SettingsService{EnvFile: cfg.EnvFile, Creds: creds}},
		Gate:       gate,
		UploadsDir: uploadsDir,
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(mw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, deps)

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("%s listening on %s", cfg.ServiceName, srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)
	_ = closeStore()

	log.Printf("%s stopped", cfg.ServiceName)
}
