package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tempdev/site/internal/config"
	"github.com/tempdev/site/internal/handler"
	"github.com/tempdev/site/internal/logging"
	"github.com/tempdev/site/internal/mailer"
	"github.com/tempdev/site/internal/repository"
	"github.com/tempdev/site/internal/service"
	"github.com/tempdev/site/pkg/auth"
)

// stores bundles the repositories backing the API.
type stores struct {
	db       repository.DB
	contacts repository.ContactRepository
	users    repository.UserRepository
	close    func()
}

// openStores uses PostgreSQL when DATABASE_URL is set and the JSON files in
// DATA_DIR otherwise.
func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	if cfg.DatabaseURL != "" {
		pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		slog.Info("using postgres store")
		return &stores{
			db:       pool,
			contacts: repository.NewPgContactRepository(pool),
			users:    repository.NewPgUserRepository(pool),
			close:    pool.Close,
		}, nil
	}

	fdb, err := repository.OpenFileDB(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	contacts, err := repository.NewJSONContactRepository(fdb.Path("contacts.json"))
	if err != nil {
		return nil, err
	}
	users, err := repository.NewJSONUserRepository(fdb.Path("users.json"))
	if err != nil {
		return nil, err
	}
	slog.Info("using json file store", "dir", cfg.DataDir)
	return &stores{db: fdb, contacts: contacts, users: users, close: func() {}}, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup("INFO")
		logging.Fatal("invalid configuration", "error", err)
	}
	logging.Setup(cfg.LogLevel)

	st, err := openStores(context.Background(), cfg)
	if err != nil {
		logging.Fatal("failed to open store", "error", err)
	}
	defer st.close()

	// メール未設定でもサーバーは起動し、問い合わせだけが設定エラーを返す
	var sender mailer.Sender
	if s, err := mailer.New(cfg.SMTP, cfg.MailOutboxDir); err != nil {
		slog.Warn("mail transport unavailable, contact form disabled", "error", err)
	} else {
		sender = s
	}

	catalog, err := repository.LoadCatalog(cfg.CatalogPath())
	if err != nil {
		slog.Warn("vehicle catalog unreadable, using built-in catalog", "path", cfg.CatalogPath(), "error", err)
		catalog = repository.DefaultCatalog()
	}

	contactService := service.NewContactService(st.contacts, sender, service.ContactConfig{
		OwnerAddress: cfg.Contact.To,
		FromAddress:  cfg.SMTP.Sender(),
		ReplyHours:   cfg.Contact.ReplyHours,
		SiteName:     cfg.SiteName,
	})
	authService := service.NewAuthService(st.users)
	chatService := service.NewChatService(catalog)

	h := handler.New(st.db, cfg.FrontendURL)
	contactHandler := handler.NewContactHandler(contactService)
	authHandler := handler.NewAuthHandler(authService)
	chatHandler := handler.NewChatHandler(chatService)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("POST /api/contact", contactHandler.Submit)
	mux.HandleFunc("POST /api/signup", authHandler.Signup)
	mux.HandleFunc("POST /api/login", authHandler.Login)
	mux.HandleFunc("POST /api/chat", chatHandler.Chat)

	// Operator routes (only when ADMIN_TOKEN is set)
	if cfg.AdminToken != "" {
		mux.Handle("GET /api/admin/contacts", auth.RequireToken(cfg.AdminToken)(http.HandlerFunc(contactHandler.AdminList)))
	}

	mux.HandleFunc("/api/", handler.APINotFound)
	mux.Handle("/", handler.Static(cfg.PublicDir))

	// Contact submissions wait on two SMTP sends.
	writeTimeout := 2*cfg.SMTP.Timeout + 10*time.Second

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler.Chain(mux, handler.RequestLogger, handler.SecurityHeaders, h.CORS),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	slog.Info("server stopped")
}
