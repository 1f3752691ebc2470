package server

import (
	"context"
	"fmt"
	"time"

	"minecoin/internal/config"
	"minecoin/internal/handler"
	"minecoin/internal/middleware"
	"minecoin/internal/model"
	"minecoin/internal/notify"
	"minecoin/internal/repository"
	"minecoin/internal/service"
	"minecoin/internal/store"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Server represents the HTTP server
type Server struct {
	cfg      *config.Config
	router   *gin.Engine
	mongo    *mongo.Client
	watcher  notify.OrderWatcher
	services *Services
}

// Services bundles the domain services.
type Services struct {
	Users    *service.UserService
	Txs      *service.TransactionService
	News     *service.NewsService
	Config   *service.SiteConfigService
	Admin    *service.AdminService
	Sessions *service.SessionService
}

// Handlers bundles the HTTP handlers.
type Handlers struct {
	Auth   *handler.AuthHandler
	Users  *handler.UserHandler
	Txs    *handler.TransactionHandler
	News   *handler.NewsHandler
	Config *handler.SiteConfigHandler
	Admin  *handler.AdminHandler
	Events *handler.EventsHandler
}

// New creates a new server instance wired to the configured store backend.
func New(cfg *config.Config) (*Server, error) {
	hub := notify.NewHub()

	var (
		repos       *repository.Repositories
		mongoClient *mongo.Client
	)

	switch cfg.Store.Driver {
	case config.DriverMongo:
		client, err := Connect(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
		}
		db := client.Database(cfg.Mongo.Database)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := repository.EnsureSeedData(ctx, db); err != nil {
			return nil, fmt.Errorf("failed to seed initial data: %w", err)
		}

		repos = repository.NewMongoRepositories(db, hub)
		mongoClient = client

	case config.DriverFile:
		fileStore, err := store.OpenFileStore(cfg.Store.FilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open file store: %w", err)
		}
		repos = repository.NewLocalRepositories(fileStore, hub)

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}

	services := InitServices(cfg, repos)
	watcher := initWatcher(cfg, hub, services.Txs)
	handlers := InitHandlers(services, watcher)
	router := setupRouter(handlers, services)

	return &Server{
		cfg:      cfg,
		router:   router,
		mongo:    mongoClient,
		watcher:  watcher,
		services: services,
	}, nil
}

// Connect dials MongoDB and verifies the connection.
func Connect(cfg *config.Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, nil
}

// InitServices builds the domain services over the repository set.
func InitServices(cfg *config.Config, repos *repository.Repositories) *Services {
	return &Services{
		Users:    service.NewUserService(repos.Users),
		Txs:      service.NewTransactionService(repos.Transactions, repos.Config),
		News:     service.NewNewsService(repos.News),
		Config:   service.NewSiteConfigService(repos.Config),
		Admin:    service.NewAdminService(repos.Users, repos.Transactions, repos.Resetter),
		Sessions: service.NewSessionService(repos.Users, cfg.Session.TTL),
	}
}

// InitHandlers builds the HTTP handlers.
func InitHandlers(s *Services, watcher notify.OrderWatcher) *Handlers {
	return &Handlers{
		Auth:   handler.NewAuthHandler(s.Users, s.Sessions),
		Users:  handler.NewUserHandler(s.Users),
		Txs:    handler.NewTransactionHandler(s.Txs),
		News:   handler.NewNewsHandler(s.News),
		Config: handler.NewSiteConfigHandler(s.Config),
		Admin:  handler.NewAdminHandler(s.Admin),
		Events: handler.NewEventsHandler(watcher),
	}
}

// initWatcher picks the change-notification strategy: push subscription for
// the mongo driver, poll-and-diff for the file driver (overridable).
func initWatcher(cfg *config.Config, hub *notify.Hub, txs *service.TransactionService) notify.OrderWatcher {
	switch cfg.WatchStrategy() {
	case config.WatchPush:
		w := notify.NewPushWatcher(hub, txs.PendingCount)
		w.Start()
		return w
	default:
		p := notify.NewPoller(txs.PendingCount, cfg.Watch.PollInterval)
		p.Start()
		return p
	}
}

// Close stops the watcher and disconnects MongoDB.
func (s *Server) Close() error {
	if s.watcher != nil {
		s.watcher.Stop()
	}
	if s.mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.mongo.Disconnect(ctx)
	}
	return nil
}

// Run starts the server
func (s *Server) Run() error {
	log.Info("MineCoin server running", "addr", s.cfg.Server.Address(), "store", s.cfg.Store.Driver)
	return s.router.Run(s.cfg.Server.Address())
}

func setupRouter(h *Handlers, s *Services) *gin.Engine {
	r := gin.Default()
	r.SetTrustedProxies(nil)

	api := r.Group("/api")

	// Public routes
	api.POST("/register", h.Auth.Register)
	api.POST("/login", h.Auth.Login)
	api.GET("/news", h.News.List)
	api.GET("/config", h.Config.Get)

	// Authenticated routes
	authed := api.Group("")
	authed.Use(middleware.SessionAuth(s.Sessions))

	authed.POST("/logout", h.Auth.Logout)
	authed.GET("/me", h.Auth.Me)
	authed.PATCH("/users/:id", h.Users.Update)

	authed.POST("/transactions/buy", h.Txs.Buy)
	authed.GET("/transactions/mine", h.Txs.ListMine)
	authed.GET("/transactions/approved-total", h.Txs.ApprovedTotal)

	// Admin routes (ADMIN or MASTER)
	admin := authed.Group("")
	admin.Use(middleware.RequireRole(model.RoleAdmin, model.RoleMaster))

	admin.POST("/admin/register", h.Auth.RegisterAdmin)
	admin.GET("/users", h.Users.List)
	admin.PATCH("/users/:id/status", h.Users.UpdateStatus)
	admin.DELETE("/users/:id", h.Users.Delete)

	admin.GET("/transactions", h.Txs.ListAll)
	admin.PATCH("/transactions/:id/status", h.Txs.UpdateStatus)
	admin.DELETE("/transactions/:id", h.Txs.SoftDelete)

	admin.POST("/news", h.News.Add)
	admin.DELETE("/news/:id", h.News.Delete)
	admin.PATCH("/config", h.Config.Update)

	admin.GET("/events/orders", h.Events.Orders)

	// Master routes
	master := authed.Group("")
	master.Use(middleware.RequireRole(model.RoleMaster))

	master.POST("/transactions/:id/restore", h.Txs.Restore)
	master.POST("/admin/reset-user-data", h.Admin.ResetUserData)
	master.POST("/admin/reset-all", h.Admin.ResetAll)

	return r
}
