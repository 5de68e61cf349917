// Package app builds the dependency graph shared by the HTTP server.
package app

import (
	"fmt"

	"professionals-api/config"
	"professionals-api/internal/api/handlers"
	"professionals-api/internal/auth"
	"professionals-api/internal/cache"
	"professionals-api/internal/mail"
	"professionals-api/internal/media"
	"professionals-api/internal/pagination"
	"professionals-api/internal/services"
	"professionals-api/internal/social"
	"professionals-api/internal/storage/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	DBPool      *pgxpool.Pool
	RedisClient *redis.Client
	Cache       *cache.Store
	Files       *media.FileStore
	Tokens      *auth.TokenManager
	Services    Services
	Handlers    Handlers
}

// Services exposes the business layer, mostly for the router's middleware.
type Services struct {
	Auth          services.AuthService
	Profile       services.ProfileService
	Reference     services.ReferenceService
	Search        services.SearchService
	Companies     services.CompanyService
	Content       services.CompanyContentService
	Offers        services.OfferService
	Applications  services.ApplicationService
	Reviews       services.ReviewService
	Chat          services.ChatService
	Notifications services.NotificationService
	Bookmarks     services.BookmarkService
	Analytics     services.AnalyticsService
	Users         services.UserAdminService
	Reports       services.ReportService
}

type Handlers struct {
	Auth          *handlers.AuthHandler
	Profile       *handlers.ProfileHandler
	Reference     *handlers.ReferenceHandler
	Search        *handlers.SearchHandler
	Companies     *handlers.CompanyHandler
	Content       *handlers.CompanyContentHandler
	Offers        *handlers.OfferHandler
	Applications  *handlers.ApplicationHandler
	Reviews       *handlers.ReviewHandler
	Chat          *handlers.ChatHandler
	Notifications *handlers.NotificationHandler
	Bookmarks     *handlers.BookmarkHandler
	Analytics     *handlers.AnalyticsHandler
	Admin         *handlers.AdminHandler
	Reports       *handlers.ReportHandler
	Health        *handlers.HealthHandler
	SPA           *handlers.SPAHandler
}

// New wires repositories, services and handlers on top of the open connections.
func New(cfg *config.Config, pool *pgxpool.Pool, rdb *redis.Client) (*Application, error) {
	files, err := media.NewFileStore(cfg.Storage.BasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file storage: %w", err)
	}

	store := cache.New(rdb)
	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Expiration)
	signer := auth.NewURLSigner(cfg.App.Key, cfg.App.BaseURL)
	limits := services.UploadLimits{MaxBytes: cfg.Storage.MaxUploadBytes(), MaxCVPages: cfg.Storage.MaxCVPages}

	// --- Repositories ---
	tx := postgres.NewTxManager(pool)
	users := postgres.NewUserRepo(pool)
	profiles := postgres.NewStudentProfileRepo(pool)
	refs := postgres.NewReferenceRepo(pool)
	companies := postgres.NewCompanyRepo(pool)
	offers := postgres.NewJobOfferRepo(pool)
	applications := postgres.NewApplicationRepo(pool)
	reviews := postgres.NewReviewRepo(pool)
	conversations := postgres.NewConversationRepo(pool)
	messages := postgres.NewMessageRepo(pool)
	notifications := postgres.NewNotificationRepo(pool)
	bookmarks := postgres.NewBookmarkRepo(pool)
	entities := postgres.NewEntityRepo(pool)
	analytics := postgres.NewAnalyticsRepo(pool)

	// --- Services ---
	notifier := services.NewNotificationService(notifications)
	svc := Services{
		Auth: services.NewAuthService(users, profiles, tx, tokens, signer, store, store,
			social.NewRegistry(cfg.OAuth), mail.New(cfg.Mail), cfg.App.FrontendURL),
		Profile:   services.NewProfileService(users, profiles, refs, files, limits),
		Reference: services.NewReferenceService(refs),
		Search:    services.NewSearchService(companies, postgres.NewSuggestionRepo(pool), refs, store),
		Companies: services.NewCompanyService(companies, refs, analytics, files, limits),
		Content: services.NewCompanyContentService(
			postgres.NewCompanyMediaRepo(pool),
			postgres.NewPublicationRepo(pool),
			postgres.NewOrgRepo(pool),
			postgres.NewHRContactRepo(pool),
			tx,
		),
		Offers:        services.NewOfferService(offers, refs),
		Applications:  services.NewApplicationService(applications, offers, companies, profiles, notifier),
		Reviews:       services.NewReviewService(reviews, tx, notifier),
		Chat:          services.NewChatService(conversations, messages, companies, tx, files, limits, notifier),
		Notifications: notifier,
		Bookmarks:     services.NewBookmarkService(bookmarks, entities, tx),
		Analytics: services.NewAnalyticsService(services.AnalyticsRepos{
			Analytics:     analytics,
			Entities:      entities,
			Companies:     companies,
			Offers:        offers,
			Applications:  applications,
			Bookmarks:     bookmarks,
			Notifications: notifications,
			Profiles:      profiles,
		}, store, store),
		Users:   services.NewUserAdminService(users, store, files, tokens.TTL()),
		Reports: services.NewReportService(postgres.NewReportRepo(pool), entities),
	}

	// --- Handlers ---
	binder := handlers.NewBinder(handlers.NewValidator(), pagination.Config{
		DefaultPageSize: cfg.Pagination.DefaultPageSize,
		MaxPageSize:     cfg.Pagination.MaxPageSize,
	}, cfg.Storage.MaxUploadBytes())
	cookie := handlers.SessionCookie{Name: cfg.JWT.CookieName, Secure: cfg.Server.Mode == "release"}

	h := Handlers{
		Auth:          handlers.NewAuthHandler(svc.Auth, binder, cookie),
		Profile:       handlers.NewProfileHandler(svc.Profile, svc.Analytics, binder),
		Reference:     handlers.NewReferenceHandler(svc.Reference, binder),
		Search:        handlers.NewSearchHandler(svc.Search, binder),
		Companies:     handlers.NewCompanyHandler(svc.Companies, svc.Content, svc.Offers, svc.Reviews, binder),
		Content:       handlers.NewCompanyContentHandler(svc.Content, binder),
		Offers:        handlers.NewOfferHandler(svc.Offers, binder),
		Applications:  handlers.NewApplicationHandler(svc.Applications, binder),
		Reviews:       handlers.NewReviewHandler(svc.Reviews, binder),
		Chat:          handlers.NewChatHandler(svc.Chat, binder),
		Notifications: handlers.NewNotificationHandler(svc.Notifications, binder),
		Bookmarks:     handlers.NewBookmarkHandler(svc.Bookmarks, binder),
		Analytics:     handlers.NewAnalyticsHandler(svc.Analytics, binder),
		Admin: handlers.NewAdminHandler(handlers.AdminServices{
			Analytics: svc.Analytics,
			Users:     svc.Users,
			Companies: svc.Companies,
			Offers:    svc.Offers,
			Reviews:   svc.Reviews,
			Reports:   svc.Reports,
		}, binder),
		Reports: handlers.NewReportHandler(svc.Reports, binder),
		Health:  handlers.NewHealthHandler(handlers.PingFunc(pool.Ping), store),
		SPA:     handlers.NewSPAHandler(cfg.App.SPAIndex),
	}

	return &Application{
		Config:      cfg,
		DBPool:      pool,
		RedisClient: rdb,
		Cache:       store,
		Files:       files,
		Tokens:      tokens,
		Services:    svc,
		Handlers:    h,
	}, nil
}
