package app

import (
	"database/sql"

	"doctrack/internal/branding"
	"doctrack/internal/document"
	"doctrack/internal/identity"
	"doctrack/internal/invite"
	"doctrack/internal/messaging/kafka"
	"doctrack/internal/middleware"
	"doctrack/internal/office"
	"doctrack/internal/position"
	"doctrack/internal/profile"
	"doctrack/internal/provisioning"
	"doctrack/internal/rbac"
	"doctrack/internal/shared/counter"
	"doctrack/internal/staff"
	"doctrack/internal/verification"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	ids identity.Store,
	mail invite.Sender,
) error {
	// --- Repositories ---
	brandingRepo := branding.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	documentRepo := document.NewRepository(gormDB)
	officeRepo := office.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	positionRepo := position.NewRepository(gormDB)
	profileRepo := profile.NewRepository(gormDB)
	staffRepo := staff.NewRepository(gormDB)
	verificationRepo := verification.NewRepository(gormDB)

	// --- RBAC Core ---
	authz, err := rbac.NewAuthorizer()
	if err != nil {
		return err
	}

	// --- Services ---
	guard := provisioning.NewGuard(ids, profileRepo)
	codes := verification.NewIssuer(verificationRepo)

	brandingService := branding.NewService(brandingRepo)
	documentService := document.NewService(db, documentRepo, counterRepo, profileRepo, outboxRepo)
	officeService := office.NewService(officeRepo, rdb)
	positionService := position.NewService(positionRepo, rdb)
	profileService := profile.NewService(profileRepo)
	provisioningService := provisioning.NewService(guard, ids, profileRepo, staffRepo, codes, mail, outboxRepo)
	staffService := staff.NewService(staffRepo)

	// --- Handlers ---
	brandingHandler := branding.NewHandler(brandingService)
	documentHandler := document.NewHandler(documentService, rdb)
	officeHandler := office.NewHandler(officeService)
	positionHandler := position.NewHandler(positionService)
	profileHandler := profile.NewHandler(profileService)
	provisioningHandler := provisioning.NewHandler(provisioningService)
	rbacHandler := rbac.NewHandler(authz)
	staffHandler := staff.NewHandler(staffService)

	authn := middleware.AuthMiddleware(ids, profileRepo)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		branding.RegisterRoutes(api, brandingHandler, authn, authz)
		document.RegisterRoutes(api, documentHandler, rdb, authn, authz)
		office.RegisterRoutes(api, officeHandler, authn, authz)
		position.RegisterRoutes(api, positionHandler, authn, authz)
		profile.RegisterRoutes(api, profileHandler, authn, authz)
		provisioning.RegisterRoutes(api, provisioningHandler)
		rbac.RegisterRoutes(api, rbacHandler, authn)
		staff.RegisterRoutes(api, staffHandler, authn, authz)
	}

	return nil
}
