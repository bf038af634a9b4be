// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/config"
	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/auth"
	"github.com/expense-tracker/backend/internal/application/usecase/budget"
	"github.com/expense-tracker/backend/internal/application/usecase/category"
	"github.com/expense-tracker/backend/internal/application/usecase/notification"
	"github.com/expense-tracker/backend/internal/application/usecase/recurring"
	"github.com/expense-tracker/backend/internal/application/usecase/report"
	"github.com/expense-tracker/backend/internal/application/usecase/transaction"
	"github.com/expense-tracker/backend/internal/infra/server/router"
	"github.com/expense-tracker/backend/internal/integration/adapters"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/expense-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// Options carries optional external dependencies. Nil fields disable the
// corresponding integration.
type Options struct {
	// RedisClient backs the dashboard summary cache. Nil disables caching.
	RedisClient *redis.Client

	// AlertSender overrides the Resend-backed sender, used by tests.
	AlertSender adapter.AlertSender

	// Clock overrides the system clock, used by tests.
	Clock adapter.Clock
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, opts Options) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	notificationRepo := persistence.NewNotificationRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)

	clock := opts.Clock
	if clock == nil {
		clock = adapters.NewSystemClock()
	}

	var summaryCache adapter.SummaryCache
	if opts.RedisClient != nil {
		summaryCache = adapters.NewRedisSummaryCache(opts.RedisClient)
	}

	alertSender := opts.AlertSender
	if alertSender == nil {
		alertSender = adapters.NewResendAlertSender(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	}

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, categoryRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	logoutAllUseCase := auth.NewLogoutAllDevicesUseCase(tokenService)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	// Create recurring materialization use cases
	materializeUseCase := recurring.NewMaterializeUseCase(transactionRepo, categoryRepo)
	retractUseCase := recurring.NewRetractUseCase(transactionRepo)
	regenerateUseCase := recurring.NewRegenerateUseCase(retractUseCase, materializeUseCase)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, materializeUseCase, summaryCache)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, regenerateUseCase, retractUseCase, summaryCache)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, retractUseCase, summaryCache)

	// Create budget use cases
	setBudgetUseCase := budget.NewSetBudgetUseCase(budgetRepo, summaryCache)
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo, summaryCache)

	// Create report use cases
	snapshotLoader := report.NewSnapshotLoader(transactionRepo, budgetRepo, categoryRepo)
	dashboardUseCase := report.NewGetDashboardSummaryUseCase(snapshotLoader, clock, summaryCache)
	overviewUseCase := report.NewGetBudgetOverviewUseCase(snapshotLoader)
	spendingUseCase := report.NewGetSpendingReportUseCase(snapshotLoader)

	// Create notification use cases
	listNotificationsUseCase := notification.NewListNotificationsUseCase(notificationRepo)
	markReadUseCase := notification.NewMarkNotificationReadUseCase(notificationRepo)
	checkAlertsUseCase := notification.NewCheckBudgetAlertsUseCase(
		snapshotLoader, clock, userRepo, notificationRepo, alertSender,
	)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		logoutAllUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		listTransactionsUseCase,
	)

	budgetController := controller.NewBudgetController(
		setBudgetUseCase,
		listBudgetsUseCase,
		deleteBudgetUseCase,
	)

	reportController := controller.NewReportController(
		dashboardUseCase,
		overviewUseCase,
		spendingUseCase,
	)

	notificationController := controller.NewNotificationController(
		listNotificationsUseCase,
		markReadUseCase,
		checkAlertsUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		categoryController,
		transactionController,
		budgetController,
		reportController,
		notificationController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
