package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"studio-admin/internal/common/api"
	"studio-admin/internal/common/apperr"
	"studio-admin/internal/config"
	"studio-admin/internal/database"
	"studio-admin/internal/features/audit"
	"studio-admin/internal/features/bugreport"
	cron_feature "studio-admin/internal/features/cron"
	"studio-admin/internal/features/dashboard"
	"studio-admin/internal/features/member"
	"studio-admin/internal/features/storagestats"
	"studio-admin/internal/features/system"
	"studio-admin/internal/features/usage"
	"studio-admin/internal/logger"
	"studio-admin/internal/metrics"
	"studio-admin/internal/middleware"
	"studio-admin/pkg/utils"

	_ "studio-admin/docs" // Import swagger docs

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates a new Fiber app instance
func NewFiberServer(cfg *config.Config, logger *zap.Logger, m *metrics.Metrics) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(apperr.HTTPStatus(err)).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(recover.New())
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.RequestLogger(logger))
	app.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	app.Use(m.Middleware())

	return app
}

// AsRoute is a helper function to reduce boilerplate.
// It tags the constructor so Fx knows to add it to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(api.Route)),           // Cast to Interface
		fx.ResultTags(`group:"routes"`), // Add to Group
	)
}

// RegisterAllRoutes takes the group "routes" (slice of interfaces)
// and calls Setup() on each one.
func RegisterAllRoutes(app *fiber.App, routes []api.Route, logger *zap.Logger) {
	logger.Info("Registering routes", zap.Int("count", len(routes)))
	for _, route := range routes {
		logger.Debug("Setting up route", zap.String("route", fmt.Sprintf("%T", route)))
		route.Setup(app)
	}
}

// RegisterAllRoutesWithAnnotation wraps RegisterAllRoutes with fx annotations
var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`, ``),
)

// StartServer creates a lifecycle hook to start Fiber in a goroutine
// and shut it down when the app exits.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				logger.Info("Server listening", zap.String("addr", port))
				if err := app.Listen(port); err != nil {
					logger.Fatal("Server failed to start", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}

// InitializeIndexes ensures that necessary database indexes are created
func InitializeIndexes(
	lc fx.Lifecycle,
	members member.MemberRepository,
	reports bugreport.BugReportRepository,
	snapshots dashboard.SnapshotRepository,
	logger *zap.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				// Use a background context with timeout for index creation
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := members.EnsureIndexes(ctx); err != nil {
					logger.Error("Failed to ensure member indexes", zap.Error(err))
				}
				if err := reports.EnsureIndexes(ctx); err != nil {
					logger.Error("Failed to ensure bug report indexes", zap.Error(err))
				}
				if err := snapshots.EnsureIndexes(ctx); err != nil {
					logger.Error("Failed to ensure snapshot indexes", zap.Error(err))
				}
			}()
			return nil
		},
	})
}

// StartScheduler registers the periodic jobs and runs the scheduler for the
// lifetime of the app. An empty schedule leaves the snapshot job out.
func StartScheduler(
	lc fx.Lifecycle,
	cfg *config.Config,
	cronService cron_feature.CronService,
	dashboardService dashboard.DashboardService,
	logger *zap.Logger,
) error {
	if cfg.SnapshotSchedule != "" {
		err := cronService.RegisterJob(
			dashboard.SnapshotJobName,
			"Persist the dashboard statistics",
			cfg.SnapshotSchedule,
			cfg.RequestTimeout,
			dashboard.SnapshotJob(dashboardService, logger),
		)
		if err != nil {
			return err
		}
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return cronService.InitializeScheduler(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return cronService.StopScheduler()
		},
	})
	return nil
}

// @title           Studio Admin API
// @version         1.0
// @description     Members, access flags, bug reports and dashboard statistics for the studio admin dashboard.

// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app := fx.New(
		fx.Provide(
			// Load Config
			config.LoadConfig,

			// Initialize Logger
			logger.NewLogger,
			metrics.NewMetrics,

			// Initialize Fiber Server
			NewFiberServer,

			// Initialize Database
			database.NewDatabase,

			// Initialize Repository
			member.NewMemberRepository,
			bugreport.NewBugReportRepository,
			audit.NewAuditRepository,
			dashboard.NewSnapshotRepository,

			// Collaborators
			usage.NewProvider,
			storagestats.NewProvider,

			// Change notifications
			system.NewHub,
			system.AsNotifier,

			// Initialize Service
			audit.NewAuditService,
			member.NewMemberService,
			bugreport.NewBugReportService,
			dashboard.NewDashboardService,
			cron_feature.NewCronService,

			// Initialize Controller
			member.NewMemberController,
			bugreport.NewBugReportController,
			audit.NewAuditController,
			storagestats.NewStorageController,
			dashboard.NewDashboardController,
			cron_feature.NewCronController,
			system.NewWebSocketController,
			func(db *database.MongodbDB) system.Pinger { return db },
			system.NewHealthController,

			// Initialize API Routes
			AsRoute(member.NewMemberApi),
			AsRoute(bugreport.NewBugReportApi),
			AsRoute(audit.NewAuditApi),
			AsRoute(storagestats.NewStorageApi),
			AsRoute(dashboard.NewDashboardApi),
			AsRoute(cron_feature.NewCronApi),
			AsRoute(system.NewHealthApi),
			AsRoute(system.NewSessionApi),
			AsRoute(system.NewWebSocketApi),
			AsRoute(system.NewSwaggerApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			func(cfg *config.Config) { utils.SetSecret(cfg.JWTSecret) },
			// Register Routes & Start
			RegisterAllRoutesWithAnnotation,
			StartServer,
			StartScheduler,
			InitializeIndexes,
		),
	)

	if err := app.Err(); err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}
	app.Run()
}
