package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	appanalytics "github.com/jhoicas/fishstock-api/internal/application/analytics"
	"github.com/jhoicas/fishstock-api/internal/application/auth"
	"github.com/jhoicas/fishstock-api/internal/application/ports"
	"github.com/jhoicas/fishstock-api/internal/application/usecase"
	"github.com/jhoicas/fishstock-api/internal/domain/repository"
	"github.com/jhoicas/fishstock-api/internal/domain/stock"
	infraexcel "github.com/jhoicas/fishstock-api/internal/infrastructure/excel"
	"github.com/jhoicas/fishstock-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/fishstock-api/internal/infrastructure/pdf"
	"github.com/jhoicas/fishstock-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/fishstock-api/internal/interfaces/http"
	"github.com/jhoicas/fishstock-api/internal/seed"
	"github.com/jhoicas/fishstock-api/pkg/config"
	"github.com/jhoicas/fishstock-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

// storage puertos de persistencia resueltos según STORAGE.
type storage struct {
	purchases repository.StockPurchaseRepository
	stockLeft repository.StockLeftRepository
	users     repository.UserRepository
	tx        usecase.TxRunner
	health    httpRouter.HealthChecker
	close     func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("timezone", cfg.App.Timezone).
		Str("storage", cfg.App.Storage).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}

	ctx := context.Background()
	store, err := openStorage(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer store.close()

	clock := ports.ZonedClock{Location: cfg.App.Location()}
	batches := stock.NewBatchNumberGenerator(clock.Now, nil)

	authUC := auth.NewAuthUseCase(store.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// En memoria no hay datos previos: sin administrador no se puede iniciar sesión.
	if cfg.App.InMemory() {
		seeder := seed.New(authUC, store.tx, batches, log)
		if _, err := seeder.EnsureAdmin(ctx, seed.Admin{
			Email:    cfg.Seed.AdminEmail,
			Password: cfg.Seed.AdminPassword,
			Name:     cfg.Seed.AdminName,
		}); err != nil {
			log.Fatal().Err(err).Msg("crear administrador en memoria")
		}
		if cfg.Seed.DemoData {
			if _, err := seeder.Demo(ctx, clock.Now()); err != nil {
				log.Fatal().Err(err).Msg("datos de demostración")
			}
		}
	}

	reportUC := appanalytics.NewReportUseCase(
		store.purchases, store.stockLeft, clock,
		infraexcel.NewReportExporter(),
		infrapdf.NewReportExporter(cfg.App.Name),
	)

	app := httpRouter.NewApp(cfg.App.Name, log)

	// Swagger UI en local: http://localhost:<port>/docs (solo si se generó docs/swagger.json)
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Fish Stock API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		ServiceName: cfg.App.Name,
		Health:      store.health,
		AuthUC:      authUC,
		UserUC:      usecase.NewUserUseCase(store.users),
		PurchaseUC:  usecase.NewPurchaseUseCase(store.purchases, store.stockLeft, batches, clock, log),
		StockLeftUC: usecase.NewStockLeftUseCase(store.purchases, store.stockLeft, store.tx, clock, log),
		AdminUC:     usecase.NewAdminUseCase(store.tx, log),
		DashboardUC: appanalytics.NewDashboardUseCase(store.purchases, store.stockLeft, clock),
		ReportUC:    reportUC,
		JWTSecret:   cfg.JWT.Secret,
		Log:         log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

func openStorage(ctx context.Context, cfg *config.Config) (*storage, error) {
	if cfg.App.InMemory() {
		mem := memory.NewStore()
		return &storage{
			purchases: mem.Purchases(),
			stockLeft: mem.StockLeft(),
			users:     mem.Users(),
			tx:        mem,
			close:     func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	if err := postgres.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return &storage{
		purchases: postgres.NewStockPurchaseRepository(pool),
		stockLeft: postgres.NewStockLeftRepository(pool),
		users:     postgres.NewUserRepository(pool),
		tx:        postgres.NewTxRunner(pool),
		health:    postgres.NewHealthChecker(pool),
		close:     pool.Close,
	}, nil
}
