// seed prepara una base PostgreSQL: aplica el esquema, crea el administrador inicial
// y, con SEED_DEMO_DATA=true, carga compras y cierres de ejemplo relativos a hoy.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"time"

	"github.com/jhoicas/fishstock-api/internal/application/auth"
	"github.com/jhoicas/fishstock-api/internal/application/ports"
	"github.com/jhoicas/fishstock-api/internal/domain/stock"
	"github.com/jhoicas/fishstock-api/internal/infrastructure/postgres"
	"github.com/jhoicas/fishstock-api/internal/seed"
	"github.com/jhoicas/fishstock-api/pkg/config"
	"github.com/jhoicas/fishstock-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar esquema")
	}

	clock := ports.ZonedClock{Location: cfg.App.Location()}
	authUC := auth.NewAuthUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	seeder := seed.New(authUC, postgres.NewTxRunner(pool), stock.NewBatchNumberGenerator(clock.Now, nil), log)

	if _, err := seeder.EnsureAdmin(ctx, seed.Admin{
		Email:    cfg.Seed.AdminEmail,
		Password: cfg.Seed.AdminPassword,
		Name:     cfg.Seed.AdminName,
	}); err != nil {
		log.Fatal().Err(err).Msg("crear administrador")
	}

	if cfg.Seed.DemoData {
		if _, err := seeder.Demo(ctx, clock.Now()); err != nil {
			log.Fatal().Err(err).Msg("datos de demostración")
		}
	}
	log.Info().Msg("seed completado")
}
