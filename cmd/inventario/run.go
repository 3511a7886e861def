package main

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventario-unison/internal/application/auth"
	"github.com/jhoicas/inventario-unison/internal/application/usecase"
	"github.com/jhoicas/inventario-unison/internal/i18n"
	"github.com/jhoicas/inventario-unison/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-unison/internal/infrastructure/sqlite"
	"github.com/jhoicas/inventario-unison/internal/interfaces/console"
	"github.com/jhoicas/inventario-unison/pkg/config"
	"github.com/jhoicas/inventario-unison/pkg/logger"
	"github.com/jhoicas/inventario-unison/pkg/password"
)

func loadRuntime() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{
		Env:        cfg.App.Env,
		Level:      cfg.Log.Level,
		Output:     cfg.Log.Output,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	return cfg, log, nil
}

func openDB(ctx context.Context, cfg *config.Config) (*sqlite.DB, error) {
	db, err := sqlite.Open(ctx, sqlite.Options{Path: cfg.DB.Path, Timeout: cfg.DB.Timeout()})
	if err != nil {
		return nil, fmt.Errorf("abrir base %s: %w", cfg.DB.Path, err)
	}
	return db, nil
}

// runApp prepara el esquema y arranca la interfaz interactiva.
func runApp(ctx context.Context, in io.Reader, out io.Writer) error {
	cfg, log, err := loadRuntime()
	if err != nil {
		return err
	}
	defer log.Close()
	log.Info().Str("env", cfg.App.Env).Str("app", cfg.App.Name).Str("db", cfg.DB.Path).Msg("iniciando aplicación")

	db, err := openDB(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("conexión a SQLite")
		return err
	}
	defer db.Close()

	hasher := password.NewHasher(bcrypt.DefaultCost)
	report, err := sqlite.NewBootstrapper(db, hasher).Bootstrap(ctx)
	if err != nil {
		log.Error().Err(err).Msg("preparar esquema")
		return err
	}
	logBootstrap(log, report)

	msgs, err := i18n.New(cfg.App.Lang)
	if err != nil {
		return err
	}

	warehouseRepo := sqlite.NewWarehouseRepository(db)
	productRepo := sqlite.NewProductRepository(db)
	app := console.NewApp(console.Deps{
		Auth:       auth.NewAuthUseCase(sqlite.NewUserRepository(db), hasher),
		Products:   usecase.NewProductUseCase(productRepo, warehouseRepo),
		Warehouses: usecase.NewWarehouseUseCase(warehouseRepo),
		Reports:    pdf.NewReportGenerator(msgs.Tag()),
		Messages:   msgs,
		Log:        log,
		In:         in,
		Out:        out,
		ReportDir:  cfg.Report.Dir,
	})
	return app.Run(ctx)
}

// runSetup ejecuta solo el bootstrap e informa lo que cambió.
func runSetup(ctx context.Context, out io.Writer) error {
	cfg, log, err := loadRuntime()
	if err != nil {
		return err
	}
	defer log.Close()

	db, err := openDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	report, err := sqlite.NewBootstrapper(db, password.NewHasher(bcrypt.DefaultCost)).Bootstrap(ctx)
	if err != nil {
		return err
	}
	logBootstrap(log, report)

	fmt.Fprintf(out, "Base de datos lista: %s\n", cfg.DB.Path)
	for _, c := range report.AddedColumns {
		fmt.Fprintf(out, "  columna agregada: %s\n", c)
	}
	for _, u := range report.SeededAccounts {
		fmt.Fprintf(out, "  cuenta creada: %s\n", u)
	}
	return nil
}

func logBootstrap(log *logger.Logger, r *sqlite.BootstrapReport) {
	for _, c := range r.AddedColumns {
		log.Info().Str("column", c).Msg("columna agregada")
	}
	for _, u := range r.SeededAccounts {
		log.Info().Str("user", u).Msg("cuenta fija creada")
	}
}
