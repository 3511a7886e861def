// Comando setup_db: crea o actualiza la base de datos del inventario sin abrir la interfaz.
//
//	setup_db --db ./InventarioBD_2.db
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventario-unison/internal/infrastructure/sqlite"
	"github.com/jhoicas/inventario-unison/pkg/config"
	"github.com/jhoicas/inventario-unison/pkg/logger"
	"github.com/jhoicas/inventario-unison/pkg/password"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:          "setup_db",
	Short:        "Crea las tablas, agrega columnas faltantes y siembra las cuentas fijas",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load("")
		if err != nil {
			return err
		}
		if dbPath != "" {
			cfg.DB.Path = dbPath
		}
		log := logger.New(logger.Config{Env: "development", Level: cfg.Log.Level, Output: "stderr"})

		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()

		db, err := sqlite.Open(ctx, sqlite.Options{Path: cfg.DB.Path, Timeout: cfg.DB.Timeout()})
		if err != nil {
			return fmt.Errorf("abrir base %s: %w", cfg.DB.Path, err)
		}
		defer db.Close()

		report, err := sqlite.NewBootstrapper(db, password.NewHasher(bcrypt.DefaultCost)).Bootstrap(ctx)
		if err != nil {
			return err
		}
		for _, c := range report.AddedColumns {
			log.Info().Str("column", c).Msg("columna agregada")
		}
		for _, u := range report.SeededAccounts {
			log.Info().Str("user", u).Msg("cuenta fija creada")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Configuración de la base de datos completada: %s\n", cfg.DB.Path)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&dbPath, "db", "", "ruta del archivo SQLite (por defecto DB_PATH o InventarioBD_2.db)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
