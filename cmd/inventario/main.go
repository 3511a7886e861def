package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// version se fija al compilar: -ldflags "-X main.version=1.2.0".
var version = "dev"

var (
	configPath string

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Muestra la versión de inventario",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "inventario version %s\n", version)
		},
	}

	setupCmd = &cobra.Command{
		Use:   "setup",
		Short: "Crea o actualiza el esquema y las cuentas fijas",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetup(cmd.Context(), cmd.OutOrStdout())
		},
	}

	rootCmd = &cobra.Command{
		Use:           "inventario",
		Short:         "Gestión de inventario de productos y almacenes",
		Long:          `Inventario abre la base SQLite local y presenta la interfaz interactiva de terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "conf", "c", "", "ruta a un archivo de configuración (.env, .yaml, .toml)")
	rootCmd.AddCommand(versionCmd, setupCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
