package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultDBFile nombre del archivo de base de datos junto al ejecutable.
const DefaultDBFile = "InventarioBD_2.db"

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	DB     DBConfig
	Log    LogConfig
	Report ReportConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, production
	Name string
	Lang string // es, en
}

// DBConfig configuración de SQLite.
type DBConfig struct {
	Path           string
	TimeoutSeconds int
}

// Timeout devuelve el límite por operación de base de datos.
func (c DBConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// LogConfig configuración del log. Output "file" rota con lumberjack; "stderr" escribe en consola.
type LogConfig struct {
	Level      string
	Output     string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// ReportConfig carpeta de salida de los reportes PDF.
type ReportConfig struct {
	Dir string
}

// Load lee la configuración desde variables de entorno y, si existe, desde un archivo.
// path vacío busca .env y config.env en el directorio actual. Las env vars tienen prioridad.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		v.SetConfigName(".env")
		v.SetConfigType("env")
		v.AddConfigPath(".")
		_ = v.ReadInConfig() // ignoramos error si no existe

		v.SetConfigName("config")
		v.AddConfigPath("./config")
		_ = v.MergeInConfig()
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "production"),
			Name: getString(v, "APP_NAME", "inventario-unison"),
			Lang: getString(v, "APP_LANG", "es"),
		},
		DB: DBConfig{
			Path:           resolvePath(getString(v, "DB_PATH", DefaultDBFile)),
			TimeoutSeconds: getInt(v, "DB_TIMEOUT_SECONDS", 5),
		},
		Log: LogConfig{
			Level:      getString(v, "LOG_LEVEL", "info"),
			Output:     getString(v, "LOG_OUTPUT", "file"),
			File:       resolvePath(getString(v, "LOG_FILE", "inventario.log")),
			MaxSizeMB:  getInt(v, "LOG_MAX_SIZE_MB", 10),
			MaxBackups: getInt(v, "LOG_MAX_BACKUPS", 3),
			MaxAgeDays: getInt(v, "LOG_MAX_AGE_DAYS", 28),
		},
		Report: ReportConfig{
			Dir: getString(v, "REPORT_DIR", "."),
		},
	}
	if cfg.DB.TimeoutSeconds <= 0 {
		cfg.DB.TimeoutSeconds = 5
	}
	return cfg, nil
}

// resolvePath ancla rutas relativas a la carpeta del ejecutable.
func resolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	exe, err := os.Executable()
	if err != nil {
		return p
	}
	return filepath.Join(filepath.Dir(exe), p)
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		if s := strings.TrimSpace(v.GetString(key)); s != "" {
			return s
		}
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
