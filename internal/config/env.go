package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

type Env struct {
	AppAddr string
	GinMode string

	DBDriver string
	DBDSN    string

	JWTSecret string
	TokenTTL  time.Duration

	AdminUsername string
	AdminPassword string

	CORSAllowedOrigins []string
	LogLevel           string
	Location           *time.Location
}

// LoadEnv reads the process environment, after merging an optional .env
// file from the working directory. Variables already set win over the file.
func LoadEnv() (Env, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Env{}, fmt.Errorf("load .env: %w", err)
	}
	return envFrom(os.Getenv)
}

func envFrom(getenv func(string) string) (Env, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	env := Env{
		AppAddr:       get("APP_ADDR", ":3000"),
		GinMode:       get("GIN_MODE", ""),
		DBDriver:      strings.ToLower(get("DB_DRIVER", DriverSQLite)),
		DBDSN:         get("DB_DSN", "trips.db"),
		JWTSecret:     get("JWT_SECRET", ""),
		AdminUsername: get("ADMIN_USERNAME", "admin"),
		AdminPassword: getenv("ADMIN_PASSWORD"),
		LogLevel:      get("LOG_LEVEL", "info"),
		Location:      time.Local,
	}

	if env.DBDriver != DriverSQLite && env.DBDriver != DriverMySQL {
		return Env{}, fmt.Errorf("DB_DRIVER %q tidak didukung", env.DBDriver)
	}
	if env.JWTSecret == "" {
		return Env{}, errors.New("JWT_SECRET wajib diisi")
	}

	ttl, err := time.ParseDuration(get("TOKEN_TTL", "1h"))
	if err != nil || ttl <= 0 {
		return Env{}, fmt.Errorf("TOKEN_TTL tidak valid: %q", getenv("TOKEN_TTL"))
	}
	env.TokenTTL = ttl

	for _, o := range strings.Split(get("CORS_ALLOWED_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			env.CORSAllowedOrigins = append(env.CORSAllowedOrigins, o)
		}
	}

	if tz := get("APP_TZ", ""); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return Env{}, fmt.Errorf("APP_TZ: %w", err)
		}
		env.Location = loc
	}

	return env, nil
}
