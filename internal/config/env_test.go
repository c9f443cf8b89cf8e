package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapEnv(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestEnvFrom_Defaults(t *testing.T) {
	env, err := envFrom(mapEnv(map[string]string{"JWT_SECRET": "k"}))
	require.NoError(t, err)

	assert.Equal(t, ":3000", env.AppAddr)
	assert.Equal(t, DriverSQLite, env.DBDriver)
	assert.Equal(t, "trips.db", env.DBDSN)
	assert.Equal(t, time.Hour, env.TokenTTL)
	assert.Equal(t, "admin", env.AdminUsername)
	assert.Empty(t, env.AdminPassword)
	assert.Equal(t, []string{"*"}, env.CORSAllowedOrigins)
	assert.Equal(t, time.Local, env.Location)
}

func TestEnvFrom_Overrides(t *testing.T) {
	env, err := envFrom(mapEnv(map[string]string{
		"JWT_SECRET":           "k",
		"APP_ADDR":             ":9090",
		"DB_DRIVER":            "MySQL",
		"DB_DSN":               "root@tcp(127.0.0.1:3306)/cars",
		"TOKEN_TTL":            "30m",
		"ADMIN_USERNAME":       "boss",
		"ADMIN_PASSWORD":       "pw",
		"CORS_ALLOWED_ORIGINS": "http://a.test, http://b.test,",
		"APP_TZ":               "Asia/Jakarta",
	}))
	require.NoError(t, err)

	assert.Equal(t, ":9090", env.AppAddr)
	assert.Equal(t, DriverMySQL, env.DBDriver)
	assert.Equal(t, 30*time.Minute, env.TokenTTL)
	assert.Equal(t, "boss", env.AdminUsername)
	assert.Equal(t, "pw", env.AdminPassword)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, env.CORSAllowedOrigins)
	assert.Equal(t, "Asia/Jakarta", env.Location.String())
}

func TestEnvFrom_Errors(t *testing.T) {
	cases := map[string]map[string]string{
		"missing secret": {},
		"bad driver":     {"JWT_SECRET": "k", "DB_DRIVER": "oracle"},
		"bad ttl":        {"JWT_SECRET": "k", "TOKEN_TTL": "soon"},
		"negative ttl":   {"JWT_SECRET": "k", "TOKEN_TTL": "-1h"},
		"bad tz":         {"JWT_SECRET": "k", "APP_TZ": "Mars/Base"},
	}
	for name, vars := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := envFrom(mapEnv(vars))
			assert.Error(t, err)
		})
	}
}

func TestMySQLDSN_SetsFoundRows(t *testing.T) {
	dsn, err := mysqlDSN("root:pw@tcp(127.0.0.1:3306)/cars")
	require.NoError(t, err)
	assert.Contains(t, dsn, "clientFoundRows=true")
	assert.Contains(t, dsn, "parseTime=true")

	_, err = mysqlDSN("::not a dsn")
	assert.Error(t, err)
}
