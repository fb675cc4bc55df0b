/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteConfig(dbName string) *ConnectionConfig {
	cfg := DefaultConnectionConfig()
	cfg.Type = "sqlite"
	cfg.DBName = dbName
	cfg.HealthCheckInterval = 0
	cfg.SlowQueryTime = 0
	return cfg
}

func TestValidateConfig(t *testing.T) {
	f := NewDatabaseFactory()

	tests := []struct {
		name    string
		mutate  func(c *ConnectionConfig)
		wantErr string
	}{
		{"sqlite without host", func(c *ConnectionConfig) {}, ""},
		{"mysql requires host", func(c *ConnectionConfig) { c.Type = "mysql" }, "host is required for mysql"},
		{"postgres with host", func(c *ConnectionConfig) { c.Type = "postgres"; c.Host = "db"; c.Port = 5432 }, ""},
		{"unknown type", func(c *ConnectionConfig) { c.Type = "oracle" }, "field 'Type' failed on 'oneof'"},
		{"missing dbname", func(c *ConnectionConfig) { c.DBName = "" }, "field 'DBName' failed on 'required'"},
		{"bad port", func(c *ConnectionConfig) { c.Port = 70000 }, "field 'Port' failed on 'max'"},
		{"bad sslmode", func(c *ConnectionConfig) { c.SSLMode = "always" }, "field 'SSLMode' failed on 'oneof'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := sqliteConfig("app")
			tt.mutate(cfg)
			err := f.ValidateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCreateFromConfigEnvOverride(t *testing.T) {
	t.Setenv("DB_TYPE", "postgres")
	t.Setenv("DB_HOST", "pg.internal")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_ENABLE_QUERY_LOG", "true")

	cfg := sqliteConfig("app")
	_, err := NewDatabaseFactory().CreateFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Type)
	assert.Equal(t, "pg.internal", cfg.Host)
	assert.Equal(t, 6543, cfg.Port)
	assert.True(t, cfg.EnableQueryLog)
}

func TestCreateFromConfigNil(t *testing.T) {
	_, err := NewDatabaseFactory().CreateFromConfig(nil)
	assert.Error(t, err)
}

func TestManagerSQLiteMemory(t *testing.T) {
	ctx := context.Background()
	m := NewDatabaseManager(sqliteConfig(MemoryDBName))

	require.NoError(t, m.Connect(ctx))
	require.NotNil(t, m.GetDB())
	assert.NoError(t, m.Ping(ctx))

	status := m.HealthCheck(ctx)
	assert.True(t, status.Healthy)
	assert.Equal(t, 1, m.GetStats().MaxOpenConns)

	require.NoError(t, m.RunMigrations(ctx))
	require.NoError(t, m.Disconnect())
	assert.Nil(t, m.GetDB())
	assert.Error(t, m.Ping(ctx))

	status = m.HealthCheck(ctx)
	assert.False(t, status.Healthy)
	assert.Equal(t, "Database not initialized", status.LastError)
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, ":memory:", SQLiteDSN(MemoryDBName))
	assert.Equal(t, "data/app.db", SQLiteDSN("data/app"))
}

func TestInitDBGlobals(t *testing.T) {
	ctx := context.Background()
	t.Cleanup(func() { _ = CloseDB() })

	cfg := &Config{
		ConnectionConfig:  *sqliteConfig(MemoryDBName),
		DataMigrateConfig: DataMigrateConfig{EnableMigrateOnStartup: true},
	}
	db, err := InitDB(ctx, cfg)
	require.NoError(t, err)
	assert.Same(t, db, GetDB())
	assert.Same(t, cfg, GetConfig())
	assert.True(t, GetHealthStatus(ctx).Healthy)
	assert.NoError(t, RunMigrations(ctx))

	require.NoError(t, CloseDB())
	assert.Nil(t, GetDB())
	assert.Nil(t, GetConfig())
	assert.Error(t, RunMigrations(ctx))
	assert.Equal(t, "Database not initialized", GetHealthStatus(ctx).LastError)
}
