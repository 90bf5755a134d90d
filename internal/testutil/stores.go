// Package testutil wires the global stores to in-memory backends for tests.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"gin-i18n/internal/config"
	"gin-i18n/internal/repository"
)

// OpenDB opens a private shared-cache sqlite database with the application schema.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := repository.Open(sqlite.Open(dsn), zap.NewNop(), zap.NewAtomicLevelAt(zap.ErrorLevel))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

// SetupStores points repository.DB and repository.RedisPool at sqlite and
// miniredis for the duration of the test.
func SetupStores(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)

	prevDB, prevPool := repository.DB, repository.RedisPool
	repository.DB = OpenDB(t)
	repository.RedisPool = repository.NewRedisPool(config.RedisConfig{Addr: mr.Addr(), MaxIdle: 2})
	t.Cleanup(func() {
		_ = repository.RedisPool.Close()
		repository.DB, repository.RedisPool = prevDB, prevPool
	})
	return mr
}
