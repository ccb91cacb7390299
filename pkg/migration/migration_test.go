package migration_test

import (
	"testing"

	"github.com/singitronic/storefront/pkg/migration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type widget struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:64"`
}

type createWidgets struct{}

func (m *createWidgets) Up(db *gorm.DB) error   { return db.AutoMigrate(&widget{}) }
func (m *createWidgets) Down(db *gorm.DB) error { return db.Migrator().DropTable("widgets") }

func init() {
	migration.Register("20260101000000_create_widgets_table", &createWidgets{})
}

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:migration_test?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() }) //nolint:errcheck
	return db
}

func TestRunAndRollback(t *testing.T) {
	db := openDB(t)
	runner := migration.New(db)

	require.NoError(t, runner.Run())
	assert.True(t, db.Migrator().HasTable("widgets"), "migration applied")

	pending, err := runner.Pending()
	require.NoError(t, err)
	assert.Empty(t, pending, "nothing left to run")

	require.NoError(t, runner.Rollback())
	assert.False(t, db.Migrator().HasTable("widgets"), "migration reversed")

	pending, err = runner.Pending()
	require.NoError(t, err)
	assert.Len(t, pending, 1, "rolled-back migration is pending again")
}

func TestRunIsIdempotent(t *testing.T) {
	db := openDB(t)
	runner := migration.New(db)

	require.NoError(t, runner.Run())
	require.NoError(t, runner.Run(), "second run is a no-op")
}
