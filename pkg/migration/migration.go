// Package migration provides the database migration runner.
//
// Usage (in database/migrations):
//
//	func init() {
//	    migration.Register("20250101000000_create_category_table", &CreateCategoryTable{})
//	}
//
//	type CreateCategoryTable struct{}
//	func (m *CreateCategoryTable) Up(db *gorm.DB) error   { return db.AutoMigrate(&models.Category{}) }
//	func (m *CreateCategoryTable) Down(db *gorm.DB) error { return db.Migrator().DropTable("category") }
//
// Run from the CLI:
//
//	storefront migrate             // run all pending
//	storefront migrate:rollback    // rollback last batch
//	storefront migrate:status      // show what ran
package migration

import (
	"fmt"
	"sort"
	"time"

	"github.com/singitronic/storefront/pkg/logger"
	"gorm.io/gorm"
)

// Migration is the interface every migration must implement.
type Migration interface {
	// Up applies the migration.
	Up(db *gorm.DB) error
	// Down reverses the migration.
	Down(db *gorm.DB) error
}

// migrationRecord is the GORM model stored in the tracking table.
type migrationRecord struct {
	ID    uint      `gorm:"primaryKey;autoIncrement"`
	Name  string    `gorm:"uniqueIndex;size:255;not null"`
	Batch int       `gorm:"not null"`
	RunAt time.Time `gorm:"autoCreateTime"`
}

func (migrationRecord) TableName() string { return "schema_migrations" }

type registeredMigration struct {
	name string
	m    Migration
}

var registry []registeredMigration

// Register adds a migration to the global registry.
// name should be a timestamp-prefixed string so names sort chronologically.
func Register(name string, m Migration) {
	registry = append(registry, registeredMigration{name: name, m: m})
}

// Runner executes and tracks migrations.
type Runner struct {
	db *gorm.DB
}

// New creates a Runner backed by the provided gorm.DB.
func New(db *gorm.DB) *Runner {
	return &Runner{db: db}
}

// EnsureTable creates the tracking table if it does not exist.
func (r *Runner) EnsureTable() error {
	return r.db.AutoMigrate(&migrationRecord{})
}

// Pending returns the migrations that have not yet been run, in name order.
func (r *Runner) Pending() ([]registeredMigration, error) {
	var ran []migrationRecord
	if err := r.db.Find(&ran).Error; err != nil {
		return nil, err
	}

	ranSet := make(map[string]bool, len(ran))
	for _, rec := range ran {
		ranSet[rec.Name] = true
	}

	var pending []registeredMigration
	for _, reg := range registry {
		if !ranSet[reg.name] {
			pending = append(pending, reg)
		}
	}

	sort.Slice(pending, func(i, j int) bool {
		return pending[i].name < pending[j].name
	})

	return pending, nil
}

// Run executes all pending migrations in a single batch.
func (r *Runner) Run() error {
	if err := r.EnsureTable(); err != nil {
		return fmt.Errorf("migration: ensure table: %w", err)
	}

	pending, err := r.Pending()
	if err != nil {
		return fmt.Errorf("migration: pending: %w", err)
	}
	if len(pending) == 0 {
		fmt.Println("Nothing to migrate.")
		return nil
	}

	batch, err := r.lastBatch()
	if err != nil {
		return err
	}
	batch++

	for _, reg := range pending {
		logger.Info("migrating", "name", reg.name)
		if err := reg.m.Up(r.db); err != nil {
			return fmt.Errorf("migration %q: %w", reg.name, err)
		}
		rec := migrationRecord{Name: reg.name, Batch: batch}
		if err := r.db.Create(&rec).Error; err != nil {
			return fmt.Errorf("migration: record %q: %w", reg.name, err)
		}
		fmt.Printf("  migrated: %s\n", reg.name)
	}

	return nil
}

// Rollback reverses every migration of the most recent batch.
func (r *Runner) Rollback() error {
	if err := r.EnsureTable(); err != nil {
		return fmt.Errorf("migration: ensure table: %w", err)
	}

	batch, err := r.lastBatch()
	if err != nil {
		return err
	}
	if batch == 0 {
		fmt.Println("Nothing to roll back.")
		return nil
	}

	var records []migrationRecord
	if err := r.db.Where("batch = ?", batch).Order("id desc").Find(&records).Error; err != nil {
		return fmt.Errorf("migration: load batch %d: %w", batch, err)
	}

	byName := make(map[string]Migration, len(registry))
	for _, reg := range registry {
		byName[reg.name] = reg.m
	}

	for _, rec := range records {
		m, ok := byName[rec.Name]
		if !ok {
			return fmt.Errorf("migration %q is recorded but not registered", rec.Name)
		}
		logger.Info("rolling back", "name", rec.Name)
		if err := m.Down(r.db); err != nil {
			return fmt.Errorf("rollback %q: %w", rec.Name, err)
		}
		if err := r.db.Delete(&migrationRecord{}, rec.ID).Error; err != nil {
			return fmt.Errorf("migration: unrecord %q: %w", rec.Name, err)
		}
		fmt.Printf("  rolled back: %s\n", rec.Name)
	}

	return nil
}

// Status prints every registered migration with its run state.
func (r *Runner) Status() error {
	if err := r.EnsureTable(); err != nil {
		return fmt.Errorf("migration: ensure table: %w", err)
	}

	var ran []migrationRecord
	if err := r.db.Find(&ran).Error; err != nil {
		return err
	}

	ranBatch := make(map[string]int, len(ran))
	for _, rec := range ran {
		ranBatch[rec.Name] = rec.Batch
	}

	fmt.Printf("%-52s  %s\n", "MIGRATION", "STATUS")
	for _, reg := range registry {
		if batch, ok := ranBatch[reg.name]; ok {
			fmt.Printf("%-52s  ran (batch %d)\n", reg.name, batch)
		} else {
			fmt.Printf("%-52s  pending\n", reg.name)
		}
	}
	return nil
}

func (r *Runner) lastBatch() (int, error) {
	var batch int
	err := r.db.Model(&migrationRecord{}).
		Select("COALESCE(MAX(batch), 0)").
		Scan(&batch).Error
	if err != nil {
		return 0, fmt.Errorf("migration: last batch: %w", err)
	}
	return batch, nil
}
