package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds the composite indexes used by the cabinet and moderation
// listings. Single-column indexes come from struct tags.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		{"achievements", "idx_achievements_user_created", "user_id, created_at"},
		{"achievements", "idx_achievements_status_created", "status, created_at"},
	}

	migrator := db.Migrator()
	for _, idx := range indexes {
		if migrator.HasIndex(idx.table, idx.name) {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
