package postgres

import (
	"context"

	domainerrors "estate/internal/domain/errors"
	"estate/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// findByID fetches a single row of model M by primary key, mapping
// gorm.ErrRecordNotFound onto the supplied domain sentinel.
func findByID[M any](ctx context.Context, db *gorm.DB, id uuid.UUID, notFound error) (*M, error) {
	var m M
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}

		return nil, errors.Wrap(err, "failed to find record by id")
	}

	return &m, nil
}

// deleteByID removes a row permanently. Deletion is terminal: there is no
// soft-delete, and deleting an unknown id surfaces the sentinel instead of
// silently succeeding.
func deleteByID[M any](ctx context.Context, db *gorm.DB, id uuid.UUID, notFound error) error {
	var m M
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&m)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete record")
	}
	if result.RowsAffected == 0 {
		return notFound
	}

	return nil
}

// likePattern builds a case-insensitive contains pattern for ILIKE queries.
func likePattern(s string) string {
	return "%" + s + "%"
}
