package repositories

import (
	"database/sql"
	"fmt"

	"autorevenda/internal/models"
)

type ActivityLogRepository interface {
	Create(entry *models.ActivityLog) (int64, error)
	ListByEntity(entityType string, entityID int, limit int) ([]*models.ActivityLog, error)
}

type activityLogRepository struct {
	db *sql.DB
}

func NewActivityLogRepository(db *sql.DB) ActivityLogRepository {
	return &activityLogRepository{db: db}
}

func (r *activityLogRepository) Create(entry *models.ActivityLog) (int64, error) {
	const q = `
                INSERT INTO activity_log (user_id, entity_type, entity_id, action, details, created_at)
                VALUES ($1, $2, $3, $4, $5, $6)
                RETURNING id
        `
	var id int64
	if err := r.db.QueryRow(q, entry.UserID, entry.EntityType, entry.EntityID,
		entry.Action, entry.Details, entry.CreatedAt).Scan(&id); err != nil {
		return 0, fmt.Errorf("create activity entry: %w", err)
	}
	return id, nil
}

func (r *activityLogRepository) ListByEntity(entityType string, entityID int, limit int) ([]*models.ActivityLog, error) {
	const q = `
                SELECT id, user_id, entity_type, entity_id, action, details, created_at
                FROM activity_log
                WHERE entity_type=$1 AND entity_id=$2
                ORDER BY created_at DESC
                LIMIT $3
        `
	rows, err := r.db.Query(q, entityType, entityID, limit)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer rows.Close()

	var out []*models.ActivityLog
	for rows.Next() {
		var e models.ActivityLog
		if err := rows.Scan(&e.ID, &e.UserID, &e.EntityType, &e.EntityID, &e.Action, &e.Details, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}
