package repository

import (
	"context"

	"github.com/Astemirdum/tracklab-service/tracklab/internal/model"
)

func (r *repository) CreateActivity(ctx context.Context, a model.ActivityLog) (int64, error) {
	return r.insert(ctx, "CreateActivity", r.qb.Insert(activityTableName).
		Columns("user_id", "action", `"timestamp"`).
		Values(a.UserID, a.Action, utc(a.Timestamp)),
		"log_id")
}

func (r *repository) ListActivity(ctx context.Context, limit int) ([]model.ActivityLog, error) {
	if limit <= 0 {
		limit = 100
	}
	items := make([]model.ActivityLog, 0)
	err := r.selectAll(ctx, "ListActivity", &items, r.qb.Select("log_id", "user_id", "action", `"timestamp"`).
		From(activityTableName).
		OrderBy(`"timestamp" DESC`, "log_id DESC").
		Limit(uint64(limit)))
	return items, err
}
