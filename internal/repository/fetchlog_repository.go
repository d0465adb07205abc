package repository

import (
	"context"
	"errors"
	"time"

	"moviegrid/internal/database"
	"moviegrid/internal/models"

	"gorm.io/gorm"
)

type FetchLogRepository interface {
	Create(ctx context.Context, log *models.FetchLog) error
	GetLast(ctx context.Context) (*models.FetchLog, error)
	FindRecent(ctx context.Context, limit int) ([]models.FetchLog, error)
}

type fetchLogRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewFetchLogRepository(db *database.Database) FetchLogRepository {
	return &fetchLogRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *fetchLogRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *fetchLogRepository) Create(ctx context.Context, log *models.FetchLog) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(log).Error
}

func (r *fetchLogRepository) GetLast(ctx context.Context) (*models.FetchLog, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var log models.FetchLog
	err := r.db.WithContext(ctx).Order("fetched_at DESC").First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}

func (r *fetchLogRepository) FindRecent(ctx context.Context, limit int) ([]models.FetchLog, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	var logs []models.FetchLog
	err := r.db.WithContext(ctx).Order("fetched_at DESC").Limit(limit).Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
