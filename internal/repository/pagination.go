// Package repository implements the data access layer for the application.
package repository

import (
	"context"

	"redsocial/internal/models"

	"gorm.io/gorm"
)

const maxPageSize = 100

// Page is a 1-based page of results with the totals callers need to render
// pagination controls. A page past the end carries an empty Items slice with
// accurate totals; it is never an error.
type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

// NormalizePage clamps page and limit to sane values. Page numbers are
// 1-based; limit falls back to defaultLimit and is capped at maxPageSize.
func NormalizePage(page, limit, defaultLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

// paginate runs a count plus an offset/limit find over the prepared query.
// The query must already carry its WHERE/ORDER/Preload clauses.
func paginate[T any](ctx context.Context, query *gorm.DB, page, limit int) (*Page[T], error) {
	var total int64
	if err := query.WithContext(ctx).Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	items := make([]T, 0, limit)
	offset := (page - 1) * limit
	if err := query.WithContext(ctx).Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	pages := int((total + int64(limit) - 1) / int64(limit))
	return &Page[T]{
		Items: items,
		Total: total,
		Pages: pages,
		Page:  page,
		Limit: limit,
	}, nil
}
