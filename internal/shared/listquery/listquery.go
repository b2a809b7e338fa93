// Package listquery implements the filtered, sorted, paged query pattern
// shared by every list endpoint. Filters are GORM scopes composed with
// AND; the total count is taken over the filtered set before paging.
package listquery

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"go-hrpay/internal/shared/apperror"
)

// Request carries the pagination inputs common to every list endpoint.
// Embed it in per-module list requests; gin binds the form tags.
type Request struct {
	SearchTerm string `form:"searchTerm"`
	PageNumber int    `form:"pageNumber,default=1"`
	PageSize   int    `form:"pageSize,default=10"`
}

var (
	ErrInvalidPageNumber = apperror.New(
		apperror.CodeInvalidInput,
		"pageNumber must be at least 1",
		http.StatusBadRequest,
	)
	ErrInvalidPageSize = apperror.New(
		apperror.CodeInvalidInput,
		"pageSize must be at least 1",
		http.StatusBadRequest,
	)
)

// Validate rejects non-positive page inputs. An explicit pageSize of 0
// previously slipped through and produced undefined LIMIT behavior.
func (r Request) Validate() error {
	if r.PageNumber < 1 {
		return ErrInvalidPageNumber
	}
	if r.PageSize < 1 {
		return ErrInvalidPageSize
	}
	return nil
}

// Offset is the number of records skipped before the requested page.
func (r Request) Offset() int {
	return (r.PageNumber - 1) * r.PageSize
}

// Result is one page of a filtered collection plus the unpaged total.
type Result[T any] struct {
	Items      []T
	TotalCount int64
	PageNumber int
	PageSize   int
}

// TotalPages rounds up; a zero total yields zero pages.
func (r Result[T]) TotalPages() int {
	if r.PageSize < 1 {
		return 0
	}
	return int((r.TotalCount + int64(r.PageSize) - 1) / int64(r.PageSize))
}

// Map projects a page of entities into a page of DTOs, keeping the
// pagination bookkeeping intact.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	items := make([]U, len(r.Items))
	for i, item := range r.Items {
		items[i] = fn(item)
	}
	return Result[U]{
		Items:      items,
		TotalCount: r.TotalCount,
		PageNumber: r.PageNumber,
		PageSize:   r.PageSize,
	}
}

// Scope is a composable GORM query fragment.
type Scope = func(*gorm.DB) *gorm.DB

// SearchILike matches term as a case-insensitive substring across the
// given columns. An empty or blank term is a no-op.
func SearchILike(term string, columns ...string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		term = strings.TrimSpace(term)
		if term == "" || len(columns) == 0 {
			return db
		}
		pattern := "%" + term + "%"
		conds := make([]string, len(columns))
		args := make([]any, len(columns))
		for i, col := range columns {
			conds[i] = fmt.Sprintf("%s ILIKE ?", col)
			args[i] = pattern
		}
		return db.Where(strings.Join(conds, " OR "), args...)
	}
}

// Eq is an exact-match filter that is a no-op for the empty value.
func Eq(column, value string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if value == "" {
			return db
		}
		return db.Where(fmt.Sprintf("%s = ?", column), value)
	}
}

// Find counts the filtered set, then fetches the requested page with a
// fixed order. A page past the end returns empty items with the correct
// total. The two statements are independent reads; under concurrent
// writes they may observe different snapshots.
func Find[T any](ctx context.Context, db *gorm.DB, req Request, order string, scopes ...Scope) (Result[T], error) {
	res := Result[T]{
		Items:      []T{},
		PageNumber: req.PageNumber,
		PageSize:   req.PageSize,
	}

	if err := req.Validate(); err != nil {
		return res, err
	}

	var model T
	if err := db.WithContext(ctx).
		Model(&model).
		Scopes(scopes...).
		Count(&res.TotalCount).Error; err != nil {
		return res, err
	}

	err := db.WithContext(ctx).
		Model(&model).
		Scopes(scopes...).
		Order(order).
		Offset(req.Offset()).
		Limit(req.PageSize).
		Find(&res.Items).Error
	return res, err
}
