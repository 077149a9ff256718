package queries

import (
	"context"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStockExceptionsQueryHandler lists stock exceptions, newest first.
type GetStockExceptionsQueryHandler struct {
	db *gorm.DB
}

// NewGetStockExceptionsQueryHandler creates a handler for exception listings.
func NewGetStockExceptionsQueryHandler(db *gorm.DB) GetStockExceptionsQueryHandler {
	return GetStockExceptionsQueryHandler{db: db}
}

// Handle executes the listing query with the requested filters.
func (h GetStockExceptionsQueryHandler) Handle(
	ctx context.Context,
	query GetStockExceptionsQuery,
) ([]GetStockExceptionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := strings.Builder{}
	sql.WriteString(`
		SELECT
			id,
			sku,
			product_title,
			category,
			qty_short,
			order_numbers,
			reported_by,
			reported_at,
			resolved,
			ordered_from_company,
			na_cancel,
			notes
		FROM stock_exceptions
		WHERE 1=1
	`)

	args := make([]any, 0, 3)
	if query.Resolved() != nil {
		sql.WriteString(" AND resolved = ?")
		args = append(args, *query.Resolved())
	}
	if query.ReportedAfter() != nil {
		sql.WriteString(" AND reported_at >= ?")
		args = append(args, *query.ReportedAfter())
	}
	if query.ReportedBefore() != nil {
		sql.WriteString(" AND reported_at < ?")
		args = append(args, *query.ReportedBefore())
	}
	sql.WriteString(" ORDER BY reported_at DESC")

	exceptions := make([]GetStockExceptionsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql.String(), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetStockExceptionsQueryResponse
		var id uuid.UUID
		var orderNumbers string

		if err = rows.Scan(
			&id,
			&resp.SKU,
			&resp.ProductTitle,
			&resp.Category,
			&resp.QtyShort,
			&orderNumbers,
			&resp.ReportedBy,
			&resp.ReportedAt,
			&resp.Resolved,
			&resp.OrderedFromCompany,
			&resp.NACancel,
			&resp.Notes,
		); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if orderNumbers != "" {
			resp.OrderNumbers = strings.Split(orderNumbers, ",")
		}
		exceptions = append(exceptions, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return exceptions, nil
}
