package queries

import (
	"context"
	"sort"
	"strings"

	"gorm.io/gorm"
)

// GetShortageSummaryQueryHandler rolls unresolved exceptions up by SKU.
//
// Order numbers are aggregated in SQL as a comma-joined string and
// de-duplicated here, since the same order can appear in several exceptions
// for one SKU.
type GetShortageSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetShortageSummaryQueryHandler creates a handler for shortage rollups.
func NewGetShortageSummaryQueryHandler(db *gorm.DB) GetShortageSummaryQueryHandler {
	return GetShortageSummaryQueryHandler{db: db}
}

// Handle executes the rollup query. Lines are sorted by total shortage,
// largest first, so the most pressing SKU leads the report.
func (h GetShortageSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetShortageSummaryQuery,
) ([]GetShortageSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	lines := make([]GetShortageSummaryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			sku,
			MIN(product_title) AS product_title,
			MIN(category)      AS category,
			SUM(qty_short)     AS total_qty_short,
			STRING_AGG(order_numbers, ',') AS order_numbers,
			COUNT(*)           AS exception_count
		FROM stock_exceptions
		WHERE resolved = FALSE
		GROUP BY sku
		ORDER BY total_qty_short DESC, sku
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line GetShortageSummaryQueryResponse
		var orderNumbers string

		if err = rows.Scan(
			&line.SKU,
			&line.ProductTitle,
			&line.Category,
			&line.TotalQtyShort,
			&orderNumbers,
			&line.ExceptionCount,
		); err != nil {
			return nil, err
		}

		line.OrderNumbers = dedupeNumbers(orderNumbers)
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

func dedupeNumbers(joined string) []string {
	seen := make(map[string]bool)
	numbers := make([]string, 0)
	for _, number := range strings.Split(joined, ",") {
		number = strings.TrimSpace(number)
		if number == "" || seen[number] {
			continue
		}
		seen[number] = true
		numbers = append(numbers, number)
	}
	sort.Strings(numbers)
	return numbers
}
