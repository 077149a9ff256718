package stockexception

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrStockExceptionIsNotConstructed is returned when a StockException was
	// not created through NewStockException or RestoreStockException.
	ErrStockExceptionIsNotConstructed = errors.New(
		"StockException must be created via NewStockException or RestoreStockException constructor")
	// ErrSKUIsRequired is returned when attempting to create an exception without a SKU.
	ErrSKUIsRequired = errs.NewValueIsRequiredError("sku")
	// ErrOrderNumbersAreRequired is returned when attempting to create an exception
	// that affects no orders.
	ErrOrderNumbersAreRequired = errs.NewValueIsRequiredError("orderNumbers")
)

// StockException is one shortage report: a SKU found unavailable at one point
// in time, covering possibly many orders. Every mark-short call produces a new
// exception; open exceptions for the same SKU are never merged.
//
// The aggregate carries two independent flags beyond resolution:
//   - orderedFromCompany: procurement has ordered replacement stock
//   - naCancel: the shortage is permanently unfulfillable rather than pending
//     restock, which lets affected orders complete with the shortage standing
//
// Exceptions are mutated to flip these flags and to resolve, never deleted.
type StockException struct {
	id                 kernel.UUID
	sku                string
	productTitle       string
	category           string
	qtyShort           int
	orderNumbers       []string
	reportedBy         string
	reportedAt         time.Time
	resolved           bool
	orderedFromCompany bool
	naCancel           bool
	notes              string
	guard              guard.ConstructorGuard
}

// NewStockException creates a shortage report for the given SKU covering the
// given order numbers. Quantity short must be positive and at least one order
// number is required.
func NewStockException(
	id kernel.UUID,
	sku, productTitle, category string,
	qtyShort int,
	orderNumbers []string,
	reportedBy, notes string,
	reportedAt time.Time,
) (*StockException, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if sku == "" {
		return nil, ErrSKUIsRequired
	}
	if qtyShort < 1 {
		return nil, errs.NewValueIsOutOfRangeError("qtyShort", qtyShort, 1, 1_000_000)
	}
	if len(orderNumbers) == 0 {
		return nil, ErrOrderNumbersAreRequired
	}
	if reportedBy == "" {
		return nil, errs.NewValueIsRequiredError("reportedBy")
	}

	return &StockException{
		id:           id,
		sku:          sku,
		productTitle: productTitle,
		category:     category,
		qtyShort:     qtyShort,
		orderNumbers: orderNumbers,
		reportedBy:   reportedBy,
		reportedAt:   reportedAt,
		notes:        notes,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreStockException reconstructs a StockException from persistent storage
// including its resolution and flag state.
func RestoreStockException(
	id kernel.UUID,
	sku, productTitle, category string,
	qtyShort int,
	orderNumbers []string,
	reportedBy, notes string,
	reportedAt time.Time,
	resolved, orderedFromCompany, naCancel bool,
) (*StockException, error) {
	exception, err := NewStockException(
		id, sku, productTitle, category, qtyShort, orderNumbers, reportedBy, notes, reportedAt)
	if err != nil {
		return nil, err
	}

	exception.resolved = resolved
	exception.orderedFromCompany = orderedFromCompany
	exception.naCancel = naCancel
	return exception, nil
}

// Validate ensures the StockException was properly constructed.
func (e *StockException) Validate() error {
	if e == nil {
		return ErrStockExceptionIsNotConstructed
	}
	return e.guard.Validate(ErrStockExceptionIsNotConstructed)
}

// ID returns the exception's unique identifier.
func (e *StockException) ID() kernel.UUID {
	return e.id
}

// SKU returns the stock-keeping unit the shortage was reported for.
func (e *StockException) SKU() string {
	return e.sku
}

// ProductTitle returns the product title snapshot taken when the shortage was reported.
func (e *StockException) ProductTitle() string {
	return e.productTitle
}

// Category returns the product category snapshot.
func (e *StockException) Category() string {
	return e.category
}

// QtyShort returns the total quantity reported short across all affected orders.
func (e *StockException) QtyShort() int {
	return e.qtyShort
}

// OrderNumbers returns the sorted display numbers of the affected orders.
func (e *StockException) OrderNumbers() []string {
	return e.orderNumbers
}

// ReportedBy returns the identity of the user who reported the shortage.
func (e *StockException) ReportedBy() string {
	return e.reportedBy
}

// ReportedAt returns the time the shortage was reported.
func (e *StockException) ReportedAt() time.Time {
	return e.reportedAt
}

// IsResolved reports whether the exception has been resolved.
func (e *StockException) IsResolved() bool {
	return e.resolved
}

// IsOrderedFromCompany reports whether replacement stock has been ordered
// from the supplier. Independent of resolution.
func (e *StockException) IsOrderedFromCompany() bool {
	return e.orderedFromCompany
}

// IsNACancel reports whether the shortage is marked permanently
// unfulfillable rather than pending restock.
func (e *StockException) IsNACancel() bool {
	return e.naCancel
}

// Notes returns the free-text notes, including appended resolution notes.
func (e *StockException) Notes() string {
	return e.notes
}

// Resolve marks the exception resolved and appends a resolution note naming
// the actor and how many items were actually restored. Resolving an already
// resolved exception is safe and keeps it resolved.
func (e *StockException) Resolve(actor string, restoredItems int) {
	e.resolved = true

	note := fmt.Sprintf("Resolved by %s (restored %d item(s))", actor, restoredItems)
	if e.notes == "" {
		e.notes = note
	} else {
		e.notes = e.notes + "\n" + note
	}
}

// ToggleOrderedFromCompany flips the procurement flag and returns the new value.
func (e *StockException) ToggleOrderedFromCompany() bool {
	e.orderedFromCompany = !e.orderedFromCompany
	return e.orderedFromCompany
}

// ToggleNACancel flips the permanently-unfulfillable flag and returns the new
// value. When flipped on, callers must re-evaluate readiness of the affected
// orders: a cancelled shortage can now satisfy their completion.
func (e *StockException) ToggleNACancel() bool {
	e.naCancel = !e.naCancel
	return e.naCancel
}
