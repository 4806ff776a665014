package pagination

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
)

// Validation limits.
const (
	DefaultLimit  = 0
	MaxLimit      = 100000
	DefaultOffset = 0
	MaxPageSize   = 10000
)

// Common validation errors.
var (
	ErrInvalidLimit         = fmt.Errorf("limit must be between 0 and %d", MaxLimit)
	ErrInvalidPageSize      = fmt.Errorf("page-size must be between 1 and %d", MaxPageSize)
	ErrInvalidOffset        = errors.New("offset must be non-negative")
	ErrInvalidPage          = errors.New("page must be >= 1")
	ErrMixedPaginationModes = errors.New("cannot use both offset-based (--offset/--limit) and page-based (--page) pagination")
	ErrPageSizeWithoutPage  = errors.New("--page-size requires --page to be set")
)

// Params holds the pagination flags. A zero Limit means no limit.
type Params struct {
	// Limit is the maximum number of rows to print (offset-based mode).
	Limit int

	// Offset is the number of rows to skip (offset-based mode).
	Offset int

	// Page is the 1-based page number (page-based mode). 0 disables page mode.
	Page int

	// PageSize is the number of rows per page (page-based mode).
	PageSize int
}

// AddFlags registers the pagination flags on fs, bound to p.
func (p *Params) AddFlags(fs *pflag.FlagSet) {
	fs.IntVar(&p.Limit, "limit", DefaultLimit, "maximum number of rows to print (0 = all)")
	fs.IntVar(&p.Offset, "offset", DefaultOffset, "number of rows to skip")
	fs.IntVar(&p.Page, "page", 0, "1-based page to print (requires --page-size)")
	fs.IntVar(&p.PageSize, "page-size", 0, "rows per page")
}

// Validate checks the parameters are in range and use a single mode.
func (p Params) Validate() error {
	if p.Limit < 0 || p.Limit > MaxLimit {
		return fmt.Errorf("%w, got %d", ErrInvalidLimit, p.Limit)
	}
	if p.Offset < 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidOffset, p.Offset)
	}
	if p.Page < 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidPage, p.Page)
	}
	if p.PageSize < 0 || p.PageSize > MaxPageSize {
		return fmt.Errorf("%w, got %d", ErrInvalidPageSize, p.PageSize)
	}

	if p.Page > 0 && (p.Offset > 0 || p.Limit > 0) {
		return ErrMixedPaginationModes
	}
	if p.Page == 0 && p.PageSize > 0 {
		return ErrPageSizeWithoutPage
	}
	if p.Page > 0 && p.PageSize == 0 {
		return fmt.Errorf("%w when using --page", ErrInvalidPageSize)
	}
	return nil
}

// IsPageBased returns true if page-based pagination is active.
func (p Params) IsPageBased() bool {
	return p.Page > 0
}

// IsActive reports whether any pagination flag narrows the output.
func (p Params) IsActive() bool {
	return p.IsPageBased() || p.Offset > 0 || p.Limit > 0
}

// Window returns the half-open position range [from, to) to print out of
// total positions. Page-based requests beyond the end are capped to the last
// page; offset-based requests beyond the end yield an empty range.
//
//nolint:nonamedreturns // Named returns document the range bounds.
func (p Params) Window(total int) (from, to int) {
	if total <= 0 {
		return 0, 0
	}

	if p.IsPageBased() {
		from = (p.Page - 1) * p.PageSize
		if from >= total {
			from = ((total - 1) / p.PageSize) * p.PageSize
		}
		return from, min(from+p.PageSize, total)
	}

	from = min(p.Offset, total)
	if p.Limit == 0 {
		return from, total
	}
	return from, min(from+p.Limit, total)
}
