package request_models

// TipListQuery is the raw query string of a ledger request. Values are parsed by the
// controller so each malformed field can be reported by name.
type TipListQuery struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Page      string `form:"page"`
	Limit     string `form:"limit"`
}

// LedgerQuery is a validated ledger request.
type LedgerQuery struct {
	CreatorID string
	StartDate *int64
	EndDate   *int64
	Page      int
	Limit     int
}

const (
	DefaultPage  = 1
	DefaultLimit = 100
	MaxLimit     = 100
)

// Offset is the number of rows skipped before the requested page.
func (q LedgerQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}
