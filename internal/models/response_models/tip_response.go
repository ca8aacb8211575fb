package response_models

import "apextip/internal/models/db_models"

// TipItem is a tip row enriched with the tipper's contact details, when known.
type TipItem struct {
	db_models.Tip
	VisitorName  *string `json:"visitor_name" gorm:"column:visitor_name"`
	VisitorEmail *string `json:"visitor_email" gorm:"column:visitor_email"`
	VisitorPhone *string `json:"visitor_phone" gorm:"column:visitor_phone"`
}

type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int64 `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
	Limit       int   `json:"limit"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

type TipListResponse struct {
	Tips       []TipItem  `json:"tips"`
	Pagination Pagination `json:"pagination"`
}

// TipAmounts are in minor units. Settled and unsettled are net of the platform commission.
type TipAmounts struct {
	CollectedAmount int64   `json:"collected_amount"`
	SettledAmount   float64 `json:"settled_amount"`
	UnsettledAmount float64 `json:"unsettled_amount"`
}
