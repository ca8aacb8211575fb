package db_models

// Tip is append-only. Only the settled flag changes, and that happens outside this service.
type Tip struct {
	BaseModel
	CreatorID      string  `gorm:"size:8;not null;index" json:"creator_id"`
	VisitorID      string  `gorm:"not null;index" json:"visitor_id"`
	Amount         int64   `gorm:"not null;check:amount >= 0" json:"amount"` // minor units
	Currency       string  `gorm:"size:3;not null" json:"currency"`          // ISO 4217
	Message        *string `json:"message"`
	PaymentGateway string  `json:"payment_gateway"`
	PaymentID      string  `gorm:"index" json:"payment_id"`
	Settled        bool    `gorm:"not null;default:false;index" json:"settled"`
}

func (Tip) TableName() string { return "tips" }
