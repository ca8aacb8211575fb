package db_models

// Visitor is the identified tipper row owned by the auth service. Read only here.
type Visitor struct {
	VisitorID string  `gorm:"column:visitor_id;primaryKey" json:"visitor_id"`
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

func (Visitor) TableName() string { return "users" }
