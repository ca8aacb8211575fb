package db_models

type EventType string

const (
	EventPageView EventType = "page_view"
	EventCheckout EventType = "checkout"
)

type Event struct {
	BaseModel
	EventType EventType `gorm:"size:32;not null;index" json:"event_type"`
	Path      string    `gorm:"not null;index" json:"path"`
	VisitorID string    `gorm:"not null;index" json:"visitor_id"`
}

func (Event) TableName() string { return "events" }
