package model

// Card lifecycle actions recorded in the event history.
const (
	CardActionRevoke     = "revoke"
	CardActionReactivate = "reactivate"
)

// CardEvent records one revoke/reactivate transition with its reason.
type CardEvent struct {
	ID     uint32 `gorm:"column:id;primaryKey;autoIncrement"`
	CardID uint32 `gorm:"column:card_id;not null;index:idx_card_event_card_id"`

	Action  string `gorm:"column:action;type:varchar(20);not null"`
	Reason  string `gorm:"column:reason;type:varchar(50);not null"`
	Details string `gorm:"column:details;type:varchar(500)"`

	BaseEntity
}

// TableName specifies the table name for CardEvent
func (*CardEvent) TableName() string {
	return "card_event"
}
