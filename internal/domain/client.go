package domain

// Client is a roster entry owned by exactly one Trainer. TrainerID is set
// on creation and never changes. Deleting a client only flips IsActive;
// inactive rows are invisible to every subsequent operation.
type Client struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"not null" json:"name"`
	Age       int    `json:"age"`
	Goal      string `json:"goal"`
	TrainerID uint   `gorm:"index;not null" json:"trainer_id"`
	IsActive  bool   `gorm:"default:true" json:"is_active"`
}

func (Client) TableName() string {
	return "clients"
}
