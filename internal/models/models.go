package models

// Item is the only persisted entity: a catalog record with an optional
// description and a non-negative optional price. The ID is assigned by the
// store on creation and never reused after deletion.
type Item struct {
	ID          int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string  `json:"title" gorm:"size:100;not null;index"`
	Description *string `json:"description" gorm:"type:text"`
	Price       *int64  `json:"price"`
}

// TableName keeps the table name stable regardless of pluralization rules.
func (Item) TableName() string {
	return "items"
}
