package model

// TodoModel mirrors the 'todos' table. UserID references users.id.
type TodoModel struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"type:text"`
	IsCompleted bool   `gorm:"not null"`
	UserID      uint   `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (TodoModel) TableName() string {
	return "todos"
}
