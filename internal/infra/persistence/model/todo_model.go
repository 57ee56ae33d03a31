package model

import (
	"time"

	"github.com/google/uuid"
)

// TodoModel mirrors the 'todo_items' table. UserID carries a foreign key to
// users.id; the owner relationship is a plain id, not a preloaded object.
type TodoModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Title       string     `gorm:"type:varchar(40);not null"`
	Description string     `gorm:"type:varchar(500);not null;default:''"`
	DueDate     time.Time  `gorm:"not null;index"`
	CreatedAt   time.Time  `gorm:"not null"`
	CompletedAt *time.Time
	Status      int16     `gorm:"not null;default:0"`
	Priority    int16     `gorm:"not null;default:0"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (TodoModel) TableName() string {
	return "todo_items"
}
