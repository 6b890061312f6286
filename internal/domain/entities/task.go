package entities

import "time"

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "Low"
	TaskPriorityMedium TaskPriority = "Medium"
	TaskPriorityHigh   TaskPriority = "High"
)

// Task is a follow-up action, optionally tied to a document. Tasks created
// through the document mutator default to Medium priority and are never
// deleted by that flow.
type Task struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	CompanyID   uint         `gorm:"index;not null" json:"company_id"`
	Title       string       `gorm:"size:255;not null" json:"title"`
	Description string       `gorm:"type:text" json:"description"`
	Priority    TaskPriority `gorm:"size:20;default:'Medium'" json:"priority"`
	DocumentID  *string      `gorm:"index;size:36" json:"document_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Task) TableName() string {
	return "tasks"
}
