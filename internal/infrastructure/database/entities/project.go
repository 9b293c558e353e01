package entities

import (
	"time"

	"gorm.io/datatypes"
)

// Project is the database schema for projects. ID never leaves the
// repository; callers only see PublicID.
type Project struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"index:idx_projects_created_at"`
	UpdatedAt time.Time

	PublicID    string         `gorm:"type:varchar(64);uniqueIndex;not null"`
	Name        string         `gorm:"type:text;not null"`
	Description string         `gorm:"type:text;not null"`
	ToolsUsed   datatypes.JSON `gorm:"type:jsonb"`
}

// TableName specifies the table name for Project.
func (Project) TableName() string {
	return "projects"
}
