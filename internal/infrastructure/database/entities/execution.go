package entities

import (
	"time"

	"gorm.io/datatypes"
)

// Execution persists one tool invocation. ProjectPublicID is a loose
// reference with no foreign key.
type Execution struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"index:idx_executions_project_created_at,priority:2"`

	PublicID        string         `gorm:"type:varchar(64);uniqueIndex;not null"`
	ToolName        string         `gorm:"type:varchar(128);not null"`
	Inputs          datatypes.JSON `gorm:"type:jsonb"`
	Result          datatypes.JSON `gorm:"type:jsonb"`
	ProjectPublicID *string        `gorm:"type:varchar(64);index:idx_executions_project_created_at,priority:1"`
	IsDemo          bool           `gorm:"not null;default:false"`
}

// TableName specifies the table name for Execution.
func (Execution) TableName() string {
	return "executions"
}
