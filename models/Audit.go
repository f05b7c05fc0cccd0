package models

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog records every admin mutation against a reservation, with JSON
// snapshots of the record before and after the change.
type AuditLog struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	AdminEmail   string         `json:"adminEmail" gorm:"size:254;index"`
	Action       string         `json:"action" gorm:"size:64;index"`
	ResourceType string         `json:"resourceType" gorm:"size:64;index"`
	ResourceID   string         `json:"resourceID" gorm:"size:36;index"`
	Before       datatypes.JSON `json:"before"`
	After        datatypes.JSON `json:"after"`
	IPAddress    string         `json:"ipAddress" gorm:"size:64"`
	CreatedAt    time.Time      `json:"createdAt"`
}
