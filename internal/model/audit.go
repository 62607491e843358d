package model

import "time"

// Audit actions recorded for admin mutations.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionExtend = "extend"
	ActionCancel = "cancel"
	ActionSend   = "send"
)

// AuditEntry records one admin mutation performed through the gateway.
// This is the only locally-owned persistent state besides sessions.
type AuditEntry struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	AdminID   int64     `gorm:"index;not null" json:"admin_id"`
	Username  string    `gorm:"size:255" json:"username"`
	Resource  string    `gorm:"size:64;index;not null" json:"resource"`
	Action    string    `gorm:"size:32;not null" json:"action"`
	EntityID  int64     `gorm:"index" json:"entity_id"`
	Detail    string    `gorm:"size:1024" json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}

func (AuditEntry) TableName() string {
	return "audit_entries"
}
