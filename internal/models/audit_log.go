package models

// AuditLog records every write made through the HTTP surface.
type AuditLog struct {
	Base
	Action       string `gorm:"not null" json:"action"`
	ResourceType string `gorm:"not null;index:idx_audit_logs_resource" json:"resource_type"`
	ResourceID   string `gorm:"index:idx_audit_logs_resource" json:"resource_id"`
	IPAddress    string `json:"ip_address"`
	Changes      string `json:"changes,omitempty"`
}
