package services

import (
	"testing"

	"budget/internal/models"
	"budget/internal/testutil"
)

func TestAuditLog(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAuditService(db)

	svc.Log("CREATE_ACCOUNT", "account", "abc", "127.0.0.1", map[string]interface{}{"name": "Wallet"})
	svc.Log("CREATE_CATEGORY", "category", "def", "127.0.0.1", nil)

	var logs []models.AuditLog
	if err := db.Order("action").Find(&logs).Error; err != nil {
		t.Fatalf("failed to load audit logs: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("expected 2 audit logs, got %d", len(logs))
	}
	if logs[0].Action != "CREATE_ACCOUNT" || logs[0].Changes != `{"name":"Wallet"}` {
		t.Errorf("unexpected first entry: %+v", logs[0])
	}
	if logs[1].Changes != "" {
		t.Errorf("expected empty changes, got %q", logs[1].Changes)
	}
}
