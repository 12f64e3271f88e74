package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"budget/internal/logger"
	"budget/internal/services"
	"budget/internal/validator"
)

// --- audit expectations ---

// anyAudit returns an audit mock that accepts every Log call.
func anyAudit(ctrl *gomock.Controller) *services.MockAuditServicer {
	audit := services.NewMockAuditServicer(ctrl)
	audit.EXPECT().Log(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	return audit
}

// expectAudit returns an audit mock that requires exactly one entry for
// action on resourceType.
func expectAudit(ctrl *gomock.Controller, action, resourceType string) *services.MockAuditServicer {
	audit := services.NewMockAuditServicer(ctrl)
	audit.EXPECT().Log(action, resourceType, gomock.Any(), gomock.Any(), gomock.Any()).Times(1)
	return audit
}

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func parseJSONArray(t *testing.T, rec *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	var result []interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON array: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	if result["code"] != code {
		t.Errorf("expected error code %q, got %v", code, result["code"])
	}
}

// assertFieldError checks that the error body carries detail for field.
func assertFieldError(t *testing.T, result map[string]interface{}, field string) {
	t.Helper()
	errs, ok := result["errors"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected errors object in response, got %v", result)
	}
	if _, ok := errs[field]; !ok {
		t.Errorf("expected error detail for %q, got %v", field, errs)
	}
}
