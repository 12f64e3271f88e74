package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"budget/internal/logger"
	"budget/internal/models"
	"budget/internal/services"
	"budget/internal/testutil"
	"budget/internal/validator"
)

// testApp holds the full application stack backed by an isolated in-memory SQLite.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

func setupApp(t *testing.T, mode services.BalanceMode) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	router := NewRouter(NewHandlers(db, mode), Options{CORSAllowedOrigins: []string{"*"}})
	return &testApp{DB: db, Router: router}
}

func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func parseJSONArray(t *testing.T, rec *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var result []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON array: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func (app *testApp) createAccount(t *testing.T, name string, saldo string) string {
	t.Helper()
	rec := app.request("POST", "/accounts", fmt.Sprintf(`{"name":%q,"saldo":%s}`, name, saldo))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return parseJSON(t, rec)["id"].(string)
}

func (app *testApp) saldo(t *testing.T, accountID string) float64 {
	t.Helper()
	rec := app.request("GET", "/accounts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	for _, account := range parseJSONArray(t, rec) {
		if account["id"] == accountID {
			return account["saldo"].(float64)
		}
	}
	t.Fatalf("account %s not listed", accountID)
	return 0
}

// saldoNumber returns the listed saldo exactly as it appears on the wire.
func (app *testApp) saldoNumber(t *testing.T, accountID string) json.Number {
	t.Helper()
	rec := app.request("GET", "/accounts", "")
	require.Equal(t, http.StatusOK, rec.Code)

	dec := json.NewDecoder(strings.NewReader(rec.Body.String()))
	dec.UseNumber()
	var accounts []map[string]interface{}
	require.NoError(t, dec.Decode(&accounts))
	for _, account := range accounts {
		if account["id"] == accountID {
			return account["saldo"].(json.Number)
		}
	}
	t.Fatalf("account %s not listed", accountID)
	return ""
}

func TestBanner(t *testing.T) {
	app := setupApp(t, "")

	rec := app.request("GET", "/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, Banner, rec.Body.String())
}

func TestHealth(t *testing.T) {
	app := setupApp(t, "")

	rec := app.request("GET", "/api/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", parseJSON(t, rec)["status"])
}

func TestUnknownRoute(t *testing.T) {
	app := setupApp(t, "")

	rec := app.request("GET", "/budgets", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", parseJSON(t, rec)["code"])
}

func TestEmptyCollections(t *testing.T) {
	app := setupApp(t, "")

	for _, path := range []string{"/accounts", "/categories", "/expenses", "/incomes"} {
		rec := app.request("GET", path, "")
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "[]", rec.Body.String(), path)
	}
}

func TestBalanceFlow(t *testing.T) {
	for _, mode := range []services.BalanceMode{services.BalanceModeReadModifyWrite, services.BalanceModeAtomic} {
		t.Run(string(mode), func(t *testing.T) {
			app := setupApp(t, mode)

			accountID := app.createAccount(t, "Wallet", "100")
			assert.Equal(t, float64(100), app.saldo(t, accountID))

			rec := app.request("POST", "/categories", `{"name":"Food","description":"Groceries"}`)
			require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
			categoryID := parseJSON(t, rec)["id"].(string)

			rec = app.request("POST", "/expenses", fmt.Sprintf(
				`{"amount":30,"date":"2024-03-01","description":"Groceries","category":%q,"account":%q}`,
				categoryID, accountID))
			require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
			expense := parseJSON(t, rec)
			assert.Equal(t, float64(30), expense["amount"])
			assert.Equal(t, categoryID, expense["category"].(map[string]interface{})["id"])
			assert.Equal(t, accountID, expense["account"].(map[string]interface{})["id"])
			assert.Equal(t, float64(70), app.saldo(t, accountID))

			rec = app.request("POST", "/incomes", fmt.Sprintf(`{"amount":50,"description":"Salary","account":%q}`, accountID))
			require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
			assert.Equal(t, float64(120), app.saldo(t, accountID))

			rec = app.request("POST", "/accounts/"+accountID+"/reconcile", "")
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, float64(120), parseJSON(t, rec)["saldo"])
		})

		t.Run(string(mode)+"/fractional", func(t *testing.T) {
			app := setupApp(t, mode)

			accountID := app.createAccount(t, "Cents", "0.1")
			rec := app.request("POST", "/incomes", fmt.Sprintf(`{"amount":0.2,"account":%q}`, accountID))
			require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
			assert.Equal(t, json.Number("0.3"), app.saldoNumber(t, accountID))

			rec = app.request("POST", "/accounts/"+accountID+"/reconcile", "")
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, json.Number("0.3"), app.saldoNumber(t, accountID))

			bigID := app.createAccount(t, "Large", "12345678901234567890.12")
			rec = app.request("POST", "/expenses", fmt.Sprintf(`{"amount":"0.02","account":%q}`, bigID))
			require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
			assert.Equal(t, json.Number("12345678901234567890.1"), app.saldoNumber(t, bigID))
		})
	}
}

func TestExpenseRoundTrip(t *testing.T) {
	app := setupApp(t, "")
	accountID := app.createAccount(t, "Wallet", "10")

	rec := app.request("POST", "/expenses", fmt.Sprintf(`{"amount":"2.5","description":"Coffee","account":%q}`, accountID))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := parseJSON(t, rec)

	first := parseJSONArray(t, app.request("GET", "/expenses", ""))
	second := parseJSONArray(t, app.request("GET", "/expenses", ""))
	require.Len(t, first, 1)
	assert.Equal(t, first, second)

	listed := first[0]
	assert.Equal(t, created["id"], listed["id"])
	assert.Equal(t, 2.5, listed["amount"])
	assert.Equal(t, "Coffee", listed["description"])
	assert.Nil(t, listed["category"])
	assert.Nil(t, listed["date"])
	// Listing reads the account after the update.
	assert.Equal(t, 7.5, listed["account"].(map[string]interface{})["saldo"])
}

func TestExpenseForUnknownAccount(t *testing.T) {
	app := setupApp(t, "")
	const missing = "0190a7a1-0000-7000-8000-000000000000"

	rec := app.request("POST", "/expenses", fmt.Sprintf(`{"amount":10,"account":%q}`, missing))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "BALANCE_UPDATE_FAILED", parseJSON(t, rec)["code"])

	var accounts, expenses int64
	app.DB.Model(&models.Account{}).Count(&accounts)
	app.DB.Model(&models.Expense{}).Count(&expenses)
	assert.Zero(t, accounts, "no account may be created")
	assert.Equal(t, int64(1), expenses, "the expense stays persisted")

	listed := parseJSONArray(t, app.request("GET", "/expenses", ""))
	require.Len(t, listed, 1)
	assert.Nil(t, listed[0]["account"])
}

func TestValidationErrors(t *testing.T) {
	app := setupApp(t, "")

	tests := []struct {
		path    string
		body    string
		message string
		field   string
	}{
		{"/accounts", `{"name":"Wallet","saldo":"abc"}`, "Could not create account", "body"},
		{"/categories", `{"name":false}`, "Could not create category", "name"},
		{"/expenses", `{"amount":1,"account":"nope"}`, "Could not add expense", "account"},
		{"/incomes", `{"amount":1,"date":"someday"}`, "Could not add income", "date"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := app.request("POST", tt.path, tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

			result := parseJSON(t, rec)
			assert.Equal(t, "VALIDATION_ERROR", result["code"])
			assert.Equal(t, tt.message, result["message"])
			errs, ok := result["errors"].(map[string]interface{})
			require.True(t, ok)
			assert.Contains(t, errs, tt.field)
		})
	}

	var count int64
	app.DB.Model(&models.Account{}).Count(&count)
	assert.Zero(t, count)
}

func TestAuditTrail(t *testing.T) {
	app := setupApp(t, "")
	accountID := app.createAccount(t, "Wallet", "1")
	app.request("POST", "/incomes", fmt.Sprintf(`{"amount":1,"account":%q}`, accountID))

	var logs []models.AuditLog
	require.NoError(t, app.DB.Find(&logs).Error)
	actions := make([]string, 0, len(logs))
	for _, l := range logs {
		actions = append(actions, l.Action)
	}
	assert.ElementsMatch(t, []string{"CREATE_ACCOUNT", "CREATE_INCOME"}, actions)
}
