package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"budget/internal/services"
)

// AccountHandler handles account-related requests.
type AccountHandler struct {
	accountService services.AccountServicer
	auditService   services.AuditServicer
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService services.AccountServicer, auditService services.AuditServicer) *AccountHandler {
	return &AccountHandler{accountService: accountService, auditService: auditService}
}

// CreateAccountRequest represents the request payload for creating an account.
// Saldo accepts a JSON number or a numeric string.
type CreateAccountRequest struct {
	Name  string          `json:"name"`
	Saldo decimal.Decimal `json:"saldo" swaggertype:"number"`
}

// CreateAccount handles the creation of a new account
// @Summary     Create an account
// @Description Create an account with an opening saldo
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Param       request body CreateAccountRequest true "Account details"
// @Success     201 {object} models.Account "Account created"
// @Failure     400 {object} ErrorResponse "Payload does not match the schema"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts [post]
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req CreateAccountRequest
	if err := bindPayload(c, &req); err != nil {
		respondWithError(c, validationError("Could not create account", err))
		return
	}

	account, err := h.accountService.CreateAccount(req.Name, req.Saldo)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("CREATE_ACCOUNT", "account", account.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "saldo": req.Saldo.String()})

	c.JSON(http.StatusCreated, account)
}

// ListAccounts handles the retrieval of every account
// @Summary     List accounts
// @Description List every account with its current saldo
// @Tags        accounts
// @Produce     json
// @Success     200 {array}  models.Account "Accounts"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts [get]
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.accountService.ListAccounts()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, accounts)
}

// ReconcileAccount recomputes an account's saldo from its ledger
// @Summary     Reconcile an account
// @Description Recompute saldo as opening saldo plus incomes minus expenses
// @Tags        accounts
// @Produce     json
// @Param       id path string true "Account ID"
// @Success     200 {object} models.Account "Reconciled account"
// @Failure     400 {object} ErrorResponse "Invalid account ID"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts/{id}/reconcile [post]
func (h *AccountHandler) ReconcileAccount(c *gin.Context) {
	accountID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	account, err := h.accountService.ReconcileAccount(accountID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("RECONCILE_ACCOUNT", "account", account.ID, c.ClientIP(),
		map[string]interface{}{"saldo": account.Saldo.String()})

	c.JSON(http.StatusOK, account)
}
