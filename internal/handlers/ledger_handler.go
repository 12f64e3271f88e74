package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"budget/internal/services"
)

// LedgerHandler handles expense and income requests.
type LedgerHandler struct {
	ledgerService services.LedgerServicer
	auditService  services.AuditServicer
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerService services.LedgerServicer, auditService services.AuditServicer) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService, auditService: auditService}
}

// CreateExpenseRequest represents the request payload for recording an expense.
// Category and account are ids; date is RFC 3339, YYYY-MM-DD or epoch
// milliseconds.
type CreateExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount" swaggertype:"number"`
	Date        *DateInput      `json:"date" binding:"omitempty,flexdate" swaggertype:"string"`
	Description string          `json:"description"`
	Category    *string         `json:"category" binding:"omitempty,ref"`
	Account     *string         `json:"account" binding:"omitempty,ref"`
}

// CreateIncomeRequest represents the request payload for recording an income.
type CreateIncomeRequest struct {
	Amount      decimal.Decimal `json:"amount" swaggertype:"number"`
	Date        *DateInput      `json:"date" binding:"omitempty,flexdate" swaggertype:"string"`
	Description string          `json:"description"`
	Account     *string         `json:"account" binding:"omitempty,ref"`
}

// CreateExpense records an expense and lowers the account saldo
// @Summary     Add an expense
// @Description Record an expense; the referenced account's saldo drops by amount
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       request body CreateExpenseRequest true "Expense details"
// @Success     201 {object} models.ExpenseView "Expense recorded"
// @Failure     400 {object} ErrorResponse "Payload does not match the schema"
// @Failure     500 {object} ErrorResponse "Server error or balance update failed"
// @Router      /expenses [post]
func (h *LedgerHandler) CreateExpense(c *gin.Context) {
	var req CreateExpenseRequest
	if err := bindPayload(c, &req); err != nil {
		respondWithError(c, validationError("Could not add expense", err))
		return
	}

	expense, err := h.ledgerService.CreateExpense(services.ExpenseInput{
		Amount:      req.Amount,
		Date:        parseOptionalDate(req.Date),
		Description: req.Description,
		CategoryID:  optionalRef(req.Category),
		AccountID:   optionalRef(req.Account),
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("CREATE_EXPENSE", "expense", expense.ID, c.ClientIP(),
		map[string]interface{}{"amount": req.Amount.String(), "account": req.Account, "category": req.Category})

	c.JSON(http.StatusCreated, expense)
}

// ListExpenses handles the retrieval of every expense
// @Summary     List expenses
// @Description List every expense with account and category resolved
// @Tags        expenses
// @Produce     json
// @Success     200 {array}  models.ExpenseView "Expenses"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [get]
func (h *LedgerHandler) ListExpenses(c *gin.Context) {
	expenses, err := h.ledgerService.ListExpenses()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// CreateIncome records an income and raises the account saldo
// @Summary     Add an income
// @Description Record an income; the referenced account's saldo rises by amount
// @Tags        incomes
// @Accept      json
// @Produce     json
// @Param       request body CreateIncomeRequest true "Income details"
// @Success     201 {object} models.IncomeView "Income recorded"
// @Failure     400 {object} ErrorResponse "Payload does not match the schema"
// @Failure     500 {object} ErrorResponse "Server error or balance update failed"
// @Router      /incomes [post]
func (h *LedgerHandler) CreateIncome(c *gin.Context) {
	var req CreateIncomeRequest
	if err := bindPayload(c, &req); err != nil {
		respondWithError(c, validationError("Could not add income", err))
		return
	}

	income, err := h.ledgerService.CreateIncome(services.IncomeInput{
		Amount:      req.Amount,
		Date:        parseOptionalDate(req.Date),
		Description: req.Description,
		AccountID:   optionalRef(req.Account),
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("CREATE_INCOME", "income", income.ID, c.ClientIP(),
		map[string]interface{}{"amount": req.Amount.String(), "account": req.Account})

	c.JSON(http.StatusCreated, income)
}

// ListIncomes handles the retrieval of every income
// @Summary     List incomes
// @Description List every income with its account resolved
// @Tags        incomes
// @Produce     json
// @Success     200 {array}  models.IncomeView "Incomes"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /incomes [get]
func (h *LedgerHandler) ListIncomes(c *gin.Context) {
	incomes, err := h.ledgerService.ListIncomes()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, incomes)
}
