package dto

import (
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Code            string             `json:"code" binding:"required,max=32"`
	Name            string             `json:"name" binding:"required,max=255"`
	AccountType     domain.AccountType `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY INCOME COST EXPENSE"`
	ParentAccountID *string            `json:"parentAccountID"` // Optional, use pointer for nullability
	AllowPosting    *bool              `json:"allowPosting"`    // Defaults to true; ignored on control levels
	Description     string             `json:"description"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`
	Description *string `json:"description"`
}

// ReparentAccountRequest moves an account. A missing or empty parent moves it to the top level.
type ReparentAccountRequest struct {
	ParentAccountID *string `json:"parentAccountID"`
}

// ChartImportRowRequest is one row of a chart import. Rows are validated
// individually so that one bad row does not reject the batch.
type ChartImportRowRequest struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	AccountType  string `json:"accountType"`
	ParentCode   string `json:"parentCode"`
	AllowPosting *bool  `json:"allowPosting"`
	Description  string `json:"description"`
}

// ImportChartRequest is a batch chart import.
type ImportChartRequest struct {
	Mode domain.ChartImportMode  `json:"mode" binding:"required,oneof=EXPLICIT INFER_FROM_CODE"`
	Rows []ChartImportRowRequest `json:"rows" binding:"required"`
}

// ToChartImportRows converts request rows to domain rows.
func (r ImportChartRequest) ToChartImportRows() []domain.ChartImportRow {
	rows := make([]domain.ChartImportRow, len(r.Rows))
	for i, row := range r.Rows {
		rows[i] = domain.ChartImportRow{
			Code:         row.Code,
			Name:         row.Name,
			AccountType:  domain.AccountType(row.AccountType),
			ParentCode:   row.ParentCode,
			AllowPosting: row.AllowPosting,
			Description:  row.Description,
		}
	}
	return rows
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID       string               `json:"accountID"`
	Code            string               `json:"code"`
	Name            string               `json:"name"`
	Description     string               `json:"description"`
	AccountType     domain.AccountType   `json:"accountType"`
	ParentAccountID string               `json:"parentAccountID"` // Note: Empty string if null in DB
	Level           int                  `json:"level"`
	NormalBalance   domain.NormalBalance `json:"normalBalance"`
	AllowPosting    bool                 `json:"allowPosting"`
	Balance         decimal.Decimal      `json:"balance"`
	Status          domain.AccountStatus `json:"status"`
	CreatedAt       time.Time            `json:"createdAt"`
	CreatedBy       string               `json:"createdBy"`
	LastUpdatedAt   time.Time            `json:"lastUpdatedAt"`
	LastUpdatedBy   string               `json:"lastUpdatedBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:       acc.AccountID,
		Code:            acc.Code,
		Name:            acc.Name,
		Description:     acc.Description,
		AccountType:     acc.AccountType,
		ParentAccountID: acc.ParentAccountID,
		Level:           acc.Level,
		NormalBalance:   acc.NormalBalance,
		AllowPosting:    acc.AllowPosting,
		Balance:         acc.Balance,
		Status:          acc.Status,
		CreatedAt:       acc.CreatedAt,
		CreatedBy:       acc.CreatedBy,
		LastUpdatedAt:   acc.LastUpdatedAt,
		LastUpdatedBy:   acc.LastUpdatedBy,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=100" binding:"min=1,max=1000"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ChartImportResponse reports the outcome of a batch import.
type ChartImportResponse struct {
	Created  []AccountResponse      `json:"created"`
	Failures []domain.ImportFailure `json:"failures"`
}

// ToChartImportResponse converts an import result.
func ToChartImportResponse(res *domain.ChartImportResult) ChartImportResponse {
	failures := res.Failures
	if failures == nil {
		failures = []domain.ImportFailure{}
	}
	return ChartImportResponse{Created: ToListAccountResponse(res.Created), Failures: failures}
}
