package domain

import (
	"time"
)

// AccountType classifies a GL account as operating or capital expenditure
type AccountType string

const (
	AccountTypeOPEX  AccountType = "OPEX"
	AccountTypeCAPEX AccountType = "CAPEX"
)

// DocumentType is the SAP-style document type code attached to a posting
type DocumentType string

const (
	DocumentTypeGLAccount      DocumentType = "SA" // G/L account document
	DocumentTypeVendorInvoice  DocumentType = "KR" // vendor invoice
	DocumentTypeInvoiceReceipt DocumentType = "RE" // invoice receipt
	DocumentTypeAccounting     DocumentType = "AB" // accounting document
	DocumentTypeVendorDoc      DocumentType = "KA" // vendor document
)

// DocumentTypes lists every document type a posting may carry, in the
// order used for random selection.
var DocumentTypes = []DocumentType{
	DocumentTypeGLAccount,
	DocumentTypeVendorInvoice,
	DocumentTypeInvoiceReceipt,
	DocumentTypeAccounting,
	DocumentTypeVendorDoc,
}

// CostCenter represents an organizational unit that accumulates costs
type CostCenter struct {
	ID       string `json:"cost_center_id" csv:"cost_center_id" validate:"required"`
	Name     string `json:"cost_center_name" csv:"cost_center_name" validate:"required"`
	Dept     string `json:"department" csv:"department" validate:"required"`
	Manager  string `json:"manager" csv:"manager"`
	ParentID string `json:"parent_cost_center_id,omitempty" csv:"parent_cost_center_id"`
}

// GLAccount represents a general-ledger account classifying transactions
type GLAccount struct {
	Account string      `json:"gl_account" csv:"gl_account" validate:"required,len=6"`
	Name    string      `json:"gl_name" csv:"gl_name" validate:"required"`
	Type    AccountType `json:"account_type" csv:"account_type" validate:"required,oneof=OPEX CAPEX"`
	Group   string      `json:"gl_group" csv:"gl_group"`
}

// CalendarDay is one row of the fiscal calendar. Fiscal year and period
// mirror the calendar year and month; 4-4-5 calendars are out of scope.
type CalendarDay struct {
	Date         time.Time `json:"calendar_date" csv:"calendar_date"`
	FiscalYear   int       `json:"fiscal_year" csv:"fiscal_year"`
	FiscalPeriod int       `json:"fiscal_period" csv:"fiscal_period" validate:"min=1,max=12"`
	IsMonthEnd   bool      `json:"is_month_end" csv:"is_month_end"`
}

// BudgetCell is a single budget figure at the budget grain
// (fiscal year, fiscal period, GL account, cost center).
type BudgetCell struct {
	FiscalYear   int     `json:"fiscal_year" csv:"fiscal_year"`
	FiscalPeriod int     `json:"fiscal_period" csv:"fiscal_period" validate:"min=1,max=12"`
	GLAccount    string  `json:"gl_account" csv:"gl_account" validate:"required"`
	CostCenterID string  `json:"cost_center_id" csv:"cost_center_id" validate:"required"`
	Amount       float64 `json:"budget_amount" csv:"budget_amount" validate:"min=0"`
}

// GrainKey identifies the budget grain this cell occupies.
func (b BudgetCell) GrainKey() GrainKey {
	return GrainKey{
		FiscalYear:   b.FiscalYear,
		FiscalPeriod: b.FiscalPeriod,
		GLAccount:    b.GLAccount,
		CostCenterID: b.CostCenterID,
	}
}

// GrainKey is the unique key of the budget grain. It is comparable and
// usable as a map key for uniqueness and grouping checks.
type GrainKey struct {
	FiscalYear   int
	FiscalPeriod int
	GLAccount    string
	CostCenterID string
}

// ActualPosting is one dated financial transaction. Several postings may
// share a grain; together they sum to that cell's perturbed budget target.
type ActualPosting struct {
	PostingDate  time.Time    `json:"posting_date" csv:"posting_date"`
	FiscalYear   int          `json:"fiscal_year" csv:"fiscal_year"`
	FiscalPeriod int          `json:"fiscal_period" csv:"fiscal_period" validate:"min=1,max=12"`
	GLAccount    string       `json:"gl_account" csv:"gl_account" validate:"required"`
	CostCenterID string       `json:"cost_center_id" csv:"cost_center_id" validate:"required"`
	Amount       float64      `json:"actual_amount" csv:"actual_amount"`
	DocumentType DocumentType `json:"document_type" csv:"document_type"`
}

// Dataset bundles every generated table for one run. Tables are built in
// memory, validated as a whole, and only then written out.
type Dataset struct {
	CostCenters []CostCenter
	GLAccounts  []GLAccount
	Calendar    []CalendarDay
	Budget      []BudgetCell
	Actuals     []ActualPosting
}

// GLTypeByAccount returns a lookup from GL account code to account type.
func (d *Dataset) GLTypeByAccount() map[string]AccountType {
	types := make(map[string]AccountType, len(d.GLAccounts))
	for _, gl := range d.GLAccounts {
		types[gl.Account] = gl.Type
	}
	return types
}
