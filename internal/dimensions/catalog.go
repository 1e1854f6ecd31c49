package dimensions

import (
	"finsynth/pkg/contracts/domain"
)

// departments is the ordered catalog of department names. Cost centers are
// taken from the front of this list, so a smaller configured count always
// yields the same prefix.
var departments = []string{
	"FP&A", "Accounting", "Procurement", "Treasury", "Operations", "Sales Ops",
	"IT Finance", "Corporate", "R&D", "Manufacturing", "Logistics", "Facilities",
}

// managers is the ordered catalog of cost-center managers, parallel to departments
var managers = []string{
	"A. Patel", "J. Kim", "M. Chen", "S. Rivera", "D. Johnson", "L. Singh",
	"N. Garcia", "K. Brown", "R. Ahmed", "T. Nguyen", "P. Wilson", "E. Martinez",
}

// glCatalog is the ordered catalog of SAP-style GL account definitions
var glCatalog = []domain.GLAccount{
	{Account: "600000", Name: "Salaries & Wages", Type: domain.AccountTypeOPEX, Group: "Payroll"},
	{Account: "601000", Name: "Benefits", Type: domain.AccountTypeOPEX, Group: "Payroll"},
	{Account: "602000", Name: "Contractors", Type: domain.AccountTypeOPEX, Group: "Payroll"},
	{Account: "610000", Name: "Software & Subscriptions", Type: domain.AccountTypeOPEX, Group: "IT"},
	{Account: "611000", Name: "Cloud Infrastructure", Type: domain.AccountTypeOPEX, Group: "IT"},
	{Account: "620000", Name: "Travel & Entertainment", Type: domain.AccountTypeOPEX, Group: "G&A"},
	{Account: "630000", Name: "Marketing Spend", Type: domain.AccountTypeOPEX, Group: "Sales"},
	{Account: "640000", Name: "Office Supplies", Type: domain.AccountTypeOPEX, Group: "G&A"},
	{Account: "650000", Name: "Rent & Utilities", Type: domain.AccountTypeOPEX, Group: "Facilities"},
	{Account: "660000", Name: "Professional Services", Type: domain.AccountTypeOPEX, Group: "G&A"},
	{Account: "670000", Name: "Training & Education", Type: domain.AccountTypeOPEX, Group: "G&A"},
	{Account: "680000", Name: "Insurance", Type: domain.AccountTypeOPEX, Group: "G&A"},
	{Account: "700000", Name: "Capital Equipment", Type: domain.AccountTypeCAPEX, Group: "Capex"},
	{Account: "701000", Name: "IT Hardware", Type: domain.AccountTypeCAPEX, Group: "Capex"},
	{Account: "702000", Name: "Facility Improvements", Type: domain.AccountTypeCAPEX, Group: "Capex"},
	{Account: "710000", Name: "Depreciation", Type: domain.AccountTypeOPEX, Group: "G&A"},
	{Account: "720000", Name: "Freight & Shipping", Type: domain.AccountTypeOPEX, Group: "Ops"},
	{Account: "730000", Name: "Maintenance", Type: domain.AccountTypeOPEX, Group: "Facilities"},
}

// sparseGLCodes are accounts that deliberately skip some budget months, so
// the dataset shows the uneven posting behavior of real ledgers.
var sparseGLCodes = []string{"620000", "640000", "670000", "700000", "701000", "702000"}

// MaxCostCenters is the catalog size cap for cost centers
const MaxCostCenters = 12

// MaxGLAccounts is the catalog size cap for GL accounts
const MaxGLAccounts = 18

// SparseGLSet returns the sparse account codes present among the given
// accounts. Codes outside the truncated catalog are excluded.
func SparseGLSet(accounts []domain.GLAccount) map[string]bool {
	present := make(map[string]bool, len(accounts))
	for _, gl := range accounts {
		present[gl.Account] = true
	}
	sparse := make(map[string]bool, len(sparseGLCodes))
	for _, code := range sparseGLCodes {
		if present[code] {
			sparse[code] = true
		}
	}
	return sparse
}
