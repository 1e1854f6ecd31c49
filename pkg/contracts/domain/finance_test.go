package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBudgetCellGrainKey(t *testing.T) {
	a := BudgetCell{FiscalYear: 2024, FiscalPeriod: 3, GLAccount: "600000", CostCenterID: "CC0001", Amount: 100}
	b := BudgetCell{FiscalYear: 2024, FiscalPeriod: 3, GLAccount: "600000", CostCenterID: "CC0001", Amount: 999}

	assert.Equal(t, a.GrainKey(), b.GrainKey(), "amount is not part of the grain")
	assert.NotEqual(t, a.GrainKey(), BudgetCell{FiscalYear: 2024, FiscalPeriod: 4, GLAccount: "600000", CostCenterID: "CC0001"}.GrainKey())
}

func TestDatasetGLTypeByAccount(t *testing.T) {
	ds := &Dataset{
		GLAccounts: []GLAccount{
			{Account: "600000", Type: AccountTypeOPEX},
			{Account: "700000", Type: AccountTypeCAPEX},
		},
	}

	types := ds.GLTypeByAccount()
	assert.Equal(t, AccountTypeOPEX, types["600000"])
	assert.Equal(t, AccountTypeCAPEX, types["700000"])
	assert.Empty(t, types["999999"])
}

func TestDocumentTypes(t *testing.T) {
	assert.Len(t, DocumentTypes, 5)
	assert.Equal(t, DocumentType("SA"), DocumentTypes[0])
}
