package domain_test

import (
	"testing"

	"github.com/contalibre/contalibre/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeAccountName(t *testing.T) {
	assert.Equal(t, "CAJA", domain.NormalizeAccountName("  caja  "))
	assert.Equal(t, "BANCO NACIONAL", domain.NormalizeAccountName("Banco Nacional"))
	assert.Equal(t, "", domain.NormalizeAccountName("   "))
}

func TestAccountTypeIsValid(t *testing.T) {
	for _, at := range domain.AccountTypes {
		assert.True(t, at.IsValid(), "expected %s to be valid", at)
	}
	assert.False(t, domain.AccountType("BANANA").IsValid())
	assert.False(t, domain.AccountType("asset").IsValid())
}

func TestAccountTypeIsCreditNatural(t *testing.T) {
	assert.False(t, domain.Asset.IsCreditNatural())
	assert.False(t, domain.Expense.IsCreditNatural())
	assert.True(t, domain.Liability.IsCreditNatural())
	assert.True(t, domain.Equity.IsCreditNatural())
	assert.True(t, domain.Revenue.IsCreditNatural())
}
