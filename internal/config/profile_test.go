package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultCompanyProfile(t *testing.T) {
	p := DefaultCompanyProfile()
	assert.Equal(t, "CraftShop", p.CompanyName)
	assert.Equal(t, float64(18), p.Invoice.DefaultGSTRate)
	assert.NotEmpty(t, p.Bank.BankName)
	assert.NoError(t, validateProfile(p))
}

func TestApplyProfileDefaultsFillsBlanks(t *testing.T) {
	defaults := DefaultCompanyProfile()
	cfg := CompanyProfile{}
	applyProfileDefaults(&cfg, defaults)

	assert.Equal(t, "CraftShop", cfg.CompanyName)
	assert.Equal(t, float64(18), cfg.Invoice.DefaultGSTRate)
	assert.Equal(t, defaults.Bank, cfg.Bank)
	assert.Equal(t, "A4", cfg.Invoice.PaperSize)
}

func TestApplyProfileDefaultsKeepsExplicitValues(t *testing.T) {
	defaults := DefaultCompanyProfile()
	cfg := CompanyProfile{
		CompanyName: "Meera Handicrafts",
		Invoice:     InvoiceStyle{DefaultGSTRate: 5, AccentColor: "#aa3355"},
	}
	applyProfileDefaults(&cfg, defaults)

	assert.Equal(t, "Meera Handicrafts", cfg.CompanyName)
	assert.Equal(t, float64(5), cfg.Invoice.DefaultGSTRate)
	assert.Equal(t, "#aa3355", cfg.Invoice.AccentColor)
}

func TestValidateProfileRejectsBadRate(t *testing.T) {
	cfg := DefaultCompanyProfile()
	cfg.Invoice.DefaultGSTRate = 40
	assert.Error(t, validateProfile(cfg))
}
