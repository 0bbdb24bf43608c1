package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// CompanyProfile is the letterhead, bank and invoice-customization data
// rendered onto every generated document. It lives in an editable YAML
// file so a shop can rebrand without a redeploy; absent values fall back
// to the documented defaults so document generation never fails on
// missing configuration.
type CompanyProfile struct {
	CompanyName string `mapstructure:"companyName" json:"company_name"`
	Tagline     string `mapstructure:"tagline" json:"tagline"`
	Address     string `mapstructure:"address" json:"address"`
	Phone       string `mapstructure:"phone" json:"phone"`
	Email       string `mapstructure:"email" json:"email"`
	GSTIN       string `mapstructure:"gstin" json:"gstin"`

	Bank    BankDetails  `mapstructure:"bank" json:"bank"`
	Invoice InvoiceStyle `mapstructure:"invoice" json:"invoice"`
}

// BankDetails is printed in the invoice payment block.
type BankDetails struct {
	BankName      string `mapstructure:"bankName" json:"bank_name"`
	AccountName   string `mapstructure:"accountName" json:"account_name"`
	AccountNumber string `mapstructure:"accountNumber" json:"account_number"`
	IFSC          string `mapstructure:"ifsc" json:"ifsc"`
	UPIID         string `mapstructure:"upiId" json:"upi_id"`
}

// InvoiceStyle carries the visual customization flags for rendering.
type InvoiceStyle struct {
	DefaultGSTRate float64 `mapstructure:"defaultGstRate" json:"default_gst_rate"`
	ShowLogo       bool    `mapstructure:"showLogo" json:"show_logo"`
	ShowSignature  bool    `mapstructure:"showSignature" json:"show_signature"`
	ShowQR         bool    `mapstructure:"showQr" json:"show_qr"`
	ShowFooter     bool    `mapstructure:"showFooter" json:"show_footer"`
	LogoURL        string  `mapstructure:"logoUrl" json:"logo_url"`
	SignatureURL   string  `mapstructure:"signatureUrl" json:"signature_url"`
	FontFamily     string  `mapstructure:"fontFamily" json:"font_family"`
	PaperSize      string  `mapstructure:"paperSize" json:"paper_size"`
	Orientation    string  `mapstructure:"orientation" json:"orientation"`
	AccentColor    string  `mapstructure:"accentColor" json:"accent_color"`
	WatermarkText  string  `mapstructure:"watermarkText" json:"watermark_text"`
	FooterNote     string  `mapstructure:"footerNote" json:"footer_note"`
}

// DefaultCompanyProfile returns the fallback profile used when no file is
// present.
func DefaultCompanyProfile() CompanyProfile {
	return CompanyProfile{
		CompanyName: "CraftShop",
		Tagline:     "Handcrafted goods",
		Address:     "Shop No. 1, Main Market",
		Phone:       "",
		Email:       "",
		GSTIN:       "",
		Bank: BankDetails{
			BankName:      "Bank Name",
			AccountName:   "CraftShop",
			AccountNumber: "XXXXXXXXXXXX",
			IFSC:          "XXXX0000000",
			UPIID:         "",
		},
		Invoice: InvoiceStyle{
			DefaultGSTRate: 18,
			ShowLogo:       true,
			ShowSignature:  true,
			ShowQR:         false,
			ShowFooter:     true,
			FontFamily:     "Helvetica",
			PaperSize:      "A4",
			Orientation:    "portrait",
			AccentColor:    "#1a1f36",
			WatermarkText:  "PAID",
			FooterNote:     "Thank you for your business!",
		},
	}
}

// ProfileHolder serves the current company profile and swaps it atomically
// on file change.
type ProfileHolder struct {
	current atomic.Value // holds CompanyProfile
}

// NewProfileHolder loads company.yml and watches it for edits.
func NewProfileHolder() (*ProfileHolder, error) {
	v := viper.New()

	v.SetConfigName("company")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/backoffice")
	v.AddConfigPath(".")

	v.SetEnvPrefix("BACKOFFICE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultCompanyProfile()
	v.SetDefault("company", defaults)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg, err := unmarshalProfile(v, defaults)
	if err != nil {
		return nil, err
	}

	holder := &ProfileHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		updated, err := unmarshalProfile(v, defaults)
		if err != nil {
			log.Printf("[company-config] reload failed: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[company-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

// NewStaticProfileHolder wraps a fixed profile for callers that do not
// watch a config file, such as tests and one-shot tools.
func NewStaticProfileHolder(p CompanyProfile) *ProfileHolder {
	holder := &ProfileHolder{}
	holder.current.Store(p)
	return holder
}

// Get returns the current profile.
func (h *ProfileHolder) Get() CompanyProfile {
	return h.current.Load().(CompanyProfile)
}

func unmarshalProfile(v *viper.Viper, defaults CompanyProfile) (CompanyProfile, error) {
	var cfg CompanyProfile
	if err := v.UnmarshalKey("company", &cfg); err != nil {
		return CompanyProfile{}, err
	}
	applyProfileDefaults(&cfg, defaults)
	if err := validateProfile(cfg); err != nil {
		return CompanyProfile{}, err
	}
	return cfg, nil
}

func applyProfileDefaults(cfg *CompanyProfile, defaults CompanyProfile) {
	if strings.TrimSpace(cfg.CompanyName) == "" {
		cfg.CompanyName = defaults.CompanyName
	}
	if cfg.Invoice.DefaultGSTRate == 0 && defaults.Invoice.DefaultGSTRate != 0 {
		cfg.Invoice.DefaultGSTRate = defaults.Invoice.DefaultGSTRate
	}
	if strings.TrimSpace(cfg.Invoice.FontFamily) == "" {
		cfg.Invoice.FontFamily = defaults.Invoice.FontFamily
	}
	if strings.TrimSpace(cfg.Invoice.PaperSize) == "" {
		cfg.Invoice.PaperSize = defaults.Invoice.PaperSize
	}
	if strings.TrimSpace(cfg.Invoice.Orientation) == "" {
		cfg.Invoice.Orientation = defaults.Invoice.Orientation
	}
	if strings.TrimSpace(cfg.Invoice.AccentColor) == "" {
		cfg.Invoice.AccentColor = defaults.Invoice.AccentColor
	}
	if strings.TrimSpace(cfg.Invoice.WatermarkText) == "" {
		cfg.Invoice.WatermarkText = defaults.Invoice.WatermarkText
	}
	if strings.TrimSpace(cfg.Bank.BankName) == "" {
		cfg.Bank = defaults.Bank
	}
}

func validateProfile(cfg CompanyProfile) error {
	if cfg.Invoice.DefaultGSTRate < 0 || cfg.Invoice.DefaultGSTRate > 28 {
		return errors.New("company.invoice.defaultGstRate out of range")
	}
	return nil
}
