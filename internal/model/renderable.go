package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RenderableParty is the uniform party shape handed to renderers.
// Seller and customer are always structurally present; NoRecipient
// marks a buyer for which no recipient was specified, so renderers
// can show a placeholder instead of blank fields.
type RenderableParty struct {
	Name           string         `json:"name"`
	Address        Address        `json:"address"`
	VATID          string         `json:"vat_id,omitempty"`
	TaxNumber      string         `json:"tax_number,omitempty"`
	Contact        *ContactPerson `json:"contact,omitempty"`
	BankDetails    *BankDetails   `json:"bank_details,omitempty"`
	AdditionalInfo []string       `json:"additional_info,omitempty"`
	NoRecipient    bool           `json:"no_recipient,omitempty"`
}

// RenderableLineItem is a normalized line with all defaults filled
type RenderableLineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	VATRate     decimal.Decimal `json:"vat_rate"`
	Total       decimal.Decimal `json:"total"`
}

// RenderableBankDetails carries the seller's payment account for the
// invoice footer. Only emitted when an IBAN is present.
type RenderableBankDetails struct {
	IBAN     string `json:"iban"`
	BankName string `json:"bank_name,omitempty"`
	BIC      string `json:"bic,omitempty"`
}

// RenderableInvoice is the canonical, fully-resolved invoice handed
// to the PDF and XML renderers. It is derived on demand and never
// persisted.
type RenderableInvoice struct {
	InvoiceNumber string               `json:"invoice_number"`
	InvoiceDate   time.Time            `json:"invoice_date"`
	ServiceDate   time.Time            `json:"service_date"`
	Seller        RenderableParty      `json:"seller"`
	Customer      RenderableParty      `json:"customer"`
	Items         []RenderableLineItem `json:"items"`
	TaxRate       decimal.Decimal      `json:"tax_rate"`
	Subtotal      decimal.Decimal      `json:"subtotal"`
	VATAmount     decimal.Decimal      `json:"vat_amount"`
	TotalAmount   decimal.Decimal      `json:"total_amount"`
	Currency      string               `json:"currency"`
	Note          string               `json:"note,omitempty"`
	LogoURL       string               `json:"logo_url,omitempty"`

	// XRechnung compliance fields: the seller contact travels inside
	// Seller; BuyerReference falls back to the invoice number so the
	// mandatory field is never left empty (BR-DE-15).
	BankDetails    *RenderableBankDetails `json:"bank_details,omitempty"`
	BuyerReference string                 `json:"buyer_reference,omitempty"`
}
