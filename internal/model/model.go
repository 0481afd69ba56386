package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the lifecycle state of an invoice
type InvoiceStatus string

const (
	StatusDraft   InvoiceStatus = "draft"
	StatusCreated InvoiceStatus = "created"
	StatusSent    InvoiceStatus = "sent"
	StatusPaid    InvoiceStatus = "paid"
)

// Currency is fixed for the German/EU market
const Currency = "EUR"

// Address represents a postal address.
// Country is an ISO 3166-1 alpha-2 code.
type Address struct {
	Street       string `json:"street"`
	StreetNumber string `json:"streetnumber"`
	Zip          string `json:"zip"`
	City         string `json:"city"`
	Country      string `json:"country"`
}

// BankDetails holds payment account data. All fields optional.
type BankDetails struct {
	IBAN     string `json:"iban,omitempty"`
	BankName string `json:"bank_name,omitempty"`
	BIC      string `json:"bic,omitempty"`
}

// Empty reports whether no field carries a value
func (b *BankDetails) Empty() bool {
	if b == nil {
		return true
	}
	return strings.TrimSpace(b.IBAN) == "" &&
		strings.TrimSpace(b.BankName) == "" &&
		strings.TrimSpace(b.BIC) == ""
}

// ContactPerson is the seller contact block required by some
// e-invoice profiles (XRechnung BR-DE-2)
type ContactPerson struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// PartySnapshot is a frozen projection of a party at invoice time.
// It is created once by copying fields out of a live Contact or
// Company record and never re-read from the source, so issued
// documents stay stable even if the contact is later edited or
// deleted.
type PartySnapshot struct {
	ID                  string         `json:"id"`
	Name                string         `json:"name"`
	Address             Address        `json:"address"`
	Email               string         `json:"email,omitempty"`
	VATID               string         `json:"vat_id,omitempty"`
	TaxID               string         `json:"tax_id,omitempty"`
	InvoiceNumberPrefix string         `json:"invoice_number_prefix,omitempty"`
	BankDetails         *BankDetails   `json:"bank_details,omitempty"`
	Contact             *ContactPerson `json:"contact,omitempty"`
}

// Contact is a live external-party master record
type Contact struct {
	ID                  string         `json:"id"`
	CompanyID           string         `json:"company_id"`
	Name                string         `json:"name"`
	Address             Address        `json:"address"`
	Email               string         `json:"email,omitempty"`
	VATID               string         `json:"vat_id,omitempty"`
	TaxID               string         `json:"tax_id,omitempty"`
	InvoiceNumberPrefix string         `json:"invoice_number_prefix,omitempty"`
	BankDetails         *BankDetails   `json:"bank_details,omitempty"`
	Contact             *ContactPerson `json:"contact,omitempty"`
	CanBeSeller         bool           `json:"can_be_seller"`
}

// Snapshot freezes the contact into a PartySnapshot by value.
// Seller-only fields (tax id, invoice-number prefix, bank details)
// are stripped for contacts that cannot act as sellers.
func (c *Contact) Snapshot() PartySnapshot {
	id := c.ID
	if id == "" {
		id = uuid.NewString()
	}

	snap := PartySnapshot{
		ID:      id,
		Name:    c.Name,
		Address: c.Address,
		Email:   c.Email,
		VATID:   c.VATID,
	}

	if c.CanBeSeller {
		snap.TaxID = c.TaxID
		snap.InvoiceNumberPrefix = c.InvoiceNumberPrefix
		if !c.BankDetails.Empty() {
			bd := *c.BankDetails
			snap.BankDetails = &bd
		}
	}

	if c.Contact != nil {
		cp := *c.Contact
		snap.Contact = &cp
	}

	return snap
}

// Company is the issuing tenant's own master data record
type Company struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Address     *Address     `json:"address,omitempty"`
	VATID       string       `json:"vat_id,omitempty"`
	TaxID       string       `json:"tax_id,omitempty"`
	BankDetails *BankDetails `json:"bank_details,omitempty"`
	LogoURL     string       `json:"logo_url,omitempty"`
}

// LineItem represents a raw invoice line as stored.
// VATRate is a pointer because 0% is a legitimate explicit rate,
// distinct from "not set". Total is a pointer for the same reason:
// a persisted total wins over the derived quantity*price product.
type LineItem struct {
	ID          string           `json:"id"`
	Description string           `json:"description"`
	Quantity    decimal.Decimal  `json:"quantity"`
	Unit        string           `json:"unit,omitempty"`
	UnitPrice   decimal.Decimal  `json:"unit_price"`
	VATRate     *decimal.Decimal `json:"vat_rate,omitempty"`
	Total       *decimal.Decimal `json:"total,omitempty"`
}

// RawInvoice is the mutable invoice record owned by the persistence
// layer. Number stays empty until finalization.
type RawInvoice struct {
	ID             string          `json:"id"`
	Number         string          `json:"invoice_number,omitempty"`
	Date           *time.Time      `json:"invoice_date,omitempty"`
	DueDate        *time.Time      `json:"due_date,omitempty"`
	Status         InvoiceStatus   `json:"status"`
	SellerIsSelf   bool            `json:"seller_is_self"`
	BuyerIsSelf    bool            `json:"buyer_is_self"`
	SellerSnapshot *PartySnapshot  `json:"seller_snapshot,omitempty"`
	BuyerSnapshot  *PartySnapshot  `json:"buyer_snapshot,omitempty"`
	LineItems      []LineItem      `json:"line_items"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	VATAmount      decimal.Decimal `json:"vat_amount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	PDFPath        string          `json:"pdf_path,omitempty"`
	XMLPath        string          `json:"xml_path,omitempty"`
}
