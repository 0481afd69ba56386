// Package invoicelib provides the public API for the invoice
// compliance and mapping layer.
//
// It exposes the core types and operations for checking company
// master-data completeness, normalizing invoice line items, and
// mapping raw invoice records into the canonical renderable form
// consumed by PDF and XRechnung/ZUGFeRD renderers.
//
// Example usage:
//
//	mapper := invoicelib.NewMapper(company)
//	renderable := mapper.MapToRenderable(invoice, nil, nil, "")
//	fmt.Println(renderable.BuyerReference)
package invoicelib

import (
	"github.com/crylonblue/blitzrechnung/internal/compliance"
	"github.com/crylonblue/blitzrechnung/internal/model"
)

// Re-export core types for public API
type (
	Address           = model.Address
	BankDetails       = model.BankDetails
	ContactPerson     = model.ContactPerson
	PartySnapshot     = model.PartySnapshot
	Contact           = model.Contact
	Company           = model.Company
	LineItem          = model.LineItem
	RawInvoice        = model.RawInvoice
	RenderableInvoice = model.RenderableInvoice
	RenderableParty   = model.RenderableParty
	InvoiceStatus     = model.InvoiceStatus
)

// Re-export invoice statuses
const (
	StatusDraft   = model.StatusDraft
	StatusCreated = model.StatusCreated
	StatusSent    = model.StatusSent
	StatusPaid    = model.StatusPaid
)

// Currency is the fixed invoice currency
const Currency = model.Currency

// Re-export compliance operations
type (
	Mapper             = compliance.Mapper
	MapperOption       = compliance.MapperOption
	CompletenessResult = compliance.CompletenessResult
	NormalizeResult    = compliance.NormalizeResult
	PartySource        = compliance.PartySource
)

// NewMapper creates a mapper for the given issuing company
func NewMapper(company *Company, opts ...MapperOption) *Mapper {
	return compliance.NewMapper(company, opts...)
}

// WithClock overrides the mapper's clock
var WithClock = compliance.WithClock

// CheckCompleteness reports the legal master-data fields a company is
// still missing
func CheckCompleteness(company *Company) CompletenessResult {
	return compliance.CheckCompleteness(company)
}

// Normalize fills line item defaults and derives the document tax
// rate
func Normalize(items []LineItem) NormalizeResult {
	return compliance.Normalize(items)
}

// Re-export party source constructors
var (
	SelfParty     = compliance.SelfParty
	ExternalParty = compliance.ExternalParty
	NoParty       = compliance.NoParty
)

// Re-export error types
type ValidationError = model.ValidationError
