package compliance

import (
	"strings"
	"time"

	"github.com/crylonblue/blitzrechnung/internal/model"
)

// Mapper builds the canonical RenderableInvoice from a raw invoice
// record and party snapshots. It is a pure transformation: no I/O, no
// shared state, identical inputs yield identical output. The only
// time-dependent behavior is the invoice-date fallback for drafts.
type Mapper struct {
	company *model.Company
	now     func() time.Time
}

// MapperOption configures a Mapper
type MapperOption func(*Mapper)

// WithClock overrides the clock used for the draft invoice-date
// fallback
func WithClock(now func() time.Time) MapperOption {
	return func(m *Mapper) {
		m.now = now
	}
}

// NewMapper creates a mapper for the given issuing company. The
// company may be nil; self parties then resolve to the empty-seller
// placeholder. Callers are expected to have passed the completeness
// gate before mapping a finalized invoice with a self seller.
func NewMapper(company *model.Company, opts ...MapperOption) *Mapper {
	m := &Mapper{
		company: company,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// MapToRenderable resolves parties, normalizes lines, and assembles
// the renderable invoice. It never fails for missing optional data:
// absent inputs become sentinels and defaults so a visibly incomplete
// document still renders. Snapshots default to the ones embedded in
// the invoice record when not passed explicitly.
func (m *Mapper) MapToRenderable(inv *model.RawInvoice, sellerSnap, buyerSnap *model.PartySnapshot, logoURL string) *model.RenderableInvoice {
	if sellerSnap == nil {
		sellerSnap = inv.SellerSnapshot
	}
	if buyerSnap == nil {
		buyerSnap = inv.BuyerSnapshot
	}

	norm := Normalize(inv.LineItems)

	// Seller is always structurally present. A side with no data at
	// all degrades to the empty placeholder, never to nil and never
	// to the recipient sentinel.
	sellerSource := PartySourceFor(inv.SellerIsSelf, sellerSnap, m.company)
	var seller model.RenderableParty
	if sellerSource.Kind() == SourceNone {
		seller = EmptySellerParty()
	} else {
		seller = sellerSource.Resolve()
	}

	// An absent buyer is a valid business state, represented by the
	// no-recipient sentinel. Buyer snapshots taken from seller-capable
	// contacts may carry bank details; those never reach the output,
	// only the seller contributes to the footer block.
	buyer := PartySourceFor(inv.BuyerIsSelf, buyerSnap, m.company).Resolve()
	buyer.BankDetails = nil

	bankDetails := m.resolveBankDetails(inv, &seller)

	invoiceDate := m.now()
	if inv.Date != nil {
		invoiceDate = *inv.Date
	}

	subtotal, vat, total := inv.Subtotal, inv.VATAmount, inv.TotalAmount
	if subtotal.IsZero() && vat.IsZero() && total.IsZero() {
		subtotal, vat, total = DocumentTotals(norm.Items)
	}

	if logoURL == "" && m.company != nil {
		logoURL = m.company.LogoURL
	}

	return &model.RenderableInvoice{
		InvoiceNumber: inv.Number,
		InvoiceDate:   invoiceDate,
		ServiceDate:   invoiceDate,
		Seller:        seller,
		Customer:      buyer,
		Items:         norm.Items,
		TaxRate:       norm.DocumentTaxRate,
		Subtotal:      subtotal,
		VATAmount:     vat,
		TotalAmount:   total,
		Currency:      model.Currency,
		LogoURL:       logoURL,
		BankDetails:   bankDetails,
		// BR-DE-15: the buyer reference must not be empty once an
		// invoice number exists; the number is the fallback value.
		BuyerReference: inv.Number,
	}
}

// resolveBankDetails is the single place bank details are sourced.
// External sellers contribute them through their snapshot; self
// sellers through the company record. The block is emitted only when
// an IBAN is present, never as a struct of empty strings.
func (m *Mapper) resolveBankDetails(inv *model.RawInvoice, seller *model.RenderableParty) *model.RenderableBankDetails {
	bd := seller.BankDetails
	if bd == nil && inv.SellerIsSelf && m.company != nil {
		bd = m.company.BankDetails
	}

	// Bank details reach renderers through the document footer block
	// only.
	seller.BankDetails = nil

	if bd.Empty() || strings.TrimSpace(bd.IBAN) == "" {
		return nil
	}
	return &model.RenderableBankDetails{
		IBAN:     bd.IBAN,
		BankName: bd.BankName,
		BIC:      bd.BIC,
	}
}
