package invoicelib_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crylonblue/blitzrechnung/pkg/invoicelib"
)

func TestFacade_MapToRenderable(t *testing.T) {
	company := &invoicelib.Company{
		Name:    "Muster GmbH",
		Address: &invoicelib.Address{Street: "Hauptstraße", StreetNumber: "1", Zip: "10115", City: "Berlin", Country: "DE"},
		VATID:   "DE123456789",
	}

	date := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)
	vatRate := decimal.NewFromInt(19)
	inv := &invoicelib.RawInvoice{
		Number:       "R-2024-001",
		Date:         &date,
		Status:       invoicelib.StatusCreated,
		SellerIsSelf: true,
		LineItems: []invoicelib.LineItem{
			{Description: "Beratung", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.RequireFromString("100.00"), VATRate: &vatRate},
		},
		BuyerSnapshot: &invoicelib.PartySnapshot{Name: "Acme GmbH"},
	}

	mapper := invoicelib.NewMapper(company)
	out := mapper.MapToRenderable(inv, nil, nil, "")

	require.NotNil(t, out)
	assert.Equal(t, "R-2024-001", out.BuyerReference)
	assert.Equal(t, invoicelib.Currency, out.Currency)
	assert.Equal(t, "Muster GmbH", out.Seller.Name)
}

func TestFacade_CheckCompleteness(t *testing.T) {
	result := invoicelib.CheckCompleteness(nil)

	assert.False(t, result.Complete)
	assert.Equal(t, []string{"Firmendaten"}, result.MissingFields)
}

func TestFacade_Normalize(t *testing.T) {
	result := invoicelib.Normalize([]invoicelib.LineItem{
		{Description: "A", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(10)},
	})

	require.Len(t, result.Items, 1)
	assert.Equal(t, "piece", result.Items[0].Unit)
	assert.True(t, result.DocumentTaxRate.Equal(decimal.NewFromInt(19)))
}

func TestFacade_PartySources(t *testing.T) {
	assert.NotPanics(t, func() {
		invoicelib.SelfParty(nil).Resolve()
		invoicelib.ExternalParty(nil).Resolve()
		invoicelib.NoParty().Resolve()
	})
}
