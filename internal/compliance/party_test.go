package compliance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crylonblue/blitzrechnung/internal/compliance"
	"github.com/crylonblue/blitzrechnung/internal/model"
)

func externalSnapshot() *model.PartySnapshot {
	return &model.PartySnapshot{
		ID:   "snap-1",
		Name: "Extern GmbH",
		Address: model.Address{
			Street:       "Ringstraße",
			StreetNumber: "5",
			Zip:          "80331",
			City:         "München",
			Country:      "DE",
		},
		Email:       "info@extern.de",
		VATID:       "DE987654321",
		TaxID:       "98/765/43210",
		BankDetails: &model.BankDetails{IBAN: "DE02120300000000202051", BankName: "DKB", BIC: "BYLADEM1001"},
		Contact:     &model.ContactPerson{Name: "Max Extern", Phone: "+49 89 123", Email: "max@extern.de"},
	}
}

func TestPartySource_SelfProjectsCompanyData(t *testing.T) {
	company := completeCompany()
	company.TaxID = "12/345/67890"

	party := compliance.SelfParty(company).Resolve()

	assert.Equal(t, company.Name, party.Name)
	assert.Equal(t, *company.Address, party.Address)
	assert.Equal(t, company.VATID, party.VATID)
	// Company-level tax id and contact are not carried on the self
	// path, only the VAT id is exposed.
	assert.Empty(t, party.TaxNumber)
	assert.Nil(t, party.Contact)
	assert.Nil(t, party.BankDetails)
	assert.False(t, party.NoRecipient)
}

func TestPartySource_SelfWithNilCompany(t *testing.T) {
	party := compliance.SelfParty(nil).Resolve()

	assert.Empty(t, party.Name)
	assert.Equal(t, "DE", party.Address.Country)
	assert.False(t, party.NoRecipient)
}

func TestPartySource_ExternalProjectsFullSnapshot(t *testing.T) {
	snap := externalSnapshot()

	party := compliance.ExternalParty(snap).Resolve()

	assert.Equal(t, "Extern GmbH", party.Name)
	assert.Equal(t, snap.Address, party.Address)
	assert.Equal(t, "DE987654321", party.VATID)
	assert.Equal(t, "98/765/43210", party.TaxNumber)
	require.NotNil(t, party.Contact)
	assert.Equal(t, "Max Extern", party.Contact.Name)
	require.NotNil(t, party.BankDetails)
	assert.Equal(t, snap.BankDetails.IBAN, party.BankDetails.IBAN)
	assert.Equal(t, []string{"info@extern.de"}, party.AdditionalInfo)
}

func TestPartySource_ExternalWithoutContact(t *testing.T) {
	snap := externalSnapshot()
	snap.Contact = nil

	party := compliance.ExternalParty(snap).Resolve()

	// Absent contact stays absent, never an object of empty fields
	assert.Nil(t, party.Contact)
}

func TestPartySource_ExternalNilSnapshotIsNoRecipient(t *testing.T) {
	party := compliance.ExternalParty(nil).Resolve()

	assert.True(t, party.NoRecipient)
	// Distinguishable from a party that merely has an empty name
	empty := compliance.SelfParty(nil).Resolve()
	assert.False(t, empty.NoRecipient)
}

func TestPartySourceFor_IsSelfWinsOverSnapshot(t *testing.T) {
	company := completeCompany()
	snap := externalSnapshot()

	source := compliance.PartySourceFor(true, snap, company)

	assert.Equal(t, compliance.SourceSelf, source.Kind())
	party := source.Resolve()
	assert.Equal(t, company.Name, party.Name)
}

func TestPartySourceFor_ExternalWhenNotSelf(t *testing.T) {
	source := compliance.PartySourceFor(false, externalSnapshot(), completeCompany())
	assert.Equal(t, compliance.SourceExternal, source.Kind())

	source = compliance.PartySourceFor(false, nil, completeCompany())
	assert.Equal(t, compliance.SourceNone, source.Kind())
}

func TestPartySource_ResolveCopiesContact(t *testing.T) {
	snap := externalSnapshot()

	party := compliance.ExternalParty(snap).Resolve()
	snap.Contact.Name = "changed"

	assert.Equal(t, "Max Extern", party.Contact.Name)
}
