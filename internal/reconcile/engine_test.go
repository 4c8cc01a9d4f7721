package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aexlabs/servicesync/internal/extract"
	"github.com/aexlabs/servicesync/internal/fno"
	"github.com/aexlabs/servicesync/internal/hubspot"
)

type contactUpdate struct {
	contactID string
	props     map[string]any
}

// fakeCRM is an in-memory CRMAPI for engine tests.
type fakeCRM struct {
	contacts  map[string]string // email -> contact id
	updateErr error

	searches []string
	updates  []contactUpdate
}

func (f *fakeCRM) FindContactByEmail(_ context.Context, email string) (string, error) {
	f.searches = append(f.searches, email)
	if id, ok := f.contacts[email]; ok {
		return id, nil
	}
	return "", hubspot.ErrContactNotFound
}

func (f *fakeCRM) UpdateContact(_ context.Context, contactID string, props map[string]any) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates = append(f.updates, contactUpdate{contactID: contactID, props: props})
	return nil
}

func fullRecord() extract.Composite {
	onNetwork := true
	price := 79.99
	return extract.Composite{
		NewServiceID:  "svc-1",
		EffectiveDate: "2024-03-05",
		Direction:     "activation",
		ProductID:     "prod-9",
		ServiceDetails: &fno.ServiceDetail{
			CustomerID:    "cust-7",
			OnNetwork:     &onNetwork,
			OnNetworkDate: "2024-03-01T00:00:00Z",
		},
		CustomerDetails: &fno.CustomerDetail{Email: "ops@acme.test"},
		ProductDetails: &fno.ProductDetail{
			Name:    "Fibre 1000",
			Pricing: []fno.PricingEntry{{Value: &price}, {Value: nil}},
		},
	}
}

func TestRun_UpdatesMatchedContact(t *testing.T) {
	crm := &fakeCRM{contacts: map[string]string{"ops@acme.test": "201"}}

	report := NewEngine(crm).Run(context.Background(), []extract.Composite{fullRecord()})

	require.Len(t, report.Outcomes, 1)
	assert.Equal(t, StatusUpdated, report.Outcomes[0].Status)
	assert.Equal(t, []string{"ops@acme.test"}, crm.searches)

	require.Len(t, crm.updates, 1)
	assert.Equal(t, "201", crm.updates[0].contactID)
	props := crm.updates[0].props
	assert.Equal(t, "svc-1", props["service_id"])
	assert.Equal(t, "2024-03-05", props["effective_date"]) // opaque pass-through
	assert.Equal(t, "activation", props["service_status"])
	assert.Equal(t, "prod-9", props["product_id"])
	assert.Equal(t, true, props["on_network"])
	assert.Equal(t, int64(1709251200000), props["on_network_date_aex"]) // milliseconds
	assert.Equal(t, "Fibre 1000", props["product"])
	assert.Equal(t, 79.99, props["product_price"])
}

func TestRun_SkipsRecordsWithoutEmail(t *testing.T) {
	crm := &fakeCRM{contacts: map[string]string{"ops@acme.test": "201"}}

	records := []extract.Composite{
		{NewServiceID: "svc-1"}, // no customer details at all
		{NewServiceID: "svc-2", CustomerDetails: &fno.CustomerDetail{Name: "Acme"}}, // no email
		fullRecord(),
	}

	report := NewEngine(crm).Run(context.Background(), records)

	require.Len(t, report.Outcomes, 3)
	assert.Equal(t, StatusSkippedNoEmail, report.Outcomes[0].Status)
	assert.Equal(t, StatusSkippedNoEmail, report.Outcomes[1].Status)
	assert.Equal(t, StatusUpdated, report.Outcomes[2].Status)

	// No search or patch traffic for the skipped records.
	assert.Equal(t, []string{"ops@acme.test"}, crm.searches)
	assert.Len(t, crm.updates, 1)

	assert.Equal(t, 2, report.Count(StatusSkippedNoEmail))
	assert.Equal(t, 1, report.Count(StatusUpdated))
}

func TestRun_ContactNotFoundContinues(t *testing.T) {
	crm := &fakeCRM{contacts: map[string]string{"ops@acme.test": "201"}}

	missing := fullRecord()
	missing.CustomerDetails = &fno.CustomerDetail{Email: "ghost@acme.test"}

	report := NewEngine(crm).Run(context.Background(), []extract.Composite{missing, fullRecord()})

	require.Len(t, report.Outcomes, 2)
	assert.Equal(t, StatusContactNotFound, report.Outcomes[0].Status)
	assert.NotEmpty(t, report.Outcomes[0].Err)
	assert.Equal(t, StatusUpdated, report.Outcomes[1].Status)
	assert.Len(t, crm.updates, 1)
}

func TestRun_UpdateFailureContinues(t *testing.T) {
	crm := &fakeCRM{
		contacts:  map[string]string{"ops@acme.test": "201"},
		updateErr: errors.New("rate limited"),
	}

	report := NewEngine(crm).Run(context.Background(), []extract.Composite{fullRecord(), fullRecord()})

	require.Len(t, report.Outcomes, 2)
	assert.Equal(t, StatusUpdateFailed, report.Outcomes[0].Status)
	assert.Equal(t, StatusUpdateFailed, report.Outcomes[1].Status)
	// Both records were attempted despite the first failure.
	assert.Len(t, crm.searches, 2)
}

func TestBuildProperties_SparseInvariant(t *testing.T) {
	records := []extract.Composite{
		fullRecord(),
		{},
		{NewServiceID: "svc-1"},
		{NewServiceID: "svc-1", ServiceDetails: &fno.ServiceDetail{OnNetworkDate: "bogus"}},
		{NewServiceID: "svc-1", ProductDetails: &fno.ProductDetail{Pricing: []fno.PricingEntry{{}}}},
	}

	for _, rec := range records {
		props := buildProperties(rec)
		for key, value := range props {
			assert.NotNil(t, value, "key %q must never carry a nil value", key)
		}
	}
}

func TestBuildProperties_OmitsUnknownFields(t *testing.T) {
	props := buildProperties(extract.Composite{NewServiceID: "svc-1"})

	assert.Equal(t, map[string]any{"service_id": "svc-1"}, props)
}

func TestBuildProperties_MalformedOnNetworkDateOmitted(t *testing.T) {
	rec := fullRecord()
	rec.ServiceDetails.OnNetworkDate = "soon"

	props := buildProperties(rec)

	_, present := props["on_network_date_aex"]
	assert.False(t, present)
	// The rest of the payload is unaffected.
	assert.Equal(t, true, props["on_network"])
}

func TestBuildProperties_FirstPricingEntryWins(t *testing.T) {
	first, second := 10.0, 20.0
	rec := fullRecord()
	rec.ProductDetails.Pricing = []fno.PricingEntry{{Value: &first}, {Value: &second}}

	props := buildProperties(rec)
	assert.Equal(t, 10.0, props["product_price"])
}

func TestBuildProperties_NoPricingNoPrice(t *testing.T) {
	rec := fullRecord()
	rec.ProductDetails.Pricing = nil

	props := buildProperties(rec)
	_, present := props["product_price"]
	assert.False(t, present)
	assert.Equal(t, "Fibre 1000", props["product"])
}
