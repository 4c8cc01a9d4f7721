// Package reconcile implements stage two of the pipeline: it reads the
// composite snapshot, normalizes date fields, and applies sparse,
// field-level updates to matching CRM contacts keyed by email.
package reconcile

import (
	"context"

	"github.com/google/uuid"

	"github.com/aexlabs/servicesync/internal/extract"
	"github.com/aexlabs/servicesync/internal/logger"
)

// CRMAPI is the slice of the HubSpot client the engine needs.
type CRMAPI interface {
	FindContactByEmail(ctx context.Context, email string) (string, error)
	UpdateContact(ctx context.Context, contactID string, properties map[string]any) error
}

// Status classifies the outcome of one record's reconciliation.
type Status string

const (
	// StatusUpdated means the contact patch was applied.
	StatusUpdated Status = "updated"

	// StatusSkippedNoEmail means the record had no resolvable email.
	// Not an error: the record is simply out of the CRM's reach.
	StatusSkippedNoEmail Status = "skipped_no_email"

	// StatusContactNotFound means the email matched no contact or the
	// search itself failed.
	StatusContactNotFound Status = "contact_not_found"

	// StatusUpdateFailed means the contact was found but the patch
	// request failed.
	StatusUpdateFailed Status = "update_failed"
)

// Outcome is the per-record result of a reconciliation run.
type Outcome struct {
	ServiceID string
	Email     string
	Status    Status
	Err       string
}

// Report aggregates the outcomes of one reconciliation run.
type Report struct {
	RunID    string
	Outcomes []Outcome
}

// Count returns how many outcomes have the given status.
func (r *Report) Count(status Status) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}

// Engine applies composite records to CRM contacts one at a time.
// Records are independent: a failure on one never aborts the rest, and
// nothing is retried.
type Engine struct {
	crm CRMAPI
}

// NewEngine creates a reconciliation engine over the given CRM client.
func NewEngine(crm CRMAPI) *Engine {
	return &Engine{crm: crm}
}

// Run reconciles every record in order and returns the run report.
func (e *Engine) Run(ctx context.Context, records []extract.Composite) *Report {
	report := &Report{RunID: uuid.NewString()}
	for _, rec := range records {
		report.Outcomes = append(report.Outcomes, e.reconcile(ctx, rec))
	}
	return report
}

func (e *Engine) reconcile(ctx context.Context, rec extract.Composite) Outcome {
	out := Outcome{ServiceID: rec.NewServiceID}

	if rec.CustomerDetails == nil || rec.CustomerDetails.Email == "" {
		logger.Warn("No email found for the customer. Skipping update.")
		out.Status = StatusSkippedNoEmail
		return out
	}
	email := rec.CustomerDetails.Email
	out.Email = email

	props := buildProperties(rec)

	contactID, err := e.crm.FindContactByEmail(ctx, email)
	if err != nil {
		logger.Error("Contact %s not found or search failed: %v", email, err)
		out.Status = StatusContactNotFound
		out.Err = err.Error()
		return out
	}

	if err := e.crm.UpdateContact(ctx, contactID, props); err != nil {
		logger.Error("Failed to update contact %s: %v", email, err)
		out.Status = StatusUpdateFailed
		out.Err = err.Error()
		return out
	}

	logger.Info("Contact %s updated successfully.", email)
	out.Status = StatusUpdated
	return out
}

// buildProperties maps one composite record to CRM contact fields.
// Sparse by construction: a key is only set when its value is known,
// so an update never clears an existing CRM field. The effective date
// passes through as an opaque string; the on-network date goes through
// the millisecond ISO rule.
func buildProperties(rec extract.Composite) map[string]any {
	props := make(map[string]any)

	setString(props, "service_id", rec.NewServiceID)
	setString(props, "effective_date", rec.EffectiveDate)
	setString(props, "service_status", rec.Direction)
	setString(props, "product_id", rec.ProductID)

	if svc := rec.ServiceDetails; svc != nil {
		if svc.OnNetwork != nil {
			props["on_network"] = *svc.OnNetwork
		}
		if ms, ok := EpochMillisISO(svc.OnNetworkDate); ok {
			props["on_network_date_aex"] = ms
		}
	}

	if prod := rec.ProductDetails; prod != nil {
		setString(props, "product", prod.Name)
		if len(prod.Pricing) > 0 && prod.Pricing[0].Value != nil {
			props["product_price"] = *prod.Pricing[0].Value
		}
	}

	return props
}

func setString(props map[string]any, key, value string) {
	if value != "" {
		props[key] = value
	}
}
