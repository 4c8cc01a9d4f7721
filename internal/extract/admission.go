package extract

import (
	"github.com/aexlabs/servicesync/internal/fno"
)

// RejectReason classifies why a change record was not admitted.
type RejectReason string

// ReasonMissingServiceID marks records without a service identifier,
// which have no linkage key for enrichment or reconciliation.
const ReasonMissingServiceID RejectReason = "missing service id"

// Admission is the tagged outcome of the admission gate.
type Admission struct {
	Accepted bool
	Reason   RejectReason
}

// Admit decides whether a change record can be processed. Rejected
// records are dropped from the run entirely.
func Admit(rec fno.ChangeRecord) Admission {
	if rec.NewServiceID == "" {
		return Admission{Reason: ReasonMissingServiceID}
	}
	return Admission{Accepted: true}
}
