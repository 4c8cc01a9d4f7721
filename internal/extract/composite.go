package extract

import (
	"github.com/aexlabs/servicesync/internal/fno"
)

// Composite is the enriched aggregate written to the snapshot: one
// change record plus whichever related entities were fetched. Absent
// sub-entities serialize as null, never as empty structures, so
// consumers can tell "not fetched" from "present but empty".
type Composite struct {
	NewServiceID    string              `json:"new_service_id"`
	EffectiveDate   string              `json:"effective_date"`
	Direction       string              `json:"direction"`
	ProductID       string              `json:"product_id"`
	ServiceDetails  *fno.ServiceDetail  `json:"service_details"`
	CustomerDetails *fno.CustomerDetail `json:"customer_details"`
	WorkOrders      fno.WorkOrderSet    `json:"work_orders"`
	ProductDetails  *fno.ProductDetail  `json:"product_details"`
}
