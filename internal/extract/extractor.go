package extract

import (
	"context"

	"github.com/google/uuid"

	"github.com/aexlabs/servicesync/internal/fno"
	"github.com/aexlabs/servicesync/internal/logger"
)

// PageSize is the change feed's page size. A page with fewer items is
// treated as the last one; see lastPage.
const PageSize = 10

// SourceAPI is the slice of the AEX client the extractor needs.
type SourceAPI interface {
	ServiceChanges(ctx context.Context, updatedAfter string, page int) (*fno.ChangePage, error)
	Service(ctx context.Context, serviceID string) (*fno.ServiceDetail, error)
	Customer(ctx context.Context, customerID string) (*fno.CustomerDetail, error)
	WorkOrders(ctx context.Context, serviceID string) (fno.WorkOrderSet, error)
	Product(ctx context.Context, productID string) (*fno.ProductDetail, error)
}

// Rejection records one change record dropped by the admission gate.
type Rejection struct {
	Record fno.ChangeRecord
	Reason RejectReason
}

// Report summarises one extraction run.
type Report struct {
	RunID       string
	WindowStart string
	Pages       int
	ItemsSeen   int
	Records     int
	Rejections  []Rejection
}

// Extractor drives paginated extraction and enrichment of service
// changes into composite records. Execution is fully sequential: one
// request completes before the next is issued.
type Extractor struct {
	api      SourceAPI
	pageSize int
}

// NewExtractor creates an extractor over the given source API.
func NewExtractor(api SourceAPI) *Extractor {
	return &Extractor{api: api, pageSize: PageSize}
}

// Run pulls every page of changes updated after windowStart, enriches
// each admitted record and returns the ordered composite set with a
// run report. A page fetch failure ends pagination the same way an
// empty page does; enrichment failures only leave the affected
// sub-entity absent.
func (e *Extractor) Run(ctx context.Context, windowStart string) ([]Composite, *Report) {
	report := &Report{RunID: uuid.NewString(), WindowStart: windowStart}
	var results []Composite

	for page := 1; ; page++ {
		logger.Info("Fetching service changes for page %d...", page)
		data, err := e.api.ServiceChanges(ctx, windowStart, page)
		if err != nil {
			logger.Error("Fetching service changes (page %d): %v", page, err)
			break
		}
		if len(data.Items) == 0 {
			logger.Info("No more items found on page %d. Ending run.", page)
			break
		}
		report.Pages++

		for _, item := range data.Items {
			report.ItemsSeen++
			adm := Admit(item)
			if !adm.Accepted {
				logger.Warn("Skipping change record (%s)", adm.Reason)
				report.Rejections = append(report.Rejections, Rejection{Record: item, Reason: adm.Reason})
				continue
			}
			results = append(results, e.enrich(ctx, item))
		}

		if lastPage(len(data.Items), e.pageSize) {
			logger.Info("Fewer than %d items on page %d. Ending run.", e.pageSize, page)
			break
		}
		logger.Info("Page %d processed.", page)
	}

	report.Records = len(results)
	return results, report
}

// lastPage is the end-of-pagination heuristic: a page with fewer items
// than the page size is treated as the final page. The feed exposes no
// explicit end-of-data signal, so a transiently short page also ends
// the run; keeping the rule in one place makes that easy to revisit.
func lastPage(itemCount, pageSize int) bool {
	return itemCount < pageSize
}

// enrich assembles the composite for one admitted change record. The
// sub-fetches are independent: failure of one leaves its field absent
// without blocking the others. Customer lookup depends on the service
// detail carrying a customer identifier.
func (e *Extractor) enrich(ctx context.Context, rec fno.ChangeRecord) Composite {
	logger.Info("Processing new_service_id: %s", rec.NewServiceID)
	comp := Composite{
		NewServiceID:  rec.NewServiceID,
		EffectiveDate: rec.EffectiveDate,
		Direction:     rec.Direction,
		ProductID:     rec.ProductID,
	}

	svc, err := e.api.Service(ctx, rec.NewServiceID)
	if err != nil {
		logger.Error("Fetching service details for %s: %v", rec.NewServiceID, err)
	} else {
		comp.ServiceDetails = svc
		if svc.CustomerID != "" {
			cust, err := e.api.Customer(ctx, svc.CustomerID)
			if err != nil {
				logger.Error("Fetching customer details for %s: %v", svc.CustomerID, err)
			} else {
				comp.CustomerDetails = cust
			}
		}
	}

	orders, err := e.api.WorkOrders(ctx, rec.NewServiceID)
	if err != nil {
		logger.Error("Fetching work orders for %s: %v", rec.NewServiceID, err)
	} else {
		comp.WorkOrders = orders
	}

	if rec.ProductID != "" {
		prod, err := e.api.Product(ctx, rec.ProductID)
		if err != nil {
			logger.Error("Fetching product details for %s: %v", rec.ProductID, err)
		} else {
			comp.ProductDetails = prod
		}
	}

	return comp
}
