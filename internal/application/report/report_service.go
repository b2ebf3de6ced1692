package report

import (
	"github.com/rmc/backend/internal/domain/shared"
)

// ReportInfo describes one entry in the report catalog
type ReportInfo struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ReportStub is returned by preview and download while generation is
// unimplemented
type ReportStub struct {
	Report string `json:"report"`
	Status string `json:"status"`
}

// ReportService serves the report catalog. Generation itself is not built;
// preview and download answer with a stub so clients can wire their flows.
type ReportService struct {
	catalog []ReportInfo
}

// NewReportService creates a ReportService with the static catalog
func NewReportService() *ReportService {
	return &ReportService{
		catalog: []ReportInfo{
			{Key: "sales-register", Name: "Sales Register", Description: "Invoice-wise sales with taxes"},
			{Key: "delivery-register", Name: "Delivery Register", Description: "Challan-wise delivered quantity"},
			{Key: "cube-test-register", Name: "Cube Test Register", Description: "Compressive strength results by mix design"},
			{Key: "cash-book", Name: "Cash Book", Description: "Daily credits, debits and running balance"},
			{Key: "vendor-purchases", Name: "Vendor Purchases", Description: "Aggregate purchases grouped by vendor"},
		},
	}
}

// Catalog lists the available reports
func (s *ReportService) Catalog() []ReportInfo {
	return s.catalog
}

// Preview answers with a stub for a known report key
func (s *ReportService) Preview(key string) (*ReportStub, error) {
	return s.stub(key)
}

// Download answers with a stub for a known report key
func (s *ReportService) Download(key string) (*ReportStub, error) {
	return s.stub(key)
}

func (s *ReportService) stub(key string) (*ReportStub, error) {
	for _, info := range s.catalog {
		if info.Key == key {
			return &ReportStub{Report: key, Status: "not_available"}, nil
		}
	}
	return nil, shared.NotFoundError("Report")
}
