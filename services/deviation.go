package services

import (
	"github.com/yeremiapane/haccp-app/models"
)

// Classification is the outcome of checking one temperature reading.
type Classification struct {
	IsDeviation bool
	Status      string
	// CCP is the matched control point, nil when the equipment name matched none.
	CCP *models.CCP
}

// CCPCatalog indexes control points by exact name.
type CCPCatalog map[string]models.CCP

// NewCCPCatalog builds a catalog; on duplicate names the first CCP wins.
func NewCCPCatalog(ccps []models.CCP) CCPCatalog {
	catalog := make(CCPCatalog, len(ccps))
	for _, ccp := range ccps {
		if _, exists := catalog[ccp.Name]; !exists {
			catalog[ccp.Name] = ccp
		}
	}
	return catalog
}

func (c CCPCatalog) Lookup(name string) (models.CCP, bool) {
	ccp, ok := c[name]
	return ccp, ok
}

// ExceedsLimits reports whether temperature lies strictly outside the limits
// that are set on ccp. A reading equal to a limit is compliant.
func ExceedsLimits(ccp models.CCP, temperature float64) bool {
	if ccp.MaxLimit != nil && temperature > *ccp.MaxLimit {
		return true
	}
	if ccp.MinLimit != nil && temperature < *ccp.MinLimit {
		return true
	}
	return false
}

// StatusFor maps the deviation flag to the initial log status. Resolved is
// never produced here.
func StatusFor(isDeviation bool) string {
	if isDeviation {
		return models.StatusDeviation
	}
	return models.StatusNormal
}

// Evaluate classifies a reading against the catalog. Unknown equipment has no
// limits to violate and is never a deviation.
func Evaluate(catalog CCPCatalog, equipmentName string, temperature float64) Classification {
	ccp, ok := catalog.Lookup(equipmentName)
	if !ok {
		return Classification{Status: models.StatusNormal}
	}

	isDeviation := ExceedsLimits(ccp, temperature)
	return Classification{
		IsDeviation: isDeviation,
		Status:      StatusFor(isDeviation),
		CCP:         &ccp,
	}
}
