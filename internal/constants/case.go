package constants

// BillCase identifies one of the fixed computed views over a bill's line
// items. The numbering is part of the public API and must not change.
type BillCase int

const (
	CasePowerFactor      BillCase = 1 // billed power factor
	CaseConsumptionTrend BillCase = 2 // energy charges vs consumption rate
	CaseIncentives       BillCase = 3 // rebates and excess-demand charges
	CaseDemandDetails    BillCase = 4 // contract/recorded/billed demand (kVA)
	CaseBillComponents   BillCase = 5 // charge component breakdown
	CaseTotalSummary     BillCase = 6 // rounded total and consumed units
)

// Valid reports whether c is one of the six published cases.
func (c BillCase) Valid() bool {
	return c >= CasePowerFactor && c <= CaseTotalSummary
}
