package logic

import (
	"github.com/programmerrush/api-bills/internal/constants"
	"github.com/programmerrush/api-bills/internal/dao/fields"
	"github.com/programmerrush/api-bills/internal/helper"
	"github.com/programmerrush/api-bills/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Per-case metric records. Every field is a pointer and serializes to an
// explicit null when the underlying line item is missing or malformed, so
// the response shape never depends on data presence.

// PowerFactorMetrics is case 1.
type PowerFactorMetrics struct {
	BilledPF *float64 `json:"billed_pf"`
}

// ConsumptionTrendMetrics is case 2. DerivedUnits approximates consumed kWh
// from the charged amount and the per-unit rate.
type ConsumptionTrendMetrics struct {
	EnergyCharges   *float64 `json:"energy_charges"`
	ConsumptionRate *float64 `json:"consumption_rate"`
	TotalUnits      *float64 `json:"total_units"`
	DerivedUnits    *float64 `json:"derived_units"`
}

// IncentiveMetrics is case 3.
type IncentiveMetrics struct {
	BCR          *float64 `json:"bcr"`
	ICR          *float64 `json:"icr"`
	ExcessDemand *float64 `json:"excess_demand"`
	TotalAmount  *float64 `json:"total_amount"`
}

// DemandMetrics is case 4, all in kVA.
type DemandMetrics struct {
	ContractDemand            *float64 `json:"contract_demand"`
	RecordedDemand            *float64 `json:"recorded_demand"`
	BilledDemand              *float64 `json:"billed_demand"`
	SeventyFiveContractDemand *float64 `json:"seventy_five_contract_demand"`
}

// ComponentMetrics is case 5.
type ComponentMetrics struct {
	EnergyCharges   *float64 `json:"energy_charges"`
	WheelingCharges *float64 `json:"wheeling_charges"`
	DemandCharges   *float64 `json:"demand_charges"`
	ElectricityDuty *float64 `json:"electricity_duty"`
	TaxOnSale       *float64 `json:"tax_on_sale"`
	TotalUnits      *float64 `json:"total_units"`
	TaxRatePSU      *float64 `json:"tax_rate_psu"`
}

// TotalSummaryMetrics is case 6.
type TotalSummaryMetrics struct {
	TotalBillAmountRounded *float64 `json:"total_bill_amount_rounded"`
	TotalConsumptionUnits  *float64 `json:"total_consumption_units"`
}

// ExtractCaseMetrics derives the metric record for one case from a resolved
// bill. A nil bill is valid and yields a record of the same shape with every
// field null; the case id is validated before anything else.
func ExtractCaseMetrics(bill *models.Bill, billCase constants.BillCase) (interface{}, error) {
	if !billCase.Valid() {
		return nil, ErrInvalidCase
	}

	j := bill.Fields()

	switch billCase {
	case constants.CasePowerFactor:
		return &PowerFactorMetrics{
			BilledPF: lineItem(j, fields.ItemBilledPF),
		}, nil

	case constants.CaseConsumptionTrend:
		energyCharges := lineItem(j, fields.ItemEnergyCharges)
		consumptionRate := lineItem(j, fields.ItemConsumptionRatePerUnits)

		var derivedUnits *float64
		if energyCharges != nil && consumptionRate != nil && *consumptionRate != 0 {
			derivedUnits = helper.Float64Ptr(*energyCharges / *consumptionRate)
		}

		return &ConsumptionTrendMetrics{
			EnergyCharges:   energyCharges,
			ConsumptionRate: consumptionRate,
			TotalUnits:      lineItem(j, fields.ItemTotalConsumptionUnits),
			DerivedUnits:    derivedUnits,
		}, nil

	case constants.CaseIncentives:
		totalAmount := lineItem(j, fields.ItemTotalBillAmountRounded)
		if totalAmount == nil {
			totalAmount = lineItem(j, fields.ItemTotalCurrentBill)
		}

		return &IncentiveMetrics{
			BCR:          lineItem(j, fields.ItemBulkConsumptionRebate),
			ICR:          lineItem(j, fields.ItemIncrementalConsumptionRebate),
			ExcessDemand: lineItem(j, fields.ItemChargesForExcessDemand),
			TotalAmount:  totalAmount,
		}, nil

	case constants.CaseDemandDetails:
		return &DemandMetrics{
			ContractDemand:            lineItem(j, fields.ItemContractDemandKVA),
			RecordedDemand:            lineItem(j, fields.ItemRecorderMaxDemand),
			BilledDemand:              lineItem(j, fields.ItemBilledDemandKVA),
			SeventyFiveContractDemand: lineItem(j, fields.ItemDemand75PctKVA),
		}, nil

	case constants.CaseBillComponents:
		totalUnits := lineItem(j, fields.ItemTotalConsumptionUnits)
		taxRatePSU := lineItem(j, fields.ItemTaxOnSaleRatePSU)

		// The rate is paise per unit; divide by 100 for rupees.
		var taxOnSale *float64
		if totalUnits != nil && taxRatePSU != nil {
			taxOnSale = helper.Float64Ptr(*totalUnits * *taxRatePSU / 100)
		}

		return &ComponentMetrics{
			EnergyCharges:   lineItem(j, fields.ItemEnergyCharges),
			WheelingCharges: lineItem(j, fields.ItemWheelingCharge),
			DemandCharges:   lineItem(j, fields.ItemDemandCharges),
			ElectricityDuty: lineItem(j, fields.ItemElectricityDuty),
			TaxOnSale:       taxOnSale,
			TotalUnits:      totalUnits,
			TaxRatePSU:      taxRatePSU,
		}, nil

	case constants.CaseTotalSummary:
		return &TotalSummaryMetrics{
			TotalBillAmountRounded: lineItem(j, fields.ItemTotalBillAmountRounded),
			TotalConsumptionUnits:  lineItem(j, fields.ItemTotalConsumptionUnits),
		}, nil
	}

	return nil, ErrInvalidCase
}

func lineItem(j bson.M, key string) *float64 {
	v, ok := j[key]
	if !ok {
		return nil
	}
	return helper.TryParseFloat(v)
}
