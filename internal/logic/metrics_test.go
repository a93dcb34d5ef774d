package logic

import (
	"testing"

	"github.com/programmerrush/api-bills/internal/constants"
	"github.com/programmerrush/api-bills/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func billWithFields(fields bson.M) *models.Bill {
	return &models.Bill{JSONObj: bson.M{"fields": fields}}
}

func TestExtractCaseMetrics_InvalidCase(t *testing.T) {
	bill := billWithFields(bson.M{"billed_pf": 0.98})

	for _, c := range []constants.BillCase{0, 7, -1, 99} {
		data, err := ExtractCaseMetrics(bill, c)
		assert.ErrorIs(t, err, ErrInvalidCase)
		assert.Nil(t, data)
	}
}

func TestExtractCaseMetrics_NilBillYieldsNullFilledShape(t *testing.T) {
	for c := constants.CasePowerFactor; c <= constants.CaseTotalSummary; c++ {
		data, err := ExtractCaseMetrics(nil, c)
		require.NoError(t, err, "case %d", c)
		require.NotNil(t, data, "case %d", c)
	}

	data, err := ExtractCaseMetrics(nil, constants.CaseConsumptionTrend)
	require.NoError(t, err)
	trend := data.(*ConsumptionTrendMetrics)
	assert.Nil(t, trend.EnergyCharges)
	assert.Nil(t, trend.ConsumptionRate)
	assert.Nil(t, trend.TotalUnits)
	assert.Nil(t, trend.DerivedUnits)

	data, err = ExtractCaseMetrics(nil, constants.CaseIncentives)
	require.NoError(t, err)
	incentives := data.(*IncentiveMetrics)
	assert.Nil(t, incentives.BCR)
	assert.Nil(t, incentives.ICR)
	assert.Nil(t, incentives.ExcessDemand)
	assert.Nil(t, incentives.TotalAmount)
}

func TestExtractCaseMetrics_PowerFactor(t *testing.T) {
	t.Run("Numeric", func(t *testing.T) {
		data, err := ExtractCaseMetrics(billWithFields(bson.M{"billed_pf": 0.98}), constants.CasePowerFactor)
		require.NoError(t, err)
		metrics := data.(*PowerFactorMetrics)
		require.NotNil(t, metrics.BilledPF)
		assert.InDelta(t, 0.98, *metrics.BilledPF, 1e-9)
	})

	t.Run("NumericString", func(t *testing.T) {
		data, err := ExtractCaseMetrics(billWithFields(bson.M{"billed_pf": "0.95"}), constants.CasePowerFactor)
		require.NoError(t, err)
		metrics := data.(*PowerFactorMetrics)
		require.NotNil(t, metrics.BilledPF)
		assert.InDelta(t, 0.95, *metrics.BilledPF, 1e-9)
	})

	t.Run("MalformedBecomesNull", func(t *testing.T) {
		data, err := ExtractCaseMetrics(billWithFields(bson.M{"billed_pf": "n/a"}), constants.CasePowerFactor)
		require.NoError(t, err)
		assert.Nil(t, data.(*PowerFactorMetrics).BilledPF)
	})
}

func TestExtractCaseMetrics_ConsumptionTrend(t *testing.T) {
	t.Run("DerivedUnits", func(t *testing.T) {
		data, err := ExtractCaseMetrics(billWithFields(bson.M{
			"energy_charges":                   1000.0,
			"total_consumption_rate_per_units": 8.0,
			"total_consumption_units":          120.0,
		}), constants.CaseConsumptionTrend)
		require.NoError(t, err)
		metrics := data.(*ConsumptionTrendMetrics)
		require.NotNil(t, metrics.DerivedUnits)
		assert.InDelta(t, 125.0, *metrics.DerivedUnits, 1e-9)
	})

	t.Run("ZeroRateNoDerivation", func(t *testing.T) {
		data, err := ExtractCaseMetrics(billWithFields(bson.M{
			"energy_charges":                   1000.0,
			"total_consumption_rate_per_units": 0.0,
		}), constants.CaseConsumptionTrend)
		require.NoError(t, err)
		assert.Nil(t, data.(*ConsumptionTrendMetrics).DerivedUnits)
	})

	t.Run("MissingRateNoDerivation", func(t *testing.T) {
		data, err := ExtractCaseMetrics(billWithFields(bson.M{
			"energy_charges": 1000.0,
		}), constants.CaseConsumptionTrend)
		require.NoError(t, err)
		metrics := data.(*ConsumptionTrendMetrics)
		require.NotNil(t, metrics.EnergyCharges)
		assert.Nil(t, metrics.ConsumptionRate)
		assert.Nil(t, metrics.DerivedUnits)
	})
}

func TestExtractCaseMetrics_IncentivesTotalFallback(t *testing.T) {
	t.Run("PrefersRoundedTotal", func(t *testing.T) {
		data, err := ExtractCaseMetrics(billWithFields(bson.M{
			"total_bill_amount_rounded": 5000.0,
			"total_current_bill":        4987.55,
		}), constants.CaseIncentives)
		require.NoError(t, err)
		metrics := data.(*IncentiveMetrics)
		require.NotNil(t, metrics.TotalAmount)
		assert.InDelta(t, 5000.0, *metrics.TotalAmount, 1e-9)
	})

	t.Run("FallsBackToCurrentBill", func(t *testing.T) {
		data, err := ExtractCaseMetrics(billWithFields(bson.M{
			"total_current_bill": 4987.55,
		}), constants.CaseIncentives)
		require.NoError(t, err)
		metrics := data.(*IncentiveMetrics)
		require.NotNil(t, metrics.TotalAmount)
		assert.InDelta(t, 4987.55, *metrics.TotalAmount, 1e-9)
	})

	t.Run("NeitherPresent", func(t *testing.T) {
		data, err := ExtractCaseMetrics(billWithFields(bson.M{
			"bulk_consumption_rebate": 12.5,
		}), constants.CaseIncentives)
		require.NoError(t, err)
		metrics := data.(*IncentiveMetrics)
		assert.Nil(t, metrics.TotalAmount)
		require.NotNil(t, metrics.BCR)
		assert.InDelta(t, 12.5, *metrics.BCR, 1e-9)
	})
}

func TestExtractCaseMetrics_DemandDetails(t *testing.T) {
	data, err := ExtractCaseMetrics(billWithFields(bson.M{
		"contract_demand_kva": 500.0,
		"recorder_max_demand": 430.0,
		"billed_demand_kva":   450.0,
		"demand_75pct_kva":    375.0,
	}), constants.CaseDemandDetails)
	require.NoError(t, err)
	metrics := data.(*DemandMetrics)
	require.NotNil(t, metrics.ContractDemand)
	assert.InDelta(t, 500.0, *metrics.ContractDemand, 1e-9)
	require.NotNil(t, metrics.SeventyFiveContractDemand)
	assert.InDelta(t, 375.0, *metrics.SeventyFiveContractDemand, 1e-9)
}

func TestExtractCaseMetrics_BillComponentsTaxOnSale(t *testing.T) {
	t.Run("Computed", func(t *testing.T) {
		data, err := ExtractCaseMetrics(billWithFields(bson.M{
			"total_consumption_units": 1200.0,
			"tax_on_sale_rate_psu":    26.0,
		}), constants.CaseBillComponents)
		require.NoError(t, err)
		metrics := data.(*ComponentMetrics)
		require.NotNil(t, metrics.TaxOnSale)
		// 1200 units * 26 paise / 100 = 312 rupees
		assert.InDelta(t, 312.0, *metrics.TaxOnSale, 1e-9)
	})

	t.Run("MissingRate", func(t *testing.T) {
		data, err := ExtractCaseMetrics(billWithFields(bson.M{
			"total_consumption_units": 1200.0,
		}), constants.CaseBillComponents)
		require.NoError(t, err)
		metrics := data.(*ComponentMetrics)
		assert.Nil(t, metrics.TaxOnSale)
		assert.Nil(t, metrics.TaxRatePSU)
		require.NotNil(t, metrics.TotalUnits)
	})
}

func TestExtractCaseMetrics_TotalSummary(t *testing.T) {
	data, err := ExtractCaseMetrics(billWithFields(bson.M{
		"total_bill_amount_rounded": 5000.0,
		"total_consumption_units":   1200.0,
	}), constants.CaseTotalSummary)
	require.NoError(t, err)
	metrics := data.(*TotalSummaryMetrics)
	require.NotNil(t, metrics.TotalBillAmountRounded)
	assert.InDelta(t, 5000.0, *metrics.TotalBillAmountRounded, 1e-9)
	require.NotNil(t, metrics.TotalConsumptionUnits)
	assert.InDelta(t, 1200.0, *metrics.TotalConsumptionUnits, 1e-9)
}

func TestExtractCaseMetrics_BillWithoutFieldsSubDocument(t *testing.T) {
	bill := &models.Bill{JSONObj: bson.M{"billed_pf": 0.9}}

	data, err := ExtractCaseMetrics(bill, constants.CasePowerFactor)
	require.NoError(t, err)
	assert.Nil(t, data.(*PowerFactorMetrics).BilledPF)
}
