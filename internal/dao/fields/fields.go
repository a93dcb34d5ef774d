package fields

const (
	FieldObjectId  = "_id"
	FieldCreatedAt = "created_at"
	FieldUpdatedAt = "updated_at"

	FieldBillCompany       = "company"
	FieldBillSerial        = "serial"
	FieldBillJSONObj       = "jsonObj"
	FieldBillPaymentStatus = "paymentStatus"
	FieldBillPaid          = "paid"
	FieldBillPaymentDate   = "paymentDate"
	FieldBillAmount        = "amount"
	FieldBillMeta          = "meta"

	FieldCompanyName           = "name"
	FieldCompanyEmail          = "email"
	FieldCompanyIsActive       = "isActive"
	FieldCompanyIsDeleted      = "isDeleted"
	FieldCompanyIsPaymentDelay = "isPaymentDelay"
)

// Period indicator paths. The parser has renamed the billing-period fields
// several times; every shape that ever shipped is still matched so that old
// documents keep resolving. Keep this list in sync with BillDAO.FindByPeriod.
const (
	PeriodJSONYear  = "jsonObj.year"
	PeriodJSONMonth = "jsonObj.month"

	PeriodBillingPeriodYear  = "jsonObj.billingPeriod.year"
	PeriodBillingPeriodMonth = "jsonObj.billingPeriod.month"

	PeriodBillingPeriodSnakeYear  = "jsonObj.billing_period.year"
	PeriodBillingPeriodSnakeMonth = "jsonObj.billing_period.month"

	PeriodBillYear  = "jsonObj.bill_year"
	PeriodBillMonth = "jsonObj.bill_month"

	PeriodFieldsBillYear  = "jsonObj.fields.bill_year"
	PeriodFieldsBillMonth = "jsonObj.fields.bill_month"

	PeriodFieldsYear  = "jsonObj.fields.year"
	PeriodFieldsMonth = "jsonObj.fields.month"

	PeriodBillingYear  = "jsonObj.billing_year"
	PeriodBillingMonth = "jsonObj.billing_month"

	PeriodPeriodYear  = "jsonObj.period_year"
	PeriodPeriodMonth = "jsonObj.period_month"

	PeriodMetaYear  = "meta.year"
	PeriodMetaMonth = "meta.month"

	PeriodMetaBillYear  = "meta.bill_year"
	PeriodMetaBillMonth = "meta.bill_month"
)

// Line-item keys read by the case extractor from jsonObj.fields.
const (
	ItemBilledPF                     = "billed_pf"
	ItemEnergyCharges                = "energy_charges"
	ItemConsumptionRatePerUnits      = "total_consumption_rate_per_units"
	ItemTotalConsumptionUnits        = "total_consumption_units"
	ItemBulkConsumptionRebate        = "bulk_consumption_rebate"
	ItemIncrementalConsumptionRebate = "incremental_consumption_rebate"
	ItemChargesForExcessDemand       = "charges_for_excess_demand"
	ItemTotalBillAmountRounded       = "total_bill_amount_rounded"
	ItemTotalCurrentBill             = "total_current_bill"
	ItemContractDemandKVA            = "contract_demand_kva"
	ItemRecorderMaxDemand            = "recorder_max_demand"
	ItemBilledDemandKVA              = "billed_demand_kva"
	ItemDemand75PctKVA               = "demand_75pct_kva"
	ItemWheelingCharge               = "wheeling_charge"
	ItemDemandCharges                = "demand_charges"
	ItemElectricityDuty              = "electricity_duty"
	ItemTaxOnSaleRatePSU             = "tax_on_sale_rate_psu"
)
