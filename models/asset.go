package models

// AssetRecord is a loose flat mapping describing one leased vehicle for the
// depreciation forecast. Values stay as raw text; the forecast engine parses
// what it needs and skips records it cannot read.
type AssetRecord map[string]string

// Field keys recognised by the forecast engine.
const (
	AssetFieldRegistration        = "registration_number"
	AssetFieldRegistrationDate    = "registration_date" // day-month-year, e.g. 15-01-2020
	AssetFieldContractMonths      = "contract_months"
	AssetFieldMonthlyDepreciation = "monthly_depreciation"
	AssetFieldOriginalPrice       = "original_price"
)

// SampleAssets returns the fixed demo fleet shown on the admin dashboard.
// These rows are not persisted; the registration numbers loosely match the
// inspections the demo data refers to.
func SampleAssets() []AssetRecord {
	return []AssetRecord{
		{
			AssetFieldRegistration:        "AB-123-CD",
			AssetFieldRegistrationDate:    "15-01-2020",
			AssetFieldContractMonths:      "36",
			AssetFieldMonthlyDepreciation: "1000",
			AssetFieldOriginalPrice:       "40000",
		},
		{
			AssetFieldRegistration:        "EF-456-GH",
			AssetFieldRegistrationDate:    "01-06-2021",
			AssetFieldContractMonths:      "48",
			AssetFieldMonthlyDepreciation: "650",
			AssetFieldOriginalPrice:       "32500",
		},
		{
			AssetFieldRegistration:        "IJ-789-KL",
			AssetFieldRegistrationDate:    "31-03-2022",
			AssetFieldContractMonths:      "24",
			AssetFieldMonthlyDepreciation: "1250",
			AssetFieldOriginalPrice:       "28000",
		},
		{
			AssetFieldRegistration:        "MN-012-OP",
			AssetFieldRegistrationDate:    "20-11-2019",
			AssetFieldContractMonths:      "60",
			AssetFieldMonthlyDepreciation: "800",
			AssetFieldOriginalPrice:       "52000",
		},
	}
}
