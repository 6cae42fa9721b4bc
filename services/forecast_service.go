package services

import (
	"strconv"
	"time"

	"vehicle-inspection-api/models"
)

// DefaultForecastHorizon is the number of future calendar months the
// depreciation projection covers.
const DefaultForecastHorizon = 12

// assetDateLayout is the day-month-year format asset registration dates
// are recorded in.
const assetDateLayout = "02-01-2006"

// Forecast is the month-by-month depreciation projection rendered on the
// admin dashboard.
type Forecast struct {
	Months             []string      `json:"months"`
	Rows               []ForecastRow `json:"rows"`
	DepreciationTotals []int         `json:"depreciation_totals"`
}

// ForecastRow holds one asset's projected values. A nil entry means the
// asset has no projection for that month (not yet in service, or past the
// end of its contract).
type ForecastRow struct {
	AssetLabel    string `json:"asset_label"`
	MonthlyValues []*int `json:"monthly_values"`
}

// AddMonths shifts t by n calendar months, clamping the day-of-month to the
// last valid day of the target month (Jan 31 + 1 month = last day of
// February, never an invalid date).
func AddMonths(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	day := t.Day()
	if last := daysInMonth(first.Year(), first.Month()); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// monthsBetween is the calendar-month distance from a to b, ignoring
// day-of-month. Negative when b precedes a's month.
func monthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}

// BuildForecast projects straight-line depreciation for the given assets
// over horizonMonths consecutive months starting at the first day of
// referenceDate's month. Records missing a required field or carrying a
// non-numeric value are skipped entirely; they contribute neither a row nor
// anything to the per-month totals.
func BuildForecast(assets []models.AssetRecord, referenceDate time.Time, horizonMonths int) Forecast {
	if horizonMonths <= 0 {
		horizonMonths = DefaultForecastHorizon
	}

	start := time.Date(referenceDate.Year(), referenceDate.Month(), 1, 0, 0, 0, 0, time.UTC)
	anchors := make([]time.Time, horizonMonths)
	months := make([]string, horizonMonths)
	for i := range anchors {
		anchors[i] = AddMonths(start, i)
		months[i] = anchors[i].Format("Jan 2006")
	}

	forecast := Forecast{
		Months:             months,
		Rows:               make([]ForecastRow, 0, len(assets)),
		DepreciationTotals: make([]int, horizonMonths),
	}

	for _, asset := range assets {
		label := asset[models.AssetFieldRegistration]
		if label == "" {
			continue
		}
		registered, err := time.Parse(assetDateLayout, asset[models.AssetFieldRegistrationDate])
		if err != nil {
			continue
		}
		contractMonths, err := strconv.Atoi(asset[models.AssetFieldContractMonths])
		if err != nil {
			continue
		}
		monthlyRate, err := strconv.Atoi(asset[models.AssetFieldMonthlyDepreciation])
		if err != nil {
			continue
		}
		price, err := strconv.Atoi(asset[models.AssetFieldOriginalPrice])
		if err != nil {
			continue
		}

		values := make([]*int, horizonMonths)
		for i, anchor := range anchors {
			elapsed := monthsBetween(registered, anchor)
			if elapsed < 0 || elapsed > contractMonths {
				continue
			}
			projected := price - monthlyRate*elapsed
			if projected < 0 {
				projected = 0
			}
			values[i] = &projected
			forecast.DepreciationTotals[i] += monthlyRate
		}

		forecast.Rows = append(forecast.Rows, ForecastRow{
			AssetLabel:    label,
			MonthlyValues: values,
		})
	}

	return forecast
}
