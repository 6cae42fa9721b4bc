package services

import (
	"testing"
	"time"

	"vehicle-inspection-api/models"
)

func sampleAsset() models.AssetRecord {
	return models.AssetRecord{
		models.AssetFieldRegistration:        "AB-123-CD",
		models.AssetFieldRegistrationDate:    "15-01-2020",
		models.AssetFieldContractMonths:      "36",
		models.AssetFieldMonthlyDepreciation: "1000",
		models.AssetFieldOriginalPrice:       "40000",
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildForecastStraightLineValue(t *testing.T) {
	forecast := BuildForecast([]models.AssetRecord{sampleAsset()}, date(2021, time.January, 1), 12)

	if len(forecast.Months) != 12 {
		t.Fatalf("expected 12 months, got %d", len(forecast.Months))
	}
	if forecast.Months[0] != "Jan 2021" {
		t.Fatalf("unexpected first month label %q", forecast.Months[0])
	}
	if len(forecast.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(forecast.Rows))
	}

	row := forecast.Rows[0]
	if row.AssetLabel != "AB-123-CD" {
		t.Fatalf("unexpected label %q", row.AssetLabel)
	}

	// Registered 15-01-2020, reference Jan 2021: 12 elapsed months.
	if row.MonthlyValues[0] == nil {
		t.Fatalf("expected a value for the first month")
	}
	if *row.MonthlyValues[0] != 28000 {
		t.Fatalf("expected 28000, got %d", *row.MonthlyValues[0])
	}
}

func TestBuildForecastOutsideContractWindow(t *testing.T) {
	// Reference Jan 2024: elapsed runs 48..59, all past the 36 month term.
	forecast := BuildForecast([]models.AssetRecord{sampleAsset()}, date(2024, time.January, 1), 12)

	if len(forecast.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(forecast.Rows))
	}
	for i, v := range forecast.Rows[0].MonthlyValues {
		if v != nil {
			t.Fatalf("expected month %d to be absent, got %d", i, *v)
		}
	}
	for i, total := range forecast.DepreciationTotals {
		if total != 0 {
			t.Fatalf("expected zero total for month %d, got %d", i, total)
		}
	}
}

func TestBuildForecastFutureRegistrationAbsent(t *testing.T) {
	asset := sampleAsset()
	asset[models.AssetFieldRegistrationDate] = "01-06-2021"

	forecast := BuildForecast([]models.AssetRecord{asset}, date(2021, time.January, 1), 12)

	row := forecast.Rows[0]
	// Jan..May 2021 precede registration; projection starts in June.
	for i := 0; i < 5; i++ {
		if row.MonthlyValues[i] != nil {
			t.Fatalf("expected month %d absent before registration", i)
		}
	}
	if row.MonthlyValues[5] == nil {
		t.Fatalf("expected a value for the registration month")
	}
	if *row.MonthlyValues[5] != 40000 {
		t.Fatalf("expected full price at zero elapsed months, got %d", *row.MonthlyValues[5])
	}
}

func TestBuildForecastValuesNonIncreasing(t *testing.T) {
	forecast := BuildForecast([]models.AssetRecord{sampleAsset()}, date(2021, time.January, 1), 12)

	values := forecast.Rows[0].MonthlyValues
	for i := 1; i < len(values); i++ {
		if values[i-1] == nil || values[i] == nil {
			continue
		}
		if *values[i] > *values[i-1] {
			t.Fatalf("values increased between months %d and %d: %d > %d",
				i-1, i, *values[i], *values[i-1])
		}
	}
}

func TestBuildForecastFloorsAtZero(t *testing.T) {
	asset := sampleAsset()
	// 36 month term but the price runs out after 10 months.
	asset[models.AssetFieldOriginalPrice] = "10000"

	forecast := BuildForecast([]models.AssetRecord{asset}, date(2021, time.January, 1), 12)

	for i, v := range forecast.Rows[0].MonthlyValues {
		if v == nil {
			continue
		}
		if *v < 0 {
			t.Fatalf("month %d went negative: %d", i, *v)
		}
	}
	last := forecast.Rows[0].MonthlyValues[11]
	if last == nil || *last != 0 {
		t.Fatalf("expected final month floored at zero, got %v", last)
	}
}

func TestBuildForecastSkipsMalformedRecords(t *testing.T) {
	badDate := sampleAsset()
	badDate[models.AssetFieldRegistrationDate] = "not-a-date"

	badPrice := sampleAsset()
	badPrice[models.AssetFieldOriginalPrice] = "forty thousand"

	missingLabel := sampleAsset()
	delete(missingLabel, models.AssetFieldRegistration)

	assets := []models.AssetRecord{badDate, sampleAsset(), badPrice, missingLabel}
	forecast := BuildForecast(assets, date(2021, time.January, 1), 12)

	if len(forecast.Rows) != 1 {
		t.Fatalf("expected only the valid record to survive, got %d rows", len(forecast.Rows))
	}
	// Only the surviving asset contributes to the totals.
	if forecast.DepreciationTotals[0] != 1000 {
		t.Fatalf("expected total 1000, got %d", forecast.DepreciationTotals[0])
	}
}

func TestBuildForecastTotalsAcrossAssets(t *testing.T) {
	second := models.AssetRecord{
		models.AssetFieldRegistration:        "EF-456-GH",
		models.AssetFieldRegistrationDate:    "01-06-2020",
		models.AssetFieldContractMonths:      "48",
		models.AssetFieldMonthlyDepreciation: "650",
		models.AssetFieldOriginalPrice:       "32500",
	}

	forecast := BuildForecast([]models.AssetRecord{sampleAsset(), second}, date(2021, time.January, 1), 12)

	if forecast.DepreciationTotals[0] != 1650 {
		t.Fatalf("expected combined total 1650, got %d", forecast.DepreciationTotals[0])
	}
}

func TestAddMonthsClampsDayOfMonth(t *testing.T) {
	cases := []struct {
		start time.Time
		add   int
		want  time.Time
	}{
		{date(2021, time.January, 31), 1, date(2021, time.February, 28)},
		{date(2023, time.January, 31), 13, date(2024, time.February, 29)},
		{date(2021, time.March, 31), 1, date(2021, time.April, 30)},
		{date(2021, time.January, 15), 12, date(2022, time.January, 15)},
		{date(2021, time.March, 31), -1, date(2021, time.February, 28)},
	}

	for _, tc := range cases {
		got := AddMonths(tc.start, tc.add)
		if !got.Equal(tc.want) {
			t.Fatalf("AddMonths(%v, %d) = %v, want %v", tc.start, tc.add, got, tc.want)
		}
	}
}

func TestMonthsBetweenIgnoresDayOfMonth(t *testing.T) {
	cases := []struct {
		a, b time.Time
		want int
	}{
		{date(2020, time.January, 15), date(2021, time.January, 1), 12},
		{date(2020, time.January, 1), date(2020, time.January, 31), 0},
		{date(2020, time.June, 1), date(2020, time.January, 1), -5},
		{date(2019, time.December, 31), date(2020, time.January, 1), 1},
	}

	for _, tc := range cases {
		if got := monthsBetween(tc.a, tc.b); got != tc.want {
			t.Fatalf("monthsBetween(%v, %v) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
