package sales

import (
	"strings"
	"testing"
)

const testCSV = `Date,Category,ship-state,Status,Amount,ship-city,Order ID
04-30-22,Kurta,MAHARASHTRA,Shipped,376.00,MUMBAI,405-0000001
04-30-22,Set,KARNATAKA,Shipped - Delivered to Buyer,1049.00,BENGALURU,405-0000002
05-01-22,Kurta,maharashtra,Cancelled,459.00,mumbai ,405-0000003
05-02-22,Western Dress,TELANGANA,Shipped,751.00,HYDERABAD,405-0000004
05-02-22,Set,KARNATAKA,Pending,1250.00,BENGALURU,405-0000005
bad-date,Kurta,DELHI,Shipped,100.00,NEW DELHI,405-0000006
05-03-22,Top,DELHI,Shipped,not-a-number,NEW DELHI,405-0000007
06-01-22,Kurta,MAHARASHTRA,Shipped,500.00,PUNE,405-0000008
`

func load(t *testing.T) *Dataset {
	t.Helper()
	ds, err := LoadReader(strings.NewReader(testCSV), DefaultDateFormat)
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	return ds
}

// --- loading and cleaning ---

func TestLoadDropsUnparseableRows(t *testing.T) {
	ds := load(t)
	// 8 data rows, 2 unparseable (bad date, bad amount).
	if len(ds.Orders) != 6 {
		t.Fatalf("loaded %d orders, want 6", len(ds.Orders))
	}
}

func TestLoadTitleCasesPlaces(t *testing.T) {
	ds := load(t)
	for _, o := range ds.Orders {
		if o.City == "MUMBAI" || o.City == "mumbai" {
			t.Errorf("city not normalized: %q", o.City)
		}
	}
	// "MUMBAI" and "mumbai " collapse into one option.
	count := 0
	for _, c := range distinctCities(ds) {
		if c == "Mumbai" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one Mumbai option, got %d in %v", count, distinctCities(ds))
	}
}

func distinctCities(ds *Dataset) []string {
	return distinct(ds.Orders, func(o Order) string { return o.City })
}

func TestLoadDerivesMonth(t *testing.T) {
	ds := load(t)
	o, ok := ds.FindOrder("405-0000001")
	if !ok {
		t.Fatal("order 405-0000001 not loaded")
	}
	if o.Month != "2022-04" {
		t.Errorf("Month = %q, want 2022-04", o.Month)
	}
}

func TestLoadFilterOptionsSorted(t *testing.T) {
	ds := load(t)
	want := []string{"Kurta", "Set", "Western Dress"}
	if len(ds.Categories) != len(want) {
		t.Fatalf("categories = %v, want %v", ds.Categories, want)
	}
	for i := range want {
		if ds.Categories[i] != want[i] {
			t.Errorf("categories[%d] = %q, want %q", i, ds.Categories[i], want[i])
		}
	}
}

func TestLoadMissingRequiredColumn(t *testing.T) {
	_, err := LoadReader(strings.NewReader("Category,Status\nKurta,Shipped\n"), "")
	if err == nil {
		t.Fatal("expected error for report without Date/Amount columns")
	}
}

func TestLoadMissingOptionalColumnSubstitutesUnknown(t *testing.T) {
	csv := "Date,Amount\n04-30-22,100.00\n"
	ds, err := LoadReader(strings.NewReader(csv), "")
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	if len(ds.Orders) != 1 {
		t.Fatalf("loaded %d orders, want 1", len(ds.Orders))
	}
	o := ds.Orders[0]
	if o.Category != "Unknown" || o.City != "Unknown" || o.Status != "Unknown" {
		t.Errorf("missing columns should substitute Unknown, got %+v", o)
	}
}

// --- filters ---

func TestFilterInactivePassesAll(t *testing.T) {
	ds := load(t)
	v := ds.Apply(Filter{})
	if v.Filtered {
		t.Error("empty filter should not mark view as filtered")
	}
	if v.OrderCount() != len(ds.Orders) {
		t.Errorf("unfiltered view has %d orders, want %d", v.OrderCount(), len(ds.Orders))
	}
}

func TestFilterDimensionsAndTogether(t *testing.T) {
	ds := load(t)
	v := ds.Apply(Filter{
		Categories: []string{"Kurta"},
		States:     []string{"Maharashtra"},
	})
	if !v.Filtered {
		t.Error("view should be marked filtered")
	}
	// Kurta AND Maharashtra: orders 1, 3, 8.
	if v.OrderCount() != 3 {
		t.Errorf("filtered count = %d, want 3", v.OrderCount())
	}
}

func TestFilterValuesOrWithinDimension(t *testing.T) {
	ds := load(t)
	v := ds.Apply(Filter{Categories: []string{"Set", "Top"}})
	if v.OrderCount() != 2 {
		t.Errorf("Set OR Top count = %d, want 2", v.OrderCount())
	}
}

func TestFilterEmptyResult(t *testing.T) {
	ds := load(t)
	v := ds.Apply(Filter{Categories: []string{"Saree"}})
	if !v.Empty() {
		t.Errorf("expected empty view, got %d orders", v.OrderCount())
	}
}

// --- KPIs ---

func TestKPIs(t *testing.T) {
	ds := load(t)
	v := ds.Apply(Filter{})

	wantTotal := 376.0 + 1049 + 459 + 751 + 1250 + 500
	if got := v.TotalSales(); got != wantTotal {
		t.Errorf("TotalSales = %v, want %v", got, wantTotal)
	}
	if got := v.OrderCount(); got != 6 {
		t.Errorf("OrderCount = %d, want 6", got)
	}
	if got := v.AvgOrderValue(); got != wantTotal/6 {
		t.Errorf("AvgOrderValue = %v, want %v", got, wantTotal/6)
	}
}

func TestKPIsEmptyView(t *testing.T) {
	v := View{}
	if v.TotalSales() != 0 || v.OrderCount() != 0 || v.AvgOrderValue() != 0 {
		t.Error("empty view KPIs should all be zero")
	}
}

// --- aggregations ---

func TestMonthlyTrendChronological(t *testing.T) {
	ds := load(t)
	trend := ds.Apply(Filter{}).MonthlyTrend()
	if len(trend) != 3 {
		t.Fatalf("trend has %d months, want 3", len(trend))
	}
	months := []string{"2022-04", "2022-05", "2022-06"}
	for i, m := range months {
		if trend[i].Name != m {
			t.Errorf("trend[%d] = %q, want %q", i, trend[i].Name, m)
		}
	}
	if trend[0].Sales != 376+1049 {
		t.Errorf("April sales = %v, want %v", trend[0].Sales, 376.0+1049)
	}
}

func TestTopCategoriesDescending(t *testing.T) {
	ds := load(t)
	tops := ds.Apply(Filter{}).TopCategories(10)
	if tops[0].Name != "Set" { // 1049 + 1250
		t.Errorf("top category = %q, want Set", tops[0].Name)
	}
	for i := 1; i < len(tops); i++ {
		if tops[i].Sales > tops[i-1].Sales {
			t.Errorf("categories not descending at %d: %v", i, tops)
		}
	}
}

func TestTopCitiesLimit(t *testing.T) {
	ds := load(t)
	tops := ds.Apply(Filter{}).TopCities(2)
	if len(tops) != 2 {
		t.Errorf("TopCities(2) returned %d entries", len(tops))
	}
}

func TestStatusCountsMostFrequentFirst(t *testing.T) {
	ds := load(t)
	counts := ds.Apply(Filter{}).StatusCounts()
	if counts[0].Name != "Shipped" || counts[0].Count != 3 {
		t.Errorf("top status = %+v, want Shipped x3", counts[0])
	}
}

// --- lookups ---

func TestSalesIn(t *testing.T) {
	ds := load(t)
	v := ds.Apply(Filter{})
	sales, count := v.SalesIn(func(o Order) string { return o.City }, "Mumbai")
	if count != 2 || sales != 376+459 {
		t.Errorf("Mumbai = %v/%d, want 835/2", sales, count)
	}
}

func TestCategoriesMatching(t *testing.T) {
	ds := load(t)
	names, sales, count := ds.Apply(Filter{}).CategoriesMatching("kurta")
	if len(names) != 1 || names[0] != "Kurta" {
		t.Errorf("matching names = %v, want [Kurta]", names)
	}
	if count != 3 || sales != 376+459+500 {
		t.Errorf("kurta sales = %v/%d, want 1335/3", sales, count)
	}
}

func TestCountStatusContaining(t *testing.T) {
	ds := load(t)
	if got := ds.Apply(Filter{}).CountStatusContaining("shipped"); got != 4 {
		t.Errorf("CountStatusContaining(shipped) = %d, want 4", got)
	}
}

// --- formatting ---

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "₹0.00"},
		{999.5, "₹999.50"},
		{1234.56, "₹1,234.56"},
		{1234567.891, "₹1,234,567.89"},
		{-42, "-₹42.00"},
	}
	for _, tc := range cases {
		if got := FormatAmount(tc.in); got != tc.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// --- demo data ---

func TestDemoDatasetDeterministic(t *testing.T) {
	a, b := DemoDataset(), DemoDataset()
	if len(a.Orders) == 0 {
		t.Fatal("demo dataset is empty")
	}
	if len(a.Orders) != len(b.Orders) {
		t.Fatalf("demo dataset not deterministic: %d vs %d orders", len(a.Orders), len(b.Orders))
	}
	av := a.Apply(Filter{})
	bv := b.Apply(Filter{})
	if av.TotalSales() != bv.TotalSales() {
		t.Error("demo dataset totals differ between calls")
	}
	if len(a.Categories) == 0 || len(a.States) == 0 || len(a.Statuses) == 0 {
		t.Error("demo dataset should populate all filter options")
	}
}

func TestFormatCount(t *testing.T) {
	if got := FormatCount(1234567); got != "1,234,567" {
		t.Errorf("FormatCount = %q", got)
	}
	if got := FormatCount(42); got != "42" {
		t.Errorf("FormatCount = %q", got)
	}
}
