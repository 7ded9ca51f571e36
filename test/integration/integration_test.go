package integration

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/iwvelando/food-cpi/internal/config"
	"github.com/iwvelando/food-cpi/internal/dashboard"
	"github.com/iwvelando/food-cpi/pkg/cpi"
	"github.com/iwvelando/food-cpi/pkg/locale"
	"github.com/iwvelando/food-cpi/pkg/output"
	"github.com/iwvelando/food-cpi/pkg/testutil"
	"go.uber.org/zap"
)

func loadBundled(t *testing.T) *dashboard.Dashboard {
	t.Helper()
	conf, err := config.LoadConfiguration("../../config.yaml.example")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	d, err := dashboard.Load(zap.NewNop(), *conf)
	if err != nil {
		t.Fatalf("dashboard.Load() error = %v", err)
	}
	return d
}

// TestBundledBaseline checks the rankings of the bundled dataset against
// values captured from the published CPI tables.
func TestBundledBaseline(t *testing.T) {
	d := loadBundled(t)

	if d.LatestMonth() != "2025-06" {
		t.Fatalf("Expected latest month 2025-06, got %s", d.LatestMonth())
	}

	top := d.Rank(cpi.Top, 10, locale.English)
	expectedTop := []struct {
		label string
		value float64
	}{
		{"Fresh or frozen beef", 212.1},
		{"Margarine", 211.9},
		{"Edible fats and oils", 189.0},
		{"Eggs", 187.9},
	}
	for i, expected := range expectedTop {
		if top[i].Label != expected.label || top[i].Value != expected.value {
			t.Errorf("top[%d]: expected %s %.1f, got %s %.1f", i, expected.label, expected.value, top[i].Label, top[i].Value)
		}
	}

	// Equal values keep catalog order.
	meat := testutil.FindEntry(d.Rank(cpi.Top, 37, locale.English), "Fresh or frozen meat (excluding poultry)")
	apples := testutil.FindEntry(d.Rank(cpi.Top, 37, locale.English), "Apples")
	if meat == nil || apples == nil || meat.Value != apples.Value {
		t.Fatalf("expected meat and apples to tie, got %+v and %+v", meat, apples)
	}

	bottom := d.Rank(cpi.Bottom, 10, locale.French)
	if bottom[0].Label != "Poitrines de poulet frais ou congelé" || bottom[0].Value != 96.8 {
		t.Errorf("unexpected lowest category %+v", bottom[0])
	}
	if entry := testutil.FindEntry(bottom, "Berries (2013=100)"); entry == nil || entry.Label != "Baies" {
		t.Errorf("expected translated berries in bottom ranking, got %+v", entry)
	}

	for _, entry := range top {
		if testutil.FindEntry(bottom, entry.Category) != nil {
			t.Errorf("category %s is in both rankings", entry.Category)
		}
	}
}

func TestBundledTrends(t *testing.T) {
	d := loadBundled(t)

	tea := d.Trend("Tea")
	if len(tea) != len(d.Months()) {
		t.Fatalf("Expected %d points, got %d", len(d.Months()), len(tea))
	}
	if p := testutil.FindPoint(tea, "2024-08"); p == nil || p.Present() {
		t.Errorf("expected Tea to be missing in 2024-08, got %+v", p)
	}

	chicken := d.Trend("Fresh or frozen chicken breasts (202404=100)")
	if p := testutil.FindPoint(chicken, "2024-03"); p == nil || p.Present() {
		t.Errorf("expected no chicken breast value before the 202404 base, got %+v", p)
	}
	if p := testutil.FindPoint(chicken, "2024-04"); p == nil || !p.Present() {
		t.Errorf("expected a chicken breast value at the 202404 base, got %+v", p)
	}

	for _, category := range d.Categories() {
		if len(d.Trend(category)) != len(d.Months()) {
			t.Errorf("trend of %s does not cover every month", category)
		}
	}
}

func TestCSVOutputFormat(t *testing.T) {
	d := loadBundled(t)
	view := d.Snapshot(dashboard.Query{Direction: cpi.Top, Count: 10, Language: locale.French, Category: "Tea"})

	var buf bytes.Buffer
	if err := output.CsvFormat(&buf, view); err != nil {
		t.Fatalf("CsvFormat() error = %v", err)
	}

	sections := strings.SplitN(buf.String(), "\n\n", 2)
	if len(sections) != 2 {
		t.Fatalf("expected ranking and trend sections, got %q", buf.String())
	}

	ranking, err := csv.NewReader(strings.NewReader(sections[0])).ReadAll()
	if err != nil {
		t.Fatalf("ranking section is not valid CSV: %v", err)
	}
	if len(ranking) != 11 {
		t.Errorf("Expected header and 10 ranking rows, got %d", len(ranking))
	}
	if ranking[1][1] != "Bœuf frais ou congelé" || ranking[1][4] != "212.1" {
		t.Errorf("unexpected first ranking row %v", ranking[1])
	}

	trend, err := csv.NewReader(strings.NewReader(sections[1])).ReadAll()
	if err != nil {
		t.Fatalf("trend section is not valid CSV: %v", err)
	}
	if len(trend) != len(d.Months())+1 {
		t.Errorf("Expected header and %d trend rows, got %d", len(d.Months()), len(trend))
	}
}

func TestPrettyOutputFormat(t *testing.T) {
	d := loadBundled(t)
	view := d.Snapshot(dashboard.Query{Direction: cpi.Bottom, Count: 5, Language: locale.English})

	var buf bytes.Buffer
	if err := output.PrettyFormat(&buf, view); err != nil {
		t.Fatalf("PrettyFormat() error = %v", err)
	}

	out := buf.String()
	for _, expected := range []string{
		"--- Bottom 5 (Least Inflated), 2025-06 ---",
		"Fresh or frozen chicken breasts",
		"-3.2%",
		"--- Monthly CPI: Food ---",
	} {
		if !strings.Contains(out, expected) {
			t.Errorf("pretty output missing %q", expected)
		}
	}
}

func TestConfigurationVariations(t *testing.T) {
	d := loadBundled(t)

	for _, n := range []int{0, 1, 5, 10, 37, 100} {
		for _, dir := range []cpi.Direction{cpi.Top, cpi.Bottom} {
			got := d.Rank(dir, n, locale.English)
			expected := n
			if expected > 37 {
				expected = 37
			}
			if len(got) != expected {
				t.Errorf("Rank(%s, %d): expected %d entries, got %d", dir, n, expected, len(got))
			}
		}
	}
}
