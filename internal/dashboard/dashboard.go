// Package dashboard exposes the CPI dataset to the CLI and the HTTP server as
// plain data: rankings for the latest month and monthly trends, with the view,
// category and language passed in on every call.
package dashboard

import (
	"fmt"

	"github.com/iwvelando/food-cpi/internal/config"
	"github.com/iwvelando/food-cpi/internal/dataset"
	"github.com/iwvelando/food-cpi/pkg/cpi"
	"github.com/iwvelando/food-cpi/pkg/labels"
	"github.com/iwvelando/food-cpi/pkg/locale"
	"go.uber.org/zap"
)

// Dashboard answers queries over a read-only dataset. It is safe for
// concurrent use.
type Dashboard struct {
	data            *dataset.Dataset
	translator      *labels.Translator
	defaultCategory string
}

// Query is the state of one dashboard screen.
type Query struct {
	Direction cpi.Direction
	Count     int
	Language  locale.Language
	Category  string
}

// View is everything needed to draw one dashboard screen.
type View struct {
	Language      string            `json:"language"`
	LatestMonth   string            `json:"latestMonth"`
	View          string            `json:"view"`
	Ranking       []cpi.RankedEntry `json:"ranking"`
	Category      string            `json:"category"`
	CategoryLabel string            `json:"categoryLabel"`
	Trend         []cpi.TrendPoint  `json:"trend"`
}

// CategoryOption is one entry of the category selector.
type CategoryOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// New returns a Dashboard over data. defaultCategory is the trend category
// used when a query names none.
func New(data *dataset.Dataset, translator *labels.Translator, defaultCategory string) *Dashboard {
	if translator == nil {
		translator = labels.NewTranslator(nil)
	}
	return &Dashboard{data: data, translator: translator, defaultCategory: defaultCategory}
}

// Load reads the dataset and translation table named by conf, falling back to
// the bundled ones, and logs any dataset warnings.
func Load(logger *zap.Logger, conf config.Configuration) (*Dashboard, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var (
		data *dataset.Dataset
		err  error
	)
	if conf.Dataset.Path != "" {
		data, err = dataset.LoadFile(conf.Dataset.Path)
	} else {
		data, err = dataset.Bundled()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	var table labels.TranslationTable
	if conf.Translations.Path != "" {
		table, err = labels.LoadTableFile(conf.Translations.Path)
	} else {
		table, err = labels.DefaultTable()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load translations: %w", err)
	}

	translator := labels.NewTranslator(table)

	for _, warning := range data.Warnings() {
		logger.Warn("Dataset warning: "+warning,
			zap.String("op", "dashboard.Load"),
		)
	}

	logger.Info("dataset loaded",
		zap.String("op", "dashboard.Load"),
		zap.Int("categories", len(data.Categories())),
		zap.Int("months", len(data.Months())),
		zap.String("latestMonth", data.LatestMonth()),
		zap.Int("translations", translator.Len()),
	)

	return New(data, translator, conf.Dashboard.Category), nil
}

// Rank returns the n categories at the dir end of the latest month, labelled
// in lang.
func (d *Dashboard) Rank(dir cpi.Direction, n int, lang locale.Language) []cpi.RankedEntry {
	return cpi.Rank(d.data.Categories(), d.data.Latest(), dir, n, d.translator.Func(lang.IsFrench()))
}

// Trend returns one point per month for category.
func (d *Dashboard) Trend(category string) []cpi.TrendPoint {
	return cpi.SelectTrend(d.data.Months(), d.data.Rows(), category)
}

// Label returns the display label of category in lang.
func (d *Dashboard) Label(category string, lang locale.Language) string {
	return d.translator.Translate(category, lang.IsFrench())
}

// LatestMonth returns the month rankings are computed for.
func (d *Dashboard) LatestMonth() string {
	return d.data.LatestMonth()
}

// Months returns the months of the series in chronological order.
func (d *Dashboard) Months() []string {
	return d.data.Months()
}

// Categories returns the category catalog.
func (d *Dashboard) Categories() []string {
	return d.data.Categories()
}

// CategoryOptions returns the catalog with display labels in lang.
func (d *Dashboard) CategoryOptions(lang locale.Language) []CategoryOption {
	categories := d.data.Categories()
	options := make([]CategoryOption, 0, len(categories))
	for _, category := range categories {
		options = append(options, CategoryOption{Value: category, Label: d.Label(category, lang)})
	}
	return options
}

// HasCategory reports whether category is part of the catalog.
func (d *Dashboard) HasCategory(category string) bool {
	return d.data.HasCategory(category)
}

// DefaultCategory returns the configured trend category when it is in the
// catalog, otherwise the first catalog category, or "" for an empty catalog.
func (d *Dashboard) DefaultCategory() string {
	if d.defaultCategory != "" && d.data.HasCategory(d.defaultCategory) {
		return d.defaultCategory
	}
	if categories := d.data.Categories(); len(categories) > 0 {
		return categories[0]
	}
	return ""
}

// Snapshot computes the ranking and the trend of q in one call. An empty
// category selects DefaultCategory.
func (d *Dashboard) Snapshot(q Query) View {
	category := q.Category
	if category == "" {
		category = d.DefaultCategory()
	}
	return View{
		Language:      q.Language.String(),
		LatestMonth:   d.LatestMonth(),
		View:          q.Direction.String(),
		Ranking:       d.Rank(q.Direction, q.Count, q.Language),
		Category:      category,
		CategoryLabel: d.Label(category, q.Language),
		Trend:         d.Trend(category),
	}
}
