package server

import (
	"github.com/iwvelando/food-cpi/internal/dashboard"
	"github.com/iwvelando/food-cpi/pkg/constants"
	"github.com/iwvelando/food-cpi/pkg/cpi"
	"github.com/iwvelando/food-cpi/pkg/format"
	"github.com/iwvelando/food-cpi/pkg/locale"
)

type pageText struct {
	Title            string
	LanguageLabel    string
	ViewLabel        string
	RankingHeading   string
	TrendHeading     string
	SelectCategory   string
	Show             string
	ChartQuestion    string
	RankingExplainer string
	TrendExplainer   string
	ValueQuestion    string
	ValueExplainer   string
	Rank             string
	Category         string
	CPIValue         string
	Change           string
	Month            string
	NoData           string
	AboutTitle       string
	AboutBody        string
}

type navLink struct {
	Label  string
	Href   string
	Active bool
}

type rankingRow struct {
	Rank   int
	Label  string
	Value  string
	Change string
}

type trendRow struct {
	Month string
	Value string
}

type page struct {
	Lang      string
	Version   string
	Text      pageText
	Languages []navLink
	Home      string
	About     string
}

type dashboardPage struct {
	page
	Month        string
	View         string
	Count        int
	Category     string
	Views        []navLink
	Options      []dashboard.CategoryOption
	RankingChart string
	TrendChart   string
	Ranking      []rankingRow
	Trend        []trendRow
}

func (h *handler) basePage(q query) page {
	p := q.lang.Printer()
	month := h.dashboard.LatestMonth()

	languages := make([]navLink, 0, len(locale.Languages()))
	for _, lang := range locale.Languages() {
		languages = append(languages, navLink{
			Label:  lang.Name(),
			Href:   link("/", q, "lang", lang.String()),
			Active: lang == q.lang,
		})
	}

	return page{
		Lang:    q.lang.String(),
		Version: h.version,
		Text: pageText{
			Title:            p.Sprintf(locale.MsgDashboardTitle),
			LanguageLabel:    p.Sprintf(locale.MsgLanguageLabel),
			ViewLabel:        p.Sprintf(locale.MsgViewLabel),
			RankingHeading:   p.Sprintf(locale.MsgRankingHeading, q.count, q.count),
			TrendHeading:     p.Sprintf(locale.MsgTrendHeading),
			SelectCategory:   p.Sprintf(locale.MsgSelectCategory),
			Show:             p.Sprintf(locale.MsgShow),
			ChartQuestion:    p.Sprintf(locale.MsgChartQuestion),
			RankingExplainer: p.Sprintf(locale.MsgRankingExplainer, month),
			TrendExplainer:   p.Sprintf(locale.MsgTrendExplainer),
			ValueQuestion:    p.Sprintf(locale.MsgValueQuestion),
			ValueExplainer:   p.Sprintf(locale.MsgValueExplainer),
			Rank:             p.Sprintf(locale.MsgRank),
			Category:         p.Sprintf(locale.MsgCategory),
			CPIValue:         p.Sprintf(locale.MsgCPIValue),
			Change:           p.Sprintf(locale.MsgChange),
			Month:            p.Sprintf(locale.MsgMonth),
			NoData:           p.Sprintf(locale.MsgNoData),
			AboutTitle:       p.Sprintf(locale.MsgAboutTitle),
			AboutBody:        p.Sprintf(locale.MsgAboutBody),
		},
		Languages: languages,
		Home:      link("/", q),
		About:     link("/about", q),
	}
}

func (h *handler) dashboardPage(q query) dashboardPage {
	p := q.lang.Printer()
	view := h.dashboard.Snapshot(dashboard.Query{
		Direction: q.direction,
		Count:     q.count,
		Language:  q.lang,
		Category:  q.category,
	})

	views := []navLink{
		{Label: p.Sprintf(locale.MsgViewTop, q.count), Href: link("/", q, "view", constants.ViewTop), Active: q.direction == cpi.Top},
		{Label: p.Sprintf(locale.MsgViewBottom, q.count), Href: link("/", q, "view", constants.ViewBottom), Active: q.direction == cpi.Bottom},
	}

	ranking := make([]rankingRow, 0, len(view.Ranking))
	for i, entry := range view.Ranking {
		ranking = append(ranking, rankingRow{
			Rank:   i + 1,
			Label:  entry.Label,
			Value:  format.LocalizedIndex(p, entry.Value),
			Change: format.Change(entry.Value),
		})
	}

	trend := make([]trendRow, 0, len(view.Trend))
	for _, point := range view.Trend {
		value := p.Sprintf(locale.MsgNotAvailable)
		if point.Present() {
			value = format.LocalizedIndex(p, *point.Value)
		}
		trend = append(trend, trendRow{Month: point.Month, Value: value})
	}

	var rankingChart, trendChart string
	if len(ranking) > 0 {
		rankingChart = link("/chart/ranking.svg", q)
	}
	if len(cpi.TrendValues(view.Trend)) >= 2 {
		trendChart = link("/chart/trend.svg", q)
	}

	return dashboardPage{
		page:         h.basePage(q),
		Month:        view.LatestMonth,
		View:         view.View,
		Count:        q.count,
		Category:     view.Category,
		Views:        views,
		Options:      h.dashboard.CategoryOptions(q.lang),
		RankingChart: rankingChart,
		TrendChart:   trendChart,
		Ranking:      ranking,
		Trend:        trend,
	}
}
