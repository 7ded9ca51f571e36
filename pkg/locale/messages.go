package locale

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys. Keys are the English text; French translations are
// registered in the default catalog.
const (
	MsgDashboardTitle   = "Canadian Food Price Dashboard"
	MsgTrendHeading     = "Monthly Price Trends"
	MsgRankingHeading   = "Top %d / Bottom %d CPI Categories"
	MsgLanguageLabel    = "Language:"
	MsgSelectCategory   = "Select Food Category:"
	MsgViewLabel        = "View:"
	MsgViewTop          = "Top %d (Most Inflated)"
	MsgViewBottom       = "Bottom %d (Least Inflated)"
	MsgRankingTitle     = "CPI by category, %s"
	MsgTrendTitle       = "Monthly CPI: %s"
	MsgCPIAxis          = "CPI (Base = 100)"
	MsgCPIValueAxis     = "CPI Value (Base = 100)"
	MsgMonthAxis        = "Month (YYYY-MM)"
	MsgCPIValue         = "CPI Value"
	MsgCategory         = "Category"
	MsgMonth            = "Month"
	MsgRank             = "Rank"
	MsgChange           = "Change vs base"
	MsgNotAvailable     = "n/a"
	MsgChartQuestion    = "What does this chart show?"
	MsgRankingExplainer = "This bar chart compares the Consumer Price Index (CPI) of food categories in %s. Toggle to explore the most and least inflated items."
	MsgTrendExplainer   = "This chart shows the monthly price trend for the selected food category using its Consumer Price Index (CPI). A value of 100 means the price is equal to the base period (e.g., 2013=100 or 202404=100). Above 100 = price increased, below 100 = price decreased."
	MsgValueQuestion    = "What does the value mean?"
	MsgValueExplainer   = "CPI is a standardized measure of price changes over time, with a base value of 100: 120 means prices increased by 20%%, 85 that they decreased by 15%%."
	MsgShow             = "Show"
	MsgAboutTitle       = "About"
	MsgAboutBody        = "This dashboard displays food price trends using CPI data."
	MsgNoData           = "No data available."
)

func init() {
	fr := map[string]string{
		MsgDashboardTitle:   "Tableau de bord des prix alimentaires au Canada",
		MsgTrendHeading:     "Tendances mensuelles des prix",
		MsgRankingHeading:   "Catégories IPC – %d plus inflationnistes / %d moins inflationnistes",
		MsgLanguageLabel:    "Langue :",
		MsgSelectCategory:   "Sélectionnez une catégorie d’aliments :",
		MsgViewLabel:        "Vue :",
		MsgViewTop:          "%d plus élevés (plus inflationnistes)",
		MsgViewBottom:       "%d plus bas (moins inflationnistes)",
		MsgRankingTitle:     "IPC par catégorie, %s",
		MsgTrendTitle:       "IPC mensuel : %s",
		MsgCPIAxis:          "IPC (Base = 100)",
		MsgCPIValueAxis:     "Valeur IPC (Base = 100)",
		MsgMonthAxis:        "Mois (AAAA-MM)",
		MsgCPIValue:         "Valeur IPC",
		MsgCategory:         "Catégorie",
		MsgMonth:            "Mois",
		MsgRank:             "Rang",
		MsgChange:           "Écart avec la base",
		MsgNotAvailable:     "s.o.",
		MsgChartQuestion:    "Que montre ce graphique ?",
		MsgRankingExplainer: "Ce graphique en barres compare l’Indice des prix à la consommation (IPC) des catégories d’aliments pour %s. Utilisez le bouton pour explorer les articles les plus ou les moins inflationnistes.",
		MsgTrendExplainer:   "Ce graphique montre la tendance mensuelle des prix pour la catégorie d’aliments sélectionnée, en utilisant l’Indice des prix à la consommation (IPC). Une valeur de 100 signifie que le prix est égal à la période de base (par ex. 2013=100 ou 202404=100). Au-dessus de 100 = prix en hausse, en dessous de 100 = prix en baisse.",
		MsgValueQuestion:    "Que signifie la « valeur » ?",
		MsgValueExplainer:   "L’IPC est une mesure standardisée du changement des prix dans le temps, avec une base de 100 : 120 signifie un prix augmenté de 20 %%, 85 un prix diminué de 15 %%.",
		MsgShow:             "Afficher",
		MsgAboutTitle:       "À propos",
		MsgAboutBody:        "Ce tableau de bord présente l’évolution des prix alimentaires à partir des données de l’IPC.",
		MsgNoData:           "Aucune donnée disponible.",
	}
	for key, msg := range fr {
		if err := message.SetString(language.French, key, msg); err != nil {
			panic("locale: " + err.Error())
		}
	}
}
