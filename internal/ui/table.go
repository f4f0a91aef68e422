package ui

import (
	"strconv"

	"github.com/pterm/pterm"

	"github.com/dmfrolov/salarystats/internal/models"
)

// noAverage marks languages whose vacancies yielded no salary estimate.
const noAverage = "—"

var tableHeader = []string{
	"Язык программирования",
	"Найдено вакансий",
	"Обработано вакансий",
	"Средняя зарплата, руб.",
}

// RenderReport prints one titled table. Every requested language gets a
// row, whether or not an average could be computed.
func RenderReport(report *models.Report) error {
	pterm.DefaultSection.Println(report.Title)

	data := pterm.TableData{tableHeader}
	for _, language := range report.Languages {
		stats := report.Stats[language]
		data = append(data, []string{
			language,
			strconv.Itoa(stats.VacanciesFound),
			strconv.Itoa(stats.VacanciesProcessed),
			FormatAverage(stats),
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Render()
}

// FormatAverage renders the average-salary cell for one language.
func FormatAverage(stats models.LanguageStats) string {
	if !stats.HasAverage {
		return noAverage
	}
	return ColorizeSalary(stats.AverageSalary)
}
