package aggregate

import (
	"context"
	"fmt"

	"github.com/dmfrolov/salarystats/internal/models"
	"github.com/dmfrolov/salarystats/internal/provider"
	"github.com/dmfrolov/salarystats/internal/salary"
)

const queryTemplate = "программист %s"

// BuildReport resolves the city once, then runs the fetch-and-estimate
// pipeline for every language in order. The report title combines the
// provider name and the city.
func BuildReport(ctx context.Context, p provider.Provider, city string, languages []string, progress *models.ScrapeProgress) (*models.Report, error) {
	areaID, err := p.ResolveArea(ctx, city)
	if err != nil {
		return nil, err
	}

	report := &models.Report{
		Title:     fmt.Sprintf("%s %s", p.Name(), city),
		Languages: languages,
		Stats:     make(map[string]models.LanguageStats, len(languages)),
	}

	for _, language := range languages {
		query := fmt.Sprintf(queryTemplate, language)
		vacancies, err := p.SearchVacancies(ctx, query, areaID)
		if err != nil {
			return nil, err
		}

		report.Stats[language] = languageStats(p, vacancies)
		if progress != nil {
			progress.FoundVacancies += len(vacancies)
			progress.Advance()
		}
	}

	return report, nil
}

// languageStats estimates every vacancy and folds the results into
// found/processed counts and a truncated mean. With zero processed
// vacancies the average stays undefined rather than dividing by zero.
func languageStats(p provider.Provider, vacancies []models.Vacancy) models.LanguageStats {
	var estimates []float64
	for _, vacancy := range vacancies {
		if estimate, ok := salary.EstimateRub(vacancy.Salary, p.RubCurrency()); ok {
			estimates = append(estimates, estimate)
		}
	}

	stats := models.LanguageStats{
		VacanciesFound:     len(vacancies),
		VacanciesProcessed: len(estimates),
	}
	if len(estimates) > 0 {
		var sum float64
		for _, estimate := range estimates {
			sum += estimate
		}
		stats.AverageSalary = int(sum / float64(len(estimates)))
		stats.HasAverage = true
	}

	return stats
}
