package models

import (
	"github.com/cheggaaa/pb/v3"
)

// Salary is the advertised salary range of a single vacancy, normalized
// across providers. From/To are 0 when the provider reported no bound.
// Currency keeps the provider's own spelling ("RUR" on HeadHunter,
// "rub" on SuperJob).
type Salary struct {
	From     int    `json:"from"`
	To       int    `json:"to"`
	Currency string `json:"currency"`
}

// Vacancy is a single job posting returned by a provider search.
// Salary is nil when the posting carries no salary block at all.
type Vacancy struct {
	Title   string  `json:"title"`
	Company string  `json:"company"`
	URL     string  `json:"url"`
	Salary  *Salary `json:"salary,omitempty"`
}

// LanguageStats summarizes the vacancies found for one language.
// AverageSalary is only meaningful when HasAverage is true; it stays
// zero when not a single vacancy yielded a salary estimate.
type LanguageStats struct {
	VacanciesFound     int  `json:"vacancies_found"`
	VacanciesProcessed int  `json:"vacancies_processed"`
	AverageSalary      int  `json:"average_salary"`
	HasAverage         bool `json:"-"`
}

// Report holds the per-language stats for one provider run.
// Languages preserves the configured order for rendering.
type Report struct {
	Title     string
	Languages []string
	Stats     map[string]LanguageStats
}

// ScrapeProgress tracks the progress of an aggregation run.
// Bar may be nil when progress display is disabled (tests, -silence).
type ScrapeProgress struct {
	FoundVacancies int `json:"found_vacancies"`
	Bar            *pb.ProgressBar
}

// Advance bumps the progress bar by one language, if one is attached.
func (p *ScrapeProgress) Advance() {
	if p != nil && p.Bar != nil {
		p.Bar.Increment()
	}
}
