package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmfrolov/salarystats/internal/client"
	"github.com/dmfrolov/salarystats/internal/models"
)

const (
	sjBaseURL = "https://api.superjob.ru/2.0"
	sjPerPage = 100
)

type sjTownsResponse struct {
	Objects []sjTown `json:"objects"`
	Total   int      `json:"total"`
}

type sjTown struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

type sjSearchResponse struct {
	Objects []sjVacancy `json:"objects"`
	Total   int         `json:"total"`
}

type sjVacancy struct {
	Profession  string `json:"profession"`
	FirmName    string `json:"firm_name"`
	Link        string `json:"link"`
	PaymentFrom int    `json:"payment_from"`
	PaymentTo   int    `json:"payment_to"`
	Currency    string `json:"currency"`
}

// SuperJob searches vacancies through api.superjob.ru. Every request
// carries the application key in the X-Api-App-Id header. CatalogueID
// narrows results to one job category; 0 disables the filter.
type SuperJob struct {
	BaseURL     string
	Client      *http.Client
	APIKey      string
	CatalogueID int
	Debug       bool
}

// NewSuperJob creates a SuperJob provider with the production API base
// URL.
func NewSuperJob(httpClient *http.Client, apiKey string, catalogueID int, debug bool) *SuperJob {
	return &SuperJob{
		BaseURL:     sjBaseURL,
		Client:      httpClient,
		APIKey:      apiKey,
		CatalogueID: catalogueID,
		Debug:       debug,
	}
}

func (s *SuperJob) Name() string { return "SuperJob" }

func (s *SuperJob) RubCurrency() string { return "rub" }

func (s *SuperJob) headers() http.Header {
	headers := http.Header{}
	headers.Set("X-Api-App-Id", s.APIKey)
	return headers
}

// ResolveArea queries the town-search endpoint and returns the id of
// the first match.
func (s *SuperJob) ResolveArea(ctx context.Context, city string) (string, error) {
	params := url.Values{}
	params.Set("keyword", city)
	params.Set("all", "true")

	var resp sjTownsResponse
	if err := client.GetJSON(ctx, s.Client, s.BaseURL+"/towns/", params, s.headers(), &resp); err != nil {
		return "", err
	}
	if len(resp.Objects) == 0 {
		return "", fmt.Errorf("%w: SuperJob has no town named %q", ErrAreaNotFound, city)
	}

	return strconv.Itoa(resp.Objects[0].ID), nil
}

// SearchVacancies pages through /vacancies/. SuperJob reports a total
// item count rather than a page count, so pages = total/100 + 1.
func (s *SuperJob) SearchVacancies(ctx context.Context, query, areaID string) ([]models.Vacancy, error) {
	var vacancies []models.Vacancy

	for page := 0; ; page++ {
		params := url.Values{}
		params.Set("keyword", query)
		params.Set("page", strconv.Itoa(page))
		params.Set("count", strconv.Itoa(sjPerPage))
		if s.CatalogueID > 0 {
			params.Set("catalogues", strconv.Itoa(s.CatalogueID))
		}
		if areaID != "" {
			params.Set("town", areaID)
		}

		var resp sjSearchResponse
		if err := client.GetJSON(ctx, s.Client, s.BaseURL+"/vacancies/", params, s.headers(), &resp); err != nil {
			return nil, err
		}

		pages := resp.Total/sjPerPage + 1
		if s.Debug {
			fmt.Printf("SuperJob: page %d/%d for %q, %d items\n", page+1, pages, query, len(resp.Objects))
		}

		for _, item := range resp.Objects {
			vacancies = append(vacancies, item.toVacancy())
		}

		if page+1 >= pages {
			break
		}
	}

	return vacancies, nil
}

func (v sjVacancy) toVacancy() models.Vacancy {
	return models.Vacancy{
		Title:   v.Profession,
		Company: v.FirmName,
		URL:     v.Link,
		Salary: &models.Salary{
			From:     v.PaymentFrom,
			To:       v.PaymentTo,
			Currency: v.Currency,
		},
	}
}
