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
	hhBaseURL = "https://api.hh.ru"
	hhPerPage = 20
)

// hhArea is one node of the HeadHunter geographic tree
// (country → region → city).
type hhArea struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Areas []hhArea `json:"areas"`
}

type hhSearchResponse struct {
	Items []hhVacancy `json:"items"`
	Pages int         `json:"pages"`
	Found int         `json:"found"`
}

type hhVacancy struct {
	Name     string `json:"name"`
	Employer struct {
		Name string `json:"name"`
	} `json:"employer"`
	AlternateURL string    `json:"alternate_url"`
	Salary       *hhSalary `json:"salary"`
}

type hhSalary struct {
	From     *int   `json:"from"`
	To       *int   `json:"to"`
	Currency string `json:"currency"`
}

// HeadHunter searches vacancies through the public api.hh.ru endpoints.
// PeriodDays narrows results to postings published within that many
// days; 0 disables the filter.
type HeadHunter struct {
	BaseURL    string
	Client     *http.Client
	PeriodDays int
	Debug      bool
}

// NewHeadHunter creates a HeadHunter provider with the production API
// base URL.
func NewHeadHunter(httpClient *http.Client, periodDays int, debug bool) *HeadHunter {
	return &HeadHunter{
		BaseURL:    hhBaseURL,
		Client:     httpClient,
		PeriodDays: periodDays,
		Debug:      debug,
	}
}

func (h *HeadHunter) Name() string { return "HeadHunter" }

func (h *HeadHunter) RubCurrency() string { return "RUR" }

// ResolveArea fetches the full area tree and walks it depth-first for
// an exact name match. The first match in document order wins.
func (h *HeadHunter) ResolveArea(ctx context.Context, city string) (string, error) {
	var tree []hhArea
	if err := client.GetJSON(ctx, h.Client, h.BaseURL+"/areas", nil, nil, &tree); err != nil {
		return "", err
	}

	// Iterative preorder DFS with an explicit stack, so deep
	// hierarchies cannot blow the call stack.
	stack := make([]hhArea, 0, len(tree))
	for i := len(tree) - 1; i >= 0; i-- {
		stack = append(stack, tree[i])
	}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node.Name == city {
			return node.ID, nil
		}
		for i := len(node.Areas) - 1; i >= 0; i-- {
			stack = append(stack, node.Areas[i])
		}
	}

	return "", fmt.Errorf("%w: HeadHunter has no area named %q", ErrAreaNotFound, city)
}

// SearchVacancies pages through /vacancies until the reported page
// count is exhausted, accumulating items in server order.
func (h *HeadHunter) SearchVacancies(ctx context.Context, query, areaID string) ([]models.Vacancy, error) {
	var vacancies []models.Vacancy

	for page := 0; ; page++ {
		params := url.Values{}
		params.Set("text", query)
		params.Set("per_page", strconv.Itoa(hhPerPage))
		params.Set("page", strconv.Itoa(page))
		if areaID != "" {
			params.Set("area", areaID)
		}
		if h.PeriodDays > 0 {
			params.Set("period", strconv.Itoa(h.PeriodDays))
		}

		var resp hhSearchResponse
		if err := client.GetJSON(ctx, h.Client, h.BaseURL+"/vacancies", params, nil, &resp); err != nil {
			return nil, err
		}

		if h.Debug {
			fmt.Printf("HeadHunter: page %d/%d for %q, %d items\n", page+1, resp.Pages, query, len(resp.Items))
		}

		for _, item := range resp.Items {
			vacancies = append(vacancies, item.toVacancy())
		}

		if page+1 >= resp.Pages {
			break
		}
	}

	return vacancies, nil
}

func (v hhVacancy) toVacancy() models.Vacancy {
	vacancy := models.Vacancy{
		Title:   v.Name,
		Company: v.Employer.Name,
		URL:     v.AlternateURL,
	}
	if v.Salary != nil {
		vacancy.Salary = &models.Salary{
			From:     derefInt(v.Salary.From),
			To:       derefInt(v.Salary.To),
			Currency: v.Salary.Currency,
		}
	}
	return vacancy
}

func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
