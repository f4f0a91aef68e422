package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmfrolov/salarystats/internal/client"
)

const hhAreasTree = `[
  {"id": "113", "name": "Россия", "areas": [
    {"id": "1", "name": "Москва", "areas": []},
    {"id": "2", "name": "Санкт-Петербург", "areas": []},
    {"id": "1620", "name": "Республика Марий Эл", "areas": [
      {"id": "4228", "name": "Волжск", "areas": []}
    ]}
  ]},
  {"id": "5", "name": "Украина", "areas": [
    {"id": "2134", "name": "Волжск", "areas": []}
  ]}
]`

func newHeadHunterTest(t *testing.T, handler http.HandlerFunc) *HeadHunter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	hh := NewHeadHunter(srv.Client(), 30, false)
	hh.BaseURL = srv.URL
	return hh
}

func TestHeadHunterResolveArea(t *testing.T) {
	hh := newHeadHunterTest(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/areas", r.URL.Path)
		fmt.Fprint(w, hhAreasTree)
	})

	t.Run("city deep in the tree", func(t *testing.T) {
		id, err := hh.ResolveArea(context.Background(), "Москва")
		require.NoError(t, err)
		assert.Equal(t, "1", id)
	})

	t.Run("first match in document order wins", func(t *testing.T) {
		id, err := hh.ResolveArea(context.Background(), "Волжск")
		require.NoError(t, err)
		assert.Equal(t, "4228", id)
	})

	t.Run("idempotent within a run", func(t *testing.T) {
		first, err := hh.ResolveArea(context.Background(), "Санкт-Петербург")
		require.NoError(t, err)
		second, err := hh.ResolveArea(context.Background(), "Санкт-Петербург")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("unknown city", func(t *testing.T) {
		_, err := hh.ResolveArea(context.Background(), "Атлантида")
		assert.ErrorIs(t, err, ErrAreaNotFound)
	})
}

func TestHeadHunterSearchVacancies(t *testing.T) {
	pageBodies := []string{
		`{"pages": 2, "found": 3, "items": [
			{"name": "Программист Go", "employer": {"name": "Рога и Копыта"},
			 "alternate_url": "https://hh.ru/vacancy/1",
			 "salary": {"from": 100000, "to": 200000, "currency": "RUR"}},
			{"name": "Разработчик", "employer": {"name": "Копыта и Рога"},
			 "alternate_url": "https://hh.ru/vacancy/2", "salary": null}
		]}`,
		`{"pages": 2, "found": 3, "items": [
			{"name": "Senior Go", "employer": {"name": "ООО Вектор"},
			 "alternate_url": "https://hh.ru/vacancy/3",
			 "salary": {"from": null, "to": 300000, "currency": "RUR"}}
		]}`,
	}

	var gotPages []string
	hh := newHeadHunterTest(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/vacancies", r.URL.Path)
		assert.Equal(t, "программист Go", r.URL.Query().Get("text"))
		assert.Equal(t, "20", r.URL.Query().Get("per_page"))
		assert.Equal(t, "1", r.URL.Query().Get("area"))
		assert.Equal(t, "30", r.URL.Query().Get("period"))

		page := r.URL.Query().Get("page")
		gotPages = append(gotPages, page)
		if page == "0" {
			fmt.Fprint(w, pageBodies[0])
		} else {
			fmt.Fprint(w, pageBodies[1])
		}
	})

	vacancies, err := hh.SearchVacancies(context.Background(), "программист Go", "1")
	require.NoError(t, err)
	require.Len(t, vacancies, 3)
	assert.Equal(t, []string{"0", "1"}, gotPages)

	// Server order is preserved, salary shapes normalized.
	assert.Equal(t, "Программист Go", vacancies[0].Title)
	require.NotNil(t, vacancies[0].Salary)
	assert.Equal(t, 100000, vacancies[0].Salary.From)
	assert.Equal(t, 200000, vacancies[0].Salary.To)
	assert.Equal(t, "RUR", vacancies[0].Salary.Currency)

	assert.Nil(t, vacancies[1].Salary)

	require.NotNil(t, vacancies[2].Salary)
	assert.Equal(t, 0, vacancies[2].Salary.From)
	assert.Equal(t, 300000, vacancies[2].Salary.To)
}

func TestHeadHunterSearchVacancies_RequestFailed(t *testing.T) {
	hh := newHeadHunterTest(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "captcha required", http.StatusForbidden)
	})

	_, err := hh.SearchVacancies(context.Background(), "программист", "")
	assert.ErrorIs(t, err, client.ErrRequestFailed)
}

func TestHeadHunterSearchVacancies_OptionalFilters(t *testing.T) {
	hh := newHeadHunterTest(t, func(w http.ResponseWriter, r *http.Request) {
		_, hasArea := r.URL.Query()["area"]
		_, hasPeriod := r.URL.Query()["period"]
		assert.False(t, hasArea)
		assert.False(t, hasPeriod)
		fmt.Fprint(w, `{"pages": 1, "found": 0, "items": []}`)
	})
	hh.PeriodDays = 0

	vacancies, err := hh.SearchVacancies(context.Background(), "программист", "")
	require.NoError(t, err)
	assert.Empty(t, vacancies)
}
