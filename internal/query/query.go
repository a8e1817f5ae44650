// Package query строит URL страниц и синхронизирует параметр rows.
// Текущий путь и query передаются явно, глобального состояния роутера нет.
package query

import (
	"maps"
	"net/url"
	"strconv"

	"github.com/GoArmGo/photopager/internal/pagination"
)

const (
	RowsKey   = "rows"
	SearchKey = "q"
)

// PageURL возвращает путь страницы без query.
func PageURL(page int) string {
	return "/page/" + strconv.Itoa(page)
}

func withQuery(path string, values url.Values) string {
	encoded := values.Encode()
	if encoded == "" {
		return path
	}
	return path + "?" + encoded
}

func cloneValues(values url.Values) url.Values {
	out := make(url.Values, len(values))
	maps.Copy(out, values)
	return out
}

// Synchronize приводит rows в URL к явному числовому виду, если ведущие цифры
// значения дают число из pagination.AllowedRows ("20abc" становится "20"). При ok=false синхронизировать нечего.
// changed=false, если URL уже синхронизирован: повторный вызов ничего не меняет.
//
//nolint:nonamedreturns // три результата проще читать по именам.
func Synchronize(path string, values url.Values) (target string, changed, ok bool) {
	rows, parsed := pagination.LeadingInt(values.Get(RowsKey))
	if !parsed || !pagination.IsAllowedRows(rows) {
		return "", false, false
	}

	merged := cloneValues(values)
	merged.Set(RowsKey, strconv.Itoa(rows))

	target = withQuery(path, merged)
	return target, target != withQuery(path, values), true
}

// RowsURL — переход селектора: тот же путь, rows заменён, остальные параметры
// сохраняются. Номер страницы не пересчитывается, даже если выходит за пределы.
func RowsURL(path string, values url.Values, rows int) string {
	merged := cloneValues(values)
	merged.Set(RowsKey, strconv.Itoa(rows))
	return withQuery(path, merged)
}

// CanonicalPageURL — куда перенаправлять при невалидном номере страницы.
func CanonicalPageURL(values url.Values) string {
	return withQuery(PageURL(pagination.DefaultPage), values)
}

// Nav описывает ссылки «Previous Page» / «Next Page».
type Nav struct {
	CurrentPage int
	ShowPrev    bool
	PrevURL     string
	ShowNext    bool
	NextURL     string
}

// NewNav строит навигацию. Ссылки ведут на /page/{n} без query: rows при
// переходе сбрасывается на значение по умолчанию.
func NewNav(currentPage, totalPages int) Nav {
	nav := Nav{
		CurrentPage: currentPage,
		ShowPrev:    currentPage > 1,
		ShowNext:    currentPage < totalPages,
	}
	if nav.ShowPrev {
		nav.PrevURL = PageURL(currentPage - 1)
	}
	if nav.ShowNext {
		nav.NextURL = PageURL(currentPage + 1)
	}
	return nav
}

// RowsOption — один пункт селектора размера страницы.
type RowsOption struct {
	Rows     int
	URL      string
	Selected bool
}

// RowsOptions возвращает пункты селектора для всех pagination.AllowedRows.
func RowsOptions(path string, values url.Values, current int) []RowsOption {
	opts := make([]RowsOption, 0, len(pagination.AllowedRows))
	for _, rows := range pagination.AllowedRows {
		opts = append(opts, RowsOption{
			Rows:     rows,
			URL:      RowsURL(path, values, rows),
			Selected: rows == current,
		})
	}
	return opts
}
