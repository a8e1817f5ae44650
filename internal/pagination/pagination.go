package pagination

import (
	"errors"
	"slices"
	"strconv"
	"strings"

	"github.com/GoArmGo/photopager/internal/domain"
)

const (
	DefaultRows = 10
	DefaultPage = 1
	MinPage     = 1
)

// AllowedRows — значения, которые предлагает селектор размера страницы.
var AllowedRows = []int{10, 20, 50, 100}

// ErrInvalidPage возвращается, если номер страницы не положительное целое.
var ErrInvalidPage = errors.New("page must be a positive integer")

// IsAllowedRows проверяет размер страницы по списку допустимых значений.
func IsAllowedRows(rows int) bool {
	return slices.Contains(AllowedRows, rows)
}

// LeadingInt разбирает целое в начале строки и игнорирует хвост: "20abc" даёт 20.
// ok=false, если цифр в начале нет или число не помещается в int.
func LeadingInt(raw string) (int, bool) {
	s := strings.TrimLeft(raw, " \t\n\r")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseRows разбирает параметр rows по ведущим цифрам. Пустое, нечисловое или
// неположительное значение даёт DefaultRows. Список AllowedRows здесь не применяется.
func ParseRows(raw string) int {
	rows, ok := LeadingInt(raw)
	if !ok || rows <= 0 {
		return DefaultRows
	}
	return rows
}

// ParsePage разбирает номер страницы из сегмента пути.
func ParsePage(raw string) (int, error) {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < MinPage {
		return 0, ErrInvalidPage
	}
	return page, nil
}

// TotalPages = ceil(total / rows). Для rows <= 0 возвращает 0.
func TotalPages(total, rows int) int {
	if rows <= 0 || total <= 0 {
		return 0
	}
	pages := total / rows
	if total%rows > 0 {
		pages++
	}
	return pages
}

// Bounds возвращает диапазон [start, end) страницы page, обрезанный по total.
// Если страница за пределами коллекции, start == end == total.
//
//nolint:nonamedreturns // start/end читаются лучше, чем два int.
func Bounds(total, page, rows int) (start, end int) {
	if rows <= 0 || page < MinPage || total <= 0 {
		return 0, 0
	}
	// сравнение до умножения: (page-1)*rows может переполнить int
	if page-1 >= TotalPages(total, rows) {
		return total, total
	}
	start = (page - 1) * rows
	end = start + rows
	if end > total {
		end = total
	}
	return start, end
}

// Slice строит PageResult для запроса по полной (неотфильтрованной) коллекции.
// Поиск по SearchTerm сюда не относится: его применяют к уже выданной странице.
func Slice(photos []domain.Photo, req domain.PageRequest) domain.PageResult {
	rows := req.RowsPerPage
	if rows <= 0 {
		rows = DefaultRows
	}

	start, end := Bounds(len(photos), req.Page, rows)

	page := make([]domain.Photo, end-start)
	copy(page, photos[start:end])

	return domain.PageResult{
		Photos:      page,
		CurrentPage: req.Page,
		TotalPages:  TotalPages(len(photos), rows),
		RowsPerPage: rows,
	}
}
