package handler

import (
	"embed"
	"html/template"
	"net/url"

	"github.com/GoArmGo/photopager/internal/domain"
	"github.com/GoArmGo/photopager/internal/query"
	"github.com/GoArmGo/photopager/internal/usecase"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/page.html"))

// fetchErrorMessage показывается вместо фото, если источник недоступен.
const fetchErrorMessage = "Photos could not be loaded right now. Please try again later."

// pageView — всё, что нужно шаблону страницы.
type pageView struct {
	PagePath     string
	CurrentPage  int
	TotalPages   int
	RowsPerPage  int
	RowsInQuery  bool
	SearchTerm   string
	Searching    bool
	Photos       []domain.Photo
	Nav          query.Nav
	RowsOptions  []query.RowsOption
	ErrorMessage string

	// PageData встраивается в страницу как JSON
	PageData domain.PageResult

	NeedsSync bool
	SyncURL   string
}

func newPageView(path string, values url.Values, req domain.PageRequest, res *usecase.BrowseResult) pageView {
	view := pageView{
		PagePath:    path,
		CurrentPage: req.Page,
		RowsPerPage: req.RowsPerPage,
		RowsInQuery: values.Has(query.RowsKey),
		SearchTerm:  req.SearchTerm,
		Searching:   req.SearchTerm != "",
		RowsOptions: query.RowsOptions(path, values, req.RowsPerPage),
		PageData: domain.PageResult{
			Photos:      []domain.Photo{},
			CurrentPage: req.Page,
			RowsPerPage: req.RowsPerPage,
		},
	}

	if res == nil {
		view.ErrorMessage = fetchErrorMessage
	} else {
		view.TotalPages = res.TotalPages
		view.Photos = res.Visible
		view.PageData = res.PageResult
	}
	view.Nav = query.NewNav(view.CurrentPage, view.TotalPages)

	if target, changed, ok := query.Synchronize(path, values); ok && changed {
		view.NeedsSync = true
		view.SyncURL = target
	}
	return view
}
