package handler

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GoArmGo/photopager/internal/domain"
	"github.com/GoArmGo/photopager/internal/usecase"
)

func TestNewPageView(t *testing.T) {
	page := domain.PageResult{
		Photos:      photos(20),
		CurrentPage: 2,
		TotalPages:  10,
		RowsPerPage: 20,
	}

	tests := []struct {
		name      string
		values    url.Values
		req       domain.PageRequest
		res       *usecase.BrowseResult
		needsSync bool
		syncURL   string
		errMsg    string
		selected  int
	}{
		{
			name:     "plain page",
			values:   url.Values{"rows": {"20"}},
			req:      domain.PageRequest{Page: 2, RowsPerPage: 20},
			res:      &usecase.BrowseResult{PageResult: page, Visible: page.Photos},
			selected: 20,
		},
		{
			name:      "rows needs canonical form",
			values:    url.Values{"rows": {"020"}, "q": {"x"}},
			req:       domain.PageRequest{Page: 2, RowsPerPage: 20, SearchTerm: "x"},
			res:       &usecase.BrowseResult{PageResult: page, SearchTerm: "x"},
			needsSync: true,
			syncURL:   "/page/2?q=x&rows=20",
			selected:  20,
		},
		{
			name:     "fetch failed",
			values:   url.Values{},
			req:      domain.PageRequest{Page: 2, RowsPerPage: 10},
			errMsg:   fetchErrorMessage,
			selected: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := newPageView("/page/2", tt.values, tt.req, tt.res)

			assert.Equal(t, tt.needsSync, view.NeedsSync)
			assert.Equal(t, tt.syncURL, view.SyncURL)
			assert.Equal(t, tt.errMsg, view.ErrorMessage)
			assert.Equal(t, tt.req.SearchTerm != "", view.Searching)
			assert.Equal(t, 2, view.Nav.CurrentPage)
			assert.True(t, view.Nav.ShowPrev)

			for _, opt := range view.RowsOptions {
				assert.Equal(t, opt.Rows == tt.selected, opt.Selected, "rows=%d", opt.Rows)
			}
		})
	}
}

func TestNewPageView_ErrorStateHasEmptyData(t *testing.T) {
	view := newPageView("/page/4", url.Values{}, domain.PageRequest{Page: 4, RowsPerPage: 10}, nil)

	assert.Empty(t, view.Photos)
	assert.NotNil(t, view.PageData.Photos)
	assert.Equal(t, 0, view.TotalPages)
	assert.False(t, view.Nav.ShowNext)
	assert.Equal(t, "/page/3", view.Nav.PrevURL)
}

func TestNewPageView_RowsInQuery(t *testing.T) {
	req := domain.PageRequest{Page: 1, RowsPerPage: 10}

	assert.False(t, newPageView("/page/1", url.Values{"q": {"sunt"}}, req, nil).RowsInQuery)
	assert.True(t, newPageView("/page/1", url.Values{"rows": {"10"}}, req, nil).RowsInQuery)
}
