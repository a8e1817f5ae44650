package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustQuery(t *testing.T, raw string) url.Values {
	t.Helper()
	values, err := url.ParseQuery(raw)
	require.NoError(t, err)
	return values
}

func TestSynchronize(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantOK      bool
		wantChanged bool
		wantTarget  string
	}{
		{name: "no rows", raw: "", wantOK: false},
		{name: "rows outside allow-list", raw: "rows=7", wantOK: false},
		{name: "non numeric rows", raw: "rows=abc", wantOK: false},
		{name: "already synchronised", raw: "rows=20", wantOK: true, wantChanged: false, wantTarget: "/page/2?rows=20"},
		{name: "leading zero normalised", raw: "rows=050", wantOK: true, wantChanged: true, wantTarget: "/page/2?rows=50"},
		{name: "trailing garbage dropped", raw: "rows=20abc", wantOK: true, wantChanged: true, wantTarget: "/page/2?rows=20"},
		{name: "trailing garbage outside allow-list", raw: "rows=7abc", wantOK: false},
		{name: "other keys kept", raw: "q=abc&rows=100", wantOK: true, wantChanged: false, wantTarget: "/page/2?q=abc&rows=100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, changed, ok := Synchronize("/page/2", mustQuery(t, tt.raw))

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantChanged, changed)
			if tt.wantOK {
				assert.Equal(t, tt.wantTarget, target)
			}
		})
	}
}

func TestSynchronize_Idempotent(t *testing.T) {
	target, changed, ok := Synchronize("/page/1", mustQuery(t, "rows=010"))
	require.True(t, ok)
	require.True(t, changed)

	u, err := url.Parse(target)
	require.NoError(t, err)

	again, changed, ok := Synchronize(u.Path, u.Query())
	assert.True(t, ok)
	assert.False(t, changed)
	assert.Equal(t, target, again)
}

func TestSynchronize_DivergesFromSlicer(t *testing.T) {
	// rows=7 is honoured by the slicer but never canonicalised here.
	_, _, ok := Synchronize("/page/1", mustQuery(t, "rows=7"))
	assert.False(t, ok)
}

func TestRowsURL(t *testing.T) {
	values := mustQuery(t, "rows=10&q=sunt")

	assert.Equal(t, "/page/7?q=sunt&rows=50", RowsURL("/page/7", values, 50))
	assert.Equal(t, "10", values.Get("rows"), "input must not be mutated")
	assert.Equal(t, "/page/3?rows=20", RowsURL("/page/3", url.Values{}, 20))
}

func TestRowsOptions(t *testing.T) {
	opts := RowsOptions("/page/2", url.Values{}, 50)

	require.Len(t, opts, 4)
	assert.Equal(t, []int{10, 20, 50, 100}, []int{opts[0].Rows, opts[1].Rows, opts[2].Rows, opts[3].Rows})
	assert.True(t, opts[2].Selected)
	assert.False(t, opts[0].Selected)
	assert.Equal(t, "/page/2?rows=100", opts[3].URL)
}

func TestNewNav(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		total    int
		wantPrev string
		wantNext string
		showPrev bool
		showNext bool
	}{
		{name: "first page", current: 1, total: 3, showNext: true, wantNext: "/page/2"},
		{name: "middle page", current: 2, total: 3, showPrev: true, wantPrev: "/page/1", showNext: true, wantNext: "/page/3"},
		{name: "last page", current: 3, total: 3, showPrev: true, wantPrev: "/page/2"},
		{name: "single page", current: 1, total: 1},
		{name: "past the end", current: 9, total: 3, showPrev: true, wantPrev: "/page/8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav := NewNav(tt.current, tt.total)

			assert.Equal(t, tt.showPrev, nav.ShowPrev)
			assert.Equal(t, tt.showNext, nav.ShowNext)
			assert.Equal(t, tt.wantPrev, nav.PrevURL)
			assert.Equal(t, tt.wantNext, nav.NextURL)
		})
	}
}

func TestCanonicalPageURL(t *testing.T) {
	assert.Equal(t, "/page/1", CanonicalPageURL(url.Values{}))
	assert.Equal(t, "/page/1?rows=20", CanonicalPageURL(mustQuery(t, "rows=20")))
}
