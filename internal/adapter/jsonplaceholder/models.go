package jsonplaceholder

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/GoArmGo/photopager/internal/domain"
)

// PhotoResponse — элемент массива, который отдаёт /photos.
type PhotoResponse struct {
	AlbumID      int    `json:"albumId"`
	ID           int    `json:"id"`
	Title        string `json:"title"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

var titlePolicy = bluemonday.StrictPolicy()

// plainTitle убирает разметку из заголовка внешнего API: в домен попадает только текст.
func plainTitle(title string) string {
	if !strings.ContainsRune(title, '<') {
		return title
	}
	return html.UnescapeString(titlePolicy.Sanitize(title))
}

func mapPhotoToDomain(p PhotoResponse) domain.Photo {
	return domain.Photo{
		ID:           p.ID,
		AlbumID:      p.AlbumID,
		Title:        plainTitle(p.Title),
		URL:          p.URL,
		ThumbnailURL: p.ThumbnailURL,
	}
}
