package domain

// Photo представляет фотографию из внешней коллекции.
// Поля приходят из источника без изменений и после загрузки не меняются.
type Photo struct {
	ID           int    `json:"id" db:"id"`
	AlbumID      int    `json:"albumId" db:"album_id"`
	Title        string `json:"title" db:"title"`
	URL          string `json:"url" db:"url"`
	ThumbnailURL string `json:"thumbnailUrl" db:"thumbnail_url"`
}

// PageRequest описывает запрошенную страницу, собирается из URL на каждый рендер.
type PageRequest struct {
	Page        int
	RowsPerPage int
	SearchTerm  string
}

// PageResult содержит срез коллекции для одной страницы.
// Считается заново на каждый запрос и нигде не кэшируется.
type PageResult struct {
	Photos      []Photo `json:"photos"`
	CurrentPage int     `json:"currentPage"`
	TotalPages  int     `json:"totalPages"`
	RowsPerPage int     `json:"rowsPerPage"`
}
