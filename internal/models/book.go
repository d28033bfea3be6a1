package models

type Book struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Slug   string `json:"slug"`
	Year   int    `json:"year"`
	Pages  int    `json:"pages"`
}

// BookDashboard aggregates the whole catalog in one query.
type BookDashboard struct {
	Books  int64 `json:"books"`
	Pages  int64 `json:"pages"`
	Oldest int   `json:"oldest"`
	Newest int   `json:"newest"`
}
