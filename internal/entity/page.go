package entity

// PageMeta describes one page of a paginated listing.
type PageMeta struct {
	Current  int `json:"current"`
	PageSize int `json:"pageSize"`
	Pages    int `json:"pages"`
	Total    int `json:"total"`
}

// Page is a paginated slice of resume records.
type Page struct {
	Meta  PageMeta  `json:"meta"`
	Items []*Resume `json:"result"`
}
