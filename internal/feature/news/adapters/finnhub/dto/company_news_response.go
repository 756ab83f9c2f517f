// Package dto defines data transfer objects for the Finnhub API responses.
package dto

// CompanyNewsItem represents one element of the JSON array returned by the
// Finnhub /api/v1/company-news endpoint. Datetime is Unix seconds.
type CompanyNewsItem struct {
	Category string `json:"category"`
	Datetime int64  `json:"datetime"`
	Headline string `json:"headline"`
	ID       int64  `json:"id"`
	Image    string `json:"image"`
	Related  string `json:"related"`
	Source   string `json:"source"`
	Summary  string `json:"summary"`
	URL      string `json:"url"`
}
