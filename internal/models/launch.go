package models

import "time"

// PatchLinks holds mission patch image URLs
type PatchLinks struct {
	Small *string `json:"small"`
}

// LaunchLinks holds the external links attached to a launch
type LaunchLinks struct {
	Patch   PatchLinks `json:"patch"`
	Article *string    `json:"article"`
	Webcast *string    `json:"webcast"`
}

// Launch is a normalized upcoming launch
type Launch struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	DateUTC string      `json:"date_utc"`
	Details string      `json:"details"`
	Success *bool       `json:"success"` // nil until the flight has flown
	Links   LaunchLinks `json:"links"`
}

// dateLayouts are tried in order; the last two cover timestamps without a
// zone and bare dates, both read as UTC
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Date parses DateUTC. Unparseable values return the zero time.
func (l Launch) Date() time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, l.DateUTC); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Delayed reports whether the launch has been flagged as unsuccessful
func (l Launch) Delayed() bool {
	return l.Success != nil && !*l.Success
}

// ArticleURL returns the article link or an empty string
func (l Launch) ArticleURL() string {
	if l.Links.Article == nil {
		return ""
	}
	return *l.Links.Article
}

// LaunchRecord is the raw API launch shape. Every nested field is optional.
type LaunchRecord struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	DateUTC string  `json:"date_utc"`
	Details *string `json:"details"`
	Success *bool   `json:"success"`
	Links   *struct {
		Patch *struct {
			Small *string `json:"small"`
		} `json:"patch"`
		Article *string `json:"article"`
		Webcast *string `json:"webcast"`
	} `json:"links"`
}
