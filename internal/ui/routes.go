package ui

import "strings"

// Page identifies one of the app's top-level views
type Page int

const (
	PageDashboard Page = iota
	PageMissions
	PageAnalytics
)

// pages in navigation order
var pages = []Page{PageDashboard, PageMissions, PageAnalytics}

// String returns the page label shown in the tab bar
func (p Page) String() string {
	switch p {
	case PageMissions:
		return "Missions"
	case PageAnalytics:
		return "Analytics"
	default:
		return "Dashboard"
	}
}

// Route returns the path the page is mounted at
func (p Page) Route() string {
	switch p {
	case PageMissions:
		return "/missions"
	case PageAnalytics:
		return "/analytics"
	default:
		return "/"
	}
}

// ResolveRoute maps a path to its page. Unknown paths resolve to the
// dashboard. A trailing slash and a missing leading slash are tolerated.
func ResolveRoute(path string) Page {
	path = strings.TrimSpace(path)
	if path != "/" {
		path = "/" + strings.Trim(path, "/")
	}
	switch path {
	case "/missions":
		return PageMissions
	case "/analytics":
		return PageAnalytics
	default:
		return PageDashboard
	}
}

// next returns the page after p, wrapping around
func (p Page) next() Page {
	return pages[(int(p)+1)%len(pages)]
}

// prev returns the page before p, wrapping around
func (p Page) prev() Page {
	return pages[(int(p)+len(pages)-1)%len(pages)]
}
