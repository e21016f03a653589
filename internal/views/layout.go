package views

import "strings"

// NavLink is one entry in the site's primary navigation.
type NavLink struct {
	Href    string `json:"href"`
	Label   string `json:"label"`
	Current bool   `json:"current"`
}

// navLinks mirrors the shared site header.
var navLinks = []NavLink{
	{Href: "index.html", Label: "Main page"},
	{Href: "calendar.html", Label: "Calendar"},
	{Href: "events.html", Label: "Events"},
	{Href: "clubs.html", Label: "Clubs"},
	{Href: "about.html", Label: "About"},
}

// Nav returns the primary navigation with the link matching path marked
// current. An empty path or bare "/" counts as the main page.
func Nav(path string) []NavLink {
	current := strings.ToLower(lastSegment(path))
	if current == "" {
		current = "index.html"
	}

	links := make([]NavLink, len(navLinks))
	for i, l := range navLinks {
		l.Current = strings.ToLower(l.Href) == current
		links[i] = l
	}
	return links
}

func lastSegment(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}
