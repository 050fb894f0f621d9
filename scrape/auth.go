package scrape

import (
	"net/url"
	"regexp"
	"strings"
)

// Login redirection markers. A fetched page is judged to be a login wall
// when its final resolved path contains one of the path patterns or its
// title contains one of the keywords, independently.
var (
	loginPathPatterns = []string{
		"/login",
		"/signin",
		"/sign-in",
		"/auth",
		"/connexion",
		"/account/login",
		"/user/login",
	}

	loginTitleKeywords = []string{
		"login",
		"sign in",
		"connexion",
		"se connecter",
		"log in",
		"anmelden",
		"iniciar sesión",
	}
)

var titleRe = regexp.MustCompile(`(?i)<title[^>]*>([^<]+)</title>`)

// Host returns the URL's hostname with any leading "www." removed.
// Unparsable URLs yield an empty string.
func Host(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return ""
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

// DetectAuthRequired reports whether a fetched page is a login wall,
// judged by the final resolved URL's path and the page title.
func DetectAuthRequired(finalURL, html string) bool {
	if u, err := url.Parse(finalURL); err == nil {
		path := strings.ToLower(u.Path)
		for _, pattern := range loginPathPatterns {
			if strings.Contains(path, pattern) {
				return true
			}
		}
	}

	if m := titleRe.FindStringSubmatch(html); m != nil {
		title := strings.ToLower(m[1])
		for _, keyword := range loginTitleKeywords {
			if strings.Contains(title, keyword) {
				return true
			}
		}
	}

	return false
}
