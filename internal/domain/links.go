package domain

import "net/url"

// CustomLink is a user-provided link with an optional caption.
type CustomLink struct {
	URL         *url.URL
	Title       *string
	Description *string
}

// Links collects the web links of a place.
type Links struct {
	Homepage  *url.URL
	Image     *url.URL
	ImageHref *url.URL
	Custom    []CustomLink
}
