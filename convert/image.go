package convert

import "regexp"

// CDN resizing suffix inserted before the file extension,
// e.g. "dish_w1200h630q80.jpg".
var resizeSuffixRe = regexp.MustCompile(`_w\d+h\d+[^./]*(\.[A-Za-z0-9]+)$`)

// CleanImageURL strips a CDN image-resizing segment from the URL to recover
// the original asset. URLs without the segment pass through unchanged.
func CleanImageURL(url string) string {
	return resizeSuffixRe.ReplaceAllString(url, "$1")
}
