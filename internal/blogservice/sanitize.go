package blogservice

import "regexp"

var scriptTagPattern = regexp.MustCompile(`(?i)<\s*script[^>]*>(.*?)<\s*/\s*script\s*>`)

// sanitizeHTML strips script tags from rich-text input before it is stored.
func sanitizeHTML(html string) string {
	return scriptTagPattern.ReplaceAllString(html, "")
}
