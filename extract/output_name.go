package extract

import "github.com/gosimple/slug"

// outputName derives a stylesheet file name from the root selector,
// e.g. ".sec01 .card" becomes "sec01-card.css".
func outputName(selector string) string {
	name := slug.Make(selector)
	if name == "" {
		name = "skeleton"
	}
	return name + ".css"
}
