package driven

// Favicons derives an icon URL for a page. Pure derivation with no I/O
// failure mode: implementations never return an error, at worst an empty
// string.
type Favicons interface {
	// URLFor returns an icon URL for pageURL at the requested pixel size.
	URLFor(pageURL string, size int) string
}
