package assets

// DefaultStyleName is the style used when none is configured.
const DefaultStyleName = "default"

var defaultLoader = NewEmbeddedLoader()

// Styles lists the built-in style names.
func Styles() []string {
	return defaultLoader.Styles()
}
