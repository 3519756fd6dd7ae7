// Package assets provides the CSS styles embedded in HTML output.
//
// # Loader Architecture
//
//	StyleLoader (interface)
//	    │
//	    ├── EmbeddedLoader - built-in styles compiled into the binary
//	    ├── DirLoader      - *.css files from a directory on disk
//	    └── Resolver       - DirLoader first, EmbeddedLoader as fallback
//
// A style is addressed by name, without extension: "github" loads
// styles/github.css. Names are validated so a name can never reach outside
// the style directory.
package assets
