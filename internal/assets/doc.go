// Package assets provides the stylesheets inlined into standalone HTML documents.
//
// # Loaders
//
//	StyleLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in styles compiled into the binary
//	    ├── FilesystemLoader  - {name}.css files from a directory on disk
//	    └── Resolver          - custom directory first, built-in fallback
//
// A custom directory may override a built-in style by using its name.
//
// # Security
//
// Style names are validated so they cannot name a path. FilesystemLoader
// resolves symlinks and verifies every file stays within its directory.
package assets
