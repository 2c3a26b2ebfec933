// Package assets provides the footer sets appended to rendered mail bodies.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in footers)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in "default" footer set, embedded at
// compile time.
//
// FilesystemLoader allows users to provide custom footer sets from a
// directory, with path traversal protection and symlink resolution.
//
// AssetResolver is the loader used by the converter. It tries the custom
// FilesystemLoader first, falling back to EmbeddedLoader if the footer set
// is not found there.
//
// # Directory Structure
//
//	{basePath}/
//	└── footers/
//	    └── {name}/
//	        ├── footer.html      # appended to HTML bodies
//	        └── footer.txt       # appended to plain-text bodies
//
// One trailing newline is stripped from each file. Any other leading or
// trailing blank lines are part of the footer.
//
// # Placeholder
//
// Both footers must contain the %cancelurl% placeholder. It is left for the
// mailing platform to substitute.
package assets
