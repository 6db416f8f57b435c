// Package assets provides extra CSS styles and the standalone document
// template used around rendered Markdown.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from the go:embed filesystem
//	    ├── FilesystemLoader  - loads from a custom directory on disk
//	    └── AssetResolver     - custom first, embedded as fallback
//
// The built-in stylesheet of the renderer is not an asset: it lives in the
// markup package and is always emitted. Styles loaded here are appended
// after it and may override its rules.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css       # extra styles (e.g., dark.css)
//	└── templates/
//	    └── {name}.html      # document templates (e.g., document.html)
//
// # Security
//
// Asset names are validated against a strict character set.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
