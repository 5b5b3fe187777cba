package ddlsort

// SortOptions configures sorting behavior.
type SortOptions struct {
	// IgnoreFile is an optional path to a .ddlsortignore TOML file listing
	// table name patterns to drop from the batch. A missing file is treated
	// the same as no file.
	IgnoreFile string
}
