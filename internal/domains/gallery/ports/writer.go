package ports

// PageWriter persists generated HTML pages. Existing files are
// overwritten unconditionally.
type PageWriter interface {
	EnsureDir(dir string) error
	WritePage(path string, content []byte) error
}
