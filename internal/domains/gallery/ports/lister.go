package ports

// Lister enumerates the image files directly inside one folder.
// Results are base filenames sorted ascending in byte order; an empty
// result is not an error.
type Lister interface {
	ListImages(folder string) ([]string, error)
}
