package ports

// CaptionReader loads the optional captions sidecar of one folder.
// A missing sidecar yields an empty map, not an error.
type CaptionReader interface {
	Load(folder string) (map[string]string, error)
}
