package ports

// Walker lists every directory reachable from root, root included,
// sorted lexicographically by full path (not traversal order).
type Walker interface {
	ListDirs(root string) ([]string, error)
}
