package gallery

// FolderReportV1 describes one generated per-folder report page.
type FolderReportV1 struct {
	Path       string `json:"path"`
	RelPath    string `json:"relPath"`
	ImageCount int    `json:"imageCount"`
	ReportPath string `json:"reportPath"`
}

// GalleryReportV1 is the result of a full generation run.
type GalleryReportV1 struct {
	RootPath      string           `json:"rootPath"`
	OutputsPath   string           `json:"outputsPath"`
	Folders       []FolderReportV1 `json:"folders"`
	SiteIndexPath string           `json:"siteIndexPath"`
	RootIndexPath string           `json:"rootIndexPath"`
}
