package app

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	contractgallery "github.com/imgreport/imgreport/internal/contracts/v1/gallery"
	"github.com/imgreport/imgreport/internal/domains/gallery/domain"
	"github.com/imgreport/imgreport/internal/domains/gallery/ports"
	"github.com/imgreport/imgreport/internal/platform/errors"
	"github.com/imgreport/imgreport/internal/platform/paths"
)

const (
	// OutputsDirName is the fixed directory under the project root that is
	// scanned for report folders.
	OutputsDirName = "outputs"
	// SiteDirName holds the nested index page.
	SiteDirName = "site"
	// ReportFilename is written into every image-bearing folder.
	ReportFilename = "report.html"
	// IndexFilename names both index pages.
	IndexFilename = "index.html"
)

type Service struct {
	Lister   ports.Lister
	Captions ports.CaptionReader
	Walker   ports.Walker
	Writer   ports.PageWriter
	Logger   *zap.Logger
}

type GenerateRequest struct {
	RootPath string
}

type GenerateResult struct {
	Report contractgallery.GalleryReportV1
}

// Generate runs the whole pipeline: discover image-bearing folders under
// <root>/outputs, write one report page per folder, then write both index
// pages. Everything is sequential; a missing outputs directory is the only
// absorbed-and-reclassified failure, all other I/O errors abort the run.
func (s *Service) Generate(req GenerateRequest) (GenerateResult, error) {
	if s.Lister == nil || s.Captions == nil || s.Walker == nil || s.Writer == nil {
		return GenerateResult{}, errors.NewInternal("gallery service has nil dependencies", nil)
	}
	log := s.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if strings.TrimSpace(req.RootPath) == "" {
		req.RootPath = "."
	}

	rootAbs, err := filepath.Abs(req.RootPath)
	if err != nil {
		return GenerateResult{}, errors.NewInternal("failed to resolve root path", err)
	}
	outputsDir := filepath.Join(rootAbs, OutputsDirName)

	dirs, err := s.Walker.ListDirs(outputsDir)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return GenerateResult{}, errors.NewUsage("outputs directory not found: " + outputsDir)
		}
		return GenerateResult{}, err
	}
	log.Debug("walked outputs directory",
		zap.String("outputs", outputsDir),
		zap.Int("directories", len(dirs)))

	report := contractgallery.GalleryReportV1{
		RootPath:    rootAbs,
		OutputsPath: outputsDir,
	}
	var entries []domain.IndexEntry

	for _, dir := range dirs {
		images, err := s.Lister.ListImages(dir)
		if err != nil {
			return GenerateResult{}, err
		}
		if len(images) == 0 {
			continue
		}

		captions, err := s.Captions.Load(dir)
		if err != nil {
			return GenerateResult{}, err
		}

		page, err := domain.RenderReportPage(filepath.Base(dir), images, captions)
		if err != nil {
			return GenerateResult{}, errors.NewInternal("failed to render report for "+dir, err)
		}

		reportPath := filepath.Join(dir, ReportFilename)
		if err := s.Writer.WritePage(reportPath, page); err != nil {
			return GenerateResult{}, err
		}

		rel, err := paths.ToPosixRel(outputsDir, dir)
		if err != nil {
			return GenerateResult{}, err
		}

		report.Folders = append(report.Folders, contractgallery.FolderReportV1{
			Path:       dir,
			RelPath:    rel,
			ImageCount: len(images),
			ReportPath: reportPath,
		})
		entries = append(entries, domain.IndexEntry{
			RelPath:    rel,
			ReportRel:  rel + "/" + ReportFilename,
			ImageCount: len(images),
		})
		log.Debug("report built",
			zap.String("folder", dir),
			zap.Int("images", len(images)))
	}
	log.Info("reports generated", zap.Int("folders", len(report.Folders)))

	domain.SortEntries(entries)

	siteDir := filepath.Join(rootAbs, SiteDirName)
	if err := s.Writer.EnsureDir(siteDir); err != nil {
		return GenerateResult{}, err
	}

	sitePage, err := domain.RenderIndexPage("../"+OutputsDirName, entries)
	if err != nil {
		return GenerateResult{}, errors.NewInternal("failed to render site index", err)
	}
	report.SiteIndexPath = filepath.Join(siteDir, IndexFilename)
	if err := s.Writer.WritePage(report.SiteIndexPath, sitePage); err != nil {
		return GenerateResult{}, err
	}

	rootPage, err := domain.RenderIndexPage(OutputsDirName, entries)
	if err != nil {
		return GenerateResult{}, errors.NewInternal("failed to render root index", err)
	}
	report.RootIndexPath = filepath.Join(rootAbs, IndexFilename)
	if err := s.Writer.WritePage(report.RootIndexPath, rootPage); err != nil {
		return GenerateResult{}, err
	}

	return GenerateResult{Report: report}, nil
}
