package site

import (
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/pacesnailbar/nailbar/internal/progress"
)

type exportFile struct {
	rel  string
	data func() ([]byte, error)
}

// Export writes the page, its static assets and any gallery images served
// from the uploads directory into dir, for static hosting. Exported pages
// have no live session: the carousel is navigated in the browser only.
// Returns the number of files written.
func (s *Site) Export(dir string, reporter progress.Reporter) (int, error) {
	if reporter == nil {
		reporter = progress.Discard{}
	}

	p, err := s.page(0, "static")
	if err != nil {
		return 0, err
	}
	p.Live = false
	page, err := s.render(p)
	if err != nil {
		return 0, err
	}

	files := []exportFile{{rel: "index.html", data: func() ([]byte, error) { return page, nil }}}

	assets, err := fs.ReadDir(staticFiles, "static")
	if err != nil {
		return 0, fmt.Errorf("reading static assets: %w", err)
	}
	for _, a := range assets {
		name := "static/" + a.Name()
		files = append(files, exportFile{rel: name, data: func() ([]byte, error) { return staticFiles.ReadFile(name) }})
	}

	if s.opts.UploadsDir != "" {
		for _, uri := range s.content.Gallery {
			rel, ok := strings.CutPrefix(uri, "/uploads/")
			if !ok {
				continue
			}
			rel, err = url.PathUnescape(rel)
			if err != nil {
				return 0, fmt.Errorf("gallery image %s: %w", uri, err)
			}
			rel = path.Clean(rel)
			if !fs.ValidPath(rel) {
				return 0, fmt.Errorf("gallery image %s escapes the uploads directory", uri)
			}
			src := filepath.Join(s.opts.UploadsDir, filepath.FromSlash(rel))
			files = append(files, exportFile{rel: "uploads/" + rel, data: func() ([]byte, error) { return os.ReadFile(src) }})
		}
	}

	reporter.Start(len(files))
	defer reporter.Finish()
	for i, f := range files {
		reporter.Update(i+1, f.rel)
		data, err := f.data()
		if err != nil {
			return i, fmt.Errorf("reading %s: %w", f.rel, err)
		}
		outPath := filepath.Join(dir, filepath.FromSlash(f.rel))
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return i, fmt.Errorf("creating directory for %s: %w", f.rel, err)
		}
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return i, fmt.Errorf("writing %s: %w", f.rel, err)
		}
	}

	s.logger.Info("site exported", zap.String("dir", dir), zap.Int("files", len(files)))
	return len(files), nil
}
