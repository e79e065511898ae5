package pkpass

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"loyalty-pass-service/internal/core/domain"

	"github.com/spf13/afero"
)

// TemplateLoader implements ports.TemplateLoader by reading a pass template
// directory (pass.json, images, .lproj folders) from an afero filesystem.
type TemplateLoader struct {
	fs  afero.Fs
	dir string
}

// NewTemplateLoader creates a loader for the template rooted at dir.
func NewTemplateLoader(fs afero.Fs, dir string) *TemplateLoader {
	return &TemplateLoader{fs: fs, dir: dir}
}

// Load reads every regular file under the template directory. Hidden files
// and a stale manifest or signature are skipped.
func (l *TemplateLoader) Load(ctx context.Context) (*domain.PassTemplate, error) {
	files := make(map[string][]byte)

	err := afero.Walk(l.fs, l.dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if strings.HasPrefix(info.Name(), ".") {
			if info.IsDir() && path != l.dir {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(l.dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rel == manifestFile || rel == signatureFile {
			return nil
		}

		data, err := afero.ReadFile(l.fs, path)
		if err != nil {
			return err
		}
		files[rel] = data
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading pass template %s: %w", l.dir, err)
	}

	if _, ok := files[domain.PassDefinitionFile]; !ok {
		return nil, fmt.Errorf("pass template %s has no %s", l.dir, domain.PassDefinitionFile)
	}

	return &domain.PassTemplate{Files: files}, nil
}

// Ping implements ports.HealthChecker by loading the template.
func (l *TemplateLoader) Ping(ctx context.Context) error {
	_, err := l.Load(ctx)
	return err
}

// Name returns the dependency name.
func (l *TemplateLoader) Name() string {
	return "pass_template"
}
