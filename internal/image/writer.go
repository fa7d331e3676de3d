package imagepkg

import (
	"image"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/youruser/suitcasegen/internal/util"
)

// ResolveOutputPath anchors a relative path at base. Absolute paths are
// returned cleaned but otherwise untouched.
func ResolveOutputPath(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(base, path))
}

// SaveImage resolves path against base, creates the missing directories and
// writes img in the format implied by the extension. Errors are returned as
// the filesystem reported them.
func SaveImage(img image.Image, base, path string) (string, error) {
	abs := ResolveOutputPath(base, path)
	if err := util.EnsureDir(filepath.Dir(abs)); err != nil {
		return "", err
	}
	if err := imaging.Save(img, abs); err != nil {
		return "", err
	}
	return abs, nil
}

// Generate renders spec and saves it to path, resolved against base.
func (r *Renderer) Generate(spec RenderSpec, base, path string) (*Result, string, error) {
	res, err := r.Render(spec)
	if err != nil {
		return nil, "", err
	}
	abs, err := SaveImage(res.Image, base, path)
	if err != nil {
		return nil, "", err
	}
	return res, abs, nil
}
