package batch

import (
	"context"
	"os"
	"path/filepath"

	"github.com/youruser/suitcasegen/internal/aigen"
	"github.com/youruser/suitcasegen/internal/catalog"
	imagepkg "github.com/youruser/suitcasegen/internal/image"
	"github.com/youruser/suitcasegen/internal/util"
)

// PlaceholderProducer draws the procedural suitcase for each product.
type PlaceholderProducer struct {
	Renderer      *imagepkg.Renderer
	Width, Height int
}

func (pp PlaceholderProducer) Produce(_ context.Context, p catalog.Product, dst string) error {
	spec := imagepkg.NewRenderSpec(p.Caption(), p.ColorOrDefault(), p.SizeOrDefault(), pp.Width, pp.Height)
	_, _, err := pp.Renderer.Generate(spec, "", dst)
	return err
}

// AIProducer asks the hosted model for a product photo and stores the bytes
// as returned.
type AIProducer struct {
	Client *aigen.Client
}

func (ap AIProducer) Produce(ctx context.Context, p catalog.Product, dst string) error {
	b, err := ap.Client.Generate(ctx, aigen.Prompt(p))
	if err != nil {
		return err
	}
	if err := util.EnsureDir(filepath.Dir(dst)); err != nil {
		return err
	}
	return os.WriteFile(dst, b, 0o644)
}
