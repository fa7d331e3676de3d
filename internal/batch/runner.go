package batch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/youruser/suitcasegen/internal/catalog"
	"github.com/youruser/suitcasegen/internal/util"
)

var ErrNoProducer = errors.New("batch: no producer configured")

// Producer writes the image for one product to dst.
type Producer interface {
	Produce(ctx context.Context, p catalog.Product, dst string) error
}

// Namer returns the image number used in the output file name, or "" to skip
// the product.
type Namer func(catalog.Product) string

// PlaceholderName uses the first digit run of the image URL, falling back to
// the product id.
func PlaceholderName(p catalog.Product) string { return p.ImageNumber() }

// AIName uses the digits of the image URL file name; products without any are
// skipped.
func AIName(p catalog.Product) string { return p.FileDigits() }

type Options struct {
	// ItemsDir receives image{N}.png files.
	ItemsDir   string
	StartIndex int
	// SkipExisting leaves already present files untouched.
	SkipExisting bool
	// Delay is waited between two producer calls.
	Delay time.Duration
	// ContinueOnError logs producer failures and moves on instead of stopping.
	ContinueOnError bool
	Namer           Namer
	Logger          *zap.Logger
}

// PlaceholderOptions mirrors the catalog placeholder run: skip the first
// startIndex products and every image already on disk, stop on errors.
func PlaceholderOptions(itemsDir string, startIndex int) Options {
	return Options{
		ItemsDir:     itemsDir,
		StartIndex:   startIndex,
		SkipExisting: true,
		Namer:        PlaceholderName,
	}
}

// AIOptions mirrors the hosted-model run: every product with digits in its
// image name, a pause between requests, failures skipped.
func AIOptions(itemsDir string, delay time.Duration) Options {
	return Options{
		ItemsDir:        itemsDir,
		Delay:           delay,
		ContinueOnError: true,
		Namer:           AIName,
	}
}

// Report counts what a run did. Paths lists the files written.
type Report struct {
	Generated int      `json:"generated"`
	Skipped   int      `json:"skipped"`
	Failed    int      `json:"failed"`
	Paths     []string `json:"paths"`
}

// Runner walks a catalog sequentially and hands each product to a Producer.
type Runner struct {
	producer Producer
	opts     Options
	logger   *zap.Logger
	wait     func(ctx context.Context, d time.Duration) error
}

func NewRunner(producer Producer, opts Options) *Runner {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Namer == nil {
		opts.Namer = PlaceholderName
	}
	return &Runner{
		producer: producer,
		opts:     opts,
		logger:   logger,
		wait:     sleepCtx,
	}
}

// OutputPath is where the image for p goes, "" when p is skipped by name.
func (r *Runner) OutputPath(p catalog.Product) string {
	n := r.opts.Namer(p)
	if n == "" {
		return ""
	}
	return filepath.Join(r.opts.ItemsDir, fmt.Sprintf("image%s.png", n))
}

// Run processes products[StartIndex:]. The context is checked between items;
// an item in progress always finishes.
func (r *Runner) Run(ctx context.Context, products []catalog.Product) (Report, error) {
	var rep Report
	if r.producer == nil {
		return rep, ErrNoProducer
	}
	if r.opts.StartIndex >= len(products) {
		return rep, nil
	}

	first := max(r.opts.StartIndex, 0)
	produced := 0
	for i, p := range products[first:] {
		if err := ctx.Err(); err != nil {
			return rep, err
		}

		dst := r.OutputPath(p)
		if dst == "" {
			r.logger.Info("skipping product without image number", zap.String("id", string(p.ID)))
			rep.Skipped++
			continue
		}
		if r.opts.SkipExisting && util.FileExists(dst) {
			r.logger.Info("skipping (exists)", zap.String("path", dst))
			rep.Skipped++
			continue
		}

		if produced > 0 && r.opts.Delay > 0 {
			if err := r.wait(ctx, r.opts.Delay); err != nil {
				return rep, err
			}
		}
		produced++

		r.logger.Info("generating",
			zap.String("path", dst),
			zap.String("caption", p.Caption()),
			zap.String("color", p.ColorOrDefault()))
		if err := r.producer.Produce(ctx, p, dst); err != nil {
			rep.Failed++
			if !r.opts.ContinueOnError {
				return rep, fmt.Errorf("product %d (%s): %w", first+i, p.ID, err)
			}
			r.logger.Warn("generation failed", zap.String("path", dst), zap.Error(err))
			continue
		}
		rep.Generated++
		rep.Paths = append(rep.Paths, dst)
	}
	return rep, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
