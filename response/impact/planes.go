package impact

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-response/dsp/binning"
	"github.com/cwbudde/algo-response/response/schema"
)

// NewPlanes builds every plane of fr concurrently. The result is ordered
// like fr.Planes. The first construction error cancels the planes not yet
// started and is returned.
func NewPlanes(ctx context.Context, fr *schema.FieldResponse, tbins binning.Binning, opts ...Option) ([]*Plane, error) {
	if fr == nil {
		return nil, ErrNoFieldResponse
	}
	cfg := ApplyOptions(opts...)

	planes := make([]*Plane, len(fr.Planes))

	g, gctx := errgroup.WithContext(ctx)
	if cfg.Concurrency > 0 {
		g.SetLimit(cfg.Concurrency)
	}

	for i := range fr.Planes {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p, err := newPlane(fr, i, tbins, cfg)
			if err != nil {
				return err
			}
			planes[i] = p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("impact: build planes: %w", err)
	}
	return planes, nil
}
