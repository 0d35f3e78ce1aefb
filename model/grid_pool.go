package model

import (
	"sync"

	"github.com/pkg/errors"
)

// GridToPool returns a grid to the pool for reuse
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles grid buffers across resets
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Get retrieves an all-dead grid with the given dimensions
func (p *GridPool) Get(rows, cols int) (*Grid, error) {
	g := p.pool.Get().(*Grid)
	if err := g.reset(rows, cols); err != nil {
		p.pool.Put(g)
		return nil, errors.Wrap(err, "[GridPool.Get]")
	}
	return g, nil
}

// Put returns a grid to the pool, clearing its state
func (p *GridPool) Put(g *Grid) {
	g.SeedEmpty()
	p.pool.Put(g)
}
