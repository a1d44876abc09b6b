// Package simulation drives the orchestrator with synthetic orders for
// load and soak testing.
package simulation

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"go.uber.org/zap"

	apporder "github.com/logistics/engine/internal/application/order"
	"github.com/logistics/engine/internal/domain/customer"
	"github.com/logistics/engine/internal/domain/inventory"
	"github.com/logistics/engine/internal/domain/order"
	"github.com/logistics/engine/internal/domain/shared"
	"github.com/logistics/engine/internal/infrastructure/config"
)

// catalogSampleSize bounds how many inventory rows one tick samples from.
const catalogSampleSize = 100

// OrderCreator is the slice of the orchestrator the producer drives.
type OrderCreator interface {
	Create(ctx context.Context, req apporder.CreateOrderRequest) (*order.Order, error)
}

// Producer periodically invokes the orchestrator with plausible synthetic
// orders. One long-running loop, started on boot when enabled; individual
// order failures are logged and never abort the loop.
type Producer struct {
	cfg       config.ProducerConfig
	orders    OrderCreator
	customers customer.CustomerRepository
	catalog   inventory.InventoryRepository
	logger    *zap.Logger
	rng       *rand.Rand

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
}

// NewProducer creates a producer. It does not start generating until Start
// is called.
func NewProducer(
	cfg config.ProducerConfig,
	orders OrderCreator,
	customers customer.CustomerRepository,
	catalog inventory.InventoryRepository,
	logger *zap.Logger,
) *Producer {
	return &Producer{
		cfg:       cfg,
		orders:    orders,
		customers: customers,
		catalog:   catalog,
		logger:    logger,
		rng:       rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64())),
	}
}

// Start spawns the tick loop. Calling Start on a running producer is a
// no-op.
func (p *Producer) Start(ctx context.Context) error {
	p.mu.Lock()
	if p.isRunning {
		p.mu.Unlock()
		return nil
	}
	p.isRunning = true
	p.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	p.wg.Add(1)
	go p.runLoop(ctx)

	p.logger.Info("Order producer started",
		zap.Duration("interval", p.cfg.Interval),
		zap.Int("min_orders", p.cfg.MinOrdersPerInterval),
		zap.Int("max_orders", p.cfg.MaxOrdersPerInterval),
	)
	return nil
}

// Stop cancels the tick loop and waits for the in-flight tick to finish,
// bounded by ctx.
func (p *Producer) Stop(ctx context.Context) error {
	p.mu.Lock()
	if !p.isRunning {
		p.mu.Unlock()
		return nil
	}
	p.isRunning = false
	p.mu.Unlock()

	if p.cancel != nil {
		p.cancel()
	}

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.logger.Info("Order producer stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// IsRunning reports whether the tick loop is active.
func (p *Producer) IsRunning() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isRunning
}

func (p *Producer) runLoop(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

// tick generates one interval's worth of orders. Both pre-checks must pass
// or the tick is skipped entirely.
func (p *Producer) tick(ctx context.Context) {
	customers, err := p.customers.Count(ctx)
	if err != nil || customers == 0 {
		p.logger.Warn("No customers available, skipping order generation", zap.Error(err))
		return
	}

	catalog, err := p.sampleCatalog(ctx)
	if err != nil || len(catalog) == 0 {
		p.logger.Warn("No inventory available, skipping order generation", zap.Error(err))
		return
	}

	numOrders := p.cfg.MinOrdersPerInterval
	if p.cfg.MaxOrdersPerInterval > p.cfg.MinOrdersPerInterval {
		numOrders += p.rng.IntN(p.cfg.MaxOrdersPerInterval - p.cfg.MinOrdersPerInterval + 1)
	}

	p.logger.Info("Generating synthetic orders", zap.Int("count", numOrders))

	gen := newGenerator(p.rng, p.cfg.MaxItemsPerOrder)
	successful := 0
	for i := 0; i < numOrders; i++ {
		if ctx.Err() != nil {
			return
		}

		c, err := p.sampleCustomer(ctx)
		if err != nil || c == nil {
			p.logger.Warn("No customer to sample, skipping order", zap.Error(err))
			continue
		}

		req := gen.buildRequest(c, catalog)
		created, err := p.orders.Create(ctx, req)
		if err != nil {
			p.logger.Error("Failed to create synthetic order", zap.Error(err))
		} else {
			p.logger.Info("Created synthetic order",
				zap.String("order_id", created.ID.String()),
				zap.String("status", string(created.Status)),
			)
			successful++
		}

		if numOrders > 1 && p.cfg.RandomizeInterval && i < numOrders-1 {
			delay := time.Duration(100+p.rng.IntN(900)) * time.Millisecond
			select {
			case <-ctx.Done():
				return
			case <-time.After(delay):
			}
		}
	}

	p.logger.Info("Synthetic order tick complete",
		zap.Int("successful", successful),
		zap.Int("attempted", numOrders),
	)
}

// sampleCustomer prefers the uniformly random query and falls back to the
// first listed customer.
func (p *Producer) sampleCustomer(ctx context.Context) (*customer.Customer, error) {
	c, err := p.customers.FindRandom(ctx)
	if err != nil {
		return nil, err
	}
	if c != nil {
		return c, nil
	}

	page, err := p.customers.List(ctx, shared.Filter{Page: 1, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(page.Items) == 0 {
		return nil, nil
	}
	return &page.Items[0], nil
}

// sampleCatalog lists a page of inventory rows and falls back to a single
// random row when listing yields nothing.
func (p *Producer) sampleCatalog(ctx context.Context) ([]inventory.InventoryItem, error) {
	page, err := p.catalog.List(ctx, shared.Filter{Page: 1, Limit: catalogSampleSize})
	if err != nil {
		return nil, err
	}
	if len(page.Items) > 0 {
		return page.Items, nil
	}

	item, err := p.catalog.FindRandom(ctx)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return []inventory.InventoryItem{*item}, nil
}
