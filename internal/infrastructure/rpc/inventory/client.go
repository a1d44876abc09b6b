package inventory

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"

	apporder "github.com/logistics/engine/internal/application/order"
	"github.com/logistics/engine/internal/domain/shared"
	"github.com/logistics/engine/internal/infrastructure/config"
	"github.com/logistics/engine/internal/infrastructure/rpc/inventory/pb"
)

// Client talks to the remote inventory service. It implements the
// orchestrator's InventoryGateway: a transport failure surfaces as an
// RPC-coded error, a business refusal comes back as Success=false with no
// error, and the caller decides which of the two it can tolerate.
type Client struct {
	conn           *grpc.ClientConn
	svc            pb.InventoryServiceClient
	requestTimeout time.Duration
	logger         *zap.Logger
}

var (
	clientOnce sync.Once
	clientInst *Client
	clientErr  error
)

// GetClient returns the process-wide client, dialing on first use. The
// inventory service sits behind one endpoint, so one connection with
// keepalive serves every caller.
func GetClient(cfg *config.GRPCConfig, logger *zap.Logger) (*Client, error) {
	clientOnce.Do(func() {
		clientInst, clientErr = NewClient(cfg, logger)
	})
	return clientInst, clientErr
}

// NewClient creates the inventory service connection. Connecting is lazy;
// the connect timeout bounds each transport attempt once a call triggers
// one.
func NewClient(cfg *config.GRPCConfig, logger *zap.Logger) (*Client, error) {
	conn, err := grpc.NewClient(cfg.InventoryURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithConnectParams(grpc.ConnectParams{MinConnectTimeout: cfg.ConnectTimeout}),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                cfg.Keepalive,
			Timeout:             cfg.ConnectTimeout,
			PermitWithoutStream: true,
		}),
	)
	if err != nil {
		return nil, shared.NewRpcError(err)
	}

	return &Client{
		conn:           conn,
		svc:            pb.NewInventoryServiceClient(conn),
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}, nil
}

// CheckAndReserveStock places an advisory hold for an order's items.
func (c *Client) CheckAndReserveStock(ctx context.Context, orderID string, items []apporder.ReservationItem, warehouseID string) (*apporder.ReservationResult, error) {
	productItems := make([]*pb.ProductItem, len(items))
	for i, item := range items {
		productItems[i] = &pb.ProductItem{
			ProductId: item.ProductID,
			Sku:       item.SKU,
			Quantity:  item.Quantity,
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	resp, err := c.svc.CheckAndReserveStock(ctx, &pb.StockReservationRequest{
		OrderId:     orderID,
		Items:       productItems,
		WarehouseId: warehouseID,
	})
	if err != nil {
		return nil, shared.NewRpcError(err)
	}

	return &apporder.ReservationResult{
		Success:       resp.GetSuccess(),
		ReservationID: resp.GetReservationId(),
		Message:       resp.GetMessage(),
	}, nil
}

// ReleaseReservedStock gives a reservation back, typically on
// cancellation.
func (c *Client) ReleaseReservedStock(ctx context.Context, reservationID, orderID, reason string) (*apporder.ReservationResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	resp, err := c.svc.ReleaseReservedStock(ctx, &pb.ReleaseStockRequest{
		ReservationId: reservationID,
		OrderId:       orderID,
		Reason:        reason,
	})
	if err != nil {
		return nil, shared.NewRpcError(err)
	}

	return &apporder.ReservationResult{
		Success:       resp.GetSuccess(),
		ReservationID: reservationID,
		Message:       resp.GetMessage(),
	}, nil
}

// CommitReservation converts an advisory hold into a firm one after the
// local order transaction commits.
func (c *Client) CommitReservation(ctx context.Context, reservationID, orderID string) (*apporder.ReservationResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	resp, err := c.svc.CommitReservation(ctx, &pb.CommitReservationRequest{
		ReservationId: reservationID,
		OrderId:       orderID,
	})
	if err != nil {
		return nil, shared.NewRpcError(err)
	}

	return &apporder.ReservationResult{
		Success:       resp.GetSuccess(),
		ReservationID: reservationID,
		Message:       resp.GetMessage(),
	}, nil
}

// Level is one product's remote stock position.
type Level struct {
	ProductID         string
	SKU               string
	AvailableQuantity int32
	ReservedQuantity  int32
}

// GetInventoryLevels fetches remote stock positions for monitoring and
// reconciliation.
func (c *Client) GetInventoryLevels(ctx context.Context, productIDs, skus []string, warehouseID string) ([]Level, error) {
	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	resp, err := c.svc.GetInventoryLevels(ctx, &pb.InventoryLevelsRequest{
		ProductIds:  productIDs,
		Skus:        skus,
		WarehouseId: warehouseID,
	})
	if err != nil {
		return nil, shared.NewRpcError(err)
	}

	levels := make([]Level, len(resp.GetLevels()))
	for i, level := range resp.GetLevels() {
		levels[i] = Level{
			ProductID:         level.GetProductId(),
			SKU:               level.GetSku(),
			AvailableQuantity: level.GetAvailableQuantity(),
			ReservedQuantity:  level.GetReservedQuantity(),
		}
	}
	return levels, nil
}

// Close shuts the underlying connection down.
func (c *Client) Close() error {
	return c.conn.Close()
}

var _ apporder.InventoryGateway = (*Client)(nil)
