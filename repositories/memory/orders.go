package memory

import (
	"context"
	"foodmenu_server/database"
	"foodmenu_server/lib"
	"foodmenu_server/structs"
	"foodmenu_server/structs/tables"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// OrderRepository keeps orders in memory and records every Create call it receives
type OrderRepository struct {
	mu          sync.RWMutex
	orders      map[uuid.UUID]*tables.Order
	createCalls []structs.CreateOrderRequest

	// CreateErr, when set, is returned by Create instead of storing the order
	CreateErr error
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: make(map[uuid.UUID]*tables.Order)}
}

func (r *OrderRepository) Create(_ context.Context, req *structs.CreateOrderRequest) (*tables.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.createCalls = append(r.createCalls, *req)
	if r.CreateErr != nil {
		return nil, r.CreateErr
	}

	if req.TransactionId != nil {
		for _, o := range r.orders {
			if o.TransactionId != nil && *o.TransactionId == *req.TransactionId {
				return nil, lib.Conflict("resource already exists")
			}
		}
	}

	order := req.NewOrder(time.Now())
	r.orders[order.Id] = order
	return order, nil
}

// CreateCalls returns the requests Create was called with, in call order
func (r *OrderRepository) CreateCalls() []structs.CreateOrderRequest {
	r.mu.RLock()
	defer r.mu.RUnlock()

	calls := make([]structs.CreateOrderRequest, len(r.createCalls))
	copy(calls, r.createCalls)
	return calls
}

func (r *OrderRepository) FindByID(_ context.Context, id uuid.UUID) (*tables.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if o, ok := r.orders[id]; ok {
		copied := *o
		return &copied, nil
	}
	return nil, nil
}

func (r *OrderRepository) FindAllPaginated(_ context.Context, filters structs.OrderListFilters, page, perPage int) (*database.PaginationResult[tables.Order], error) {
	r.mu.RLock()
	all := make([]tables.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if filters.Status != nil && o.Status != *filters.Status {
			continue
		}
		if filters.ClientId != nil && (o.ClientId == nil || *o.ClientId != *filters.ClientId) {
			continue
		}
		all = append(all, *o)
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return paginate(all, page, perPage), nil
}

func (r *OrderRepository) UpdateStatus(_ context.Context, id uuid.UUID, status tables.OrderStatus) (*tables.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, lib.NotFound("Order not found")
	}
	o.Status = status
	o.UpdatedAt = time.Now()

	copied := *o
	return &copied, nil
}

func (r *OrderRepository) Delete(_ context.Context, order *tables.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[order.Id]; !ok {
		return lib.NotFound("Order not found")
	}
	delete(r.orders, order.Id)
	return nil
}

// StatusChange is one recorded OrderStatusChanged notification
type StatusChange struct {
	OrderId  uuid.UUID
	Previous tables.OrderStatus
	Current  tables.OrderStatus
}

// Notifier records the order events it is told about
type Notifier struct {
	mu      sync.Mutex
	created []uuid.UUID
	changes []StatusChange
}

func (n *Notifier) OrderCreated(_ context.Context, order *tables.Order) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.created = append(n.created, order.Id)
}

func (n *Notifier) OrderStatusChanged(_ context.Context, order *tables.Order, previous tables.OrderStatus) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.changes = append(n.changes, StatusChange{OrderId: order.Id, Previous: previous, Current: order.Status})
}

func (n *Notifier) Created() []uuid.UUID {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]uuid.UUID(nil), n.created...)
}

func (n *Notifier) StatusChanges() []StatusChange {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]StatusChange(nil), n.changes...)
}
