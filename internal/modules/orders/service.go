// Package orders drives the shop-orders screen.
package orders

import (
	"context"
	"log/slog"

	"github.com/Hosannah10/julidsfashion-admin/internal/api"
	"github.com/Hosannah10/julidsfashion-admin/internal/confirm"
	"github.com/Hosannah10/julidsfashion-admin/internal/listview"
	"github.com/Hosannah10/julidsfashion-admin/internal/models"
	"github.com/Hosannah10/julidsfashion-admin/internal/notify"
	"github.com/Hosannah10/julidsfashion-admin/internal/preview"
	"github.com/Hosannah10/julidsfashion-admin/pkg/view"
)

const pageSize = 5

type Service struct {
	api    *api.Client
	log    *slog.Logger
	toasts *notify.Queue

	engine  *listview.Engine[models.ShopOrder]
	deletes confirm.Gate
	Preview preview.Modal

	status  models.Status
	loading bool

	// NotifyOnComplete sends the purchaser a completion e-mail after a
	// pending->completed toggle. Off by default, matching the dashboard.
	NotifyOnComplete bool
}

func NewService(a *api.Client, toasts *notify.Queue, log *slog.Logger) *Service {
	s := &Service{
		api:    a,
		log:    log,
		toasts: toasts,
		status: models.StatusPending,
	}
	s.engine = listview.New(
		func(o models.ShopOrder) int { return o.ID },
		models.ShopOrder.SearchText,
		pageSize,
	)
	s.engine.SetFilter(func(o models.ShopOrder) bool { return o.Status == s.status })
	return s
}

// Load fetches and applies in one call. The TUI splits this into
// BeginLoad/Fetch/ApplyLoad so the fetch runs off the event loop while all
// state mutation stays on it.
func (s *Service) Load(ctx context.Context) {
	s.BeginLoad()
	list, err := s.Fetch(ctx)
	s.ApplyLoad(list, err)
}

func (s *Service) BeginLoad() { s.loading = true }

// Fetch is the network half of a load. It touches no cached state.
func (s *Service) Fetch(ctx context.Context) ([]models.ShopOrder, error) {
	return s.api.ListShopOrders(ctx)
}

// ApplyLoad reconciles a fetch result. Failures are logged; the list stays
// empty.
func (s *Service) ApplyLoad(list []models.ShopOrder, err error) {
	s.loading = false
	if err != nil {
		s.log.Error("shop orders load failed", "error", err)
		return
	}
	s.engine.SetItems(list)
}

func (s *Service) Loading() bool { return s.loading }

func (s *Service) SetQuery(q string) { s.engine.SetQuery(q) }

// SetStatus switches the pending/completed partition. Exactly one of the
// two is always active.
func (s *Service) SetStatus(status models.Status) {
	s.status = status
	s.engine.SetFilter(func(o models.ShopOrder) bool { return o.Status == s.status })
}

func (s *Service) Status() models.Status { return s.status }

func (s *Service) NextPage() { s.engine.NextPage() }
func (s *Service) PrevPage() { s.engine.PrevPage() }
func (s *Service) SetPage(p int) { s.engine.SetPage(p) }

// Toggle flips the order's status in one call. The TUI splits this into
// BeginToggle/PushToggle/ApplyToggle so only the network part runs off the
// event loop. The row's control stays disabled while the call is in flight.
func (s *Service) Toggle(ctx context.Context, o models.ShopOrder) {
	s.BeginToggle(o.ID)
	updated, err := s.PushToggle(ctx, o)
	s.ApplyToggle(o, updated, err)
}

func (s *Service) BeginToggle(id int) { s.engine.BeginToggle(id) }

// PushToggle sends the status flip and, when configured, the completion
// notice. It touches no cached state.
func (s *Service) PushToggle(ctx context.Context, o models.ShopOrder) (models.ShopOrder, error) {
	next := o.Status.Toggled()
	updated, err := s.api.UpdateShopOrderStatus(ctx, o.ID, next)
	if err != nil {
		return models.ShopOrder{}, err
	}
	if s.NotifyOnComplete && next == models.StatusCompleted {
		if err := s.api.NotifyShopOrderCompleted(ctx, o.ID, o.Email); err != nil {
			s.log.Error("shop order completion notify failed", "id", o.ID, "error", err)
		}
	}
	return updated, nil
}

// ApplyToggle patches the cached record from the server's response, no
// refetch.
func (s *Service) ApplyToggle(o models.ShopOrder, updated models.ShopOrder, err error) {
	s.engine.EndToggle()
	next := o.Status.Toggled()
	if err != nil {
		s.log.Error("toggle shop order failed", "id", o.ID, "error", err)
		s.toasts.Show("Failed to update order")
		return
	}
	if updated.ID == 0 {
		// Backend acknowledged without echoing the record.
		updated = o
		updated.Status = next
	}
	s.engine.ReplaceByID(o.ID, updated)
	s.toasts.Show("Order marked as " + string(next))
}

func (s *Service) IsToggling(id int) bool { return s.engine.IsToggling(id) }

func (s *Service) RequestDelete(id int) { s.deletes.Request(id) }

func (s *Service) CancelDelete() { s.deletes.Cancel() }

func (s *Service) PendingDelete() (int, bool) { return s.deletes.Pending() }

func (s *Service) ConfirmDelete(ctx context.Context) {
	id, ok := s.TakeDelete()
	if !ok {
		return
	}
	s.ApplyDelete(id, s.PushDelete(ctx, id))
}

// TakeDelete pops the armed identifier, clearing the gate.
func (s *Service) TakeDelete() (int, bool) {
	var id int
	var ok bool
	s.deletes.Confirm(func(subjectID int) { id, ok = subjectID, true })
	return id, ok
}

// PushDelete is the network half of a delete. It touches no cached state.
func (s *Service) PushDelete(ctx context.Context, id int) error {
	return s.api.DeleteShopOrder(ctx, id)
}

func (s *Service) ApplyDelete(id int, err error) {
	if err != nil {
		s.log.Error("delete shop order failed", "id", id, "error", err)
		s.toasts.Show("Failed to delete order")
		return
	}
	s.engine.RemoveByID(id)
	s.toasts.Show("Order deleted")
}

// Orders exposes the cached collection for the report screen, which
// consumes the same typed records.
func (s *Service) Orders() []models.ShopOrder { return s.engine.Items() }

func (s *Service) Page() view.ShopOrdersPage {
	items := s.engine.VisiblePage()
	page := view.ShopOrdersPage{
		Items:      make([]view.ShopOrderListItem, 0, len(items)),
		Q:          s.engine.Query(),
		Status:     string(s.status),
		Page:       s.engine.Page(),
		TotalPages: s.engine.TotalPages(),
		Loading:    s.loading,
	}
	for _, o := range items {
		page.Items = append(page.Items, view.ShopOrderListItem{
			ID:       o.ID,
			WearName: o.WearName,
			Qty:      o.Quantity,
			Total:    view.Naira(o.Total),
			Status:   string(o.Status),
			Buyer:    o.Name,
			Email:    o.Email,
			Phone:    o.Phone,
			ImageURL: o.Image,
			Toggling: s.engine.IsToggling(o.ID),
		})
	}
	return page
}
