// Package custom drives the bespoke-orders screen.
package custom

import (
	"context"
	"log/slog"
	"sort"

	"github.com/Hosannah10/julidsfashion-admin/internal/api"
	"github.com/Hosannah10/julidsfashion-admin/internal/confirm"
	"github.com/Hosannah10/julidsfashion-admin/internal/listview"
	"github.com/Hosannah10/julidsfashion-admin/internal/models"
	"github.com/Hosannah10/julidsfashion-admin/internal/notify"
	"github.com/Hosannah10/julidsfashion-admin/internal/preview"
	"github.com/Hosannah10/julidsfashion-admin/pkg/view"
)

const pageSize = 10

type Service struct {
	api    *api.Client
	log    *slog.Logger
	toasts *notify.Queue

	engine  *listview.Engine[models.CustomOrder]
	deletes confirm.Gate
	Preview preview.Modal

	status  models.Status
	loading bool

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
		func(o models.CustomOrder) int { return o.ID },
		models.CustomOrder.SearchText,
		pageSize,
	)
	s.engine.SetFilter(func(o models.CustomOrder) bool { return o.Status == s.status })
	return s
}

func (s *Service) Load(ctx context.Context) {
	s.BeginLoad()
	list, err := s.Fetch(ctx)
	s.ApplyLoad(list, err)
}

func (s *Service) BeginLoad() { s.loading = true }

// Fetch is the network half of a load. It touches no cached state.
func (s *Service) Fetch(ctx context.Context) ([]models.CustomOrder, error) {
	return s.api.ListCustomOrders(ctx)
}

func (s *Service) ApplyLoad(list []models.CustomOrder, err error) {
	s.loading = false
	if err != nil {
		s.log.Error("custom orders load failed", "error", err)
		return
	}
	// The collection is kept id-ascending; the engine's stable sort then
	// ties back to this order.
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	s.engine.SetItems(list)
}

func (s *Service) Loading() bool { return s.loading }

// Get fetches a single order fresh from the backend.
func (s *Service) Get(ctx context.Context, id int) (models.CustomOrder, error) {
	return s.api.GetCustomOrder(ctx, id)
}

func (s *Service) SetQuery(q string) { s.engine.SetQuery(q) }

func (s *Service) SetStatus(status models.Status) {
	s.status = status
	s.engine.SetFilter(func(o models.CustomOrder) bool { return o.Status == s.status })
}

func (s *Service) Status() models.Status { return s.status }

func (s *Service) NextPage() { s.engine.NextPage() }
func (s *Service) PrevPage() { s.engine.PrevPage() }
func (s *Service) SetPage(p int) { s.engine.SetPage(p) }

func (s *Service) Toggle(ctx context.Context, o models.CustomOrder) {
	s.BeginToggle(o.ID)
	updated, err := s.PushToggle(ctx, o)
	s.ApplyToggle(o, updated, err)
}

func (s *Service) BeginToggle(id int) { s.engine.BeginToggle(id) }

// PushToggle sends the status flip and, when configured, the completion
// notice. It touches no cached state.
func (s *Service) PushToggle(ctx context.Context, o models.CustomOrder) (models.CustomOrder, error) {
	next := o.Status.Toggled()
	updated, err := s.api.UpdateCustomOrderStatus(ctx, o.ID, next)
	if err != nil {
		return models.CustomOrder{}, err
	}
	if s.NotifyOnComplete && next == models.StatusCompleted {
		if err := s.api.NotifyCustomOrderCompleted(ctx, o.ID, o.Email); err != nil {
			s.log.Error("custom order completion notify failed", "id", o.ID, "error", err)
		}
	}
	return updated, nil
}

func (s *Service) ApplyToggle(o models.CustomOrder, updated models.CustomOrder, err error) {
	s.engine.EndToggle()
	next := o.Status.Toggled()
	if err != nil {
		s.log.Error("toggle custom order failed", "id", o.ID, "error", err)
		s.toasts.Show("Failed to update order")
		return
	}
	if updated.ID == 0 {
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
	return s.api.DeleteCustomOrder(ctx, id)
}

func (s *Service) ApplyDelete(id int, err error) {
	if err != nil {
		s.log.Error("delete custom order failed", "id", id, "error", err)
		s.toasts.Show("Failed to delete Order")
		return
	}
	s.engine.RemoveByID(id)
	s.toasts.Show("Order deleted")
}

func (s *Service) Orders() []models.CustomOrder { return s.engine.Items() }

func (s *Service) Page() view.CustomOrdersPage {
	items := s.engine.VisiblePage()
	page := view.CustomOrdersPage{
		Items:      make([]view.CustomOrderListItem, 0, len(items)),
		Q:          s.engine.Query(),
		Status:     string(s.status),
		Page:       s.engine.Page(),
		TotalPages: s.engine.TotalPages(),
		Loading:    s.loading,
	}
	for _, o := range items {
		page.Items = append(page.Items, view.CustomOrderListItem{
			ID:          o.ID,
			Name:        o.Name,
			Email:       o.Email,
			Phone:       o.Phone,
			Description: o.Description,
			ImageURL:    o.Image,
			Status:      string(o.Status),
			Toggling:    s.engine.IsToggling(o.ID),
		})
	}
	return page
}
