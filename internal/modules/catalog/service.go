// Package catalog drives the wears screens: the grid of added wears and the
// add-wear form.
package catalog

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Hosannah10/julidsfashion-admin/internal/api"
	"github.com/Hosannah10/julidsfashion-admin/internal/confirm"
	"github.com/Hosannah10/julidsfashion-admin/internal/listview"
	"github.com/Hosannah10/julidsfashion-admin/internal/models"
	"github.com/Hosannah10/julidsfashion-admin/internal/notify"
	"github.com/Hosannah10/julidsfashion-admin/internal/preview"
	"github.com/Hosannah10/julidsfashion-admin/internal/shared/apperr"
	"github.com/Hosannah10/julidsfashion-admin/internal/validation"
	"github.com/Hosannah10/julidsfashion-admin/pkg/view"
)

const pageSize = 8

// CategoryAll widens the category partition to the whole catalog. Order
// screens have no such option; the catalog does.
const CategoryAll = "all"

type Sort string

const (
	SortDefault   Sort = "default"
	SortNewest    Sort = "newest"
	SortNameAsc   Sort = "a-z"
	SortNameDesc  Sort = "z-a"
	SortPriceLow  Sort = "price-low"
	SortPriceHigh Sort = "price-high"
)

type Service struct {
	api    *api.Client
	log    *slog.Logger
	toasts *notify.Queue

	engine  *listview.Engine[models.Wear]
	deletes confirm.Gate
	Preview preview.Modal

	category string
	sortMode Sort
	loading  bool
}

func NewService(a *api.Client, toasts *notify.Queue, log *slog.Logger) *Service {
	s := &Service{
		api:      a,
		log:      log,
		toasts:   toasts,
		category: CategoryAll,
		sortMode: SortDefault,
	}
	s.engine = listview.New(
		func(w models.Wear) int { return w.ID },
		models.Wear.SearchText,
		pageSize,
	)
	return s
}

// Load fetches and applies the full catalog in one call. The TUI splits
// this into BeginLoad/Fetch/ApplyLoad so the fetch runs off the event loop
// while all state mutation stays on it.
func (s *Service) Load(ctx context.Context) {
	s.BeginLoad()
	wears, err := s.Fetch(ctx)
	s.ApplyLoad(wears, err)
}

func (s *Service) BeginLoad() { s.loading = true }

// Fetch is the network half of a load. It touches no cached state.
func (s *Service) Fetch(ctx context.Context) ([]models.Wear, error) {
	return s.api.ListWears(ctx)
}

// ApplyLoad reconciles a fetch result. A failed load is logged and leaves
// the grid empty; it does not toast.
func (s *Service) ApplyLoad(wears []models.Wear, err error) {
	s.loading = false
	if err != nil {
		s.log.Error("catalog load failed", "error", err)
		return
	}
	s.engine.SetItems(wears)
}

func (s *Service) Loading() bool { return s.loading }

func (s *Service) SetQuery(q string) { s.engine.SetQuery(q) }

func (s *Service) SetCategory(c string) {
	s.category = c
	if c == CategoryAll {
		s.engine.SetFilter(nil)
		return
	}
	s.engine.SetFilter(func(w models.Wear) bool { return w.Category == c })
}

func (s *Service) Category() string { return s.category }

func (s *Service) SetSort(m Sort) {
	s.sortMode = m
	s.engine.SetSort(lessFor(m))
}

func (s *Service) SortMode() Sort { return s.sortMode }

func (s *Service) NextPage() { s.engine.NextPage() }
func (s *Service) PrevPage() { s.engine.PrevPage() }
func (s *Service) SetPage(p int) { s.engine.SetPage(p) }

// Create submits a new wear. All form fields including the image are
// required; nothing is reconciled into the grid because the form screen
// does not show it.
func (s *Service) Create(ctx context.Context, in api.WearInput) error {
	if err := validation.Check(in); err != nil {
		s.toasts.Show("Please fill all required fields.")
		return err
	}
	if in.Image == nil {
		s.toasts.Show("Please fill all required fields.")
		return apperr.InvalidErr("Please fill all required fields.", map[string]string{"image": "This field is required."})
	}

	if _, err := s.api.CreateWear(ctx, in); err != nil {
		s.log.Error("create wear failed", "error", err)
		s.toasts.Show(apperr.PublicMessage(err))
		return err
	}

	s.toasts.Show("Wear successfully submitted!")
	return nil
}

// Update sends the full record and replaces the local copy with the
// server's returned representation. The TUI splits this into
// PushUpdate/ApplyUpdate so only the network part runs off the event loop.
func (s *Service) Update(ctx context.Context, id int, in api.WearInput) error {
	updated, err := s.PushUpdate(ctx, id, in)
	s.ApplyUpdate(id, updated, err)
	return err
}

// PushUpdate validates and sends the record. It touches no cached state.
func (s *Service) PushUpdate(ctx context.Context, id int, in api.WearInput) (models.Wear, error) {
	if err := validation.Check(in); err != nil {
		s.toasts.Show("Please fill all required fields.")
		return models.Wear{}, err
	}

	updated, err := s.api.UpdateWear(ctx, id, in)
	if err != nil {
		s.log.Error("update wear failed", "id", id, "error", err)
		return models.Wear{}, err
	}
	return updated, nil
}

// ApplyUpdate reconciles a successful update into the grid.
func (s *Service) ApplyUpdate(id int, updated models.Wear, err error) {
	if err != nil {
		return
	}
	s.engine.ReplaceByID(id, updated)
	s.toasts.Show("Wear updated successfully!")
}

// RequestDelete arms the confirm gate; nothing is deleted yet.
func (s *Service) RequestDelete(id int) { s.deletes.Request(id) }

func (s *Service) CancelDelete() { s.deletes.Cancel() }

func (s *Service) PendingDelete() (int, bool) { return s.deletes.Pending() }

// ConfirmDelete commits the armed deletion and reconciles the grid in
// place.
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
	return s.api.DeleteWear(ctx, id)
}

func (s *Service) ApplyDelete(id int, err error) {
	if err != nil {
		s.log.Error("delete wear failed", "id", id, "error", err)
		s.toasts.Show("Failed to delete wear")
		return
	}
	s.engine.RemoveByID(id)
	s.toasts.Show("Wear deleted")
}

// Page builds the view model for the grid screen.
func (s *Service) Page() view.WearsListPage {
	items := s.engine.VisiblePage()
	page := view.WearsListPage{
		Items:      make([]view.WearListItem, 0, len(items)),
		Q:          s.engine.Query(),
		Category:   s.category,
		Sort:       string(s.sortMode),
		Page:       s.engine.Page(),
		TotalPages: s.engine.TotalPages(),
		Loading:    s.loading,
	}
	for _, w := range items {
		page.Items = append(page.Items, view.WearListItem{
			ID:       w.ID,
			Name:     w.WearName,
			Price:    view.Naira(w.Price),
			Category: w.Category,
			ImageURL: w.Image,
		})
	}
	return page
}

// Find returns the cached wear by identifier, for the edit form.
func (s *Service) Find(id int) (models.Wear, bool) {
	for _, w := range s.engine.Items() {
		if w.ID == id {
			return w, true
		}
	}
	return models.Wear{}, false
}

func lessFor(m Sort) func(a, b models.Wear) bool {
	switch m {
	case SortNewest:
		return func(a, b models.Wear) bool { return a.ID > b.ID }
	case SortNameAsc:
		return func(a, b models.Wear) bool { return nameLess(a.WearName, b.WearName) }
	case SortNameDesc:
		return func(a, b models.Wear) bool { return nameLess(b.WearName, a.WearName) }
	case SortPriceLow:
		return func(a, b models.Wear) bool { return a.Price < b.Price }
	case SortPriceHigh:
		return func(a, b models.Wear) bool { return a.Price > b.Price }
	default:
		return nil // ascending identifier
	}
}

// nameLess orders case-insensitively first, raising case only to break
// exact folded ties.
func nameLess(a, b string) bool {
	af, bf := strings.ToLower(a), strings.ToLower(b)
	if af != bf {
		return af < bf
	}
	return a < b
}
