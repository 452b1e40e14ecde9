package orders

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Hosannah10/julidsfashion-admin/internal/api"
	"github.com/Hosannah10/julidsfashion-admin/internal/models"
	"github.com/Hosannah10/julidsfashion-admin/internal/notify"
)

func seedOrders() []models.ShopOrder {
	out := make([]models.ShopOrder, 0, 7)
	for i := 1; i <= 6; i++ {
		out = append(out, models.ShopOrder{
			ID:       i,
			WearName: "Ankara Gown",
			Quantity: 1,
			Total:    12500,
			Status:   models.StatusPending,
			Name:     "Adaeze Obi",
			Email:    "adaeze@x.y",
			Phone:    "0803",
		})
	}
	out = append(out, models.ShopOrder{ID: 7, WearName: "Kiddies Set", Status: models.StatusCompleted, Name: "Tunde Bello"})
	return out
}

func newTestService(t *testing.T, handler http.Handler) (*Service, *notify.Queue) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := api.NewClient(srv.URL, tokenFunc("tok"), log)
	client.SetHTTPClient(srv.Client())

	toasts := notify.NewQueue()
	return NewService(client, toasts, log), toasts
}

type tokenFunc string

func (f tokenFunc) Token() string { return string(f) }

func listHandler(orders []models.ShopOrder) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/shop-orders/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(orders)
	})
	return mux
}

func TestService_LoadDefaultsToPending(t *testing.T) {
	s, _ := newTestService(t, listHandler(seedOrders()))
	s.Load(context.Background())

	page := s.Page()
	if page.Status != "pending" {
		t.Errorf("Expected pending partition by default, got %q", page.Status)
	}
	if len(page.Items) != 5 {
		t.Errorf("Expected 5 rows on first page, got %d", len(page.Items))
	}
	if page.TotalPages != 2 {
		t.Errorf("Expected 2 pages for 6 pending orders, got %d", page.TotalPages)
	}
}

func TestService_StatusPartition(t *testing.T) {
	s, _ := newTestService(t, listHandler(seedOrders()))
	s.Load(context.Background())

	s.SetStatus(models.StatusCompleted)
	page := s.Page()
	if len(page.Items) != 1 || page.Items[0].ID != 7 {
		t.Fatalf("Expected only completed order 7, got %+v", page.Items)
	}

	s.SetStatus(models.StatusPending)
	if got := len(s.Page().Items); got != 5 {
		t.Errorf("Expected pending partition back, got %d rows", got)
	}
}

func TestService_LoadFailureLeavesListEmpty(t *testing.T) {
	s, toasts := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	s.Load(context.Background())

	if got := len(s.Page().Items); got != 0 {
		t.Errorf("Expected empty list after failed load, got %d rows", got)
	}
	if _, ok := toasts.Current(); ok {
		t.Error("Expected no toast for a failed load")
	}
}

func TestService_ToggleMovesAcrossPartitions(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/shop-orders/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(seedOrders())
	})
	mux.HandleFunc("/shop-orders/3/status/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		json.NewEncoder(w).Encode(models.ShopOrder{ID: 3, WearName: "Ankara Gown", Status: models.StatusCompleted, Name: "Adaeze Obi"})
	})
	s, toasts := newTestService(t, mux)
	s.Load(context.Background())

	var target models.ShopOrder
	for _, o := range s.Orders() {
		if o.ID == 3 {
			target = o
		}
	}
	s.Toggle(context.Background(), target)

	for _, item := range s.Page().Items {
		if item.ID == 3 {
			t.Error("Expected order 3 gone from the pending partition")
		}
	}
	s.SetStatus(models.StatusCompleted)
	found := false
	for _, item := range s.Page().Items {
		if item.ID == 3 && item.Status == "completed" {
			found = true
		}
	}
	if !found {
		t.Error("Expected order 3 in the completed partition, no refetch")
	}

	toast, ok := toasts.Current()
	if !ok || toast.Message != "Order marked as completed" {
		t.Errorf("Expected success toast, got %+v", toast)
	}
	if s.IsToggling(3) {
		t.Error("Expected toggle cleared after completion")
	}
}

func TestService_ToggleFallsBackWhenServerEchoesNothing(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/shop-orders/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(seedOrders())
	})
	mux.HandleFunc("/shop-orders/2/status/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	s, _ := newTestService(t, mux)
	s.Load(context.Background())

	s.Toggle(context.Background(), models.ShopOrder{ID: 2, WearName: "Ankara Gown", Status: models.StatusPending, Email: "adaeze@x.y"})

	for _, o := range s.Orders() {
		if o.ID == 2 {
			if o.Status != models.StatusCompleted {
				t.Errorf("Expected locally flipped status, got %q", o.Status)
			}
			if o.WearName != "Ankara Gown" {
				t.Errorf("Expected remaining fields kept, got %q", o.WearName)
			}
		}
	}
}

func TestService_ToggleFailureKeepsStatus(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/shop-orders/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(seedOrders())
	})
	mux.HandleFunc("/shop-orders/1/status/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	s, toasts := newTestService(t, mux)
	s.Load(context.Background())

	s.Toggle(context.Background(), models.ShopOrder{ID: 1, Status: models.StatusPending})

	for _, o := range s.Orders() {
		if o.ID == 1 && o.Status != models.StatusPending {
			t.Errorf("Expected status unchanged after failed toggle, got %q", o.Status)
		}
	}
	toast, ok := toasts.Current()
	if !ok || toast.Message != "Failed to update order" {
		t.Errorf("Expected failure toast, got %+v", toast)
	}
}

func TestService_NotifyOnComplete(t *testing.T) {
	notified := false
	mux := http.NewServeMux()
	mux.HandleFunc("/shop-orders/4/status/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.ShopOrder{ID: 4, Status: models.StatusCompleted})
	})
	mux.HandleFunc("/notifications/shop-order-completed/", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ID    int    `json:"id"`
			Email string `json:"email"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if body.ID == 4 && body.Email == "buyer@x.y" {
			notified = true
		}
		w.WriteHeader(http.StatusAccepted)
	})
	s, _ := newTestService(t, mux)
	s.NotifyOnComplete = true

	s.Toggle(context.Background(), models.ShopOrder{ID: 4, Status: models.StatusPending, Email: "buyer@x.y"})
	if !notified {
		t.Error("Expected completion notification sent")
	}

	// Completing -> pending must not notify.
	notified = false
	mux.HandleFunc("/shop-orders/5/status/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.ShopOrder{ID: 5, Status: models.StatusPending})
	})
	s.Toggle(context.Background(), models.ShopOrder{ID: 5, Status: models.StatusCompleted, Email: "buyer@x.y"})
	if notified {
		t.Error("Expected no notification for completed -> pending")
	}
}

func TestService_DeleteFlow(t *testing.T) {
	deleted := false
	mux := http.NewServeMux()
	mux.HandleFunc("/shop-orders/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(seedOrders())
	})
	mux.HandleFunc("/shop-orders/6/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			deleted = true
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusMethodNotAllowed)
	})
	s, toasts := newTestService(t, mux)
	s.Load(context.Background())
	s.SetPage(2)

	s.RequestDelete(6)
	if id, ok := s.PendingDelete(); !ok || id != 6 {
		t.Fatalf("Expected delete armed for 6, got %d %v", id, ok)
	}

	s.CancelDelete()
	if _, ok := s.PendingDelete(); ok {
		t.Fatal("Expected cancel to clear the gate")
	}
	s.ConfirmDelete(context.Background())
	if deleted {
		t.Fatal("Expected nothing deleted after cancel")
	}

	s.RequestDelete(6)
	s.ConfirmDelete(context.Background())
	if !deleted {
		t.Fatal("Expected the backend delete to run")
	}
	page := s.Page()
	if page.Page != 1 {
		t.Errorf("Expected page to step back to 1 after emptying page 2, got %d", page.Page)
	}
	toast, ok := toasts.Current()
	if !ok || toast.Message != "Order deleted" {
		t.Errorf("Expected delete toast, got %+v", toast)
	}
}

func TestService_DeleteFailureKeepsOrder(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/shop-orders/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(seedOrders())
	})
	mux.HandleFunc("/shop-orders/1/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	s, toasts := newTestService(t, mux)
	s.Load(context.Background())

	s.RequestDelete(1)
	s.ConfirmDelete(context.Background())

	if len(s.Orders()) != 7 {
		t.Errorf("Expected collection unchanged, got %d orders", len(s.Orders()))
	}
	toast, ok := toasts.Current()
	if !ok || toast.Message != "Failed to delete order" {
		t.Errorf("Expected failure toast, got %+v", toast)
	}
}

func TestService_SearchResetsPage(t *testing.T) {
	s, _ := newTestService(t, listHandler(seedOrders()))
	s.Load(context.Background())
	s.NextPage()

	s.SetQuery("tunde")
	page := s.Page()
	if page.Page != 1 {
		t.Errorf("Expected query change to reset page, got %d", page.Page)
	}
	if len(page.Items) != 0 {
		t.Errorf("Expected no pending match for tunde, got %d", len(page.Items))
	}

	s.SetStatus(models.StatusCompleted)
	s.SetQuery("tunde")
	if got := len(s.Page().Items); got != 1 {
		t.Errorf("Expected completed order for tunde, got %d", got)
	}
}

func TestService_FetchLeavesCachedStateUntouched(t *testing.T) {
	s, _ := newTestService(t, listHandler(seedOrders()))
	s.BeginLoad()
	if !s.Loading() {
		t.Fatal("Expected loading after BeginLoad")
	}

	list, err := s.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Expected fetch to succeed, got: %v", err)
	}
	if got := len(s.Orders()); got != 0 {
		t.Fatalf("Expected no cached orders before ApplyLoad, got %d", got)
	}
	if !s.Loading() {
		t.Error("Expected loading kept until ApplyLoad")
	}

	s.ApplyLoad(list, err)
	if s.Loading() {
		t.Error("Expected loading cleared by ApplyLoad")
	}
	if got := len(s.Page().Items); got != 5 {
		t.Errorf("Expected 5 rows after ApplyLoad, got %d", got)
	}
}

// The fetch half runs off the event loop while the loop keeps rendering
// pages; the two must never touch the same state.
func TestService_FetchSafeWhileRenderingPages(t *testing.T) {
	s, _ := newTestService(t, listHandler(seedOrders()))
	s.BeginLoad()

	var list []models.ShopOrder
	var err error
	done := make(chan struct{})
	go func() {
		defer close(done)
		list, err = s.Fetch(context.Background())
	}()
	for i := 0; i < 200; i++ {
		_ = s.Page()
		_ = s.Loading()
	}
	<-done

	if err != nil {
		t.Fatalf("Expected fetch to succeed, got: %v", err)
	}
	s.ApplyLoad(list, err)
	if got := len(s.Page().Items); got != 5 {
		t.Errorf("Expected 5 rows after ApplyLoad, got %d", got)
	}
}

func TestService_PushToggleDefersPartitionMove(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/shop-orders/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(seedOrders())
	})
	mux.HandleFunc("/shop-orders/4/status/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.ShopOrder{ID: 4, WearName: "Ankara Gown", Status: models.StatusCompleted, Name: "Adaeze Obi"})
	})
	s, toasts := newTestService(t, mux)
	s.Load(context.Background())

	target := models.ShopOrder{ID: 4, WearName: "Ankara Gown", Status: models.StatusPending, Name: "Adaeze Obi"}
	s.BeginToggle(target.ID)
	updated, err := s.PushToggle(context.Background(), target)
	if err != nil {
		t.Fatalf("Expected push to succeed, got: %v", err)
	}

	if !s.IsToggling(4) {
		t.Error("Expected row still marked in flight before ApplyToggle")
	}
	for _, o := range s.Orders() {
		if o.ID == 4 && o.Status != models.StatusPending {
			t.Error("Expected cached status untouched before ApplyToggle")
		}
	}
	if _, ok := toasts.Current(); ok {
		t.Error("Expected no toast before ApplyToggle")
	}

	s.ApplyToggle(target, updated, err)
	if s.IsToggling(4) {
		t.Error("Expected toggle cleared by ApplyToggle")
	}
	for _, o := range s.Orders() {
		if o.ID == 4 && o.Status != models.StatusCompleted {
			t.Errorf("Expected order 4 completed after ApplyToggle, got %q", o.Status)
		}
	}
	toast, ok := toasts.Current()
	if !ok || toast.Message != "Order marked as completed" {
		t.Errorf("Expected success toast after ApplyToggle, got %+v", toast)
	}
}
