package catalog

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Hosannah10/julidsfashion-admin/internal/api"
	"github.com/Hosannah10/julidsfashion-admin/internal/models"
	"github.com/Hosannah10/julidsfashion-admin/internal/notify"
	"github.com/Hosannah10/julidsfashion-admin/internal/shared/apperr"
)

type tokenFunc string

func (f tokenFunc) Token() string { return string(f) }

func newTestService(t *testing.T, handler http.Handler) (*Service, *notify.Queue) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := api.NewClient(srv.URL, tokenFunc(""), log)
	client.SetHTTPClient(srv.Client())

	toasts := notify.NewQueue()
	return NewService(client, toasts, log), toasts
}

func seedWears() []models.Wear {
	return []models.Wear{
		{ID: 1, WearName: "Ankara Gown", Price: 12500, Description: "Hand made", Category: models.CategoryAsoebi},
		{ID: 2, WearName: "Corporate Suit", Price: 30000, Description: "Two piece", Category: models.CategoryCorporate},
		{ID: 3, WearName: "agbada set", Price: 25000, Description: "Embroidered", Category: models.CategoryMale},
		{ID: 4, WearName: "Kiddies Dress", Price: 8000, Description: "Cotton", Category: models.CategoryKiddies},
		{ID: 5, WearName: "Asoebi Lace", Price: 18000, Description: "Lace", Category: models.CategoryAsoebi},
		{ID: 6, WearName: "Boubou", Price: 15000, Description: "Flowing", Category: models.CategoryAsoebi},
		{ID: 7, WearName: "Senator Wear", Price: 22000, Description: "Classic", Category: models.CategoryMale},
		{ID: 8, WearName: "School Set", Price: 6000, Description: "Uniform", Category: models.CategoryKiddies},
		{ID: 9, WearName: "Owambe Gown", Price: 40000, Description: "Sequined", Category: models.CategoryAsoebi},
	}
}

func wearsHandler(wears []models.Wear) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/wears/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(wears)
	})
	return mux
}

func TestService_LoadAndPaginate(t *testing.T) {
	s, _ := newTestService(t, wearsHandler(seedWears()))
	s.Load(context.Background())

	page := s.Page()
	if len(page.Items) != 8 {
		t.Fatalf("Expected 8 wears on first page, got %d", len(page.Items))
	}
	if page.TotalPages != 2 {
		t.Errorf("Expected 2 pages for 9 wears, got %d", page.TotalPages)
	}
	if page.Category != CategoryAll || page.Sort != string(SortDefault) {
		t.Errorf("Expected all/default starting state, got %q/%q", page.Category, page.Sort)
	}

	s.NextPage()
	page = s.Page()
	if len(page.Items) != 1 || page.Items[0].ID != 9 {
		t.Errorf("Expected wear 9 alone on page 2, got %+v", page.Items)
	}
}

func TestService_CategoryPartition(t *testing.T) {
	s, _ := newTestService(t, wearsHandler(seedWears()))
	s.Load(context.Background())
	s.NextPage()

	s.SetCategory(models.CategoryMale)
	page := s.Page()
	if page.Page != 1 {
		t.Errorf("Expected category change to reset page, got %d", page.Page)
	}
	if len(page.Items) != 2 {
		t.Fatalf("Expected 2 male wears, got %d", len(page.Items))
	}

	s.SetCategory(CategoryAll)
	if got := len(s.Page().Items); got != 8 {
		t.Errorf("Expected full first page back, got %d", got)
	}
}

func TestService_SortModes(t *testing.T) {
	s, _ := newTestService(t, wearsHandler(seedWears()))
	s.Load(context.Background())

	s.SetSort(SortNewest)
	if got := s.Page().Items[0].ID; got != 9 {
		t.Errorf("Expected newest first, got id %d", got)
	}

	s.SetSort(SortNameAsc)
	if got := s.Page().Items[0].Name; got != "agbada set" {
		t.Errorf("Expected case-insensitive a-z to lead with agbada set, got %q", got)
	}

	s.SetSort(SortNameDesc)
	if got := s.Page().Items[0].Name; got != "Senator Wear" {
		t.Errorf("Expected z-a to lead with Senator Wear, got %q", got)
	}

	s.SetSort(SortPriceLow)
	if got := s.Page().Items[0].ID; got != 8 {
		t.Errorf("Expected cheapest first, got id %d", got)
	}

	s.SetSort(SortPriceHigh)
	if got := s.Page().Items[0].ID; got != 9 {
		t.Errorf("Expected priciest first, got id %d", got)
	}

	s.SetSort(SortDefault)
	if got := s.Page().Items[0].ID; got != 1 {
		t.Errorf("Expected ascending identifier default, got id %d", got)
	}
}

func TestService_SearchMatchesDescriptionAndCategory(t *testing.T) {
	s, _ := newTestService(t, wearsHandler(seedWears()))
	s.Load(context.Background())

	s.SetQuery("embroidered")
	page := s.Page()
	if len(page.Items) != 1 || page.Items[0].ID != 3 {
		t.Errorf("Expected description match on wear 3, got %+v", page.Items)
	}

	s.SetQuery("kiddies")
	if got := len(s.Page().Items); got != 2 {
		t.Errorf("Expected 2 category matches, got %d", got)
	}
}

func TestService_CreateValidation(t *testing.T) {
	requested := false
	s, toasts := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
	}))

	err := s.Create(context.Background(), api.WearInput{WearName: "Gown"})
	if err == nil {
		t.Fatal("Expected validation failure")
	}
	if !apperr.IsKind(err, apperr.Invalid) {
		t.Errorf("Expected invalid kind, got: %v", err)
	}
	if requested {
		t.Error("Expected no request for an invalid form")
	}
	toast, ok := toasts.Current()
	if !ok || toast.Message != "Please fill all required fields." {
		t.Errorf("Expected required-fields toast, got %+v", toast)
	}
}

func TestService_CreateRequiresImage(t *testing.T) {
	s, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Expected no request without an image")
	}))

	err := s.Create(context.Background(), api.WearInput{
		WearName: "Gown", Price: 100, Description: "d", Category: models.CategoryAsoebi,
	})
	if !apperr.IsKind(err, apperr.Invalid) {
		t.Errorf("Expected invalid kind for missing image, got: %v", err)
	}
}

func TestService_CreateSuccess(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/wears/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		json.NewEncoder(w).Encode(models.Wear{ID: 10, WearName: "Gown"})
	})
	s, toasts := newTestService(t, mux)

	err := s.Create(context.Background(), api.WearInput{
		WearName: "Gown", Price: 100, Description: "d", Category: models.CategoryAsoebi,
		Image: &api.Upload{Filename: "g.jpg", Reader: strings.NewReader("img")},
	})
	if err != nil {
		t.Fatalf("Expected create to succeed, got: %v", err)
	}
	toast, _ := toasts.Current()
	if toast.Message != "Wear successfully submitted!" {
		t.Errorf("Expected success toast, got %q", toast.Message)
	}
}

func TestService_UpdateReplacesFromServerRecord(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/wears/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(seedWears())
	})
	mux.HandleFunc("/wears/1/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.Wear{ID: 1, WearName: "Renamed Gown", Price: 13000, Description: "d", Category: models.CategoryAsoebi, Image: "/uploads/new.jpg"})
	})
	s, toasts := newTestService(t, mux)
	s.Load(context.Background())

	err := s.Update(context.Background(), 1, api.WearInput{
		WearName: "Renamed Gown", Price: 13000, Description: "d", Category: models.CategoryAsoebi,
	})
	if err != nil {
		t.Fatalf("Expected update to succeed, got: %v", err)
	}

	w, ok := s.Find(1)
	if !ok || w.WearName != "Renamed Gown" || w.Image != "/uploads/new.jpg" {
		t.Errorf("Expected cached record patched from server response, got %+v", w)
	}
	toast, _ := toasts.Current()
	if toast.Message != "Wear updated successfully!" {
		t.Errorf("Expected update toast, got %q", toast.Message)
	}
}

func TestService_DeleteStepsPageBack(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/wears/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(seedWears())
	})
	mux.HandleFunc("/wears/9/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	s, toasts := newTestService(t, mux)
	s.Load(context.Background())
	s.SetPage(2)

	s.RequestDelete(9)
	s.ConfirmDelete(context.Background())

	page := s.Page()
	if page.Page != 1 {
		t.Errorf("Expected page to step back to 1, got %d", page.Page)
	}
	if page.TotalPages != 1 {
		t.Errorf("Expected a single page left, got %d", page.TotalPages)
	}
	toast, _ := toasts.Current()
	if toast.Message != "Wear deleted" {
		t.Errorf("Expected delete toast, got %q", toast.Message)
	}
}

func TestService_DeleteFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/wears/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(seedWears())
	})
	mux.HandleFunc("/wears/1/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail":"nope"}`))
	})
	s, toasts := newTestService(t, mux)
	s.Load(context.Background())

	s.RequestDelete(1)
	s.ConfirmDelete(context.Background())

	if _, ok := s.Find(1); !ok {
		t.Error("Expected wear 1 kept after failed delete")
	}
	toast, _ := toasts.Current()
	if toast.Message != "Failed to delete wear" {
		t.Errorf("Expected failure toast, got %q", toast.Message)
	}
}

func TestService_Find(t *testing.T) {
	s, _ := newTestService(t, wearsHandler(seedWears()))
	s.Load(context.Background())

	if _, ok := s.Find(99); ok {
		t.Error("Expected unknown id not found")
	}
	w, ok := s.Find(4)
	if !ok || w.WearName != "Kiddies Dress" {
		t.Errorf("Expected wear 4, got %+v", w)
	}
}

func TestService_CreateAcceptsZeroPrice(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/wears/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		json.NewEncoder(w).Encode(models.Wear{ID: 11, WearName: "Free Scarf"})
	})
	s, toasts := newTestService(t, mux)

	err := s.Create(context.Background(), api.WearInput{
		WearName: "Free Scarf", Price: 0, Description: "Giveaway", Category: models.CategoryAsoebi,
		Image: &api.Upload{Filename: "s.jpg", Reader: strings.NewReader("img")},
	})
	if err != nil {
		t.Fatalf("Expected a zero-priced wear to pass validation, got: %v", err)
	}
	toast, _ := toasts.Current()
	if toast.Message != "Wear successfully submitted!" {
		t.Errorf("Expected success toast, got %q", toast.Message)
	}
}
