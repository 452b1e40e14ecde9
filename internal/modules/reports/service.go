// Package reports renders the two read-only report tables over the same
// typed order collections the list screens use.
package reports

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/Hosannah10/julidsfashion-admin/internal/api"
	"github.com/Hosannah10/julidsfashion-admin/internal/listview"
	"github.com/Hosannah10/julidsfashion-admin/internal/models"
	"github.com/Hosannah10/julidsfashion-admin/internal/preview"
	"github.com/Hosannah10/julidsfashion-admin/pkg/view"
)

const pageSize = 10

// ShopReport is the shop-orders report: search-only, id-ascending, no
// status partition.
type ShopReport struct {
	api    *api.Client
	log    *slog.Logger
	engine *listview.Engine[models.ShopOrder]

	Preview preview.Modal
}

func NewShopReport(a *api.Client, log *slog.Logger) *ShopReport {
	r := &ShopReport{api: a, log: log}
	r.engine = listview.New(
		func(o models.ShopOrder) int { return o.ID },
		shopReportSearchText,
		pageSize,
	)
	return r
}

// The report search covers more fields than the order screen does:
// description and category come along.
func shopReportSearchText(o models.ShopOrder) string {
	return o.Name + " " + o.Email + " " + o.Phone + " " + o.WearName + " " +
		strconv.Itoa(o.Quantity) + " " + strconv.FormatFloat(o.Total, 'f', -1, 64) + " " +
		o.Description + " " + o.Category + " " + string(o.Status)
}

func (r *ShopReport) Load(ctx context.Context) {
	rows, err := r.Fetch(ctx)
	r.ApplyLoad(rows, err)
}

// Fetch is the network half of a load. It touches no cached state.
func (r *ShopReport) Fetch(ctx context.Context) ([]models.ShopOrder, error) {
	return r.api.ListShopOrders(ctx)
}

func (r *ShopReport) ApplyLoad(rows []models.ShopOrder, err error) {
	if err != nil {
		r.log.Error("shop report load failed", "error", err)
		return
	}
	r.engine.SetItems(rows)
}

func (r *ShopReport) SetQuery(q string) { r.engine.SetQuery(q) }
func (r *ShopReport) NextPage()         { r.engine.NextPage() }
func (r *ShopReport) PrevPage()         { r.engine.PrevPage() }
func (r *ShopReport) SetPage(p int)     { r.engine.SetPage(p) }

func (r *ShopReport) Page() view.ShopReportPage {
	rows := r.engine.VisiblePage()
	page := view.ShopReportPage{
		Rows:       make([]view.ShopReportRow, 0, len(rows)),
		Q:          r.engine.Query(),
		Page:       r.engine.Page(),
		TotalPages: r.engine.TotalPages(),
	}
	for _, o := range rows {
		page.Rows = append(page.Rows, view.ShopReportRow{
			ID:          o.ID,
			Name:        o.Name,
			Email:       o.Email,
			Phone:       o.Phone,
			WearName:    o.WearName,
			Qty:         o.Quantity,
			Total:       view.Naira(o.Total),
			Description: o.Description,
			Category:    o.Category,
			ImageURL:    o.Image,
			Status:      string(o.Status),
		})
	}
	return page
}

// CustomReport mirrors ShopReport for bespoke orders.
type CustomReport struct {
	api    *api.Client
	log    *slog.Logger
	engine *listview.Engine[models.CustomOrder]

	Preview preview.Modal
}

func NewCustomReport(a *api.Client, log *slog.Logger) *CustomReport {
	r := &CustomReport{api: a, log: log}
	r.engine = listview.New(
		func(o models.CustomOrder) int { return o.ID },
		models.CustomOrder.SearchText,
		pageSize,
	)
	return r
}

func (r *CustomReport) Load(ctx context.Context) {
	rows, err := r.Fetch(ctx)
	r.ApplyLoad(rows, err)
}

// Fetch is the network half of a load. It touches no cached state.
func (r *CustomReport) Fetch(ctx context.Context) ([]models.CustomOrder, error) {
	return r.api.ListCustomOrders(ctx)
}

func (r *CustomReport) ApplyLoad(rows []models.CustomOrder, err error) {
	if err != nil {
		r.log.Error("custom report load failed", "error", err)
		return
	}
	r.engine.SetItems(rows)
}

func (r *CustomReport) SetQuery(q string) { r.engine.SetQuery(q) }
func (r *CustomReport) NextPage()         { r.engine.NextPage() }
func (r *CustomReport) PrevPage()         { r.engine.PrevPage() }
func (r *CustomReport) SetPage(p int)     { r.engine.SetPage(p) }

func (r *CustomReport) Page() view.CustomReportPage {
	rows := r.engine.VisiblePage()
	page := view.CustomReportPage{
		Rows:       make([]view.CustomReportRow, 0, len(rows)),
		Q:          r.engine.Query(),
		Page:       r.engine.Page(),
		TotalPages: r.engine.TotalPages(),
	}
	for _, o := range rows {
		page.Rows = append(page.Rows, view.CustomReportRow{
			ID:          o.ID,
			Name:        o.Name,
			Email:       o.Email,
			Phone:       o.Phone,
			Description: o.Description,
			ImageURL:    o.Image,
			Status:      string(o.Status),
		})
	}
	return page
}
