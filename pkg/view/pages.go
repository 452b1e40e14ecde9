package view

// Page view models consumed by the terminal screens. Services build these
// from their list engines; the presentation layer only renders them.

type WearListItem struct {
	ID       int
	Name     string
	Price    string
	Category string
	ImageURL string
}

type WearsListPage struct {
	Items      []WearListItem
	Q          string
	Category   string
	Sort       string
	Page       int
	TotalPages int
	Loading    bool
}

type ShopOrderListItem struct {
	ID       int
	WearName string
	Qty      int
	Total    string
	Status   string
	Buyer    string
	Email    string
	Phone    string
	ImageURL string
	Toggling bool
}

type ShopOrdersPage struct {
	Items      []ShopOrderListItem
	Q          string
	Status     string
	Page       int
	TotalPages int
	Loading    bool
}

type CustomOrderListItem struct {
	ID          int
	Name        string
	Email       string
	Phone       string
	Description string
	ImageURL    string
	Status      string
	Toggling    bool
}

type CustomOrdersPage struct {
	Items      []CustomOrderListItem
	Q          string
	Status     string
	Page       int
	TotalPages int
	Loading    bool
}

type ShopReportRow struct {
	ID          int
	Name        string
	Email       string
	Phone       string
	WearName    string
	Qty         int
	Total       string
	Description string
	Category    string
	ImageURL    string
	Status      string
}

type ShopReportPage struct {
	Rows       []ShopReportRow
	Q          string
	Page       int
	TotalPages int
}

type CustomReportRow struct {
	ID          int
	Name        string
	Email       string
	Phone       string
	Description string
	ImageURL    string
	Status      string
}

type CustomReportPage struct {
	Rows       []CustomReportRow
	Q          string
	Page       int
	TotalPages int
}
