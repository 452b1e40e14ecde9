package models

import "strconv"

// Status is the two-state order lifecycle. The backend enforces the value;
// the client only ever sends one of the two constants.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Toggled returns the opposite status.
func (s Status) Toggled() Status {
	if s == StatusPending {
		return StatusCompleted
	}
	return StatusPending
}

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

// Wear categories offered by the shop.
const (
	CategoryAsoebi    = "asoebi"
	CategoryCorporate = "corporate"
	CategoryMale      = "male"
	CategoryKiddies   = "kiddies"
)

func Categories() []string {
	return []string{CategoryAsoebi, CategoryCorporate, CategoryMale, CategoryKiddies}
}

// Wear is a catalog item. IDs are assigned by the backend.
type Wear struct {
	ID          int     `json:"id"`
	WearName    string  `json:"wearName"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image,omitempty"`
}

// SearchText concatenates the fields the catalog search matches against.
func (w Wear) SearchText() string {
	return w.WearName + " " + strconv.FormatFloat(w.Price, 'f', -1, 64) + " " + w.Description + " " + w.Category
}

// ShopOrder denormalizes the ordered wear at purchase time. Total comes
// computed from the backend and is never recomputed here.
type ShopOrder struct {
	ID          int     `json:"id"`
	WearName    string  `json:"wearName"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Quantity    int     `json:"quantity"`
	Total       float64 `json:"total"`
	Image       string  `json:"image,omitempty"`
	Status      Status  `json:"status"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
}

func (o ShopOrder) SearchText() string {
	return o.Name + " " + o.Email + " " + o.Phone + " " + o.WearName + " " +
		strconv.Itoa(o.Quantity) + " " + strconv.FormatFloat(o.Total, 'f', -1, 64) + " " + string(o.Status)
}

// CustomOrder is a bespoke request: no quantity or total, image required.
type CustomOrder struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Status      Status `json:"status"`
}

func (o CustomOrder) SearchText() string {
	return o.Name + " " + o.Email + " " + o.Phone + " " + o.Description + " " +
		string(o.Status) + " " + strconv.Itoa(o.ID)
}
