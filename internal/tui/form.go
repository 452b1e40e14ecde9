package tui

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Hosannah10/julidsfashion-admin/internal/api"
	"github.com/Hosannah10/julidsfashion-admin/internal/models"
	"github.com/Hosannah10/julidsfashion-admin/internal/shared/apperr"
)

const (
	fieldName = iota
	fieldPrice
	fieldDescription
	fieldCategory
	fieldImage
	fieldCount
)

// wearForm backs both the add-wear and edit-wear screens. The image field
// takes a filesystem path; it is required for create and optional for edit.
type wearForm struct {
	name        textinput.Model
	price       textinput.Model
	description textinput.Model
	imagePath   textinput.Model
	categoryIdx int
	focus       int

	editingID *int
	saving    bool
}

func newWearForm() *wearForm {
	f := &wearForm{}
	f.name = textinput.New()
	f.name.Placeholder = "Name"
	f.name.Focus()
	f.price = textinput.New()
	f.price.Placeholder = "Price"
	f.description = textinput.New()
	f.description.Placeholder = "Description"
	f.imagePath = textinput.New()
	f.imagePath.Placeholder = "Image path (e.g. ./ankara.jpg)"
	return f
}

func newWearFormFrom(w models.Wear) *wearForm {
	f := newWearForm()
	id := w.ID
	f.editingID = &id
	f.name.SetValue(w.WearName)
	f.price.SetValue(strconv.FormatFloat(w.Price, 'f', -1, 64))
	f.description.SetValue(w.Description)
	for i, c := range models.Categories() {
		if c == w.Category {
			f.categoryIdx = i
		}
	}
	return f
}

func (f *wearForm) reset() {
	*f = *newWearForm()
}

func (f *wearForm) category() string {
	return models.Categories()[f.categoryIdx]
}

// input converts the form into the API payload. The returned file, when
// non-nil, must be closed once the request has been built.
func (f *wearForm) input() (api.WearInput, *os.File, error) {
	price, err := strconv.ParseFloat(f.price.Value(), 64)
	if f.price.Value() != "" && err != nil {
		return api.WearInput{}, nil, apperr.InvalidErr("Price must be a number.", map[string]string{"price": "Invalid value."})
	}

	in := api.WearInput{
		WearName:    f.name.Value(),
		Price:       price,
		Description: f.description.Value(),
		Category:    f.category(),
	}

	if path := f.imagePath.Value(); path != "" {
		file, err := os.Open(path)
		if err != nil {
			return api.WearInput{}, nil, apperr.InvalidErr("Could not read the image file.", map[string]string{"image": err.Error()})
		}
		in.Image = &api.Upload{Filename: filepath.Base(path), Reader: file}
		return in, file, nil
	}

	return in, nil, nil
}

func (f *wearForm) setFocus(i int) {
	f.focus = i
	inputs := f.inputs()
	for j, ti := range inputs {
		if ti == nil {
			continue
		}
		if j == f.focus {
			ti.Focus()
		} else {
			ti.Blur()
		}
	}
}

func (f *wearForm) inputs() []*textinput.Model {
	// index-aligned with the field constants; category has no text input
	return []*textinput.Model{&f.name, &f.price, &f.description, nil, &f.imagePath}
}

func (a *App) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := a.form

	switch msg.String() {
	case "esc":
		f.editingID = nil
		return a, a.navigate(screenWears)
	case "tab", "down":
		f.setFocus((f.focus + 1) % fieldCount)
		return a, textinput.Blink
	case "shift+tab", "up":
		f.setFocus((f.focus + fieldCount - 1) % fieldCount)
		return a, textinput.Blink
	case "ctrl+s":
		if f.saving {
			return a, nil
		}
		f.saving = true
		return a, a.saveWearCmd()
	}

	if f.focus == fieldCategory {
		switch msg.String() {
		case "left":
			f.categoryIdx = (f.categoryIdx + len(models.Categories()) - 1) % len(models.Categories())
		case "right", "enter", " ":
			f.categoryIdx = (f.categoryIdx + 1) % len(models.Categories())
		}
		return a, nil
	}

	if msg.String() == "enter" {
		if f.focus == fieldImage {
			if f.saving {
				return a, nil
			}
			f.saving = true
			return a, a.saveWearCmd()
		}
		f.setFocus(f.focus + 1)
		return a, textinput.Blink
	}

	if ti := f.inputs()[f.focus]; ti != nil {
		var cmd tea.Cmd
		*ti, cmd = ti.Update(msg)
		return a, cmd
	}
	return a, nil
}
