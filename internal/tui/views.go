package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Hosannah10/julidsfashion-admin/internal/models"
)

func (a *App) View() string {
	var body string
	switch a.screen {
	case screenLogin:
		body = a.viewLogin()
	case screenAddWear:
		body = a.viewWearForm()
	case screenWears:
		body = a.viewWears()
	case screenShopOrders:
		body = a.viewShopOrders()
	case screenCustomOrders:
		body = a.viewCustomOrders()
	case screenShopReport:
		body = a.viewShopReport()
	case screenCustomReport:
		body = a.viewCustomReport()
	}

	sections := []string{a.viewTabs(), body}

	if url, open := a.currentPreview().URL(); open && url != "" {
		sections = append(sections, a.viewImageModal(url))
	}
	if _, pending := a.pendingDelete(); pending {
		sections = append(sections, a.viewConfirm())
	}
	if t, ok := a.toasts.Current(); ok {
		label := t.Message
		if t.Title != "" {
			label = t.Title + ": " + t.Message
		}
		sections = append(sections, toastStyle.Render(label+"  (x to dismiss)"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) viewTabs() string {
	if a.screen == screenLogin {
		return titleStyle.Render("Juli D's Fashion — Admin")
	}

	order := []screen{
		screenAddWear, screenWears, screenShopOrders,
		screenCustomOrders, screenShopReport, screenCustomReport,
	}
	var tabs []string
	for i, s := range order {
		label := fmt.Sprintf("%d %s", i+1, screenTitles[s])
		if s == a.screen {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (a *App) viewLogin() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Login") + "\n")
	b.WriteString(mutedStyle.Render("Enter your credentials") + "\n\n")
	if a.reason != "" {
		b.WriteString(errorStyle.Render(a.reason) + "\n\n")
	}
	b.WriteString(a.emailInput.View() + "\n")
	b.WriteString(a.passwordInput.View() + "\n\n")
	if a.loggingIn {
		b.WriteString(mutedStyle.Render("Checking...") + "\n")
	} else {
		b.WriteString(helpStyle.Render("enter login · tab switch field · ctrl+c quit"))
	}
	return b.String()
}

func (a *App) viewWearForm() string {
	f := a.form
	var b strings.Builder

	if f.editingID != nil {
		b.WriteString(titleStyle.Render(fmt.Sprintf("Edit Wear #%d", *f.editingID)) + "\n")
	} else {
		b.WriteString(titleStyle.Render("Add Wear") + "\n")
		b.WriteString(mutedStyle.Render("Fill in the details below to add a new wear to the shop.") + "\n")
	}
	b.WriteString("\n")

	b.WriteString(formField("Name *", f.name.View(), f.focus == fieldName) + "\n")
	b.WriteString(formField("Price *", f.price.View(), f.focus == fieldPrice) + "\n")
	b.WriteString(formField("Description *", f.description.View(), f.focus == fieldDescription) + "\n")

	cat := strings.ToUpper(f.category())
	if f.focus == fieldCategory {
		cat = "< " + cat + " >"
	}
	b.WriteString(formField("Category *", cat, f.focus == fieldCategory) + "\n")
	b.WriteString(formField("Image *", f.imagePath.View(), f.focus == fieldImage) + "\n\n")

	if f.saving {
		b.WriteString(mutedStyle.Render("Submitting...") + "\n")
	} else {
		b.WriteString(helpStyle.Render("tab next field · ctrl+s submit · esc back"))
	}
	return b.String()
}

func formField(label, value string, focused bool) string {
	l := mutedStyle.Render(fmt.Sprintf("%-14s", label))
	if focused {
		l = selectedRowStyle.Render(fmt.Sprintf("%-14s", label))
	}
	return l + " " + value
}

func (a *App) viewWears() string {
	page := a.catalog.Page()
	var b strings.Builder

	b.WriteString(titleStyle.Render("Added Wears") + "\n")
	b.WriteString(mutedStyle.Render("View, edit or delete wears you've added to the shop.") + "\n\n")
	b.WriteString(a.viewFilterLine(
		fmt.Sprintf("category: %s · sort: %s", strings.ToUpper(page.Category), page.Sort),
		page.Q,
	) + "\n\n")

	if page.Loading {
		return b.String() + mutedStyle.Render("Loading...")
	}
	if len(page.Items) == 0 {
		return b.String() + mutedStyle.Render("No wears found.")
	}

	for i, w := range page.Items {
		line := fmt.Sprintf("#%-4d %-28s %10s  %-10s %s", w.ID, truncate(w.Name, 28), w.Price, w.Category, imageMark(w.ImageURL))
		if i == a.cursor {
			line = selectedRowStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + a.viewPagination(page.Page, page.TotalPages))
	b.WriteString(helpStyle.Render("/ search · c category · s sort · e edit · d delete · enter image · ←/→ page"))
	return b.String()
}

func (a *App) viewShopOrders() string {
	page := a.shop.Page()
	var b strings.Builder

	b.WriteString(titleStyle.Render("Shop Orders") + "\n")
	b.WriteString(a.viewFilterLine(partitionLine(page.Status), page.Q) + "\n\n")

	if page.Loading {
		return b.String() + mutedStyle.Render("Loading orders...")
	}
	if len(page.Items) == 0 {
		return b.String() + mutedStyle.Render("No orders match your search.")
	}

	for i, o := range page.Items {
		toggleLabel := "t mark " + string(models.Status(o.Status).Toggled())
		if o.Toggling {
			toggleLabel = "updating..."
		}
		line := fmt.Sprintf("#%-4d %-24s x%-3d %10s  %-9s %-20s %s",
			o.ID, truncate(o.WearName, 24), o.Qty, o.Total,
			statusStyle(o.Status).Render(strings.ToUpper(o.Status)),
			truncate(o.Buyer, 20), mutedStyle.Render(toggleLabel))
		if i == a.cursor {
			line = selectedRowStyle.Render(fmt.Sprintf("#%-4d %-24s x%-3d %10s  %-9s %-20s %s",
				o.ID, truncate(o.WearName, 24), o.Qty, o.Total, strings.ToUpper(o.Status), truncate(o.Buyer, 20), toggleLabel))
		}
		b.WriteString(line + "\n")
		if i == a.cursor {
			b.WriteString(mutedStyle.Render(fmt.Sprintf("      Ordered by %s (Email: %s, Phone Number: %s)", o.Buyer, o.Email, o.Phone)) + "\n")
		}
	}

	b.WriteString("\n" + a.viewPagination(page.Page, page.TotalPages))
	b.WriteString(helpStyle.Render("/ search · p pending/completed · t toggle · d delete · enter image · ←/→ page"))
	return b.String()
}

func (a *App) viewCustomOrders() string {
	page := a.custom.Page()
	var b strings.Builder

	b.WriteString(titleStyle.Render("Custom Orders") + "\n")
	b.WriteString(a.viewFilterLine(partitionLine(page.Status), page.Q) + "\n\n")

	if page.Loading {
		return b.String() + mutedStyle.Render("Loading custom orders...")
	}
	if len(page.Items) == 0 {
		return b.String() + mutedStyle.Render("No orders match your search.")
	}

	for i, o := range page.Items {
		line := fmt.Sprintf("#%-4d %-18s %-26s %-14s %-9s %s",
			o.ID, truncate(o.Name, 18), truncate(o.Email, 26), o.Phone,
			statusStyle(o.Status).Render(o.Status), imageMark(o.ImageURL))
		if i == a.cursor {
			line = selectedRowStyle.Render(fmt.Sprintf("#%-4d %-18s %-26s %-14s %-9s %s",
				o.ID, truncate(o.Name, 18), truncate(o.Email, 26), o.Phone, o.Status, imageMark(o.ImageURL)))
			b.WriteString(line + "\n")
			b.WriteString(mutedStyle.Render("      "+truncate(o.Description, 100)) + "\n")
			continue
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + a.viewPagination(page.Page, page.TotalPages))
	b.WriteString(helpStyle.Render("/ search · p pending/completed · t toggle · d delete · enter image · ←/→ page"))
	return b.String()
}

func (a *App) viewShopReport() string {
	page := a.shopReport.Page()
	var b strings.Builder

	b.WriteString(titleStyle.Render("Shop Orders Report") + "\n")
	b.WriteString(a.viewFilterLine("", page.Q) + "\n\n")

	if len(page.Rows) == 0 {
		return b.String() + mutedStyle.Render("No rows.")
	}

	header := fmt.Sprintf("%-5s %-16s %-24s %-13s %-20s %-4s %-10s %-10s %-9s", "ID", "Name", "Email", "Phone", "Order", "Qty", "Price", "Category", "Status")
	b.WriteString(mutedStyle.Render(header) + "\n")
	for i, r := range page.Rows {
		line := fmt.Sprintf("%-5d %-16s %-24s %-13s %-20s %-4d %-10s %-10s %-9s",
			r.ID, truncate(r.Name, 16), truncate(r.Email, 24), r.Phone,
			truncate(r.WearName, 20), r.Qty, r.Total, r.Category, r.Status)
		if i == a.cursor {
			line = selectedRowStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + a.viewPagination(page.Page, page.TotalPages))
	b.WriteString(helpStyle.Render("/ search · enter image · ←/→ page"))
	return b.String()
}

func (a *App) viewCustomReport() string {
	page := a.customReport.Page()
	var b strings.Builder

	b.WriteString(titleStyle.Render("Custom Orders Report") + "\n")
	b.WriteString(a.viewFilterLine("", page.Q) + "\n\n")

	if len(page.Rows) == 0 {
		return b.String() + mutedStyle.Render("No rows.")
	}

	header := fmt.Sprintf("%-5s %-18s %-26s %-13s %-34s %-9s", "ID", "Name", "Email", "Phone", "Description", "Status")
	b.WriteString(mutedStyle.Render(header) + "\n")
	for i, r := range page.Rows {
		line := fmt.Sprintf("%-5d %-18s %-26s %-13s %-34s %-9s",
			r.ID, truncate(r.Name, 18), truncate(r.Email, 26), r.Phone,
			truncate(r.Description, 34), r.Status)
		if i == a.cursor {
			line = selectedRowStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + a.viewPagination(page.Page, page.TotalPages))
	b.WriteString(helpStyle.Render("/ search · enter image · ←/→ page"))
	return b.String()
}

func (a *App) viewFilterLine(left, query string) string {
	search := "search: " + query
	if a.searchFocused {
		search = "search: " + a.searchInput.View()
	}
	if left == "" {
		return mutedStyle.Render(search)
	}
	return mutedStyle.Render(left + " · " + search)
}

func (a *App) viewPagination(page, totalPages int) string {
	if totalPages <= 1 {
		return ""
	}
	var parts []string
	if page > 1 {
		parts = append(parts, "← prev")
	}
	parts = append(parts, fmt.Sprintf("page %d/%d", page, totalPages))
	if page < totalPages {
		parts = append(parts, "next →")
	}
	return mutedStyle.Render(strings.Join(parts, "  ")) + "\n"
}

func (a *App) viewConfirm() string {
	id, _ := a.pendingDelete()
	title := "Delete Order?"
	message := "Are you sure you want to delete this order permanently?"
	if a.screen == screenWears {
		title = "Delete Wear?"
		message = "Are you sure you want to delete this wear permanently?"
	}
	return modalStyle.Render(fmt.Sprintf("%s\n\n%s (#%d)\n\n[y] OK   [n] Cancel", titleStyle.Render(title), message, id))
}

func (a *App) viewImageModal(url string) string {
	return modalStyle.Render("Image\n\n" + url + "\n\n[esc] close")
}

func partitionLine(active string) string {
	if active == string(models.StatusCompleted) {
		return "pending | " + strings.ToUpper(string(models.StatusCompleted))
	}
	return strings.ToUpper(string(models.StatusPending)) + " | completed"
}

func imageMark(url string) string {
	if url == "" {
		return "-"
	}
	return "img"
}

// truncate shortens to n cells counted in runes, so multibyte names never
// split mid-character.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		if n < 0 {
			n = 0
		}
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
