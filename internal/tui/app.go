// Package tui is the terminal front end of the admin client. All list,
// confirm, toast and session logic lives in the service packages; this layer
// only routes keys and renders pages. Commands perform network calls only
// and carry results back as messages; service state is mutated inside
// Update, never from a command goroutine.
package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Hosannah10/julidsfashion-admin/internal/api"
	"github.com/Hosannah10/julidsfashion-admin/internal/models"
	"github.com/Hosannah10/julidsfashion-admin/internal/modules/catalog"
	"github.com/Hosannah10/julidsfashion-admin/internal/modules/custom"
	"github.com/Hosannah10/julidsfashion-admin/internal/modules/orders"
	"github.com/Hosannah10/julidsfashion-admin/internal/modules/reports"
	"github.com/Hosannah10/julidsfashion-admin/internal/notify"
	"github.com/Hosannah10/julidsfashion-admin/internal/session"
	"github.com/Hosannah10/julidsfashion-admin/internal/shared/apperr"
)

type screen int

const (
	screenLogin screen = iota
	screenAddWear
	screenWears
	screenShopOrders
	screenCustomOrders
	screenShopReport
	screenCustomReport
)

var screenTitles = map[screen]string{
	screenLogin:        "Login",
	screenAddWear:      "Add Wear",
	screenWears:        "Added Wears",
	screenShopOrders:   "Shop Orders",
	screenCustomOrders: "Custom Orders",
	screenShopReport:   "Shop Orders Report",
	screenCustomReport: "Custom Orders Report",
}

// Result messages carry what a command fetched or pushed back onto the
// event loop, where the owning service applies it.
type (
	wearsLoadedMsg struct {
		wears []models.Wear
		err   error
	}
	shopOrdersLoadedMsg struct {
		orders []models.ShopOrder
		err    error
	}
	customOrdersLoadedMsg struct {
		orders []models.CustomOrder
		err    error
	}
	shopReportLoadedMsg struct {
		orders []models.ShopOrder
		err    error
	}
	customReportLoadedMsg struct {
		orders []models.CustomOrder
		err    error
	}
	shopToggledMsg struct {
		before  models.ShopOrder
		updated models.ShopOrder
		err     error
	}
	customToggledMsg struct {
		before  models.CustomOrder
		updated models.CustomOrder
		err     error
	}
	deleteDoneMsg struct {
		s   screen
		id  int
		err error
	}
	loginDoneMsg struct{ err error }
	wearSavedMsg struct {
		id      int
		editing bool
		updated models.Wear
		err     error
	}
)

// App wires every screen service together behind one bubbletea model.
type App struct {
	sess   *session.Store
	api    *api.Client
	toasts *notify.Queue
	log    *slog.Logger

	catalog      *catalog.Service
	shop         *orders.Service
	custom       *custom.Service
	shopReport   *reports.ShopReport
	customReport *reports.CustomReport

	screen screen
	wanted screen // attempted destination carried across the login redirect
	reason string // why the user landed on login

	width, height int
	cursor        int
	loaded        map[screen]bool

	searchInput   textinput.Model
	searchFocused bool

	emailInput    textinput.Model
	passwordInput textinput.Model
	loginFocus    int
	loggingIn     bool

	form *wearForm

	// loads are scoped to the visible screen; navigating away cancels the
	// in-flight request instead of letting a late response land on stale
	// state.
	screenCtx    context.Context
	cancelScreen context.CancelFunc
}

func NewApp(sess *session.Store, client *api.Client, toasts *notify.Queue, log *slog.Logger) *App {
	a := &App{
		sess:   sess,
		api:    client,
		toasts: toasts,
		log:    log,

		catalog:      catalog.NewService(client, toasts, log),
		shop:         orders.NewService(client, toasts, log),
		custom:       custom.NewService(client, toasts, log),
		shopReport:   reports.NewShopReport(client, log),
		customReport: reports.NewCustomReport(client, log),

		loaded: map[screen]bool{},
	}

	a.searchInput = textinput.New()
	a.searchInput.Placeholder = "Search…"

	a.emailInput = textinput.New()
	a.emailInput.Placeholder = "Email"
	a.emailInput.Focus()
	a.passwordInput = textinput.New()
	a.passwordInput.Placeholder = "Password"
	a.passwordInput.EchoMode = textinput.EchoPassword

	a.screenCtx, a.cancelScreen = context.WithCancel(context.Background())

	if a.sess.Current() != nil {
		a.screen = screenWears
	} else {
		a.screen = screenLogin
	}
	return a
}

func (a *App) Init() tea.Cmd {
	if a.screen == screenWears {
		return a.loadCmd(screenWears)
	}
	return textinput.Blink
}

// Run starts the program in the alternate screen.
func (a *App) Run() error {
	_, err := tea.NewProgram(a, tea.WithAltScreen()).Run()
	return err
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil

	case wearsLoadedMsg:
		a.catalog.ApplyLoad(msg.wears, msg.err)
		a.loaded[screenWears] = true
		return a, nil

	case shopOrdersLoadedMsg:
		a.shop.ApplyLoad(msg.orders, msg.err)
		a.loaded[screenShopOrders] = true
		return a, nil

	case customOrdersLoadedMsg:
		a.custom.ApplyLoad(msg.orders, msg.err)
		a.loaded[screenCustomOrders] = true
		return a, nil

	case shopReportLoadedMsg:
		a.shopReport.ApplyLoad(msg.orders, msg.err)
		a.loaded[screenShopReport] = true
		return a, nil

	case customReportLoadedMsg:
		a.customReport.ApplyLoad(msg.orders, msg.err)
		a.loaded[screenCustomReport] = true
		return a, nil

	case shopToggledMsg:
		a.shop.ApplyToggle(msg.before, msg.updated, msg.err)
		a.clampCursor()
		return a, nil

	case customToggledMsg:
		a.custom.ApplyToggle(msg.before, msg.updated, msg.err)
		a.clampCursor()
		return a, nil

	case deleteDoneMsg:
		switch msg.s {
		case screenWears:
			a.catalog.ApplyDelete(msg.id, msg.err)
		case screenShopOrders:
			a.shop.ApplyDelete(msg.id, msg.err)
		case screenCustomOrders:
			a.custom.ApplyDelete(msg.id, msg.err)
		}
		a.clampCursor()
		return a, nil

	case loginDoneMsg:
		a.loggingIn = false
		if msg.err != nil {
			return a, nil // toast already queued by the login command
		}
		a.toasts.Show("Welcome, Admin!")
		a.reason = ""
		a.passwordInput.SetValue("")
		return a, a.navigate(a.loginTarget())

	case wearSavedMsg:
		if msg.editing {
			a.catalog.ApplyUpdate(msg.id, msg.updated, msg.err)
		}
		if a.form == nil {
			return a, nil
		}
		a.form.saving = false
		if msg.err == nil {
			if msg.editing {
				return a, a.navigate(screenWears)
			}
			a.form.reset()
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, a.updateInputs(msg)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	// Modals swallow every key while open.
	if handled, cmd := a.handleModalKey(msg); handled {
		return a, cmd
	}

	if a.screen == screenLogin {
		return a.handleLoginKey(msg)
	}
	if a.screen == screenAddWear {
		return a.handleFormKey(msg)
	}

	if a.searchFocused {
		return a.handleSearchKey(msg)
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "ctrl+l":
		a.sess.Logout()
		a.toasts.Show("Logged out")
		return a, a.navigate(screenLogin)
	case "x":
		if t, ok := a.toasts.Current(); ok {
			a.toasts.Dismiss(t.ID)
		}
		return a, nil
	case "1":
		return a, a.navigate(screenAddWear)
	case "2":
		return a, a.navigate(screenWears)
	case "3":
		return a, a.navigate(screenShopOrders)
	case "4":
		return a, a.navigate(screenCustomOrders)
	case "5":
		return a, a.navigate(screenShopReport)
	case "6":
		return a, a.navigate(screenCustomReport)
	case "/":
		a.searchFocused = true
		a.searchInput.SetValue(a.currentQuery())
		a.searchInput.Focus()
		return a, textinput.Blink
	}

	return a.handleListKey(msg)
}

// handleModalKey drives whichever overlay is open on the current screen.
func (a *App) handleModalKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if url, open := a.currentPreview().URL(); open && url != "" {
		switch msg.String() {
		case "esc", "enter", "q":
			a.currentPreview().Close()
		}
		return true, nil
	}

	if _, pending := a.pendingDelete(); pending {
		switch msg.String() {
		case "y", "enter":
			return true, a.confirmDeleteCmd()
		case "n", "esc":
			a.cancelDelete()
		}
		return true, nil
	}

	return false, nil
}

func (a *App) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		a.loginFocus = 1 - a.loginFocus
		if a.loginFocus == 0 {
			a.emailInput.Focus()
			a.passwordInput.Blur()
		} else {
			a.passwordInput.Focus()
			a.emailInput.Blur()
		}
		return a, textinput.Blink
	case "enter":
		if a.loggingIn {
			return a, nil
		}
		email, password := a.emailInput.Value(), a.passwordInput.Value()
		if email == "" || password == "" {
			a.toasts.Show("Please fill all required fields.")
			return a, nil
		}
		a.loggingIn = true
		return a, a.loginCmd(email, password)
	}
	return a, a.updateInputs(msg)
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		a.searchFocused = false
		a.searchInput.Blur()
		return a, nil
	}
	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	a.setCurrentQuery(a.searchInput.Value())
	a.cursor = 0
	return a, cmd
}

func (a *App) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < a.currentPageLen()-1 {
			a.cursor++
		}
	case "left", "h":
		a.currentPrevPage()
		a.cursor = 0
	case "right", "l":
		a.currentNextPage()
		a.cursor = 0
	case "p":
		a.togglePartition()
	case "c":
		a.cycleCategory()
	case "s":
		a.cycleSort()
	case "t":
		return a, a.toggleSelectedCmd()
	case "d":
		a.requestDeleteSelected()
	case "e":
		a.editSelected()
	case "enter":
		a.previewSelected()
	}
	return a, nil
}

// navigate switches screens, gating management screens behind the session
// and kicking off the screen's first load. The previous screen's in-flight
// load is cancelled.
func (a *App) navigate(target screen) tea.Cmd {
	if target != screenLogin && a.sess.Current() == nil {
		a.wanted = target
		a.reason = "You must log in to continue."
		a.screen = screenLogin
		a.emailInput.Focus()
		a.loginFocus = 0
		return textinput.Blink
	}

	a.cancelScreen()
	a.screenCtx, a.cancelScreen = context.WithCancel(context.Background())

	a.screen = target
	a.cursor = 0
	a.searchFocused = false
	a.searchInput.Blur()

	if target == screenAddWear && (a.form == nil || a.form.editingID == nil) {
		a.form = newWearForm()
	}

	if !a.loaded[target] {
		return a.loadCmd(target)
	}
	return nil
}

func (a *App) loginTarget() screen {
	if a.wanted != screenLogin {
		return a.wanted
	}
	// The dashboard lands admins on the add-wear form after login.
	return screenAddWear
}

// loadCmd marks the screen loading on the event loop and returns a command
// that only fetches; the loaded message applies the result back in Update.
func (a *App) loadCmd(s screen) tea.Cmd {
	ctx := a.screenCtx
	switch s {
	case screenWears:
		a.catalog.BeginLoad()
		return func() tea.Msg {
			wears, err := a.catalog.Fetch(ctx)
			return wearsLoadedMsg{wears: wears, err: err}
		}
	case screenShopOrders:
		a.shop.BeginLoad()
		return func() tea.Msg {
			list, err := a.shop.Fetch(ctx)
			return shopOrdersLoadedMsg{orders: list, err: err}
		}
	case screenCustomOrders:
		a.custom.BeginLoad()
		return func() tea.Msg {
			list, err := a.custom.Fetch(ctx)
			return customOrdersLoadedMsg{orders: list, err: err}
		}
	case screenShopReport:
		return func() tea.Msg {
			rows, err := a.shopReport.Fetch(ctx)
			return shopReportLoadedMsg{orders: rows, err: err}
		}
	case screenCustomReport:
		return func() tea.Msg {
			rows, err := a.customReport.Fetch(ctx)
			return customReportLoadedMsg{orders: rows, err: err}
		}
	}
	return nil
}

func (a *App) loginCmd(email, password string) tea.Cmd {
	ctx := a.screenCtx
	return func() tea.Msg {
		res, err := a.api.Login(ctx, email, password)
		if err != nil {
			a.log.Error("login failed", "error", err)
			if apperr.IsKind(err, apperr.Network) {
				a.toasts.Show("Login failed. Please try again.")
			} else {
				a.toasts.Show("Invalid email or password.")
			}
			return loginDoneMsg{err: err}
		}
		if err := a.sess.Login(res.Token, res.User); err != nil {
			a.toasts.Show(apperr.PublicMessage(err))
			return loginDoneMsg{err: err}
		}
		return loginDoneMsg{}
	}
}

func (a *App) toggleSelectedCmd() tea.Cmd {
	ctx := a.screenCtx
	switch a.screen {
	case screenShopOrders:
		o, ok := a.selectedShopOrder()
		if !ok || a.shop.IsToggling(o.ID) {
			return nil
		}
		a.shop.BeginToggle(o.ID)
		return func() tea.Msg {
			updated, err := a.shop.PushToggle(ctx, o)
			return shopToggledMsg{before: o, updated: updated, err: err}
		}
	case screenCustomOrders:
		o, ok := a.selectedCustomOrder()
		if !ok || a.custom.IsToggling(o.ID) {
			return nil
		}
		a.custom.BeginToggle(o.ID)
		return func() tea.Msg {
			updated, err := a.custom.PushToggle(ctx, o)
			return customToggledMsg{before: o, updated: updated, err: err}
		}
	}
	return nil
}

// confirmDeleteCmd pops the armed identifier on the event loop; the command
// only issues the delete call.
func (a *App) confirmDeleteCmd() tea.Cmd {
	ctx := a.screenCtx
	s := a.screen

	var id int
	var ok bool
	var push func(context.Context, int) error
	switch s {
	case screenWears:
		id, ok = a.catalog.TakeDelete()
		push = a.catalog.PushDelete
	case screenShopOrders:
		id, ok = a.shop.TakeDelete()
		push = a.shop.PushDelete
	case screenCustomOrders:
		id, ok = a.custom.TakeDelete()
		push = a.custom.PushDelete
	}
	if !ok {
		return nil
	}
	return func() tea.Msg {
		return deleteDoneMsg{s: s, id: id, err: push(ctx, id)}
	}
}

// saveWearCmd reads the form on the event loop; the command only submits
// the assembled payload.
func (a *App) saveWearCmd() tea.Cmd {
	ctx := a.screenCtx
	in, file, err := a.form.input()
	if err != nil {
		a.form.saving = false
		a.toasts.Show(err.Error())
		return nil
	}

	editingID := a.form.editingID
	return func() tea.Msg {
		if file != nil {
			defer file.Close()
		}
		if editingID != nil {
			updated, err := a.catalog.PushUpdate(ctx, *editingID, in)
			return wearSavedMsg{id: *editingID, editing: true, updated: updated, err: err}
		}
		return wearSavedMsg{err: a.catalog.Create(ctx, in)}
	}
}

func (a *App) updateInputs(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	a.emailInput, cmd = a.emailInput.Update(msg)
	cmds = append(cmds, cmd)
	a.passwordInput, cmd = a.passwordInput.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

// --- selection helpers -------------------------------------------------

func (a *App) selectedShopOrder() (models.ShopOrder, bool) {
	page := a.shop.Page()
	if a.cursor >= len(page.Items) {
		return models.ShopOrder{}, false
	}
	id := page.Items[a.cursor].ID
	for _, o := range a.shop.Orders() {
		if o.ID == id {
			return o, true
		}
	}
	return models.ShopOrder{}, false
}

func (a *App) selectedCustomOrder() (models.CustomOrder, bool) {
	page := a.custom.Page()
	if a.cursor >= len(page.Items) {
		return models.CustomOrder{}, false
	}
	id := page.Items[a.cursor].ID
	for _, o := range a.custom.Orders() {
		if o.ID == id {
			return o, true
		}
	}
	return models.CustomOrder{}, false
}

func (a *App) requestDeleteSelected() {
	switch a.screen {
	case screenWears:
		page := a.catalog.Page()
		if a.cursor < len(page.Items) {
			a.catalog.RequestDelete(page.Items[a.cursor].ID)
		}
	case screenShopOrders:
		if o, ok := a.selectedShopOrder(); ok {
			a.shop.RequestDelete(o.ID)
		}
	case screenCustomOrders:
		if o, ok := a.selectedCustomOrder(); ok {
			a.custom.RequestDelete(o.ID)
		}
	}
}

func (a *App) editSelected() {
	if a.screen != screenWears {
		return
	}
	page := a.catalog.Page()
	if a.cursor >= len(page.Items) {
		return
	}
	w, ok := a.catalog.Find(page.Items[a.cursor].ID)
	if !ok {
		return
	}
	a.form = newWearFormFrom(w)
	a.screen = screenAddWear
}

func (a *App) previewSelected() {
	var url string
	switch a.screen {
	case screenWears:
		page := a.catalog.Page()
		if a.cursor < len(page.Items) {
			url = page.Items[a.cursor].ImageURL
		}
		if url != "" {
			a.catalog.Preview.Open(url)
		}
	case screenShopOrders:
		page := a.shop.Page()
		if a.cursor < len(page.Items) {
			url = page.Items[a.cursor].ImageURL
		}
		if url != "" {
			a.shop.Preview.Open(url)
		}
	case screenCustomOrders:
		page := a.custom.Page()
		if a.cursor < len(page.Items) {
			url = page.Items[a.cursor].ImageURL
		}
		if url != "" {
			a.custom.Preview.Open(url)
		}
	case screenShopReport:
		page := a.shopReport.Page()
		if a.cursor < len(page.Rows) {
			url = page.Rows[a.cursor].ImageURL
		}
		if url != "" {
			a.shopReport.Preview.Open(url)
		}
	case screenCustomReport:
		page := a.customReport.Page()
		if a.cursor < len(page.Rows) {
			url = page.Rows[a.cursor].ImageURL
		}
		if url != "" {
			a.customReport.Preview.Open(url)
		}
	}
}

func (a *App) togglePartition() {
	switch a.screen {
	case screenShopOrders:
		a.shop.SetStatus(a.shop.Status().Toggled())
		a.cursor = 0
	case screenCustomOrders:
		a.custom.SetStatus(a.custom.Status().Toggled())
		a.cursor = 0
	}
}

func (a *App) cycleCategory() {
	if a.screen != screenWears {
		return
	}
	cats := append([]string{catalog.CategoryAll}, models.Categories()...)
	cur := a.catalog.Category()
	for i, c := range cats {
		if c == cur {
			a.catalog.SetCategory(cats[(i+1)%len(cats)])
			a.cursor = 0
			return
		}
	}
	a.catalog.SetCategory(catalog.CategoryAll)
}

func (a *App) cycleSort() {
	if a.screen != screenWears {
		return
	}
	modes := []catalog.Sort{
		catalog.SortDefault, catalog.SortNewest,
		catalog.SortNameAsc, catalog.SortNameDesc,
		catalog.SortPriceLow, catalog.SortPriceHigh,
	}
	cur := a.catalog.SortMode()
	for i, m := range modes {
		if m == cur {
			a.catalog.SetSort(modes[(i+1)%len(modes)])
			a.cursor = 0
			return
		}
	}
}

// --- per-screen dispatch ------------------------------------------------

func (a *App) currentQuery() string {
	switch a.screen {
	case screenWears:
		return a.catalog.Page().Q
	case screenShopOrders:
		return a.shop.Page().Q
	case screenCustomOrders:
		return a.custom.Page().Q
	case screenShopReport:
		return a.shopReport.Page().Q
	case screenCustomReport:
		return a.customReport.Page().Q
	}
	return ""
}

func (a *App) setCurrentQuery(q string) {
	switch a.screen {
	case screenWears:
		a.catalog.SetQuery(q)
	case screenShopOrders:
		a.shop.SetQuery(q)
	case screenCustomOrders:
		a.custom.SetQuery(q)
	case screenShopReport:
		a.shopReport.SetQuery(q)
	case screenCustomReport:
		a.customReport.SetQuery(q)
	}
}

func (a *App) currentPageLen() int {
	switch a.screen {
	case screenWears:
		return len(a.catalog.Page().Items)
	case screenShopOrders:
		return len(a.shop.Page().Items)
	case screenCustomOrders:
		return len(a.custom.Page().Items)
	case screenShopReport:
		return len(a.shopReport.Page().Rows)
	case screenCustomReport:
		return len(a.customReport.Page().Rows)
	}
	return 0
}

func (a *App) currentNextPage() {
	switch a.screen {
	case screenWears:
		a.catalog.NextPage()
	case screenShopOrders:
		a.shop.NextPage()
	case screenCustomOrders:
		a.custom.NextPage()
	case screenShopReport:
		a.shopReport.NextPage()
	case screenCustomReport:
		a.customReport.NextPage()
	}
}

func (a *App) currentPrevPage() {
	switch a.screen {
	case screenWears:
		a.catalog.PrevPage()
	case screenShopOrders:
		a.shop.PrevPage()
	case screenCustomOrders:
		a.custom.PrevPage()
	case screenShopReport:
		a.shopReport.PrevPage()
	case screenCustomReport:
		a.customReport.PrevPage()
	}
}

func (a *App) currentPreview() *previewRef {
	switch a.screen {
	case screenWears:
		return &previewRef{&a.catalog.Preview}
	case screenShopOrders:
		return &previewRef{&a.shop.Preview}
	case screenCustomOrders:
		return &previewRef{&a.custom.Preview}
	case screenShopReport:
		return &previewRef{&a.shopReport.Preview}
	case screenCustomReport:
		return &previewRef{&a.customReport.Preview}
	}
	return &previewRef{}
}

func (a *App) pendingDelete() (int, bool) {
	switch a.screen {
	case screenWears:
		return a.catalog.PendingDelete()
	case screenShopOrders:
		return a.shop.PendingDelete()
	case screenCustomOrders:
		return a.custom.PendingDelete()
	}
	return 0, false
}

func (a *App) cancelDelete() {
	switch a.screen {
	case screenWears:
		a.catalog.CancelDelete()
	case screenShopOrders:
		a.shop.CancelDelete()
	case screenCustomOrders:
		a.custom.CancelDelete()
	}
}

func (a *App) clampCursor() {
	if n := a.currentPageLen(); a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// previewRef papers over the per-service preview modals with one handle.
type previewRef struct {
	m interface {
		URL() (string, bool)
		Close()
	}
}

func (p *previewRef) URL() (string, bool) {
	if p.m == nil {
		return "", false
	}
	return p.m.URL()
}

func (p *previewRef) Close() {
	if p.m != nil {
		p.m.Close()
	}
}
