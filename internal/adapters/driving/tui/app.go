package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/retracehq/retrace/internal/core/domain"
)

// rangeCycle is the fixed order the time-range key steps through.
var rangeCycle = []domain.TimeRange{
	domain.Today(),
	domain.ThisWeek(),
	domain.PastWeeks(2),
	domain.PastWeeks(4),
	domain.PastWeeks(8),
}

// scopeCycle is the fixed order the scope key steps through.
var scopeCycle = []domain.Scope{
	domain.ScopeAll,
	domain.ScopeHistory,
	domain.ScopeBookmarks,
	domain.ScopeTabs,
}

// App is the TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports *Ports
	opts  Options

	ctx    context.Context
	styles *Styles
	keymap *KeyMap
	input  textinput.Model

	// filters is the live filter state; every edit bumps seq or fires a
	// search directly.
	filters domain.FilterState

	// seq identifies the latest keystroke burst for debouncing. Only the
	// debounce tick carrying the current seq triggers a search.
	seq int

	// gen tags query cycles. A searchCompleted carrying an older gen is
	// stale and never applied.
	gen uint64

	// results is the last applied result list. cursor indexes into it;
	// marked holds multi-selected result ids.
	results []domain.ResultItem
	cursor  int
	marked  map[string]bool

	// domainOptions feeds the domain filter cycle; domainIdx of -1 means
	// no domain filter.
	domainOptions []domain.DomainOption
	domainIdx     int

	// confirming is non-nil while the delete confirmation is showing.
	confirming []domain.ResultItem

	// stale marks the shown results as outdated after a failed refresh.
	stale     bool
	searching bool
	err       error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates the TUI application with the given ports.
func NewApp(ports *Ports, opts Options) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}
	opts = opts.withDefaults()

	input := textinput.New()
	input.Placeholder = "Type to search history, bookmarks, and tabs…"
	input.Prompt = "› "
	input.Focus()

	filters := domain.DefaultFilters()
	filters.Limit = opts.DefaultLimit

	return &App{
		ports:     ports,
		opts:      opts,
		ctx:       context.Background(),
		styles:    DefaultStyles(),
		keymap:    DefaultKeyMap(),
		input:     input,
		filters:   filters,
		marked:    make(map[string]bool),
		domainIdx: -1,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.SetWindowTitle("retrace"),
		a.loadDomains(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.ready = true
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case debounceElapsed:
		// Older bursts are ignored; more typing followed them.
		if msg.Seq != a.seq {
			return a, nil
		}
		return a, a.startSearch()

	case searchCompleted:
		a.applySearch(msg)
		return a, nil

	case RefreshRequested:
		return a, a.startSearch()

	case domainsLoaded:
		if msg.Err == nil {
			a.domainOptions = msg.Options
		}
		return a, nil

	case actionCompleted:
		if msg.Err != nil {
			a.err = msg.Err
			a.stale = true
			return a, nil
		}
		if msg.Requery {
			return a, a.startSearch()
		}
		return a, nil
	}

	return a, nil
}

// handleKey processes one key press.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keymap.Quit) {
		return a, tea.Quit
	}

	// The confirmation dialog swallows everything except its own answers.
	if a.confirming != nil {
		return a.handleConfirmKey(msg)
	}

	switch {
	case key.Matches(msg, a.keymap.Clear):
		if a.input.Value() == "" {
			return a, tea.Quit
		}
		a.input.SetValue("")
		a.filters.Query = ""
		return a, a.startSearch()

	case key.Matches(msg, a.keymap.Up):
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil

	case key.Matches(msg, a.keymap.Down):
		if a.cursor < len(a.results)-1 {
			a.cursor++
		}
		return a, nil

	case key.Matches(msg, a.keymap.ToggleSelect):
		if item, ok := a.highlighted(); ok {
			if a.marked[item.ID] {
				delete(a.marked, item.ID)
			} else {
				a.marked[item.ID] = true
			}
		}
		return a, nil

	case key.Matches(msg, a.keymap.Open):
		if item, ok := a.highlighted(); ok {
			return a, a.openResult(item)
		}
		return a, nil

	case key.Matches(msg, a.keymap.Delete):
		doomed := a.selection()
		if len(doomed) > 0 {
			a.confirming = doomed
		}
		return a, nil

	case key.Matches(msg, a.keymap.CycleScope):
		a.filters.Scope = cycleScope(a.filters.Scope)
		return a, a.startSearch()

	case key.Matches(msg, a.keymap.CycleRange):
		a.filters.TimeRange = cycleRange(a.filters.TimeRange)
		return a, a.startSearch()

	case key.Matches(msg, a.keymap.CycleDomain):
		a.cycleDomain()
		return a, a.startSearch()
	}

	// Everything else edits the query, debounced.
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)

	if a.input.Value() != a.filters.Query {
		a.filters.Query = a.input.Value()
		a.seq++
		return a, tea.Batch(cmd, a.debounceTick(a.seq))
	}
	return a, cmd
}

// handleConfirmKey answers the delete confirmation.
func (a *App) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch strings.ToLower(msg.String()) {
	case "y", "enter":
		doomed := a.confirming
		a.confirming = nil
		a.marked = make(map[string]bool)
		return a, a.deleteResults(doomed)
	case "n", "esc":
		a.confirming = nil
		return a, nil
	default:
		return a, nil
	}
}

// highlighted returns the result under the cursor.
func (a *App) highlighted() (domain.ResultItem, bool) {
	if a.cursor < 0 || a.cursor >= len(a.results) {
		return domain.ResultItem{}, false
	}
	return a.results[a.cursor], true
}

// selection returns the marked results in display order, or the
// highlighted result when nothing is marked.
func (a *App) selection() []domain.ResultItem {
	var out []domain.ResultItem
	for _, item := range a.results {
		if a.marked[item.ID] {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		if item, ok := a.highlighted(); ok {
			out = append(out, item)
		}
	}
	return out
}

func cycleScope(s domain.Scope) domain.Scope {
	for i, cur := range scopeCycle {
		if cur == s {
			return scopeCycle[(i+1)%len(scopeCycle)]
		}
	}
	return scopeCycle[0]
}

func cycleRange(r domain.TimeRange) domain.TimeRange {
	for i, cur := range rangeCycle {
		if cur == r {
			return rangeCycle[(i+1)%len(rangeCycle)]
		}
	}
	return rangeCycle[0]
}

// cycleDomain steps none → first suggestion → … → last → none.
func (a *App) cycleDomain() {
	if len(a.domainOptions) == 0 {
		return
	}
	a.domainIdx++
	if a.domainIdx >= len(a.domainOptions) {
		a.domainIdx = -1
		a.filters.Domain = ""
		return
	}
	a.filters.Domain = a.domainOptions[a.domainIdx].Hostname
}

// debounceTick schedules the end-of-burst check for seq.
func (a *App) debounceTick(seq int) tea.Cmd {
	return tea.Tick(a.opts.Debounce, func(time.Time) tea.Msg {
		return debounceElapsed{Seq: seq}
	})
}

// startSearch issues a new query cycle and returns the command running it.
func (a *App) startSearch() tea.Cmd {
	a.gen++
	gen := a.gen
	filters := a.filters
	a.searching = true

	return func() tea.Msg {
		results, err := a.ports.Search.Search(a.ctx, filters)
		return searchCompleted{Gen: gen, Results: results, Err: err}
	}
}

// applySearch folds a search outcome into the model, dropping stale ones.
func (a *App) applySearch(msg searchCompleted) {
	if msg.Gen != a.gen {
		// A newer cycle is already in flight; this outcome is dead.
		return
	}
	a.searching = false

	if msg.Err != nil {
		if errors.Is(msg.Err, domain.ErrSuperseded) {
			return
		}
		a.err = msg.Err
		a.stale = len(a.results) > 0
		return
	}

	a.err = nil
	a.stale = false
	a.results = msg.Results
	if a.cursor >= len(a.results) {
		a.cursor = len(a.results) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}

	// Drop marks for results that vanished.
	alive := make(map[string]bool, len(a.results))
	for _, item := range a.results {
		alive[item.ID] = true
	}
	for id := range a.marked {
		if !alive[id] {
			delete(a.marked, id)
		}
	}
}

// openResult opens one result without refetching.
func (a *App) openResult(item domain.ResultItem) tea.Cmd {
	return func() tea.Msg {
		return actionCompleted{Err: a.ports.Actions.Open(a.ctx, item)}
	}
}

// deleteResults runs the bulk delete and requeries on success.
func (a *App) deleteResults(items []domain.ResultItem) tea.Cmd {
	return func() tea.Msg {
		if err := a.ports.Actions.Delete(a.ctx, items); err != nil {
			return actionCompleted{Err: err}
		}
		a.ports.Search.Invalidate()
		return actionCompleted{Requery: true}
	}
}

// loadDomains fetches the domain filter suggestions once at startup.
func (a *App) loadDomains() tea.Cmd {
	if a.ports.Domains == nil {
		return nil
	}
	return func() tea.Msg {
		options, err := a.ports.Domains.TopDomains(a.ctx, domain.DomainSuggestionOptions{})
		return domainsLoaded{Options: options, Err: err}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Loading…"
	}

	var b strings.Builder
	b.WriteString(a.styles.Title.Render("retrace"))
	b.WriteString("\n")
	b.WriteString(a.input.View())
	b.WriteString("\n")
	b.WriteString(a.styles.Muted.Render(a.filterBar()))
	b.WriteString("\n\n")
	b.WriteString(a.resultList())

	if a.confirming != nil {
		b.WriteString("\n")
		b.WriteString(a.styles.Warning.Render(
			fmt.Sprintf("Delete %d results? (y/n)", len(a.confirming))))
	}

	b.WriteString("\n")
	b.WriteString(a.statusLine())
	return b.String()
}

// filterBar renders the active filters.
func (a *App) filterBar() string {
	domainLabel := "any domain"
	if a.filters.Domain != "" {
		domainLabel = a.filters.Domain
	}
	return fmt.Sprintf("scope: %s  ·  %s  ·  %s  ·  limit %d",
		a.filters.Scope, a.filters.TimeRange, domainLabel, a.filters.Limit)
}

// resultList renders the results with cursor and selection marks.
func (a *App) resultList() string {
	if len(a.results) == 0 {
		if !a.filters.HasSignal() {
			return a.styles.Muted.Render("Start typing, or pick a domain filter with F3.")
		}
		if a.searching {
			return a.styles.Muted.Render("Searching…")
		}
		return a.styles.Muted.Render("No results.")
	}

	var b strings.Builder
	for i, item := range a.results {
		cursor := "  "
		if i == a.cursor {
			cursor = "> "
		}
		mark := "[ ] "
		if a.marked[item.ID] {
			mark = "[x] "
		}

		line := cursor + mark + "(" + shortKind(item.Kind) + ") " + item.Title
		switch {
		case i == a.cursor:
			b.WriteString(a.styles.Selected.Render(line))
		case a.marked[item.ID]:
			b.WriteString(a.styles.Marked.Render(line))
		default:
			b.WriteString(a.styles.Normal.Render(line))
		}
		b.WriteString("\n")
		b.WriteString(a.styles.Muted.Render("      " + item.URL))
		if item.MetaLine != "" {
			b.WriteString(a.styles.Muted.Render("  ·  " + item.MetaLine))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func shortKind(kind domain.ResultKind) string {
	switch kind {
	case domain.KindTab:
		return "tab"
	case domain.KindHistory:
		return "his"
	case domain.KindBookmark:
		return "bmk"
	default:
		return "?"
	}
}

// statusLine renders the bottom bar.
func (a *App) statusLine() string {
	parts := []string{fmt.Sprintf("%d results", len(a.results))}
	if n := len(a.marked); n > 0 {
		parts = append(parts, fmt.Sprintf("%d selected", n))
	}
	if a.searching {
		parts = append(parts, "searching…")
	}

	line := strings.Join(parts, "  ·  ")
	line += "   tab scope · f2 time · f3 domain · space select · del delete"

	if a.err != nil {
		errLine := a.err.Error()
		if a.stale {
			errLine = "results may be stale: " + errLine
		}
		return lipgloss.JoinVertical(lipgloss.Left,
			a.styles.Error.Render(errLine),
			a.styles.StatusBar.Render(line))
	}
	return a.styles.StatusBar.Render(line)
}
