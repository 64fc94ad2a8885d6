package view

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/cosigner/internal/application"
	"github.com/MrJamesThe3rd/cosigner/internal/matching"
)

type Applications interface {
	List(ctx context.Context, filter application.ListFilter) ([]*application.Application, error)
	Get(ctx context.Context, id uuid.UUID) (*application.Application, error)
	Transition(ctx context.Context, id uuid.UUID, params application.TransitionParams) (*application.Application, error)
}

type Recommendations interface {
	Record(ctx context.Context, applicationID uuid.UUID, params matching.RecordParams) (*matching.Recommendation, error)
	List(ctx context.Context, applicationID uuid.UUID) ([]*matching.Recommendation, error)
}

type queueState int

const (
	queueStateBrowse queueState = iota
	queueStateTransition
	queueStateRecommend
)

// decision holds the form bindings. It lives on the heap so huh writes survive model copies.
type decision struct {
	to           application.Status
	notes        string
	cosignerName string
	outcome      string
	details      string
}

type QueueModel struct {
	CommonModel
	apps       Applications
	recs       Recommendations
	reviewerID string

	state queueState
	table table.Model
	list  []*application.Application
	form  *huh.Form
	data  *decision

	// detail panel for the selected row
	selected *application.Application
	history  []*matching.Recommendation

	statusFilterIdx int
	filter          application.ListFilter

	loading bool
	err     error
	status  string
}

func NewQueueModel(apps Applications, recs Recommendations, reviewerID string) QueueModel {
	columns := []table.Column{
		{Title: "ID", Width: 10},
		{Title: "Applicant", Width: 24},
		{Title: "Status", Width: 22},
		{Title: "Payment", Width: 10},
		{Title: "Submitted", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return QueueModel{
		apps:       apps,
		recs:       recs,
		reviewerID: reviewerID,
		table:      t,
		data:       &decision{},
	}
}

func (m QueueModel) Title() string { return "Application Queue" }
func (m QueueModel) ShortHelp() string {
	if m.state != queueStateBrowse {
		return "Navigate form | Esc: cancel"
	}
	return "Esc: back | enter: details | t: move status | m: recommend | s: status filter | r: refresh"
}

func (m QueueModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m QueueModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadQueueMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.list = msg.apps
		m.refreshTable()
		return m, nil

	case detailMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error loading application: %v", msg.err)
			return m, nil
		}
		m.selected = msg.app
		m.history = msg.recs
		return m, nil

	case decisionMsg:
		m.state = queueStateBrowse
		m.form = nil
		m.table.Focus()
		if msg.err != nil {
			m.status = fmt.Sprintf("Not saved: %v", msg.err)
		} else {
			m.status = msg.done
		}
		return m, tea.Batch(m.loadCmd(), m.detailCmd(msg.id))

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case queueStateBrowse:
		return m.updateBrowse(msg)
	case queueStateTransition, queueStateRecommend:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m QueueModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "s":
			m.statusFilterIdx = (m.statusFilterIdx + 1) % (len(application.Statuses) + 1)
			m.applyFilter()
			return m, m.loadCmd()
		case "enter":
			if app := m.cursorApp(); app != nil {
				return m, m.detailCmd(app.ID)
			}
			return m, nil
		case "t":
			return m.enterTransition()
		case "m":
			return m.enterRecommend()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m QueueModel) cursorApp() *application.Application {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.list) {
		return nil
	}

	return m.list[idx]
}

func (m QueueModel) enterTransition() (tea.Model, tea.Cmd) {
	app := m.cursorApp()
	if app == nil {
		return m, nil
	}

	next := application.NextStatuses(app.Status)
	if len(next) == 0 {
		m.status = fmt.Sprintf("%s is final", app.Status)
		return m, nil
	}

	m.data = &decision{to: next[0]}
	if app.Notes != nil {
		m.data.notes = *app.Notes
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[application.Status]().
				Key("to").
				Title("Move to").
				Options(huh.NewOptions(next...)...).
				Value(&m.data.to),

			huh.NewText().
				Key("notes").
				Title("Notes").
				Value(&m.data.notes),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = queueStateTransition
	m.table.Blur()
	return m, m.form.Init()
}

func (m QueueModel) enterRecommend() (tea.Model, tea.Cmd) {
	if m.cursorApp() == nil {
		return m, nil
	}

	m.data = &decision{}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("cosigner").
				Title("Cosigner").
				Value(&m.data.cosignerName),

			huh.NewInput().
				Key("outcome").
				Title("Outcome").
				Placeholder("approved, declined, needs more income...").
				Value(&m.data.outcome).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("outcome cannot be empty")
					}
					return nil
				}),

			huh.NewText().
				Key("details").
				Title("Details").
				Value(&m.data.details),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = queueStateRecommend
	m.table.Blur()
	return m, m.form.Init()
}

func (m QueueModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = queueStateBrowse
			m.form = nil
			m.table.Focus()
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if m.state == queueStateTransition {
		return m, m.transitionCmd()
	}

	return m, m.recommendCmd()
}

func (m QueueModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading applications...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	header := fmt.Sprintf("Filter: [s] Status: %s", activeStyle(m.filterLabel()))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	var panel string

	switch {
	case m.state != queueStateBrowse && m.form != nil:
		title := "Move Application"
		if m.state == queueStateRecommend {
			title = "Record Recommendation"
		}

		panel = fmt.Sprintf("%s\n\n%s", title, m.form.View())
	case m.selected != nil:
		panel = m.detailView()
	}

	if panel != "" {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(panel))
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m QueueModel) detailView() string {
	app := m.selected

	var b strings.Builder

	fmt.Fprintf(&b, "%s %s <%s>\n", app.FirstName, app.LastName, app.Email)
	fmt.Fprintf(&b, "Status:  %s (v%d)\n", app.Status, app.Version)
	fmt.Fprintf(&b, "Payment: %s\n", app.PaymentStatus)
	fmt.Fprintf(&b, "Work:    %s\n", app.Employment.Status)

	if app.Rental != nil {
		fmt.Fprintf(&b, "Rental:  %s from %s\n", app.Rental.City, app.Rental.MoveInDate)
	}

	if missing := app.MissingDocuments(); len(missing) > 0 {
		fmt.Fprintf(&b, "Missing: %s\n", strings.Join(missing, ", "))
	} else {
		b.WriteString("Documents complete\n")
	}

	if app.Notes != nil && *app.Notes != "" {
		fmt.Fprintf(&b, "\nNotes: %s\n", *app.Notes)
	}

	if len(m.history) > 0 {
		b.WriteString("\nRecommendations:\n")
		for _, r := range m.history {
			fmt.Fprintf(&b, "  %s  %s: %s\n", FormatDate(r.CreatedAt), r.CosignerName, r.Outcome)
		}
	}

	return b.String()
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func (m QueueModel) filterLabel() string {
	if m.statusFilterIdx == 0 {
		return "All"
	}

	return string(application.Statuses[m.statusFilterIdx-1])
}

func (m *QueueModel) applyFilter() {
	if m.statusFilterIdx == 0 {
		m.filter.Status = nil
		return
	}

	status := application.Statuses[m.statusFilterIdx-1]
	m.filter.Status = &status
}

func (m *QueueModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.list))
	for _, app := range m.list {
		rows = append(rows, table.Row{
			ShortID(app.ID),
			strings.TrimSpace(app.FirstName + " " + app.LastName),
			string(app.Status),
			string(app.PaymentStatus),
			FormatDate(app.CreatedAt),
		})
	}
	m.table.SetRows(rows)
}

// Messages

type loadQueueMsg struct {
	apps []*application.Application
	err  error
}

func (m QueueModel) loadCmd() tea.Cmd {
	filter := m.filter

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		apps, err := m.apps.List(ctx, filter)
		return loadQueueMsg{apps: apps, err: err}
	}
}

type detailMsg struct {
	app  *application.Application
	recs []*matching.Recommendation
	err  error
}

func (m QueueModel) detailCmd(id uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		app, err := m.apps.Get(ctx, id)
		if err != nil {
			return detailMsg{err: err}
		}

		recs, err := m.recs.List(ctx, id)
		return detailMsg{app: app, recs: recs, err: err}
	}
}

type decisionMsg struct {
	id   uuid.UUID
	done string
	err  error
}

func (m QueueModel) transitionCmd() tea.Cmd {
	app := m.cursorApp()
	if app == nil {
		return nil
	}

	expectedVersion := app.Version
	params := application.TransitionParams{
		To:              m.data.to,
		ExpectedVersion: &expectedVersion,
		ReviewerID:      m.reviewerID,
	}

	if notes := strings.TrimSpace(m.data.notes); notes != "" {
		params.Notes = &notes
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		updated, err := m.apps.Transition(ctx, app.ID, params)
		if err != nil {
			return decisionMsg{id: app.ID, err: err}
		}

		return decisionMsg{id: app.ID, done: fmt.Sprintf("%s moved to %s", ShortID(app.ID), updated.Status)}
	}
}

func (m QueueModel) recommendCmd() tea.Cmd {
	app := m.cursorApp()
	if app == nil {
		return nil
	}

	params := matching.RecordParams{
		CosignerName: m.data.cosignerName,
		Outcome:      m.data.outcome,
		Details:      m.data.details,
		RecordedBy:   m.reviewerID,
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if _, err := m.recs.Record(ctx, app.ID, params); err != nil {
			return decisionMsg{id: app.ID, err: err}
		}

		return decisionMsg{id: app.ID, done: "Recommendation recorded for " + ShortID(app.ID)}
	}
}
