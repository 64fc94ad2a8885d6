package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/cosigner/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/cosigner/internal/application"
	appStore "github.com/MrJamesThe3rd/cosigner/internal/application/store"
	"github.com/MrJamesThe3rd/cosigner/internal/config"
	"github.com/MrJamesThe3rd/cosigner/internal/database"
	"github.com/MrJamesThe3rd/cosigner/internal/document"
	"github.com/MrJamesThe3rd/cosigner/internal/document/provider"
	docStore "github.com/MrJamesThe3rd/cosigner/internal/document/store"
	"github.com/MrJamesThe3rd/cosigner/internal/matching"
	matchingStore "github.com/MrJamesThe3rd/cosigner/internal/matching/store"
)

type model struct {
	appService      *application.Service
	matchingService *matching.Service
	reviewerID      string

	currentView View

	queueView view.QueueModel
}

type View int

const (
	ViewMenu  View = 0
	ViewQueue View = 1
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	appRepo := appStore.New(db)
	matchSvc := matching.NewService(matchingStore.New(db))
	docSvc := document.NewService(
		docStore.New(db),
		provider.New(cfg.Upload.BaseURL, cfg.Upload.Token, cfg.Upload.Timeout),
		application.NewDocumentGate(appRepo),
		document.Limits{IdentityMaxBytes: cfg.Upload.IdentityMaxBytes, IncomeMaxBytes: cfg.Upload.IncomeMaxBytes},
	)
	// the console never edits drafts; review start reads the applicant's current documents
	appSvc := application.NewService(appRepo, nil, docSvc, matchSvc)

	reviewerID := "console:" + os.Getenv("USER")

	return model{
		appService:      appSvc,
		matchingService: matchSvc,
		reviewerID:      reviewerID,
		currentView:     ViewMenu,
		queueView:       view.NewQueueModel(appSvc, matchSvc, reviewerID),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewQueue
				m.queueView = view.NewQueueModel(m.appService, m.matchingService, m.reviewerID)

				return m, m.queueView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	if m.currentView == ViewQueue {
		var newModel tea.Model
		newModel, cmd = m.queueView.Update(msg)
		m.queueView = newModel.(view.QueueModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Cosigner Review Console\n\n" +
				"1. Application Queue\n\n" +
				"q. Quit",
		)
	case ViewQueue:
		return m.queueView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
