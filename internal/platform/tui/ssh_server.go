package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/poemwalk/internal/audio"
	"github.com/vovakirdan/poemwalk/internal/core"
	"github.com/vovakirdan/poemwalk/internal/registry"
	"github.com/vovakirdan/poemwalk/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.poemwalk/host_key.
	HostKeyPath string

	// DBPath is the path to the journal database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the simulation rate for every session.
	TickRate int
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.poemwalk/journal.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    core.ReferenceTickRate,
	}
}

// SSHServer wraps a Wish SSH server for remote walks.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "poemwalk-ssh",
	})

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open journal database", "error", err)
		// Continue without storage
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".poemwalk", "host_key")
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		wish.Fatalln(sshSession, "poemwalk needs a terminal; connect with ssh -t")
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}

	// The remote player has no speaker on this machine.
	session := Session{
		Store:  s.store,
		Audio:  audio.NewSilentPlayer(),
		Player: sshSession.User(),
		Logger: s.logger,
	}

	model := NewSessionModel(session, cfg, bubbletea.MakeRenderer(sshSession))

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs when a walker connects and how long they stayed.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		logger := s.logger.With(
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		pty, _, _ := sshSession.Pty()
		logger.Info("walker connected", "term", pty.Term)

		start := time.Now()
		next(sshSession)
		logger.Info("walker left", "stayed", time.Since(start).Round(time.Second))
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sessionScreen is what a SessionModel is showing.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenWalk
	screenJournal
)

// SessionModel runs the full flow in one program: menu -> walk -> menu,
// with the journal one key away. Used for SSH sessions.
type SessionModel struct {
	session  Session
	config   core.RuntimeConfig
	renderer *lipgloss.Renderer
	screen   sessionScreen
	menu     MenuModel
	walk     *Model
	journal  JournalModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(session Session, cfg core.RuntimeConfig, r *lipgloss.Renderer) SessionModel {
	if session.Cells == nil {
		session.Cells = NewCellRenderer(r)
	}
	return SessionModel{
		session:  session,
		config:   cfg,
		renderer: r,
		menu:     NewMenuModel(session.Store, cfg).WithRenderer(r),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenWalk:
		return m.updateWalk(msg)
	case screenJournal:
		return m.updateJournal(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsJournal() {
		// exports would land on the server, not with the player
		m.journal = NewJournalModel(m.session.Store, m.config.ScreenW, m.config.ScreenH, "").
			WithRenderer(m.renderer).
			WithExportDir("")
		m.screen = screenJournal
		return m, m.journal.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		game, err := registry.Create(selected.VariantID)
		if err != nil {
			// Shouldn't happen since menu only shows registered variants
			m.menu = NewMenuModel(m.session.Store, m.config).WithRenderer(m.renderer)
			return m, nil
		}

		m.config = m.menu.Config()
		m.config.Seed = time.Now().UnixNano()
		walkModel := NewModel(game, m.session, m.config)
		m.walk = &walkModel
		m.screen = screenWalk
		return m, m.walk.Init()
	}

	return m, cmd
}

// updateWalk handles updates when a walk is running.
func (m SessionModel) updateWalk(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.walk.Update(msg)
	if walkModel, ok := newModel.(Model); ok {
		m.walk = &walkModel
	}

	if m.walk.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.walk.BackToMenu() {
		m.walk = nil
		m.screen = screenMenu
		m.menu = NewMenuModel(m.session.Store, m.config).WithRenderer(m.renderer)
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateJournal handles updates when the journal is open.
func (m SessionModel) updateJournal(msg tea.Msg) (tea.Model, tea.Cmd) {
	newJournal, cmd := m.journal.Update(msg)
	if journalModel, ok := newJournal.(JournalModel); ok {
		m.journal = journalModel
	}

	if m.journal.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.journal.IsGoingBack() {
		m.screen = screenMenu
		m.menu = NewMenuModel(m.session.Store, m.config).WithRenderer(m.renderer)
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenWalk:
		if m.walk != nil {
			return m.walk.View()
		}
	case screenJournal:
		return m.journal.View()
	}
	return m.menu.View()
}
