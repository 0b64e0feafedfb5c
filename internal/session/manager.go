// internal/session/manager.go
package session

import (
	"context"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"github.com/calyptra/storesuite/internal/config"
)

// Manager owns the lifecycle of a single browser process. Sessions (tabs)
// are derived from it one per scenario scope and handed back through
// Close; Shutdown waits for them before terminating the process.
type Manager struct {
	logger *zap.Logger
	cfg    *config.Config

	// allocatorCtx manages the browser process. All session contexts are
	// derived from this.
	allocatorCtx    context.Context
	allocatorCancel context.CancelFunc

	// wg tracks live sessions for a graceful shutdown.
	wg sync.WaitGroup
}

// NewManager launches the browser process and verifies it responds.
// On any failure it returns a *StartupError and no Manager.
func NewManager(ctx context.Context, logger *zap.Logger, cfg *config.Config) (*Manager, error) {
	m := &Manager{
		logger: logger.Named("session_manager"),
		cfg:    cfg,
	}

	m.logger.Info("Initializing browser allocator",
		zap.Bool("headless", cfg.Browser.Headless || cfg.Browser.CI),
		zap.Bool("ci", cfg.Browser.CI),
	)

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, m.buildAllocatorOptions()...)
	m.allocatorCtx = allocCtx
	m.allocatorCancel = cancel

	// Verify the browser starts and responds before handing the manager out.
	probeCtx, cancelProbe := context.WithTimeout(allocCtx, cfg.Waits.Startup)
	probeCtx, cancelProbeTab := chromedp.NewContext(probeCtx)
	defer cancelProbeTab()
	defer cancelProbe()

	if err := chromedp.Run(probeCtx, chromedp.Navigate("about:blank")); err != nil {
		m.allocatorCancel()
		return nil, &StartupError{Stage: "launch", Err: err}
	}

	m.logger.Info("Browser launched and responsive")
	return m, nil
}

// buildAllocatorOptions assembles launch flags from configuration and the
// execution environment. CI runners get headless mode, sandbox-off flags, a
// fixed window size, and a throwaway profile directory; local runs honor
// the configured binary path and open a maximized window when not headless.
func (m *Manager) buildAllocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)

	headless := m.cfg.Browser.Headless || m.cfg.Browser.CI
	opts = append(opts,
		chromedp.Flag("headless", headless),
		chromedp.Flag("disable-gpu", headless),
		chromedp.Flag("disable-extensions", true),
	)

	if m.cfg.Browser.CI {
		tempProfile, err := os.MkdirTemp("", "storesuite-profile-")
		if err == nil {
			opts = append(opts, chromedp.Flag("user-data-dir", tempProfile))
		} else {
			m.logger.Warn("Could not create throwaway profile directory", zap.Error(err))
		}
		opts = append(opts,
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.WindowSize(m.cfg.Browser.WindowWidth, m.cfg.Browser.WindowHeight),
		)
	} else {
		if m.cfg.Browser.ExecPath != "" {
			opts = append(opts, chromedp.ExecPath(m.cfg.Browser.ExecPath))
		}
		if !headless {
			opts = append(opts, chromedp.Flag("start-maximized", true))
		} else {
			opts = append(opts, chromedp.WindowSize(m.cfg.Browser.WindowWidth, m.cfg.Browser.WindowHeight))
		}
	}

	// Extra arguments from configuration, "--flag" or "--flag=value".
	for _, arg := range m.cfg.Browser.Args {
		parts := strings.SplitN(arg, "=", 2)
		name := strings.TrimPrefix(parts[0], "--")
		if len(parts) == 2 {
			opts = append(opts, chromedp.Flag(name, parts[1]))
		} else {
			opts = append(opts, chromedp.Flag(name, true))
		}
	}

	return opts
}

// Acquire creates a new isolated session (tab). The caller owns the session
// exclusively and must Close it on every exit path.
func (m *Manager) Acquire(ctx context.Context) (*Session, error) {
	tabCtx, tabCancel := chromedp.NewContext(m.allocatorCtx)

	// Confirm the tab is usable before handing it out.
	probeCtx, cancelProbe := context.WithTimeout(tabCtx, m.cfg.Waits.Startup)
	err := chromedp.Run(probeCtx, chromedp.Navigate("about:blank"))
	cancelProbe()
	if err != nil {
		tabCancel()
		return nil, &StartupError{Stage: "session", Err: err}
	}

	m.wg.Add(1)
	s := newSession(tabCtx, tabCancel, m.logger, m.cfg.Waits)
	s.onClose = m.wg.Done
	s.logger.Info("Session acquired")
	return s, nil
}

// Release closes the session. It is an alias for Session.Close that keeps
// the fixture's acquire/release contract in one place.
func (m *Manager) Release(ctx context.Context, s *Session) error {
	if s == nil {
		return nil
	}
	return s.Close(ctx)
}

// Shutdown waits for live sessions to finish, respecting the caller's
// deadline, then terminates the browser process.
func (m *Manager) Shutdown(ctx context.Context) error {
	m.logger.Info("Shutdown initiated, waiting for live sessions")

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		m.logger.Info("All sessions completed")
	case <-ctx.Done():
		m.logger.Warn("Shutdown deadline exceeded, forcing browser termination", zap.Error(ctx.Err()))
	}

	if m.allocatorCancel != nil {
		m.allocatorCancel()
		select {
		case <-m.allocatorCtx.Done():
		case <-time.After(10 * time.Second):
			m.logger.Warn("Browser process did not confirm termination")
		}
	}
	return nil
}
