// -- cmd/smoke.go --
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/calyptra/storesuite/internal/config"
	"github.com/calyptra/storesuite/internal/observability"
	"github.com/calyptra/storesuite/internal/pages"
	"github.com/calyptra/storesuite/internal/session"
)

// newSmokeCmd builds the smoke command: launch a browser, log in to the
// admin panel, verify the dashboard, log out again.
func newSmokeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "smoke",
		Short: "Log in and out of the target admin panel once.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := observability.GetLogger()
			cfg := config.FromContext(ctx)

			mgr, err := session.NewManager(ctx, logger, cfg)
			if err != nil {
				return err
			}
			defer func() {
				if err := mgr.Shutdown(ctx); err != nil {
					logger.Warn("Browser shutdown incomplete", zap.Error(err))
				}
			}()

			sess, err := mgr.Acquire(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = mgr.Release(ctx, sess) }()

			login := pages.NewLoginPage(sess, logger, cfg.Target.BaseURL)
			if err := login.Open(ctx); err != nil {
				return err
			}
			if err := login.Login(ctx, cfg.Target.AdminEmail, cfg.Target.AdminPassword); err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			ok, err := login.IsLoggedIn(ctx)
			if err != nil {
				return err
			}
			logger.Info("Login verified", zap.Bool("dashboard_visible", ok))

			if err := login.Logout(ctx); err != nil {
				return fmt.Errorf("logout failed: %w", err)
			}
			logger.Info("Smoke flow completed", zap.String("target", cfg.Target.BaseURL))
			return nil
		},
	}
}
