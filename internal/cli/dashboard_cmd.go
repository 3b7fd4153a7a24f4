package cli

import (
	"context"
	"errors"

	"github.com/alexanderramin/dmaicboard/internal/contract"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var errNotInteractive = errors.New("dashboard needs an interactive terminal; use 'dmaicboard report' instead")

func newDashboardCmd(app *App, flags *sourceFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Interactive tabbed dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return errNotInteractive
			}
			// Validate flags before taking over the screen.
			if _, err := flags.request(); err != nil {
				return err
			}
			m := newDashboardModel(func(ctx context.Context) (*contract.ReportResponse, error) {
				return generate(ctx, app, flags)
			})
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(cmd.Context()))
			_, err := p.Run()
			return err
		},
	}
}
