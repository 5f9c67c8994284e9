package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bitgeese/boludo-translator/internal/adapters/driving/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Open an interactive translation session",
	Long: `Starts a terminal chat where every message you send is translated
into Argentinian Spanish slang. Press Esc or Ctrl+C to leave.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := buildApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.ensureIndex(ctx); err != nil {
			return err
		}

		chat, err := tui.NewChat(ctx, a.translator, tui.Config{
			RequestsPerMinute: a.cfg.Chat.RequestsPerMinute,
			HistoryLimit:      a.cfg.Chat.HistoryLimit,
		})
		if err != nil {
			return err
		}

		program := tea.NewProgram(chat, tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("chat session: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
