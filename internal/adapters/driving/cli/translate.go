package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bitgeese/boludo-translator/internal/core/domain"
)

var translateCmd = &cobra.Command{
	Use:   "translate [text...]",
	Short: "Translate text into Argentinian Spanish slang",
	Long: `Translates the given text into casual porteño Spanish, grounding the
result on retrieved reference expressions from the phrasebook.

The index is built on first use when the configured backend is empty.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		input := strings.Join(args, " ")

		a, err := buildApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.ensureIndex(ctx); err != nil {
			return err
		}

		result, err := a.translator.Translate(ctx, domain.TranslationRequest{Text: input})
		if err != nil {
			return err
		}

		switch result.Outcome {
		case domain.OutcomeEmptyInput:
			return fmt.Errorf("nothing to translate")
		default:
			cmd.Println(result.Output)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(translateCmd)
}
