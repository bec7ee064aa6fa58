package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/zatekoja/costnavigator/internal/bootstrap"
)

var askCmd = &cobra.Command{
	Use:   "ask QUESTION",
	Short: "Answer a natural-language question about hospital prices or ratings",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := strings.Join(args, " ")
		return withApp(cmd.Context(), func(app *bootstrap.App) (any, error) {
			return app.Ask.Ask(cmd.Context(), question)
		})
	},
}
