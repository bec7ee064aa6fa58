package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zatekoja/costnavigator/internal/application/services"
	"github.com/zatekoja/costnavigator/internal/bootstrap"
	"github.com/zatekoja/costnavigator/internal/domain/entities"
)

var (
	drg      string
	zip      string
	radiusKm float64
	limit    int
	sortBy   string
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List providers billing for a DRG within a radius of a ZIP code",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		params := services.ProviderSearchParams{
			DRG:  drg,
			Zip:  zip,
			Sort: sortBy,
		}
		// unset flags fall back to the configured defaults
		if cmd.Flags().Changed("radius-km") {
			params.RadiusKm = &radiusKm
		}
		if cmd.Flags().Changed("limit") {
			params.Limit = &limit
		}

		return withApp(cmd.Context(), func(app *bootstrap.App) (any, error) {
			results, err := app.Search.SearchProviders(cmd.Context(), params)
			if results == nil {
				results = []entities.ProviderResult{}
			}
			return results, err
		})
	},
}

func init() {
	providersCmd.Flags().StringVar(&drg, "drg", "", "DRG code or description text (required)")
	providersCmd.Flags().StringVar(&zip, "zip", "", "origin ZIP code (required)")
	providersCmd.Flags().Float64Var(&radiusKm, "radius-km", 40, "search radius in kilometres")
	providersCmd.Flags().IntVar(&limit, "limit", 20, "maximum number of results")
	providersCmd.Flags().StringVar(&sortBy, "sort", string(entities.SortByCost), "cost or rating")
	_ = providersCmd.MarkFlagRequired("drg")
	_ = providersCmd.MarkFlagRequired("zip")
}
