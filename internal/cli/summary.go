package cli

import (
	"fmt"
	"text/tabwriter"

	"maturity-tracker-backend/internal/repository"
	"maturity-tracker-backend/internal/service"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// SummaryCmd returns the summary command
func SummaryCmd(env *Env) *cobra.Command {
	var by string

	cmd := &cobra.Command{
		Use:   "summary [campaign-id]",
		Short: "Print the implementation roll-up of a campaign",
		Long: `Print implementation percentage and maturity level per service, team or category.

Examples:
  maturityctl summary 3f2c...
  maturityctl summary 3f2c... --by team`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			campaignID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid campaign ID %q", args[0])
			}

			db, err := env.Open(env.Config, false)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer closeDB(db)

			summaries := service.NewSummaryService(
				repository.NewSummaryRepository(db),
				repository.NewCampaignRepository(db),
				repository.NewMaturityModelRepository(db),
			)

			var items []service.SummaryItem
			switch by {
			case "service":
				items, err = summaries.SummaryByService(cmd.Context(), campaignID)
			case "team":
				items, err = summaries.SummaryByTeam(cmd.Context(), campaignID)
			case "category":
				items, err = summaries.SummaryByCategory(cmd.Context(), campaignID)
			default:
				return fmt.Errorf("invalid --by %q (must be service, team or category)", by)
			}
			if err != nil {
				return err
			}

			if len(items) == 0 {
				if by == "category" {
					fmt.Fprintln(env.Out, "No evaluations to summarise.")
				} else {
					fmt.Fprintln(env.Out, "No participants enrolled.")
				}
				return nil
			}

			w := tabwriter.NewWriter(env.Out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s\tIMPLEMENTED\tPERCENT\tLEVEL\n", headerFor(by))
			for _, item := range items {
				fmt.Fprintf(w, "%s\t%d/%d\t%s\t%s\n",
					item.Name, item.ImplementedCount, item.TotalCount,
					formatPercentage(item.ImplementationPercentage), formatLevel(item.MaturityLevel))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&by, "by", "service", "Group by service, team or category")

	return cmd
}

func headerFor(by string) string {
	switch by {
	case "team":
		return "TEAM"
	case "category":
		return "CATEGORY"
	default:
		return "SERVICE"
	}
}

func formatPercentage(pct *float64) string {
	if pct == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f%%", *pct)
}

func formatLevel(level *int) string {
	if level == nil {
		return color.New(color.FgHiBlack).Sprint("-")
	}
	text := fmt.Sprintf("L%d", *level)
	switch {
	case *level >= 4:
		return color.New(color.FgHiGreen).Sprint(text)
	case *level >= 2:
		return color.New(color.FgYellow).Sprint(text)
	default:
		return color.New(color.FgRed).Sprint(text)
	}
}
