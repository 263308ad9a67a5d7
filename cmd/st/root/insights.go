package root

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"studytime/internal/insight"
	"studytime/internal/ui"
	"studytime/pkg/apierrors"
)

func newInsightService(ctx context.Context) (*insight.Service, error) {
	gen, err := insight.NewGenerator(ctx, insight.Config{
		APIKey:   cfg.Insight.APIKey,
		Model:    cfg.Insight.Model,
		Endpoint: cfg.Insight.Endpoint,
	}, &http.Client{Timeout: cfg.Insight.Timeout})
	if err != nil {
		return nil, err
	}
	return insight.NewService(gen, cfg.Insight.Timeout), nil
}

func newInsightsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Ask the study coach for advice on your recent activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			insights, err := newInsightService(ctx)
			if err != nil {
				return err
			}
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			in := insight.Input{
				Subjects: svc.Subjects(),
				Tasks:    svc.Tasks(),
				Sessions: svc.Sessions(),
				Now:      svc.Clock().Now(),
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconBulb, "Insights"))
			text := insights.Insights(ctx, in)
			fmt.Fprintln(cmd.OutOrStdout(), apierrors.InsightText(text, errorsLang))
			return nil
		},
	}
}
