package cmd

import (
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gravitrone/operadoras/internal/api"
	"github.com/gravitrone/operadoras/internal/dashboard"
)

// StatsCmd returns the `operadoras stats` command.
func StatsCmd(g *Globals) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate expense statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outFormat, err := parseFormat(output)
			if err != nil {
				return err
			}
			env, err := g.Resolve(cmd.ErrOrStderr(), false)
			if err != nil {
				return err
			}
			defer env.Close()

			// Both requests degrade instead of failing, so neither cancels the other.
			var (
				ops      []api.Operator
				stats    *api.Statistics
				listErr  error
				statsErr error
			)
			group, ctx := errgroup.WithContext(cmd.Context())
			group.Go(func() error {
				ops, listErr = env.Client.ListOperators(ctx, env.Config.ListLimit)
				return nil
			})
			group.Go(func() error {
				stats, statsErr = env.Client.GetStatistics(ctx)
				return nil
			})
			if err := group.Wait(); err != nil {
				return err
			}

			ctrl := dashboard.NewController(env.Client, dashboard.WithLogger(env.Logger.Logger))
			ctrl.ApplyList(ops, listErr)
			ctrl.ApplyStatistics(stats, statsErr)
			if statsErr != nil {
				if listErr != nil {
					warn(cmd.ErrOrStderr(), "%s", dashboard.ListFailedText)
				}
				warn(cmd.ErrOrStderr(), "statistics unavailable; computed locally")
			}

			out := cmd.OutOrStdout()
			if outFormat == formatTable {
				newTextRenderer(out, sectionStats).Render(ctrl.View())
				return nil
			}
			s, local := ctrl.Statistics()
			return writeStructured(out, outFormat, toStatsOutput(s, local))
		},
	}
	addOutputFlag(cmd, &output)
	return cmd
}
