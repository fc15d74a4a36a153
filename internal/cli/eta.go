package cli

import (
	"fmt"
	"time"

	"github.com/Domenick1991/cargoeta/internal/bootstrap"
	"github.com/Domenick1991/cargoeta/internal/repository"
	"github.com/Domenick1991/cargoeta/internal/service/eta"
	"github.com/spf13/cobra"
)

// NewEtaCommand creates the eta command
func NewEtaCommand(load ConfigLoader) *cobra.Command {
	var (
		origin      string
		destination string
		departure   string
		days        int
	)

	cmd := &cobra.Command{
		Use:   "eta",
		Short: "Estimate arrival in the destination port's local time",
		Long: `Compute the arrival instant for a voyage and render it with the offset in
force at the destination when the ship arrives. Departure must be RFC 3339
with an explicit offset.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			zones := eta.NewZoneResolver()
			ports := bootstrap.Ports(cfg.Ports)
			if err := eta.CheckPorts(zones, ports); err != nil {
				return err
			}

			var estimator eta.VoyageDurationEstimator
			if cmd.Flags().Changed("days") {
				estimator, err = eta.NewConstantEstimator(days)
			} else {
				estimator, err = bootstrap.Estimator(cfg.Voyage)
			}
			if err != nil {
				return err
			}

			service := eta.NewEtaService(repository.NewMemoryPortRepository(ports), eta.NewCalculator(estimator, zones))
			estimate, err := service.EstimateArrival(cmd.Context(), eta.EstimateInput{
				OriginPortID:      origin,
				DestinationPortID: destination,
				Departure:         departure,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Origin:       %s (%s)\n", estimate.Origin.ID, estimate.Origin.Timezone)
			fmt.Fprintf(out, "Destination:  %s (%s)\n", estimate.Destination.ID, estimate.Destination.Timezone)
			fmt.Fprintf(out, "Departure:    %s\n", estimate.Departure.Format(time.RFC3339))
			fmt.Fprintf(out, "Voyage days:  %d\n", estimate.VoyageDays)
			fmt.Fprintf(out, "Arrival:      %s\n", estimate.Arrival.Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().StringVar(&origin, "origin", "", "Origin port ID")
	cmd.Flags().StringVar(&destination, "destination", "", "Destination port ID")
	cmd.Flags().StringVar(&departure, "departure", "", "Departure instant, RFC 3339 with offset")
	cmd.Flags().IntVar(&days, "days", 0, "Override voyage duration in days")
	_ = cmd.MarkFlagRequired("origin")
	_ = cmd.MarkFlagRequired("destination")
	_ = cmd.MarkFlagRequired("departure")

	return cmd
}
