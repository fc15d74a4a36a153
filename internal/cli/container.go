package cli

import (
	"fmt"

	"github.com/Domenick1991/cargoeta/internal/bootstrap"
	"github.com/Domenick1991/cargoeta/internal/repository"
	"github.com/Domenick1991/cargoeta/internal/service/containers"
	"github.com/spf13/cobra"
)

// NewContainerCommand creates the container command
func NewContainerCommand(load ConfigLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "container <container-id>",
		Short: "Show a container's static attributes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			repo := repository.NewMemoryContainerRepository(bootstrap.Containers(cfg.Containers))
			container, err := containers.NewContainerService(repo).GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Container:        %s\n", container.ID)
			fmt.Fprintf(out, "Weight:           %g\n", container.Weight)
			fmt.Fprintf(out, "Port of origin:   %s\n", container.PortOfOrigin)
			fmt.Fprintf(out, "Dangerous goods:  %t\n", container.IsDangerousGoods)
			return nil
		},
	}
}
