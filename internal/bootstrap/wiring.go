package bootstrap

import (
	"github.com/Domenick1991/cargoeta/config"
	"github.com/Domenick1991/cargoeta/internal/domain"
	"github.com/Domenick1991/cargoeta/internal/service/eta"
)

func Ports(cfg []config.PortConfig) []domain.Port {
	ports := make([]domain.Port, 0, len(cfg))
	for _, p := range cfg {
		ports = append(ports, domain.Port{ID: p.ID, Timezone: p.Timezone})
	}
	return ports
}

func Containers(seeds []config.ContainerSeed) []domain.Container {
	containers := make([]domain.Container, 0, len(seeds))
	for _, s := range seeds {
		c := domain.NewContainer(s.ID, s.Weight, s.PortOfOrigin)
		c.IsDangerousGoods = s.IsDangerousGoods
		containers = append(containers, c)
	}
	return containers
}

// Estimator builds the voyage estimator. Without routes every pair takes
// default_days; with routes the table answers first and default_days backs
// it unless strict is set.
func Estimator(cfg config.VoyageConfig) (eta.VoyageDurationEstimator, error) {
	constant, err := eta.NewConstantEstimator(cfg.DefaultDays)
	if err != nil {
		return nil, err
	}
	if len(cfg.Routes) == 0 {
		return constant, nil
	}

	routes := make([]eta.Route, 0, len(cfg.Routes))
	for _, r := range cfg.Routes {
		routes = append(routes, eta.Route{Origin: r.Origin, Destination: r.Destination, Days: r.Days})
	}
	var fallback eta.VoyageDurationEstimator
	if !cfg.Strict {
		fallback = constant
	}
	table, err := eta.NewRouteTableEstimator(routes, fallback)
	if err != nil {
		return nil, err
	}
	return table, nil
}
