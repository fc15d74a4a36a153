package domain

type Container struct {
	ID               string
	Weight           float64
	PortOfOrigin     string
	IsDangerousGoods bool
}

// NewContainer returns a container with the hazardous-goods flag cleared.
func NewContainer(id string, weight float64, portOfOrigin string) Container {
	return Container{
		ID:           id,
		Weight:       weight,
		PortOfOrigin: portOfOrigin,
	}
}
