package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/Domenick1991/cargoeta/internal/domain"
	"github.com/Domenick1991/cargoeta/internal/service/containers"
	"github.com/gin-gonic/gin"
)

type ContainerHandler struct {
	service containers.ContainerUseCase
}

type containerResponse struct {
	ContainerID      string  `json:"container_id"`
	Weight           float64 `json:"weight"`
	PortOfOrigin     string  `json:"port_of_origin"`
	IsDangerousGoods bool    `json:"is_dangerous_goods"`
}

func NewContainerHandler(service containers.ContainerUseCase) *ContainerHandler {
	return &ContainerHandler{service: service}
}

func (h *ContainerHandler) Register(router *gin.RouterGroup) {
	router.GET("/:container_id", h.get)
}

func (h *ContainerHandler) get(c *gin.Context) {
	id := c.Param("container_id")
	container, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrContainerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Container not found"})
			return
		}
		log.Printf("container lookup failed id=%s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, containerResponse{
		ContainerID:      container.ID,
		Weight:           container.Weight,
		PortOfOrigin:     container.PortOfOrigin,
		IsDangerousGoods: container.IsDangerousGoods,
	})
}
