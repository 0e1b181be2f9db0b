package api

import (
	"fmt"
	"net/http"

	"github.com/Domenick1991/airportservice/internal/domain"
	"github.com/Domenick1991/airportservice/internal/service/resource"
	"github.com/gin-gonic/gin"
)

type TicketRenderer func(domain.Ticket) ([]byte, error)

type TicketHandler struct {
	*ResourceHandler[domain.Ticket, domain.TicketInput]
	service resource.UseCase[domain.Ticket, domain.TicketInput]
	render  TicketRenderer
}

func NewTicketHandler(service resource.UseCase[domain.Ticket, domain.TicketInput], render TicketRenderer) *TicketHandler {
	return &TicketHandler{
		ResourceHandler: newTicketResource(service),
		service:         service,
		render:          render,
	}
}

func (h *TicketHandler) Register(router *gin.RouterGroup) {
	h.ResourceHandler.Register(router)
	router.GET("/:id/pdf", h.pdf)
}

func (h *TicketHandler) pdf(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	ticket, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	data, err := h.render(*ticket)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="ticket-%d.pdf"`, ticket.ID))
	c.Data(http.StatusOK, "application/pdf", data)
}
