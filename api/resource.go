package api

import (
	"net/http"
	"strconv"

	"github.com/Domenick1991/airportservice/internal/domain"
	"github.com/Domenick1991/airportservice/internal/service/resource"
	"github.com/Domenick1991/airportservice/internal/views"
	"github.com/gin-gonic/gin"
)

// ResourceHandler serves the CRUD surface of one entity type.
// Reads and writes answer with the list shape, except retrieve which uses the detail shape.
type ResourceHandler[E domain.Entity, In any] struct {
	name    string
	service resource.UseCase[E, In]
	list    func(E) any
	detail  func(E) any

	// toInput turns a stored entity back into a full input so PATCH can merge onto it.
	toInput func(E) In

	// prepareCreate fills server-side defaults for new rows before validation.
	prepareCreate func(c *gin.Context, in *In)
}

func (h *ResourceHandler[E, In]) Register(router *gin.RouterGroup) {
	router.GET("", h.listAll)
	router.POST("", h.create)
	router.GET("/:id", h.get)
	router.PUT("/:id", h.update)
	router.PATCH("/:id", h.patch)
	router.DELETE("/:id", h.remove)
}

func (h *ResourceHandler[E, In]) listAll(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, views.Many(items, h.list))
}

func (h *ResourceHandler[E, In]) get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	item, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.detail(*item))
}

func (h *ResourceHandler[E, In]) create(c *gin.Context) {
	var in In
	if err := h.bind(c, &in, h.prepareCreate); err != nil {
		RespondDomainError(c, err)
		return
	}
	created, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.list(*created))
}

func (h *ResourceHandler[E, In]) update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var in In
	if err := h.bind(c, &in, nil); err != nil {
		RespondDomainError(c, err)
		return
	}
	h.save(c, id, in)
}

func (h *ResourceHandler[E, In]) patch(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	current, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	in := h.toInput(*current)
	if err := h.bind(c, &in, nil); err != nil {
		RespondDomainError(c, err)
		return
	}
	h.save(c, id, in)
}

func (h *ResourceHandler[E, In]) save(c *gin.Context, id int64, in In) {
	updated, err := h.service.Update(c.Request.Context(), id, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.list(*updated))
}

func (h *ResourceHandler[E, In]) remove(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ResourceHandler[E, In]) bind(c *gin.Context, in *In, prepare func(*gin.Context, *In)) error {
	if err := bindJSON(c, in); err != nil {
		return err
	}
	if prepare != nil {
		prepare(c, in)
	}
	return validateInput(in)
}

// parseID answers 404 for ids that cannot name a row.
func (h *ResourceHandler[E, In]) parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondDomainError(c, domain.NotFoundError{Resource: h.name})
		return 0, false
	}
	return id, true
}

func anyView[E any, V any](view func(E) V) func(E) any {
	return func(e E) any { return view(e) }
}
