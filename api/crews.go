package api

import (
	"context"
	"io"
	"net/http"

	"github.com/Domenick1991/airportservice/internal/domain"
	"github.com/Domenick1991/airportservice/internal/service/resource"
	"github.com/Domenick1991/airportservice/internal/views"
	"github.com/gin-gonic/gin"
)

type CrewUseCase interface {
	resource.UseCase[domain.Crew, domain.CrewInput]
	UploadPicture(ctx context.Context, id int64, filename string, r io.Reader) (*domain.Crew, error)
}

type CrewHandler struct {
	*ResourceHandler[domain.Crew, domain.CrewInput]
	service  CrewUseCase
	mediaURL string
}

func NewCrewHandler(service CrewUseCase, mediaURL string) *CrewHandler {
	return &CrewHandler{
		ResourceHandler: newCrewResource(service, mediaURL),
		service:         service,
		mediaURL:        mediaURL,
	}
}

func (h *CrewHandler) Register(router *gin.RouterGroup) {
	h.ResourceHandler.Register(router)
	router.POST("/:id/upload-image", h.uploadImage)
}

func (h *CrewHandler) uploadImage(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("picture_member")
	if err != nil {
		RespondDomainError(c, domain.ValidationError{
			Fields: map[string]string{"picture_member": "No file was submitted."},
			Err:    err,
		})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	defer file.Close()

	crew, err := h.service.UploadPicture(c.Request.Context(), id, fileHeader.Filename, file)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, views.CrewListView(*crew, h.mediaURL))
}
