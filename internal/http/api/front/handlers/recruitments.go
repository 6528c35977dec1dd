package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apihttp "github.com/lumen-studio/recruit-intake/internal/http"
	"github.com/lumen-studio/recruit-intake/internal/service"
)

// RecruitmentHandler serves public posting endpoints.
type RecruitmentHandler struct {
	recruitments *service.RecruitmentService
}

// NewRecruitmentHandler constructs a RecruitmentHandler.
func NewRecruitmentHandler(recruitments *service.RecruitmentService) *RecruitmentHandler {
	return &RecruitmentHandler{recruitments: recruitments}
}

// List returns active postings, newest first.
func (h *RecruitmentHandler) List(c *gin.Context) {
	rows, errList := h.recruitments.ListActive(c.Request.Context())
	if errList != nil {
		apihttp.WriteError(c, errList)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Get returns a posting by id. Inactive postings are still returned so that
// shared links keep resolving; intake rejects them separately.
func (h *RecruitmentHandler) Get(c *gin.Context) {
	id, ok := apihttp.ParseID(c, "id")
	if !ok {
		return
	}
	rec, errGet := h.recruitments.Get(c.Request.Context(), id)
	if errGet != nil {
		apihttp.WriteError(c, errGet)
		return
	}
	c.JSON(http.StatusOK, rec)
}
