package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apihttp "github.com/lumen-studio/recruit-intake/internal/http"
	"github.com/lumen-studio/recruit-intake/internal/service"
)

// RecruitmentHandler manages recruitment postings.
type RecruitmentHandler struct {
	recruitments *service.RecruitmentService
}

// NewRecruitmentHandler constructs a RecruitmentHandler.
func NewRecruitmentHandler(recruitments *service.RecruitmentService) *RecruitmentHandler {
	return &RecruitmentHandler{recruitments: recruitments}
}

// createRecruitmentRequest defines the request body for recruitment creation.
type createRecruitmentRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	IsActive    *bool  `json:"isActive"`
}

// updateRecruitmentRequest defines a partial update; absent fields are kept.
type updateRecruitmentRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

// List returns every posting with its application count.
func (h *RecruitmentHandler) List(c *gin.Context) {
	rows, errList := h.recruitments.ListAll(c.Request.Context())
	if errList != nil {
		apihttp.WriteError(c, errList)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Get returns a single posting.
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

// Create adds a posting.
func (h *RecruitmentHandler) Create(c *gin.Context) {
	var body createRecruitmentRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	rec, errCreate := h.recruitments.Create(c.Request.Context(), service.RecruitmentInput{
		Title:       body.Title,
		Description: body.Description,
		IsActive:    body.IsActive,
	})
	if errCreate != nil {
		apihttp.WriteError(c, errCreate)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// Update applies a partial update to a posting.
func (h *RecruitmentHandler) Update(c *gin.Context) {
	id, ok := apihttp.ParseID(c, "id")
	if !ok {
		return
	}
	var body updateRecruitmentRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	rec, errUpdate := h.recruitments.Update(c.Request.Context(), id, service.RecruitmentPatch{
		Title:       body.Title,
		Description: body.Description,
		IsActive:    body.IsActive,
	})
	if errUpdate != nil {
		apihttp.WriteError(c, errUpdate)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// Delete removes a posting and its applications.
func (h *RecruitmentHandler) Delete(c *gin.Context) {
	id, ok := apihttp.ParseID(c, "id")
	if !ok {
		return
	}
	if errDelete := h.recruitments.Delete(c.Request.Context(), id); errDelete != nil {
		apihttp.WriteError(c, errDelete)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
