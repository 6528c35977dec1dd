package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	apihttp "github.com/lumen-studio/recruit-intake/internal/http"
	"github.com/lumen-studio/recruit-intake/internal/service"
)

// ApplicationHandler accepts public applications.
type ApplicationHandler struct {
	applications *service.ApplicationService
}

// NewApplicationHandler constructs an ApplicationHandler.
func NewApplicationHandler(applications *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

// flexibleID accepts a JSON number or a numeric string. HTML forms commonly
// post select values as strings.
type flexibleID uint64

var errInvalidID = errors.New("invalid id")

func (f *flexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	raw := string(data)
	if strings.HasPrefix(raw, `"`) {
		var s string
		if errString := json.Unmarshal(data, &s); errString != nil {
			return errString
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			*f = 0
			return nil
		}
	}
	id, errParse := strconv.ParseUint(raw, 10, 63)
	if errParse != nil {
		return errInvalidID
	}
	*f = flexibleID(id)
	return nil
}

// submitApplicationRequest defines the request body for public applications.
type submitApplicationRequest struct {
	RecruitmentID flexibleID `json:"recruitmentId"`
	Email         string     `json:"email"`
	QQ            string     `json:"qq"`
	Bilibili      string     `json:"bilibili"`
	Portfolio     string     `json:"portfolio"`
}

// Submit records an application against an active posting.
func (h *ApplicationHandler) Submit(c *gin.Context) {
	var body submitApplicationRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	app, errSubmit := h.applications.Submit(c.Request.Context(), service.ApplicationInput{
		RecruitmentID: uint64(body.RecruitmentID),
		Email:         body.Email,
		QQ:            body.QQ,
		Bilibili:      body.Bilibili,
		Portfolio:     body.Portfolio,
	})
	if errSubmit != nil {
		apihttp.WriteError(c, errSubmit)
		return
	}
	c.JSON(http.StatusCreated, app)
}
