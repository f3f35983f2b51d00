package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/job-portal-api/internal/application"
	"github.com/oksasatya/job-portal-api/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ApplicationHandler struct {
	Svc    *application.ApplicationService
	Logger *logrus.Logger
}

func NewApplicationHandler(svc *application.ApplicationService, logger *logrus.Logger) *ApplicationHandler {
	return &ApplicationHandler{Svc: svc, Logger: logger}
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required,appstatus"`
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	a, err := h.Svc.Apply(c.Request.Context(), callerFrom(c), c.Param("jobId"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, toApplicationView(a), "job applied successfully", nil)
}

func (h *ApplicationHandler) ListMine(c *gin.Context) {
	list, err := h.Svc.ListMine(c.Request.Context(), callerFrom(c))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toAppliedJobViews(list), "applications", gin.H{"count": len(list)})
}

func (h *ApplicationHandler) Applicants(c *gin.Context) {
	j, list, err := h.Svc.Applicants(c.Request.Context(), callerFrom(c), c.Param("jobId"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"job":          toJobView(&j.Job, j.Company),
		"applications": toApplicantViews(list),
	}, "applicants", gin.H{"count": len(list)})
}

func (h *ApplicationHandler) ExportApplicants(c *gin.Context) {
	data, filename, err := h.Svc.ExportApplicants(c.Request.Context(), callerFrom(c), c.Param("jobId"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	a, err := h.Svc.UpdateStatus(c.Request.Context(), callerFrom(c), c.Param("id"), req.Status)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toApplicationView(a), "status updated successfully", nil)
}
