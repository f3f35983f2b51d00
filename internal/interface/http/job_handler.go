package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/job-portal-api/internal/application"
	"github.com/oksasatya/job-portal-api/pkg/response"
)

type JobHandler struct {
	Svc    *application.JobService
	Logger *logrus.Logger
}

func NewJobHandler(svc *application.JobService, logger *logrus.Logger) *JobHandler {
	return &JobHandler{Svc: svc, Logger: logger}
}

type postJobRequest struct {
	Title        string   `json:"title" binding:"required,max=200"`
	Description  string   `json:"description" binding:"required"`
	Requirements []string `json:"requirements" binding:"omitempty,dive,max=200"`
	Salary       *float64 `json:"salary" binding:"required,gte=0"`
	Location     string   `json:"location" binding:"required"`
	JobType      string   `json:"jobType" binding:"required"`
	Experience   *int     `json:"experience" binding:"required,gte=0"`
	Position     *int     `json:"position" binding:"required,gte=0"`
	CompanyID    string   `json:"companyId" binding:"required"`
}

func (h *JobHandler) Post(c *gin.Context) {
	var req postJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	j, err := h.Svc.Post(c.Request.Context(), callerFrom(c), application.PostJobInput{
		Title:           req.Title,
		Description:     req.Description,
		Requirements:    req.Requirements,
		Salary:          *req.Salary,
		Location:        req.Location,
		JobType:         req.JobType,
		Position:        *req.Position,
		ExperienceLevel: *req.Experience,
		CompanyID:       req.CompanyID,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, toJobView(&j.Job, j.Company), "new job created successfully", nil)
}

func (h *JobHandler) List(c *gin.Context) {
	list, err := h.Svc.List(c.Request.Context(), c.Query("keyword"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toJobViews(list), "jobs", gin.H{"count": len(list)})
}

func (h *JobHandler) Get(c *gin.Context) {
	j, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toJobView(&j.Job, j.Company), "job", nil)
}

func (h *JobHandler) AdminJobs(c *gin.Context) {
	list, err := h.Svc.AdminJobs(c.Request.Context(), callerFrom(c))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toJobViews(list), "jobs", gin.H{"count": len(list)})
}
