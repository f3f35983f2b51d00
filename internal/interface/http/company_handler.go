package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/job-portal-api/internal/application"
	"github.com/oksasatya/job-portal-api/pkg/response"
)

type CompanyHandler struct {
	Svc       *application.CompanyService
	Logger    *logrus.Logger
	MaxUpload int64
}

func NewCompanyHandler(svc *application.CompanyService, logger *logrus.Logger, maxUpload int64) *CompanyHandler {
	return &CompanyHandler{Svc: svc, Logger: logger, MaxUpload: maxUpload}
}

type registerCompanyRequest struct {
	CompanyName string `json:"companyName" binding:"required,max=200"`
}

type updateCompanyRequest struct {
	Name        *string `json:"name" form:"name" binding:"omitempty,max=200"`
	Description *string `json:"description" form:"description"`
	Website     *string `json:"website" form:"website" binding:"omitempty,url"`
	Location    *string `json:"location" form:"location"`
}

func (h *CompanyHandler) Register(c *gin.Context) {
	var req registerCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	co, err := h.Svc.Register(c.Request.Context(), callerFrom(c), req.CompanyName)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, toCompanyView(co), "company registered successfully", nil)
}

func (h *CompanyHandler) List(c *gin.Context) {
	list, err := h.Svc.List(c.Request.Context(), callerFrom(c))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toCompanyViews(list), "companies", gin.H{"count": len(list)})
}

func (h *CompanyHandler) Get(c *gin.Context) {
	co, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toCompanyView(co), "company", nil)
}

// Update accepts JSON, or multipart with an optional "file" logo part.
func (h *CompanyHandler) Update(c *gin.Context) {
	var (
		req updateCompanyRequest
		in  application.UpdateCompanyInput
	)
	if isMultipart(c) {
		if err := c.ShouldBind(&req); err != nil {
			writeBindError(c, err)
			return
		}
		logo, closeLogo, err := formFile(c, "file", h.MaxUpload)
		if err != nil {
			writeError(c, h.Logger, err)
			return
		}
		defer closeLogo()
		in.Logo = logo
	} else if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	in.Name = req.Name
	in.Description = req.Description
	in.Website = req.Website
	in.Location = req.Location

	co, err := h.Svc.Update(c.Request.Context(), callerFrom(c), c.Param("id"), in)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toCompanyView(co), "company information updated", nil)
}
