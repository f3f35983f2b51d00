package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/job-portal-api/internal/application"
	"github.com/oksasatya/job-portal-api/pkg/helpers"
	"github.com/oksasatya/job-portal-api/pkg/response"
)

type UserHandler struct {
	Svc       *application.UserService
	Logger    *logrus.Logger
	Cookies   *helpers.Manager
	MaxUpload int64
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger, cookieDomain string, cookieSecure bool, maxUpload int64) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger, Cookies: helpers.NewCookie(cookieDomain, cookieSecure), MaxUpload: maxUpload}
}

type registerRequest struct {
	Fullname    string `json:"fullname" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber" binding:"required,phone"`
	Password    string `json:"password" binding:"required,pwd"`
	Role        string `json:"role" binding:"required,role"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,role"`
}

type updateProfileRequest struct {
	Fullname    *string `json:"fullname" form:"fullname"`
	Email       *string `json:"email" form:"email" binding:"omitempty,email"`
	PhoneNumber *string `json:"phoneNumber" form:"phoneNumber" binding:"omitempty,phone"`
	Bio         *string `json:"bio" form:"bio" binding:"omitempty,max=1000"`
	Skills      *string `json:"skills" form:"skills"`
}

func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	u, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Fullname:    req.Fullname,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
		Role:        req.Role,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, toUserView(u), "account created successfully", nil)
}

func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	res, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	h.Cookies.SetAccess(c, res.Token, res.ExpiresAt)
	response.Success(c, http.StatusOK, gin.H{
		"token": res.Token,
		"user":  toUserView(res.User),
	}, "welcome back "+res.User.Fullname, gin.H{"expires_at": res.ExpiresAt})
}

func (h *UserHandler) Logout(c *gin.Context) {
	if err := h.Svc.Logout(c.Request.Context(), callerFrom(c).UserID); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	h.Cookies.Clear(c)
	response.Success[any](c, http.StatusOK, gin.H{"logged_out": true}, "logged out successfully", nil)
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	u, err := h.Svc.GetProfile(c.Request.Context(), callerFrom(c).UserID)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toUserView(u), "profile", nil)
}

// UpdateProfile accepts JSON, or multipart with optional "file" (resume) and "photo" parts.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var (
		req updateProfileRequest
		in  application.UpdateProfileInput
	)
	if isMultipart(c) {
		if err := c.ShouldBind(&req); err != nil {
			writeBindError(c, err)
			return
		}
		resume, closeResume, err := formFile(c, "file", h.MaxUpload)
		if err != nil {
			writeError(c, h.Logger, err)
			return
		}
		defer closeResume()
		photo, closePhoto, err := formFile(c, "photo", h.MaxUpload)
		if err != nil {
			writeError(c, h.Logger, err)
			return
		}
		defer closePhoto()
		in.Resume, in.Photo = resume, photo
	} else if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	in.Fullname = req.Fullname
	in.Email = req.Email
	in.PhoneNumber = req.PhoneNumber
	in.Bio = req.Bio
	in.Skills = splitSkills(req.Skills)

	u, err := h.Svc.UpdateProfile(c.Request.Context(), callerFrom(c), in)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toUserView(u), "profile updated successfully", nil)
}
