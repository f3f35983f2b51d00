package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/job-portal-api/internal/application"
	"github.com/oksasatya/job-portal-api/internal/domain/entity"
	"github.com/oksasatya/job-portal-api/internal/interface/middleware"
	"github.com/oksasatya/job-portal-api/pkg/response"
	"github.com/oksasatya/job-portal-api/pkg/validation"
)

type errorMapping struct {
	target error
	status int
	code   string
}

var errorTable = []errorMapping{
	{application.ErrDuplicateIdentity, http.StatusConflict, "DUPLICATE_IDENTITY"},
	{application.ErrDuplicateApplication, http.StatusConflict, "DUPLICATE_APPLICATION"},
	{application.ErrDuplicateCompany, http.StatusConflict, "DUPLICATE_COMPANY"},
	{application.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
	{application.ErrUnauthenticated, http.StatusUnauthorized, "UNAUTHENTICATED"},
	{application.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
	{application.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
	{application.ErrUnavailable, http.StatusServiceUnavailable, "UNAVAILABLE"},
}

// writeError is the single place where service errors become HTTP responses.
func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	var ve *application.ValidationError
	if errors.As(err, &ve) {
		response.Error[any](c, http.StatusBadRequest, "validation failed", response.ErrorBody{Code: "VALIDATION", Details: ve.Fields})
		return
	}
	for _, m := range errorTable {
		if errors.Is(err, m.target) {
			response.Error[any](c, m.status, err.Error(), response.ErrorBody{Code: m.code})
			return
		}
	}
	if logger != nil {
		logger.WithError(err).WithFields(logrus.Fields{
			"path":       c.FullPath(),
			"request_id": c.GetString("request_id"),
		}).Error("request failed")
	}
	response.Error[any](c, http.StatusInternalServerError, "internal server error", response.ErrorBody{Code: "INTERNAL"})
}

func writeBindError(c *gin.Context, err error) {
	response.Error[any](c, http.StatusBadRequest, "invalid payload", response.ErrorBody{Code: "VALIDATION", Details: validation.ToDetails(err)})
}

func callerFrom(c *gin.Context) application.Caller {
	role, _ := c.Get(middleware.CtxUserRoleKey)
	r, _ := role.(entity.Role)
	return application.Caller{UserID: c.GetString(middleware.CtxUserIDKey), Role: r}
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

// formFile returns the named upload, or nil when the field is absent.
func formFile(c *gin.Context, field string, maxBytes int64) (*application.Upload, func(), error) {
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, func() {}, nil
	}
	if err != nil {
		return nil, func() {}, err
	}
	if maxBytes > 0 && fh.Size > maxBytes {
		return nil, func() {}, &application.ValidationError{Fields: map[string]string{field: fmt.Sprintf("must be at most %d bytes", maxBytes)}}
	}
	f, err := fh.Open()
	if err != nil {
		return nil, func() {}, err
	}
	return uploadFrom(fh, f), func() { _ = f.Close() }, nil
}

func uploadFrom(fh *multipart.FileHeader, f multipart.File) *application.Upload {
	ct := fh.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/octet-stream"
	}
	return &application.Upload{Filename: fh.Filename, ContentType: ct, Reader: f}
}

// splitSkills accepts "go, sql" style input.
func splitSkills(s *string) []string {
	if s == nil {
		return nil
	}
	return strings.Split(*s, ",")
}
