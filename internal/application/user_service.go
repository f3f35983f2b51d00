package application

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/job-portal-api/internal/domain/entity"
	repo "github.com/oksasatya/job-portal-api/internal/domain/repository"
	"github.com/oksasatya/job-portal-api/pkg/helpers"
)

type UserService struct {
	Repo       repo.UserRepository
	JWT        *helpers.JWTManager
	Redis      *redis.Client
	SessionTTL time.Duration
	Uploader   Uploader
	Notifier   *Notifier
	Logger     *logrus.Logger
}

func NewUserService(repo repo.UserRepository, jwt *helpers.JWTManager, rdb *redis.Client, sessionTTL time.Duration, uploader Uploader, notifier *Notifier, logger *logrus.Logger) *UserService {
	return &UserService{
		Repo:       repo,
		JWT:        jwt,
		Redis:      rdb,
		SessionTTL: sessionTTL,
		Uploader:   uploader,
		Notifier:   notifier,
		Logger:     logger,
	}
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

type RegisterInput struct {
	Fullname    string
	Email       string
	PhoneNumber string
	Password    string
	Role        string
}

func normalizeEmail(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func checkEmail(fe fieldErrors, email string) {
	if email == "" {
		fe.add("email", "is required")
		return
	}
	if _, err := mail.ParseAddress(email); err != nil {
		fe.add("email", "must be a valid email")
	}
}

// Register creates an account. Email and phone must be unused.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	u := &entity.User{
		Fullname:    strings.TrimSpace(in.Fullname),
		Email:       normalizeEmail(in.Email),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
	}
	fe := fieldErrors{}
	fe.required("fullname", u.Fullname)
	checkEmail(fe, u.Email)
	fe.required("phoneNumber", u.PhoneNumber)
	if len(in.Password) < helpers.MinPasswordLength {
		fe.add("password", "must be at least 6 characters long")
	} else if len(in.Password) > helpers.MaxPasswordBytes {
		fe.add("password", "must be at most 72 bytes long")
	}
	role, err := entity.ParseRole(in.Role)
	if err != nil {
		fe.add("role", "must be Student or Recruiter")
	}
	if err := fe.Err(); err != nil {
		return nil, err
	}
	u.Role = role

	if _, err := s.Repo.GetByEmail(ctx, u.Email); err == nil {
		return nil, ErrDuplicateIdentity
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}
	if _, err := s.Repo.GetByPhone(ctx, u.PhoneNumber); err == nil {
		return nil, ErrDuplicateIdentity
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u.Password = hash
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrDuplicateIdentity
		}
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "role": u.Role}).Info("user registered")
	}
	s.Notifier.Welcome(ctx, u)
	return u, nil
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.User
}

// Login checks email, password and role together; any mismatch is ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password, role string) (*LoginResult, error) {
	r, err := entity.ParseRole(role)
	if err != nil {
		return nil, invalid("role", "must be Student or Recruiter")
	}
	u, err := s.Repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !helpers.PasswordMatches(u.Password, password) || u.Role != r {
		return nil, ErrInvalidCredentials
	}

	sid := uuid.NewString()
	token, exp, err := s.JWT.GenerateAccessToken(u.ID, u.Role.String(), sid)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate access token failed")
		}
		return nil, err
	}

	if s.Redis != nil {
		key := helpers.SessionKey(u.ID)
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, map[string]any{
			"user_id":    u.ID,
			"email":      u.Email,
			"name":       u.Fullname,
			"role":       u.Role.String(),
			"sid":        sid,
			"logged_in":  true,
			"created_at": nowRFC3339(),
		})
		pipe.Expire(ctx, key, s.SessionTTL)
		if _, rErr := pipe.Exec(ctx); rErr != nil {
			// a token without a session would be rejected by the auth middleware
			return nil, fmt.Errorf("store session: %w", rErr)
		}
	}
	return &LoginResult{Token: token, ExpiresAt: exp, User: u}, nil
}

// Logout drops the session so outstanding tokens stop working.
func (s *UserService) Logout(ctx context.Context, userID string) error {
	if s.Redis == nil {
		return nil
	}
	return helpers.RedisDel(ctx, s.Redis, helpers.SessionKey(userID))
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, notFound("user")
		}
		return nil, err
	}
	return u, nil
}

// UpdateProfileInput: nil fields are left unchanged.
type UpdateProfileInput struct {
	Fullname    *string
	Email       *string
	PhoneNumber *string
	Bio         *string
	Skills      []string
	Resume      *Upload
	Photo       *Upload
}

func (s *UserService) UpdateProfile(ctx context.Context, caller Caller, in UpdateProfileInput) (*entity.User, error) {
	if err := caller.authenticated(); err != nil {
		return nil, err
	}
	u, err := s.GetProfile(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	fe := fieldErrors{}
	if in.Fullname != nil {
		fe.required("fullname", *in.Fullname)
		u.Fullname = strings.TrimSpace(*in.Fullname)
	}
	if in.Email != nil {
		email := normalizeEmail(*in.Email)
		checkEmail(fe, email)
		if email != u.Email && fe["email"] == "" {
			if err := s.ensureUnused(ctx, u.ID, s.Repo.GetByEmail, email); err != nil {
				return nil, err
			}
		}
		u.Email = email
	}
	if in.PhoneNumber != nil {
		phone := strings.TrimSpace(*in.PhoneNumber)
		fe.required("phoneNumber", phone)
		if phone != u.PhoneNumber && phone != "" {
			if err := s.ensureUnused(ctx, u.ID, s.Repo.GetByPhone, phone); err != nil {
				return nil, err
			}
		}
		u.PhoneNumber = phone
	}
	if err := fe.Err(); err != nil {
		return nil, err
	}
	if in.Bio != nil {
		u.Profile.Bio = strings.TrimSpace(*in.Bio)
	}
	if in.Skills != nil {
		u.Profile.Skills = cleanList(in.Skills)
	}
	if in.Resume != nil {
		url, err := s.upload(ctx, "resumes", u.ID, in.Resume)
		if err != nil {
			return nil, err
		}
		u.Profile.ResumeURL = url
		u.Profile.ResumeOriginalName = in.Resume.Filename
	}
	if in.Photo != nil {
		url, err := s.upload(ctx, "photos", u.ID, in.Photo)
		if err != nil {
			return nil, err
		}
		u.Profile.PhotoURL = url
	}

	if err := s.Repo.Update(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrDuplicateIdentity
		}
		return nil, err
	}

	if s.Redis != nil {
		key := helpers.SessionKey(u.ID)
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, map[string]any{
			"email":      u.Email,
			"name":       u.Fullname,
			"updated_at": nowRFC3339(),
		})
		if ttl, tErr := s.Redis.TTL(ctx, key).Result(); tErr == nil && ttl > 0 {
			pipe.Expire(ctx, key, ttl)
		}
		if _, pErr := pipe.Exec(ctx); pErr != nil && s.Logger != nil {
			s.Logger.WithError(pErr).WithField("key", key).Warn("redis pipeline failed")
		}
	}
	return u, nil
}

func (s *UserService) ensureUnused(ctx context.Context, selfID string, lookup func(context.Context, string) (*entity.User, error), value string) error {
	other, err := lookup(ctx, value)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return nil
	case err != nil:
		return err
	case other.ID != selfID:
		return ErrDuplicateIdentity
	}
	return nil
}

func (s *UserService) upload(ctx context.Context, prefix, ownerID string, f *Upload) (string, error) {
	return uploadFile(ctx, s.Uploader, prefix, ownerID, f)
}

func uploadFile(ctx context.Context, up Uploader, prefix, ownerID string, f *Upload) (string, error) {
	if up == nil {
		return "", fmt.Errorf("%w: file storage is not configured", ErrUnavailable)
	}
	c, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	url, err := up.Upload(c, helpers.ObjectPath(prefix, ownerID, f.Filename), f.ContentType, f.Reader)
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", prefix, err)
	}
	return url, nil
}

// cleanList trims items and drops empty ones.
func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
