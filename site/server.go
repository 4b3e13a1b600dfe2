package site

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"portfolio/analytics"
	"portfolio/config"
	"portfolio/database"
	"portfolio/gists"
	"portfolio/uploads"
)

// GistLister is the part of the gist client the pages need.
type GistLister interface {
	ListGists(ctx context.Context, username string) ([]gists.Gist, error)
}

type Deps struct {
	Config    *config.Config
	Store     *database.Store
	Uploads   *uploads.Store
	Gists     GistLister
	Analytics analytics.Reader
	Logger    *logrus.Logger
}

// Server holds the dependencies shared by every handler.
type Server struct {
	cfg       *config.Config
	store     *database.Store
	uploads   *uploads.Store
	gists     GistLister
	analytics analytics.Reader
	log       *logrus.Logger
	validate  *validator.Validate
	jwtSecret []byte
	now       func() time.Time
}

func NewServer(deps Deps) (*Server, error) {
	s := &Server{
		cfg:       deps.Config,
		store:     deps.Store,
		uploads:   deps.Uploads,
		gists:     deps.Gists,
		analytics: deps.Analytics,
		log:       deps.Logger,
		validate:  newValidator(),
		now:       time.Now,
	}

	if s.log == nil {
		s.log = logrus.StandardLogger()
	}
	if s.analytics == nil {
		s.analytics = analytics.MockReader{}
	}

	if secret := s.cfg.Auth.JWTSecret; secret != "" {
		s.jwtSecret = []byte(secret)
	} else {
		secret, err := generateAuthToken()
		if err != nil {
			return nil, err
		}
		s.jwtSecret = []byte(secret)
		s.log.Warn("auth.jwt_secret is not set; API tokens will not survive a restart")
	}

	return s, nil
}

func generateAuthToken() (string, error) {
	const tokenLength = 32
	tokenBytes := make([]byte, tokenLength)
	_, err := rand.Read(tokenBytes)
	if err != nil {
		return "", err
	}
	token := base64.URLEncoding.EncodeToString(tokenBytes)
	return token, nil
}
