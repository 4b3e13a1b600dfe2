package site

import (
	"bytes"
	"encoding/base64"
	"net/http"
	"strings"

	g "github.com/maragudk/gomponents"

	"portfolio/constants"
	"portfolio/database"
	"portfolio/templates"
)

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, node g.Node) {
	var buf bytes.Buffer
	if err := node.Render(&buf); err != nil {
		s.requestLog(r).WithError(err).Error("failed to render page")
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *Server) publicProps(w http.ResponseWriter, r *http.Request, settings *database.Settings, title string) templates.LayoutProps {
	props := templates.LayoutProps{
		Title:       title,
		SiteName:    constants.APP_NAME,
		CurrentUser: displayName(getSignedInUserOrNil(r)),
		Flash:       popFlash(w, r),
	}
	if settings != nil {
		props.SiteName = settings.SiteName
		props.Description = settings.MetaDescription
		props.Keywords = settings.MetaKeywords
		props.Analytics = settings.EnableAnalytics
		if title == "" {
			props.Title = settings.MetaTitle
		}
	}
	return props
}

func (s *Server) adminProps(w http.ResponseWriter, r *http.Request, title string) templates.LayoutProps {
	siteName := constants.APP_NAME
	if settings, err := s.store.GetSettings(r.Context()); err == nil {
		siteName = settings.SiteName
	}
	return templates.LayoutProps{
		Title:       title,
		SiteName:    siteName,
		CurrentUser: displayName(getSignedInUserOrNil(r)),
		Flash:       popFlash(w, r),
	}
}

func displayName(user *database.AdminUser) string {
	if user == nil {
		return ""
	}
	if user.Name != "" {
		return user.Name
	}
	return user.Email
}

// setFlash stores a one shot notification shown on the next rendered page.
func setFlash(w http.ResponseWriter, kind, message string) {
	value := base64.URLEncoding.EncodeToString([]byte(kind + "|" + message))
	http.SetCookie(w, &http.Cookie{
		Name:     constants.FLASH_COOKIE_NAME,
		Value:    value,
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func popFlash(w http.ResponseWriter, r *http.Request) *templates.Flash {
	cookie, err := r.Cookie(constants.FLASH_COOKIE_NAME)
	if err != nil || cookie.Value == "" {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:   constants.FLASH_COOKIE_NAME,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	raw, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	kind, message, ok := strings.Cut(string(raw), "|")
	if !ok {
		return nil
	}
	return &templates.Flash{Kind: kind, Message: message}
}

// redirectWithFlash navigates away after a form post.
func redirectWithFlash(w http.ResponseWriter, r *http.Request, target, kind, message string) {
	setFlash(w, kind, message)
	http.Redirect(w, r, target, http.StatusSeeOther)
}
