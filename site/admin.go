package site

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	g "github.com/maragudk/gomponents"

	"portfolio/database"
	"portfolio/forms"
	"portfolio/templates"
	"portfolio/uploads"
)

func (s *Server) adminLoginPage(w http.ResponseWriter, r *http.Request) {
	if isAdmin(r) {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	s.render(w, r, http.StatusOK, templates.LoginPage(s.adminProps(w, r, "Sign in"), "", ""))
}

func (s *Server) adminLogin(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")

	user, err := s.store.Authenticate(r.Context(), email, password)
	if err != nil {
		status, msg := http.StatusUnauthorized, "Invalid email or password"
		if !errors.Is(err, database.ErrInvalidCredentials) {
			s.requestLog(r).WithError(err).Error("failed to sign in")
			status, msg = http.StatusInternalServerError, "Failed to sign in"
		}
		s.render(w, r, status, templates.LoginPage(s.adminProps(w, r, "Sign in"), email, msg))
		return
	}

	if err := s.startSession(w, r, user); err != nil {
		s.requestLog(r).WithError(err).Error("failed to start session")
		s.render(w, r, http.StatusInternalServerError, templates.LoginPage(s.adminProps(w, r, "Sign in"), email, "Failed to sign in"))
		return
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (s *Server) adminLogout(w http.ResponseWriter, r *http.Request) {
	s.endSession(w, r)
	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}

func (s *Server) adminDashboard(w http.ResponseWriter, r *http.Request) {
	var stats *database.DashboardStats
	var activity []database.ActivityItem
	err := loadAll(r.Context(),
		func(ctx context.Context) (err error) {
			stats, err = s.store.DashboardStats(ctx)
			return err
		},
		func(ctx context.Context) (err error) {
			activity, err = s.store.RecentActivity(ctx)
			return err
		},
	)
	if err != nil {
		s.pageError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, templates.DashboardPage(s.adminProps(w, r, "Dashboard"), stats, activity))
}

// adminEntity wires the list, new, edit and delete screens of one content
// type. F is the form state, In the create input and P the update patch.
type adminEntity[T, F, In, P any] struct {
	path     string
	title    string
	singular string

	list     func(ctx context.Context) ([]T, error)
	get      func(ctx context.Context, id uint) (*T, error)
	create   func(ctx context.Context, in In) (*T, error)
	update   func(ctx context.Context, id uint, patch P) (*T, error)
	delete   func(ctx context.Context, id uint) error
	listPage func(props templates.LayoutProps, items []T) g.Node
	formPage func(props templates.LayoutProps, action string, form F, errMsg string) g.Node

	newForm func(item *T) F
	bind    func(form *F, values url.Values) (forms.Op, error)
	input   func(form F) (In, error)
	patch   func(in In) P
}

func mountAdminEntity[T, F, In, P any](s *Server, r chi.Router, e adminEntity[T, F, In, P]) {
	r.Get(e.path, func(w http.ResponseWriter, r *http.Request) {
		items, err := e.list(r.Context())
		if err != nil {
			s.pageError(w, r, err)
			return
		}
		s.render(w, r, http.StatusOK, e.listPage(s.adminProps(w, r, e.title), items))
	})

	r.Get(e.path+"/new", func(w http.ResponseWriter, r *http.Request) {
		props := s.adminProps(w, r, "New "+e.singular)
		s.render(w, r, http.StatusOK, e.formPage(props, e.path+"/new", e.newForm(nil), ""))
	})

	r.Post(e.path+"/new", func(w http.ResponseWriter, r *http.Request) {
		saveAdminForm(s, w, r, e, e.path+"/new", "New "+e.singular, e.newForm(nil), func(ctx context.Context, in In) error {
			_, err := e.create(ctx, in)
			return err
		})
	})

	r.Get(e.path+"/{id}", func(w http.ResponseWriter, r *http.Request) {
		item, ok := loadAdminItem(s, w, r, e)
		if !ok {
			return
		}
		props := s.adminProps(w, r, "Edit "+e.singular)
		s.render(w, r, http.StatusOK, e.formPage(props, r.URL.Path, e.newForm(item), ""))
	})

	r.Post(e.path+"/{id}", func(w http.ResponseWriter, r *http.Request) {
		item, ok := loadAdminItem(s, w, r, e)
		if !ok {
			return
		}
		id, _ := urlID(r)
		saveAdminForm(s, w, r, e, r.URL.Path, "Edit "+e.singular, e.newForm(item), func(ctx context.Context, in In) error {
			_, err := e.update(ctx, id, e.patch(in))
			return err
		})
	})

	r.Post(e.path+"/{id}/delete", func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(r)
		if !ok {
			s.notFoundPage(w, r)
			return
		}
		if err := e.delete(r.Context(), id); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				redirectWithFlash(w, r, e.path, "error", capitalize(e.singular)+" not found")
				return
			}
			s.requestLog(r).WithError(err).Error("failed to delete " + e.singular)
			redirectWithFlash(w, r, e.path, "error", "Failed to delete "+e.singular)
			return
		}
		redirectWithFlash(w, r, e.path, "success", capitalize(e.singular)+" deleted")
	})
}

func loadAdminItem[T, F, In, P any](s *Server, w http.ResponseWriter, r *http.Request, e adminEntity[T, F, In, P]) (*T, bool) {
	id, ok := urlID(r)
	if !ok {
		s.notFoundPage(w, r)
		return nil, false
	}
	item, err := e.get(r.Context(), id)
	if err != nil {
		s.pageError(w, r, err)
		return nil, false
	}
	return item, true
}

// saveAdminForm binds the posted form onto the current state. Tag edits
// re-render the form; a save validates and persists, then navigates back to
// the list.
func saveAdminForm[T, F, In, P any](s *Server, w http.ResponseWriter, r *http.Request, e adminEntity[T, F, In, P], action, title string, form F, persist func(ctx context.Context, in In) error) {
	rerender := func(status int, errMsg string) {
		s.render(w, r, status, e.formPage(s.adminProps(w, r, title), action, form, errMsg))
	}

	if err := r.ParseForm(); err != nil {
		rerender(http.StatusBadRequest, "Invalid form")
		return
	}

	op, bindErr := e.bind(&form, r.PostForm)
	if !op.Saves() {
		rerender(http.StatusOK, "")
		return
	}
	if bindErr != nil {
		rerender(http.StatusBadRequest, bindErr.Error())
		return
	}

	in, err := e.input(form)
	if err != nil {
		rerender(http.StatusBadRequest, err.Error())
		return
	}
	if err := s.validate.Struct(in); err != nil {
		rerender(http.StatusBadRequest, validationSummary(err))
		return
	}

	if err := persist(r.Context(), in); err != nil {
		switch {
		case errors.Is(err, database.ErrNotFound):
			s.notFoundPage(w, r)
		case errors.Is(err, database.ErrDuplicateSlug), errors.Is(err, database.ErrEmptySlug):
			rerender(http.StatusBadRequest, capitalize(err.Error()))
		default:
			s.requestLog(r).WithError(err).Error("failed to save " + e.singular)
			rerender(http.StatusInternalServerError, "Failed to save "+e.singular)
		}
		return
	}

	redirectWithFlash(w, r, e.path, "success", capitalize(e.singular)+" saved")
}

func withoutError[F, In any](input func(F) In) func(F) (In, error) {
	return func(form F) (In, error) {
		return input(form), nil
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (s *Server) mountAdminEntities(r chi.Router) {
	mountAdminEntity(s, r, adminEntity[database.Project, forms.ProjectForm, database.ProjectInput, database.ProjectPatch]{
		path:     "/admin/projects",
		title:    "Projects",
		singular: "project",
		list:     s.store.ListProjects,
		get:      s.store.GetProject,
		create:   s.store.CreateProject,
		update:   s.store.UpdateProject,
		delete:   s.store.DeleteProject,
		listPage: templates.ProjectsAdminPage,
		formPage: templates.ProjectFormPage,
		newForm:  forms.NewProjectForm,
		bind:     (*forms.ProjectForm).Bind,
		input:    withoutError(forms.ProjectForm.Input),
		patch:    database.ProjectInput.Patch,
	})

	mountAdminEntity(s, r, adminEntity[database.Skill, forms.SkillForm, database.SkillInput, database.SkillPatch]{
		path:     "/admin/skills",
		title:    "Skills",
		singular: "skill",
		list:     s.store.ListSkills,
		get:      s.store.GetSkill,
		create:   s.store.CreateSkill,
		update:   s.store.UpdateSkill,
		delete:   s.store.DeleteSkill,
		listPage: templates.SkillsAdminPage,
		formPage: templates.SkillFormPage,
		newForm:  forms.NewSkillForm,
		bind:     (*forms.SkillForm).Bind,
		input:    withoutError(forms.SkillForm.Input),
		patch:    database.SkillInput.Patch,
	})

	mountAdminEntity(s, r, adminEntity[database.Technology, forms.TechnologyForm, database.TechnologyInput, database.TechnologyPatch]{
		path:     "/admin/technologies",
		title:    "Technologies",
		singular: "technology",
		list:     s.store.ListTechnologies,
		get:      s.store.GetTechnology,
		create:   s.store.CreateTechnology,
		update:   s.store.UpdateTechnology,
		delete:   s.store.DeleteTechnology,
		listPage: templates.TechnologiesAdminPage,
		formPage: templates.TechnologyFormPage,
		newForm:  forms.NewTechnologyForm,
		bind:     (*forms.TechnologyForm).Bind,
		input:    withoutError(forms.TechnologyForm.Input),
		patch:    database.TechnologyInput.Patch,
	})

	mountAdminEntity(s, r, adminEntity[database.Certification, forms.CertificationForm, database.CertificationInput, database.CertificationPatch]{
		path:     "/admin/certifications",
		title:    "Certifications",
		singular: "certification",
		list:     s.store.ListCertifications,
		get:      s.store.GetCertification,
		create:   s.store.CreateCertification,
		update:   s.store.UpdateCertification,
		delete:   s.store.DeleteCertification,
		listPage: templates.CertificationsAdminPage,
		formPage: templates.CertificationFormPage,
		newForm:  forms.NewCertificationForm,
		bind:     (*forms.CertificationForm).Bind,
		input:    forms.CertificationForm.Input,
		patch:    database.CertificationInput.Patch,
	})

	mountAdminEntity(s, r, adminEntity[database.BlogPost, forms.BlogPostForm, database.BlogPostInput, database.BlogPostPatch]{
		path:     "/admin/blog",
		title:    "Blog",
		singular: "post",
		list: func(ctx context.Context) ([]database.BlogPost, error) {
			return s.store.ListBlogPosts(ctx, true)
		},
		get:      s.store.GetBlogPost,
		create:   s.store.CreateBlogPost,
		update:   s.store.UpdateBlogPost,
		delete:   s.store.DeleteBlogPost,
		listPage: templates.BlogAdminPage,
		formPage: templates.BlogPostFormPage,
		newForm:  forms.NewBlogPostForm,
		bind:     (*forms.BlogPostForm).Bind,
		input:    withoutError(forms.BlogPostForm.Input),
		patch:    database.BlogPostInput.Patch,
	})
}

func (s *Server) adminMessages(w http.ResponseWriter, r *http.Request) {
	contacts, err := s.store.ListContacts(r.Context())
	if err != nil {
		s.pageError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, templates.MessagesPage(s.adminProps(w, r, "Messages"), contacts))
}

func (s *Server) adminMarkMessage(read bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(r)
		if !ok {
			s.notFoundPage(w, r)
			return
		}
		if _, err := s.store.MarkContactRead(r.Context(), id, read); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				redirectWithFlash(w, r, "/admin/messages", "error", "Message not found")
				return
			}
			s.requestLog(r).WithError(err).Error("failed to update message")
			redirectWithFlash(w, r, "/admin/messages", "error", "Failed to update message")
			return
		}
		http.Redirect(w, r, "/admin/messages", http.StatusSeeOther)
	}
}

func (s *Server) adminSettingsPage(w http.ResponseWriter, r *http.Request) {
	settings, err := s.store.GetSettings(r.Context())
	if err != nil {
		s.pageError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, templates.SettingsPage(s.adminProps(w, r, "Settings"), forms.NewSettingsForm(settings), ""))
}

func (s *Server) adminSaveSettings(w http.ResponseWriter, r *http.Request) {
	form := forms.NewSettingsForm(nil)
	if err := r.ParseForm(); err != nil {
		s.render(w, r, http.StatusBadRequest, templates.SettingsPage(s.adminProps(w, r, "Settings"), form, "Invalid form"))
		return
	}
	if _, err := form.Bind(r.PostForm); err != nil {
		s.render(w, r, http.StatusBadRequest, templates.SettingsPage(s.adminProps(w, r, "Settings"), form, err.Error()))
		return
	}

	if _, err := s.store.UpdateSettings(r.Context(), form.Patch()); err != nil {
		s.requestLog(r).WithError(err).Error("failed to update settings")
		s.render(w, r, http.StatusInternalServerError, templates.SettingsPage(s.adminProps(w, r, "Settings"), form, "Failed to save settings"))
		return
	}
	redirectWithFlash(w, r, "/admin/settings", "success", "Settings saved")
}

func (s *Server) adminFilesPage(w http.ResponseWriter, r *http.Request) {
	files, err := s.uploads.List()
	if err != nil {
		s.pageError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, templates.FilesPage(s.adminProps(w, r, "Files"), files, s.uploads.MaxBytes()))
}

func (s *Server) adminUploadFile(w http.ResponseWriter, r *http.Request) {
	file, err := s.receiveUpload(w, r)
	switch {
	case err == nil:
		redirectWithFlash(w, r, "/admin/files", "success", fmt.Sprintf("Uploaded %s", file.Name))
	case errors.Is(err, uploads.ErrFileTooLarge), errors.Is(err, uploads.ErrNoFile):
		redirectWithFlash(w, r, "/admin/files", "error", err.Error())
	default:
		s.requestLog(r).WithError(err).Error("failed to upload file")
		redirectWithFlash(w, r, "/admin/files", "error", "Failed to upload file")
	}
}

func (s *Server) adminDeleteFile(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := s.uploads.Delete(name); err != nil {
		s.requestLog(r).WithError(err).WithField("file", name).Warn("failed to delete file")
		redirectWithFlash(w, r, "/admin/files", "error", "Failed to delete file")
		return
	}
	redirectWithFlash(w, r, "/admin/files", "success", "File deleted")
}

func (s *Server) adminAnalyticsPage(w http.ResponseWriter, r *http.Request) {
	report, err := s.analytics.Report(r.Context())
	if err != nil {
		s.pageError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, templates.AnalyticsPage(s.adminProps(w, r, "Analytics"), report))
}

func (s *Server) mountAdmin(r chi.Router) {
	r.Get("/admin/login", s.adminLoginPage)
	r.With(s.strictRateLimit()).Post("/admin/login", s.adminLogin)

	r.Group(func(r chi.Router) {
		r.Use(AuthProtectedMiddleware)

		r.Post("/admin/logout", s.adminLogout)
		r.Get("/admin", s.adminDashboard)

		r.Get("/admin/blog/import", s.adminImportPage)
		r.Post("/admin/blog/import", s.adminImportPosts)
		s.mountAdminEntities(r)

		r.Get("/admin/messages", s.adminMessages)
		r.Post("/admin/messages/{id}/read", s.adminMarkMessage(true))
		r.Post("/admin/messages/{id}/unread", s.adminMarkMessage(false))

		r.Get("/admin/settings", s.adminSettingsPage)
		r.Post("/admin/settings", s.adminSaveSettings)

		r.Get("/admin/files", s.adminFilesPage)
		r.Post("/admin/files", s.adminUploadFile)
		r.Post("/admin/files/{name}/delete", s.adminDeleteFile)

		r.Get("/admin/analytics", s.adminAnalyticsPage)
	})
}
