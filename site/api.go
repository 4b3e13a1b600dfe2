package site

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"portfolio/database"
	"portfolio/uploads"
)

func (s *Server) mountAPI(r chi.Router) {
	r.Route("/projects", func(r chi.Router) {
		r.Get("/featured", s.apiFeaturedProjects)
		mountResource(s, r, resource[database.Project, database.ProjectInput, database.ProjectPatch]{
			plural:   "projects",
			singular: "project",
			notFound: "Project not found",
			deleted:  "Project deleted",
			list: func(r *http.Request) ([]database.Project, error) {
				return s.store.ListProjects(r.Context())
			},
			get:    s.store.GetProject,
			create: s.store.CreateProject,
			update: s.store.UpdateProject,
			delete: s.store.DeleteProject,
		})
	})

	r.Route("/skills", func(r chi.Router) {
		r.Get("/grouped", s.apiGroupedSkills)
		mountResource(s, r, resource[database.Skill, database.SkillInput, database.SkillPatch]{
			plural:   "skills",
			singular: "skill",
			notFound: "Skill not found",
			deleted:  "Skill deleted",
			list: func(r *http.Request) ([]database.Skill, error) {
				return s.store.ListSkills(r.Context())
			},
			get:    s.store.GetSkill,
			create: s.store.CreateSkill,
			update: s.store.UpdateSkill,
			delete: s.store.DeleteSkill,
		})
	})

	r.Route("/technologies", func(r chi.Router) {
		r.Get("/featured", s.apiFeaturedTechnologies)
		mountResource(s, r, resource[database.Technology, database.TechnologyInput, database.TechnologyPatch]{
			plural:   "technologies",
			singular: "technology",
			notFound: "Technology not found",
			deleted:  "Technology deleted successfully",
			list: func(r *http.Request) ([]database.Technology, error) {
				return s.store.ListTechnologies(r.Context())
			},
			get:    s.store.GetTechnology,
			create: s.store.CreateTechnology,
			update: s.store.UpdateTechnology,
			delete: s.store.DeleteTechnology,
		})
	})

	r.Route("/certifications", func(r chi.Router) {
		r.Get("/featured", s.apiFeaturedCertifications)
		mountResource(s, r, resource[database.Certification, database.CertificationInput, database.CertificationPatch]{
			plural:   "certifications",
			singular: "certification",
			notFound: "Certification not found",
			deleted:  "Certification deleted",
			list: func(r *http.Request) ([]database.Certification, error) {
				return s.store.ListCertifications(r.Context())
			},
			get:    s.store.GetCertification,
			create: s.store.CreateCertification,
			update: s.store.UpdateCertification,
			delete: s.store.DeleteCertification,
		})
	})

	r.Route("/blog", func(r chi.Router) {
		r.Get("/featured", s.apiFeaturedPosts)
		r.Get("/slug/{slug}", s.apiPostBySlug)
		mountResource(s, r, resource[database.BlogPost, database.BlogPostInput, database.BlogPostPatch]{
			plural:   "posts",
			singular: "post",
			notFound: "Post not found",
			deleted:  "Post deleted",
			list: func(r *http.Request) ([]database.BlogPost, error) {
				includeDrafts := r.URL.Query().Get("drafts") == "true" && isAdmin(r)
				return s.store.ListBlogPosts(r.Context(), includeDrafts)
			},
			get:    s.getVisiblePost,
			create: s.store.CreateBlogPost,
			update: s.store.UpdateBlogPost,
			delete: s.store.DeleteBlogPost,
		})
	})

	r.Get("/settings", s.apiGetSettings)
	r.With(APIAuthMiddleware).Put("/settings", s.apiUpdateSettings)

	r.Route("/contact", func(r chi.Router) {
		r.With(s.strictRateLimit()).Post("/", s.apiCreateContact)
		r.Group(func(r chi.Router) {
			r.Use(APIAuthMiddleware)
			r.Get("/", s.apiListContacts)
			r.Put("/{id}/read", s.apiMarkContactRead)
		})
	})

	r.With(APIAuthMiddleware).Get("/analytics", s.apiAnalytics)
	r.With(APIAuthMiddleware).Post("/upload", s.apiUpload)
	r.Get("/gists", s.apiGists)

	r.Route("/auth", func(r chi.Router) {
		r.With(s.strictRateLimit()).Post("/login", s.apiLogin)
		r.With(s.strictRateLimit()).Post("/token", s.apiToken)
		r.Post("/logout", s.apiLogout)
		r.Get("/session", s.apiSession)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "Not found")
	})
}

func (s *Server) apiFeaturedProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.store.ListFeaturedProjects(r.Context())
	if err != nil {
		s.respondStoreError(w, r, err, "", "fetch featured projects")
		return
	}
	respondJSON(w, http.StatusOK, nonNil(projects))
}

func (s *Server) apiGroupedSkills(w http.ResponseWriter, r *http.Request) {
	groups, err := s.store.ListSkillsGrouped(r.Context())
	if err != nil {
		s.respondStoreError(w, r, err, "", "fetch skills")
		return
	}

	type skillGroup struct {
		Category string           `json:"category"`
		Skills   []database.Skill `json:"skills"`
	}
	out := make([]skillGroup, 0, len(groups))
	for _, g := range groups {
		out = append(out, skillGroup{Category: g.Key, Skills: g.Items})
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) apiFeaturedTechnologies(w http.ResponseWriter, r *http.Request) {
	technologies, err := s.store.ListFeaturedTechnologies(r.Context())
	if err != nil {
		s.respondStoreError(w, r, err, "", "fetch featured technologies")
		return
	}
	respondJSON(w, http.StatusOK, nonNil(technologies))
}

func (s *Server) apiFeaturedCertifications(w http.ResponseWriter, r *http.Request) {
	certifications, err := s.store.ListFeaturedCertifications(r.Context())
	if err != nil {
		s.respondStoreError(w, r, err, "", "fetch featured certifications")
		return
	}
	respondJSON(w, http.StatusOK, nonNil(certifications))
}

func (s *Server) apiFeaturedPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := s.store.ListFeaturedBlogPosts(r.Context())
	if err != nil {
		s.respondStoreError(w, r, err, "", "fetch featured posts")
		return
	}
	respondJSON(w, http.StatusOK, nonNil(posts))
}

// getVisiblePost hides drafts from anonymous readers.
func (s *Server) getVisiblePost(ctx context.Context, id uint) (*database.BlogPost, error) {
	post, err := s.store.GetBlogPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if !post.Published && !isAdminContext(ctx) {
		return nil, database.ErrNotFound
	}
	return post, nil
}

// viewPost loads a post by slug and counts the view. Drafts are only
// visible to admins and do not count views.
func (s *Server) viewPost(r *http.Request, slug string) (*database.BlogPost, error) {
	post, err := s.store.GetBlogPostBySlug(r.Context(), slug)
	if err != nil {
		return nil, err
	}
	if !post.Published {
		if !isAdmin(r) {
			return nil, database.ErrNotFound
		}
		return post, nil
	}

	if err := s.store.IncrementBlogPostViews(r.Context(), post.ID); err != nil {
		return nil, err
	}
	post.Views++
	return post, nil
}

func (s *Server) apiPostBySlug(w http.ResponseWriter, r *http.Request) {
	post, err := s.viewPost(r, chi.URLParam(r, "slug"))
	if err != nil {
		s.respondStoreError(w, r, err, "Post not found", "fetch post")
		return
	}
	respondJSON(w, http.StatusOK, post)
}

func (s *Server) apiGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.store.GetSettings(r.Context())
	if err != nil {
		s.respondStoreError(w, r, err, "", "fetch settings")
		return
	}
	respondJSON(w, http.StatusOK, settings)
}

func (s *Server) apiUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var patch database.SettingsPatch
	if err := decodeJSON(r, &patch); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	settings, err := s.store.UpdateSettings(r.Context(), patch)
	if err != nil {
		s.respondStoreError(w, r, err, "", "update settings")
		return
	}
	respondJSON(w, http.StatusOK, settings)
}

func (s *Server) apiCreateContact(w http.ResponseWriter, r *http.Request) {
	var in database.ContactInput
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	contact, err := s.submitContact(r.Context(), in)
	if errors.Is(err, errContactInvalid) {
		respondError(w, http.StatusBadRequest, contactRequiredMessage)
		return
	}
	if err != nil {
		s.respondStoreError(w, r, err, "", "send message")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"message": "Message sent successfully",
		"id":      contact.ID,
	})
}

const contactRequiredMessage = "Name, email, and message are required"

var errContactInvalid = errors.New("contact is missing required fields")

// submitContact validates and stores a message from the contact form.
func (s *Server) submitContact(ctx context.Context, in database.ContactInput) (*database.Contact, error) {
	if err := s.validate.Struct(trimContact(in)); err != nil {
		return nil, errContactInvalid
	}
	return s.store.CreateContact(ctx, in)
}

func trimContact(in database.ContactInput) database.ContactInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Subject = strings.TrimSpace(in.Subject)
	in.Message = strings.TrimSpace(in.Message)
	return in
}

func (s *Server) apiListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := s.store.ListContacts(r.Context())
	if err != nil {
		s.respondStoreError(w, r, err, "", "fetch messages")
		return
	}
	respondJSON(w, http.StatusOK, nonNil(contacts))
}

func (s *Server) apiMarkContactRead(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "Message not found")
		return
	}

	read := true
	if v := r.URL.Query().Get("read"); v == "false" {
		read = false
	}

	contact, err := s.store.MarkContactRead(r.Context(), id, read)
	if err != nil {
		s.respondStoreError(w, r, err, "Message not found", "update message")
		return
	}
	respondJSON(w, http.StatusOK, contact)
}

func (s *Server) apiAnalytics(w http.ResponseWriter, r *http.Request) {
	report, err := s.analytics.Report(r.Context())
	if err != nil {
		s.respondStoreError(w, r, err, "", "fetch analytics")
		return
	}
	respondJSON(w, http.StatusOK, report)
}

func (s *Server) apiUpload(w http.ResponseWriter, r *http.Request) {
	file, err := s.receiveUpload(w, r)
	if err != nil {
		s.respondStoreError(w, r, err, "", "upload file")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"url":      file.URL,
		"filename": file.Name,
	})
}

// receiveUpload stores the multipart "file" field. Bodies over the size
// limit fail with uploads.ErrFileTooLarge before anything is written.
func (s *Server) receiveUpload(w http.ResponseWriter, r *http.Request) (*uploads.File, error) {
	maxBytes := s.uploads.MaxBytes()
	// leave room for the multipart envelope; the part size is checked below
	r.Body = http.MaxBytesReader(w, r.Body, 2*maxBytes)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, uploads.ErrFileTooLarge
		}
		return nil, uploads.ErrNoFile
	}
	defer r.MultipartForm.RemoveAll()

	src, header, err := r.FormFile("file")
	if err != nil {
		return nil, uploads.ErrNoFile
	}
	defer src.Close()

	if header.Size > maxBytes {
		return nil, uploads.ErrFileTooLarge
	}
	return s.uploads.Save(header.Filename, src)
}

func (s *Server) apiGists(w http.ResponseWriter, r *http.Request) {
	list, err := s.gists.ListGists(r.Context(), s.cfg.Gists.Username)
	if err != nil {
		s.requestLog(r).WithError(err).Error("failed to fetch gists")
		respondError(w, http.StatusInternalServerError, "Failed to fetch gists")
		return
	}
	respondJSON(w, http.StatusOK, list)
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
