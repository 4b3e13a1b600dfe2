package site

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sourcegraph/conc/pool"

	"portfolio/constants"
	"portfolio/content"
	"portfolio/database"
	"portfolio/gists"
	"portfolio/templates"
)

// loadAll runs the page reads concurrently and returns the first error.
func loadAll(ctx context.Context, loaders ...func(ctx context.Context) error) error {
	p := pool.New().WithErrors().WithContext(ctx).WithCancelOnError()
	for _, load := range loaders {
		p.Go(load)
	}
	return p.Wait()
}

func (s *Server) pageError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, database.ErrNotFound) {
		s.notFoundPage(w, r)
		return
	}
	s.requestLog(r).WithError(err).Error("failed to load page")
	http.Error(w, "Failed to load page", http.StatusInternalServerError)
}

func (s *Server) notFoundPage(w http.ResponseWriter, r *http.Request) {
	settings, err := s.store.GetSettings(r.Context())
	if err != nil {
		http.NotFound(w, r)
		return
	}
	s.render(w, r, http.StatusNotFound, templates.NotFoundPage(s.publicProps(w, r, settings, "Not found")))
}

func (s *Server) homePage(w http.ResponseWriter, r *http.Request) {
	var data templates.HomeData
	err := loadAll(r.Context(),
		func(ctx context.Context) (err error) {
			data.Settings, err = s.store.GetSettings(ctx)
			return err
		},
		func(ctx context.Context) (err error) {
			data.FeaturedProjects, err = s.store.ListFeaturedProjects(ctx)
			return err
		},
		func(ctx context.Context) (err error) {
			data.FeaturedPosts, err = s.store.ListFeaturedBlogPosts(ctx)
			return err
		},
		func(ctx context.Context) (err error) {
			data.Technologies, err = s.store.ListFeaturedTechnologies(ctx)
			return err
		},
	)
	if err != nil {
		s.pageError(w, r, err)
		return
	}

	s.render(w, r, http.StatusOK, templates.HomePage(s.publicProps(w, r, data.Settings, ""), data))
}

func (s *Server) aboutPage(w http.ResponseWriter, r *http.Request) {
	data := templates.AboutData{Now: s.now()}
	err := loadAll(r.Context(),
		func(ctx context.Context) (err error) {
			data.Settings, err = s.store.GetSettings(ctx)
			return err
		},
		func(ctx context.Context) (err error) {
			data.SkillGroups, err = s.store.ListSkillsGrouped(ctx)
			return err
		},
		func(ctx context.Context) (err error) {
			data.Technologies, err = s.store.ListFeaturedTechnologies(ctx)
			return err
		},
		func(ctx context.Context) (err error) {
			data.Certifications, err = s.store.ListFeaturedCertifications(ctx)
			return err
		},
	)
	if err != nil {
		s.pageError(w, r, err)
		return
	}

	s.render(w, r, http.StatusOK, templates.AboutPage(s.publicProps(w, r, data.Settings, "About"), data))
}

func (s *Server) projectsPage(w http.ResponseWriter, r *http.Request) {
	var settings *database.Settings
	var projects []database.Project
	err := loadAll(r.Context(),
		func(ctx context.Context) (err error) {
			settings, err = s.store.GetSettings(ctx)
			return err
		},
		func(ctx context.Context) (err error) {
			projects, err = s.store.ListProjects(ctx)
			return err
		},
	)
	if err != nil {
		s.pageError(w, r, err)
		return
	}

	var featured, others []database.Project
	for _, p := range projects {
		if p.Featured {
			featured = append(featured, p)
		} else {
			others = append(others, p)
		}
	}

	s.render(w, r, http.StatusOK, templates.ProjectsPage(s.publicProps(w, r, settings, "Projects"), featured, others))
}

func (s *Server) skillsPage(w http.ResponseWriter, r *http.Request) {
	var settings *database.Settings
	var groups []content.Group[database.Skill]
	var technologies []database.Technology
	err := loadAll(r.Context(),
		func(ctx context.Context) (err error) {
			settings, err = s.store.GetSettings(ctx)
			return err
		},
		func(ctx context.Context) (err error) {
			groups, err = s.store.ListSkillsGrouped(ctx)
			return err
		},
		func(ctx context.Context) (err error) {
			technologies, err = s.store.ListTechnologies(ctx)
			return err
		},
	)
	if err != nil {
		s.pageError(w, r, err)
		return
	}

	s.render(w, r, http.StatusOK, templates.SkillsPage(s.publicProps(w, r, settings, "Skills"), groups, technologies))
}

func (s *Server) certificationsPage(w http.ResponseWriter, r *http.Request) {
	var settings *database.Settings
	var certifications []database.Certification
	err := loadAll(r.Context(),
		func(ctx context.Context) (err error) {
			settings, err = s.store.GetSettings(ctx)
			return err
		},
		func(ctx context.Context) (err error) {
			certifications, err = s.store.ListCertifications(ctx)
			return err
		},
	)
	if err != nil {
		s.pageError(w, r, err)
		return
	}

	s.render(w, r, http.StatusOK, templates.CertificationsPage(
		s.publicProps(w, r, settings, "Certifications"),
		certificationsData(certifications, s.now()),
	))
}

func certificationsData(certifications []database.Certification, now time.Time) templates.CertificationsData {
	data := templates.CertificationsData{Items: make([]templates.CertificationView, 0, len(certifications))}
	for _, c := range certifications {
		status := c.StatusAt(now)
		data.Items = append(data.Items, templates.CertificationView{Certification: c, Status: status})
		if status.IsActive() {
			data.Active++
		}
		if status == content.StatusExpired {
			data.Expired++
		}
		if c.Featured {
			data.Featured++
		}
	}
	return data
}

func (s *Server) blogIndexPage(w http.ResponseWriter, r *http.Request) {
	var settings *database.Settings
	var posts []database.BlogPost
	err := loadAll(r.Context(),
		func(ctx context.Context) (err error) {
			settings, err = s.store.GetSettings(ctx)
			return err
		},
		func(ctx context.Context) (err error) {
			posts, err = s.store.ListBlogPosts(ctx, false)
			return err
		},
	)
	if err != nil {
		s.pageError(w, r, err)
		return
	}

	s.render(w, r, http.StatusOK, templates.BlogIndexPage(
		s.publicProps(w, r, settings, "Blog"),
		blogIndexData(posts, r.URL.Query().Get("q"), r.URL.Query().Get("tag")),
	))
}

func blogIndexData(posts []database.BlogPost, query, tag string) templates.BlogIndexData {
	data := templates.BlogIndexData{
		Query: strings.TrimSpace(query),
		Tag:   strings.TrimSpace(tag),
	}

	tagLists := make([][]string, 0, len(posts))
	for _, p := range posts {
		tagLists = append(tagLists, p.TagList())
	}
	data.Tags = content.DistinctTags(tagLists...)

	matches := content.FilterPosts(posts, data.Query, data.Tag)
	if data.Query != "" || data.Tag != "" {
		data.Recent = matches
		return data
	}

	for _, p := range matches {
		if p.Featured {
			data.Featured = append(data.Featured, p)
		} else {
			data.Recent = append(data.Recent, p)
		}
	}
	return data
}

func (s *Server) blogPostPage(w http.ResponseWriter, r *http.Request) {
	post, err := s.viewPost(r, chi.URLParam(r, "slug"))
	if err != nil {
		s.pageError(w, r, err)
		return
	}

	var settings *database.Settings
	var related []database.BlogPost
	err = loadAll(r.Context(),
		func(ctx context.Context) (err error) {
			settings, err = s.store.GetSettings(ctx)
			return err
		},
		func(ctx context.Context) (err error) {
			related, err = s.store.ListRelatedBlogPosts(ctx, post, constants.RELATED_POSTS_TO_SHOW)
			return err
		},
	)
	if err != nil {
		s.pageError(w, r, err)
		return
	}

	props := s.publicProps(w, r, settings, post.Title)
	if post.Excerpt != "" {
		props.Description = post.Excerpt
	}
	if tags := post.TagList(); len(tags) > 0 {
		props.Keywords = strings.Join(tags, ", ")
	}

	s.render(w, r, http.StatusOK, templates.BlogPostPage(props, *post, content.RenderMarkdown(post.Content), related))
}

func (s *Server) contactPage(w http.ResponseWriter, r *http.Request) {
	settings, err := s.store.GetSettings(r.Context())
	if err != nil {
		s.pageError(w, r, err)
		return
	}
	props := s.publicProps(w, r, settings, "Contact")
	s.render(w, r, http.StatusOK, templates.ContactPage(props, settings, templates.ContactValues{}, ""))
}

func (s *Server) submitContactPage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	values := templates.ContactValues{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Subject: r.PostFormValue("subject"),
		Message: r.PostFormValue("message"),
	}

	_, err := s.submitContact(r.Context(), database.ContactInput{
		Name:    values.Name,
		Email:   values.Email,
		Subject: values.Subject,
		Message: values.Message,
	})
	if err == nil {
		redirectWithFlash(w, r, "/contact", "success", "Message sent successfully! I'll get back to you soon.")
		return
	}

	status, errMsg := http.StatusBadRequest, contactRequiredMessage
	if !errors.Is(err, errContactInvalid) {
		s.requestLog(r).WithError(err).Error("failed to save contact message")
		status, errMsg = http.StatusInternalServerError, "Failed to send message. Please try again."
	}

	settings, serr := s.store.GetSettings(r.Context())
	if serr != nil {
		s.pageError(w, r, serr)
		return
	}
	props := s.publicProps(w, r, settings, "Contact")
	s.render(w, r, status, templates.ContactPage(props, settings, values, errMsg))
}

func (s *Server) gistsPage(w http.ResponseWriter, r *http.Request) {
	var settings *database.Settings
	var list []gists.Gist
	err := loadAll(r.Context(),
		func(ctx context.Context) (err error) {
			settings, err = s.store.GetSettings(ctx)
			return err
		},
		func(ctx context.Context) error {
			var err error
			list, err = s.gists.ListGists(ctx, s.cfg.Gists.Username)
			if err != nil {
				// the page still renders without gists
				s.requestLog(r).WithError(err).Warn("failed to fetch gists")
				list = nil
			}
			return nil
		},
	)
	if err != nil {
		s.pageError(w, r, err)
		return
	}

	props := s.publicProps(w, r, settings, "Gists")
	s.render(w, r, http.StatusOK, templates.GistsPage(props, list, gists.Summarize(list)))
}
