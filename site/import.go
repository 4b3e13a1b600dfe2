package site

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/sirupsen/logrus"

	"portfolio/constants"
	"portfolio/content"
	"portfolio/database"
	"portfolio/templates"
)

const maxImportRequestSize = 32 << 20

func (s *Server) adminImportPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, templates.ImportPage(s.adminProps(w, r, "Import posts"), nil))
}

func (s *Server) adminImportPosts(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportRequestSize)
	if err := r.ParseMultipartForm(maxImportRequestSize); err != nil {
		redirectWithFlash(w, r, "/admin/blog/import", "error", "Failed to read the uploaded files")
		return
	}
	defer r.MultipartForm.RemoveAll()

	files := r.MultipartForm.File["posts"]
	if len(files) == 0 {
		redirectWithFlash(w, r, "/admin/blog/import", "error", "No files provided")
		return
	}

	overwriteExisting := r.FormValue("overwriteExisting") == "on"
	result := s.importPosts(r.Context(), files, overwriteExisting)

	s.requestLog(r).WithFields(logrus.Fields{
		"imported": len(result.Imported),
		"skipped":  len(result.Skipped),
		"failed":   len(result.Failed),
	}).Info("imported blog posts")

	s.render(w, r, http.StatusOK, templates.ImportPage(s.adminProps(w, r, "Import posts"), &result))
}

// importPosts creates a post per markdown file. A post whose slug already
// exists is skipped unless overwriteExisting is set, in which case it is
// updated in place.
func (s *Server) importPosts(ctx context.Context, files []*multipart.FileHeader, overwriteExisting bool) templates.ImportResult {
	var result templates.ImportResult
	for _, fh := range files {
		post, err := readImportFile(fh)
		if err != nil {
			result.Failed = append(result.Failed, err.Error())
			continue
		}

		in := database.BlogPostInput{
			Title:     post.Title,
			Slug:      post.Slug,
			Excerpt:   post.Excerpt,
			Content:   post.Content,
			Tags:      post.Tags,
			Published: post.Published,
			Featured:  post.Featured,
			Image:     post.Image,
		}
		if err := s.validate.Struct(in); err != nil {
			result.Failed = append(result.Failed, fmt.Sprintf("%s: %s", fh.Filename, validationSummary(err)))
			continue
		}

		existing, err := s.store.GetBlogPostBySlug(ctx, post.Slug)
		switch {
		case errors.Is(err, database.ErrNotFound):
			_, err = s.store.CreateBlogPost(ctx, in)
		case err != nil:
		case !overwriteExisting:
			result.Skipped = append(result.Skipped, fmt.Sprintf("%s (%s already exists)", fh.Filename, post.Slug))
			continue
		default:
			_, err = s.store.UpdateBlogPost(ctx, existing.ID, in.Patch())
		}
		if err != nil {
			result.Failed = append(result.Failed, fmt.Sprintf("%s: %v", fh.Filename, err))
			continue
		}
		result.Imported = append(result.Imported, fmt.Sprintf("%s (/blog/%s)", post.Title, post.Slug))
	}
	return result
}

func readImportFile(fh *multipart.FileHeader) (content.ImportedPost, error) {
	if fh.Size > constants.MAX_IMPORT_FILE_LEN {
		return content.ImportedPost{}, fmt.Errorf("%s: file is larger than %d bytes", fh.Filename, constants.MAX_IMPORT_FILE_LEN)
	}

	f, err := fh.Open()
	if err != nil {
		return content.ImportedPost{}, fmt.Errorf("%s: %w", fh.Filename, err)
	}
	defer f.Close()

	return content.ParseMarkdownPost(io.LimitReader(f, constants.MAX_IMPORT_FILE_LEN), fh.Filename)
}
