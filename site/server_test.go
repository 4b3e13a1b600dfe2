package site

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"portfolio/config"
	"portfolio/constants"
	"portfolio/database"
	"portfolio/gists"
	"portfolio/uploads"
)

type fakeGists struct {
	list []gists.Gist
	err  error
}

func (f fakeGists) ListGists(ctx context.Context, username string) ([]gists.Gist, error) {
	return f.list, f.err
}

type testEnv struct {
	server  *Server
	handler http.Handler
	store   *database.Store
	uploads *uploads.Store
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store, err := database.Open("sqlite", "file::memory:", false)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := store.Migrate(); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := &config.Config{}
	cfg.Server.PublicURL = "https://example.com"
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Gists.Username = constants.GISTS_DEFAULT_USER

	files := uploads.NewStore(t.TempDir(), constants.MAX_UPLOAD_SIZE)

	server, err := NewServer(Deps{
		Config:  cfg,
		Store:   store,
		Uploads: files,
		Gists:   fakeGists{},
		Logger:  logger,
	})
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}

	return &testEnv{server: server, handler: server.Router(), store: store, uploads: files}
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) bearer(t *testing.T) string {
	t.Helper()

	user, err := e.store.CreateAdminUser(context.Background(), "admin@example.com", "Admin", "secret-password")
	if err != nil {
		t.Fatalf("CreateAdminUser: %v", err)
	}
	token, _, err := e.server.issueAPIToken(user)
	if err != nil {
		t.Fatalf("issueAPIToken: %v", err)
	}
	return "Bearer " + token
}

func jsonRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func formRequest(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("Failed to decode response %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestAPIWriteRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(jsonRequest(http.MethodPost, "/api/projects", map[string]any{"title": "x", "description": "y"}))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	body := decodeBody[map[string]string](t, rec)
	if body["error"] != "Unauthorized" {
		t.Errorf("error = %q", body["error"])
	}
}

func TestDeleteMissingReturnsNotFound(t *testing.T) {
	env := newTestEnv(t)
	auth := env.bearer(t)

	cases := map[string]string{
		"/api/projects/999":       "Project not found",
		"/api/blog/999":           "Post not found",
		"/api/technologies/999":   "Technology not found",
		"/api/skills/999":         "Skill not found",
		"/api/certifications/999": "Certification not found",
	}
	for target, want := range cases {
		req := jsonRequest(http.MethodDelete, target, nil)
		req.Header.Set("Authorization", auth)
		rec := env.do(req)
		if rec.Code != http.StatusNotFound {
			t.Errorf("DELETE %s status = %d, want 404", target, rec.Code)
			continue
		}
		if got := decodeBody[map[string]string](t, rec)["error"]; got != want {
			t.Errorf("DELETE %s error = %q, want %q", target, got, want)
		}
	}
}

func TestProjectCRUD(t *testing.T) {
	env := newTestEnv(t)
	auth := env.bearer(t)

	req := jsonRequest(http.MethodPost, "/api/projects", map[string]any{
		"title":        "Portfolio",
		"description":  "This site",
		"technologies": []string{"Go", "SQLite"},
		"featured":     true,
	})
	req.Header.Set("Authorization", auth)
	rec := env.do(req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", rec.Code, rec.Body.String())
	}
	created := decodeBody[database.Project](t, rec)

	req = jsonRequest(http.MethodPut, "/api/projects/"+itoa(created.ID), map[string]any{"liveUrl": "https://example.com"})
	req.Header.Set("Authorization", auth)
	rec = env.do(req)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d: %s", rec.Code, rec.Body.String())
	}
	updated := decodeBody[database.Project](t, rec)
	if updated.Title != "Portfolio" || updated.LiveURL != "https://example.com" {
		t.Errorf("partial update lost fields: %+v", updated)
	}

	req = jsonRequest(http.MethodPut, "/api/projects/"+itoa(created.ID), map[string]any{"title": ""})
	req.Header.Set("Authorization", auth)
	rec = env.do(req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("blank title status = %d, want 400", rec.Code)
	}
	if fields := decodeBody[validationResponse](t, rec).Fields; fields["title"] == "" {
		t.Errorf("expected a title field error, got %v", fields)
	}

	rec = env.do(httptest.NewRequest(http.MethodGet, "/api/projects/"+itoa(created.ID), nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}

	req = jsonRequest(http.MethodDelete, "/api/projects/"+itoa(created.ID), nil)
	req.Header.Set("Authorization", auth)
	rec = env.do(req)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d", rec.Code)
	}
	if msg := decodeBody[map[string]string](t, rec)["message"]; msg != "Project deleted" {
		t.Errorf("delete message = %q", msg)
	}

	rec = env.do(httptest.NewRequest(http.MethodGet, "/api/projects/"+itoa(created.ID), nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", rec.Code)
	}
}

func TestFeaturedProjectsOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, in := range []database.ProjectInput{
		{Title: "Order two", Description: "d", Featured: true, Order: 2},
		{Title: "Order one", Description: "d", Featured: true, Order: 1},
	} {
		if _, err := env.store.CreateProject(ctx, in); err != nil {
			t.Fatalf("CreateProject: %v", err)
		}
	}

	for _, target := range []string{"/api/projects", "/api/projects/featured"} {
		rec := env.do(httptest.NewRequest(http.MethodGet, target, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d", target, rec.Code)
		}
		projects := decodeBody[[]database.Project](t, rec)
		if len(projects) != 2 || projects[0].Title != "Order one" {
			t.Errorf("GET %s returned %+v", target, projects)
		}
	}
}

func TestCertificationRequiresIssueDate(t *testing.T) {
	env := newTestEnv(t)
	auth := env.bearer(t)

	req := jsonRequest(http.MethodPost, "/api/certifications", map[string]any{"name": "CKA", "issuer": "CNCF"})
	req.Header.Set("Authorization", auth)
	if rec := env.do(req); rec.Code != http.StatusBadRequest {
		t.Fatalf("missing issueDate status = %d, want 400", rec.Code)
	}

	req = jsonRequest(http.MethodPost, "/api/certifications", map[string]any{
		"name":       "CKA",
		"issuer":     "CNCF",
		"issueDate":  "2024-01-15",
		"expiryDate": "",
	})
	req.Header.Set("Authorization", auth)
	rec := env.do(req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", rec.Code, rec.Body.String())
	}
	cert := decodeBody[database.Certification](t, rec)
	if cert.ExpiryDate != nil {
		t.Errorf("expected no expiry date, got %v", cert.ExpiryDate)
	}
}

func TestContactRequiresFields(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(jsonRequest(http.MethodPost, "/api/contact", map[string]string{
		"name":    "Ada",
		"email":   "ada@example.com",
		"message": "   ",
	}))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := decodeBody[map[string]string](t, rec)["error"]; got != contactRequiredMessage {
		t.Errorf("error = %q", got)
	}

	contacts, err := env.store.ListContacts(context.Background())
	if err != nil {
		t.Fatalf("ListContacts: %v", err)
	}
	if len(contacts) != 0 {
		t.Errorf("expected no stored contacts, got %d", len(contacts))
	}
}

func TestContactCreated(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(jsonRequest(http.MethodPost, "/api/contact", map[string]string{
		"name":    "Ada",
		"email":   "ada@example.com",
		"subject": "Hello",
		"message": "Nice site",
	}))
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody[map[string]any](t, rec)
	if body["message"] != "Message sent successfully" || body["id"] == nil {
		t.Errorf("unexpected body %v", body)
	}

	// the inbox is admin only
	if rec := env.do(httptest.NewRequest(http.MethodGet, "/api/contact", nil)); rec.Code != http.StatusUnauthorized {
		t.Errorf("inbox without auth status = %d, want 401", rec.Code)
	}
}

func TestBlogPageCountsViews(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.store.CreateBlogPost(ctx, database.BlogPostInput{
		Title:     "My Post",
		Excerpt:   "An excerpt",
		Content:   "Some *markdown* content",
		Tags:      []string{"go"},
		Published: true,
	}); err != nil {
		t.Fatalf("CreateBlogPost: %v", err)
	}

	for i := 0; i < 2; i++ {
		rec := env.do(httptest.NewRequest(http.MethodGet, "/blog/my-post", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("GET /blog/my-post status = %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "<em>markdown</em>") {
			t.Errorf("expected rendered markdown in page")
		}
	}

	post, err := env.store.GetBlogPostBySlug(ctx, "my-post")
	if err != nil {
		t.Fatalf("GetBlogPostBySlug: %v", err)
	}
	if post.Views != 2 {
		t.Errorf("views = %d, want 2", post.Views)
	}
}

func TestDraftsAreHidden(t *testing.T) {
	env := newTestEnv(t)
	auth := env.bearer(t)

	if _, err := env.store.CreateBlogPost(context.Background(), database.BlogPostInput{
		Title:   "Work in progress",
		Excerpt: "e",
		Content: "c",
	}); err != nil {
		t.Fatalf("CreateBlogPost: %v", err)
	}

	if rec := env.do(httptest.NewRequest(http.MethodGet, "/api/blog/slug/work-in-progress", nil)); rec.Code != http.StatusNotFound {
		t.Errorf("anonymous draft status = %d, want 404", rec.Code)
	}
	if rec := env.do(httptest.NewRequest(http.MethodGet, "/blog/work-in-progress", nil)); rec.Code != http.StatusNotFound {
		t.Errorf("anonymous draft page status = %d, want 404", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/blog?drafts=true", nil)
	req.Header.Set("Authorization", auth)
	rec := env.do(req)
	if posts := decodeBody[[]database.BlogPost](t, rec); len(posts) != 1 {
		t.Errorf("admin drafts listing returned %d posts", len(posts))
	}

	rec = env.do(httptest.NewRequest(http.MethodGet, "/api/blog?drafts=true", nil))
	if posts := decodeBody[[]database.BlogPost](t, rec); len(posts) != 0 {
		t.Errorf("anonymous drafts listing returned %d posts", len(posts))
	}
}

func multipartUpload(t *testing.T, target, field, filename string, size int) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := part.Write(bytes.Repeat([]byte("a"), size)); err != nil {
		t.Fatalf("write part: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadTooLarge(t *testing.T) {
	env := newTestEnv(t)
	auth := env.bearer(t)

	req := multipartUpload(t, "/api/upload", "file", "big.bin", 11<<20)
	req.Header.Set("Authorization", auth)
	rec := env.do(req)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413", rec.Code)
	}
	if got := decodeBody[map[string]string](t, rec)["error"]; got != uploads.ErrFileTooLarge.Error() {
		t.Errorf("error = %q", got)
	}

	entries, err := os.ReadDir(env.uploads.Dir())
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no files written, found %d", len(entries))
	}
}

func TestUploadStoresFile(t *testing.T) {
	env := newTestEnv(t)
	auth := env.bearer(t)

	req := multipartUpload(t, "/api/upload", "file", "my photo.png", 1024)
	req.Header.Set("Authorization", auth)
	rec := env.do(req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeBody[map[string]any](t, rec)
	filename, _ := body["filename"].(string)
	if !strings.HasSuffix(filename, "-my_photo.png") {
		t.Errorf("filename = %q", filename)
	}
	if body["url"] != constants.UPLOADS_URL_PREFIX+"/"+filename {
		t.Errorf("url = %v", body["url"])
	}

	rec = env.do(httptest.NewRequest(http.MethodGet, constants.UPLOADS_URL_PREFIX+"/"+filename, nil))
	if rec.Code != http.StatusOK || rec.Body.Len() != 1024 {
		t.Errorf("serving uploaded file: status %d, %d bytes", rec.Code, rec.Body.Len())
	}
}

func TestSessionLogin(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.store.CreateAdminUser(context.Background(), "admin@example.com", "Admin", "secret-password"); err != nil {
		t.Fatalf("CreateAdminUser: %v", err)
	}

	rec := env.do(jsonRequest(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "admin@example.com",
		"password": "wrong",
	}))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad password status = %d, want 401", rec.Code)
	}

	rec = env.do(jsonRequest(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "admin@example.com",
		"password": "secret-password",
	}))
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d", rec.Code)
	}
	var session *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == constants.SESSION_COOKIE_NAME {
			session = c
		}
	}
	if session == nil || session.Value == "" {
		t.Fatal("expected a session cookie")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	req.AddCookie(session)
	rec = env.do(req)
	if got := decodeBody[sessionResponse](t, rec); !got.Authenticated || got.Email != "admin@example.com" {
		t.Errorf("session = %+v", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(session)
	if rec := env.do(req); rec.Code != http.StatusOK {
		t.Errorf("dashboard with session status = %d", rec.Code)
	}
}

func TestInvalidBearerToken(t *testing.T) {
	env := newTestEnv(t)

	req := jsonRequest(http.MethodPost, "/api/projects", map[string]any{"title": "x", "description": "y"})
	req.Header.Set("Authorization", "Bearer not-a-token")
	if rec := env.do(req); rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAdminRedirectsToLogin(t *testing.T) {
	env := newTestEnv(t)

	for _, target := range []string{"/admin", "/admin/projects", "/admin/settings"} {
		rec := env.do(httptest.NewRequest(http.MethodGet, target, nil))
		if rec.Code != http.StatusSeeOther {
			t.Errorf("GET %s status = %d, want 303", target, rec.Code)
			continue
		}
		if loc := rec.Header().Get("Location"); loc != "/admin/login" {
			t.Errorf("GET %s redirected to %q", target, loc)
		}
	}
}

func TestMaintenanceMode(t *testing.T) {
	env := newTestEnv(t)
	auth := env.bearer(t)

	on := true
	if _, err := env.store.UpdateSettings(context.Background(), database.SettingsPatch{MaintenanceMode: &on}); err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}

	if rec := env.do(httptest.NewRequest(http.MethodGet, "/", nil)); rec.Code != http.StatusServiceUnavailable {
		t.Errorf("anonymous home status = %d, want 503", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", auth)
	if rec := env.do(req); rec.Code != http.StatusOK {
		t.Errorf("admin home status = %d, want 200", rec.Code)
	}
}

func TestPublicPagesRender(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.store.Seed(context.Background()); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	for _, target := range []string{"/", "/about", "/projects", "/skills", "/certifications", "/blog", "/blog?tag=React", "/contact", "/gists"} {
		rec := env.do(httptest.NewRequest(http.MethodGet, target, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s status = %d", target, rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
			t.Errorf("GET %s content type = %q", target, ct)
		}
	}

	if rec := env.do(httptest.NewRequest(http.MethodGet, "/no-such-page", nil)); rec.Code != http.StatusNotFound {
		t.Errorf("unknown page status = %d, want 404", rec.Code)
	}
}

func TestGistsPageSurvivesAPIFailure(t *testing.T) {
	env := newTestEnv(t)
	env.server.gists = fakeGists{err: errors.New("GitHub API error: 403")}

	rec := env.do(httptest.NewRequest(http.MethodGet, "/gists", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No gists to show right now.") {
		t.Error("expected the empty gists message")
	}

	if rec := env.do(httptest.NewRequest(http.MethodGet, "/api/gists", nil)); rec.Code != http.StatusInternalServerError {
		t.Errorf("api status = %d, want 500", rec.Code)
	}
}

func TestContactFormPost(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(formRequest("/contact", url.Values{"name": {"Ada"}, "email": {"ada@example.com"}}))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("incomplete form status = %d, want 400", rec.Code)
	}

	rec = env.do(formRequest("/contact", url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"message": {"Hello there"},
	}))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}

	unread, err := env.store.CountUnreadContacts(context.Background())
	if err != nil {
		t.Fatalf("CountUnreadContacts: %v", err)
	}
	if unread != 1 {
		t.Errorf("unread = %d, want 1", unread)
	}
}

func TestSitemap(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.store.CreateBlogPost(context.Background(), database.BlogPostInput{
		Title: "Hello World", Excerpt: "e", Content: "c", Published: true,
	}); err != nil {
		t.Fatalf("CreateBlogPost: %v", err)
	}

	rec := env.do(httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"<loc>https://example.com/</loc>", "<loc>https://example.com/blog/hello-world</loc>"} {
		if !strings.Contains(body, want) {
			t.Errorf("sitemap missing %s", want)
		}
	}
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
