package site

import (
	"encoding/xml"
	"net/http"
	"strings"
	"time"
)

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

var sitemapPages = []struct {
	path       string
	changeFreq string
	priority   string
}{
	{"/", "weekly", "1.0"},
	{"/about", "monthly", "0.8"},
	{"/projects", "weekly", "0.8"},
	{"/skills", "monthly", "0.6"},
	{"/certifications", "monthly", "0.6"},
	{"/blog", "daily", "0.9"},
	{"/gists", "weekly", "0.5"},
	{"/contact", "yearly", "0.5"},
}

func (s *Server) sitemap(w http.ResponseWriter, r *http.Request) {
	posts, err := s.store.ListBlogPosts(r.Context(), false)
	if err != nil {
		s.pageError(w, r, err)
		return
	}

	base := strings.TrimRight(s.cfg.Server.PublicURL, "/")
	set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, p := range sitemapPages {
		set.URLs = append(set.URLs, sitemapURL{Loc: base + p.path, ChangeFreq: p.changeFreq, Priority: p.priority})
	}
	for _, post := range posts {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        base + "/blog/" + post.Slug,
			LastMod:    post.UpdatedAt.UTC().Format(time.DateOnly),
			ChangeFreq: "monthly",
			Priority:   "0.7",
		})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		s.pageError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write([]byte(xml.Header))
	_, _ = w.Write(out)
}
