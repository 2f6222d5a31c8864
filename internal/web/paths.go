package web

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"
)

// StaticPath is one pre-renderable page path: a major city, optionally
// narrowed to a category.
type StaticPath struct {
	StateID      string
	CitySlug     string
	CategorySlug string
}

// URL returns the site-relative path for the page.
func (p StaticPath) URL() string {
	if p.CategorySlug == "" {
		return fmt.Sprintf("/%s/%s", strings.ToLower(p.StateID), p.CitySlug)
	}
	return fmt.Sprintf("/%s/%s/%s", strings.ToLower(p.StateID), p.CitySlug, p.CategorySlug)
}

// StaticPaths enumerates every pre-renderable page: one city page per
// major city plus the full city x category cross product.
func (s *Server) StaticPaths() ([]StaticPath, error) {
	cities, err := s.refData.MajorLocations(majorCityPopulation)
	if err != nil {
		return nil, err
	}
	categories := s.refData.Categories()

	paths := make([]StaticPath, 0, len(cities)*(len(categories)+1))
	for _, city := range cities {
		base := StaticPath{StateID: city.StateID, CitySlug: city.CitySlug()}
		paths = append(paths, base)
		for _, cat := range categories {
			paths = append(paths, StaticPath{StateID: city.StateID, CitySlug: base.CitySlug, CategorySlug: cat.Slug})
		}
	}
	return paths, nil
}

type sitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod"`
	ChangeFreq string  `xml:"changefreq"`
	Priority   float64 `xml:"priority"`
}

type sitemapSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// WriteSitemap writes the sitemap for the whole site: the fixed pages,
// every category page and the pre-rendered city pages.
func (s *Server) WriteSitemap(w io.Writer) error {
	paths, err := s.StaticPaths()
	if err != nil {
		return err
	}

	today := time.Now().UTC().Format("2006-01-02")
	entry := func(path string, freq string, priority float64) sitemapURL {
		return sitemapURL{
			Loc:        s.siteURL + path,
			LastMod:    today,
			ChangeFreq: freq,
			Priority:   priority,
		}
	}

	set := sitemapSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	set.URLs = append(set.URLs,
		entry("/", "daily", 1.0),
		entry("/locations", "weekly", 0.8),
		entry("/categories", "weekly", 0.8),
		entry("/search", "weekly", 0.7),
		entry("/vendors/register", "monthly", 0.5),
	)
	for _, cat := range s.refData.Categories() {
		set.URLs = append(set.URLs, entry("/categories/"+cat.Slug, "weekly", 0.7))
	}
	for _, p := range paths {
		priority := 0.9
		if p.CategorySlug != "" {
			priority = 0.6
		}
		set.URLs = append(set.URLs, entry(p.URL(), "weekly", priority))
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("encode sitemap: %w", err)
	}
	return nil
}
