// Package refdata supplies the fixed location and category datasets the
// directory is built from. Both sets load once and are cached for the
// life of the process.
package refdata

import (
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"weddingdir/internal/slug"
)

//go:embed us-cities.csv
var embeddedCities []byte

// ErrLocationNotFound is returned when no location matches a lookup.
var ErrLocationNotFound = errors.New("location not found")

// ErrCategoryNotFound is returned when no category matches a slug.
var ErrCategoryNotFound = errors.New("category not found")

// Location is one row of the city reference dataset.
type Location struct {
	City       string  `json:"city"`
	CityASCII  string  `json:"city_ascii"`
	StateID    string  `json:"state_id"`
	StateName  string  `json:"state_name"`
	CountyName string  `json:"county_name"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	Population int     `json:"population"`
	Density    int     `json:"density"`
	Timezone   string  `json:"timezone"`
	Zips       string  `json:"zips"`
}

// Display returns the human-readable "City, State" form used in
// provider queries and page copy.
func (l Location) Display() string {
	return l.City + ", " + l.StateName
}

// CitySlug returns the URL path segment for the city: lowercase with
// whitespace runs collapsed to hyphens.
func (l Location) CitySlug() string {
	return CitySlug(l.CityASCII)
}

// CitySlug normalizes a city name the same way location page paths do.
func CitySlug(city string) string {
	return strings.Join(strings.Fields(strings.ToLower(city)), "-")
}

// Category is one entry of the vendor category table.
type Category struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Provider loads and memoizes the reference datasets. The zero value is
// not usable; construct with New.
type Provider struct {
	dataDir string

	locOnce   sync.Once
	locations []Location
	locErr    error

	catOnce    sync.Once
	categories []Category
}

// New returns a provider that reads us-cities.csv from dataDir when the
// file exists and falls back to the embedded dataset otherwise.
func New(dataDir string) *Provider {
	return &Provider{dataDir: dataDir}
}

// Locations returns the full city dataset in file order. The data is
// read once; later calls return the cached slice.
func (p *Provider) Locations() ([]Location, error) {
	p.locOnce.Do(func() {
		p.locations, p.locErr = p.loadLocations()
	})
	return p.locations, p.locErr
}

// Categories returns the vendor category table with slugs derived from
// the category names.
func (p *Provider) Categories() []Category {
	p.catOnce.Do(func() {
		cats := make([]Category, len(categoryTable))
		copy(cats, categoryTable)
		for i := range cats {
			cats[i].Slug = slug.From(cats[i].Name)
		}
		p.categories = cats
	})
	return p.categories
}

// CategoryBySlug resolves a category page slug.
func (p *Provider) CategoryBySlug(s string) (Category, error) {
	for _, c := range p.Categories() {
		if c.Slug == s {
			return c, nil
		}
	}
	return Category{}, fmt.Errorf("%w: %q", ErrCategoryNotFound, s)
}

// ResolveLocation matches a free-form location query such as "New York"
// or "new york, ny". A state part, when present, must match the state
// code or state name.
func (p *Provider) ResolveLocation(query string) (Location, error) {
	city, state := splitLocationQuery(query)
	if city == "" {
		return Location{}, fmt.Errorf("%w: empty query", ErrLocationNotFound)
	}

	locations, err := p.Locations()
	if err != nil {
		return Location{}, err
	}
	for _, l := range locations {
		if !strings.EqualFold(l.City, city) && !strings.EqualFold(l.CityASCII, city) {
			continue
		}
		if state != "" && !strings.EqualFold(l.StateID, state) && !strings.EqualFold(l.StateName, state) {
			continue
		}
		return l, nil
	}
	return Location{}, fmt.Errorf("%w: %q", ErrLocationNotFound, query)
}

// LocationByPath resolves the /{state}/{city} page pair, e.g. "ny" and
// "new-york".
func (p *Provider) LocationByPath(stateID, citySlug string) (Location, error) {
	locations, err := p.Locations()
	if err != nil {
		return Location{}, err
	}
	for _, l := range locations {
		if strings.EqualFold(l.StateID, stateID) && l.CitySlug() == citySlug {
			return l, nil
		}
	}
	return Location{}, fmt.Errorf("%w: %s/%s", ErrLocationNotFound, stateID, citySlug)
}

// MajorLocations returns locations with population above the threshold,
// in dataset order. Pre-rendered pages are generated for these only.
func (p *Provider) MajorLocations(minPopulation int) ([]Location, error) {
	locations, err := p.Locations()
	if err != nil {
		return nil, err
	}
	var major []Location
	for _, l := range locations {
		if l.Population > minPopulation {
			major = append(major, l)
		}
	}
	return major, nil
}

func (p *Provider) loadLocations() ([]Location, error) {
	if p.dataDir != "" {
		path := filepath.Join(p.dataDir, "us-cities.csv")
		f, err := os.Open(path)
		if err == nil {
			defer f.Close()
			locations, err := parseLocations(f)
			if err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
			return locations, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
	}

	locations, err := parseLocations(strings.NewReader(string(embeddedCities)))
	if err != nil {
		return nil, fmt.Errorf("parse embedded city data: %w", err)
	}
	return locations, nil
}

func parseLocations(r io.Reader) ([]Location, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 11

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if header[0] != "city" {
		return nil, fmt.Errorf("unexpected header %q", header[0])
	}

	var locations []Location
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		loc, err := locationFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("row %q: %w", rec[0], err)
		}
		locations = append(locations, loc)
	}
	if len(locations) == 0 {
		return nil, errors.New("no locations in dataset")
	}
	return locations, nil
}

func locationFromRecord(rec []string) (Location, error) {
	lat, err := strconv.ParseFloat(rec[5], 64)
	if err != nil {
		return Location{}, fmt.Errorf("lat: %w", err)
	}
	lng, err := strconv.ParseFloat(rec[6], 64)
	if err != nil {
		return Location{}, fmt.Errorf("lng: %w", err)
	}
	population, err := strconv.Atoi(rec[7])
	if err != nil {
		return Location{}, fmt.Errorf("population: %w", err)
	}
	density, err := strconv.Atoi(rec[8])
	if err != nil {
		return Location{}, fmt.Errorf("density: %w", err)
	}

	return Location{
		City:       rec[0],
		CityASCII:  rec[1],
		StateID:    rec[2],
		StateName:  rec[3],
		CountyName: rec[4],
		Lat:        lat,
		Lng:        lng,
		Population: population,
		Density:    density,
		Timezone:   rec[9],
		Zips:       rec[10],
	}, nil
}

func splitLocationQuery(query string) (city, state string) {
	city, state, found := strings.Cut(query, ",")
	city = strings.TrimSpace(city)
	if found {
		state = strings.TrimSpace(state)
	} else {
		state = ""
	}
	return city, state
}
