package web

import (
	"fmt"
	"net/http"
	"strconv"

	"weddingdir/internal/placesapi"
	"weddingdir/internal/refdata"
	"weddingdir/internal/reviews"
	"weddingdir/internal/searchservice"
)

type homeData struct {
	Categories  []refdata.Category
	MajorCities []refdata.Location
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	major, err := s.refData.MajorLocations(majorCityPopulation)
	if err != nil {
		s.renderError(w)
		return
	}
	s.render(w, http.StatusOK, "home.html", SiteName, SiteDescription, homeData{
		Categories:  s.refData.Categories(),
		MajorCities: major,
	})
}

func (s *Server) handleLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := s.refData.Locations()
	if err != nil {
		s.renderError(w)
		return
	}
	s.render(w, http.StatusOK, "locations.html", "Wedding Vendors by Location",
		"Browse wedding vendors by city and state.", locations)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "categories.html", "Wedding Vendor Categories",
		"Browse wedding vendors by category.", s.refData.Categories())
}

type categoryData struct {
	Category    refdata.Category
	MajorCities []refdata.Location
}

func (s *Server) handleCategory(w http.ResponseWriter, r *http.Request) {
	category, err := s.refData.CategoryBySlug(r.PathValue("slug"))
	if err != nil {
		s.renderNotFound(w)
		return
	}
	major, err := s.refData.MajorLocations(majorCityPopulation)
	if err != nil {
		s.renderError(w)
		return
	}
	s.render(w, http.StatusOK, "category.html", category.Name+" - "+SiteName, category.Description, categoryData{
		Category:    category,
		MajorCities: major,
	})
}

type cityData struct {
	Location   refdata.Location
	Categories []refdata.Category
	Result     searchservice.SearchResult
}

func (s *Server) handleCity(w http.ResponseWriter, r *http.Request) {
	loc, err := s.refData.LocationByPath(r.PathValue("state"), r.PathValue("city"))
	if err != nil {
		s.renderNotFound(w)
		return
	}

	result := s.search.SearchAllVendors(r.Context(), "", loc, searchservice.Options{Limit: itemsPerPage})

	title := fmt.Sprintf("Wedding Vendors in %s, %s", loc.City, loc.StateName)
	description := fmt.Sprintf("Find and book the best wedding vendors in %s, %s. Browse reviews, compare prices, and contact vendors directly.", loc.City, loc.StateName)
	s.render(w, http.StatusOK, "city.html", title, description, cityData{
		Location:   loc,
		Categories: s.refData.Categories(),
		Result:     result,
	})
}

type cityCategoryData struct {
	Location refdata.Location
	Category refdata.Category
	Result   searchservice.SearchResult
}

func (s *Server) handleCityCategory(w http.ResponseWriter, r *http.Request) {
	loc, err := s.refData.LocationByPath(r.PathValue("state"), r.PathValue("city"))
	if err != nil {
		s.renderNotFound(w)
		return
	}
	category, err := s.refData.CategoryBySlug(r.PathValue("category"))
	if err != nil {
		s.renderNotFound(w)
		return
	}

	result := s.search.SearchVendorsByCategory(r.Context(), category.Name, loc, searchservice.Options{Limit: itemsPerPage})

	title := fmt.Sprintf("%s in %s, %s - %s", category.Name, loc.City, loc.StateName, SiteName)
	description := fmt.Sprintf("Find the best %s in %s, %s. Compare reviews, prices, and availability of local wedding professionals.", category.Name, loc.City, loc.StateName)
	s.render(w, http.StatusOK, "citycategory.html", title, description, cityCategoryData{
		Location: loc,
		Category: category,
		Result:   result,
	})
}

type searchData struct {
	Query      string
	Location   string
	Category   string
	Categories []refdata.Category
	Result     *searchservice.SearchResult
	NotFound   bool
	PrevPage   int
	NextPage   int
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	data := searchData{
		Query:      query.Get("q"),
		Location:   query.Get("location"),
		Category:   query.Get("category"),
		Categories: s.refData.Categories(),
	}

	if data.Location != "" {
		loc, err := s.refData.ResolveLocation(data.Location)
		if err != nil {
			data.NotFound = true
		} else {
			pageNum, _ := strconv.Atoi(query.Get("page"))
			result := s.search.SearchAllVendors(r.Context(), data.Query, loc, searchservice.Options{
				Page:     pageNum,
				Limit:    itemsPerPage,
				Category: data.Category,
			})
			data.Result = &result
			if result.Page > 1 {
				data.PrevPage = result.Page - 1
			}
			if result.Page < result.PageCount {
				data.NextPage = result.Page + 1
			}
		}
	}

	s.render(w, http.StatusOK, "search.html", "Search Wedding Vendors",
		"Search for wedding vendors by keyword, location and category.", data)
}

type vendorData struct {
	Vendor  placesapi.Vendor
	Reviews []reviews.Review
}

func (s *Server) handleVendor(w http.ResponseWriter, r *http.Request) {
	vendorID := r.PathValue("id")

	locations, err := s.refData.Locations()
	if err != nil || len(locations) == 0 {
		s.renderError(w)
		return
	}
	loc := locations[0]
	if locationQuery := r.URL.Query().Get("location"); locationQuery != "" {
		if resolved, err := s.refData.ResolveLocation(locationQuery); err == nil {
			loc = resolved
		}
	}

	vendor, err := s.vendors.VendorDetails(r.Context(), vendorID, loc)
	if err != nil {
		s.renderNotFound(w)
		return
	}

	s.render(w, http.StatusOK, "vendor.html", vendor.Name+" - "+SiteName, vendor.Description, vendorData{
		Vendor:  *vendor,
		Reviews: s.reviews.List(vendorID),
	})
}

var weekDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

type registerFormData struct {
	Categories []refdata.Category
	Days       []string
}

func (s *Server) handleRegisterForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "register.html", "Register Your Business",
		"List your wedding business in the directory.", registerFormData{
			Categories: s.refData.Categories(),
			Days:       weekDays,
		})
}

func (s *Server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	if err := s.WriteSitemap(w); err != nil {
		s.log.Error().Err(err).Msg("sitemap generation failed")
	}
}
