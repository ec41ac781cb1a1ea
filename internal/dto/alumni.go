package dto

import "github.com/alumnet-dev/alumnet-api/internal/analytics"

// PositionFacetView summarises one view of the job-position facets.
type PositionFacetView struct {
	Total           int                 `json:"total"`
	EmploymentTypes map[string]int      `json:"employmentTypes"`
	JobTypes        map[string]int      `json:"jobTypes"`
	TopTitles       []analytics.TopItem `json:"topTitles"`
	TopLocations    []analytics.TopItem `json:"topLocations"`
	TopCompanies    []analytics.TopItem `json:"topCompanies"`
}

// PositionFacets pairs the all-positions view with the ongoing-only view.
type PositionFacets struct {
	All     PositionFacetView `json:"all"`
	Ongoing PositionFacetView `json:"ongoing"`
}

// EducationFacetView summarises one view of the education facets.
type EducationFacetView struct {
	Total        int                 `json:"total"`
	Degrees      map[string]int      `json:"degrees"`
	TopFields    []analytics.TopItem `json:"topFields"`
	TopSchools   []analytics.TopItem `json:"topSchools"`
	TopLocations []analytics.TopItem `json:"topLocations"`
}

// EducationFacets pairs the all-education view with the ongoing-only view.
type EducationFacets struct {
	All     EducationFacetView `json:"all"`
	Ongoing EducationFacetView `json:"ongoing"`
}

// LocationAnalytics ranks where verified alumni live.
type LocationAnalytics struct {
	TopCities    []analytics.TopItem `json:"topCities"`
	TopCountries []analytics.TopItem `json:"topCountries"`
}

// AlumniAnalytics is the /admin/alumni-analytics payload.
type AlumniAnalytics struct {
	Batches     []BatchAnalytics      `json:"batches"`
	Departments []DepartmentAnalytics `json:"departments"`
	Jobs        PositionFacets        `json:"jobs"`
	Education   EducationFacets       `json:"education"`
	Locations   LocationAnalytics     `json:"locations"`
}
