package models

// RoleStat is one role's slice of a partition rollup row, carrying the
// partition total alongside the count of records created recently.
type RoleStat struct {
	Role   UserRole `bson:"role"`
	Recent int      `bson:"count"`
	Total  int      `bson:"total"`
}

// BatchRoleStats is one grouped rollup row keyed by graduation batch.
type BatchRoleStats struct {
	Batch int        `bson:"_id"`
	Roles []RoleStat `bson:"roles"`
	Total int        `bson:"total"`
}

// DepartmentRoleStats is one grouped rollup row keyed by department.
type DepartmentRoleStats struct {
	Department Department `bson:"_id"`
	Roles      []RoleStat `bson:"roles"`
	Total      int        `bson:"total"`
}

// PositionFacetGroup is the single accumulator row of one job-position
// facet view, with categorical values pushed for in-memory reduction.
type PositionFacetGroup struct {
	Total           int      `bson:"total"`
	EmploymentTypes []string `bson:"employmentTypes"`
	JobTypes        []string `bson:"jobTypes"`
	Titles          []string `bson:"titles"`
	Locations       []string `bson:"locations"`
	Companies       []string `bson:"companies"`
}

// PositionFacetResult holds both views of the faceted job-position
// aggregation. A view with no matching rows decodes as an empty slice.
type PositionFacetResult struct {
	All     []PositionFacetGroup `bson:"all"`
	Ongoing []PositionFacetGroup `bson:"ongoing"`
}

// EducationFacetGroup is the accumulator row of one education facet view.
type EducationFacetGroup struct {
	Total     int      `bson:"total"`
	Degrees   []string `bson:"degrees"`
	Fields    []string `bson:"fields"`
	Schools   []string `bson:"schools"`
	Locations []string `bson:"locations"`
}

// EducationFacetResult holds both views of the faceted education
// aggregation.
type EducationFacetResult struct {
	All     []EducationFacetGroup `bson:"all"`
	Ongoing []EducationFacetGroup `bson:"ongoing"`
}

// LocationGroup carries the pushed city and country values of verified
// alumni profiles.
type LocationGroup struct {
	Cities    []string `bson:"cities"`
	Countries []string `bson:"countries"`
}
