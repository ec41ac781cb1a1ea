package models

import "time"

// UserRole represents the available roles for the RBAC system.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleAlumni  UserRole = "alumni"
	RoleStudent UserRole = "student"
)

// Department enumerates the academic departments.
type Department string

const (
	DepartmentAIDS Department = "AIDS"
	DepartmentCSE  Department = "CSE"
	DepartmentECE  Department = "ECE"
)

// Departments lists every department in alphabetical order. Rollups
// enumerate this set independently of stored data so empty departments
// still appear in analytics.
func Departments() []Department {
	return []Department{DepartmentAIDS, DepartmentCSE, DepartmentECE}
}

// BatchFloor is the first graduation year the platform tracks.
const BatchFloor = 2014

// User represents a registered member of the alumni network.
type User struct {
	ID           string     `bson:"id" json:"id"`
	Name         string     `bson:"name" json:"name"`
	CollegeEmail string     `bson:"collegeEmail" json:"collegeEmail"`
	Username     string     `bson:"username" json:"username"`
	Batch        int        `bson:"batch" json:"batch"`
	Department   Department `bson:"department" json:"department"`
	Role         UserRole   `bson:"role" json:"role"`
	Verified     bool       `bson:"verified" json:"verified"`
	CreatedAt    time.Time  `bson:"createdAt" json:"createdAt"`
}

// UserSummary is the projection returned in analytics listings.
type UserSummary struct {
	Name         string     `bson:"name" json:"name"`
	CollegeEmail string     `bson:"collegeEmail" json:"collegeEmail"`
	Batch        int        `bson:"batch" json:"batch"`
	Department   Department `bson:"department" json:"department"`
	Role         UserRole   `bson:"role" json:"role"`
	CreatedAt    time.Time  `bson:"createdAt" json:"createdAt"`
}

// UserRef is the minimal projection used to resolve poster identities.
type UserRef struct {
	ID    string   `bson:"id" json:"id"`
	Name  string   `bson:"name" json:"name"`
	Batch int      `bson:"batch" json:"batch"`
	Role  UserRole `bson:"role" json:"role"`
}

// UserFilter captures filtering criteria for listing users.
type UserFilter struct {
	Search      string
	Batches     []int
	Departments []Department
	Verified    *bool
	Page        int
	PageSize    int
}
