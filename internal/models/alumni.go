package models

import "time"

// EmploymentType classifies a job position entry.
type EmploymentType string

const (
	EmploymentFullTime     EmploymentType = "full-time"
	EmploymentPartTime     EmploymentType = "part-time"
	EmploymentFreelancer   EmploymentType = "freelancer"
	EmploymentIntern       EmploymentType = "intern"
	EmploymentEntrepreneur EmploymentType = "entrepreneur"
)

// WorkMode classifies where a position is performed.
type WorkMode string

const (
	WorkOnSite WorkMode = "on-site"
	WorkRemote WorkMode = "remote"
	WorkHybrid WorkMode = "hybrid"
)

// JobPosition is one entry of an alumni's employment history.
type JobPosition struct {
	Title    string         `bson:"title" json:"title"`
	Type     EmploymentType `bson:"type" json:"type"`
	Start    time.Time      `bson:"start" json:"start"`
	End      *time.Time     `bson:"end,omitempty" json:"end,omitempty"`
	Ongoing  bool           `bson:"ongoing" json:"ongoing"`
	Location string         `bson:"location" json:"location"`
	JobType  WorkMode       `bson:"jobType" json:"jobType"`
	Company  string         `bson:"company" json:"company"`
}

// Education is one entry of an alumni's education history.
type Education struct {
	School       string     `bson:"school" json:"school"`
	Degree       string     `bson:"degree" json:"degree"`
	FieldOfStudy string     `bson:"fieldOfStudy" json:"fieldOfStudy"`
	Start        time.Time  `bson:"start" json:"start"`
	End          *time.Time `bson:"end,omitempty" json:"end,omitempty"`
	Ongoing      bool       `bson:"ongoing" json:"ongoing"`
	Location     string     `bson:"location" json:"location"`
}

// AlumniLocation is the alumni's current city and country.
type AlumniLocation struct {
	City    string `bson:"city" json:"city"`
	Country string `bson:"country" json:"country"`
}

// AlumniDetails holds the extended profile attached to alumni users.
type AlumniDetails struct {
	ID          string         `bson:"id" json:"id"`
	UserID      string         `bson:"userId" json:"userId"`
	Verified    bool           `bson:"verified" json:"verified"`
	JobPosition []JobPosition  `bson:"jobPosition" json:"jobPosition"`
	Education   []Education    `bson:"education" json:"education"`
	Location    AlumniLocation `bson:"location" json:"location"`
	Expertise   []string       `bson:"expertise" json:"expertise"`
}
