package models

import "time"

// JobPosting is a job opening shared by a member.
type JobPosting struct {
	ID            string    `bson:"id" json:"id"`
	Title         string    `bson:"title" json:"title"`
	Type          string    `bson:"type" json:"type"`
	WorkType      string    `bson:"workType" json:"workType"`
	Company       string    `bson:"company" json:"company"`
	Role          string    `bson:"role" json:"role"`
	PostedBy      string    `bson:"postedBy" json:"postedBy"`
	PostedOn      time.Time `bson:"postedOn" json:"postedOn"`
	LastApplyDate time.Time `bson:"lastApplyDate" json:"lastApplyDate"`
}

// JobStub carries only the fields job analytics reduces over.
type JobStub struct {
	Type          string    `bson:"type" json:"type"`
	WorkType      string    `bson:"workType" json:"workType"`
	Company       string    `bson:"company" json:"company"`
	Role          string    `bson:"role" json:"role"`
	PostedBy      string    `bson:"postedBy" json:"postedBy"`
	LastApplyDate time.Time `bson:"lastApplyDate" json:"lastApplyDate"`
}

// JobFilter captures filtering criteria for listing job postings.
type JobFilter struct {
	Type     string
	WorkType string
	Active   *bool
	Page     int
	PageSize int
}
