package models

import "time"

// ReferralJobDetails nests the opening a referral applies to.
type ReferralJobDetails struct {
	Company string `bson:"company" json:"company"`
	Role    string `bson:"role" json:"role"`
}

// Referral is a referral offer posted by an alumni member.
type Referral struct {
	ID                string             `bson:"id" json:"id"`
	IsActive          bool               `bson:"isActive" json:"isActive"`
	NumberOfReferrals int                `bson:"numberOfReferrals" json:"numberOfReferrals"`
	JobDetails        ReferralJobDetails `bson:"jobDetails" json:"jobDetails"`
	PostedBy          string             `bson:"postedBy" json:"postedBy"`
	PostedOn          time.Time          `bson:"postedOn" json:"postedOn"`
	LastApplyDate     time.Time          `bson:"lastApplyDate" json:"lastApplyDate"`
}

// ReferralStub carries only the fields referral analytics reduces over.
type ReferralStub struct {
	JobDetails        ReferralJobDetails `bson:"jobDetails" json:"jobDetails"`
	PostedBy          string             `bson:"postedBy" json:"postedBy"`
	NumberOfReferrals int                `bson:"numberOfReferrals" json:"numberOfReferrals"`
	LastApplyDate     time.Time          `bson:"lastApplyDate" json:"lastApplyDate"`
}
