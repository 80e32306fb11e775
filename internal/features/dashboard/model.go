package dashboard

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemberUsage is one bar of the usage chart
type MemberUsage struct {
	MemberID string  `json:"memberId"`
	Username string  `json:"username"`
	Seconds  float64 `json:"seconds"`
	Minutes  float64 `json:"minutes"`
}

// StorageSummary is the storage reading plus the derived fill level
type StorageSummary struct {
	UsedStorageKB  float64 `json:"usedStorageKB" bson:"usedStorageKB"`
	UsedStorageMB  float64 `json:"usedStorageMB" bson:"usedStorageMB"`
	TotalStorageMB float64 `json:"totalStorageMB" bson:"totalStorageMB"`
	UsedPercentage float64 `json:"usedPercentage" bson:"usedPercentage"`
}

// Stats is the statistics panel of the dashboard, derived on every request
type Stats struct {
	TotalMembers       int             `json:"totalMembers"`
	AccessDistribution map[string]int  `json:"accessDistribution"`
	TotalUsageMinutes  float64         `json:"totalUsageMinutes"`
	MemberUsage        []MemberUsage   `json:"memberUsage"`
	Storage            *StorageSummary `json:"storage"`
	ReportStatusCounts map[string]int  `json:"reportStatusCounts"`
	Warnings           []string        `json:"warnings,omitempty"`
	GeneratedAt        time.Time       `json:"generatedAt"`
}

// Snapshot is a persisted subset of Stats taken by the scheduler
type Snapshot struct {
	ID                 primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	TotalMembers       int                `json:"totalMembers" bson:"totalMembers"`
	AccessDistribution map[string]int     `json:"accessDistribution" bson:"accessDistribution"`
	TotalUsageMinutes  float64            `json:"totalUsageMinutes" bson:"totalUsageMinutes"`
	UsedPercentage     float64            `json:"usedPercentage" bson:"usedPercentage"`
	OpenReports        int                `json:"openReports" bson:"openReports"`
	Warnings           []string           `json:"warnings,omitempty" bson:"warnings,omitempty"`
	TakenAt            time.Time          `json:"takenAt" bson:"takenAt"`
}
