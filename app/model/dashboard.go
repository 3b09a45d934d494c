package model

import (
	"time"

	"github.com/google/uuid"
)

type ActivitySummary struct {
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
	Total    int64 `json:"total"`
}

type StudentProgressRow struct {
	ID                   uuid.UUID `json:"id"`
	Name                 string    `json:"name"`
	NIM                  *string   `json:"nim"`
	Email                string    `json:"email"`
	TotalPoints          int       `json:"totalPoints"`
	CompletionPercentage float64   `json:"completionPercentage"`
	RemainingPoints      int       `json:"remainingPoints"`
	IsCompleted          bool      `json:"isCompleted"`
}

type LeaderboardEntry struct {
	ID                   uuid.UUID `json:"id"`
	Name                 string    `json:"name"`
	NIM                  *string   `json:"nim"`
	TotalPoints          int       `json:"totalPoints"`
	CompletionPercentage float64   `json:"completionPercentage"`
	IsCompleted          bool      `json:"isCompleted"`
}

type CompetencyStat struct {
	Competency      string `json:"competency"`
	TotalPoints     int    `json:"totalPoints"`
	ActivitiesCount int64  `json:"activitiesCount"`
}

type TypeStat struct {
	Type        string `json:"type"`
	Count       int64  `json:"count"`
	TotalPoints int    `json:"totalPoints"`
}

type MonthlyStat struct {
	Total    int `json:"total"`
	Approved int `json:"approved"`
	Pending  int `json:"pending"`
	Rejected int `json:"rejected"`
}

type DashboardOverview struct {
	TotalStudents      int64 `json:"totalStudents"`
	TotalActivities    int64 `json:"totalActivities"`
	PendingActivities  int64 `json:"pendingActivities"`
	ApprovedActivities int64 `json:"approvedActivities"`
	RejectedActivities int64 `json:"rejectedActivities"`
	CompletedStudents  int   `json:"completedStudents"`
	InProgressStudents int   `json:"inProgressStudents"`
	NotStartedStudents int   `json:"notStartedStudents"`
}

type MonthlyActivity struct {
	CreatedAt time.Time
	Status    ActivityStatus
}
