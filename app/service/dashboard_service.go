package service

import (
	"sort"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/najib3112/tifpoint/app/model"
	"github.com/najib3112/tifpoint/app/points"
	"github.com/najib3112/tifpoint/app/repo"
)

type DashboardService struct {
	calc           *points.Calculator
	activityRepo   repo.ActivityRepository
	userRepo       repo.UserRepository
	competencyRepo repo.CompetencyRepository
	typeRepo       repo.ActivityTypeRepository
}

func NewDashboardService(
	calc *points.Calculator,
	activityRepo repo.ActivityRepository,
	userRepo repo.UserRepository,
	competencyRepo repo.CompetencyRepository,
	typeRepo repo.ActivityTypeRepository,
) *DashboardService {
	return &DashboardService{
		calc:           calc,
		activityRepo:   activityRepo,
		userRepo:       userRepo,
		competencyRepo: competencyRepo,
		typeRepo:       typeRepo,
	}
}

// GET /api/dashboard/student
func (s *DashboardService) Student(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uuid.UUID)

	progress, err := s.calc.ComputeProgress(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	byCompetency, err := s.calc.PointsByCompetency(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	summary, err := s.activitySummary(&userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	recent, err := s.activityRepo.FindByUser(userID, 5)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	type studentDashboard struct {
		Progress           *points.StudentProgress   `json:"progress"`
		PointsByCompetency []points.CompetencyPoints `json:"pointsByCompetency"`
		ActivitySummary    model.ActivitySummary     `json:"activitySummary"`
		RecentActivities   []model.Activity          `json:"recentActivities"`
	}

	return c.JSON(model.SuccessResponse[studentDashboard]{
		Success: true,
		Data: studentDashboard{
			Progress:           progress,
			PointsByCompetency: byCompetency,
			ActivitySummary:    summary,
			RecentActivities:   recent,
		},
	})
}

// GET /api/dashboard/admin
// Per-student rows support a partial NIM filter and come back sorted by
// completion, highest first.
func (s *DashboardService) Admin(c *fiber.Ctx) error {
	totalStudents, err := s.userRepo.CountByRole(model.RoleMahasiswa)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	summary, err := s.activitySummary(nil)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	students, err := s.userRepo.StudentsWithApprovedActivities()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	nimFilter := c.Query("nim")
	rows := make([]model.StudentProgressRow, 0, len(students))
	completed, inProgress, notStarted := 0, 0, 0
	for i := range students {
		student := &students[i]

		total := 0
		for _, a := range student.Activities {
			total += a.PointValue()
		}
		progress := s.calc.ProgressFromTotal(total)

		switch {
		case progress.IsCompleted:
			completed++
		case total > 0:
			inProgress++
		default:
			notStarted++
		}

		if nimFilter != "" && (student.NIM == nil || !containsFold(*student.NIM, nimFilter)) {
			continue
		}

		rows = append(rows, model.StudentProgressRow{
			ID:                   student.ID,
			Name:                 student.Name,
			NIM:                  student.NIM,
			Email:                student.Email,
			TotalPoints:          total,
			CompletionPercentage: progress.CompletionPercentage,
			RemainingPoints:      progress.RemainingPoints,
			IsCompleted:          progress.IsCompleted,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CompletionPercentage > rows[j].CompletionPercentage
	})

	pending, err := s.activityRepo.RecentPending(10)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	type adminDashboard struct {
		Overview          model.DashboardOverview    `json:"overview"`
		StudentProgress   []model.StudentProgressRow `json:"studentProgress"`
		PendingActivities []model.Activity           `json:"pendingActivities"`
	}

	return c.JSON(model.SuccessResponse[adminDashboard]{
		Success: true,
		Data: adminDashboard{
			Overview: model.DashboardOverview{
				TotalStudents:      totalStudents,
				TotalActivities:    summary.Total,
				PendingActivities:  summary.Pending,
				ApprovedActivities: summary.Approved,
				RejectedActivities: summary.Rejected,
				CompletedStudents:  completed,
				InProgressStudents: inProgress,
				NotStartedStudents: notStarted,
			},
			StudentProgress:   rows,
			PendingActivities: pending,
		},
	})
}

// GET /api/dashboard/students/:id
func (s *DashboardService) StudentStatistics(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: "Invalid user ID"})
	}

	student, err := s.userRepo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{Success: false, Message: "Student not found"})
	}

	progress, err := s.calc.ComputeProgress(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	byCompetency, err := s.calc.PointsByCompetency(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	approved, err := s.activityRepo.FindApprovedByUser(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	type studentStatistics struct {
		Student            model.UserResponse        `json:"student"`
		Progress           *points.StudentProgress   `json:"progress"`
		PointsByCompetency []points.CompetencyPoints `json:"pointsByCompetency"`
		ApprovedActivities []model.Activity          `json:"approvedActivities"`
	}

	return c.JSON(model.SuccessResponse[studentStatistics]{
		Success: true,
		Data: studentStatistics{
			Student:            student.ToResponse(),
			Progress:           progress,
			PointsByCompetency: byCompetency,
			ApprovedActivities: approved,
		},
	})
}

// GET /api/dashboard/leaderboard
func (s *DashboardService) Leaderboard(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	if limit < 1 || limit > 100 {
		limit = 10
	}

	students, err := s.userRepo.StudentsWithApprovedActivities()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	entries := make([]model.LeaderboardEntry, 0, len(students))
	for i := range students {
		student := &students[i]

		total := 0
		for _, a := range student.Activities {
			total += a.PointValue()
		}
		progress := s.calc.ProgressFromTotal(total)

		entries = append(entries, model.LeaderboardEntry{
			ID:                   student.ID,
			Name:                 student.Name,
			NIM:                  student.NIM,
			TotalPoints:          total,
			CompletionPercentage: progress.CompletionPercentage,
			IsCompleted:          progress.IsCompleted,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].TotalPoints != entries[j].TotalPoints {
			return entries[i].TotalPoints > entries[j].TotalPoints
		}
		return entries[i].Name < entries[j].Name
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}

	return c.JSON(model.SuccessResponse[[]model.LeaderboardEntry]{Success: true, Data: entries})
}

// GET /api/dashboard/statistics
func (s *DashboardService) Statistics(c *fiber.Ctx) error {
	competencyStats, err := s.activityRepo.StatsByCompetency(true)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}
	typeStats, err := s.activityRepo.StatsByType()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	competencyNames, err := s.competencyNames()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}
	typeNames, err := s.typeNames()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	byCompetency := make([]model.CompetencyStat, 0, len(competencyStats))
	for _, stat := range competencyStats {
		name, ok := competencyNames[stat.GroupID]
		if !ok {
			name = "Unknown"
		}
		byCompetency = append(byCompetency, model.CompetencyStat{
			Competency:      name,
			TotalPoints:     stat.TotalPoints,
			ActivitiesCount: stat.Count,
		})
	}

	byType := make([]model.TypeStat, 0, len(typeStats))
	for _, stat := range typeStats {
		name, ok := typeNames[stat.GroupID]
		if !ok {
			name = "Unknown"
		}
		byType = append(byType, model.TypeStat{
			Type:        name,
			Count:       stat.Count,
			TotalPoints: stat.TotalPoints,
		})
	}

	monthly, err := s.monthlyTrends(time.Now().UTC(), 6)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	type statistics struct {
		ByCompetency  []model.CompetencyStat       `json:"byCompetency"`
		ByType        []model.TypeStat             `json:"byType"`
		MonthlyTrends map[string]model.MonthlyStat `json:"monthlyTrends"`
	}

	return c.JSON(model.SuccessResponse[statistics]{
		Success: true,
		Data: statistics{
			ByCompetency:  byCompetency,
			ByType:        byType,
			MonthlyTrends: monthly,
		},
	})
}

// GET /api/dashboard/recommendations
func (s *DashboardService) Recommendations(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uuid.UUID)

	recommendations, err := s.calc.RecommendedActivities(userID, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	return c.JSON(model.SuccessResponse[*points.Recommendations]{Success: true, Data: recommendations})
}

func (s *DashboardService) activitySummary(userID *uuid.UUID) (model.ActivitySummary, error) {
	var summary model.ActivitySummary

	statuses := []struct {
		status model.ActivityStatus
		dest   *int64
	}{
		{model.StatusPending, &summary.Pending},
		{model.StatusApproved, &summary.Approved},
		{model.StatusRejected, &summary.Rejected},
	}
	for _, st := range statuses {
		status := st.status
		count, err := s.activityRepo.Count(userID, &status)
		if err != nil {
			return summary, err
		}
		*st.dest = count
	}
	summary.Total = summary.Pending + summary.Approved + summary.Rejected

	return summary, nil
}

// monthlyTrends buckets recent submissions by UTC month, keyed YYYY-MM.
// Empty months inside the window still get a zero entry.
func (s *DashboardService) monthlyTrends(now time.Time, months int) (map[string]model.MonthlyStat, error) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)

	rows, err := s.activityRepo.CreatedSince(start)
	if err != nil {
		return nil, err
	}

	trends := make(map[string]model.MonthlyStat, months)
	for i := 0; i < months; i++ {
		trends[start.AddDate(0, i, 0).Format("2006-01")] = model.MonthlyStat{}
	}

	for _, row := range rows {
		key := row.CreatedAt.UTC().Format("2006-01")
		stat, ok := trends[key]
		if !ok {
			continue
		}

		stat.Total++
		switch row.Status {
		case model.StatusApproved:
			stat.Approved++
		case model.StatusPending:
			stat.Pending++
		case model.StatusRejected:
			stat.Rejected++
		}
		trends[key] = stat
	}

	return trends, nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func (s *DashboardService) competencyNames() (map[uuid.UUID]string, error) {
	competencies, err := s.competencyRepo.FindAll()
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(competencies))
	for _, competency := range competencies {
		names[competency.ID] = competency.Name
	}
	return names, nil
}

func (s *DashboardService) typeNames() (map[uuid.UUID]string, error) {
	types, err := s.typeRepo.FindAll()
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(types))
	for _, activityType := range types {
		names[activityType.ID] = activityType.Name
	}
	return names, nil
}
