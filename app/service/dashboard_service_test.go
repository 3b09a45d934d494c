package service

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/najib3112/tifpoint/app/model"
	"github.com/najib3112/tifpoint/app/points"
	"github.com/najib3112/tifpoint/app/repo"
)

type fakePointsStore struct {
	activities []model.Activity
}

func (f *fakePointsStore) ApprovedActivities(userID uuid.UUID) ([]model.Activity, error) {
	return f.activities, nil
}

func (f *fakePointsStore) ApprovedPointsByCompetency(userID uuid.UUID) ([]points.CompetencySum, error) {
	return nil, nil
}

func (f *fakePointsStore) AllCompetencies() ([]model.Competency, error) {
	return nil, nil
}

func (f *fakePointsStore) CompetencyByID(id uuid.UUID) (*model.Competency, error) {
	return nil, nil
}

func (f *fakePointsStore) ActivityTypeByID(id uuid.UUID) (*model.ActivityType, error) {
	return nil, nil
}

func (f *fakePointsStore) TopRecognizedCourses(limit int) ([]model.RecognizedCourse, error) {
	return nil, nil
}

func (f *fakePointsStore) UpcomingEvents(from time.Time, limit int) ([]model.Event, error) {
	return nil, nil
}

type fakeUserRepo struct {
	repo.UserRepository

	students []model.User
}

func (f *fakeUserRepo) CountByRole(role string) (int64, error) {
	return int64(len(f.students)), nil
}

func (f *fakeUserRepo) StudentsWithApprovedActivities() ([]model.User, error) {
	return f.students, nil
}

type fakeActivityRepo struct {
	repo.ActivityRepository

	counts map[model.ActivityStatus]int64
}

func (f *fakeActivityRepo) Count(userID *uuid.UUID, status *model.ActivityStatus) (int64, error) {
	if status == nil {
		return 0, nil
	}
	return f.counts[*status], nil
}

func (f *fakeActivityRepo) RecentPending(limit int) ([]model.Activity, error) {
	return nil, nil
}

func (f *fakeActivityRepo) FindByUser(userID uuid.UUID, limit int) ([]model.Activity, error) {
	return nil, nil
}

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func student(name, nim string, pts ...int) model.User {
	activities := make([]model.Activity, 0, len(pts))
	for _, p := range pts {
		activities = append(activities, model.Activity{
			ID:     uuid.New(),
			Status: model.StatusApproved,
			Point:  intPtr(p),
		})
	}
	return model.User{
		ID:         uuid.New(),
		Name:       name,
		NIM:        strPtr(nim),
		Role:       model.RoleMahasiswa,
		Activities: activities,
	}
}

func newDashboardApp(svc *DashboardService, role string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", uuid.New())
		c.Locals("role", role)
		return c.Next()
	})
	app.Get("/api/dashboard/admin", svc.Admin)
	app.Get("/api/dashboard/leaderboard", svc.Leaderboard)
	return app
}

func TestAdminDashboard(t *testing.T) {
	students := []model.User{
		student("Budi", "2211001", 36),
		student("Ani", "2211002", 10),
		student("Citra", "2211003"),
	}
	svc := NewDashboardService(
		points.NewCalculator(&fakePointsStore{}, points.TargetPoints),
		&fakeActivityRepo{counts: map[model.ActivityStatus]int64{
			model.StatusPending:  2,
			model.StatusApproved: 4,
			model.StatusRejected: 1,
		}},
		&fakeUserRepo{students: students},
		nil,
		nil,
	)
	app := newDashboardApp(svc, model.RoleAdmin)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/dashboard/admin", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Overview        model.DashboardOverview    `json:"overview"`
			StudentProgress []model.StudentProgressRow `json:"studentProgress"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	overview := body.Data.Overview
	if overview.TotalStudents != 3 {
		t.Errorf("TotalStudents = %d, want 3", overview.TotalStudents)
	}
	if overview.TotalActivities != 7 {
		t.Errorf("TotalActivities = %d, want 7", overview.TotalActivities)
	}
	if overview.CompletedStudents != 1 || overview.InProgressStudents != 1 || overview.NotStartedStudents != 1 {
		t.Errorf("student split = %d/%d/%d, want 1/1/1",
			overview.CompletedStudents, overview.InProgressStudents, overview.NotStartedStudents)
	}

	rows := body.Data.StudentProgress
	if len(rows) != 3 {
		t.Fatalf("got %d progress rows, want 3", len(rows))
	}
	// Sorted by completion, highest first.
	if rows[0].Name != "Budi" || !rows[0].IsCompleted {
		t.Errorf("rows[0] = %+v, want completed Budi first", rows[0])
	}
	if rows[2].Name != "Citra" || rows[2].TotalPoints != 0 {
		t.Errorf("rows[2] = %+v, want Citra last with 0 points", rows[2])
	}
}

func TestAdminDashboardNIMFilter(t *testing.T) {
	students := []model.User{
		student("Budi", "2211001", 36),
		student("Ani", "2211002", 10),
	}
	svc := NewDashboardService(
		points.NewCalculator(&fakePointsStore{}, points.TargetPoints),
		&fakeActivityRepo{},
		&fakeUserRepo{students: students},
		nil,
		nil,
	)
	app := newDashboardApp(svc, model.RoleAdmin)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/dashboard/admin?nim=1002", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	var body struct {
		Data struct {
			Overview        model.DashboardOverview    `json:"overview"`
			StudentProgress []model.StudentProgressRow `json:"studentProgress"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(body.Data.StudentProgress) != 1 {
		t.Fatalf("got %d rows, want 1", len(body.Data.StudentProgress))
	}
	if body.Data.StudentProgress[0].Name != "Ani" {
		t.Errorf("filtered row = %s, want Ani", body.Data.StudentProgress[0].Name)
	}
	// The overview still counts everyone.
	if body.Data.Overview.CompletedStudents != 1 {
		t.Errorf("CompletedStudents = %d, want 1", body.Data.Overview.CompletedStudents)
	}
}

func TestLeaderboard(t *testing.T) {
	students := []model.User{
		student("Ani", "2211002", 10),
		student("Budi", "2211001", 36, 4),
		student("Citra", "2211003", 10),
	}
	svc := NewDashboardService(
		points.NewCalculator(&fakePointsStore{}, points.TargetPoints),
		&fakeActivityRepo{},
		&fakeUserRepo{students: students},
		nil,
		nil,
	)
	app := newDashboardApp(svc, model.RoleMahasiswa)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/dashboard/leaderboard?limit=2", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	var body struct {
		Data []model.LeaderboardEntry `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(body.Data) != 2 {
		t.Fatalf("got %d entries, want 2 (limit)", len(body.Data))
	}
	if body.Data[0].Name != "Budi" || body.Data[0].TotalPoints != 40 {
		t.Errorf("entry[0] = %+v, want Budi with 40 points", body.Data[0])
	}
	// Point ties break alphabetically.
	if body.Data[1].Name != "Ani" {
		t.Errorf("entry[1] = %s, want Ani", body.Data[1].Name)
	}
}

func TestMonthlyTrends(t *testing.T) {
	now := time.Date(2026, 4, 15, 10, 0, 0, 0, time.UTC)
	svc := &DashboardService{activityRepo: &trendActivityRepo{rows: []model.MonthlyActivity{
		{CreatedAt: time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC), Status: model.StatusApproved},
		{CreatedAt: time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC), Status: model.StatusPending},
		{CreatedAt: time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), Status: model.StatusRejected},
	}}}

	trends, err := svc.monthlyTrends(now, 3)
	if err != nil {
		t.Fatalf("monthlyTrends returned error: %v", err)
	}

	if len(trends) != 3 {
		t.Fatalf("got %d months, want 3", len(trends))
	}

	april := trends["2026-04"]
	if april.Total != 2 || april.Approved != 1 || april.Pending != 1 {
		t.Errorf("2026-04 = %+v", april)
	}
	march := trends["2026-03"]
	if march.Total != 1 || march.Rejected != 1 {
		t.Errorf("2026-03 = %+v", march)
	}
	february := trends["2026-02"]
	if february.Total != 0 {
		t.Errorf("2026-02 = %+v, want empty", february)
	}
}

type trendActivityRepo struct {
	repo.ActivityRepository

	rows []model.MonthlyActivity
}

func (f *trendActivityRepo) CreatedSince(since time.Time) ([]model.MonthlyActivity, error) {
	return f.rows, nil
}
