package points

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/najib3112/tifpoint/app/model"
)

func TestRecommendedActivities(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	softwareID := uuid.New()
	networkID := uuid.New()
	dataID := uuid.New()
	securityID := uuid.New()

	store := &fakeStore{
		activities: approved(intPtr(2), intPtr(6)),
		sums: []CompetencySum{
			{CompetencyID: softwareID, Points: 2},
			{CompetencyID: networkID, Points: 6},
		},
		competencies: []model.Competency{
			{ID: softwareID, Name: "Software Development"},
			{ID: networkID, Name: "Networking"},
			{ID: dataID, Name: "Data Science"},
			{ID: securityID, Name: "Security"},
		},
		courses: []model.RecognizedCourse{
			{ID: uuid.New(), Name: "Cloud Practitioner", PointValue: 8},
			{ID: uuid.New(), Name: "Intro to Go", PointValue: 4},
		},
		events: []model.Event{
			{ID: uuid.New(), Title: "Past Seminar", Date: now.AddDate(0, -1, 0)},
			{ID: uuid.New(), Title: "Upcoming Workshop", Date: now.AddDate(0, 1, 0)},
		},
	}
	calc := NewCalculator(store, TargetPoints)

	result, err := calc.RecommendedActivities(uuid.New(), now)
	if err != nil {
		t.Fatalf("RecommendedActivities returned error: %v", err)
	}

	if result.Progress.TotalPoints != 8 {
		t.Errorf("Progress.TotalPoints = %d, want 8", result.Progress.TotalPoints)
	}

	recs := result.CompetencyRecommendations
	if len(recs) != 4 {
		t.Fatalf("got %d recommendations, want 4", len(recs))
	}

	// Target per competency is 36/4 = 9. Gaps: Data Science and Security
	// need 9, Software Development needs 7, Networking needs 3.
	byName := make(map[string]CompetencyRecommendation, len(recs))
	for _, r := range recs {
		byName[r.Competency] = r
	}

	checks := []struct {
		competency   string
		current      int
		recommended  int
		wantPriority string
	}{
		{"Data Science", 0, 9, PriorityHigh},
		{"Security", 0, 9, PriorityHigh},
		{"Software Development", 2, 7, PriorityHigh},
		{"Networking", 6, 3, PriorityMedium},
	}
	for _, check := range checks {
		rec, ok := byName[check.competency]
		if !ok {
			t.Fatalf("missing recommendation for %s", check.competency)
		}
		if rec.CurrentPoints != check.current {
			t.Errorf("%s CurrentPoints = %d, want %d", check.competency, rec.CurrentPoints, check.current)
		}
		if rec.RecommendedAdditionalPoints != check.recommended {
			t.Errorf("%s RecommendedAdditionalPoints = %d, want %d", check.competency, rec.RecommendedAdditionalPoints, check.recommended)
		}
		if rec.Priority != check.wantPriority {
			t.Errorf("%s Priority = %s, want %s", check.competency, rec.Priority, check.wantPriority)
		}
	}

	// High priorities first, biggest gap first, name ties broken
	// alphabetically.
	wantOrder := []string{"Data Science", "Security", "Software Development", "Networking"}
	for i, name := range wantOrder {
		if recs[i].Competency != name {
			t.Errorf("recs[%d] = %s, want %s", i, recs[i].Competency, name)
		}
	}

	if len(result.RecommendedCourses) != 2 {
		t.Fatalf("got %d courses, want 2", len(result.RecommendedCourses))
	}
	if result.RecommendedCourses[0].Name != "Cloud Practitioner" {
		t.Errorf("top course = %s", result.RecommendedCourses[0].Name)
	}

	if len(result.UpcomingEvents) != 1 {
		t.Fatalf("got %d events, want 1", len(result.UpcomingEvents))
	}
	if result.UpcomingEvents[0].Title != "Upcoming Workshop" {
		t.Errorf("upcoming event = %s", result.UpcomingEvents[0].Title)
	}
}

func TestRecommendedActivitiesSatisfiedCompetency(t *testing.T) {
	now := time.Now()
	fullID := uuid.New()
	emptyID := uuid.New()

	store := &fakeStore{
		activities: approved(intPtr(20)),
		sums:       []CompetencySum{{CompetencyID: fullID, Points: 20}},
		competencies: []model.Competency{
			{ID: fullID, Name: "Software Development"},
			{ID: emptyID, Name: "Networking"},
		},
	}
	calc := NewCalculator(store, TargetPoints)

	result, err := calc.RecommendedActivities(uuid.New(), now)
	if err != nil {
		t.Fatalf("RecommendedActivities returned error: %v", err)
	}

	byName := make(map[string]CompetencyRecommendation)
	for _, r := range result.CompetencyRecommendations {
		byName[r.Competency] = r
	}

	// 20 points against a per-competency target of 18: nothing more needed.
	full := byName["Software Development"]
	if full.RecommendedAdditionalPoints != 0 {
		t.Errorf("satisfied competency recommends %d more points", full.RecommendedAdditionalPoints)
	}
	if full.Priority != PriorityLow {
		t.Errorf("satisfied competency priority = %s, want %s", full.Priority, PriorityLow)
	}

	empty := byName["Networking"]
	if empty.RecommendedAdditionalPoints != 18 {
		t.Errorf("empty competency recommends %d, want 18", empty.RecommendedAdditionalPoints)
	}
	if empty.Priority != PriorityHigh {
		t.Errorf("empty competency priority = %s, want %s", empty.Priority, PriorityHigh)
	}
}

func TestRecommendedActivitiesNoCompetencies(t *testing.T) {
	calc := NewCalculator(&fakeStore{}, TargetPoints)

	result, err := calc.RecommendedActivities(uuid.New(), time.Now())
	if err != nil {
		t.Fatalf("RecommendedActivities returned error: %v", err)
	}
	if len(result.CompetencyRecommendations) != 0 {
		t.Errorf("got %d recommendations, want 0", len(result.CompetencyRecommendations))
	}
}
