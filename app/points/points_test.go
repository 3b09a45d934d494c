package points

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/najib3112/tifpoint/app/model"
)

type fakeStore struct {
	activities   []model.Activity
	sums         []CompetencySum
	competencies []model.Competency
	types        []model.ActivityType
	courses      []model.RecognizedCourse
	events       []model.Event
}

func (f *fakeStore) ApprovedActivities(userID uuid.UUID) ([]model.Activity, error) {
	return f.activities, nil
}

func (f *fakeStore) ApprovedPointsByCompetency(userID uuid.UUID) ([]CompetencySum, error) {
	return f.sums, nil
}

func (f *fakeStore) AllCompetencies() ([]model.Competency, error) {
	return f.competencies, nil
}

func (f *fakeStore) CompetencyByID(id uuid.UUID) (*model.Competency, error) {
	for i := range f.competencies {
		if f.competencies[i].ID == id {
			return &f.competencies[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) ActivityTypeByID(id uuid.UUID) (*model.ActivityType, error) {
	for i := range f.types {
		if f.types[i].ID == id {
			return &f.types[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) TopRecognizedCourses(limit int) ([]model.RecognizedCourse, error) {
	if len(f.courses) > limit {
		return f.courses[:limit], nil
	}
	return f.courses, nil
}

func (f *fakeStore) UpcomingEvents(from time.Time, limit int) ([]model.Event, error) {
	var upcoming []model.Event
	for _, e := range f.events {
		if !e.Date.Before(from) {
			upcoming = append(upcoming, e)
		}
	}
	if len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming, nil
}

func intPtr(v int) *int {
	return &v
}

func approved(points ...*int) []model.Activity {
	activities := make([]model.Activity, 0, len(points))
	for _, p := range points {
		activities = append(activities, model.Activity{
			ID:     uuid.New(),
			Status: model.StatusApproved,
			Point:  p,
		})
	}
	return activities
}

func TestComputeProgress(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		activities     []model.Activity
		wantTotal      int
		wantPercentage float64
		wantRemaining  int
		wantCompleted  bool
	}{
		{
			name:           "no activities",
			activities:     nil,
			wantTotal:      0,
			wantPercentage: 0,
			wantRemaining:  36,
			wantCompleted:  false,
		},
		{
			name:           "partial progress",
			activities:     approved(intPtr(3), intPtr(5), intPtr(1)),
			wantTotal:      9,
			wantPercentage: 25,
			wantRemaining:  27,
			wantCompleted:  false,
		},
		{
			name:           "nil point counts as zero",
			activities:     approved(intPtr(10), nil, intPtr(2)),
			wantTotal:      12,
			wantPercentage: 33.33,
			wantRemaining:  24,
			wantCompleted:  false,
		},
		{
			name:           "exactly at target",
			activities:     approved(intPtr(20), intPtr(16)),
			wantTotal:      36,
			wantPercentage: 100,
			wantRemaining:  0,
			wantCompleted:  true,
		},
		{
			name:           "over target clamps percentage",
			activities:     approved(intPtr(25), intPtr(15)),
			wantTotal:      40,
			wantPercentage: 100,
			wantRemaining:  0,
			wantCompleted:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := NewCalculator(&fakeStore{activities: tt.activities}, TargetPoints)

			progress, err := calc.ComputeProgress(userID)
			if err != nil {
				t.Fatalf("ComputeProgress returned error: %v", err)
			}

			if progress.TotalPoints != tt.wantTotal {
				t.Errorf("TotalPoints = %d, want %d", progress.TotalPoints, tt.wantTotal)
			}
			if progress.TargetPoints != TargetPoints {
				t.Errorf("TargetPoints = %d, want %d", progress.TargetPoints, TargetPoints)
			}
			if progress.CompletionPercentage != tt.wantPercentage {
				t.Errorf("CompletionPercentage = %v, want %v", progress.CompletionPercentage, tt.wantPercentage)
			}
			if progress.RemainingPoints != tt.wantRemaining {
				t.Errorf("RemainingPoints = %d, want %d", progress.RemainingPoints, tt.wantRemaining)
			}
			if progress.IsCompleted != tt.wantCompleted {
				t.Errorf("IsCompleted = %v, want %v", progress.IsCompleted, tt.wantCompleted)
			}
		})
	}
}

func TestComputeProgressIdempotent(t *testing.T) {
	calc := NewCalculator(&fakeStore{activities: approved(intPtr(7), intPtr(4))}, TargetPoints)
	userID := uuid.New()

	first, err := calc.ComputeProgress(userID)
	if err != nil {
		t.Fatalf("ComputeProgress returned error: %v", err)
	}
	second, err := calc.ComputeProgress(userID)
	if err != nil {
		t.Fatalf("ComputeProgress returned error: %v", err)
	}

	if *first != *second {
		t.Errorf("repeated calls disagree: %+v vs %+v", *first, *second)
	}
}

func TestNewCalculatorDefaultsTarget(t *testing.T) {
	calc := NewCalculator(&fakeStore{}, 0)
	if calc.Target() != TargetPoints {
		t.Errorf("Target() = %d, want %d", calc.Target(), TargetPoints)
	}

	calc = NewCalculator(&fakeStore{}, 50)
	if calc.Target() != 50 {
		t.Errorf("Target() = %d, want 50", calc.Target())
	}
}

func TestPointsByCompetency(t *testing.T) {
	softwareID := uuid.New()
	networkID := uuid.New()
	orphanID := uuid.New()

	store := &fakeStore{
		sums: []CompetencySum{
			{CompetencyID: softwareID, Points: 12},
			{CompetencyID: networkID, Points: 4},
			{CompetencyID: orphanID, Points: 3},
		},
		competencies: []model.Competency{
			{ID: softwareID, Name: "Software Development"},
			{ID: networkID, Name: "Networking"},
		},
	}
	calc := NewCalculator(store, TargetPoints)

	details, err := calc.PointsByCompetency(uuid.New())
	if err != nil {
		t.Fatalf("PointsByCompetency returned error: %v", err)
	}
	if len(details) != 3 {
		t.Fatalf("got %d rows, want 3", len(details))
	}

	byID := make(map[uuid.UUID]CompetencyPoints, len(details))
	for _, d := range details {
		byID[d.CompetencyID] = d
	}

	if byID[softwareID].Competency != "Software Development" || byID[softwareID].Points != 12 {
		t.Errorf("software row = %+v", byID[softwareID])
	}
	if byID[networkID].Points != 4 {
		t.Errorf("network row = %+v", byID[networkID])
	}
	if byID[orphanID].Competency != "Unknown" {
		t.Errorf("orphan competency resolved to %q, want Unknown", byID[orphanID].Competency)
	}
}
