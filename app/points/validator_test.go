package points

import (
	"testing"

	"github.com/google/uuid"

	"github.com/najib3112/tifpoint/app/model"
)

func TestValidatePointAssignment(t *testing.T) {
	competencyID := uuid.New()
	seminarID := uuid.New()
	researchID := uuid.New()
	workshopID := uuid.New()

	store := &fakeStore{
		competencies: []model.Competency{{ID: competencyID, Name: "Software Development"}},
		types: []model.ActivityType{
			{ID: seminarID, Name: "Seminar"},
			{ID: researchID, Name: "Research"},
			{ID: workshopID, Name: "Workshop"},
		},
	}
	calc := NewCalculator(store, TargetPoints)

	tests := []struct {
		name          string
		typeID        uuid.UUID
		points        int
		wantValid     bool
		wantMessage   string
		wantSuggested *int
	}{
		{
			name:      "seminar within range",
			typeID:    seminarID,
			points:    2,
			wantValid: true,
		},
		{
			name:          "seminar above range",
			typeID:        seminarID,
			points:        4,
			wantValid:     false,
			wantMessage:   "Points for Seminar should be between 1 and 3",
			wantSuggested: intPtr(3),
		},
		{
			name:          "research below range",
			typeID:        researchID,
			points:        2,
			wantValid:     false,
			wantMessage:   "Points for Research should be between 5 and 15",
			wantSuggested: intPtr(5),
		},
		{
			name:      "unlisted type within default range",
			typeID:    workshopID,
			points:    10,
			wantValid: true,
		},
		{
			name:          "unlisted type above default range",
			typeID:        workshopID,
			points:        15,
			wantValid:     false,
			wantMessage:   "Points should be between 1 and 10",
			wantSuggested: intPtr(10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := calc.ValidatePointAssignment(tt.typeID, competencyID, tt.points)
			if err != nil {
				t.Fatalf("ValidatePointAssignment returned error: %v", err)
			}

			if result.IsValid != tt.wantValid {
				t.Errorf("IsValid = %v, want %v", result.IsValid, tt.wantValid)
			}
			if result.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", result.Message, tt.wantMessage)
			}
			if tt.wantSuggested == nil {
				if result.SuggestedPoints != nil {
					t.Errorf("SuggestedPoints = %d, want nil", *result.SuggestedPoints)
				}
			} else {
				if result.SuggestedPoints == nil {
					t.Fatalf("SuggestedPoints = nil, want %d", *tt.wantSuggested)
				}
				if *result.SuggestedPoints != *tt.wantSuggested {
					t.Errorf("SuggestedPoints = %d, want %d", *result.SuggestedPoints, *tt.wantSuggested)
				}
			}
		})
	}
}

func TestValidatePointAssignmentUnknownReferences(t *testing.T) {
	competencyID := uuid.New()
	seminarID := uuid.New()

	store := &fakeStore{
		competencies: []model.Competency{{ID: competencyID, Name: "Software Development"}},
		types:        []model.ActivityType{{ID: seminarID, Name: "Seminar"}},
	}
	calc := NewCalculator(store, TargetPoints)

	tests := []struct {
		name         string
		typeID       uuid.UUID
		competencyID uuid.UUID
	}{
		{name: "unknown activity type", typeID: uuid.New(), competencyID: competencyID},
		{name: "unknown competency", typeID: seminarID, competencyID: uuid.New()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := calc.ValidatePointAssignment(tt.typeID, tt.competencyID, 2)
			if err != nil {
				t.Fatalf("ValidatePointAssignment returned error: %v", err)
			}

			if result.IsValid {
				t.Error("IsValid = true, want false")
			}
			if result.Message != "Invalid activity type or competency" {
				t.Errorf("Message = %q", result.Message)
			}
			if result.SuggestedPoints != nil {
				t.Errorf("SuggestedPoints = %d, want nil", *result.SuggestedPoints)
			}
		})
	}
}
