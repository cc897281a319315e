package intervention

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/roadsafe-cloud/roadsafe/internal/domain"
	domiv "github.com/roadsafe-cloud/roadsafe/internal/domain/intervention"
)

func TestCreate_Valid(t *testing.T) {
	var stored domiv.Intervention
	repo := &mockRepo{createFn: func(_ context.Context, iv domiv.Intervention) (string, error) {
		stored = iv
		return "id-42", nil
	}}
	svc := New(repo)

	id, err := svc.Create(context.Background(), validIntervention())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "id-42" {
		t.Errorf("id = %q, want id-42", id)
	}
	if stored.Name != "Raised Pedestrian Crossing" {
		t.Errorf("stored record lost its name: %+v", stored)
	}
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domiv.Intervention)
	}{
		{"missing name", func(iv *domiv.Intervention) { iv.Name = "" }},
		{"missing description", func(iv *domiv.Intervention) { iv.Description = "" }},
		{"missing cost level", func(iv *domiv.Intervention) { iv.CostLevel = "" }},
		{"missing complexity", func(iv *domiv.Intervention) { iv.Complexity = "" }},
		{"speed range with one element", func(iv *domiv.Intervention) { iv.SuitableSpeedRange = []int{20} }},
		{"speed range with three elements", func(iv *domiv.Intervention) { iv.SuitableSpeedRange = []int{20, 50, 80} }},
		{"speed range min above max", func(iv *domiv.Intervention) { iv.SuitableSpeedRange = []int{50, 20} }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockRepo{createFn: func(context.Context, domiv.Intervention) (string, error) {
				t.Fatal("repo must not be called for invalid input")
				return "", nil
			}}
			svc := New(repo)

			iv := validIntervention()
			tc.mutate(&iv)

			_, err := svc.Create(context.Background(), iv)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestCreate_NoSpeedRangeIsValid(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo)

	iv := validIntervention()
	iv.SuitableSpeedRange = nil
	if _, err := svc.Create(context.Background(), iv); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestList_LabelFilters(t *testing.T) {
	records := []domiv.Intervention{
		{Name: "crossing", RoadTypes: []string{"urban arterial"}, Issues: []string{"speeding"}, Environments: []string{"school zone"}},
		{Name: "rumble", RoadTypes: []string{"rural highway"}, Issues: []string{"run-off-road"}, Environments: []string{"curve"}},
	}
	repo := &mockRepo{listAllFn: func(context.Context) ([]domiv.Intervention, error) {
		return records, nil
	}}
	svc := New(repo)

	tests := []struct {
		name  string
		q     ListQuery
		wants []string
	}{
		{"no filter returns all", ListQuery{}, []string{"crossing", "rumble"}},
		{"road type", ListQuery{RoadType: "rural highway"}, []string{"rumble"}},
		{"road type is case-insensitive", ListQuery{RoadType: "Urban Arterial"}, []string{"crossing"}},
		{"issue", ListQuery{Issue: "speeding"}, []string{"crossing"}},
		{"environment", ListQuery{Environment: "curve"}, []string{"rumble"}},
		{"no match", ListQuery{Issue: "wrong-way"}, nil},
		{"combined filters", ListQuery{RoadType: "rural highway", Issue: "speeding"}, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.List(context.Background(), tc.q)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tc.wants) {
				t.Fatalf("got %d items, want %d", len(got), len(tc.wants))
			}
			for i, want := range tc.wants {
				if got[i].Name != want {
					t.Errorf("item %d = %q, want %q", i, got[i].Name, want)
				}
			}
		})
	}
}

func TestList_LimitClamping(t *testing.T) {
	records := make([]domiv.Intervention, 600)
	for i := range records {
		records[i] = domiv.Intervention{Name: fmt.Sprintf("iv-%d", i)}
	}
	repo := &mockRepo{listAllFn: func(context.Context) ([]domiv.Intervention, error) {
		return records, nil
	}}
	svc := New(repo)

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero uses default", 0, 100},
		{"negative uses default", -1, 100},
		{"explicit limit", 5, 5},
		{"above max clamps", 10000, 500},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.List(context.Background(), ListQuery{Limit: tc.limit})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tc.want {
				t.Errorf("got %d items, want %d", len(got), tc.want)
			}
		})
	}
}

func TestGetDelete_PassThrough(t *testing.T) {
	repo := &mockRepo{
		getFn: func(_ context.Context, id string) (domiv.Intervention, error) {
			if id != "id-1" {
				t.Errorf("unexpected id %q", id)
			}
			return domiv.Intervention{Name: "crossing"}, nil
		},
		deleteFn: func(_ context.Context, id string) error {
			return domain.ErrNotFound
		},
	}
	svc := New(repo)

	iv, err := svc.Get(context.Background(), "id-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if iv.Name != "crossing" {
		t.Errorf("name = %q, want crossing", iv.Name)
	}

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
