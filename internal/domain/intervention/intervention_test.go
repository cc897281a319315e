package intervention

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Speeding", "speeding"},
		{"  pedestrian crashes  ", "pedestrian crashes"},
		{"URBAN Arterial", "urban arterial"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range tests {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want int
	}{
		{
			name: "identical sets",
			a:    []string{"speeding", "pedestrian crashes"},
			b:    []string{"speeding", "pedestrian crashes"},
			want: 2,
		},
		{
			name: "case and whitespace insensitive",
			a:    []string{" Speeding ", "HEAD-ON"},
			b:    []string{"speeding", "head-on"},
			want: 2,
		},
		{
			name: "duplicates count once",
			a:    []string{"speeding", "Speeding", "speeding "},
			b:    []string{"speeding"},
			want: 1,
		},
		{
			name: "disjoint",
			a:    []string{"speeding"},
			b:    []string{"head-on"},
			want: 0,
		},
		{
			name: "nil record labels",
			a:    []string{"speeding"},
			b:    nil,
			want: 0,
		},
		{
			name: "both empty",
			a:    nil,
			b:    nil,
			want: 0,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlap(tc.a, tc.b); got != tc.want {
				t.Errorf("Overlap(%v, %v) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestContainsLabel(t *testing.T) {
	labels := []string{"Rural Highway", " rural arterial "}

	if !ContainsLabel(labels, "rural highway") {
		t.Error("expected match for normalized label")
	}
	if !ContainsLabel(labels, "RURAL ARTERIAL") {
		t.Error("expected match regardless of case and whitespace")
	}
	if ContainsLabel(labels, "expressway") {
		t.Error("unexpected match for absent label")
	}
	if ContainsLabel(nil, "rural highway") {
		t.Error("unexpected match against nil labels")
	}
}

func TestSpeedInRange(t *testing.T) {
	tests := []struct {
		name  string
		speed int
		rng   []int
		want  bool
	}{
		{"inside range", 70, []int{50, 110}, true},
		{"outside range", 70, []int{80, 120}, false},
		{"inclusive lower bound", 50, []int{50, 110}, true},
		{"inclusive upper bound", 110, []int{50, 110}, true},
		{"nil range", 70, nil, false},
		{"one element", 70, []int{50}, false},
		{"three elements", 70, []int{50, 110, 130}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SpeedInRange(tc.speed, tc.rng); got != tc.want {
				t.Errorf("SpeedInRange(%d, %v) = %v, want %v", tc.speed, tc.rng, got, tc.want)
			}
		})
	}
}
