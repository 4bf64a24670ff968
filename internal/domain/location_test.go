package domain

import "testing"

func TestTerrainLabelFor(t *testing.T) {
	cases := []struct {
		factor float64
		want   string
	}{
		{1.0, "Flat"},
		{1.1, "Flat"},
		{1.11, "Hilly"},
		{1.3, "Hilly"},
		{1.31, "Mountainous"},
		{1.5, "Mountainous"},
	}

	for _, tc := range cases {
		if got := TerrainLabelFor(tc.factor); got != tc.want {
			t.Errorf("TerrainLabelFor(%v) = %q, want %q", tc.factor, got, tc.want)
		}
	}
}

func TestTrafficLabelFor(t *testing.T) {
	cases := []struct {
		factor float64
		want   string
	}{
		{1.0, "Light"},
		{1.1, "Light"},
		{1.15, "Moderate"},
		{1.225, "Moderate"},
		{1.25, "Moderate"},
		{1.26, "Heavy"},
		{1.3, "Heavy"},
	}

	for _, tc := range cases {
		if got := TrafficLabelFor(tc.factor); got != tc.want {
			t.Errorf("TrafficLabelFor(%v) = %q, want %q", tc.factor, got, tc.want)
		}
	}
}
