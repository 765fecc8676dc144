package entity

import "testing"

func TestMedicationDoseTimes(t *testing.T) {
	tests := []struct {
		name     string
		schedule string
		want     []string
	}{
		{"two doses", "08:00,20:00", []string{"08:00", "20:00"}},
		{"spaces tolerated", " 08:00 , 20:00 ", []string{"08:00", "20:00"}},
		{"malformed entries dropped", "08:00,late,25:99,20:00", []string{"08:00", "20:00"}},
		{"empty schedule", "", []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := &Medication{TimeSchedule: tc.schedule}
			got := m.DoseTimes()
			if len(got) != len(tc.want) {
				t.Fatalf("DoseTimes(%q) returned %d times, want %d", tc.schedule, len(got), len(tc.want))
			}
			for i, want := range tc.want {
				if got[i].Format("15:04") != want {
					t.Errorf("dose %d = %s, want %s", i, got[i].Format("15:04"), want)
				}
			}
		})
	}
}
