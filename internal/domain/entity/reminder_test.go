package entity

import "testing"

func TestReminderIsTerminal(t *testing.T) {
	tests := []struct {
		status ReminderStatus
		want   bool
	}{
		{ReminderStatusPending, false},
		{ReminderStatusDone, true},
		{ReminderStatusMissed, true},
	}

	for _, tc := range tests {
		r := &Reminder{Status: tc.status}
		if got := r.IsTerminal(); got != tc.want {
			t.Errorf("IsTerminal() with %s = %v, want %v", tc.status, got, tc.want)
		}
	}
}
