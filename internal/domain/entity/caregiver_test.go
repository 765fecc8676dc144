package entity

import (
	"reflect"
	"testing"
)

func TestParseAssignedPatients(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []int
	}{
		{"simple list", "1,2,3", []int{1, 2, 3}},
		{"spaces around entries", " 4 , 5 ", []int{4, 5}},
		{"malformed entries dropped", "3, abc, ,7", []int{3, 7}},
		{"empty string", "", []int{}},
		{"only garbage", "abc,  ,x", []int{}},
		{"single id", "12", []int{12}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseAssignedPatients(tc.raw)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ParseAssignedPatients(%q) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestCaregiverAssignedPatientIDs(t *testing.T) {
	c := &Caregiver{AssignedPatients: "3,7"}
	if got := c.AssignedPatientIDs(); len(got) != 2 || got[0] != 3 || got[1] != 7 {
		t.Errorf("AssignedPatientIDs() = %v, want [3 7]", got)
	}
}
