package models

import "testing"

func TestTournamentCanEdit(t *testing.T) {
	tour := &Tournament{ID: 1, OrganizerID: 7}

	cases := []struct {
		name string
		user *User
		want bool
	}{
		{"logged out", nil, false},
		{"admin", &User{ID: 99, Role: RoleAdmin}, true},
		{"owning organizer", &User{ID: 7, Role: RoleOrganizer}, true},
		{"other organizer", &User{ID: 8, Role: RoleOrganizer}, false},
		{"delegate", &User{ID: 7, Role: RoleDelegate}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tour.CanEdit(tc.user); got != tc.want {
				t.Fatalf("CanEdit = %v, want %v", got, tc.want)
			}
		})
	}
}
