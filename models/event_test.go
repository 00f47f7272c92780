package models

import "testing"

func TestEventFormValidate(t *testing.T) {
	valid := EventForm{MatchID: 7, PlayerID: 10, Type: EventTypeGoal, Minute: 45, Description: "header from the corner"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid form rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*EventForm)
		want   error
	}{
		{"unknown type", func(f *EventForm) { f.Type = "own_goal" }, ErrInvalidEventType},
		{"minute zero", func(f *EventForm) { f.Minute = 0 }, ErrMinuteOutOfRange},
		{"minute past extra time", func(f *EventForm) { f.Minute = 121 }, ErrMinuteOutOfRange},
		{"short description", func(f *EventForm) { f.Description = "ok" }, ErrDescriptionTooShort},
		{"missing player", func(f *EventForm) { f.PlayerID = 0 }, ErrPlayerRequired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := valid
			tc.mutate(&form)
			if err := form.Validate(); err != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestEventTypeValid(t *testing.T) {
	for _, et := range EventTypes {
		if !et.Valid() {
			t.Fatalf("type %q should be valid", et)
		}
	}
	if EventType("corner").Valid() {
		t.Fatal("unknown type accepted")
	}
}
