package aftn

import "testing"

func TestValidateAcceptsParsedMessage(t *testing.T) {
	msg, err := Parse("GG LFPGYYYX LFPOYYYX 151230 NOTAM A1234/24 LFPG RWY 09/27 CLOSED")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if err := Validate(msg); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestValidateRejectsOutOfRangeTime(t *testing.T) {
	msg := &Message{
		Priority:         PriorityGG,
		Addresses:        Addresses{Origin: "LFPGYYYX", Destinations: []Address{"LFPOYYYX"}},
		TransmissionTime: TransmissionTime{Day: 15, Hour: 25, Minute: 0, Literal: "150000"},
		Category:         CategoryGeneric,
		Body:             &GenericMessage{},
	}
	if err := Validate(msg); err == nil {
		t.Fatal("Validate() error = nil, want InvalidDateTime for hour=25")
	}
}

func TestValidateRejectsNoDestination(t *testing.T) {
	msg := &Message{
		Priority:         PriorityGG,
		Addresses:        Addresses{Origin: "LFPGYYYX"},
		TransmissionTime: TransmissionTime{Day: 1, Hour: 0, Minute: 0},
		Category:         CategoryGeneric,
		Body:             &GenericMessage{},
	}
	if err := Validate(msg); err == nil {
		t.Fatal("Validate() error = nil, want MissingField for no destinations")
	}
}

func TestCategoryGroup(t *testing.T) {
	cases := map[Category]CategoryGroup{
		CategoryFPL:   GroupFlightPlan,
		CategoryNOTAM: GroupMeteorological,
		CategoryCOF:   GroupCoordination,
		CategoryGeneric: GroupGeneric,
	}
	for cat, want := range cases {
		if got := cat.Group(); got != want {
			t.Errorf("%s.Group() = %v, want %v", cat, got, want)
		}
	}
}
