package record

import "testing"

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	r := Record{"family": "AFTN", "priority": "GG", "destinations": []string{"LFPOYYYX"}}
	data, err := Marshal(r)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got["family"] != "AFTN" || got["priority"] != "GG" {
		t.Errorf("round-tripped record = %+v, want family=AFTN priority=GG", got)
	}
}

func TestMarshalAll(t *testing.T) {
	records := []Record{{"family": "AFTN"}, {"family": "SBS"}}
	data, err := MarshalAll(records)
	if err != nil {
		t.Fatalf("MarshalAll() error = %v", err)
	}
	if len(data) == 0 {
		t.Fatal("MarshalAll() returned empty output")
	}
}
