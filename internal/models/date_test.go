package models_test

import (
	"encoding/json"
	"testing"

	"github.com/recruitkit/candidatesdb/internal/models"
)

func TestDateUnmarshalDayString(t *testing.T) {
	var d models.Date
	if err := json.Unmarshal([]byte(`"1990-05-15"`), &d); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if d.String() != "1990-05-15" {
		t.Errorf("Expected 1990-05-15, got %s", d.String())
	}
}

func TestDateUnmarshalTimestampDropsTimeOfDay(t *testing.T) {
	var d models.Date
	if err := json.Unmarshal([]byte(`"1990-05-15T13:45:30Z"`), &d); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if d.String() != "1990-05-15" {
		t.Errorf("Expected 1990-05-15, got %s", d.String())
	}
}

func TestDateUnmarshalInvalid(t *testing.T) {
	var d models.Date
	if err := json.Unmarshal([]byte(`"15/05/1990"`), &d); err == nil {
		t.Error("Expected invalid date string to fail")
	}
	if err := json.Unmarshal([]byte(`42`), &d); err == nil {
		t.Error("Expected non-string date to fail")
	}
}

func TestDateUnmarshalNullIsZero(t *testing.T) {
	var d models.Date
	if err := json.Unmarshal([]byte(`null`), &d); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if !d.IsZero() {
		t.Error("Expected null to produce the zero date")
	}
}

func TestDateMarshal(t *testing.T) {
	var d models.Date
	if err := json.Unmarshal([]byte(`"1985-12-03"`), &d); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}

	out, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}
	if string(out) != `"1985-12-03"` {
		t.Errorf("Expected quoted day string, got %s", out)
	}

	out, err = json.Marshal(models.Date{})
	if err != nil {
		t.Fatalf("Failed to marshal zero date: %v", err)
	}
	if string(out) != "null" {
		t.Errorf("Expected null for zero date, got %s", out)
	}
}
