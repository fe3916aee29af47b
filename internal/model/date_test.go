package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-05")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if d.Year() != 2024 || d.Month() != time.March || d.Day() != 5 {
		t.Errorf("expected 2024-03-05, got %s", d)
	}

	if _, err := ParseDate("05-03-2024"); err == nil {
		t.Error("expected error for wrong format")
	}
}

func TestDateOnly_NoTimezoneDrift(t *testing.T) {
	// 23:30 in Jakarta must stay on the same calendar day
	jakarta := time.FixedZone("WIB", 7*3600)
	late := time.Date(2024, 3, 5, 23, 30, 0, 0, jakarta)

	d := DateOf(late)
	if d.String() != "2024-03-05" {
		t.Errorf("expected 2024-03-05, got %s", d)
	}
}

func TestDateOnly_AddDaysAcrossMonth(t *testing.T) {
	d := NewDate(2024, time.February, 28)
	next := d.AddDays(2)
	// 2024 is a leap year
	if next.String() != "2024-03-01" {
		t.Errorf("expected 2024-03-01, got %s", next)
	}
}

func TestDateOnly_InRange(t *testing.T) {
	start := NewDate(2024, time.March, 1)
	end := NewDate(2024, time.March, 31)

	cases := []struct {
		date DateOnly
		want bool
	}{
		{NewDate(2024, time.March, 1), true},
		{NewDate(2024, time.March, 31), true},
		{NewDate(2024, time.March, 15), true},
		{NewDate(2024, time.February, 29), false},
		{NewDate(2024, time.April, 1), false},
	}
	for _, c := range cases {
		if got := c.date.InRange(start, end); got != c.want {
			t.Errorf("InRange(%s) = %v, want %v", c.date, got, c.want)
		}
	}
}

func TestDateOnly_JSONRoundTrip(t *testing.T) {
	d := NewDate(2024, time.March, 5)

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `"2024-03-05"` {
		t.Errorf("unexpected JSON: %s", data)
	}

	var back DateOnly
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !back.Equal(d) {
		t.Errorf("round trip mismatch: %s != %s", back, d)
	}
}

func TestDateOnly_ScanFromTime(t *testing.T) {
	var d DateOnly
	if err := d.Scan(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if d.String() != "2024-03-05" {
		t.Errorf("expected 2024-03-05, got %s", d)
	}

	if err := d.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) failed: %v", err)
	}
	if !d.IsZero() {
		t.Error("expected zero date after scanning nil")
	}
}

func TestDaysInMonth(t *testing.T) {
	if n := DaysInMonth(2024, time.February); n != 29 {
		t.Errorf("expected 29 days in Feb 2024, got %d", n)
	}
	if n := DaysInMonth(2023, time.February); n != 28 {
		t.Errorf("expected 28 days in Feb 2023, got %d", n)
	}
	if n := DaysInMonth(2024, time.March); n != 31 {
		t.Errorf("expected 31 days in March, got %d", n)
	}
}
