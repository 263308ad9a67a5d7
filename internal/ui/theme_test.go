package ui

import (
	"strings"
	"testing"
)

func TestDuration(t *testing.T) {
	cases := map[int64]string{
		0:    "0s",
		59:   "59s",
		60:   "1m",
		3599: "59m",
		3600: "1h 0m",
		5400: "1h 30m",
	}
	for in, want := range cases {
		if got := Duration(in); got != want {
			t.Fatalf("Duration(%d)=%q, want %q", in, got, want)
		}
	}
}

func TestClock(t *testing.T) {
	if got := Clock(1500); got != "25:00" {
		t.Fatalf("Clock(1500)=%q, want 25:00", got)
	}
	if got := Clock(3725); got != "1:02:05" {
		t.Fatalf("Clock(3725)=%q, want 1:02:05", got)
	}
	if got := Clock(-3); got != "00:00" {
		t.Fatalf("Clock(-3)=%q, want 00:00", got)
	}
}

func TestBarWidth(t *testing.T) {
	got := Bar(5, 10, 10, "")
	if n := strings.Count(got, "█"); n != 5 {
		t.Fatalf("filled=%d, want 5", n)
	}
	got = Bar(1, 1000, 10, "")
	if n := strings.Count(got, "█"); n != 1 {
		t.Fatalf("tiny value filled=%d, want 1", n)
	}
}
