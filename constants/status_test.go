package constants_test

import (
	"testing"

	"github.com/haidangnguyen/resume-tracker/constants"
)

func TestParseStatus(t *testing.T) {
	for _, s := range constants.Statuses {
		got, ok := constants.ParseStatus(s)
		if !ok || string(got) != s {
			t.Fatalf("ParseStatus(%q) = %q, %v", s, got, ok)
		}
	}
	if _, ok := constants.ParseStatus("SHIPPED"); ok {
		t.Fatal("expected unknown status to be rejected")
	}
	if _, ok := constants.ParseStatus("pending"); ok {
		t.Fatal("status values are case-sensitive")
	}
}

func TestDefaultTransitions(t *testing.T) {
	cases := []struct {
		from, to constants.Status
		want     bool
	}{
		{constants.StatusPending, constants.StatusReviewing, true},
		{constants.StatusReviewing, constants.StatusApproved, true},
		{constants.StatusReviewing, constants.StatusRejected, true},
		{constants.StatusPending, constants.StatusApproved, false},
		{constants.StatusPending, constants.StatusRejected, false},
		{constants.StatusApproved, constants.StatusReviewing, false},
		{constants.StatusRejected, constants.StatusReviewing, false},
		{constants.StatusReviewing, constants.StatusPending, false},
	}
	for _, c := range cases {
		if got := constants.CanTransition(constants.DefaultTransitions, c.from, c.to); got != c.want {
			t.Errorf("CanTransition(%s -> %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestTerminalStatesHaveNoOutgoingEdges(t *testing.T) {
	for _, terminal := range []constants.Status{constants.StatusApproved, constants.StatusRejected} {
		if outs := constants.DefaultTransitions[terminal]; len(outs) != 0 {
			t.Fatalf("terminal status %s has outgoing edges: %v", terminal, outs)
		}
	}
}

func TestIsPDF(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"cv.pdf", true},
		{"dir/cv.pdf", true},
		{"cv.PDF", false}, // suffix match is case-sensitive
		{"cv.pdf.txt", false},
		{"cv.txt", false},
		{"", false},
	}
	for _, c := range cases {
		if got := constants.IsPDF(c.name); got != c.want {
			t.Errorf("IsPDF(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}
