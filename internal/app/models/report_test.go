package models

import "testing"

func TestParseReportStatus(t *testing.T) {
	cases := []struct {
		in   string
		want ReportStatus
	}{
		{"Pending", ReportPending},
		{"pending", ReportPending},
		{"RESOLVED", ReportResolved},
		{" investigating ", ReportInvestigating},
	}
	for _, c := range cases {
		got, ok := ParseReportStatus(c.in)
		if !ok || got != c.want {
			t.Fatalf("ParseReportStatus(%q) = %q ok=%v, want %q", c.in, got, ok, c.want)
		}
	}

	for _, bad := range []string{"", "closed", "done"} {
		if _, ok := ParseReportStatus(bad); ok {
			t.Fatalf("expected %q to be rejected", bad)
		}
	}
}
