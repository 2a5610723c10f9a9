package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stuttgart-things/ghsecrets/internal/report"
)

func TestPrintReportTable(t *testing.T) {
	entries := []report.SecretEntry{
		{Name: "API_KEY", Line: 2, Status: "set", StatusCode: 201},
		{Line: 3, Status: "skipped", Error: "missing '=' delimiter"},
		{Name: "BROKEN", Line: 4, Status: "failed", StatusCode: 422, Error: "API returned 422"},
	}

	var buf bytes.Buffer
	printReportTable(&buf, entries)
	output := buf.String()

	// Verify header columns
	for _, h := range []string{"LINE", "NAME", "STATUS", "CODE", "ERROR"} {
		if !strings.Contains(output, h) {
			t.Errorf("table output should contain header %q", h)
		}
	}

	// Verify data rows
	for _, d := range []string{"API_KEY", "201", "skipped", "BROKEN", "422", "API returned 422"} {
		if !strings.Contains(output, d) {
			t.Errorf("table output should contain %q", d)
		}
	}

	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 5 {
		t.Errorf("expected 5 lines (header + separator + 3 rows), got %d", len(lines))
	}
}

func TestPrintReportJSON(t *testing.T) {
	entries := []report.SecretEntry{
		{Name: "API_KEY", Line: 2, Status: "set", StatusCode: 201},
	}

	var buf bytes.Buffer
	if err := printReportJSON(&buf, entries); err != nil {
		t.Fatalf("printReportJSON: %v", err)
	}

	var parsed []report.SecretEntry
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if len(parsed) != 1 || parsed[0].Name != "API_KEY" {
		t.Errorf("unexpected parsed output %+v", parsed)
	}
}

func TestPrintReportJSON_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := printReportJSON(&buf, nil); err != nil {
		t.Fatalf("printReportJSON: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("expected empty JSON array, got %q", buf.String())
	}
}

func TestSelectReportEntries(t *testing.T) {
	rep := report.NewReport("octo/hello")
	report.AddEntry(rep, report.SecretEntry{Name: "A", Line: 1, Status: "failed", StatusCode: 422})
	report.AddEntry(rep, report.SecretEntry{Name: "B", Line: 2, Status: "set", StatusCode: 201})
	report.AddEntry(rep, report.SecretEntry{Name: "A", Line: 3, Status: "set", StatusCode: 204})

	tests := []struct {
		name      string
		filter    string
		status    string
		wantLines []int
	}{
		{name: "no filter", wantLines: []int{1, 2, 3}},
		{name: "status only", status: "set", wantLines: []int{2, 3}},
		{name: "name picks last duplicate", filter: "A", wantLines: []int{3}},
		{name: "name and matching status", filter: "A", status: "set", wantLines: []int{3}},
		{name: "name and other status", filter: "A", status: "failed"},
		{name: "unknown name", filter: "MISSING"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := selectReportEntries(rep, tt.filter, tt.status)
			if len(got) != len(tt.wantLines) {
				t.Fatalf("expected %d entries, got %+v", len(tt.wantLines), got)
			}
			for i, line := range tt.wantLines {
				if got[i].Line != line {
					t.Errorf("entry %d: line = %d, want %d", i, got[i].Line, line)
				}
			}
		})
	}
}
