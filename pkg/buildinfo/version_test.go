package buildinfo

import (
	"strings"
	"testing"
)

func TestBanner(t *testing.T) {
	got := Banner()
	if !strings.HasPrefix(got, "footgen "+Version) {
		t.Errorf("Banner() = %q, want prefix %q", got, "footgen "+Version)
	}
	if !strings.Contains(got, Commit) {
		t.Errorf("Banner() = %q, missing commit %q", got, Commit)
	}
}

func TestTemplate(t *testing.T) {
	got := Template()
	if !strings.HasPrefix(got, "{{.Name}} ") {
		t.Errorf("Template() = %q, want cobra name placeholder", got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Error("Template() should end with a newline")
	}
}
