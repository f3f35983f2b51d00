package helpers

import (
	"strings"
	"testing"
)

func TestObjectPath(t *testing.T) {
	got := ObjectPath("resumes", "u1", `C:\docs\my resume.pdf`)
	if !strings.HasPrefix(got, "resumes/u1/") || !strings.HasSuffix(got, "-my_resume.pdf") {
		t.Fatalf("unexpected object path %q", got)
	}
	if got := PublicURL("bkt", "a/b.png"); got != "https://storage.googleapis.com/bkt/a/b.png" {
		t.Fatalf("unexpected url %q", got)
	}
}
