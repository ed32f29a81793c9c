package inkline

import (
	"strings"
	"testing"
)

func TestVersion_EmbeddedIsSemver(t *testing.T) {
	v := Version()
	if v == "" {
		t.Fatal("embedded version is empty")
	}
	if !VersionIsSemver() {
		t.Fatalf("embedded version %q is not semver", v)
	}
}

func TestVersionTag(t *testing.T) {
	tag := VersionTag()
	if !strings.HasPrefix(tag, "v") {
		t.Fatalf("tag %q lacks the v prefix", tag)
	}
	if tag[1:] != Version() {
		t.Fatalf("tag %q does not wrap version %q", tag, Version())
	}
}

func TestIsSemver(t *testing.T) {
	valid := []string{"0.1.0", "1.0.0", "10.20.30", "1.2.3-rc.1", "2.0.0+build.7", "  1.2.3  "}
	for _, v := range valid {
		if !IsSemver(v) {
			t.Errorf("IsSemver(%q)=false, want true", v)
		}
	}

	invalid := []string{"", "1", "1.2", "v1.2.3", "01.2.3", "1.2.3.4", "1.2.x"}
	for _, v := range invalid {
		if IsSemver(v) {
			t.Errorf("IsSemver(%q)=true, want false", v)
		}
	}
}
