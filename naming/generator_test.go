package naming

import (
	"fmt"
	"strings"
	"testing"

	"folderer/models"
)

func TestPadNumber(t *testing.T) {
	tests := []struct {
		n, width int
		want     string
	}{
		{7, 0, "7"},
		{7, 1, "7"},
		{7, 3, "007"},
		{42, 2, "42"},
		{1234, 2, "1234"},
		{0, 4, "0000"},
		{5, 15, "0000000005"},
		{5, -3, "5"},
	}
	for _, tt := range tests {
		if got := PadNumber(tt.n, tt.width); got != tt.want {
			t.Errorf("PadNumber(%d, %d) = %q, want %q", tt.n, tt.width, got, tt.want)
		}
	}
}

func TestNamesFormat(t *testing.T) {
	req := models.FolderRequest{Base: "Take", Numbered: true, Count: 3, Start: 9, Separator: "_", PadWidth: 2}
	got := Names(req)
	want := []string{"Take_09", "Take_10", "Take_11"}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestNamesCountDistinctOrdered(t *testing.T) {
	for _, count := range []int{1, 2, 17, 250} {
		for _, start := range []int{0, 1, 98} {
			for _, pad := range []int{0, 2, 5} {
				req := models.FolderRequest{Base: "F", Numbered: true, Count: count, Start: start, Separator: " ", PadWidth: pad}
				names := Names(req)
				if len(names) != count {
					t.Fatalf("count=%d: got %d names", count, len(names))
				}
				seen := make(map[string]bool, count)
				for i, n := range names {
					if seen[n] {
						t.Fatalf("duplicate name %q", n)
					}
					seen[n] = true
					suffix := strings.TrimPrefix(n, "F ")
					if len(suffix) < pad {
						t.Errorf("%q shorter than pad width %d", suffix, pad)
					}
					if want := PadNumber(start+i, pad); suffix != want {
						t.Errorf("name %d = %q, want suffix %q", i, n, want)
					}
				}
			}
		}
	}
}

func TestNamesNumberingDisabled(t *testing.T) {
	req := models.FolderRequest{Base: "Only", Numbered: false, Count: 40, Start: 7, Separator: "-", PadWidth: 3}
	got := Names(req)
	if len(got) != 1 || got[0] != "Only" {
		t.Errorf("Names() = %v, want [Only]", got)
	}
}

func TestPreview(t *testing.T) {
	tests := []struct {
		name string
		req  models.FolderRequest
		n    int
		want string
	}{
		{"truncated", models.FolderRequest{Base: "New Folder", Numbered: true, Count: 5, Start: 1, Separator: " "}, 3, "New Folder 1, New Folder 2, New Folder 3, ..."},
		{"fits", models.FolderRequest{Base: "A", Numbered: true, Count: 2, Start: 0, Separator: "-", PadWidth: 3}, 5, "A-000, A-001"},
		{"blank base", models.FolderRequest{Base: "  ", Numbered: true, Count: 1, Start: 1, Separator: " "}, 3, "New Folder 1"},
		{"no numbering", models.FolderRequest{Base: "Solo", Numbered: false, Count: 9}, 3, "Solo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Preview(tt.req, tt.n); got != tt.want {
				t.Errorf("Preview() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPreviewSamples(t *testing.T) {
	if PreviewSamples(760) != 3 || PreviewSamples(820) != 4 || PreviewSamples(1200) != 5 {
		t.Error("unexpected sample counts")
	}
}

func TestParseInt(t *testing.T) {
	if ParseInt(" 12 ", 0) != 12 || ParseInt("", 5) != 5 || ParseInt("x1", 1) != 1 {
		t.Error("ParseInt did not honour defaults")
	}
}
