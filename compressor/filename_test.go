package compressor

import "testing"

func TestCompressFilenameSkipsWhitespace(t *testing.T) {
	got := CompressFilename("id + id * id")
	// distinct non-blank chars in first-seen order: i,d,+,*  ->  i3 d3 +1 *1
	want := "i3d3+1*1"
	if got != want {
		t.Errorf("CompressFilename() = %q, want %q", got, want)
	}
}

func TestCompressFilenameIgnoresSpaces(t *testing.T) {
	withSpaces := CompressFilename("a a a")
	withoutSpaces := CompressFilename("aaa")
	if withSpaces != withoutSpaces {
		t.Errorf("CompressFilename with spaces = %q, without = %q, want equal", withSpaces, withoutSpaces)
	}
	if withSpaces != "a3" {
		t.Errorf("CompressFilename(\"a a a\") = %q, want %q", withSpaces, "a3")
	}
}
