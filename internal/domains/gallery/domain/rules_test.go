package domain

import "testing"

func TestIsImageFilename(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"a.png", true},
		{"b.jpg", true},
		{"c.jpeg", true},
		{"d.webp", true},
		{"e.gif", true},
		{"UPPER.PNG", true},
		{"mixed.JpEg", true},
		{"notes.txt", false},
		{"archive.png.zip", false},
		{"noext", false},
		{"report.html", false},
		{".png", true},
	}
	for _, tt := range tests {
		if got := IsImageFilename(tt.name); got != tt.want {
			t.Errorf("IsImageFilename(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
