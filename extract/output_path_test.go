package extract

import (
	"path/filepath"
	"slices"
	"testing"

	"go.uber.org/zap/zaptest"

	"cldump/config"
)

func TestBuildOutputPath_Default(t *testing.T) {
	log := zaptest.NewLogger(t)
	dir, name := buildOutputPath("/tmp/out", testValues(), &config.OutputConfig{}, log)
	if dir != "/tmp/out" || name != config.DefaultOutputName {
		t.Errorf("buildOutputPath() = (%q, %q)", dir, name)
	}
}

func TestBuildOutputPath_Template(t *testing.T) {
	log := zaptest.NewLogger(t)
	dst := filepath.FromSlash("/tmp/out")

	tests := []struct {
		name          string
		template      string
		transliterate bool
		wantDir       string
		wantName      string
	}{
		{name: "plain", template: "{{ .Cache }}", wantDir: dst, wantName: "osrs-2024.json"},
		{name: "extension kept once", template: "{{ .Cache }}.json", wantDir: dst, wantName: "osrs-2024.json"},
		{name: "extension case", template: "log.JSON", wantDir: dst, wantName: "log.json"},
		{name: "subdirectory", template: "{{ .Format }}/{{ .Cache }}", wantDir: filepath.Join(dst, "zip"), wantName: "osrs-2024.json"},
		{name: "traversal dropped", template: "../../{{ .Cache }}", wantDir: dst, wantName: "osrs-2024.json"},
		{name: "absolute is relative to destination", template: "/etc/{{ .Cache }}", wantDir: filepath.Join(dst, "etc"), wantName: "osrs-2024.json"},
		{name: "transliterate", template: "Журнал {{ .Cache }}", transliterate: true, wantDir: dst, wantName: "zhurnal-osrs-2024.json"},
		{name: "broken template", template: "{{ .Cache ", wantDir: dst, wantName: config.DefaultOutputName},
		{name: "expands to nothing", template: "{{ if false }}x{{ end }}", wantDir: dst, wantName: config.DefaultOutputName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := &config.OutputConfig{NameTemplate: tt.template, Transliterate: tt.transliterate}
			dir, name := buildOutputPath(dst, testValues(), conf, log)
			if dir != tt.wantDir {
				t.Errorf("dir = %q, want %q", dir, tt.wantDir)
			}
			if name != tt.wantName {
				t.Errorf("name = %q, want %q", name, tt.wantName)
			}
		})
	}
}

func TestSplitAndCleanPath(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{path: "", want: []string{}},
		{path: "file", want: []string{"file"}},
		{path: "a/b/file.json", want: []string{"a", "b", "file"}},
		{path: "a//b/", want: []string{"a", "b"}},
		{path: "./a/../b", want: []string{"a", "b"}},
		{path: ".hidden", want: []string{"hidden"}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := splitAndCleanPath(filepath.FromSlash(tt.path), false)
			if !slices.Equal(got, tt.want) {
				t.Errorf("splitAndCleanPath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestCleanPathSegment(t *testing.T) {
	if got := cleanPathSegment("  Bosses  ", false); got != "Bosses" {
		t.Errorf("cleanPathSegment() = %q", got)
	}
	if got := cleanPathSegment("Clue Scrolls (all)", true); got != "clue-scrolls-all" {
		t.Errorf("cleanPathSegment() with transliteration = %q", got)
	}
	if got := cleanPathSegment("!!!", true); got != "_bad_file_name_" {
		t.Errorf("cleanPathSegment() = %q", got)
	}
}
