package extract

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"cldump/config"
)

const outputExt = ".json"

// buildOutputPath returns directory and file name the collection log should be
// written to. It uses either default name or user-defined template, which may
// introduce subdirectories under dst. Expanded names are cleaned up and if
// requested transliterated.
func buildOutputPath(dst string, values Values, conf *config.OutputConfig, log *zap.Logger) (string, string) {
	if conf.NameTemplate == "" {
		return dst, config.DefaultOutputName
	}

	expandedName, err := expandTemplate(config.OutputNameTemplateFieldName, conf.NameTemplate, values)
	if err != nil {
		log.Warn("Unable to prepare output filename, using default", zap.Error(err))
		return dst, config.DefaultOutputName
	}

	segments := splitAndCleanPath(filepath.FromSlash(strings.TrimSpace(expandedName)), conf.Transliterate)
	if len(segments) == 0 {
		log.Warn("Output filename template expanded to nothing, using default", zap.String("template", conf.NameTemplate))
		return dst, config.DefaultOutputName
	}

	dirParts := make([]string, 0, len(segments))
	dirParts = append(dirParts, dst)
	dirParts = append(dirParts, segments[:len(segments)-1]...)
	return filepath.Join(dirParts...), segments[len(segments)-1] + outputExt
}

// splitAndCleanPath splits path into cleaned segments dropping "." and ".."
// ones, so result never leaves destination directory. Output extension is
// removed from the last segment.
func splitAndCleanPath(path string, transliterate bool) []string {
	path = strings.TrimSuffix(path, string(os.PathSeparator))
	segments := make([]string, 0, 8)

	for head, tail := filepath.Split(path); ; head, tail = filepath.Split(head) {
		if tail != "" && tail != "." && tail != ".." {
			segments = slices.Insert(segments, 0, tail)
		}
		head = strings.TrimSuffix(head, string(os.PathSeparator))
		if head == "" {
			break
		}
	}

	if len(segments) > 0 {
		last := len(segments) - 1
		if strings.EqualFold(filepath.Ext(segments[last]), outputExt) {
			segments[last] = segments[last][:len(segments[last])-len(outputExt)]
		}
	}

	for i := range segments {
		segments[i] = cleanPathSegment(segments[i], transliterate)
	}
	return segments
}

func cleanPathSegment(segment string, transliterate bool) string {
	segment = strings.TrimSpace(segment)
	if transliterate {
		segment = slug.Make(segment)
	}
	return config.CleanFileName(segment)
}
