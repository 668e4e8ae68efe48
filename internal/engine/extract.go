package engine

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fwaudit/fwaudit/internal/model"
	fwerrors "github.com/fwaudit/fwaudit/pkg/errors"
)

// extractionRule is a compiled extraction pattern plus its capture group and
// optional value separator.
type extractionRule struct {
	re        *regexp.Regexp
	group     int
	separator string
}

// compileRule builds the extraction rule for a spec. A pattern that does not
// compile, or a capture group index the pattern cannot satisfy, is a
// configuration error scoped to this one parameter.
func compileRule(spec model.ParameterSpec) (*extractionRule, error) {
	// Device output is scanned case-insensitively across lines, matching
	// how operators write baseline patterns against show-command output.
	re, err := regexp.Compile("(?im)" + spec.Pattern)
	if err != nil {
		return nil, fwerrors.NewPatternError(spec.Name, spec.Pattern, err)
	}

	group := spec.CaptureGroup
	if group <= 0 {
		group = 1
	}
	if re.NumSubexp() < group {
		return nil, fwerrors.NewPatternError(spec.Name, spec.Pattern,
			fmt.Errorf("capture group %d out of range, pattern has %d group(s)", group, re.NumSubexp()))
	}

	return &extractionRule{re: re, group: group, separator: spec.Separator}, nil
}

// extract collects the rule's capture group from every match in the raw
// output, in order of appearance. With a separator configured, each captured
// value is split, trimmed, and flattened with empty pieces dropped. Zero
// matches yield an empty candidate list.
func (r *extractionRule) extract(raw string) []string {
	matches := r.re.FindAllStringSubmatch(raw, -1)
	if len(matches) == 0 {
		return nil
	}

	var candidates []string
	for _, m := range matches {
		value := strings.TrimSpace(m[r.group])
		if r.separator == "" {
			candidates = append(candidates, value)
			continue
		}
		for _, piece := range strings.Split(value, r.separator) {
			piece = strings.TrimSpace(piece)
			if piece != "" {
				candidates = append(candidates, piece)
			}
		}
	}

	return candidates
}
