package webnorm

import (
	"encoding/json"
	"strings"
)

// SkillList is a list of skills that unmarshals from either a JSON array
// of strings or a single comma-separated string. Both shapes normalize to
// the same trimmed list, so `"a, b"` and `["a","b"]` are equivalent.
type SkillList []string

func (s *SkillList) UnmarshalJSON(data []byte) error {
	var asList []string
	if err := json.Unmarshal(data, &asList); err == nil {
		*s = normalizeSkills(asList)
		return nil
	}

	var asString string
	if err := json.Unmarshal(data, &asString); err != nil {
		return err
	}
	*s = normalizeSkills(strings.Split(asString, ","))
	return nil
}

func normalizeSkills(in []string) []string {
	out := make([]string, 0, len(in))
	for _, skill := range in {
		if trimmed := strings.TrimSpace(skill); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
