package render

import (
	"strconv"
	"strings"

	"cv-generator/internal/model"
)

var monthNames = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// FormatDate turns a "YYYY-MM" token into "{MonthName} {Year}". A numeric
// month outside 1-12 degrades to "month/year"; anything else malformed is
// passed through verbatim. Formatting never fails.
func FormatDate(token string) string {
	if token == "" {
		return ""
	}
	parts := strings.SplitN(token, "-", 2)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return token
	}
	year, month := parts[0], parts[1]
	m, err := strconv.Atoi(month)
	if err != nil {
		return token
	}
	if m < 1 || m > 12 {
		return month + "/" + year
	}
	return monthNames[m-1] + " " + year
}

// FormatPeriod renders a start/end date pair. An empty end date means the
// position is current and renders as "Actual".
func FormatPeriod(start, end string) string {
	if end == "" {
		return FormatDate(start) + " - Actual"
	}
	return FormatDate(start) + " - " + FormatDate(end)
}

// SkillGroup is one rendered category bucket of technical skills.
type SkillGroup struct {
	Category string
	Skills   []string // "name (level)" entries
}

// GroupSkills buckets technical skills by category, preserving the order in
// which each category first appears. Skills without a category land in the
// "General" bucket.
func GroupSkills(skills []model.TechnicalSkill) []SkillGroup {
	var groups []SkillGroup
	index := map[string]int{}
	for _, s := range skills {
		cat := s.Category
		if cat == "" {
			cat = "General"
		}
		i, ok := index[cat]
		if !ok {
			i = len(groups)
			index[cat] = i
			groups = append(groups, SkillGroup{Category: cat})
		}
		groups[i].Skills = append(groups[i].Skills, s.Name+" ("+s.Level+")")
	}
	return groups
}

// nonBlank filters out entries that are empty or whitespace only.
func nonBlank(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if strings.TrimSpace(it) != "" {
			out = append(out, it)
		}
	}
	return out
}
