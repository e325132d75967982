package utils

import (
	"sort"
	"strconv"
	"strings"
)

// DetermineLocale resolves the display locale from an explicit query value,
// the Accept-Language header, the supported set, and a default. Supported
// values are normalized base tags like "en", "hi".
func DetermineLocale(queryLang, acceptLang string, supported []string, def string) string {
	sup := make(map[string]struct{}, len(supported))
	for _, s := range supported {
		sup[strings.ToLower(s)] = struct{}{}
	}

	// Match a tag against the supported set, reducing region subtags to
	// their base language (hi-IN -> hi).
	pick := func(tag string) (string, bool) {
		t := strings.ToLower(strings.TrimSpace(tag))
		if t == "" {
			return "", false
		}
		if _, ok := sup[t]; ok {
			return t, true
		}
		if i := strings.Index(t, "-"); i > 0 {
			if _, ok := sup[t[:i]]; ok {
				return t[:i], true
			}
		}
		return "", false
	}

	if v, ok := pick(queryLang); ok {
		return v
	}

	type candidate struct {
		lang string
		q    float64
	}
	var cands []candidate
	for _, part := range strings.Split(acceptLang, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		tag := part
		q := 1.0
		if semi := strings.Index(part, ";"); semi >= 0 {
			tag = strings.TrimSpace(part[:semi])
			for _, param := range strings.Split(part[semi+1:], ";") {
				kv := strings.SplitN(param, "=", 2)
				if len(kv) != 2 || strings.TrimSpace(kv[0]) != "q" {
					continue
				}
				if v, err := strconv.ParseFloat(strings.TrimSpace(kv[1]), 64); err == nil && v >= 0 && v <= 1 {
					q = v
				}
			}
		}
		if l, ok := pick(tag); ok && q > 0 {
			cands = append(cands, candidate{lang: l, q: q})
		}
	}
	if len(cands) > 0 {
		sort.SliceStable(cands, func(i, j int) bool { return cands[i].q > cands[j].q })
		return cands[0].lang
	}

	if v, ok := pick(def); ok {
		return v
	}
	if len(supported) > 0 {
		return strings.ToLower(supported[0])
	}
	return "en"
}
