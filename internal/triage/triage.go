// Package triage maps free-text diagnosis conclusions to drug categories and
// produces drug recommendations from the catalog. It is deliberately free of
// I/O so the same conclusion always yields the same recommendation.
package triage

import (
	"strings"

	"github.com/mediguide/mediguide/internal/domain/catalog"
)

// DefaultCategory is used when no keyword rule matches.
const DefaultCategory = "常用药物"

// fallbackCount bounds how many drugs a no-match recommendation returns.
const fallbackCount = 3

type rule struct {
	keyword  string
	category string
}

// rules is ordered: the first keyword found in the conclusion wins.
var rules = []rule{
	{"感冒", "感冒药"},
	{"发热", "退烧药"},
	{"咳嗽", "止咳药"},
	{"头痛", "止痛药"},
	{"消炎", "消炎药"},
	{"抗生素", "抗生素"},
	{"过敏", "抗过敏药"},
	{"高血压", "降压药"},
	{"糖尿病", "降糖药"},
}

// InferCategory scans the conclusion for the first matching keyword and
// returns its category, or DefaultCategory when nothing matches.
func InferCategory(conclusion string) string {
	for _, r := range rules {
		if strings.Contains(conclusion, r.keyword) {
			return r.category
		}
	}
	return DefaultCategory
}

// Recommend picks drugs for the conclusion: infer the category, then keep
// catalog entries whose category matches in either containment direction.
// When nothing matches, the first few catalog entries stand in as a generic
// suggestion. An empty catalog yields an empty recommendation.
func Recommend(conclusion string, drugs []*catalog.Drug) []*catalog.Drug {
	if len(drugs) == 0 {
		return nil
	}

	category := InferCategory(conclusion)
	var matched []*catalog.Drug
	for _, d := range drugs {
		if d.Category == "" {
			continue
		}
		if strings.Contains(d.Category, category) || strings.Contains(category, d.Category) {
			matched = append(matched, d)
		}
	}
	if len(matched) > 0 {
		return matched
	}

	n := fallbackCount
	if len(drugs) < n {
		n = len(drugs)
	}
	return drugs[:n]
}
