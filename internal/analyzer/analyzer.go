package analyzer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mcncl/jsonlite/internal/models"
)

// Analyzer computes structural statistics over a decoded value tree

type Analyzer struct{}

// NewAnalyzer creates a new Analyzer instance.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// AnalysisResult holds the statistics collected from one document.
type AnalysisResult struct {
	// KindCounts maps a kind name (null, bool, int, float, string,
	// object, array) to the number of values of that kind in the tree.
	KindCounts map[string]int
	// TotalValues counts every value in the tree, containers included.
	TotalValues int
	// MaxDepth is the deepest nesting level; the root is depth 1.
	MaxDepth int
	// DistinctKeys counts distinct object keys seen anywhere in the tree.
	DistinctKeys int
	// LongestArray and ShortestArray are array-length extremes; both are
	// zero when the document contains no arrays.
	LongestArray  int
	ShortestArray int
}

// Analyze walks the tree once and returns the collected statistics
func (a *Analyzer) Analyze(ir models.IntermediateRepresentation) (AnalysisResult, error) {
	result := AnalysisResult{
		KindCounts: make(map[string]int),
	}
	keys := make(map[string]struct{})
	sawArray := false

	var walk func(v models.JSONValue, depth int)
	walk = func(v models.JSONValue, depth int) {
		result.KindCounts[models.Kind(v)]++
		result.TotalValues++
		if depth > result.MaxDepth {
			result.MaxDepth = depth
		}
		switch val := v.(type) {
		case models.JSONObject:
			for k, child := range val {
				keys[k] = struct{}{}
				walk(child, depth+1)
			}
		case models.JSONArray:
			if !sawArray || len(val) > result.LongestArray {
				result.LongestArray = len(val)
			}
			if !sawArray || len(val) < result.ShortestArray {
				result.ShortestArray = len(val)
			}
			sawArray = true
			for _, child := range val {
				walk(child, depth+1)
			}
		}
	}
	walk(ir.Root, 1)

	result.DistinctKeys = len(keys)
	return result, nil
}

// Summary renders the result as a short human-readable report for --stats
func (r AnalysisResult) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "values: %d, max depth: %d, distinct keys: %d\n",
		r.TotalValues, r.MaxDepth, r.DistinctKeys)

	kinds := make([]string, 0, len(r.KindCounts))
	for k := range r.KindCounts {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	parts := make([]string, 0, len(kinds))
	for _, k := range kinds {
		parts = append(parts, fmt.Sprintf("%s=%d", k, r.KindCounts[k]))
	}
	fmt.Fprintf(&b, "kinds: %s\n", strings.Join(parts, " "))

	if r.KindCounts["array"] > 0 {
		fmt.Fprintf(&b, "array lengths: shortest=%d longest=%d\n", r.ShortestArray, r.LongestArray)
	}
	return b.String()
}
