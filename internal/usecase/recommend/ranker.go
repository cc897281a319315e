package recommend

import (
	"fmt"
	"math"
	"sort"

	domiv "github.com/roadsafe-cloud/roadsafe/internal/domain/intervention"
	domrec "github.com/roadsafe-cloud/roadsafe/internal/domain/recommend"
)

// Factor weights. Independent and additive; the maximum total is 1.0.
const (
	weightIssues       = 0.45
	weightRoadType     = 0.25
	weightEnvironments = 0.20
	weightSpeed        = 0.05
	weightUrbanRural   = 0.05
)

// Rank scores every intervention against the filter and returns them in
// descending score order. The sort is stable, so equal-score records keep
// their input order; an empty filter yields all zeros in input order.
func Rank(ivs []domiv.Intervention, f domrec.Filter) []domrec.Scored {
	ranked := make([]domrec.Scored, 0, len(ivs))
	for _, iv := range ivs {
		score, reasons := scoreIntervention(iv, f)
		ranked = append(ranked, domrec.Scored{
			Intervention: iv,
			Score:        round4(score),
			Reasons:      reasons,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// scoreIntervention evaluates the five factors. A factor is skipped entirely
// when its filter field is unset; a matching factor with zero overlap still
// contributes zero without emitting a reason.
func scoreIntervention(iv domiv.Intervention, f domrec.Filter) (float64, []string) {
	var score float64
	var reasons []string

	if len(f.Issues) > 0 {
		distinct := len(domiv.NormalizeSet(f.Issues))
		overlap := domiv.Overlap(f.Issues, iv.Issues)
		score += weightIssues * float64(overlap) / float64(distinct)
		if overlap > 0 {
			reasons = append(reasons, fmt.Sprintf("Matches issues: %d/%d", overlap, distinct))
		}
	}

	if f.RoadType != "" && domiv.ContainsLabel(iv.RoadTypes, f.RoadType) {
		score += weightRoadType
		reasons = append(reasons, "Applicable to specified road type")
	}

	if len(f.Environments) > 0 {
		distinct := len(domiv.NormalizeSet(f.Environments))
		overlap := domiv.Overlap(f.Environments, iv.Environments)
		score += weightEnvironments * float64(overlap) / float64(distinct)
		if overlap > 0 {
			reasons = append(reasons, "Suitable for the described environment")
		}
	}

	if f.SpeedKmh != nil && domiv.SpeedInRange(*f.SpeedKmh, iv.SuitableSpeedRange) {
		score += weightSpeed
		reasons = append(reasons, "Effective within given speed range")
	}

	if f.UrbanRural != "" && domiv.ContainsLabel(iv.UrbanRural, f.UrbanRural) {
		score += weightUrbanRural
		reasons = append(reasons, "Designed for the specified context (urban/rural)")
	}

	return score, reasons
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
