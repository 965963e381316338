package expansion

import (
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/campaign-planner/internal/ingestion"
)

// Metrics are the planner figures used to rank one keyword
type Metrics struct {
	Volume      int
	Low         float64
	High        float64
	Competition float64
}

// Ranking maps normalized keywords to their planner metrics
type Ranking map[string]Metrics

// CompetitionScore maps a competition label to a number: low 0.2, high 0.8, otherwise 0.5
func CompetitionScore(label string) float64 {
	l := strings.ToLower(strings.TrimSpace(label))
	switch {
	case strings.HasPrefix(l, "l"):
		return 0.2
	case strings.HasPrefix(l, "h"):
		return 0.8
	default:
		return 0.5
	}
}

// DiscoverRankingFile returns the first CSV in dir whose name mentions "planner" or "gkp"
func DiscoverRankingFile(dir string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := strings.ToLower(e.Name())
		if strings.HasSuffix(name, ".csv") && (strings.Contains(name, "planner") || strings.Contains(name, "gkp")) {
			return filepath.Join(dir, e.Name()), true
		}
	}
	return "", false
}

// LoadRanking reads a keyword planner export with the ingestion reader. When path is empty
// or missing, a planner file is discovered in searchDir. A file without search volumes
// yields an empty ranking.
func LoadRanking(path, searchDir string, logger *zap.Logger) Ranking {
	if logger == nil {
		logger = zap.NewNop()
	}
	if _, err := os.Stat(path); path == "" || err != nil {
		found, ok := DiscoverRankingFile(searchDir)
		if !ok {
			logger.Debug("no ranking file found", zap.String("search_dir", searchDir))
			return Ranking{}
		}
		path = found
	}

	records := ingestion.NormalizeFile(path, "ranking", ingestion.WithLogger(logger))
	ranking := make(Ranking, len(records))
	anyVolume := false
	for _, rec := range records {
		kw := Norm(rec.Keyword)
		if kw == "" {
			continue
		}
		m := Metrics{Competition: CompetitionScore(rec.Competition)}
		if v, ok := rec.Volume(); ok {
			m.Volume = int(v)
			anyVolume = true
		}
		if rec.TopOfPageBidLow != nil {
			m.Low = *rec.TopOfPageBidLow
		}
		if rec.TopOfPageBidHigh != nil {
			m.High = *rec.TopOfPageBidHigh
		}
		ranking[kw] = m
	}
	if !anyVolume {
		logger.Warn("ranking file has no search volumes, ignoring", zap.String("path", path))
		return Ranking{}
	}

	logger.Info("ranking file loaded", zap.String("path", path), zap.Int("keywords", len(ranking)))
	return ranking
}

// Score weighs volume, bid midpoint and competition
func (m Metrics) Score() float64 {
	var mid float64
	switch {
	case m.Low != 0 && m.High != 0:
		mid = (m.Low + m.High) / 2
	case m.Low != 0:
		mid = m.Low
	case m.High != 0:
		mid = m.High
	default:
		mid = 0.1
	}
	return math.Log10(math.Max(1, float64(m.Volume))+1) * mid * (1.1 - m.Competition)
}

// Rank keeps candidates present in the ranking with at least minVolume searches,
// ordered by descending score with ties in candidate order
func (r Ranking) Rank(candidates []string, minVolume int) []string {
	type scored struct {
		keyword string
		score   float64
	}
	var kept []scored
	for _, c := range candidates {
		m, ok := r[c]
		if !ok || m.Volume < minVolume {
			continue
		}
		kept = append(kept, scored{keyword: c, score: m.Score()})
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].score > kept[j].score })

	out := make([]string, 0, len(kept))
	for _, k := range kept {
		out = append(out, k.keyword)
	}
	return out
}
