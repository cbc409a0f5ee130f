package sentiment

import "github.com/jonreiter/govader"

type vaderAnalyzer struct {
	inner *govader.SentimentIntensityAnalyzer
}

// NewVader creates an Analyzer backed by the VADER rule-based model.
// Construction loads the lexicon into memory; callers should reuse one
// analyzer rather than building a new one per score.
func NewVader() (Analyzer, error) {
	return &vaderAnalyzer{inner: govader.NewSentimentIntensityAnalyzer()}, nil
}

func (a *vaderAnalyzer) Compound(text string) float64 {
	return a.inner.PolarityScores(text).Compound
}
