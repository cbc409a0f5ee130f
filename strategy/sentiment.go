package strategy

import (
	"math"

	"github.com/renga-collective/renga/poem"
	"github.com/renga-collective/renga/sentiment"
)

// Sentiment scores candidates by distance from a target compound polarity
// in [-1, 1]. The analyzer handle is process-wide and created on the first
// Build, so a missing sentiment capability fails the turn that needs it,
// not the strategy's construction.
func Sentiment(target float64) ScoreFactory {
	return SentimentWith(target, sentiment.Default)
}

// SentimentWith is Sentiment with an explicit analyzer source.
func SentimentWith(target float64, source func() (sentiment.Analyzer, error)) ScoreFactory {
	return FactoryFunc(func(*poem.Poem) (ScoreFunc, error) {
		analyzer, err := source()
		if err != nil {
			return nil, err
		}
		return func(candidate string) float64 {
			return math.Abs(analyzer.Compound(candidate) - target)
		}, nil
	})
}
