// ABOUTME: Lexicon-based sentiment scoring for journal text
// ABOUTME: Produces a polarity in [-1, 1] with negation and intensifier handling
package analysis

import (
	"math"
	"strings"
	"unicode"
)

// Analyzer scores text polarity from a word lexicon.
type Analyzer struct {
	lexicon      map[string]float64
	negators     map[string]bool
	intensifiers map[string]float64
}

// NewAnalyzer returns an analyzer with the built-in English lexicon.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		lexicon:      defaultLexicon,
		negators:     defaultNegators,
		intensifiers: defaultIntensifiers,
	}
}

// Score returns the mean polarity of the scored words in text, clamped to [-1, 1].
// Text with no scored words is neutral (0).
func (a *Analyzer) Score(text string) float64 {
	words := tokenize(text)

	var sum float64
	var scored int
	for i, w := range words {
		polarity, ok := a.lexicon[w]
		if !ok {
			continue
		}

		// Look back up to two words for modifiers
		for j := i - 1; j >= 0 && j >= i-2; j-- {
			prev := words[j]
			if a.negators[prev] {
				polarity = -polarity * 0.5
			} else if boost, ok := a.intensifiers[prev]; ok {
				polarity *= boost
			}
		}

		sum += polarity
		scored++
	}

	if scored == 0 {
		return 0
	}
	return round(clamp(sum/float64(scored), -1, 1), 4)
}

func tokenize(text string) []string {
	text = strings.ToLower(strings.ReplaceAll(text, "n't", " not"))
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

var defaultNegators = map[string]bool{
	"not": true, "no": true, "never": true, "hardly": true, "barely": true, "nothing": true, "without": true,
}

var defaultIntensifiers = map[string]float64{
	"very": 1.3, "really": 1.3, "so": 1.2, "extremely": 1.5, "incredibly": 1.5,
	"super": 1.3, "quite": 1.1, "slightly": 0.6, "somewhat": 0.7, "kinda": 0.7,
}

var defaultLexicon = map[string]float64{
	// positive
	"good": 0.7, "great": 0.8, "amazing": 0.9, "awesome": 0.9, "wonderful": 0.9, "fantastic": 0.9,
	"happy": 0.8, "glad": 0.6, "joy": 0.8, "joyful": 0.8, "love": 0.8, "loved": 0.8, "lovely": 0.7,
	"excited": 0.7, "exciting": 0.7, "calm": 0.4, "peaceful": 0.6, "relaxed": 0.5, "proud": 0.6,
	"grateful": 0.7, "thankful": 0.7, "fun": 0.6, "nice": 0.5, "fine": 0.2, "okay": 0.1, "ok": 0.1,
	"productive": 0.5, "hopeful": 0.6, "better": 0.4, "best": 0.9, "enjoyed": 0.6, "enjoy": 0.6,
	"beautiful": 0.8, "successful": 0.7, "win": 0.6, "won": 0.6, "smile": 0.6, "laughed": 0.6,
	"energized": 0.6, "content": 0.4, "confident": 0.6, "rested": 0.4, "accomplished": 0.7,
	// negative
	"bad": -0.7, "terrible": -0.9, "awful": -0.9, "horrible": -0.9, "sad": -0.7, "unhappy": -0.7,
	"angry": -0.7, "mad": -0.6, "upset": -0.6, "anxious": -0.6, "anxiety": -0.6, "worried": -0.5,
	"stressed": -0.6, "stress": -0.5, "tired": -0.4, "exhausted": -0.6, "lonely": -0.6, "alone": -0.3,
	"depressed": -0.9, "hate": -0.8, "hated": -0.8, "rough": -0.4, "hard": -0.3, "difficult": -0.4,
	"worse": -0.6, "worst": -0.9, "frustrated": -0.6, "annoyed": -0.5, "bored": -0.3, "boring": -0.4,
	"sick": -0.5, "hurt": -0.6, "pain": -0.6, "cried": -0.6, "crying": -0.6, "fail": -0.6,
	"failed": -0.6, "lost": -0.4, "scared": -0.6, "afraid": -0.6, "overwhelmed": -0.6, "miserable": -0.9,
	"disappointed": -0.6, "guilty": -0.5, "nervous": -0.4,
}
