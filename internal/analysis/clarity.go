package analysis

import "strings"

// Bullet length band considered readable on one to two lines.
const (
	optimalMinWords = 15
	optimalMaxWords = 25
	shortMinWords   = 8
	longMaxWords    = 35
	outerMinWords   = 4
	outerMaxWords   = 45
)

// Active-voice ratio thresholds for the 0-3 voice component.
const (
	voiceRatioFull = 0.9
	voiceRatioMid  = 0.75
	voiceRatioLow  = 0.6
)

// scoreClarity returns 0-10: length fit (0-3), weak-phrase hygiene
// (0-4), and active voice (0-3).
func scoreClarity(bullets []string) float64 {
	return lengthFitScore(bullets) + weakPhraseScore(bullets) + activeVoiceScore(bullets)
}

// lengthFitScore rewards bullets in the 15-25 word band, with wider
// tolerance bands outside the optimum. Fragments and run-ons beyond
// the outer band score nothing.
func lengthFitScore(bullets []string) float64 {
	var sum float64
	for _, bullet := range bullets {
		words := len(strings.Fields(bullet))
		switch {
		case words >= optimalMinWords && words <= optimalMaxWords:
			sum += 3
		case words >= shortMinWords && words <= longMaxWords:
			sum += 2
		case words >= outerMinWords && words <= outerMaxWords:
			sum += 1
		}
	}
	return sum / float64(len(bullets))
}

// weakPhraseScore starts at 4 and loses one point per distinct
// weak-phrase category found anywhere in the group.
func weakPhraseScore(bullets []string) float64 {
	categories := weakPhraseCategoryCount(strings.Join(bullets, "\n"))
	score := 4 - float64(categories)
	if score < 0 {
		score = 0
	}
	return score
}

// activeVoiceScore maps the active-sentence ratio onto 0-3.
func activeVoiceScore(bullets []string) float64 {
	if len(bullets) == 0 {
		return 0
	}
	active := 0
	for _, bullet := range bullets {
		if !isPassive(bullet) {
			active++
		}
	}
	ratio := float64(active) / float64(len(bullets))
	switch {
	case ratio >= voiceRatioFull:
		return 3
	case ratio >= voiceRatioMid:
		return 2
	case ratio >= voiceRatioLow:
		return 1
	}
	return 0
}
