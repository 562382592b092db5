// Package classify implements the RIASEC classification core: a pure,
// deterministic mapping from skill text and an optional title to a
// 3-letter code with per-category scores and a confidence value.
package classify

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/careermap/riasec/internal/framework"
	"github.com/careermap/riasec/internal/model"
)

// indicator pairs an original phrase with its pre-lowered form.
type indicator struct {
	phrase  string
	lowered string
}

// category is a framework type compiled for matching.
type category struct {
	strongDefs   map[string]struct{}
	moderateDefs map[string]struct{}
	letter       string
	strong       []indicator
	moderate     []indicator
	keywords     []indicator
}

// Classifier scores text against a read-only indicator framework.
// It holds no mutable state, so one instance may be shared across
// goroutines.
type Classifier struct {
	fw         *framework.Framework
	categories []category
}

// New compiles a classifier from a loaded framework.
func New(fw *framework.Framework) *Classifier {
	cats := make([]category, 0, len(model.Letters))
	for _, t := range fw.Types() {
		cat := category{
			letter:       t.Letter,
			strong:       compile(t.Strong),
			moderate:     compile(t.Moderate),
			keywords:     compile(t.Keywords),
			strongDefs:   loweredSet(t.Strong),
			moderateDefs: loweredSet(t.Moderate),
		}
		cats = append(cats, cat)
	}
	return &Classifier{fw: fw, categories: cats}
}

func compile(phrases []string) []indicator {
	out := make([]indicator, len(phrases))
	for i, p := range phrases {
		out[i] = indicator{phrase: p, lowered: strings.ToLower(p)}
	}
	return out
}

func loweredSet(phrases []string) map[string]struct{} {
	out := make(map[string]struct{}, len(phrases))
	for _, p := range phrases {
		out[strings.ToLower(p)] = struct{}{}
	}
	return out
}

// Classify maps skill text and an optional title to a Result. When the
// title is empty and a source link is given, a title is derived from
// the link. Classify is pure: identical inputs yield identical results.
func (c *Classifier) Classify(skillsText, title, sourceLink string) model.Result {
	if title == "" && sourceLink != "" {
		title = TitleFromLink(sourceLink)
	}

	combined := Normalize(title + " " + skillsText)
	titleText := Normalize(title)

	scores := make(map[string]float64, len(model.Letters))
	matched := make(map[string][]string)

	for _, cat := range c.categories {
		score, catMatches := c.scoreCategory(cat, combined, titleText)
		scores[cat.letter] = score
		if len(catMatches) > 0 {
			matched[cat.letter] = catMatches
		}
	}

	code := codeFromScores(scores)
	description, gift := c.fw.Describe(code)

	total := 0.0
	for _, s := range scores {
		total += s
	}

	return model.Result{
		Code:              code,
		PrimaryType:       c.fw.TypeName(code[:1]),
		Scores:            scores,
		Confidence:        confidence(scores, total),
		TotalScore:        total,
		Description:       description,
		Gift:              gift,
		MatchedIndicators: matched,
	}
}

// ClassifySkills is the boundary consumed by the conversational
// orchestration layer: it classifies a list of skill strings.
func (c *Classifier) ClassifySkills(skills []string) model.Result {
	return c.Classify(strings.Join(skills, ", "), "", "")
}

// DescribeCode returns the combination description and the per-letter
// type breakdown for a 3-letter code.
func (c *Classifier) DescribeCode(code string) model.CodeInfo {
	code = strings.ToUpper(code)
	info := model.CodeInfo{Code: code, Description: framework.DefaultDescription}

	if combo, ok := c.fw.Combination(code); ok {
		if combo.Description != "" {
			info.Description = combo.Description
		}
		info.Gift = combo.Gift
		info.CareerThemes = combo.CareerThemes
	}

	for _, letter := range code {
		t, ok := c.fw.Type(string(letter))
		if !ok {
			continue
		}
		info.Types = append(info.Types, model.TypeSummary{
			Letter: t.Letter,
			Name:   t.Name,
			Title:  t.Title,
		})
	}
	return info
}

// scoreCategory applies the tiered scoring rules for one category.
func (c *Classifier) scoreCategory(cat category, combined, titleText string) (float64, []string) {
	var score float64
	var catMatches []string

	// Strong tier. A strong phrase that also appears in the title adds
	// the title bonus to the same bucket, not a separate match entry.
	for _, ind := range cat.strong {
		if !strings.Contains(combined, ind.lowered) {
			continue
		}
		score += model.StrongWeight
		catMatches = append(catMatches, annotate(ind.phrase, model.StrongWeight))
		if titleText != "" && strings.Contains(titleText, ind.lowered) {
			score += model.TitleBonus
		}
	}

	// Moderate tier, skipping phrases already covered by a recorded
	// match so an indicator present at two tiers is counted once.
	for _, ind := range cat.moderate {
		if !strings.Contains(combined, ind.lowered) {
			continue
		}
		if recorded(catMatches, ind.lowered) {
			continue
		}
		score += model.ModerateWeight
		catMatches = append(catMatches, annotate(ind.phrase, model.ModerateWeight))
	}

	// Keyword tier, skipping anything already in the strong or
	// moderate vocabulary of this category.
	for _, ind := range cat.keywords {
		if _, ok := cat.strongDefs[ind.lowered]; ok {
			continue
		}
		if _, ok := cat.moderateDefs[ind.lowered]; ok {
			continue
		}
		if !strings.Contains(combined, ind.lowered) {
			continue
		}
		score += model.KeywordWeight
		catMatches = append(catMatches, annotate(ind.phrase, model.KeywordWeight))
	}

	return score, catMatches
}

// recorded reports whether phrase already appears inside one of the
// recorded match annotations for this category.
func recorded(matches []string, lowered string) bool {
	for _, m := range matches {
		if strings.Contains(strings.ToLower(m), lowered) {
			return true
		}
	}
	return false
}

func annotate(phrase string, weight float64) string {
	return fmt.Sprintf("%s(+%s)", phrase, strconv.FormatFloat(weight, 'f', 1, 64))
}

// codeFromScores ranks the six letters by score descending, stable on
// ties in the fixed alphabet order, and always returns exactly 3
// letters: positive scorers first, then remaining letters in the same
// sorted order.
func codeFromScores(scores map[string]float64) string {
	letters := make([]string, 0, len(model.Letters))
	for _, l := range model.Letters {
		letters = append(letters, string(l))
	}
	sort.SliceStable(letters, func(i, j int) bool {
		return scores[letters[i]] > scores[letters[j]]
	})

	var code strings.Builder
	for _, l := range letters {
		if code.Len() == 3 {
			break
		}
		if scores[l] > 0 {
			code.WriteString(l)
		}
	}
	for _, l := range letters {
		if code.Len() == 3 {
			break
		}
		if scores[l] <= 0 {
			code.WriteString(l)
		}
	}
	return code.String()
}

// confidence blends score dominance with total evidence volume,
// capped to [0,1]. Zero evidence yields zero confidence.
func confidence(scores map[string]float64, total float64) float64 {
	if total == 0 {
		return 0
	}

	top := 0.0
	for _, s := range scores {
		if s > top {
			top = s
		}
	}

	dominance := top / total
	evidence := math.Min(total/10, 1.0)
	conf := math.Min(dominance*0.6+evidence*0.4, 1.0)
	return math.Round(conf*1000) / 1000
}
