package customers

import (
	"sort"
	"strings"
	"sync"

	"frontdesk/internal/domain"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// similarityFloor is the minimum levenshtein similarity that still
// counts as a name match.
const similarityFloor = 0.55

type ScoredCustomer struct {
	domain.Customer
	Score int `json:"score"`
}

func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/maxLen
}

func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func scoreCustomer(query string, cust domain.Customer, cm *closestmatch.ClosestMatch) int {
	name := normalizeInput(cust.FullName)
	score := 0

	if query == name {
		score += 30
	} else if strings.Contains(name, query) {
		score += 20
	}
	if cm != nil && cm.Closest(query) == name {
		score += 10
	}
	if sim := calculateSimilarity(query, name); sim >= similarityFloor {
		score += int(sim * 10)
	}

	if email := normalizeInput(cust.Email); email != "" && strings.Contains(email, query) {
		score += 15
	}
	if digits := digitsOf(query); len(digits) >= 4 && strings.Contains(digitsOf(cust.Phone), digits) {
		score += 15
	}
	if doc := normalizeInput(cust.Document); doc != "" && doc == query {
		score += 25
	}

	return score
}

func rankCustomers(query string, customers []domain.Customer) []ScoredCustomer {
	query = normalizeInput(query)
	if query == "" || len(customers) == 0 {
		return []ScoredCustomer{}
	}

	keywords := make([]string, 0, len(customers))
	seen := map[string]bool{}
	for _, c := range customers {
		name := normalizeInput(c.FullName)
		if name != "" && !seen[name] {
			seen[name] = true
			keywords = append(keywords, name)
		}
	}
	cm := createMatcher(keywords)

	scoreCh := make(chan ScoredCustomer, len(customers))
	var wg sync.WaitGroup
	for _, cust := range customers {
		wg.Add(1)
		go func(cust domain.Customer) {
			defer wg.Done()
			if score := scoreCustomer(query, cust, cm); score > 0 {
				scoreCh <- ScoredCustomer{Customer: cust, Score: score}
			}
		}(cust)
	}
	wg.Wait()
	close(scoreCh)

	ranked := make([]ScoredCustomer, 0, len(customers))
	for sc := range scoreCh {
		ranked = append(ranked, sc)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].FullName < ranked[j].FullName
	})
	return ranked
}
