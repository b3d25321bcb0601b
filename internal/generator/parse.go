package generator

import (
	"math/rand/v2"
	"strconv"
	"strings"
)

// NoOutstandingLoan is the debt-type value the setup form submits when the
// user has no loan to declare.
const NoOutstandingLoan = "No Outstanding Loan"

// RandomInRange returns a uniform integer in [min, max] inclusive. Inverted
// bounds are swapped rather than rejected: generation is advisory and must
// not fail on bad input.
func RandomInRange(min, max int) int {
	if min > max {
		min, max = max, min
	}
	return min + rand.IntN(max-min+1)
}

// ParseAmountRange resolves a user-supplied rupee figure. A "min-max" string
// draws uniformly between the bounds, a single number is returned as-is and
// anything unparseable resolves to 0. Currency symbols and digit grouping are
// stripped first, so lakh-style grouping ("1,00,000") parses the same as
// western grouping.
func ParseAmountRange(s string) int {
	return parseRange(s, stripAmount)
}

// ParseDurationRange resolves a small-integer range such as a loan tenure in
// years ("1-5"), with the same contract as ParseAmountRange but without
// currency stripping.
func ParseDurationRange(s string) int {
	return parseRange(s, strings.TrimSpace)
}

func parseRange(s string, clean func(string) string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	var nums []int
	for part := range strings.SplitSeq(s, "-") {
		n, err := strconv.Atoi(clean(part))
		if err != nil {
			continue
		}
		nums = append(nums, n)
		if len(nums) == 2 {
			break
		}
	}
	switch len(nums) {
	case 2:
		return RandomInRange(nums[0], nums[1])
	case 1:
		return nums[0]
	}
	return 0
}

func stripAmount(s string) string {
	s = strings.ReplaceAll(s, "₹", "")
	s = strings.ReplaceAll(s, ",", "")
	return strings.TrimSpace(s)
}

// NormalizeLoanKey turns a declared loan type ("Home Loan") into its lookup
// key ("home_loan"). Every space collapses to an underscore.
func NormalizeLoanKey(loanType string) string {
	key := strings.ToLower(strings.TrimSpace(loanType))
	return strings.ReplaceAll(key, " ", "_")
}

func loanDisplayName(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// firstNumber parses the leading integer of a possibly-ranged string
// ("10-50" -> 10). Returns 0 when nothing parses.
func firstNumber(s string) int {
	part, _, _ := strings.Cut(s, "-")
	n, err := strconv.Atoi(strings.TrimSpace(part))
	if err != nil {
		return 0
	}
	return n
}

// parsePercent parses an interest figure like "4.2%".
func parsePercent(s string) (float64, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
