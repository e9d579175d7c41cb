package services

import (
	"sort"
	"strconv"
	"strings"

	"github.com/renato0307/git-pr/internal/domain"
)

const (
	pullRefPrefix = "refs/pull/"
	pullRefSuffix = "/head"
)

// FindPullRequestNumbers returns the numbers of all pull requests whose head
// reference points at commit, in ascending order. An empty result means no
// pull request was found.
func FindPullRequestNumbers(refs domain.RefSnapshot, commit string) []int {
	var numbers []int
	refs.Each(func(name, target string) {
		if target != commit {
			return
		}
		if number, ok := parsePullRequestRef(name); ok {
			numbers = append(numbers, number)
		}
	})

	sort.Ints(numbers)
	return numbers
}

// parsePullRequestRef extracts <n> from refs/pull/<n>/head.
// Anything that is not exactly that shape is rejected.
func parsePullRequestRef(name string) (int, bool) {
	if !strings.HasPrefix(name, pullRefPrefix) || !strings.HasSuffix(name, pullRefSuffix) {
		return 0, false
	}

	digits := strings.TrimSuffix(strings.TrimPrefix(name, pullRefPrefix), pullRefSuffix)
	number, err := strconv.ParseUint(digits, 10, 31)
	if err != nil || number == 0 {
		return 0, false
	}

	return int(number), true
}
