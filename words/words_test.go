package words_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arcbound/autolearn/words"
)

func TestPrefixes(t *testing.T) {
	assert.Equal(t, []string{"", "a", "ab"}, words.Prefixes("ab"))
	assert.Equal(t, []string{""}, words.Prefixes(""))
}

func TestSuffixes(t *testing.T) {
	assert.Equal(t, []string{"", "b", "ab"}, words.Suffixes("ab"))
	assert.Equal(t, []string{""}, words.Suffixes(""))
}

func TestPrefixesSuffixesCardinality(t *testing.T) {
	for _, w := range []string{"", "a", "abba", "bbb"} {
		assert.Len(t, words.Prefixes(w), len(w)+1)
		assert.Len(t, words.Suffixes(w), len(w)+1)
	}
}

func TestIsPrefixClosed(t *testing.T) {
	closedOf := func(w string) map[string]struct{} {
		set := make(map[string]struct{})
		for _, p := range words.Prefixes(w) {
			set[p] = struct{}{}
		}

		return set
	}
	assert.True(t, words.IsPrefixClosed(closedOf("abba")))
	assert.False(t, words.IsPrefixClosed(map[string]struct{}{"ab": {}}))
}

func TestIsSuffixClosed(t *testing.T) {
	closedOf := func(w string) map[string]struct{} {
		set := make(map[string]struct{})
		for _, s := range words.Suffixes(w) {
			set[s] = struct{}{}
		}

		return set
	}
	assert.True(t, words.IsSuffixClosed(closedOf("abba")))
	assert.False(t, words.IsSuffixClosed(map[string]struct{}{"ab": {}}))
}

func TestSortByLenLex(t *testing.T) {
	ss := []string{"ba", "", "a", "ab", "b"}
	words.SortByLenLex(ss)
	assert.Equal(t, []string{"", "a", "b", "ab", "ba"}, ss)
}

func TestMinByLenLex(t *testing.T) {
	assert.Equal(t, "a", words.MinByLenLex([]string{"ba", "ab", "a", "b"}))
	assert.Equal(t, "", words.MinByLenLex([]string{"b", "", "a"}))
}

func TestMinLex(t *testing.T) {
	// "aa" sorts before "b" lexicographically despite being longer —
	// the property that distinguishes MinLex from MinByLenLex.
	assert.Equal(t, "aa", words.MinLex([]string{"aa", "b"}))
	assert.Equal(t, "a", words.MinLex([]string{"ba", "ab", "a", "b"}))
}
