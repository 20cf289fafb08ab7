package stringutil

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		sep  string
		want string
	}{
		{"empty", nil, ",", ""},
		{"single", []string{"a"}, ",", "a"},
		{"several", []string{"a", "b", "c"}, ",", "a,b,c"},
		{"multi-rune separator", []string{"x", "y"}, " | ", "x | y"},
		{"empty separator", []string{"x", "y", "z"}, "", "xyz"},
		{"empty elements", []string{"", "", ""}, "-", "--"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Join(tt.in, tt.sep))
			assert.Equal(t, tt.want, JoinSeq(slices.Values(tt.in), tt.sep))
		})
	}
}

func TestJoin_NonStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1, 2, 3", Join([]int{1, 2, 3}, ", "))
	assert.Equal(t, "true/false", JoinSeq(slices.Values([]bool{true, false}), "/"))
}

func TestJoinSeq_PreservesIterationOrder(t *testing.T) {
	t.Parallel()

	m := map[int]string{3: "c", 1: "a", 2: "b"}
	keys := slices.Sorted(maps.Keys(m))
	assert.Equal(t, "1;2;3", JoinSeq(slices.Values(keys), ";"))
	assert.Equal(t, Join(keys, ";"), JoinSeq(slices.Values(keys), ";"))
}

func TestTruncateRunes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", TruncateRunes("short", 10, "..."))
	assert.Equal(t, "hello w...", TruncateRunes("hello world!", 10, "..."))
	assert.Equal(t, "日本...", TruncateRunes("日本語テキスト", 5, "..."))
	assert.Equal(t, "..", TruncateRunes("abcdef", 1, ".."))
}

func TestCapitalizeFirst(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"hello", "Hello"},
		{"Hello", "Hello"},
		{"h", "H"},
		{"élan", "Élan"},
		{"1abc", "1abc"},
		{"\xffabc", "\xffabc"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CapitalizeFirst(tt.in), "CapitalizeFirst(%q)", tt.in)
	}
}

func TestToTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"hello world", "Hello World"},
		{"hello-world", "Hello-World"},
		{"123abc", "123Abc"},
		{"don't stop", "Don'T Stop"},
		{"already Title", "Already Title"},
		{"mIxEd", "MIxEd"},
		{"über straße", "Über Straße"},
		{"a\xffb", "A\xffB"},
		{"  spaced  out ", "  Spaced  Out "},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ToTitle(tt.in), "ToTitle(%q)", tt.in)
	}
}

func TestCasePredicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in    string
		lower bool
		upper bool
	}{
		{"abc", true, false},
		{"abC", false, false},
		{"ABC", false, true},
		{"123", true, true},
		{"", true, true},
		{"-_ !", true, true},
		{"straße", true, false},
		{"ÄÖÜ", false, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.lower, IsLowerCase(tt.in), "IsLowerCase(%q)", tt.in)
		assert.Equal(t, tt.upper, IsUpperCase(tt.in), "IsUpperCase(%q)", tt.in)
	}
}

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, IsEmpty(""))
	assert.False(t, IsEmpty(" "))
	assert.False(t, IsEmpty("a"))
}
