package listcrunch

import (
	"fmt"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCrunch(t *testing.T) {
	tests := []struct {
		name  string
		items []int
		want  string
	}{
		{"empty", []int{}, ""},
		{"nil", nil, ""},
		{"single item", []int{77}, "77:0"},
		{"single run", []int{1, 1, 1}, "1:0-2"},
		{"broken run", []int{1, 2, 1}, "1:0,2;2:1"},
		{"first occurrence order", []int{2, 1}, "2:0;1:1"},
		{"composite", []int{50, 50, 3, 50, 50, 3, 60, 70, 70}, "50:0-1,3-4;3:2,5;60:6;70:7-8"},
		{"all distinct", []int{5, 4, 3}, "5:0;4:1;3:2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Crunch(tt.items))
		})
	}
}

func TestCrunch_Strings(t *testing.T) {
	pages := []string{
		"595.0x842.0", "595.0x842.0", "595.0x842.0", "595.0x842.0",
		"595.0x842.0", "595.0x842.0", "595.0x842.0",
	}
	require.Equal(t, "595.0x842.0:0-6", Crunch(pages))
}

type pageSize struct {
	w, h float64
}

func (p pageSize) String() string {
	return fmt.Sprintf("%.1fx%.1f", p.w, p.h)
}

func TestCrunch_UsesStringer(t *testing.T) {
	a4 := pageSize{595, 842}
	letter := pageSize{612, 792}

	require.Equal(t, "595.0x842.0:0,2;612.0x792.0:1", Crunch([]pageSize{a4, letter, a4}))
}

func TestCrunchFunc(t *testing.T) {
	got := CrunchFunc([]int{10, 10, 11}, func(v int) string { return strconv.FormatInt(int64(v), 16) })
	require.Equal(t, "a:0-1;b:2", got)
}

func TestCrunchFunc_RenderCalledOncePerValue(t *testing.T) {
	calls := map[string]int{}
	render := func(v string) string {
		calls[v]++
		return v
	}

	CrunchFunc([]string{"x", "y", "x", "x", "y"}, render)
	require.Equal(t, map[string]int{"x": 1, "y": 1}, calls)
}

func TestCrunch_SameRenderingDifferentValues(t *testing.T) {
	// int64(1) and int32(1) are distinct interface values that both render "1".
	items := []any{int64(1), int32(1), int64(1)}
	crunched := Crunch(items)
	require.Equal(t, "1:0,2;1:1", crunched)

	values, err := Uncrunch(crunched)
	require.NoError(t, err)
	require.Equal(t, []string{"1", "1", "1"}, values)
}

func TestCrunch_Escaping(t *testing.T) {
	items := []string{"a:b", "a:b", "c;d", `e\f`, "plain"}

	unescaped := Crunch(items)
	require.Equal(t, `a:b:0-1;c;d:2;e\f:3;plain:4`, unescaped)
	_, err := Uncrunch(unescaped)
	require.Error(t, err, "default grammar cannot carry delimiter characters")

	escaped := Crunch(items, WithEscaping())
	require.Equal(t, `a\:b:0-1;c\;d:2;e\\f:3;plain:4`, escaped)

	values, err := Uncrunch(escaped, WithUnescaping())
	require.NoError(t, err)
	require.Equal(t, items, values)
}

func TestCrunch_EscapingLeavesPlainValuesUnchanged(t *testing.T) {
	items := []int{50, 50, 3, 50, 50, 3, 60, 70, 70}
	require.Equal(t, Crunch(items), Crunch(items, WithEscaping()))
}

func TestCrunch_RoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for n := 0; n < 200; n++ {
		items := make([]int, rng.Intn(64))
		for i := range items {
			if i > 0 && rng.Intn(3) > 0 {
				items[i] = items[i-1]
				continue
			}
			items[i] = rng.Intn(6)
		}

		want := make([]string, len(items))
		for i, v := range items {
			want[i] = strconv.Itoa(v)
		}

		got, err := Uncrunch(Crunch(items), WithStrictCoverage())
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func BenchmarkCrunch(b *testing.B) {
	items := make([]string, 2048)
	for i := range items {
		if i%17 == 0 {
			items[i] = "612.0x792.0"
		} else {
			items[i] = "595.0x842.0"
		}
	}

	b.ResetTimer()
	for b.Loop() {
		Crunch(items)
	}
}
