package brand

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want StringList
	}{
		{"array", `["bold","warm"]`, StringList{"bold", "warm"}},
		{"array drops non-strings", `["bold",3,null,"warm"]`, StringList{"bold", "warm"}},
		{"comma string", `"bold, warm ,  ,expert"`, StringList{"bold", "warm", "expert"}},
		{"tone object with string", `{"tone":"calm, steady"}`, StringList{"calm", "steady"}},
		{"tone object with array", `{"tone":["calm"],"pace":"slow"}`, StringList{"calm"}},
		{"object without tone is ignored", `{"pace":"slow"}`, StringList{"keep"}},
		{"number is ignored", `42`, StringList{"keep"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := StringList{"keep"}
			require.NoError(t, json.Unmarshal([]byte(tt.in), &l))
			assert.Equal(t, tt.want, l)
		})
	}
}

type mergeSample struct {
	Title  string     `json:"title"`
	Score  float64    `json:"score"`
	Tags   StringList `json:"tags"`
	Nested struct {
		A string `json:"a"`
		B string `json:"b"`
	} `json:"nested"`
	Items []struct {
		Name string `json:"name"`
		Note string `json:"note"`
	} `json:"items"`
}

func sampleFallback() mergeSample {
	var s mergeSample
	s.Title = "fallback title"
	s.Score = 8.5
	s.Tags = StringList{"one", "two"}
	s.Nested.A = "fa"
	s.Nested.B = "fb"
	s.Items = append(s.Items, struct {
		Name string `json:"name"`
		Note string `json:"note"`
	}{"first", "kept?"})
	return s
}

func TestMergeOver(t *testing.T) {
	t.Parallel()

	t.Run("omitted and null fields keep fallback", func(t *testing.T) {
		got, report, err := mergeOver(`{"title":null,"nested":{"a":"model a"}}`, sampleFallback())
		require.NoError(t, err)
		assert.Empty(t, report.Rejected)
		assert.Equal(t, "fallback title", got.Title)
		assert.Equal(t, "model a", got.Nested.A)
		assert.Equal(t, "fb", got.Nested.B)
		assert.Equal(t, 8.5, got.Score)
	})

	t.Run("arrays replace wholesale", func(t *testing.T) {
		got, _, err := mergeOver(`{"items":[{"name":"model"}],"tags":["x"]}`, sampleFallback())
		require.NoError(t, err)
		require.Len(t, got.Items, 1)
		assert.Equal(t, "model", got.Items[0].Name)
		assert.Empty(t, got.Items[0].Note, "elements are not merged with fallback elements")
		assert.Equal(t, StringList{"x"}, got.Tags)
	})

	t.Run("mistyped fields keep fallback", func(t *testing.T) {
		got, report, err := mergeOver(`{"score":"nine","nested":"flat","title":"ok"}`, sampleFallback())
		require.NoError(t, err)
		assert.Equal(t, 8.5, got.Score)
		assert.Equal(t, "fa", got.Nested.A)
		assert.Equal(t, "ok", got.Title)
		assert.ElementsMatch(t, []string{"score", "nested"}, report.Rejected)
	})

	t.Run("string lists accept loose shapes", func(t *testing.T) {
		got, _, err := mergeOver(`{"tags":"red, blue"}`, sampleFallback())
		require.NoError(t, err)
		assert.Equal(t, StringList{"red", "blue"}, got.Tags)

		got, report, err := mergeOver(`{"tags":{"mood":"calm"}}`, sampleFallback())
		require.NoError(t, err)
		assert.Equal(t, StringList{"one", "two"}, got.Tags)
		assert.Equal(t, []string{"tags"}, report.Rejected)
	})

	t.Run("mistyped list elements keep fallback", func(t *testing.T) {
		tests := []struct {
			name string
			raw  string
			path string
		}{
			{"numbers in string list", `{"tags":[1,2]}`, "tags"},
			{"null in string list", `{"tags":["a",null]}`, "tags"},
			{"blank string", `{"tags":"  "}`, "tags"},
			{"commas only", `{"tags":" , ,"}`, "tags"},
			{"tone not a list", `{"tags":{"tone":7}}`, "tags"},
			{"element field mistyped", `{"items":[{"name":5}]}`, "items"},
			{"element not an object", `{"items":["first"]}`, "items"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, report, err := mergeOver(tt.raw, sampleFallback())
				require.NoError(t, err)
				assert.Equal(t, []string{tt.path}, report.Rejected)
				assert.Equal(t, StringList{"one", "two"}, got.Tags)
				require.Len(t, got.Items, 1)
				assert.Equal(t, "first", got.Items[0].Name)
			})
		}
	})

	t.Run("tone object with a list is used", func(t *testing.T) {
		got, report, err := mergeOver(`{"tags":{"tone":["calm","warm"]}}`, sampleFallback())
		require.NoError(t, err)
		assert.Empty(t, report.Rejected)
		assert.Equal(t, StringList{"calm", "warm"}, got.Tags)
	})

	t.Run("unknown keys are dropped", func(t *testing.T) {
		got, _, err := mergeOver(`{"title":"t","extra":{"deep":true}}`, sampleFallback())
		require.NoError(t, err)
		assert.Equal(t, "t", got.Title)
	})

	t.Run("key filter", func(t *testing.T) {
		got, _, err := mergeOver(`{"title":"ignored","nested":{"b":"used"}}`, sampleFallback(), "nested")
		require.NoError(t, err)
		assert.Equal(t, "fallback title", got.Title)
		assert.Equal(t, "used", got.Nested.B)
	})

	t.Run("non-object replies fail", func(t *testing.T) {
		for _, raw := range []string{`[1,2]`, `"text"`, `null`, `{broken`, ``} {
			got, _, err := mergeOver(raw, sampleFallback())
			assert.ErrorIs(t, err, ErrNotJSONObject, "reply %q", raw)
			assert.Equal(t, sampleFallback(), got)
		}
	})
}

func TestMergeOver_FallbackNotAliased(t *testing.T) {
	t.Parallel()

	fb := sampleFallback()
	got, _, err := mergeOver(`{"tags":["changed"]}`, fb)
	require.NoError(t, err)
	got.Items[0].Name = "mutated"
	assert.Equal(t, StringList{"one", "two"}, fb.Tags)
	assert.Equal(t, "first", fb.Items[0].Name)
}
