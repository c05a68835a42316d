package formatting_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/curiolabs/curio/pkg/formatting"
)

type sample struct {
	Name  string   `json:"name"`
	Value int      `json:"value"`
	Tags  []string `json:"tags"`
}

func TestParse(t *testing.T) {
	t.Run("direct JSON", func(t *testing.T) {
		got, err := formatting.Parse[sample](`{"name":"test","value":42}`)
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		if got.Name != "test" || got.Value != 42 {
			t.Errorf("Parse = %+v, want {Name:test Value:42}", got)
		}
	})

	t.Run("markdown fenced JSON", func(t *testing.T) {
		input := "```json\n{\"name\":\"fenced\",\"value\":7}\n```"
		got, err := formatting.Parse[sample](input)
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		if got.Name != "fenced" || got.Value != 7 {
			t.Errorf("Parse = %+v, want {Name:fenced Value:7}", got)
		}
	})

	t.Run("fenced matches direct parse of unwrapped content", func(t *testing.T) {
		raw := `{"name":"same","value":9,"tags":["a","b"]}`
		direct, err := formatting.Parse[sample](raw)
		if err != nil {
			t.Fatalf("direct Parse error: %v", err)
		}
		fenced, err := formatting.Parse[sample]("```json\n" + raw + "\n```")
		if err != nil {
			t.Fatalf("fenced Parse error: %v", err)
		}
		if direct.Name != fenced.Name || direct.Value != fenced.Value || len(direct.Tags) != len(fenced.Tags) {
			t.Errorf("fenced = %+v, direct = %+v", fenced, direct)
		}
	})

	t.Run("truncated object is repaired", func(t *testing.T) {
		input := `{"name":"cut","value":3,"tags":["one","tw`
		got, err := formatting.Parse[sample](input)
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		if got.Name != "cut" || got.Value != 3 {
			t.Errorf("Parse = %+v, want {Name:cut Value:3}", got)
		}
		if len(got.Tags) != 2 || got.Tags[1] != "tw" {
			t.Errorf("Tags = %v, want [one tw]", got.Tags)
		}
	})

	t.Run("fenced truncated object is repaired", func(t *testing.T) {
		input := "```json\n{\"name\":\"cut\",\"value\":3,\"tags\":[\"one\",\"tw"
		got, err := formatting.Parse[sample](input)
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		if got.Name != "cut" || got.Value != 3 {
			t.Errorf("Parse = %+v, want {Name:cut Value:3}", got)
		}
		if len(got.Tags) != 2 || got.Tags[1] != "tw" {
			t.Errorf("Tags = %v, want [one tw]", got.Tags)
		}
	})

	t.Run("bare fence opener before truncated object is repaired", func(t *testing.T) {
		input := "```\n{\"name\":\"bare\",\"value\":5"
		got, err := formatting.Parse[sample](input)
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		if got.Name != "bare" || got.Value != 5 {
			t.Errorf("Parse = %+v, want {Name:bare Value:5}", got)
		}
	})

	t.Run("repaired keys are a subset of intended keys", func(t *testing.T) {
		input := `{"name":"partial","value":1,`
		got, err := formatting.Parse[map[string]any](input)
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		for key := range got {
			if key != "name" && key != "value" {
				t.Errorf("fabricated key %q in repaired result", key)
			}
		}
	})

	t.Run("unrecoverable content returns ErrParseFailed", func(t *testing.T) {
		_, err := formatting.Parse[sample]("not json at all")
		if !errors.Is(err, formatting.ErrParseFailed) {
			t.Errorf("error = %v, want ErrParseFailed", err)
		}
	})

	t.Run("error snippet is truncated", func(t *testing.T) {
		_, err := formatting.Parse[sample]("x" + strings.Repeat("y", 500))
		if err == nil {
			t.Fatal("expected error")
		}
		if len(err.Error()) > 300 {
			t.Errorf("error message length = %d, want truncated snippet", len(err.Error()))
		}
	})
}

func TestRepair(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"balanced text unchanged", `{"a":1}`, `{"a":1}`},
		{"open object", `{"a":1`, `{"a":1}`},
		{"open array in object", `{"a":[1,2`, `{"a":[1,2]}`},
		{"open string", `{"a":"hel`, `{"a":"hel"}`},
		{"trailing comma", `{"a":1,`, `{"a":1}`},
		{"escaped quote inside string", `{"a":"he said \"hi`, `{"a":"he said \"hi"}`},
		{"brace inside string ignored", `{"a":"{{","b":[1`, `{"a":"{{","b":[1]}`},
		{"nested closers in reverse open order", `{"a":{"b":[{"c":1`, `{"a":{"b":[{"c":1}]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatting.Repair(tt.input); got != tt.want {
				t.Errorf("Repair(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
