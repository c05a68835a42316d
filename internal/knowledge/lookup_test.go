package knowledge_test

import (
	"testing"

	"github.com/curiolabs/curio/internal/knowledge"
)

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want knowledge.Category
	}{
		{"valid passthrough", "antique", knowledge.CategoryAntique},
		{"case insensitive", "Modern_Branded", knowledge.CategoryModernBranded},
		{"whitespace trimmed", "  vintage  ", knowledge.CategoryVintage},
		{"unknown defaults to vintage", "retro", knowledge.CategoryVintage},
		{"empty defaults to vintage", "", knowledge.CategoryVintage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := knowledge.NormalizeCategory(tt.raw); got != tt.want {
				t.Errorf("NormalizeCategory(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeDomain(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want knowledge.Domain
	}{
		{"valid passthrough", "ceramics", knowledge.DomainCeramics},
		{"architecture maps to art", "architecture", knowledge.DomainArt},
		{"photography maps to art", "photography", knowledge.DomainArt},
		{"photograph maps to art", "photograph", knowledge.DomainArt},
		{"photos maps to art", "photos", knowledge.DomainArt},
		{"music maps to general", "music", knowledge.DomainGeneral},
		{"records maps to general", "records", knowledge.DomainGeneral},
		{"collectibles maps to general", "collectibles", knowledge.DomainGeneral},
		{"memorabilia maps to general", "memorabilia", knowledge.DomainGeneral},
		{"unknown defaults to general", "automobilia", knowledge.DomainGeneral},
		{"empty defaults to general", "", knowledge.DomainGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := knowledge.NormalizeDomain(tt.raw); got != tt.want {
				t.Errorf("NormalizeDomain(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}

	t.Run("every normalized value is a member of the fixed set", func(t *testing.T) {
		raws := []string{"ceramics", "architecture", "junk", "", "MUSIC", "Furniture"}
		valid := make(map[knowledge.Domain]bool)
		for _, d := range knowledge.Domains() {
			valid[d] = true
		}
		for _, raw := range raws {
			if got := knowledge.NormalizeDomain(raw); !valid[got] {
				t.Errorf("NormalizeDomain(%q) = %q, not in fixed domain set", raw, got)
			}
		}
	})
}

func TestNormalizeQualityTier(t *testing.T) {
	if got := knowledge.NormalizeQualityTier("museum"); got != knowledge.QualityMuseum {
		t.Errorf("NormalizeQualityTier(museum) = %q", got)
	}
	if got := knowledge.NormalizeQualityTier("excellent"); got != knowledge.QualityMid {
		t.Errorf("unknown tier = %q, want mid", got)
	}
}

func TestMakerByName(t *testing.T) {
	t.Run("exact name", func(t *testing.T) {
		mark, ok := knowledge.MakerByName("Roseville")
		if !ok {
			t.Fatal("expected a match for Roseville")
		}
		if mark.Domain != knowledge.DomainCeramics {
			t.Errorf("Domain = %q, want ceramics", mark.Domain)
		}
	})

	t.Run("needle in haystack", func(t *testing.T) {
		if _, ok := knowledge.MakerByName("rosev"); !ok {
			t.Error("partial query should match Roseville")
		}
	})

	t.Run("haystack in needle", func(t *testing.T) {
		mark, ok := knowledge.MakerByName("Roseville Pottery Company USA")
		if !ok {
			t.Fatal("maker name contained in query should match")
		}
		if mark.Maker != "Roseville" {
			t.Errorf("Maker = %q, want Roseville", mark.Maker)
		}
	})

	t.Run("no match", func(t *testing.T) {
		if _, ok := knowledge.MakerByName("Completely Unknown Works"); ok {
			t.Error("expected no match")
		}
	})

	t.Run("empty query", func(t *testing.T) {
		if _, ok := knowledge.MakerByName("  "); ok {
			t.Error("blank query should not match")
		}
	})
}

func TestPatternFor(t *testing.T) {
	t.Run("first word heuristic", func(t *testing.T) {
		// pattern item type is "vase art pottery"; only "vase" participates
		pattern, ok := knowledge.PatternFor(knowledge.DomainCeramics, "pinecone vase with handles")
		if !ok {
			t.Fatal("expected pattern match on first word")
		}
		if pattern.ItemType != "vase art pottery" {
			t.Errorf("ItemType = %q", pattern.ItemType)
		}
	})

	t.Run("domain must match exactly", func(t *testing.T) {
		if _, ok := knowledge.PatternFor(knowledge.DomainGlass, "pinecone vase"); ok {
			t.Error("vase pattern belongs to ceramics, not glass")
		}
	})

	t.Run("no match", func(t *testing.T) {
		if _, ok := knowledge.PatternFor(knowledge.DomainCeramics, "teapot"); ok {
			t.Error("expected no pattern for teapot")
		}
	})
}

func TestValueRangeFor(t *testing.T) {
	vr, ok := knowledge.ValueRangeFor(knowledge.DomainCeramics, "art pottery vase")
	if !ok {
		t.Fatal("expected value range match")
	}
	if vr.Low <= 0 || vr.High <= vr.Low {
		t.Errorf("implausible range %v-%v", vr.Low, vr.High)
	}
}

func TestMarksForDomain(t *testing.T) {
	marks := knowledge.MarksForDomain(knowledge.DomainCeramics, 3)
	if len(marks) != 3 {
		t.Fatalf("len = %d, want limit 3", len(marks))
	}
	for _, m := range marks {
		if m.Domain != knowledge.DomainCeramics {
			t.Errorf("mark %q in wrong domain %q", m.Maker, m.Domain)
		}
	}
}

func TestExpertPrompt(t *testing.T) {
	t.Run("dedicated prompt", func(t *testing.T) {
		if !knowledge.HasExpertPrompt(knowledge.DomainCeramics) {
			t.Fatal("ceramics should have a dedicated prompt")
		}
		if knowledge.ExpertPrompt(knowledge.DomainCeramics) == knowledge.ExpertPrompt(knowledge.DomainFurniture) {
			t.Error("ceramics prompt should differ from furniture fallback")
		}
	})

	t.Run("fallback to furniture", func(t *testing.T) {
		if knowledge.HasExpertPrompt(knowledge.DomainTools) {
			t.Skip("tools gained a dedicated prompt; fallback no longer applies")
		}
		if knowledge.ExpertPrompt(knowledge.DomainTools) != knowledge.ExpertPrompt(knowledge.DomainFurniture) {
			t.Error("domains without enhanced prompts should fall back to furniture")
		}
	})

	t.Run("never empty", func(t *testing.T) {
		for _, d := range knowledge.Domains() {
			if knowledge.ExpertPrompt(d) == "" {
				t.Errorf("ExpertPrompt(%q) is empty", d)
			}
		}
	})
}

func TestCriteriaFor(t *testing.T) {
	criteria, ok := knowledge.CriteriaFor(knowledge.DomainFurniture)
	if !ok {
		t.Fatal("expected furniture criteria")
	}
	if len(criteria.Checkpoints) == 0 {
		t.Fatal("empty checklist")
	}
	for _, cp := range criteria.Checkpoints {
		if cp.Weight < 1 || cp.Weight > 10 {
			t.Errorf("checkpoint %q weight %d outside 1-10", cp.Name, cp.Weight)
		}
	}
}
