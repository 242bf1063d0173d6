package morph

import (
	"testing"

	"gossdi/domain/core"
)

func TestParseSex(t *testing.T) {
	for token, want := range map[string]Sex{"M": SexMale, "m": SexMale, "F": SexFemale, "f": SexFemale, " f ": SexFemale} {
		got, err := ParseSex(token)
		if err != nil {
			t.Errorf("ParseSex(%q) unexpected error: %v", token, err)
			continue
		}
		if got != want {
			t.Errorf("ParseSex(%q) = %v, want %v", token, got, want)
		}
	}

	for _, bad := range []string{"", "male", "X", "MF"} {
		if _, err := ParseSex(bad); err == nil {
			t.Errorf("ParseSex(%q) expected error", bad)
		}
	}
}

func TestCohortClass(t *testing.T) {
	cases := []struct {
		females, males int
		want           CohortClass
	}{
		{0, 0, ClassIncomplete},
		{0, 3, ClassIncomplete},
		{2, 0, ClassIncomplete},
		{1, 1, ClassBothSingle},
		{2, 1, ClassFemalesMultiple},
		{1, 2, ClassMalesMultiple},
		{2, 2, ClassBothMultiple},
		{5, 3, ClassBothMultiple},
	}
	for _, c := range cases {
		cohort := NewSpeciesCohort("X")
		for i := 0; i < c.females; i++ {
			cohort.Add(SexFemale, 1.0)
		}
		for i := 0; i < c.males; i++ {
			cohort.Add(SexMale, 1.0)
		}
		if got := cohort.Class(); got != c.want {
			t.Errorf("class for %d F / %d M = %v, want %v", c.females, c.males, got, c.want)
		}
	}
}

func TestPooled_FemalesFirst(t *testing.T) {
	c := NewSpeciesCohort("X")
	c.Add(SexMale, 3)
	c.Add(SexFemale, 1)
	c.Add(SexFemale, 2)

	pooled := c.Pooled()
	want := []float64{1, 2, 3}
	if len(pooled) != len(want) {
		t.Fatalf("pooled length = %d, want %d", len(pooled), len(want))
	}
	for i := range want {
		if pooled[i] != want[i] {
			t.Errorf("pooled[%d] = %v, want %v", i, pooled[i], want[i])
		}
	}
}

func TestMetricFormat(t *testing.T) {
	if got := NoMetric().Format(); got != "NA" {
		t.Errorf("NoMetric format = %q, want NA", got)
	}
	if got := SomeMetric(0.19).Format(); got != "0.19" {
		t.Errorf("SomeMetric(0.19) format = %q, want 0.19", got)
	}
	if got := SomeMetric(10.5).Format(); got != "10.5" {
		t.Errorf("SomeMetric(10.5) format = %q, want 10.5", got)
	}
}

func TestResultSetSortedKeys(t *testing.T) {
	rs := ResultSet{"Wren": {}, "Bear": {}, "Fox": {}}
	keys := rs.SortedKeys()
	want := []core.SpeciesKey{"Bear", "Fox", "Wren"}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %v, want %v", i, keys[i], want[i])
		}
	}
}
