package wrap

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		want Category
	}{
		{"info", CategoryStatus},
		{"a", CategoryArray},
		{"b", CategoryArray},
		{"ipiv", CategoryArray},
		{"work", CategoryArray},
		{"trans", CategoryScalar},
		{"n", CategoryScalar},
		{"lda", CategoryScalar},
		{"norm", CategoryScalar},
		{"x", CategoryScalar},
	}
	for _, tt := range tests {
		if got := Classify(tt.name); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	variants := map[string]Category{
		"A":    CategoryArray,
		"B":    CategoryArray,
		"IPIV": CategoryArray,
		"Ipiv": CategoryArray,
		"WORK": CategoryArray,
		"Work": CategoryArray,
		"INFO": CategoryStatus,
		"Info": CategoryStatus,
		"N":    CategoryScalar,
	}
	for name, want := range variants {
		if got := Classify(name); got != want {
			t.Errorf("Classify(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestCategory_String(t *testing.T) {
	tests := []struct {
		cat  Category
		want string
	}{
		{CategoryScalar, "scalar"},
		{CategoryArray, "array"},
		{CategoryStatus, "status"},
		{Category(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.cat.String(); got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", tt.cat, got, tt.want)
		}
	}
}
