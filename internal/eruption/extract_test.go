package eruption

import "testing"

func TestExtractYear(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantYear int
		wantOK   bool
	}{
		{
			name:     "plain CE year",
			text:     "1991 CE",
			wantYear: 1991,
			wantOK:   true,
		},
		{
			name:     "year inside sentence",
			text:     "Last eruption: 1991 CE",
			wantYear: 1991,
			wantOK:   true,
		},
		{
			name:     "negative year with literal minus",
			text:     "-1200 BCE",
			wantYear: -1200,
			wantOK:   true,
		},
		{
			name:     "BC without minus stays positive",
			text:     "1500 BC",
			wantYear: 1500,
			wantOK:   true,
		},
		{
			name:     "three digit BC without minus",
			text:     "500 BC",
			wantYear: 500,
			wantOK:   true,
		},
		{
			name:   "no digits at all",
			text:   "Unknown",
			wantOK: false,
		},
		{
			name:   "two digits do not match",
			text:   "circa 79 AD",
			wantOK: false,
		},
		{
			name:   "five digit run is skipped whole",
			text:   "eruption 12345",
			wantOK: false,
		},
		{
			name:   "single digit",
			text:   "year 7",
			wantOK: false,
		},
		{
			name:     "first of multiple runs wins",
			text:     "erupted 1815, again 1883",
			wantYear: 1815,
			wantOK:   true,
		},
		{
			name:     "long run skipped but later run matches",
			text:     "id 987654 erupted 1991",
			wantYear: 1991,
			wantOK:   true,
		},
		{
			name:     "minus only honored adjacent to digits",
			text:     "range 100-200",
			wantYear: 100,
			wantOK:   true,
		},
		{
			name:     "three digit year",
			text:     "79 AD? more like 790",
			wantYear: 790,
			wantOK:   true,
		},
		{
			name:   "empty string",
			text:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractYear(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("ExtractYear(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			}
			if ok && got != tt.wantYear {
				t.Errorf("ExtractYear(%q) = %d, want %d", tt.text, got, tt.wantYear)
			}
		})
	}
}

func TestAnnotateYear(t *testing.T) {
	if got := AnnotateYear("Unknown"); got != nil {
		t.Errorf("AnnotateYear(Unknown) = %d, want nil", *got)
	}
	got := AnnotateYear("1982 CE")
	if got == nil || *got != 1982 {
		t.Errorf("AnnotateYear(1982 CE) = %v, want 1982", got)
	}
}
