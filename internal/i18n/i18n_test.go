package i18n

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Lang
		wantErr bool
	}{
		{"pt", PT, false},
		{"en", EN, false},
		{"es", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		lang  Lang
		level string
		want  string
	}{
		{PT, "basic", "Básico"},
		{PT, "advanced", "Avançado"},
		{EN, "intermediate", "Intermediate"},
		{EN, "advanced", "Advanced"},
		{EN, "expert", "expert"},
	}
	for _, tt := range tests {
		if got := For(tt.lang).Level(tt.level); got != tt.want {
			t.Errorf("For(%s).Level(%q) = %q, want %q", tt.lang, tt.level, got, tt.want)
		}
	}
}

func TestStatus(t *testing.T) {
	if got := For(EN).Status("completed"); got != "Completed" {
		t.Errorf("completed = %q", got)
	}
	if got := For(PT).Status("in-progress"); got != "Em Desenvolvimento" {
		t.Errorf("in-progress = %q", got)
	}
}

func TestForUnknownFallsBackToDefault(t *testing.T) {
	if got := For("xx").Loading; got != For(Default).Loading {
		t.Errorf("unknown language loading text = %q, want default %q", got, For(Default).Loading)
	}
}
