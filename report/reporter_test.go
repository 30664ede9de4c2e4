package report

import "testing"

func TestParseLogLevel(t *testing.T) {
	for i, name := range LogLevelNames {
		level, err := ParseLogLevel(name)
		if err != nil {
			t.Errorf("ParseLogLevel(%q) failed: %s", name, err)
		}

		if level != i {
			t.Errorf("ParseLogLevel(%q) = %d; want %d", name, level, i)
		}
	}

	if _, err := ParseLogLevel("loud"); err == nil {
		t.Error("ParseLogLevel(\"loud\") should fail")
	}
}

func TestSilentReporterCountsErrors(t *testing.T) {
	InitReporter(LogLevelSilent)
	defer InitReporter(LogLevelSilent)

	if AnyErrors() {
		t.Fatal("a fresh reporter should have no errors")
	}

	ReportError("test.ban", "տպիր 5 @", Raise(TextPosition{Line: 1, Column: 8}, "Չսպասված @"))

	if !AnyErrors() {
		t.Error("reported errors must be counted even when silent")
	}

	if LogLevel() != LogLevelSilent {
		t.Errorf("LogLevel() = %d; want %d", LogLevel(), LogLevelSilent)
	}
}

func TestSourceLine(t *testing.T) {
	src := "առաջին\r\nերկրորդ\rերրորդ"

	tests := []struct {
		line int
		want string
		ok   bool
	}{
		{1, "առաջին", true},
		{2, "երկրորդ", true},
		{3, "երրորդ", true},
		{4, "", false},
		{0, "", false},
	}

	for _, tc := range tests {
		got, ok := sourceLine(src, tc.line)
		if got != tc.want || ok != tc.ok {
			t.Errorf("sourceLine(%d) = %q, %v; want %q, %v", tc.line, got, ok, tc.want, tc.ok)
		}
	}
}
