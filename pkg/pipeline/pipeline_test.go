package pipeline

import (
	"testing"

	"github.com/jpatterson933/bunx-ray/pkg/errors"
)

func TestValidateOutput(t *testing.T) {
	tests := []struct {
		output  string
		wantErr bool
	}{
		{"text", false},
		{"markdown", false},
		{"json", false},
		{"svg", true},
		{"JSON", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateOutput(tt.output)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateOutput(%q) error = %v, wantErr %v", tt.output, err, tt.wantErr)
		}
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}

	if opts.Output != OutputText {
		t.Errorf("Output = %q, want %q", opts.Output, OutputText)
	}
	if opts.Top != DefaultTop {
		t.Errorf("Top = %d, want %d", opts.Top, DefaultTop)
	}
	if opts.Cols != DefaultCols || opts.Rows != DefaultRows {
		t.Errorf("grid = %dx%d, want %dx%d", opts.Cols, opts.Rows, DefaultCols, DefaultRows)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discarding logger")
	}
	if opts.Limits().Enabled() {
		t.Error("no limits should be set by default")
	}
}

func TestValidateAndSetDefaultsErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"bad output", Options{Output: "html"}, errors.ErrCodeInvalidInput},
		{"bad format", Options{Format: "parcel"}, errors.ErrCodeInvalidFormat},
		{"negative top", Options{Top: -1}, errors.ErrCodeInvalidInput},
		{"negative cols", Options{Cols: -5}, errors.ErrCodeInvalidDimensions},
		{"huge grid", Options{Cols: 5000, Rows: 10}, errors.ErrCodeInvalidDimensions},
		{"bad size", Options{Size: "big"}, errors.ErrCodeInvalidSize},
		{"bad total size", Options{TotalSize: "1TB"}, errors.ErrCodeInvalidSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{Size: "50KB"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	opts.Top = 3
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if opts.Top != 3 {
		t.Errorf("second call changed Top to %d", opts.Top)
	}
	if l := opts.Limits(); l.Module == nil || *l.Module != 50*1024 {
		t.Errorf("module limit = %v, want 51200", l.Module)
	}
}

func TestReportOptions(t *testing.T) {
	tests := []struct {
		name                                 string
		opts                                 Options
		legend, summary, borders, duplicates bool
	}{
		{"defaults", Options{}, true, true, true, true},
		{"grid only", Options{GridOnly: true}, false, false, true, true},
		{"toggles", Options{NoLegend: true, NoBorders: true, NoDuplicates: true}, false, true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.opts.ReportOptions()
			if got.Legend != tt.legend || got.Summary != tt.summary ||
				got.Borders != tt.borders || got.Duplicates != tt.duplicates {
				t.Errorf("ReportOptions() = %+v", got)
			}
		})
	}
}
