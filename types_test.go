package md2html

import (
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// TestParseEngine - Engine Names
// ---------------------------------------------------------------------------

func TestParseEngine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Engine
		wantErr error
	}{
		{"empty selects lite", "", EngineLite, nil},
		{"lite", "lite", EngineLite, nil},
		{"gfm", "gfm", EngineGFM, nil},
		{"case insensitive", "GFM", EngineGFM, nil},
		{"surrounding space", " lite ", EngineLite, nil},
		{"unknown", "pandoc", "", ErrInvalidEngine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseEngine(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseEngine(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseEngine(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestPageSettings_Validate - PageSettings Validation
// ---------------------------------------------------------------------------

func TestPageSettings_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ps      *PageSettings
		wantErr error
	}{
		{
			name:    "nil is valid (use defaults)",
			ps:      nil,
			wantErr: nil,
		},
		{
			name:    "defaults are valid",
			ps:      DefaultPageSettings(),
			wantErr: nil,
		},
		{
			name:    "a4 landscape",
			ps:      &PageSettings{Size: PageSizeA4, Orientation: OrientationLandscape, Margin: 1.0},
			wantErr: nil,
		},
		{
			name:    "uppercase size and orientation",
			ps:      &PageSettings{Size: "LEGAL", Orientation: "Portrait", Margin: MinMargin},
			wantErr: nil,
		},
		{
			name:    "maximum margin",
			ps:      &PageSettings{Size: PageSizeLetter, Orientation: OrientationPortrait, Margin: MaxMargin},
			wantErr: nil,
		},
		{
			name:    "unknown size",
			ps:      &PageSettings{Size: "tabloid", Orientation: OrientationPortrait, Margin: DefaultMargin},
			wantErr: ErrInvalidPageSize,
		},
		{
			name:    "unknown orientation",
			ps:      &PageSettings{Size: PageSizeA4, Orientation: "diagonal", Margin: DefaultMargin},
			wantErr: ErrInvalidOrientation,
		},
		{
			name:    "margin below minimum",
			ps:      &PageSettings{Size: PageSizeA4, Orientation: OrientationPortrait, Margin: 0.1},
			wantErr: ErrInvalidMargin,
		},
		{
			name:    "margin above maximum",
			ps:      &PageSettings{Size: PageSizeA4, Orientation: OrientationPortrait, Margin: 3.5},
			wantErr: ErrInvalidMargin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.ps.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
