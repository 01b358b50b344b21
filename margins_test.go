package pdfcomposer

import (
	"errors"
	"math"
	"testing"
)

func marginsApproxEqual(a, b Margins) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-9 {
			return false
		}
	}
	return true
}

func TestParseMargins(t *testing.T) {
	t.Parallel()

	mm := func(v float64) float64 { return v / 25.4 }

	tests := []struct {
		name    string
		spec    string
		want    Margins
		wantErr error
	}{
		{
			name: "one value covers all sides",
			spec: "20",
			want: Margins{mm(20), mm(20), mm(20), mm(20)},
		},
		{
			name: "two values are vertical and horizontal",
			spec: "10 25",
			want: Margins{mm(10), mm(25), mm(10), mm(25)},
		},
		{
			name: "three values are top sides bottom",
			spec: "10 20 30",
			want: Margins{mm(10), mm(20), mm(30), mm(20)},
		},
		{
			name: "four values are clockwise from top",
			spec: "10 20 30 5",
			want: Margins{mm(10), mm(20), mm(30), mm(5)},
		},
		{
			name: "zero is a valid margin",
			spec: "0",
			want: Margins{0, 0, 0, 0},
		},
		{
			name: "extra whitespace is tolerated",
			spec: "  10\t20  ",
			want: Margins{mm(10), mm(20), mm(10), mm(20)},
		},
		{
			name: "empty specification falls back silently",
			spec: "",
			want: DefaultMargins(),
		},
		{
			name: "five values fall back silently",
			spec: "1 2 3 4 5",
			want: DefaultMargins(),
		},
		{
			name:    "non numeric token",
			spec:    "10 wide",
			want:    DefaultMargins(),
			wantErr: ErrMalformedMargins,
		},
		{
			name:    "negative value",
			spec:    "-5",
			want:    DefaultMargins(),
			wantErr: ErrMalformedMargins,
		},
		{
			name:    "decimal value",
			spec:    "10.5",
			want:    DefaultMargins(),
			wantErr: ErrMalformedMargins,
		},
		{
			name:    "one bad token poisons the lot",
			spec:    "10 20 x 5",
			want:    DefaultMargins(),
			wantErr: ErrMalformedMargins,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseMargins(tt.spec)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseMargins(%q) error = %v, want %v", tt.spec, err, tt.wantErr)
			}
			if !marginsApproxEqual(got, tt.want) {
				t.Errorf("ParseMargins(%q) = %v, want %v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestMarginsAccessors(t *testing.T) {
	t.Parallel()

	m := Margins{1, 2, 3, 4}
	if m.Top() != 1 || m.Right() != 2 || m.Bottom() != 3 || m.Left() != 4 {
		t.Errorf("accessors = %v %v %v %v, want 1 2 3 4", m.Top(), m.Right(), m.Bottom(), m.Left())
	}
}

func TestDefaultMargins(t *testing.T) {
	t.Parallel()

	want := 10.0 / 25.4
	for i, v := range DefaultMargins() {
		if math.Abs(v-want) > 1e-9 {
			t.Errorf("side %d = %v, want %v", i, v, want)
		}
	}
}
