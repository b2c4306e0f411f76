package main

import (
	"errors"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"honnef.co/go/curvelab"
)

func TestParsePoints(t *testing.T) {
	tests := []struct {
		in      string
		want    []curvelab.Point
		wantErr bool
		errIs   error
	}{
		{in: ""},
		{in: "   "},
		{in: "0,0 1,2 2,0", want: []curvelab.Point{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: 0}}},
		{in: " -1.5,2e1\t3,4 ", want: []curvelab.Point{{X: -1.5, Y: 20}, {X: 3, Y: 4}}},
		{in: "0,0 1", wantErr: true},
		{in: "0,0 a,1", wantErr: true, errIs: curvelab.ErrInvalidCoordinate},
		{in: "0,NaN", wantErr: true, errIs: curvelab.ErrInvalidCoordinate},
	}
	for _, tt := range tests {
		got, err := parsePoints(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%q: got %v, want error", tt.in, got)
			} else if tt.errIs != nil && !errors.Is(err, tt.errIs) {
				t.Errorf("%q: got error %v, want %v", tt.in, err, tt.errIs)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error %v", tt.in, err)
			continue
		}
		if d := cmp.Diff(tt.want, got); d != "" {
			t.Errorf("%q: %s", tt.in, d)
		}
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{"-kind", "bezier", "-hull", "-t", "0.5"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.kind != "bezier" || !cfg.hull || cfg.t != 0.5 || cfg.degree != curvelab.DefaultDegree {
		t.Errorf("unexpected config %+v", cfg)
	}

	for _, args := range [][]string{
		{"-kind", "nurbs"},
		{"-degree", "0"},
		{"-width", "0"},
		{"-frames", "-1"},
		{"extra"},
	} {
		if _, err := parseFlags(args, io.Discard); err == nil {
			t.Errorf("%q: expected error", args)
		}
	}
}

func TestFrameName(t *testing.T) {
	for _, tt := range []struct {
		out  string
		i    int
		want string
	}{
		{"curve.png", 0, "curve-000.png"},
		{"out/anim.png", 12, "out/anim-012.png"},
		{"plain", 3, "plain-003"},
	} {
		if got := frameName(tt.out, tt.i); got != tt.want {
			t.Errorf("frameName(%q, %d) = %q, want %q", tt.out, tt.i, got, tt.want)
		}
	}
}

func TestRunTooFewPoints(t *testing.T) {
	cfg, err := parseFlags([]string{"-kind", "bspline", "-points", "0,0 1,1 2,0", "-out", filepath.Join(t.TempDir(), "x.png")}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if err := run(cfg); err == nil {
		t.Fatal("expected error for a cubic B-Spline with 3 points")
	}
}

func TestRunImage(t *testing.T) {
	out := filepath.Join(t.TempDir(), "curve.png")
	cfg, err := parseFlags([]string{"-out", out, "-width", "120", "-height", "100", "-hull", "-t", "0.3"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if err := run(cfg); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfgImg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfgImg.Width != 240 || cfgImg.Height != 100 {
		t.Errorf("got %dx%d image, want 240x100", cfgImg.Width, cfgImg.Height)
	}
}

func TestRunFrames(t *testing.T) {
	dir := t.TempDir()
	cfg, err := parseFlags([]string{"-out", filepath.Join(dir, "anim.png"), "-kind", "bezier", "-width", "60", "-height", "50", "-frames", "3"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if err := run(cfg); err != nil {
		t.Fatal(err)
	}
	for i := range 3 {
		if _, err := os.Stat(filepath.Join(dir, frameName("anim.png", i))); err != nil {
			t.Error(err)
		}
	}

	cfg.kind = "bspline"
	if err := run(cfg); err == nil {
		t.Error("expected -frames to require a Bézier curve")
	}
}
