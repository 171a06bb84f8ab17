package cmd

import "testing"

func TestBuildFixtureKnownNames(t *testing.T) {
	for _, name := range []string{"ocean", "coast", "archipelago"} {
		t.Run(name, func(t *testing.T) {
			g, err := buildFixture(name, 16, 16)
			if err != nil {
				t.Fatalf("buildFixture(%q) error: %v", name, err)
			}
			if g.Width() != 16 || g.Height() != 16 {
				t.Fatalf("dims = %dx%d, want 16x16", g.Width(), g.Height())
			}
		})
	}
}

func TestBuildFixtureUnknownNameErrors(t *testing.T) {
	if _, err := buildFixture("atlantis", 8, 8); err == nil {
		t.Fatal("expected an error for an unknown fixture name")
	}
}

func TestBuildCoastHasLandAndWater(t *testing.T) {
	g, err := buildFixture("coast", 16, 16)
	if err != nil {
		t.Fatal(err)
	}
	if !g.IsLand(g.Ref(0, 0)) {
		t.Fatal("expected (0,0) to be land in the coast fixture")
	}
	if !g.IsWater(g.Ref(15, 0)) {
		t.Fatal("expected (15,0) to be water in the coast fixture")
	}
}

func TestParseTileRoundTrip(t *testing.T) {
	g, err := buildFixture("ocean", 16, 16)
	if err != nil {
		t.Fatal(err)
	}
	tile, err := parseTile(g, "3,5")
	if err != nil {
		t.Fatalf("parseTile error: %v", err)
	}
	if g.X(tile) != 3 || g.Y(tile) != 5 {
		t.Fatalf("parsed (%d,%d), want (3,5)", g.X(tile), g.Y(tile))
	}
}

func TestParseTileRejectsOutOfBounds(t *testing.T) {
	g, err := buildFixture("ocean", 16, 16)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := parseTile(g, "99,99"); err == nil {
		t.Fatal("expected an out-of-bounds error")
	}
}

func TestParseTileRejectsMalformed(t *testing.T) {
	g, err := buildFixture("ocean", 16, 16)
	if err != nil {
		t.Fatal(err)
	}
	for _, bad := range []string{"", "5", "a,b", "1,2,3"} {
		if _, err := parseTile(g, bad); err == nil {
			t.Fatalf("parseTile(%q) should have failed", bad)
		}
	}
}
