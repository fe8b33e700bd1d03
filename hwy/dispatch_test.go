package hwy

import "testing"

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchSSE2, "sse2"},
		{DispatchNEON, "neon"},
		{DispatchLevel(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("DispatchLevel(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestCurrentLanesMatchesLevel(t *testing.T) {
	t.Logf("Dispatch level: %s", CurrentName())

	if CurrentWidth() != 16 {
		t.Errorf("CurrentWidth() = %d, want 16", CurrentWidth())
	}
	if got, want := CurrentLanes().Name(), CurrentName(); got != want {
		t.Errorf("CurrentLanes().Name() = %q, CurrentName() = %q", got, want)
	}
	if CurrentLevel() == DispatchScalar {
		if _, ok := CurrentLanes().(ScalarLanes); !ok {
			t.Errorf("scalar level selected %T", CurrentLanes())
		}
	}
	if !HasNativeLanes() && CurrentLevel() != DispatchScalar {
		t.Errorf("level %s selected without native lanes", CurrentLevel())
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("HWY_NO_SIMD", tt.val)
		if got := NoSimdEnv(); got != tt.want {
			t.Errorf("HWY_NO_SIMD=%q: NoSimdEnv() = %v, want %v", tt.val, got, tt.want)
		}
	}
}

func TestSetScalarMode(t *testing.T) {
	level, width, name, lanes := currentLevel, currentWidth, currentName, currentLanes
	defer func() {
		currentLevel, currentWidth, currentName, currentLanes = level, width, name, lanes
	}()

	setScalarMode()
	if CurrentLevel() != DispatchScalar || CurrentName() != "scalar" {
		t.Errorf("after setScalarMode: level %s, name %q", CurrentLevel(), CurrentName())
	}
	if _, ok := CurrentLanes().(ScalarLanes); !ok {
		t.Errorf("after setScalarMode: lanes %T", CurrentLanes())
	}
}
