package session

import (
	"testing"

	"bclip/config"
)

func cfgFor(mode config.Mode, forceLocal, forcePaste bool) *config.Config {
	cfg := config.New()
	cfg.Mode = mode
	cfg.ForceLocal = forceLocal
	cfg.ForcePaste = forcePaste
	return cfg
}

func TestClassify(t *testing.T) {
	ssh := MapEnv{"SSH_TTY": "/dev/pts/3"}
	none := MapEnv{"HOME": "/home/u"}

	tests := []struct {
		name string
		cfg  *config.Config
		env  EnvironmentView
		want Target
	}{
		{"write local session", cfgFor(config.ModeWrite, false, false), none, Local},
		{"write ssh session", cfgFor(config.ModeWrite, false, false), ssh, Remote},
		{"write ssh forced local", cfgFor(config.ModeWrite, true, false), ssh, Local},
		{"clear ssh session", cfgFor(config.ModeClear, false, false), ssh, Remote},
		{"clear ssh forced local", cfgFor(config.ModeClear, true, false), ssh, Local},
		{"read ssh session", cfgFor(config.ModeRead, false, false), ssh, Local},
		{"read ssh force paste", cfgFor(config.ModeRead, false, true), ssh, Remote},
		{"read ssh force paste and local", cfgFor(config.ModeRead, true, true), ssh, Local},
		{"read local force paste", cfgFor(config.ModeRead, false, true), none, Local},
		{"nil env", cfgFor(config.ModeWrite, false, false), nil, Local},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.cfg, tt.env); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestClassify_AllMarkerCombinations checks that Remote is chosen iff at
// least one marker is present, for every subset of markers.
func TestClassify_AllMarkerCombinations(t *testing.T) {
	n := len(RemoteMarkers)
	for mask := 0; mask < 1<<n; mask++ {
		env := MapEnv{}
		for i, k := range RemoteMarkers {
			if mask&(1<<i) != 0 {
				env[k] = "x"
			}
		}
		anyMarker := mask != 0

		for _, mode := range []config.Mode{config.ModeWrite, config.ModeClear, config.ModeRead} {
			for _, forceLocal := range []bool{false, true} {
				cfg := cfgFor(mode, forceLocal, false)
				want := Local
				if anyMarker && !forceLocal && mode != config.ModeRead {
					want = Remote
				}
				if got := Classify(cfg, env); got != want {
					t.Errorf("mask=%b mode=%v local=%v: got %v, want %v",
						mask, mode, forceLocal, got, want)
				}
			}
		}
	}
}

func TestIsRemote_EmptyValueCounts(t *testing.T) {
	if !IsRemote(MapEnv{"SSH_CONNECTION": ""}) {
		t.Error("a set-but-empty marker should count")
	}
}

func TestInMultiplexer(t *testing.T) {
	tests := []struct {
		env  MapEnv
		want bool
	}{
		{MapEnv{"TMUX": "/tmp/tmux-1000/default,1,0"}, true},
		{MapEnv{"STY": "1234.pts-0.host"}, true},
		{MapEnv{"TERM": "xterm"}, false},
	}
	for _, tt := range tests {
		if got := InMultiplexer(tt.env); got != tt.want {
			t.Errorf("InMultiplexer(%v) = %v, want %v", tt.env, got, tt.want)
		}
	}
}

func TestOSEnv(t *testing.T) {
	t.Setenv("SSH_CLIENT", "10.0.0.1 50000 22")
	if !IsRemote(OSEnv{}) {
		t.Error("OSEnv should see SSH_CLIENT")
	}
}

func TestTarget_String(t *testing.T) {
	if Local.String() != "local" || Remote.String() != "remote" {
		t.Error("unexpected target names")
	}
}
