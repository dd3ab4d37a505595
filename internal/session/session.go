// Package session decides where a clipboard operation should land: the
// native clipboard of this machine, or the clipboard of the terminal the
// user is sitting at, reached through OSC 52.
//
// The decision is a pure function of the session context and an
// EnvironmentView, so it never touches process-global state directly.
package session

import (
	"os"

	"bclip/config"
)

// Target is the clipboard an invocation operates on.
type Target int

const (
	Local  Target = iota // platform clipboard of this host
	Remote               // terminal clipboard via OSC 52
)

func (t Target) String() string {
	if t == Remote {
		return "remote"
	}
	return "local"
}

// RemoteMarkers are the environment variables whose presence indicates
// that the terminal is attached over a remote-access channel.
var RemoteMarkers = []string{
	"SSH_CLIENT",
	"SSH_TTY",
	"SSH_CONNECTION",
	"AWS_SSM_SESSION_ID",
	"SSM_SESSION_ID",
}

// MultiplexerMarkers identify tmux and GNU screen, which may swallow or
// rewrite OSC 52 queries.
var MultiplexerMarkers = []string{"TMUX", "STY"}

// EnvironmentView is read-only access to environment variables.
type EnvironmentView interface {
	Lookup(key string) (string, bool)
}

// OSEnv reads the real process environment.
type OSEnv struct{}

// Lookup is [os.LookupEnv].
func (OSEnv) Lookup(key string) (string, bool) { return os.LookupEnv(key) }

// MapEnv is a fixed environment, mainly for tests.
type MapEnv map[string]string

// Lookup reports whether key is present in the map.
func (m MapEnv) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Classify returns the clipboard target for one invocation.
//
// Read is pinned to Local unless --force-paste opts into the OSC 52
// query path.  --local always wins.  Otherwise any remote marker in env
// selects Remote.
func Classify(cfg *config.Config, env EnvironmentView) Target {
	if cfg.Mode == config.ModeRead && !cfg.ForcePaste {
		return Local
	}
	if cfg.ForceLocal {
		return Local
	}
	if IsRemote(env) {
		return Remote
	}
	return Local
}

// IsRemote reports whether any remote-session marker is set, even to an
// empty value.
func IsRemote(env EnvironmentView) bool {
	return anySet(env, RemoteMarkers)
}

// InMultiplexer reports whether tmux or screen markers are set.
func InMultiplexer(env EnvironmentView) bool {
	return anySet(env, MultiplexerMarkers)
}

func anySet(env EnvironmentView, keys []string) bool {
	if env == nil {
		return false
	}
	for _, k := range keys {
		if _, ok := env.Lookup(k); ok {
			return true
		}
	}
	return false
}
