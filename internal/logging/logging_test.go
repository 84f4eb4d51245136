package logging

import (
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want log.Level
	}{
		{"none", log.PanicLevel},
		{"off", log.PanicLevel},
		{"0", log.PanicLevel},
		{"info", log.InfoLevel},
		{"1", log.InfoLevel},
		{"debug", log.DebugLevel},
		{"2", log.DebugLevel},
		{"NONE", log.PanicLevel},
		{"Info", log.InfoLevel},
		{"DEBUG", log.DebugLevel},
		{" info ", log.InfoLevel},
		{"garbage", log.DebugLevel},
		{"", log.DebugLevel},
	}

	for _, tc := range cases {
		if got := ParseLevel(tc.in); got != tc.want {
			t.Errorf("ParseLevel(%q)=%v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestInit_FlagBeatsEnvironment(t *testing.T) {
	t.Setenv(EnvVar, "debug")
	Init("none")
	if log.GetLevel() != log.PanicLevel {
		t.Errorf("level=%v, want panic (flag wins)", log.GetLevel())
	}
}

func TestInit_EnvironmentFallback(t *testing.T) {
	t.Setenv(EnvVar, "debug")
	Init("")
	if log.GetLevel() != log.DebugLevel {
		t.Errorf("level=%v, want debug from env", log.GetLevel())
	}
}

func TestInit_DefaultInfo(t *testing.T) {
	t.Setenv(EnvVar, "")
	Init("")
	if log.GetLevel() != log.InfoLevel {
		t.Errorf("level=%v, want info default", log.GetLevel())
	}
}
