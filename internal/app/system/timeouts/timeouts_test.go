package timeouts

import (
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	Reset()
	if Ping() != DefaultPing {
		t.Errorf("Ping() = %v, want %v", Ping(), DefaultPing)
	}
	if Short() != DefaultShort {
		t.Errorf("Short() = %v, want %v", Short(), DefaultShort)
	}
	if Medium() != DefaultMedium {
		t.Errorf("Medium() = %v, want %v", Medium(), DefaultMedium)
	}
	if Long() != DefaultLong {
		t.Errorf("Long() = %v, want %v", Long(), DefaultLong)
	}
}

func TestConfigure_PartialOverride(t *testing.T) {
	Reset()
	defer Reset()

	Configure(Config{Short: 12 * time.Second})

	if Short() != 12*time.Second {
		t.Errorf("Short() = %v, want 12s", Short())
	}
	// Unset fields keep their defaults.
	if Medium() != DefaultMedium {
		t.Errorf("Medium() = %v, want default", Medium())
	}
}

func TestConfigure_IgnoresZero(t *testing.T) {
	Reset()
	defer Reset()

	Configure(Config{Long: 45 * time.Second})
	Configure(Config{}) // all zero: no changes

	if Long() != 45*time.Second {
		t.Errorf("Long() = %v, want 45s", Long())
	}
}

func TestConfigureFromEnv(t *testing.T) {
	Reset()
	defer Reset()

	t.Setenv("TIMEOUT_SHORT", "7s")
	t.Setenv("TIMEOUT_MEDIUM", "garbage")

	applied := ConfigureFromEnv()
	if applied != 1 {
		t.Errorf("applied = %d, want 1", applied)
	}
	if Short() != 7*time.Second {
		t.Errorf("Short() = %v, want 7s", Short())
	}
	if Medium() != DefaultMedium {
		t.Errorf("Medium() = %v, want default after invalid env", Medium())
	}
}
