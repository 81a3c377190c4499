package debug

import "testing"

func TestBoolEnv(t *testing.T) {
	const v = "TOMLREC_DEBUG_TEST"
	if boolEnv(v) {
		t.Errorf("unset %s gave true", v)
	}
	t.Setenv(v, "1")
	if !boolEnv(v) {
		t.Errorf("%s=1 gave false", v)
	}
	t.Setenv(v, "junk")
	if boolEnv(v) {
		t.Errorf("%s=junk gave true", v)
	}
}
