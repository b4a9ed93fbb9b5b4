package assert

import "testing"

func TestThat(t *testing.T) {
	defer func() {
		r := recover()
		if Enabled && r == nil {
			t.Error("That(false) did not panic in a debug build")
		}
		if !Enabled && r != nil {
			t.Errorf("That(false) panicked in a release build: %v", r)
		}
	}()

	That(true, "never fires")
	That(false, "entity %d removed twice", 7)
}
