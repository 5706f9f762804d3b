package rob

import "testing"

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"z":         "4",
		"cols":      "12",
		"t_shift":   "0",
		"read_size": "oops",
	})
	want := Config{Rows: 4, Cols: 12, TShift: 0, ReadSize: DefaultConfig().ReadSize}
	if cfg != want {
		t.Fatalf("FromMap = %+v, want %+v", cfg, want)
	}
	if got := FromMap(map[string]string{"rows": "-3", "t_shift": "-1"}); got != DefaultConfig() {
		t.Fatalf("out-of-range values must keep defaults, got %+v", got)
	}
	if got := FromMap(nil); got != DefaultConfig() {
		t.Fatalf("FromMap(nil) = %+v", got)
	}
}

func TestParametersExposeConfig(t *testing.T) {
	snap := Config{Rows: 3, Cols: 9, TShift: 4, ReadSize: 2}.Parameters()
	for key, want := range map[string]string{"rows": "3", "cols": "9", "t_shift": "4", "read_size": "2"} {
		p, ok := snap.Lookup(key)
		if !ok || p.Value != want {
			t.Fatalf("parameter %s = %+v (found %v), want %s", key, p, ok, want)
		}
	}
}
