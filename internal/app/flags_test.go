package app

import (
	"errors"
	"flag"
	"testing"
	"time"

	"robviz/internal/rob"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-z", "4", "-x", "6", "-t_shift", "2", "-read_size", "3", "-delay", "25ms", "-batch"}); err != nil {
		t.Fatal(err)
	}
	cfg.Normalize()
	if got := cfg.Sim(); got != (rob.Config{Rows: 4, Cols: 6, TShift: 2, ReadSize: 3}) {
		t.Fatalf("sim config = %+v", got)
	}
	if cfg.Delay != 25*time.Millisecond {
		t.Fatalf("delay = %v", cfg.Delay)
	}
	if cfg.Manual {
		t.Fatal("batch mode must turn manual stepping off")
	}
}

func TestDefaultsMatchSimulationDefaults(t *testing.T) {
	if got := NewConfig().Sim(); got != rob.DefaultConfig() {
		t.Fatalf("defaults = %+v, want %+v", got, rob.DefaultConfig())
	}
}

func TestCheckGUIRejectsBatch(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.CheckGUI(); err != nil {
		t.Fatalf("default config rejected: %v", err)
	}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-batch"}); err != nil {
		t.Fatal(err)
	}
	if err := cfg.CheckGUI(); !errors.Is(err, ErrBatchGUI) {
		t.Fatalf("CheckGUI() = %v, want ErrBatchGUI", err)
	}
}
