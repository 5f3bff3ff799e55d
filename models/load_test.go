package models

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDecodeDefaults(t *testing.T) {
	raw := []byte(`{"CHANNELS":[{"NAME":"Dev1/ai0","LABEL":"T"}],"THERMCH":0}`)
	p, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if p.FREQ != 1000 || p.NSAMPLES != 100 || p.NLOGGING != 1 {
		t.Fatalf("defaults not applied: %+v", p)
	}
	if p.CHANNELS[0].MULTIPLIER != 1 {
		t.Fatalf("zero multiplier should default to 1")
	}
	if p.CALIB != "None" {
		t.Fatalf("missing CALIB should default to None, got %q", p.CALIB)
	}
}

func TestDecodeRejectsBadConfigs(t *testing.T) {
	if _, err := Decode([]byte(`not json`)); err == nil {
		t.Fatalf("malformed JSON should fail")
	}
	if _, err := Decode([]byte(`{}`)); err == nil {
		t.Fatalf("config without channels should fail")
	}
	if _, err := Decode([]byte(`{"CHANNELS":[{"NAME":"a"}],"THERMCH":5}`)); err == nil {
		t.Fatalf("out-of-range THERMCH should fail")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	raw := []byte(`{"CHANNELS":[{"NAME":"Dev1/ai0","LABEL":"T","MULTIPLIER":100}],"CALIB":"Dipstick"}`)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.CALIB != "Dipstick" || p.CHANNELS[0].MULTIPLIER != 100 {
		t.Fatalf("unexpected config: %+v", p)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("missing file should fail")
	}
}
