package logflags

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestSetup(t *testing.T) {
	defer Setup(false, false)

	Setup(false, false)
	if Decoder() || JIT() {
		t.Error("layers enabled without Setup asking for them")
	}

	Setup(true, false)
	if !Decoder() || JIT() {
		t.Errorf("Decoder=%v JIT=%v after Setup(true, false)", Decoder(), JIT())
	}

	Setup(false, true)
	if Decoder() || !JIT() {
		t.Errorf("Decoder=%v JIT=%v after Setup(false, true)", Decoder(), JIT())
	}
}

func TestLoggerLevels(t *testing.T) {
	defer Setup(false, false)

	Setup(false, false)
	if lvl := DecoderLogger().Logger.Level; lvl != logrus.PanicLevel {
		t.Errorf("disabled decoder logger at level %s, want panic", lvl)
	}
	if lvl := JITLogger().Logger.Level; lvl != logrus.PanicLevel {
		t.Errorf("disabled jit logger at level %s, want panic", lvl)
	}

	Setup(true, true)
	if lvl := DecoderLogger().Logger.Level; lvl != logrus.DebugLevel {
		t.Errorf("enabled decoder logger at level %s, want debug", lvl)
	}
	if lvl := JITLogger().Logger.Level; lvl != logrus.DebugLevel {
		t.Errorf("enabled jit logger at level %s, want debug", lvl)
	}
}

func TestLoggerFields(t *testing.T) {
	if got := DecoderLogger().Data["layer"]; got != "decoder" {
		t.Errorf("decoder logger layer field = %v", got)
	}
	if got := JITLogger().Data["layer"]; got != "jit" {
		t.Errorf("jit logger layer field = %v", got)
	}
}
