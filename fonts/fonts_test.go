package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	for _, name := range []FontName{Regular, Small, Bold} {
		if name.Get() == nil {
			t.Errorf("%s: nil face", name)
		}
	}
}

func TestGetMissingFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown font")
		}
	}()
	FontName("missing").Get()
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFontWithSize("garbage", []byte("not a font"), 10); err == nil {
		t.Fatal("expected parse error")
	}
}
