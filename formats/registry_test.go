package formats

import "testing"

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	for _, ext := range []string{"wav", "wave", "aiff", "aif", "mp3", "ogg"} {
		if _, ok := r.Get(ext); !ok {
			t.Errorf("Get(%q) = false, want a registered decoder", ext)
		}
	}
	if _, ok := r.Get("flac"); ok {
		t.Error("Get(\"flac\") = true, FLAC is an output format, not an input")
	}
}
