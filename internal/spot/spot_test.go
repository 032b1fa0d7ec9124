package spot

import "testing"

func TestGenerateID(t *testing.T) {
	id1 := GenerateID("tokyo", "https://example.com/article")
	id2 := GenerateID("tokyo", "https://example.com/article")
	id3 := GenerateID("osaka", "https://example.com/article")
	id4 := GenerateID("tokyo", "https://example.com/other")

	if id1 != id2 {
		t.Errorf("GenerateID() not deterministic: %s != %s", id1, id2)
	}
	if id1 == id3 {
		t.Error("GenerateID() should differ for different cities")
	}
	if id1 == id4 {
		t.Error("GenerateID() should differ for different links")
	}
}

func TestGenerateID_Prefix(t *testing.T) {
	id := GenerateID("seoul", "https://example.com/a")
	want := "rt-seoul-"
	if len(id) <= len(want) || id[:len(want)] != want {
		t.Errorf("GenerateID() = %s, want prefix %s", id, want)
	}
}
