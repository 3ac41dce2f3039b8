package genre

import (
	"reflect"
	"sort"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"chill", "chill", true},
		{"Lo-Fi", "chill", true},
		{"lofi", "chill", true},
		{"  Hip Hop  ", "hip-hop", true},
		{"trap", "hip-hop", true},
		{"death-metal", "metal", true},
		{"JAZZ", "jazz", true},
		{"Drum and Bass", "drum-and-bass", true},
		{"polka", "", false},
		{"", "", false},
		{"   ", "", false},
	}

	for _, tc := range cases {
		got, ok := Normalize(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("Normalize(%q) = %q, %v; want %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestSeeds(t *testing.T) {
	// "lo-fi" and "chill" both normalize to "chill": the duplicate must be
	// dropped and input order kept.
	got := Seeds([]string{"lo-fi", "chill", "polka", "trap", "jazz", "rock"}, 3)
	want := []string{"chill", "hip-hop", "jazz"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Seeds = %v; want %v", got, want)
	}
}

func TestSeedsNoSurvivors(t *testing.T) {
	if got := Seeds([]string{"polka", "zydeco"}, 3); len(got) != 0 {
		t.Errorf("Seeds = %v; want none", got)
	}
}

func TestAll(t *testing.T) {
	all := All()
	if len(all) == 0 {
		t.Fatal("All returned an empty vocabulary")
	}
	if !sort.StringsAreSorted(all) {
		t.Errorf("All is not sorted: %v", all)
	}
}
