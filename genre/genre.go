// Package genre maps free-form genre names onto the closed vocabulary the
// Spotify recommendation endpoint accepts as seeds. The language model
// invents genre vocabulary freely; this package is the only boundary
// enforcing compatibility with the catalog.
package genre

import (
	"sort"
	"strings"

	"golang.org/x/exp/maps"
)

// seedable is the catalog's closed seed-genre vocabulary.
var seedable = map[string]struct{}{
	"acoustic":          {},
	"alternative":       {},
	"ambient":           {},
	"blues":             {},
	"bossanova":         {},
	"chill":             {},
	"classical":         {},
	"club":              {},
	"country":           {},
	"dance":             {},
	"disco":             {},
	"drum-and-bass":     {},
	"dub":               {},
	"dubstep":           {},
	"electro":           {},
	"electronic":        {},
	"folk":              {},
	"funk":              {},
	"garage":            {},
	"gospel":            {},
	"groove":            {},
	"grunge":            {},
	"guitar":            {},
	"hip-hop":           {},
	"house":             {},
	"indie":             {},
	"indie-pop":         {},
	"industrial":        {},
	"jazz":              {},
	"latin":             {},
	"metal":             {},
	"opera":             {},
	"party":             {},
	"piano":             {},
	"pop":               {},
	"punk":              {},
	"punk-rock":         {},
	"r-n-b":             {},
	"reggae":            {},
	"reggaeton":         {},
	"rock":              {},
	"rock-n-roll":       {},
	"romance":           {},
	"sad":               {},
	"salsa":             {},
	"samba":             {},
	"singer-songwriter": {},
	"ska":               {},
	"sleep":             {},
	"soul":              {},
	"soundtracks":       {},
	"study":             {},
	"summer":            {},
	"synth-pop":         {},
	"techno":            {},
	"trance":            {},
	"trip-hop":          {},
	"world-music":       {},
}

// aliases maps informal names the model likes to invent onto seedable genres.
var aliases = map[string]string{
	"lo-fi":        "chill",
	"lofi":         "chill",
	"lo-fi-beats":  "chill",
	"chillout":     "chill",
	"chillhop":     "chill",
	"downtempo":    "chill",
	"trap":         "hip-hop",
	"rap":          "hip-hop",
	"hiphop":       "hip-hop",
	"boom-bap":     "hip-hop",
	"rnb":          "r-n-b",
	"r&b":          "r-n-b",
	"neo-soul":     "soul",
	"motown":       "soul",
	"edm":          "electronic",
	"idm":          "electronic",
	"vaporwave":    "electronic",
	"synthwave":    "synth-pop",
	"new-wave":     "synth-pop",
	"shoegaze":     "indie",
	"dream-pop":    "indie-pop",
	"bedroom-pop":  "indie-pop",
	"bossa-nova":   "bossanova",
	"orchestral":   "classical",
	"symphonic":    "classical",
	"cinematic":    "soundtracks",
	"film-score":   "soundtracks",
	"dnb":          "drum-and-bass",
	"jungle":       "drum-and-bass",
	"americana":    "country",
	"bluegrass":    "folk",
	"hardcore":     "punk",
	"emo":          "punk-rock",
	"ballad":       "romance",
	"lullaby":      "sleep",
	"meditation":   "ambient",
	"instrumental": "ambient",
}

// Normalize maps a free-form genre onto the seedable vocabulary: canonical
// form first, then exact membership, then the alias table, then the first
// hyphen-separated segment that is itself seedable. ok is false when nothing
// matches; callers must drop the genre rather than send an invalid seed.
func Normalize(s string) (string, bool) {
	g := canonical(s)
	if g == "" {
		return "", false
	}
	if _, ok := seedable[g]; ok {
		return g, true
	}
	if mapped, ok := aliases[g]; ok {
		return mapped, true
	}
	for _, part := range strings.Split(g, "-") {
		if _, ok := seedable[part]; ok {
			return part, true
		}
	}
	return "", false
}

// canonical lowercases, trims and collapses whitespace runs into single
// hyphens, e.g. "Drum  and Bass" -> "drum-and-bass".
func canonical(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(s))), "-")
}

// Seeds normalizes a feature set's genres, dropping misses and duplicates
// while keeping input order. At most max genres are returned when max > 0.
func Seeds(genres []string, max int) []string {
	seen := make(map[string]struct{}, len(genres))
	var out []string
	for _, g := range genres {
		mapped, ok := Normalize(g)
		if !ok {
			continue
		}
		if _, dup := seen[mapped]; dup {
			continue
		}
		seen[mapped] = struct{}{}
		out = append(out, mapped)
		if max > 0 && len(out) == max {
			break
		}
	}
	return out
}

// All returns the seedable vocabulary in sorted order.
func All() []string {
	all := maps.Keys(seedable)
	sort.Strings(all)
	return all
}
