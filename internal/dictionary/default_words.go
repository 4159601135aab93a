package dictionary

// DefaultWords is a small built-in list of English words. It is used when no dictionary file is configured.
var DefaultWords = []string{
	"abandon", "ability", "absence", "academy", "account", "acid", "acorn", "across", "action", "actor",
	"adapt", "address", "admiral", "advice", "aerial", "affair", "agenda", "airport", "album", "alley",
	"almond", "amber", "anchor", "angle", "animal", "ankle", "answer", "anthem", "apple", "apron",
	"arch", "arena", "armour", "arrow", "artist", "ash", "aspect", "atlas", "attic", "autumn",
	"avenue", "badge", "bakery", "balcony", "ballad", "bamboo", "banner", "barrel", "basket", "beacon",
	"beetle", "bell", "bench", "berry", "bicycle", "blanket", "blossom", "boat", "bonnet", "border",
	"bottle", "boulder", "bracket", "branch", "bread", "breeze", "bridge", "brook", "bucket", "bundle",
	"butter", "cabin", "cactus", "camera", "canal", "candle", "canyon", "captain", "carpet", "castle",
	"cattle", "cellar", "century", "chalk", "chapel", "cherry", "chimney", "circle", "citizen", "clover",
	"coast", "cobble", "comet", "copper", "cottage", "country", "crayon", "cricket", "crystal", "current",
	"daisy", "dancer", "dawn", "desert", "diamond", "dolphin", "dragon", "drizzle", "eagle", "echo",
	"ember", "engine", "estate", "falcon", "feather", "ferry", "fiddle", "forest", "fossil", "fountain",
	"garden", "glacier", "granite", "gravel", "harbour", "harvest", "hazel", "heron", "hollow", "horizon",
	"island", "ivory", "jacket", "jasmine", "journey", "kettle", "kingdom", "lantern", "lemon", "library",
	"meadow", "mirror", "morning", "mountain", "needle", "orchard", "pebble", "pepper", "quarry", "river",
}
