package palette

// styleSeeds maps an interior style to the base colors used when generating a
// palette without an uploaded image. The values stay close to the ranges the
// service favors for each style.
var styleSeeds = map[string][]RGB{
	"japandi": {
		{227, 212, 190},
		{178, 160, 138},
		{107, 125, 130},
	},
	"scandinavian": {
		{245, 245, 243},
		{173, 196, 206},
		{210, 218, 226},
	},
	"minimalist": {
		{240, 240, 240},
		{180, 180, 180},
		{90, 90, 90},
	},
	"industrial": {
		{105, 105, 110},
		{139, 115, 85},
		{70, 90, 105},
	},
	"mediterranean": {
		{224, 122, 95},
		{61, 164, 171},
		{244, 211, 148},
	},
}

// SeedsForStyle returns the seed colors for a style, falling back to the
// scandinavian set for styles without an entry.
func SeedsForStyle(style string) []RGB {
	if seeds, ok := styleSeeds[style]; ok {
		return seeds
	}
	return styleSeeds["scandinavian"]
}
