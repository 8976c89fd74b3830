package geo

// Marker color bands from strongest to weakest rank percentile.
var rankColors = []string{
	"#2e7d32", // top 10%
	"#66bb6a", // top 25%
	"#fdd835", // top 50%
	"#fb8c00", // top 75%
	"#e53935", // bottom quartile
}

const unrankedColor = "#9e9e9e"

// RankColor maps a 1-based rank within a total to a marker color band.
// Non-positive ranks (unranked teams) get the neutral color.
func RankColor(rank, total int) string {
	if rank <= 0 || total <= 0 {
		return unrankedColor
	}
	percentile := float64(rank) / float64(total)
	switch {
	case percentile <= 0.10:
		return rankColors[0]
	case percentile <= 0.25:
		return rankColors[1]
	case percentile <= 0.50:
		return rankColors[2]
	case percentile <= 0.75:
		return rankColors[3]
	default:
		return rankColors[4]
	}
}
