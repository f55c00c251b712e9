package parser

import "github.com/ukaji3/sc2crop-go/pkg/sc2crop/models"

func gridOf(lines ...string) models.Grid {
	g := make(models.Grid, 0, len(lines))
	for _, line := range lines {
		g = append(g, models.Row(line))
	}
	return g
}
