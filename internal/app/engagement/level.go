package engagement

import "github.com/samuel-avson/retrofolio/internal/domain"

// Level thresholds are cumulative XP floors; index 0 is level 1's floor.
// Thresholds are strictly increasing and paired 1:1 with level names.
var levelThresholds = []int{0, 100, 300, 600, 1000, 1500, 2100, 2800, 3600, 4500}

var levelNames = []string{
	"VISITOR",
	"CURIOUS",
	"EXPLORER",
	"RESEARCHER",
	"ANALYST",
	"SPECIALIST",
	"EXPERT",
	"MASTER",
	"ARCHITECT",
	"SYSTEM_ADMIN",
}

// MaxLevel is the highest attainable level.
const MaxLevel = 10

// LevelForXP returns the level for a given XP amount: the highest
// level whose threshold the XP meets.
func LevelForXP(xp int) int {
	level := 1
	for i, threshold := range levelThresholds {
		if xp >= threshold {
			level = i + 1
		}
	}
	return level
}

// LevelName returns the display name for a level. Out-of-range levels
// clamp to the nearest named level.
func LevelName(level int) string {
	if level < 1 {
		level = 1
	}
	if level > len(levelNames) {
		level = len(levelNames)
	}
	return levelNames[level-1]
}

// ProgressForXP returns progress within the current level band: XP
// earned since the level's floor, the band's width, and the percentage
// of the band covered. At max level the band is reported as complete.
func ProgressForXP(xp int) domain.LevelProgress {
	level := LevelForXP(xp)
	if level >= MaxLevel {
		return domain.LevelProgress{Current: 1, Max: 1, Percentage: 100}
	}
	floor := levelThresholds[level-1]
	ceil := levelThresholds[level]
	span := ceil - floor
	current := xp - floor
	return domain.LevelProgress{
		Current:    current,
		Max:        span,
		Percentage: float64(current) / float64(span) * 100,
	}
}
