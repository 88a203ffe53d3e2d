package plan

import (
	"fmt"
	"sort"
	"strings"
)

// CalorieTolerance is the fraction a day's total may drift from the target.
const CalorieTolerance = 0.10

// DailyCalories sums meal calories per day.
func (p DietPlan) DailyCalories() map[string]int {
	out := make(map[string]int, len(p.Days))
	for day, meals := range p.Days {
		total := 0
		for _, m := range meals {
			total += m.Calories
		}
		out[day] = total
	}
	return out
}

// CheckCalories returns an error naming every day whose total falls outside
// target ± tolerance.
func (p DietPlan) CheckCalories(target int, tolerance float64) error {
	lo := float64(target) * (1 - tolerance)
	hi := float64(target) * (1 + tolerance)

	var off []string
	for day, total := range p.DailyCalories() {
		if t := float64(total); t < lo || t > hi {
			off = append(off, fmt.Sprintf("%s=%d", day, total))
		}
	}
	if len(off) == 0 {
		return nil
	}
	sort.Strings(off)
	return fmt.Errorf("daily calories outside %d ±%.0f%%: %s", target, tolerance*100, strings.Join(off, ", "))
}
