package service

import (
	"schoolku_backend/internals/features/academics/grading/model"
)

// GradeFor returns the first band whose [min,max] range contains the
// percentage, nil when no band matches. Bands are assumed non-overlapping
// and contiguous; that is not enforced here.
func GradeFor(bands []model.GradeBand, percentage float64) *model.GradeBand {
	for i := range bands {
		if percentage >= bands[i].MinPercentage && percentage <= bands[i].MaxPercentage {
			return &bands[i]
		}
	}
	return nil
}
