package records

import (
	"strings"
	"time"

	"github.com/jdcastellanos/granja/internal/domain/identity"
	"github.com/jdcastellanos/granja/internal/domain/models"
)

// Normalize coerces a raw daily submission into a well-formed record
// attributed to the actor. Absent numeric fields are zero, not rejected.
// TotalEggs and TotalFertile are recomputed from the category counts; anything
// the client may have supplied for them is discarded. The only failure mode is
// a missing caller identity.
func Normalize(input models.SubmitRecordInput, actor identity.Actor, now time.Time) (models.ProductionRecord, error) {
	if !actor.Authenticated() {
		return models.ProductionRecord{}, models.ErrUnauthenticated
	}

	date := now
	if input.Date != nil && !input.Date.IsZero() {
		date = *input.Date
	}

	record := models.ProductionRecord{
		Date:            startOfDay(date),
		MortalityFemale: input.MortalityFemale,
		MortalityMale:   input.MortalityMale,
		FeedFemaleKg:    input.FeedFemaleKg,
		FeedMaleKg:      input.FeedMaleKg,
		EggFertileA:     input.EggFertileA,
		EggFertileB:     input.EggFertileB,
		EggJumbo:        input.EggJumbo,
		EggLarge:        input.EggLarge,
		EggMedium:       input.EggMedium,
		EggSmall:        input.EggSmall,
		EggCracked:      input.EggCracked,
		EggDiscard:      input.EggDiscard,
		Notes:           strings.TrimSpace(input.Notes),
		SubmittedBy:     actor.UserID,
		SubmittedByName: actor.Name,
		CreatedAt:       now,
	}

	record.TotalEggs = record.EggFertileA + record.EggFertileB + record.EggJumbo +
		record.EggLarge + record.EggMedium + record.EggSmall +
		record.EggCracked + record.EggDiscard
	record.TotalFertile = record.EggFertileA + record.EggFertileB

	return record, nil
}
