package lifecycle

import (
	"strconv"

	"equiprent.GO/model/entity"
)

// allocateContractNumber issues the next contract id and advances the
// counter. Allocation happens inside the same snapshot replacement as the
// rental creation it numbers, so the counter never advances without the
// operation committing as a whole; if a later step rejects, the untouched
// input snapshot still holds the old counter.
func allocateContractNumber(settings entity.SystemSettings) (string, entity.SystemSettings) {
	id := strconv.Itoa(settings.NextContractNumber)
	settings.NextContractNumber++
	return id, settings
}
