package services

import (
	"fmt"
	"strings"

	"hospitality-backend/internal/models"
)

// SeedPercentages is the per-floor room type distribution used by the seeder.
// The three explicit buckets are computed by integer percentage; whatever is
// left on a floor becomes accessible rooms.
type SeedPercentages struct {
	Standard int
	Double   int
	Suite    int
}

// DefaultSeedPercentages matches the 80/10/5/5 split the brand standard
// prescribes.
var DefaultSeedPercentages = SeedPercentages{Standard: 80, Double: 10, Suite: 5}

// encoreBrandMarker identifies the brand family whose properties have no
// guest rooms on floor 1 (the whole floor is lobby and back-of-house), so
// seeded floors start at 2 and shift up.
const encoreBrandMarker = "Encore"

// BuildSeedPlan computes the full room set for a property from its declared
// total_rooms/total_floors metadata. Rooms are numbered floor*100+sequence,
// all start dirty, and total_rooms is distributed as evenly as possible
// across floors (earlier floors absorb the remainder). Returns the plan plus
// the first and last seeded floor.
func BuildSeedPlan(p *models.Property, pct SeedPercentages) ([]models.Room, int, int, error) {
	if p.Type != models.PropertyTypeHotel {
		return nil, 0, 0, invalidField("property_id", "seeding requires a hotel property")
	}
	if p.TotalRooms <= 0 {
		return nil, 0, 0, invalidField("total_rooms", "must be positive to seed")
	}
	if p.TotalFloors <= 0 {
		return nil, 0, 0, invalidField("total_floors", "must be positive to seed")
	}
	if pct.Standard+pct.Double+pct.Suite > 100 {
		return nil, 0, 0, invalidField("seed percentages", fmt.Sprintf("sum to more than 100 (%d+%d+%d)", pct.Standard, pct.Double, pct.Suite))
	}

	firstFloor := 1
	if strings.Contains(p.Brand, encoreBrandMarker) {
		firstFloor = 2
	}
	lastFloor := firstFloor + p.TotalFloors - 1

	perFloor := p.TotalRooms / p.TotalFloors
	remainder := p.TotalRooms % p.TotalFloors

	// floor*100+seq numbering holds 99 rooms per floor; past that a floor's
	// numbers bleed into the next floor's range and collide.
	maxPerFloor := perFloor
	if remainder > 0 {
		maxPerFloor++
	}
	if maxPerFloor > 99 {
		return nil, 0, 0, invalidField("total_rooms",
			fmt.Sprintf("would place %d rooms on a floor; numbering supports at most 99 per floor", maxPerFloor))
	}

	var plan []models.Room
	for floor := firstFloor; floor <= lastFloor; floor++ {
		count := perFloor
		if floor-firstFloor < remainder {
			count++
		}

		for seq := 1; seq <= count; seq++ {
			plan = append(plan, models.Room{
				PropertyID: p.ID,
				Number:     floor*100 + seq,
				Floor:      floor,
				Type:       seedRoomType(seq-1, count, pct),
				Status:     models.RoomStatusDirty,
			})
		}
	}

	return plan, firstFloor, lastFloor, nil
}

// seedRoomType picks the type for the idx-th room (0-based) on a floor of
// the given size: the first standardPct% are standard, then double, then
// suite, and the tail accessible.
func seedRoomType(idx, floorCount int, pct SeedPercentages) string {
	standard := floorCount * pct.Standard / 100
	double := floorCount * pct.Double / 100
	suite := floorCount * pct.Suite / 100

	switch {
	case idx < standard:
		return models.RoomTypeStandard
	case idx < standard+double:
		return models.RoomTypeDouble
	case idx < standard+double+suite:
		return models.RoomTypeSuite
	default:
		return models.RoomTypeAccessible
	}
}

// ValidateImportRows checks every bulk import row independently and returns
// the valid rows as room records along with the per-row errors. Blank type
// and status fall back to their defaults rather than failing the row.
func ValidateImportRows(propertyID int, rows []models.ImportRoomRow) ([]models.Room, []models.ImportRowError) {
	var valid []models.Room
	var rowErrors []models.ImportRowError

	seen := make(map[int]bool, len(rows))

	for i, row := range rows {
		reason := ""
		switch {
		case row.Number <= 0:
			reason = "number must be positive"
		case row.Floor < 0:
			reason = "floor must not be negative"
		case row.Type != "" && !models.ValidRoomType(row.Type):
			reason = "invalid room type: " + row.Type
		case row.Status != "" && !models.ValidRoomStatus(row.Status):
			reason = "invalid room status: " + row.Status
		case seen[row.Number]:
			reason = "duplicate number within import"
		}

		if reason != "" {
			rowErrors = append(rowErrors, models.ImportRowError{Index: i, Number: row.Number, Reason: reason})
			continue
		}

		seen[row.Number] = true

		roomType := row.Type
		if roomType == "" {
			roomType = models.RoomTypeStandard
		}
		status := row.Status
		if status == "" {
			status = models.RoomStatusDirty
		}

		valid = append(valid, models.Room{
			PropertyID: propertyID,
			Number:     row.Number,
			Floor:      row.Floor,
			Type:       roomType,
			Status:     status,
			Notes:      row.Notes,
		})
	}

	return valid, rowErrors
}
