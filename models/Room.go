package models

// Room is static catalog data, not a database entity. The property has four
// bookable units and the set only changes with a deploy.
type Room struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Capacity       int     `json:"capacity"`
	PricePerPerson float64 `json:"pricePerPerson"`
	Currency       string  `json:"currency"`
}

var Rooms = []Room{
	{
		ID:             "room-101",
		Name:           "First Floor Apartment",
		Description:    "Self-contained first floor apartment with a private entrance",
		Capacity:       3,
		PricePerPerson: 30,
		Currency:       "BAM",
	},
	{
		ID:             "room-102",
		Name:           "Master Bedroom",
		Description:    "Spacious master bedroom with an en-suite bathroom",
		Capacity:       2,
		PricePerPerson: 30,
		Currency:       "BAM",
	},
	{
		ID:             "room-103",
		Name:           "Guest Bedroom",
		Description:    "Comfortable guest bedroom overlooking the garden",
		Capacity:       2,
		PricePerPerson: 30,
		Currency:       "BAM",
	},
	{
		ID:             "room-104",
		Name:           "Guest Room 3",
		Description:    "Cozy third guest room with modern amenities",
		Capacity:       2,
		PricePerPerson: 30,
		Currency:       "BAM",
	},
}

func RoomByID(id string) (Room, bool) {
	for _, r := range Rooms {
		if r.ID == id {
			return r, true
		}
	}
	return Room{}, false
}

func IsKnownRoom(id string) bool {
	_, ok := RoomByID(id)
	return ok
}
