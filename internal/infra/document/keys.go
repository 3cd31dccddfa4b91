package document

// Key names one persisted document.
type Key string

const (
	KeyBookings     Key = "bookings"
	KeyActiveUser   Key = "active-user"
	KeyDestinations Key = "destinations"
	KeySocialLinks  Key = "social-links"
	KeyFavorites    Key = "favorites"
)

var AllKeys = []Key{KeyBookings, KeyActiveUser, KeyDestinations, KeySocialLinks, KeyFavorites}

func (k Key) String() string { return string(k) }

// collectionRules are validator tags applied to the top-level value of each
// collection document. Element rules come from the struct tags of the domain
// types. An empty rule means the document is a single struct.
var collectionRules = map[Key]string{
	KeyBookings:     "unique=ID,dive",
	KeyDestinations: "unique=ID,dive",
	KeySocialLinks:  "dive",
	KeyFavorites:    "unique,dive,required",
	KeyActiveUser:   "",
}
