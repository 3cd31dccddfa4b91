// Package seed holds the built-in catalog used when no persisted documents
// exist yet.
package seed

import (
	_ "embed"
	"encoding/json"

	"genesis-storefront/internal/domain/destination"
	"genesis-storefront/internal/domain/social"
	"genesis-storefront/internal/infra/document"
)

var (
	//go:embed destinations.json
	destinationsJSON []byte
	//go:embed contact.json
	contactJSON []byte
)

type contactFile struct {
	Contact social.Contact  `json:"contact"`
	Socials json.RawMessage `json:"socials"`
}

// Defaults is the fallback state for every collection.
type Defaults struct {
	Destinations []destination.Destination
	SocialLinks  []social.Link
	Contact      social.Contact
}

// Load decodes the embedded documents through the same codec used for
// persisted data, so the defaults obey the persisted schema.
func Load() (Defaults, error) {
	codec := document.NewCodec()

	var dests []destination.Destination
	if err := codec.Decode(document.KeyDestinations, destinationsJSON, &dests); err != nil {
		return Defaults{}, err
	}

	var cf contactFile
	if err := json.Unmarshal(contactJSON, &cf); err != nil {
		return Defaults{}, err
	}
	var links []social.Link
	if err := codec.Decode(document.KeySocialLinks, cf.Socials, &links); err != nil {
		return Defaults{}, err
	}

	return Defaults{
		Destinations: dests,
		SocialLinks:  links,
		Contact:      cf.Contact,
	}, nil
}

// MustLoad panics when the embedded data is broken, which only a bad build
// can cause.
func MustLoad() Defaults {
	d, err := Load()
	if err != nil {
		panic(err)
	}
	return d
}
