package model

import (
	"regexp"
	"time"
)

// Masjid is the tenant boundary: content and displays belong to exactly
// one masjid, and only that masjid's admins may approve or assign.
type Masjid struct {
	ID                 int       `db:"id"                  json:"id"`
	Name               string    `db:"name"                json:"name"`
	RegistrationNumber *string   `db:"registration_number" json:"registration_number,omitempty"`
	AddressLine        *string   `db:"address_line"        json:"address_line,omitempty"`
	City               *string   `db:"city"                json:"city,omitempty"`
	State              *string   `db:"state"               json:"state,omitempty"`
	Postcode           *string   `db:"postcode"            json:"postcode,omitempty"`
	JakimZone          string    `db:"jakim_zone"          json:"jakim_zone"`
	CreatedBy          int       `db:"created_by"          json:"created_by"`
	CreatedAt          time.Time `db:"created_at"          json:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"          json:"updated_at"`
}

var (
	malaysianPhoneRe    = regexp.MustCompile(`^(\+?6?01)[0-46-9]-?[0-9]{7,8}$`)
	malaysianPostcodeRe = regexp.MustCompile(`^[0-9]{5}$`)
	jakimZoneRe         = regexp.MustCompile(`^[A-Z]{3}[0-9]{2}$`)
)

// ValidMalaysianPhone accepts mobile numbers like 012-3456789 or +60123456789.
func ValidMalaysianPhone(phone string) bool {
	return malaysianPhoneRe.MatchString(phone)
}

func ValidMalaysianPostcode(postcode string) bool {
	return malaysianPostcodeRe.MatchString(postcode)
}

// ValidJakimZone checks the JAKIM e-Solat zone code shape, e.g. WLY01, SGR01.
func ValidJakimZone(zone string) bool {
	return jakimZoneRe.MatchString(zone)
}
