// exposes a Store interface that is passed to API calls w/ param requirements
package db

import (
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/masjid-suite/hub/internal/model"
)

type Store interface {
	// user functions
	CreateUser(email, hashedPassword string, name, phone *string) (int, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	UpdateUserProfile(id int, email string, name, phone *string) error

	// masjid functions
	CreateMasjid(m model.Masjid) (model.Masjid, error)
	GetMasjidByID(id int) (model.Masjid, error)
	ListMasjids() ([]model.Masjid, error)
	UpdateMasjid(id int, name, jakimZone *string) error
	AddMasjidAdmin(masjidID, userID int) error
	IsMasjidAdmin(userID, masjidID int) (bool, error)

	// content functions
	CreateContent(c model.Content) (model.Content, error)
	GetContentByID(id int) (model.Content, error)
	ListContent(f ContentFilters) ([]model.Content, error)
	ApproveContent(contentID, approverID int, notes *string) (model.Content, error)
	RejectContent(contentID, approverID int, reason string, notes *string) (model.Content, error)
	ExpireOverdueContent(now time.Time) (int64, error)

	// display functions
	CreateDisplay(d model.Display) (model.Display, error)
	GetDisplayByID(id int) (model.Display, error)
	GetDisplayByPairingToken(token string) (model.Display, error)
	ListDisplays(masjidID int) ([]model.Display, error)
	UpdateDisplaySettings(id int, u DisplaySettingsUpdate) error
	SetBlackScreenSchedule(id int, cfg BlackScreenConfig) error
	DeleteDisplay(id int) error

	// assignment functions
	ListAssignments(displayID int) ([]model.Assignment, error)
	AssignContent(displayID, contentID int, settings model.AssignmentSettings, assignedBy int) (model.Assignment, error)
	UnassignContent(displayID, contentID int) error
	ReorderAssignments(displayID int, orderedContentIDs []int) error
	UpdateAssignmentSettings(displayID, contentID int, settings model.AssignmentSettings) (model.Assignment, error)
	ListPlayableAssignments(displayID int, now time.Time) ([]model.Assignment, error)
	NextPlaylistChange(displayID int, now time.Time) (*time.Time, error)
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
// required so linter doesn't complain
var _ Store = (*pgStore)(nil)

func NewStore(database *sqlx.DB) Store {
	if database == nil {
		database = DB
	}
	return &pgStore{db: database}
}
