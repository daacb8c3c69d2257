package db

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masjid-suite/hub/internal/model"
	"github.com/masjid-suite/hub/internal/workflow"
)

// TestStoreIntegration exercises the store against a real database. Set
// TEST_DATABASE_URL to run it.
func TestStoreIntegration(t *testing.T) {
	if os.Getenv("TEST_DATABASE_URL") == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	require.NoError(t, InitTestDB("../../migrations"))
	store := TestStore

	newUser := func(t *testing.T) int {
		email := fmt.Sprintf("user-%s@example.com", uuid.NewString())
		id, err := store.CreateUser(email, "hashedpassword", nil, nil)
		require.NoError(t, err)
		return id
	}

	newMasjid := func(t *testing.T, createdBy int) model.Masjid {
		m, err := store.CreateMasjid(model.Masjid{
			Name:      "Masjid " + uuid.NewString()[:8],
			JakimZone: "WLY01",
			CreatedBy: createdBy,
		})
		require.NoError(t, err)
		return m
	}

	newPendingContent := func(t *testing.T, masjidID, submittedBy int) model.Content {
		c, err := store.CreateContent(model.Content{
			MasjidID:    masjidID,
			Title:       "Announcement " + uuid.NewString()[:8],
			Type:        model.ContentTypeImage,
			URL:         "https://cdn.example.com/content/a.png",
			Duration:    15,
			StartDate:   time.Now().AddDate(0, 0, -1),
			EndDate:     time.Now().AddDate(0, 1, 0),
			SubmittedBy: submittedBy,
		})
		require.NoError(t, err)
		assert.Equal(t, model.ContentStatusPending, c.Status)
		return c
	}

	newActiveContent := func(t *testing.T, masjidID, submittedBy, approvedBy int) model.Content {
		c := newPendingContent(t, masjidID, submittedBy)
		approved, err := store.ApproveContent(c.ID, approvedBy, nil)
		require.NoError(t, err)
		return approved
	}

	newDisplay := func(t *testing.T, masjidID, createdBy int) model.Display {
		d, err := store.CreateDisplay(model.Display{
			MasjidID:            masjidID,
			Name:                "Main Hall TV",
			Resolution:          model.Resolution1080p,
			Orientation:         model.OrientationLandscape,
			PairingToken:        uuid.NewString(),
			CarouselInterval:    10,
			MaxContentItems:     20,
			TransitionType:      model.TransitionFade,
			PrayerTimePosition:  "top",
			PrayerTimeFontSize:  "medium",
			PrayerTimeColor:     "#FFFFFF",
			PrayerTimeBgOpacity: 0.8,
			CreatedBy:           createdBy,
		})
		require.NoError(t, err)
		return d
	}

	t.Run("User Management", func(t *testing.T) {
		email := fmt.Sprintf("user-%s@example.com", uuid.NewString())
		phone := "+60123456789"
		id, err := store.CreateUser(email, "hashedpassword", nil, &phone)
		require.NoError(t, err)
		assert.Greater(t, id, 0)

		user, err := store.GetUserByEmail(email)
		require.NoError(t, err)
		assert.Equal(t, email, user.Email)
		require.NotNil(t, user.Phone)
		assert.Equal(t, phone, *user.Phone)

		name := "Ahmad"
		err = store.UpdateUserProfile(id, email, &name, nil)
		assert.NoError(t, err)

		user, err = store.GetUserByID(id)
		require.NoError(t, err)
		require.NotNil(t, user.Name)
		assert.Equal(t, name, *user.Name)
	})

	t.Run("Masjid Admins", func(t *testing.T) {
		owner := newUser(t)
		other := newUser(t)
		m := newMasjid(t, owner)

		require.NoError(t, store.AddMasjidAdmin(m.ID, owner))

		isAdmin, err := store.IsMasjidAdmin(owner, m.ID)
		require.NoError(t, err)
		assert.True(t, isAdmin)

		isAdmin, err = store.IsMasjidAdmin(other, m.ID)
		require.NoError(t, err)
		assert.False(t, isAdmin)

		require.NoError(t, store.AddMasjidAdmin(m.ID, other))
		isAdmin, err = store.IsMasjidAdmin(other, m.ID)
		require.NoError(t, err)
		assert.True(t, isAdmin)
	})

	t.Run("Approval Lifecycle", func(t *testing.T) {
		admin := newUser(t)
		submitter := newUser(t)
		m := newMasjid(t, admin)

		c := newPendingContent(t, m.ID, submitter)

		approved, err := store.ApproveContent(c.ID, admin, nil)
		require.NoError(t, err)
		assert.Equal(t, model.ContentStatusActive, approved.Status)
		require.NotNil(t, approved.ApprovedBy)
		assert.Equal(t, admin, *approved.ApprovedBy)

		// the second decision loses: the row is no longer pending
		_, err = store.RejectContent(c.ID, admin, "too late", nil)
		var sErr *workflow.InvalidStateError
		require.ErrorAs(t, err, &sErr)
		assert.Equal(t, model.ContentStatusActive, sErr.Status)

		_, err = store.ApproveContent(c.ID, admin, nil)
		assert.ErrorAs(t, err, &sErr)

		rejected := newPendingContent(t, m.ID, submitter)
		out, err := store.RejectContent(rejected.ID, admin, "wrong dates", nil)
		require.NoError(t, err)
		assert.Equal(t, model.ContentStatusRejected, out.Status)
		require.NotNil(t, out.RejectionReason)
		assert.Equal(t, "wrong dates", *out.RejectionReason)

		_, err = store.ApproveContent(999999999, admin, nil)
		assert.ErrorIs(t, err, workflow.ErrNotFound)
	})

	t.Run("Content Expiry", func(t *testing.T) {
		admin := newUser(t)
		m := newMasjid(t, admin)

		c, err := store.CreateContent(model.Content{
			MasjidID:    m.ID,
			Title:       "Ramadan schedule",
			Type:        model.ContentTypeImage,
			URL:         "https://cdn.example.com/content/r.png",
			Duration:    15,
			StartDate:   time.Now().AddDate(0, -2, 0),
			EndDate:     time.Now().AddDate(0, -1, 0),
			SubmittedBy: admin,
		})
		require.NoError(t, err)
		_, err = store.ApproveContent(c.ID, admin, nil)
		require.NoError(t, err)

		n, err := store.ExpireOverdueContent(time.Now())
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, int64(1))

		got, err := store.GetContentByID(c.ID)
		require.NoError(t, err)
		assert.Equal(t, model.ContentStatusExpired, got.Status)
	})

	t.Run("Assignments", func(t *testing.T) {
		admin := newUser(t)
		m := newMasjid(t, admin)
		d := newDisplay(t, m.ID, admin)

		c1 := newActiveContent(t, m.ID, admin, admin)
		c2 := newActiveContent(t, m.ID, admin, admin)
		c3 := newActiveContent(t, m.ID, admin, admin)

		settings := model.DefaultAssignmentSettings()
		a1, err := store.AssignContent(d.ID, c1.ID, settings, admin)
		require.NoError(t, err)
		assert.Equal(t, 0, a1.Position)

		a2, err := store.AssignContent(d.ID, c2.ID, settings, admin)
		require.NoError(t, err)
		assert.Equal(t, 1, a2.Position)

		a3, err := store.AssignContent(d.ID, c3.ID, settings, admin)
		require.NoError(t, err)
		assert.Equal(t, 2, a3.Position)

		// duplicate assignment
		_, err = store.AssignContent(d.ID, c1.ID, settings, admin)
		assert.ErrorIs(t, err, workflow.ErrDuplicate)

		// pending content cannot be assigned
		pending := newPendingContent(t, m.ID, admin)
		_, err = store.AssignContent(d.ID, pending.ID, settings, admin)
		var sErr *workflow.InvalidStateError
		assert.ErrorAs(t, err, &sErr)

		// unknown display is not-found, not a duplicate
		_, err = store.AssignContent(999999999, c1.ID, settings, admin)
		assert.ErrorIs(t, err, workflow.ErrNotFound)

		// unassign the middle item, survivors close the gap
		require.NoError(t, store.UnassignContent(d.ID, c2.ID))
		list, err := store.ListAssignments(d.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, c1.ID, list[0].ContentID)
		assert.Equal(t, 0, list[0].Position)
		assert.Equal(t, c3.ID, list[1].ContentID)
		assert.Equal(t, 1, list[1].Position)

		assert.ErrorIs(t, store.UnassignContent(d.ID, c2.ID), workflow.ErrNotFound)

		// reorder must cover the full set
		err = store.ReorderAssignments(d.ID, []int{c3.ID})
		var vErr *workflow.ValidationError
		assert.ErrorAs(t, err, &vErr)

		require.NoError(t, store.ReorderAssignments(d.ID, []int{c3.ID, c1.ID}))
		list, err = store.ListAssignments(d.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, c3.ID, list[0].ContentID)
		assert.Equal(t, c1.ID, list[1].ContentID)

		// per-assignment settings override
		updated, err := store.UpdateAssignmentSettings(d.ID, c1.ID, model.AssignmentSettings{
			CarouselDuration: 30,
			TransitionType:   model.TransitionSlide,
			ImageDisplayMode: model.ImageModeCover,
		})
		require.NoError(t, err)
		assert.Equal(t, 30, updated.CarouselDuration)
		assert.Equal(t, model.TransitionSlide, updated.TransitionType)

		playable, err := store.ListPlayableAssignments(d.ID, time.Now())
		require.NoError(t, err)
		require.Len(t, playable, 2)
		require.NotNil(t, playable[0].Content)
		assert.Equal(t, c3.ID, playable[0].Content.ID)
	})

	t.Run("Playlist Time Window", func(t *testing.T) {
		admin := newUser(t)
		m := newMasjid(t, admin)
		d := newDisplay(t, m.ID, admin)

		c := newActiveContent(t, m.ID, admin, admin)
		_, err := store.AssignContent(d.ID, c.ID, model.DefaultAssignmentSettings(), admin)
		require.NoError(t, err)

		// The assignment set never changes; only the clock moves.
		now := time.Now()
		playable, err := store.ListPlayableAssignments(d.ID, now)
		require.NoError(t, err)
		require.Len(t, playable, 1)

		afterEnd := c.EndDate.AddDate(0, 0, 1)
		playable, err = store.ListPlayableAssignments(d.ID, afterEnd)
		require.NoError(t, err)
		assert.Empty(t, playable, "playlist must shrink once end_date passes")

		// The next change boundary is the item's end_date, so a cached
		// playlist tag bounded by it cannot outlive the window.
		next, err := store.NextPlaylistChange(d.ID, now)
		require.NoError(t, err)
		require.NotNil(t, next)
		assert.WithinDuration(t, c.EndDate, *next, time.Second)

		next, err = store.NextPlaylistChange(d.ID, afterEnd)
		require.NoError(t, err)
		assert.Nil(t, next)
	})

	t.Run("Display Settings", func(t *testing.T) {
		admin := newUser(t)
		m := newMasjid(t, admin)
		d := newDisplay(t, m.ID, admin)

		got, err := store.GetDisplayByPairingToken(d.PairingToken)
		require.NoError(t, err)
		assert.Equal(t, d.ID, got.ID)

		name := "Mihrab TV"
		interval := 15
		require.NoError(t, store.UpdateDisplaySettings(d.ID, DisplaySettingsUpdate{
			Name:             &name,
			CarouselInterval: &interval,
		}))
		got, err = store.GetDisplayByID(d.ID)
		require.NoError(t, err)
		assert.Equal(t, name, got.Name)
		assert.Equal(t, interval, got.CarouselInterval)
		assert.Equal(t, model.TransitionFade, got.TransitionType, "unnamed fields untouched")

		start, end := "22:00", "06:00"
		require.NoError(t, store.SetBlackScreenSchedule(d.ID, BlackScreenConfig{
			Enabled:      true,
			ScheduleType: "weekly",
			StartTime:    &start,
			EndTime:      &end,
			Days:         []int64{5},
			ShowClock:    true,
		}))
		got, err = store.GetDisplayByID(d.ID)
		require.NoError(t, err)
		assert.True(t, got.BlackScreenEnabled)
		assert.Equal(t, "weekly", got.BlackScreenScheduleType)
		assert.Equal(t, []int64{5}, []int64(got.BlackScreenDays))

		require.NoError(t, store.DeleteDisplay(d.ID))
		_, err = store.GetDisplayByID(d.ID)
		assert.ErrorIs(t, err, workflow.ErrNotFound)
	})
}
