package clinic

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/lucventura/clinicday/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepositoryTest(t *testing.T) *Repository {
	t.Helper()

	db, err := storage.NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})

	return NewRepository(db, nil)
}

func repoTime(t *testing.T, hour, min int) time.Time {
	t.Helper()
	day, err := time.ParseInLocation(DateFormat, testDate, time.Local)
	require.NoError(t, err)
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
}

func TestSaveDay_FullReplace(t *testing.T) {
	repo := setupRepositoryTest(t)

	d := NewDay(testDate)
	d.Appointments = append(d.Appointments,
		*NewAppointment("Ana", "checkup", repoTime(t, 9, 0), repoTime(t, 9, 30)),
		*NewAppointment("Bruno", "", repoTime(t, 10, 0), repoTime(t, 11, 0)),
	)
	d.Blocks = append(d.Blocks,
		*NewAvailabilityBlock("Walk-ins", repoTime(t, 13, 0), repoTime(t, 17, 0)),
	)
	require.NoError(t, repo.SaveDay(d))

	// Saving a smaller day replaces, never merges.
	replacement := NewDay(testDate)
	replacement.Appointments = append(replacement.Appointments,
		*NewAppointment("Carla", "", repoTime(t, 15, 0), repoTime(t, 15, 30)),
	)
	require.NoError(t, repo.SaveDay(replacement))

	loaded, err := repo.GetDay(testDate)
	require.NoError(t, err)
	require.Len(t, loaded.Appointments, 1)
	assert.Equal(t, "Carla", loaded.Appointments[0].PatientName)
	assert.Empty(t, loaded.Blocks)
}

func TestSaveDay_DoesNotTouchOtherDates(t *testing.T) {
	repo := setupRepositoryTest(t)

	other := NewDay("2026-03-17")
	start := repoTime(t, 9, 0).AddDate(0, 0, 1)
	other.Appointments = append(other.Appointments,
		*NewAppointment("Diego", "", start, start.Add(30*time.Minute)),
	)
	require.NoError(t, repo.SaveDay(other))

	require.NoError(t, repo.SaveDay(NewDay(testDate)))

	loaded, err := repo.GetDay("2026-03-17")
	require.NoError(t, err)
	assert.Len(t, loaded.Appointments, 1)
}

func TestGetDay_OrdersByStartTime(t *testing.T) {
	repo := setupRepositoryTest(t)

	require.NoError(t, repo.AddAppointment(testDate, NewAppointment("Late", "", repoTime(t, 15, 0), repoTime(t, 15, 30))))
	require.NoError(t, repo.AddAppointment(testDate, NewAppointment("Early", "", repoTime(t, 8, 0), repoTime(t, 8, 30))))
	require.NoError(t, repo.AddAppointment(testDate, NewAppointment("Middle", "", repoTime(t, 11, 0), repoTime(t, 11, 30))))

	loaded, err := repo.GetDay(testDate)
	require.NoError(t, err)
	require.Len(t, loaded.Appointments, 3)
	assert.Equal(t, "Early", loaded.Appointments[0].PatientName)
	assert.Equal(t, "Middle", loaded.Appointments[1].PatientName)
	assert.Equal(t, "Late", loaded.Appointments[2].PatientName)
}

func TestAddBlock_RoundTripsTimes(t *testing.T) {
	repo := setupRepositoryTest(t)

	block := NewAvailabilityBlock("Morning", repoTime(t, 8, 0), repoTime(t, 12, 0))
	require.NoError(t, repo.AddBlock(testDate, block))

	loaded, err := repo.GetDay(testDate)
	require.NoError(t, err)
	require.Len(t, loaded.Blocks, 1)
	assert.Equal(t, block.ID, loaded.Blocks[0].ID)
	assert.True(t, loaded.Blocks[0].Start.Equal(block.Start))
	assert.True(t, loaded.Blocks[0].End.Equal(block.End))
}
