package service

import (
	"testing"
	"time"

	"github.com/nerlpattackers/ymir-discord-bot-clean/internal/clock"
	"github.com/nerlpattackers/ymir-discord-bot-clean/internal/domain/entity"
	"github.com/nerlpattackers/ymir-discord-bot-clean/mocks"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager      *mocks.MockDataManager
	mockAnnouncementRepo *mocks.MockAnnouncementRepo
	mockDiscordSession   *mocks.MockDiscordSession
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	announcementRepo := mocks.NewMockAnnouncementRepo(ctrl)
	dm.EXPECT().Announcement().Return(announcementRepo).AnyTimes()

	m = allMocks{
		mockDataManager:      dm,
		mockAnnouncementRepo: announcementRepo,
		mockDiscordSession:   mocks.NewMockDiscordSession(ctrl),
	}

	return
}

// fixedClock pins the clock to one instant for tests.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func (c fixedClock) Tick() entity.Tick {
	return clock.TickOf(c.now)
}

// serverTime builds an instant in the UTC+8 server zone.
func serverTime(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, clock.NewServerClock().Location())
}
