package service

import (
	"testing"
	"time"

	"github.com/dfigueroa/remote-week/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type allMocks struct {
	mockDataManager *mocks.MockDataManager
	mockUserRepo    *mocks.MockUserRepo
	mockRecordRepo  *mocks.MockRecordRepo
	mockNotifier    *mocks.MockNotifier
}

// fixedNow is the deterministic wall clock for the rule tests:
// Wednesday 2025-09-03, so the current week is 2025-09-01..2025-09-07 and the
// previous week 2025-08-25..2025-08-31.
var fixedNow = time.Date(2025, time.September, 3, 10, 0, 0, 0, time.UTC)

func newServiceTestMock(t *testing.T) (m allMocks, svc *assignmentService, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	userRepo := mocks.NewMockUserRepo(ctrl)
	dm.EXPECT().User().Return(userRepo).AnyTimes()

	recordRepo := mocks.NewMockRecordRepo(ctrl)
	dm.EXPECT().Record().Return(recordRepo).AnyTimes()

	notifier := mocks.NewMockNotifier(ctrl)

	m = allMocks{
		mockDataManager: dm,
		mockUserRepo:    userRepo,
		mockRecordRepo:  recordRepo,
		mockNotifier:    notifier,
	}

	svc = newAssignment(dm, notifier, zap.NewNop())
	require.NotNil(t, svc)
	svc.now = func() time.Time { return fixedNow }

	return
}
