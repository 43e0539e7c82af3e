package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dfigueroa/remote-week/internal/domain"
	"github.com/dfigueroa/remote-week/internal/domain/entity"
	"github.com/dfigueroa/remote-week/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newHandlerTest(t *testing.T) (*mocks.MockUserService, *mocks.MockAssignmentService, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserService(ctrl)
	assignments := mocks.NewMockAssignmentService(ctrl)
	h := New(users, assignments, zap.NewNop())
	return users, assignments, h.Routes()
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_CreateUser(t *testing.T) {
	t.Run("should create user", func(t *testing.T) {
		users, _, router := newHandlerTest(t)

		users.EXPECT().
			CreateUser("Ana Gómez", "AG-104").
			Return(&entity.User{ID: 1, Name: "Ana Gómez", Docket: "AG-104"}, nil).Times(1)

		rec := doJSON(t, router, http.MethodPost, "/users", map[string]string{
			"name":   "Ana Gómez",
			"docket": "AG-104",
		})

		assert.Equal(t, http.StatusCreated, rec.Code)

		var got entity.User
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, int64(1), got.ID)
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, _, router := newHandlerTest(t)

		rec := doJSON(t, router, http.MethodPost, "/users", map[string]string{
			"name":   "  ",
			"docket": "AG-104",
		})

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("should map duplicate user to conflict", func(t *testing.T) {
		users, _, router := newHandlerTest(t)

		users.EXPECT().
			CreateUser("Ana Gómez", "AG-104").
			Return(nil, domain.ErrDuplicateUser).Times(1)

		rec := doJSON(t, router, http.MethodPost, "/users", map[string]string{
			"name":   "Ana Gómez",
			"docket": "AG-104",
		})

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestHandler_AssignDay(t *testing.T) {
	t.Run("should assign day", func(t *testing.T) {
		_, assignments, router := newHandlerTest(t)

		assignments.EXPECT().
			AssignDay(gomock.Any(), int64(1), "2025-09-02", false).
			Return(&entity.Record{ID: 10, UserID: 1, Date: "2025-09-02", WeekDay: "Martes"}, nil).Times(1)

		rec := doJSON(t, router, http.MethodPost, "/assignments", assignmentRequest{
			UserID: 1,
			Date:   "2025-09-02",
		})

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("should pass the override flag through", func(t *testing.T) {
		_, assignments, router := newHandlerTest(t)

		assignments.EXPECT().
			AssignDay(gomock.Any(), int64(1), "2025-09-03", true).
			Return(&entity.Record{ID: 11, UserID: 1, Date: "2025-09-03", WeekDay: "Miércoles"}, nil).Times(1)

		rec := doJSON(t, router, http.MethodPost, "/assignments", assignmentRequest{
			UserID:              1,
			Date:                "2025-09-03",
			AllowRepeatPrevWeek: true,
		})

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("should map rule violations to unprocessable entity", func(t *testing.T) {
		for _, domainErr := range []error{
			domain.ErrDayNotAllowed,
			domain.ErrDateOutsideCurrentWeek,
			domain.ErrRepeatsPreviousWeekday,
		} {
			_, assignments, router := newHandlerTest(t)

			assignments.EXPECT().
				AssignDay(gomock.Any(), int64(1), "2025-09-01", false).
				Return(nil, domainErr).Times(1)

			rec := doJSON(t, router, http.MethodPost, "/assignments", assignmentRequest{
				UserID: 1,
				Date:   "2025-09-01",
			})

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		}
	})

	t.Run("should map already registered to conflict", func(t *testing.T) {
		_, assignments, router := newHandlerTest(t)

		assignments.EXPECT().
			AssignDay(gomock.Any(), int64(1), "2025-09-04", false).
			Return(nil, domain.ErrAlreadyRegisteredThisWeek).Times(1)

		rec := doJSON(t, router, http.MethodPost, "/assignments", assignmentRequest{
			UserID: 1,
			Date:   "2025-09-04",
		})

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("should map missing user to not found", func(t *testing.T) {
		_, assignments, router := newHandlerTest(t)

		assignments.EXPECT().
			AssignDay(gomock.Any(), int64(99), "2025-09-02", false).
			Return(nil, domain.ErrUserNotFound).Times(1)

		rec := doJSON(t, router, http.MethodPost, "/assignments", assignmentRequest{
			UserID: 99,
			Date:   "2025-09-02",
		})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandler_ChangeAssignment(t *testing.T) {
	t.Run("should change assignment", func(t *testing.T) {
		_, assignments, router := newHandlerTest(t)

		assignments.EXPECT().
			ChangeWeekAssignment(gomock.Any(), int64(1), "2025-09-04", false).
			Return(&entity.Record{ID: 7, UserID: 1, Date: "2025-09-04", WeekDay: "Jueves"}, nil).Times(1)

		rec := doJSON(t, router, http.MethodPut, "/assignments", assignmentRequest{
			UserID: 1,
			Date:   "2025-09-04",
		})

		assert.Equal(t, http.StatusOK, rec.Code)

		var got entity.Record
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, int64(7), got.ID)
	})

	t.Run("should map missing week record to unprocessable entity", func(t *testing.T) {
		_, assignments, router := newHandlerTest(t)

		assignments.EXPECT().
			ChangeWeekAssignment(gomock.Any(), int64(1), "2025-09-04", false).
			Return(nil, domain.ErrNoRecordThisWeek).Times(1)

		rec := doJSON(t, router, http.MethodPut, "/assignments", assignmentRequest{
			UserID: 1,
			Date:   "2025-09-04",
		})

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestHandler_WeekStatus(t *testing.T) {
	users, assignments, router := newHandlerTest(t)

	ana := &entity.User{ID: 1, Name: "Ana Gómez", Docket: "AG-104"}
	users.EXPECT().ListUsers().Return([]*entity.User{ana}, nil).Times(1)
	assignments.EXPECT().
		UsersWeekStatus([]*entity.User{ana}, gomock.Any()).
		Return([]entity.UserWeekStatus{{User: ana, Registered: true}}, nil).Times(1)

	rec := doJSON(t, router, http.MethodGet, "/status", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got []entity.UserWeekStatus
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.True(t, got[0].Registered)
}

func TestHandler_DeleteUser(t *testing.T) {
	users, _, router := newHandlerTest(t)

	users.EXPECT().DeleteUser(gomock.Any(), int64(1)).Return(nil).Times(1)

	rec := doJSON(t, router, http.MethodDelete, "/users/1", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHandler_GetUser(t *testing.T) {
	t.Run("should return user", func(t *testing.T) {
		users, _, router := newHandlerTest(t)

		users.EXPECT().
			GetUser(int64(1)).
			Return(&entity.User{ID: 1, Name: "Ana Gómez", Docket: "AG-104"}, nil).Times(1)

		rec := doJSON(t, router, http.MethodGet, "/users/1", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("should return not found for missing user", func(t *testing.T) {
		users, _, router := newHandlerTest(t)

		users.EXPECT().GetUser(int64(99)).Return(nil, nil).Times(1)

		rec := doJSON(t, router, http.MethodGet, "/users/99", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("should reject a non numeric id", func(t *testing.T) {
		_, _, router := newHandlerTest(t)

		rec := doJSON(t, router, http.MethodGet, "/users/abc", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
