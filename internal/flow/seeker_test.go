package flow

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/cpr_dispatch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

func sessionIn(state SeekerState) Session {
	s := NewSession(uuid.New(), testNow)
	s.State = state
	return s
}

func TestReduceSeeker_HappyPath(t *testing.T) {
	t.Parallel()

	s := NewSession(uuid.New(), testNow)
	require.Equal(t, StateIdle, s.State)

	draft := Draft{Type: models.EmergencyTypeChoking, Location: "Main St & Oak Ave"}
	s, err := ReduceSeeker(s, RequestHelp{Draft: draft}, testNow)
	require.NoError(t, err)
	assert.Equal(t, StatePendingConfirmation, s.State)
	assert.Equal(t, draft, s.Draft)

	s, err = ReduceSeeker(s, Confirm{}, testNow)
	require.NoError(t, err)
	assert.Equal(t, StateSubmitting, s.State)

	s, err = ReduceSeeker(s, Registered{RequestID: "req-1"}, testNow)
	require.NoError(t, err)
	assert.Equal(t, StateWaiting, s.State)
	assert.Equal(t, "req-1", s.RequestID)

	helper := models.NewAcceptedHelper(&models.Responder{Name: "Dr. Sarah Johnson", Rating: 4.9}, 2)
	later := testNow.Add(3 * time.Second)
	s, err = ReduceSeeker(s, HelperAccepted{Helper: helper}, later)
	require.NoError(t, err)
	assert.Equal(t, StateHelperEnRoute, s.State)
	assert.Same(t, helper, s.Helper)
	assert.Equal(t, later, s.UpdatedAt)
}

func TestReduceSeeker_CancelAllowedStates(t *testing.T) {
	t.Parallel()

	for _, state := range []SeekerState{StatePendingConfirmation, StateSubmitting, StateWaiting} {
		s := sessionIn(state)
		s.RequestID = "req-1"

		next, err := ReduceSeeker(s, Cancel{}, testNow)
		require.NoError(t, err, state)
		assert.Equal(t, StateIdle, next.State)
		assert.Empty(t, next.RequestID)
		assert.Nil(t, next.Helper)
	}
}

func TestReduceSeeker_CancelRejectedStates(t *testing.T) {
	t.Parallel()

	for _, state := range []SeekerState{StateIdle, StateHelperEnRoute} {
		s := sessionIn(state)
		next, err := ReduceSeeker(s, Cancel{}, testNow)
		require.ErrorIs(t, err, ErrInvalidTransition, state)
		assert.Equal(t, s, next)
	}
}

func TestReduceSeeker_SubmitFailedReturnsToConfirmation(t *testing.T) {
	t.Parallel()

	s, err := ReduceSeeker(sessionIn(StateSubmitting), SubmitFailed{Reason: "description is required"}, testNow)
	require.NoError(t, err)
	assert.Equal(t, StatePendingConfirmation, s.State)
	assert.Equal(t, "description is required", s.LastError)

	s, err = ReduceSeeker(s, RequestHelp{Draft: Draft{Type: models.EmergencyTypeOther, Description: "fall"}}, testNow)
	require.NoError(t, err)
	assert.Empty(t, s.LastError)
}

func TestReduceSeeker_InvalidTransitions(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		state  SeekerState
		action SeekerAction
	}{
		{"confirm from idle", StateIdle, Confirm{}},
		{"register while pending", StatePendingConfirmation, Registered{RequestID: "x"}},
		{"helper before registration", StateSubmitting, HelperAccepted{}},
		{"second helper", StateHelperEnRoute, HelperAccepted{}},
		{"request help while waiting", StateWaiting, RequestHelp{}},
		{"fail submit while waiting", StateWaiting, SubmitFailed{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := sessionIn(tc.state)
			next, err := ReduceSeeker(s, tc.action, testNow)
			require.ErrorIs(t, err, ErrInvalidTransition)
			assert.Equal(t, s, next)
		})
	}
}

func TestDraft_ToRequest(t *testing.T) {
	t.Parallel()

	draft := Draft{
		Type:                models.EmergencyTypeOther,
		Description:         "Fell from a ladder",
		Location:            "Union Square",
		Coordinates:         models.Coordinates{Lat: 37.7879, Lng: -122.4075},
		ShareMedicalProfile: true,
		CanSMS:              true,
	}
	req := draft.ToRequest()

	assert.Equal(t, draft.Type, req.Type)
	assert.Equal(t, draft.Description, req.Description)
	assert.Equal(t, draft.Coordinates, req.Coordinates)
	assert.True(t, req.HasMedicalProfile)
	assert.True(t, req.CanSMS)
	assert.Equal(t, models.StatusUnaccepted, req.Status())
}
