package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/idilsaglam/contactform/internal/model"
)

func TestState_ShortFirstNameShowsOneError(t *testing.T) {
	s := New()
	require.NoError(t, s.SetField(model.FieldFirstName, "123"))

	visible := s.Visible()
	assert.Len(t, visible, 1)
	assert.Equal(t, "firstName must have at least 5 characters", visible[model.FieldFirstName])
	assert.Len(t, s.Errors(), 3, "untouched fields still fail validation")
}

func TestState_SubmitEmptyShowsThreeErrors(t *testing.T) {
	s := New()
	assert.Empty(t, s.Visible())

	rec, errs := s.Submit()
	assert.Nil(t, rec)
	assert.Len(t, errs, 3)
	assert.Len(t, s.Visible(), 3)
	assert.Equal(t, "lastName is a required field", s.Visible()[model.FieldLastName])
}

func TestState_MissingEmailOnly(t *testing.T) {
	s := New()
	require.NoError(t, s.SetField(model.FieldFirstName, "Arria"))
	require.NoError(t, s.SetField(model.FieldLastName, "Marie"))

	_, errs := s.Submit()
	require.Len(t, errs, 1)
	assert.Equal(t, "email must be a valid email address", errs[model.FieldEmail])
}

func TestState_InvalidEmailWhileTyping(t *testing.T) {
	s := New()
	require.NoError(t, s.SetField(model.FieldEmail, "arria@gmail"))
	assert.Equal(t, Errors{model.FieldEmail: "email must be a valid email address"}, s.Visible())
}

func TestState_ValidSubmitSnapshotsAndClears(t *testing.T) {
	s := New()
	in := model.Contact{
		FirstName: "Johnny",
		LastName:  "Doe",
		Email:     "address@gmail.com",
		Message:   "message",
	}
	for _, f := range model.Fields {
		v, err := in.Get(f)
		require.NoError(t, err)
		require.NoError(t, s.SetField(f, v))
	}

	rec, errs := s.Submit()
	assert.Empty(t, errs)
	require.NotNil(t, rec)
	assert.Equal(t, in, *rec)
	assert.Equal(t, in, *s.Submitted())
	assert.Equal(t, model.Contact{}, s.Fields())
	assert.Empty(t, s.Visible(), "cleared form shows no errors until touched again")
}

func TestState_BlockedSubmitKeepsPreviousRecord(t *testing.T) {
	s := New()
	require.NoError(t, s.SetField(model.FieldFirstName, "Johnny"))
	require.NoError(t, s.SetField(model.FieldLastName, "Doe"))
	require.NoError(t, s.SetField(model.FieldEmail, "address@gmail.com"))
	first, errs := s.Submit()
	require.Empty(t, errs)

	require.NoError(t, s.SetField(model.FieldFirstName, "Jo"))
	rec, errs := s.Submit()
	assert.Nil(t, rec)
	assert.Len(t, errs, 3)
	assert.Same(t, first, s.Submitted())
}

func TestState_UnknownField(t *testing.T) {
	s := New()
	err := s.SetField(model.Field("phone"), "555")
	require.ErrorIs(t, err, model.ErrUnknownField)
	assert.Equal(t, model.Contact{}, s.Fields())
	assert.Empty(t, s.Visible())
}

func TestState_LogsSubmitOutcome(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	s := New(WithLogger(zap.New(core)))

	s.Submit()
	require.Equal(t, 1, logs.FilterMessage("submit blocked").Len())
	assert.EqualValues(t, 3, logs.FilterMessage("submit blocked").All()[0].ContextMap()["errors"])
}
