package widget

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cyboglabs/cybot/pkg/contact"
	"github.com/cyboglabs/cybot/pkg/mocks"
	"github.com/cyboglabs/cybot/pkg/svc"
)

func fillContactForm(t *testing.T, form *ContactForm) {
	require.NoError(t, form.SetField("name", "Ada Lovelace"))
	require.NoError(t, form.SetField("email", "ada@example.com"))
	require.NoError(t, form.SetField("subject", "Prototype"))
	require.NoError(t, form.SetField("message", "Can you help with a sensor rig?"))
}

func TestContactSubmitSuccess(t *testing.T) {
	contactMock := &mocks.ContactClientMock{}
	w := newTestWidget(&mocks.ChatClientMock{}, contactMock)
	form := w.Contact()
	fillContactForm(t, form)

	expected := contact.Inquiry{
		Name: "Ada Lovelace", Email: "ada@example.com", Subject: "Prototype",
		Message: "Can you help with a sensor rig?", Type: contact.TypeGeneral,
	}
	contactMock.On("Submit", mock.Anything, expected).
		Return(svc.Receipt{Message: "Thank you Ada Lovelace!"}, nil).Twice()

	require.NoError(t, form.Submit(context.Background()))
	state := form.State()
	assert.Equal(t, ContactConfirmed, state.Status)
	assert.Equal(t, contact.Inquiry{}, state.Draft)
	assert.Equal(t, "Thank you Ada Lovelace!", state.Notice)

	assert.ErrorIs(t, form.SetField("name", "x"), ErrFormLocked)
	form.Dismiss()
	assert.Equal(t, ContactEditing, form.State().Status)
	assert.Equal(t, contact.Inquiry{}, form.State().Draft)

	// Identical resubmission is a new, independent call
	fillContactForm(t, form)
	require.NoError(t, form.Submit(context.Background()))
	contactMock.AssertNumberOfCalls(t, "Submit", 2)
}

func TestContactResolveTwicePostsOnce(t *testing.T) {
	contactMock := &mocks.ContactClientMock{}
	w := newTestWidget(&mocks.ChatClientMock{}, contactMock)
	form := w.Contact()
	fillContactForm(t, form)
	contactMock.On("Submit", mock.Anything, mock.Anything).Return(svc.Receipt{Message: "Thanks"}, nil).Once()

	pending, err := form.BeginSubmit()
	require.NoError(t, err)
	require.NoError(t, pending.Resolve(context.Background()))
	require.NoError(t, pending.Resolve(context.Background()))
	contactMock.AssertNumberOfCalls(t, "Submit", 1)
	assert.Equal(t, ContactConfirmed, form.State().Status)
}

func TestContactValidationBlocksNetwork(t *testing.T) {
	contactMock := &mocks.ContactClientMock{}
	w := newTestWidget(&mocks.ChatClientMock{}, contactMock)
	form := w.Contact()
	fillContactForm(t, form)
	require.NoError(t, form.SetField("email", "  "))

	err := form.Submit(context.Background())
	var invalid *contact.ValidationError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, []string{"email"}, invalid.Fields)

	state := form.State()
	assert.Equal(t, ContactEditing, state.Status)
	assert.Equal(t, []string{"email"}, state.InvalidFields)
	assert.Equal(t, "Please fill in: email", state.Notice)
	contactMock.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestContactFailureKeepsDraft(t *testing.T) {
	contactMock := &mocks.ContactClientMock{}
	w := newTestWidget(&mocks.ChatClientMock{}, contactMock)
	form := w.Contact()
	fillContactForm(t, form)
	require.NoError(t, form.SetField("type", "support"))
	before := form.State().Draft

	contactMock.On("Submit", mock.Anything, mock.Anything).
		Return(svc.Receipt{}, &svc.StatusError{StatusCode: 500}).Once()
	contactMock.On("Submit", mock.Anything, mock.Anything).
		Return(svc.Receipt{}, nil).Once()

	assert.Error(t, form.Submit(context.Background()))
	state := form.State()
	assert.Equal(t, ContactFailed, state.Status)
	assert.Equal(t, before, state.Draft)
	assert.Contains(t, state.Notice, "support@cyboglabs.com")

	// Retry straight from the failed state
	require.NoError(t, form.Submit(context.Background()))
	assert.Equal(t, ContactConfirmed, form.State().Status)
	assert.Equal(t, "Thanks! Your message has been sent.", form.State().Notice)
}

func TestContactSubmitLock(t *testing.T) {
	contactMock := &mocks.ContactClientMock{}
	w := newTestWidget(&mocks.ChatClientMock{}, contactMock)
	form := w.Contact()
	fillContactForm(t, form)

	contactMock.On("Submit", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			_, err := form.BeginSubmit()
			assert.ErrorIs(t, err, ErrSubmitInFlight)
			assert.ErrorIs(t, form.SetField("name", "x"), ErrFormLocked)
		}).
		Return(svc.Receipt{}, nil).Once()

	require.NoError(t, form.Submit(context.Background()))
	contactMock.AssertNumberOfCalls(t, "Submit", 1)
}

func TestContactSurvivesTabSwitch(t *testing.T) {
	w := newTestWidget(&mocks.ChatClientMock{}, &mocks.ContactClientMock{})
	require.NoError(t, w.SelectTab(TabContact))
	require.NoError(t, w.Contact().SetField("name", "Ada"))
	require.NoError(t, w.SelectTab(TabFAQ))
	require.NoError(t, w.SelectTab(TabContact))
	assert.Equal(t, "Ada", w.Contact().State().Draft.Name)
	assert.ErrorIs(t, w.Contact().SetField("phone", "1"), ErrUnknownField)
}
